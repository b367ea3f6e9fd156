package postgres

import (
	"context"
	"errors"
	"fmt"

	"purchase-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const orderColumns = `id, buyer_id, product_id, provider_id, reservation_id, slot_id, category,
	gross_amount::text, provider_earnings::text, platform_commission::text, commission_rate::text,
	currency, status, refunded_amount::text, created_at, completed_at, refunded_at`

// OrderStore implements ports.OrderStore.
type OrderStore struct {
	pool Pool
	tx   *Transactor
}

// NewOrderStore creates a new OrderStore.
func NewOrderStore(pool Pool) *OrderStore {
	return &OrderStore{pool: pool, tx: NewTransactor(pool)}
}

// Materialize commits the reservation and inserts the order in one
// transaction. The conditional UPDATE is the claim: a reservation released
// by the sweeper matches no row.
func (s *OrderStore) Materialize(ctx context.Context, o *domain.OrderLine) error {
	return s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE reservations
			SET status = $2, order_id = $3, updated_at = $4
			WHERE id = $1 AND status = $5`,
			o.ReservationID, domain.ReservationStatusCommitted, o.ID, o.CreatedAt, domain.ReservationStatusReserved,
		)
		if err != nil {
			return fmt.Errorf("commit reservation: %w", mapError(err))
		}
		if tag.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM reservations WHERE id = $1)`,
				o.ReservationID).Scan(&exists); err != nil {
				return fmt.Errorf("check reservation: %w", err)
			}
			if !exists {
				return domain.ErrReservationNotFound
			}
			return domain.ErrReservationNotHeld
		}

		_, err = tx.Exec(ctx, `INSERT INTO orders
			(id, buyer_id, product_id, provider_id, reservation_id, slot_id, category,
			 gross_amount, provider_earnings, platform_commission, commission_rate,
			 currency, status, refunded_amount, created_at, completed_at, refunded_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9::numeric, $10::numeric, $11::numeric,
			 $12, $13, $14::numeric, $15, $16, $17)`,
			o.ID, o.BuyerID, o.ProductID, o.ProviderID, o.ReservationID, o.SlotID, o.Category,
			o.GrossAmount.String(), o.ProviderEarnings.String(), o.PlatformCommission.String(), o.CommissionRate.String(),
			o.Currency, o.Status, o.RefundedAmount.String(), o.CreatedAt, o.CompletedAt, o.RefundedAt,
		)
		if err != nil {
			return fmt.Errorf("insert order: %w", mapError(err))
		}
		return nil
	})
}

// GetByID fetches an order line.
func (s *OrderStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.OrderLine, error) {
	o, err := scanOrder(s.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (s *OrderStore) TransitionStatus(ctx context.Context, id uuid.UUID, change domain.StatusChange) (*domain.OrderLine, error) {
	if !domain.CanTransition(change.From, change.To) {
		return nil, domain.ErrInvalidTransition
	}

	query := `UPDATE orders SET status = $2 WHERE id = $1 AND status = $3 RETURNING ` + orderColumns
	args := []any{id, change.To, change.From}
	if change.RefundedAmount != nil && change.RefundedAmount.IsPositive() {
		query = `UPDATE orders SET status = $2, refunded_amount = $4::numeric, refunded_at = $5
			WHERE id = $1 AND status = $3 RETURNING ` + orderColumns
		args = append(args, change.RefundedAmount.String(), change.At)
	}

	o, err := scanOrder(s.pool.QueryRow(ctx, query, args...))
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, domain.ErrOrderNotFound) {
		return nil, fmt.Errorf("transition order: %w", mapError(err))
	}

	// No row matched: either the order is missing or it moved on.
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, domain.ErrInvalidTransition
}

func scanOrder(row pgx.Row) (*domain.OrderLine, error) {
	var (
		o                                     domain.OrderLine
		gross, provider, platform, rate, refd string
	)
	err := row.Scan(&o.ID, &o.BuyerID, &o.ProductID, &o.ProviderID, &o.ReservationID, &o.SlotID, &o.Category,
		&gross, &provider, &platform, &rate, &o.Currency, &o.Status, &refd,
		&o.CreatedAt, &o.CompletedAt, &o.RefundedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	amounts := []struct {
		dst *decimal.Decimal
		src string
	}{
		{&o.GrossAmount, gross},
		{&o.ProviderEarnings, provider},
		{&o.PlatformCommission, platform},
		{&o.CommissionRate, rate},
		{&o.RefundedAmount, refd},
	}
	for _, a := range amounts {
		if *a.dst, err = decimal.NewFromString(a.src); err != nil {
			return nil, fmt.Errorf("parse order amount %q: %w", a.src, err)
		}
	}
	return &o, nil
}
