package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"purchase-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const productColumns = `id, provider_id, category, name, price::text, currency, pool_kind, is_active,
	deactivation_reason, email_enc, password_enc, sold, available_slots, created_at, updated_at`

const slotColumns = `id, product_id, position, profile_name, pin_enc, status, sold_at, created_at`

const reservationColumns = `id, product_id, slot_id, buyer_id, status, order_id, created_at, updated_at`

// InventoryStore implements ports.InventoryStore. Pool mutations lock the
// product row and reuse the domain ReserveOne/ReleaseOne rules before writing
// the new state back.
type InventoryStore struct {
	pool Pool
	tx   *Transactor
}

// NewInventoryStore creates a new InventoryStore.
func NewInventoryStore(pool Pool) *InventoryStore {
	return &InventoryStore{pool: pool, tx: NewTransactor(pool)}
}

// CreateProduct inserts the product and all of its slots.
func (s *InventoryStore) CreateProduct(ctx context.Context, p *domain.Product) error {
	if err := p.CheckPoolInvariant(); err != nil {
		return err
	}
	sold, available := poolColumns(p.Pool)

	return s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO products
			(id, provider_id, category, name, price, currency, pool_kind, is_active, deactivation_reason,
			 email_enc, password_enc, sold, available_slots, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
			p.ID, p.ProviderID, p.Category, p.Name, p.Price.String(), p.Currency, p.Pool.Kind(),
			p.IsActive, p.DeactivationReason, p.Account.EmailEnc, p.Account.PasswordEnc,
			sold, available, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert product: %w", mapError(err))
		}

		pool, ok := p.Pool.(*domain.MultiSlotPool)
		if !ok {
			return nil
		}
		for _, slot := range pool.Slots {
			_, err := tx.Exec(ctx, `INSERT INTO slots
				(id, product_id, position, profile_name, pin_enc, status, sold_at, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				slot.ID, p.ID, slot.Position, slot.ProfileName, slot.PINEnc, slot.Status, slot.SoldAt, slot.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("insert slot %d: %w", slot.Position, mapError(err))
			}
		}
		return nil
	})
}

// GetProduct loads a product with its pool.
func (s *InventoryStore) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	p, err := loadProduct(ctx, s.pool, id, false)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (s *InventoryStore) ReserveOne(ctx context.Context, productID, buyerID uuid.UUID) (*domain.SlotHandle, error) {
	var handle *domain.SlotHandle
	err := s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		p, err := loadProduct(ctx, tx, productID, true)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		slot, err := p.ReserveOne(now)
		if err != nil {
			return err
		}
		if err := saveProduct(ctx, tx, p, slot); err != nil {
			return err
		}

		res := domain.Reservation{
			ID:        uuid.New(),
			ProductID: productID,
			BuyerID:   buyerID,
			Status:    domain.ReservationStatusReserved,
			CreatedAt: now,
			UpdatedAt: now,
		}
		handle = &domain.SlotHandle{
			ReservationID: res.ID,
			ProductID:     productID,
			PoolKind:      p.Pool.Kind(),
			Slot:          slot,
		}
		res.SlotID = handle.SlotID()

		_, err = tx.Exec(ctx, `INSERT INTO reservations
			(id, product_id, slot_id, buyer_id, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			res.ID, res.ProductID, res.SlotID, res.BuyerID, res.Status, res.CreatedAt, res.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert reservation: %w", mapError(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return handle, nil
}

func (s *InventoryStore) Release(ctx context.Context, reservationID uuid.UUID) error {
	return s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		res, err := lockReservation(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		if res.Status == domain.ReservationStatusReleased {
			return nil
		}
		return releaseReservation(ctx, tx, res)
	})
}

func (s *InventoryStore) ReleaseIfReserved(ctx context.Context, reservationID uuid.UUID) (bool, error) {
	released := false
	err := s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		res, err := lockReservation(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		if res.Status != domain.ReservationStatusReserved {
			return nil
		}
		if err := releaseReservation(ctx, tx, res); err != nil {
			return err
		}
		released = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return released, nil
}

func (s *InventoryStore) GetReservation(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	res, err := scanReservation(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return res, nil
}

// ListStaleReservations returns RESERVED reservations created before
// olderThan, oldest first.
func (s *InventoryStore) ListStaleReservations(ctx context.Context, olderThan time.Time, limit int) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations
		WHERE status = $1 AND created_at < $2
		ORDER BY created_at
		LIMIT $3`

	rows, err := s.pool.Query(ctx, query, domain.ReservationStatusReserved, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("list stale reservations: %w", err)
	}
	defer rows.Close()

	var out []domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		out = append(out, *res)
	}
	return out, rows.Err()
}

func lockReservation(ctx context.Context, q querier, id uuid.UUID) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`
	res, err := scanReservation(q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("lock reservation: %w", err)
	}
	return res, nil
}

// releaseReservation returns the unit of res to its product. The reservation
// row must already be locked.
func releaseReservation(ctx context.Context, q querier, res *domain.Reservation) error {
	p, err := loadProduct(ctx, q, res.ProductID, true)
	if err != nil {
		return fmt.Errorf("release reservation %s: %w", res.ID, err)
	}

	now := time.Now().UTC()
	if err := p.ReleaseOne(res.SlotID, now); err != nil {
		return err
	}
	var slot *domain.Slot
	if pool, ok := p.Pool.(*domain.MultiSlotPool); ok && res.SlotID != nil {
		slot = pool.Slot(*res.SlotID)
	}
	if err := saveProduct(ctx, q, p, slot); err != nil {
		return err
	}

	_, err = q.Exec(ctx, `UPDATE reservations SET status = $2, updated_at = $3 WHERE id = $1`,
		res.ID, domain.ReservationStatusReleased, now)
	if err != nil {
		return fmt.Errorf("mark reservation released: %w", err)
	}
	return nil
}

func loadProduct(ctx context.Context, q querier, id uuid.UUID, forUpdate bool) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var (
		p         domain.Product
		price     string
		kind      domain.PoolKind
		sold      bool
		available int
	)
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ProviderID, &p.Category, &p.Name, &price, &p.Currency, &kind, &p.IsActive,
		&p.DeactivationReason, &p.Account.EmailEnc, &p.Account.PasswordEnc, &sold, &available,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("parse price: %w", err)
	}

	switch kind {
	case domain.PoolKindSingleUnit:
		p.Pool = &domain.SingleUnitPool{Sold: sold}
	case domain.PoolKindMultiSlot:
		slots, err := loadSlots(ctx, q, id)
		if err != nil {
			return nil, err
		}
		p.Pool = &domain.MultiSlotPool{Available: available, Slots: slots}
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPool, kind)
	}
	return &p, nil
}

func loadSlots(ctx context.Context, q querier, productID uuid.UUID) ([]domain.Slot, error) {
	rows, err := q.Query(ctx, `SELECT `+slotColumns+` FROM slots WHERE product_id = $1 ORDER BY position`, productID)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var slots []domain.Slot
	for rows.Next() {
		var sl domain.Slot
		if err := rows.Scan(&sl.ID, &sl.ProductID, &sl.Position, &sl.ProfileName, &sl.PINEnc,
			&sl.Status, &sl.SoldAt, &sl.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, sl)
	}
	return slots, rows.Err()
}

// saveProduct writes back the pool counters and, if set, the changed slot.
func saveProduct(ctx context.Context, q querier, p *domain.Product, changed *domain.Slot) error {
	sold, available := poolColumns(p.Pool)
	_, err := q.Exec(ctx, `UPDATE products
		SET is_active = $2, deactivation_reason = $3, sold = $4, available_slots = $5, updated_at = $6
		WHERE id = $1`,
		p.ID, p.IsActive, p.DeactivationReason, sold, available, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", mapError(err))
	}
	if changed == nil {
		return nil
	}
	_, err = q.Exec(ctx, `UPDATE slots SET status = $2, sold_at = $3 WHERE id = $1`,
		changed.ID, changed.Status, changed.SoldAt)
	if err != nil {
		return fmt.Errorf("update slot: %w", err)
	}
	return nil
}

func poolColumns(pool domain.InventoryPool) (sold bool, available int) {
	switch pl := pool.(type) {
	case *domain.SingleUnitPool:
		return pl.Sold, pl.AvailableSlots()
	case *domain.MultiSlotPool:
		return false, pl.Available
	}
	return false, 0
}

func scanReservation(row pgx.Row) (*domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(&res.ID, &res.ProductID, &res.SlotID, &res.BuyerID, &res.Status,
		&res.OrderID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}
	return &res, nil
}
