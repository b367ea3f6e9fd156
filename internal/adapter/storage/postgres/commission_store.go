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

const commissionColumns = `id, category, rate::text, effective_from, is_active, created_at`

// CommissionStore implements ports.CommissionStore.
type CommissionStore struct {
	pool Pool
}

// NewCommissionStore creates a new CommissionStore.
func NewCommissionStore(pool Pool) *CommissionStore {
	return &CommissionStore{pool: pool}
}

func (s *CommissionStore) Create(ctx context.Context, c *domain.CommissionConfig) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO commission_configs (id, category, rate, effective_from, is_active, created_at)
		VALUES ($1, $2, $3::numeric, $4, $5, $6)`,
		c.ID, c.Category, c.Rate.String(), c.EffectiveFrom, c.IsActive, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert commission config: %w", mapError(err))
	}
	return nil
}

func (s *CommissionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.CommissionConfig, error) {
	c, err := scanCommission(s.pool.QueryRow(ctx, `SELECT `+commissionColumns+` FROM commission_configs WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get commission config: %w", err)
	}
	return c, nil
}

func (s *CommissionStore) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.CommissionConfig, error) {
	c, err := scanCommission(s.pool.QueryRow(ctx,
		`UPDATE commission_configs SET is_active = $2 WHERE id = $1 RETURNING `+commissionColumns, id, active))
	if err != nil {
		return nil, fmt.Errorf("set commission active: %w", err)
	}
	return c, nil
}

// ListCandidates returns the active configs that could apply to category at
// the given instant. domain.SelectCommission picks the winner.
func (s *CommissionStore) ListCandidates(ctx context.Context, category string, at time.Time) ([]domain.CommissionConfig, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+commissionColumns+` FROM commission_configs
		WHERE is_active AND effective_from <= $2 AND (category = $1 OR category IS NULL)
		ORDER BY effective_from DESC`, category, at)
	if err != nil {
		return nil, fmt.Errorf("list commission candidates: %w", err)
	}
	defer rows.Close()

	var out []domain.CommissionConfig
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan commission config: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func scanCommission(row pgx.Row) (*domain.CommissionConfig, error) {
	var c domain.CommissionConfig
	var rate string
	err := row.Scan(&c.ID, &c.Category, &rate, &c.EffectiveFrom, &c.IsActive, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCommissionNotFound
		}
		return nil, err
	}
	if c.Rate, err = decimal.NewFromString(rate); err != nil {
		return nil, fmt.Errorf("parse rate: %w", err)
	}
	return &c, nil
}
