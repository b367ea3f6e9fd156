package postgres

import (
	"context"
	"errors"
	"fmt"
)

const schemaProbe = `SELECT to_regclass('public.ledger_entries') IS NOT NULL`

// ErrSchemaMissing is reported when the database answers but the ledger
// tables have not been migrated.
var ErrSchemaMissing = errors.New("ledger schema not migrated")

// HealthCheck reports whether the ledger database is reachable and migrated.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	var migrated bool
	if err := h.pool.QueryRow(ctx, schemaProbe).Scan(&migrated); err != nil {
		return fmt.Errorf("query ledger schema: %w", err)
	}
	if !migrated {
		return ErrSchemaMissing
	}
	return nil
}

func (h *HealthCheck) Name() string { return "postgresql" }
