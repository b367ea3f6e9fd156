package memory

import (
	"context"

	"purchase-engine/internal/core/domain"
)

// AuditRepository implements ports.AuditRepository.
type AuditRepository struct {
	db *DB
}

func (r *AuditRepository) Create(_ context.Context, log *domain.AuditLog) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.audit = append(r.db.audit, *log)
	return nil
}

// List returns recorded entries in insertion order.
func (r *AuditRepository) List() []domain.AuditLog {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.AuditLog, len(r.db.audit))
	copy(out, r.db.audit)
	return out
}
