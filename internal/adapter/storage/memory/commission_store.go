package memory

import (
	"context"
	"time"

	"purchase-engine/internal/core/domain"

	"github.com/google/uuid"
)

// CommissionStore implements ports.CommissionStore.
type CommissionStore struct {
	db *DB
}

func (s *CommissionStore) Create(_ context.Context, cfg *domain.CommissionConfig) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	c := *cfg
	s.db.commissions[c.ID] = &c
	return nil
}

func (s *CommissionStore) GetByID(_ context.Context, id uuid.UUID) (*domain.CommissionConfig, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	c, ok := s.db.commissions[id]
	if !ok {
		return nil, domain.ErrCommissionNotFound
	}
	out := *c
	return &out, nil
}

func (s *CommissionStore) SetActive(_ context.Context, id uuid.UUID, active bool) (*domain.CommissionConfig, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	c, ok := s.db.commissions[id]
	if !ok {
		return nil, domain.ErrCommissionNotFound
	}
	c.IsActive = active
	out := *c
	return &out, nil
}

func (s *CommissionStore) ListCandidates(_ context.Context, category string, at time.Time) ([]domain.CommissionConfig, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var out []domain.CommissionConfig
	for _, c := range s.db.commissions {
		if !c.IsActive || c.EffectiveFrom.After(at) {
			continue
		}
		if c.Category == nil || *c.Category == category {
			out = append(out, *c)
		}
	}
	return out, nil
}
