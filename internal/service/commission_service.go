package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"purchase-engine/internal/core/domain"
	"purchase-engine/internal/core/ports"
	"purchase-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CommissionResolverImpl implements ports.CommissionResolver.
type CommissionResolverImpl struct {
	store ports.CommissionStore
	log   zerolog.Logger
}

// NewCommissionResolver creates a new CommissionResolverImpl.
func NewCommissionResolver(store ports.CommissionStore, log zerolog.Logger) *CommissionResolverImpl {
	return &CommissionResolverImpl{store: store, log: log}
}

// Resolve returns the config in effect for category at the given instant.
// A missing config is an operator error and is never defaulted.
func (s *CommissionResolverImpl) Resolve(ctx context.Context, category string, at time.Time) (*domain.CommissionConfig, error) {
	candidates, err := s.store.ListCandidates(ctx, category, at)
	if err != nil {
		return nil, toAppError(fmt.Errorf("list commission configs: %w", err))
	}

	cfg, err := domain.SelectCommission(candidates, category, at)
	if err != nil {
		s.log.Error().Str("category", category).Time("at", at).Msg("no active commission config, refusing to sell")
		return nil, toAppError(err)
	}
	return cfg, nil
}

// Create adds a new commission version.
func (s *CommissionResolverImpl) Create(ctx context.Context, req ports.CreateCommissionRequest) (*domain.CommissionConfig, error) {
	if req.Category != nil {
		trimmed := strings.TrimSpace(*req.Category)
		if trimmed == "" {
			return nil, apperror.Validation("category must not be blank; omit it for the global default")
		}
		req.Category = &trimmed
	}
	effectiveFrom := req.EffectiveFrom
	if effectiveFrom.IsZero() {
		effectiveFrom = time.Now()
	}

	cfg, err := domain.NewCommissionConfig(req.Category, req.Rate, effectiveFrom)
	if err != nil {
		return nil, toAppError(err)
	}
	if err := s.store.Create(ctx, cfg); err != nil {
		return nil, toAppError(fmt.Errorf("create commission config: %w", err))
	}

	scope := "global"
	if cfg.Category != nil {
		scope = *cfg.Category
	}
	s.log.Info().Str("commission_id", cfg.ID.String()).Str("category", scope).Str("rate", cfg.Rate.String()).Time("effective_from", cfg.EffectiveFrom).Msg("commission config created")
	return cfg, nil
}

// SetActive toggles a config's active flag, its only mutable field.
func (s *CommissionResolverImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.CommissionConfig, error) {
	cfg, err := s.store.SetActive(ctx, id, active)
	if err != nil {
		return nil, toAppError(err)
	}
	s.log.Info().Str("commission_id", id.String()).Bool("active", active).Msg("commission config toggled")
	return cfg, nil
}
