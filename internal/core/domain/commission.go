package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommissionConfig is one versioned commission rate. A nil Category marks a
// global default.
type CommissionConfig struct {
	ID            uuid.UUID       `json:"id"`
	Category      *string         `json:"category,omitempty"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveFrom time.Time       `json:"effective_from"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewCommissionConfig validates rate and builds an active config.
func NewCommissionConfig(category *string, rate decimal.Decimal, effectiveFrom time.Time) (*CommissionConfig, error) {
	if !ValidRate(rate) {
		return nil, ErrInvalidRate
	}
	return &CommissionConfig{
		ID:            uuid.New(),
		Category:      category,
		Rate:          rate,
		EffectiveFrom: effectiveFrom.UTC(),
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// IsGlobal reports whether the config is the fallback for every category.
func (c *CommissionConfig) IsGlobal() bool {
	return c.Category == nil
}

// SelectCommission picks the config in effect for category at the given
// instant: the active category entry with the latest EffectiveFrom <= at,
// otherwise the same among global entries.
func SelectCommission(configs []CommissionConfig, category string, at time.Time) (*CommissionConfig, error) {
	var specific, global *CommissionConfig
	for i := range configs {
		c := &configs[i]
		if !c.IsActive || c.EffectiveFrom.After(at) {
			continue
		}
		if c.IsGlobal() {
			if global == nil || c.EffectiveFrom.After(global.EffectiveFrom) {
				global = c
			}
			continue
		}
		if *c.Category != category {
			continue
		}
		if specific == nil || c.EffectiveFrom.After(specific.EffectiveFrom) {
			specific = c
		}
	}
	if specific != nil {
		return specific, nil
	}
	if global != nil {
		return global, nil
	}
	return nil, ErrNoActiveCommission
}
