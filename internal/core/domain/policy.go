package domain

import "github.com/shopspring/decimal"

// CategoryPolicy controls how refunds of a product category treat inventory.
type CategoryPolicy struct {
	Returnable             bool `mapstructure:"returnable" json:"returnable"`
	ReleaseOnPartialRefund bool `mapstructure:"release_on_partial_refund" json:"release_on_partial_refund"`
}

// DisputePolicy resolves per-category refund behaviour.
type DisputePolicy struct {
	DefaultPartialPercent decimal.Decimal
	Categories            map[string]CategoryPolicy
	Default               CategoryPolicy
}

// For returns the policy of category, falling back to Default.
func (p DisputePolicy) For(category string) CategoryPolicy {
	if cp, ok := p.Categories[category]; ok {
		return cp
	}
	return p.Default
}

// ReleasesSlot reports whether resolving an order of category with kind
// returns its unit to inventory.
func (p DisputePolicy) ReleasesSlot(category string, kind DecisionKind) bool {
	cp := p.For(category)
	switch kind {
	case DecisionFullRefund:
		return cp.Returnable
	case DecisionPartialRefund:
		return cp.ReleaseOnPartialRefund
	default:
		return false
	}
}
