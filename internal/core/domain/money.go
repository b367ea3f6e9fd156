package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultCurrencyScale is the number of minor-unit digits (cents).
const DefaultCurrencyScale int32 = 2

// RateScale is the number of fractional digits a commission rate may carry.
// It matches the commission_configs.rate column.
const RateScale int32 = 4

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// CommissionSplit is the result of dividing a gross amount between the
// provider and the platform.
type CommissionSplit struct {
	Gross              decimal.Decimal `json:"gross"`
	Rate               decimal.Decimal `json:"rate"`
	ProviderEarnings   decimal.Decimal `json:"provider_earnings"`
	PlatformCommission decimal.Decimal `json:"platform_commission"`
}

// RoundHalfUp rounds a non-negative amount to scale digits, ties away from zero.
func RoundHalfUp(amount decimal.Decimal, scale int32) decimal.Decimal {
	return amount.Round(scale)
}

// ValidAmount reports whether amount is positive and has no more than scale
// fractional digits.
func ValidAmount(amount decimal.Decimal, scale int32) bool {
	if !amount.IsPositive() {
		return false
	}
	return amount.Equal(amount.Truncate(scale))
}

// ValidRate reports whether 0 <= rate <= 1 with at most RateScale
// fractional digits.
func ValidRate(rate decimal.Decimal) bool {
	if rate.IsNegative() || rate.GreaterThan(one) {
		return false
	}
	return rate.Equal(rate.Truncate(RateScale))
}

// SplitCommission divides gross between provider and platform. The provider
// share is rounded half-up to the currency scale and the platform receives
// gross minus that share, so the two parts always sum to gross.
func SplitCommission(gross, rate decimal.Decimal, scale int32) (CommissionSplit, error) {
	if !ValidAmount(gross, scale) {
		return CommissionSplit{}, ErrInvalidAmount
	}
	if !ValidRate(rate) {
		return CommissionSplit{}, ErrInvalidRate
	}

	provider := RoundHalfUp(gross.Mul(one.Sub(rate)), scale)
	return CommissionSplit{
		Gross:              gross,
		Rate:               rate,
		ProviderEarnings:   provider,
		PlatformCommission: gross.Sub(provider),
	}, nil
}

// Proportion returns roundHalfUp(amount * percent / 100).
func Proportion(amount, percent decimal.Decimal, scale int32) decimal.Decimal {
	return RoundHalfUp(amount.Mul(percent).Div(hundred), scale)
}
