package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string { return &s }

func TestSplitCommission_ScenarioB(t *testing.T) {
	split, err := SplitCommission(dec("15.99"), dec("0.05"), DefaultCurrencyScale)
	require.NoError(t, err)

	assert.True(t, split.ProviderEarnings.Equal(dec("15.19")), split.ProviderEarnings.String())
	assert.True(t, split.PlatformCommission.Equal(dec("0.80")), split.PlatformCommission.String())
}

func TestSplitCommission_SumsToGross(t *testing.T) {
	amounts := []string{"0.01", "0.03", "0.99", "1.00", "1.05", "9.99", "15.99", "33.33", "100.01", "12345.67"}
	for _, a := range amounts {
		gross := dec(a)
		for r := 0; r <= 100; r++ {
			rate := decimal.New(int64(r), -2)
			split, err := SplitCommission(gross, rate, DefaultCurrencyScale)
			require.NoError(t, err)

			assert.Truef(t, split.ProviderEarnings.Add(split.PlatformCommission).Equal(gross),
				"gross=%s rate=%s provider=%s platform=%s", gross, rate, split.ProviderEarnings, split.PlatformCommission)
			assert.False(t, split.PlatformCommission.IsNegative())
			assert.False(t, split.ProviderEarnings.IsNegative())
			assert.True(t, split.ProviderEarnings.Equal(split.ProviderEarnings.Truncate(2)))
		}
	}
}

func TestSplitCommission_Edges(t *testing.T) {
	split, err := SplitCommission(dec("10.00"), decimal.Zero, DefaultCurrencyScale)
	require.NoError(t, err)
	assert.True(t, split.ProviderEarnings.Equal(dec("10")))
	assert.True(t, split.PlatformCommission.IsZero())

	split, err = SplitCommission(dec("10.00"), decimal.NewFromInt(1), DefaultCurrencyScale)
	require.NoError(t, err)
	assert.True(t, split.ProviderEarnings.IsZero())
	assert.True(t, split.PlatformCommission.Equal(dec("10")))

	_, err = SplitCommission(dec("10.001"), dec("0.1"), DefaultCurrencyScale)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = SplitCommission(dec("-1"), dec("0.1"), DefaultCurrencyScale)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = SplitCommission(dec("10"), dec("1.01"), DefaultCurrencyScale)
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestValidRate_Precision(t *testing.T) {
	assert.True(t, ValidRate(dec("0.1234")))
	assert.True(t, ValidRate(dec("0.12340")))
	assert.False(t, ValidRate(dec("0.12345")))

	_, err := NewCommissionConfig(nil, dec("0.12345"), time.Now())
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestProportion(t *testing.T) {
	assert.True(t, Proportion(dec("15.99"), dec("50"), 2).Equal(dec("8.00")))
	assert.True(t, Proportion(dec("15.19"), dec("50"), 2).Equal(dec("7.60")))
	assert.True(t, Proportion(dec("0.80"), dec("50"), 2).Equal(dec("0.40")))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusPending, OrderStatusPaid, true},
		{OrderStatusPaid, OrderStatusRefunded, true},
		{OrderStatusPaid, OrderStatusDisputed, true},
		{OrderStatusDisputed, OrderStatusResolvedRefund, true},
		{OrderStatusDisputed, OrderStatusResolvedPartialRefund, true},
		{OrderStatusDisputed, OrderStatusResolvedRelease, true},
		{OrderStatusPaid, OrderStatusResolvedRelease, false},
		{OrderStatusRefunded, OrderStatusPaid, false},
		{OrderStatusResolvedRelease, OrderStatusDisputed, false},
		{OrderStatusPending, OrderStatusRefunded, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestDecision_TargetStatus(t *testing.T) {
	to, err := Decision{Kind: DecisionFullRefund}.TargetStatus(OrderStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusRefunded, to)

	to, err = Decision{Kind: DecisionFullRefund}.TargetStatus(OrderStatusDisputed)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusResolvedRefund, to)

	to, err = Decision{Kind: DecisionPartialRefund}.TargetStatus(OrderStatusDisputed)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusResolvedPartialRefund, to)

	_, err = Decision{Kind: DecisionRelease}.TargetStatus(OrderStatusPaid)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = Decision{Kind: DecisionFullRefund}.TargetStatus(OrderStatusRefunded)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestProduct_SingleUnitReserveRelease(t *testing.T) {
	p := NewSingleUnitProduct(uuid.New(), "streaming", "Full account", dec("15.99"), "USD", AccountCredentials{})
	now := time.Now()

	slot, err := p.ReserveOne(now)
	require.NoError(t, err)
	assert.Nil(t, slot)
	assert.False(t, p.IsActive)
	assert.Equal(t, DeactivationSoldOut, p.DeactivationReason)
	assert.Equal(t, 0, p.Pool.AvailableSlots())

	_, err = p.ReserveOne(now)
	assert.ErrorIs(t, err, ErrOutOfStock)

	require.NoError(t, p.ReleaseOne(nil, now))
	assert.True(t, p.IsActive)
	assert.Equal(t, DeactivationNone, p.DeactivationReason)
	assert.Equal(t, 1, p.Pool.AvailableSlots())
}

func TestProduct_MultiSlotInsertionOrder(t *testing.T) {
	p := NewMultiSlotProduct(uuid.New(), "streaming", "Shared", dec("4.99"), "USD", AccountCredentials{},
		[]SlotSpec{{ProfileName: strPtr("A")}, {ProfileName: strPtr("B")}, {ProfileName: strPtr("C")}})
	now := time.Now()

	first, err := p.ReserveOne(now)
	require.NoError(t, err)
	assert.Equal(t, "A", *first.ProfileName)
	second, err := p.ReserveOne(now)
	require.NoError(t, err)
	assert.Equal(t, "B", *second.ProfileName)
	assert.True(t, p.IsActive)
	require.NoError(t, p.CheckPoolInvariant())

	require.NoError(t, p.ReleaseOne(&first.ID, now))
	again, err := p.ReserveOne(now)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	_, err = p.ReserveOne(now)
	require.NoError(t, err)
	assert.False(t, p.IsActive)
	assert.Equal(t, 0, p.Pool.AvailableSlots())
	require.NoError(t, p.CheckPoolInvariant())

	_, err = p.ReserveOne(now)
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestProduct_ReleaseKeepsManualDeactivation(t *testing.T) {
	p := NewSingleUnitProduct(uuid.New(), "streaming", "Full", dec("1.00"), "USD", AccountCredentials{})
	_, err := p.ReserveOne(time.Now())
	require.NoError(t, err)
	p.DeactivationReason = DeactivationManual

	require.NoError(t, p.ReleaseOne(nil, time.Now()))
	assert.False(t, p.IsActive)
	assert.Equal(t, 1, p.Pool.AvailableSlots())

	_, err = p.ReserveOne(time.Now())
	assert.ErrorIs(t, err, ErrProductInactive)
}

type foreignPool struct{ SingleUnitPool }

func TestProduct_UnknownPool(t *testing.T) {
	p := &Product{ID: uuid.New(), IsActive: true, Pool: &foreignPool{}}
	_, err := p.ReserveOne(time.Now())
	assert.ErrorIs(t, err, ErrUnknownPool)
}

func TestSelectCommission(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	global := CommissionConfig{ID: uuid.New(), Rate: dec("0.10"), EffectiveFrom: now.Add(-48 * time.Hour), IsActive: true}
	oldStreaming := CommissionConfig{ID: uuid.New(), Category: strPtr("streaming"), Rate: dec("0.05"), EffectiveFrom: now.Add(-24 * time.Hour), IsActive: true}
	newStreaming := CommissionConfig{ID: uuid.New(), Category: strPtr("streaming"), Rate: dec("0.07"), EffectiveFrom: now.Add(-time.Hour), IsActive: true}
	futureStreaming := CommissionConfig{ID: uuid.New(), Category: strPtr("streaming"), Rate: dec("0.20"), EffectiveFrom: now.Add(time.Hour), IsActive: true}
	inactiveGames := CommissionConfig{ID: uuid.New(), Category: strPtr("games"), Rate: dec("0.30"), EffectiveFrom: now.Add(-time.Hour), IsActive: false}

	configs := []CommissionConfig{global, oldStreaming, newStreaming, futureStreaming, inactiveGames}

	got, err := SelectCommission(configs, "streaming", now)
	require.NoError(t, err)
	assert.Equal(t, newStreaming.ID, got.ID)

	got, err = SelectCommission(configs, "games", now)
	require.NoError(t, err)
	assert.Equal(t, global.ID, got.ID)

	_, err = SelectCommission([]CommissionConfig{oldStreaming}, "games", now)
	assert.ErrorIs(t, err, ErrNoActiveCommission)
}

func TestLedgerEntry_ReplayBalance(t *testing.T) {
	w := uuid.New()
	entries := []LedgerEntry{
		*NewCreditEntry(w, dec("50.00"), EntryKindRechargeCredit, "recharge:1", nil),
		*NewDebitEntry(w, dec("15.99"), EntryKindPurchaseDebit, "purchase:x:debit", nil),
		{Amount: dec("100"), DestinationWalletID: &w, Status: EntryStatusFailed},
	}
	assert.True(t, ReplayBalance(w, entries).Equal(dec("34.01")))
}

func TestDisputePolicy(t *testing.T) {
	p := DisputePolicy{
		Categories: map[string]CategoryPolicy{
			"streaming": {Returnable: true, ReleaseOnPartialRefund: true},
		},
		Default: CategoryPolicy{Returnable: false},
	}
	assert.True(t, p.ReleasesSlot("streaming", DecisionFullRefund))
	assert.True(t, p.ReleasesSlot("streaming", DecisionPartialRefund))
	assert.False(t, p.ReleasesSlot("streaming", DecisionRelease))
	assert.False(t, p.ReleasesSlot("games", DecisionFullRefund))
}

func TestReferences(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	ref := PurchaseReference(id, LegDebit)
	assert.Equal(t, "purchase:550e8400-e29b-41d4-a716-446655440000:debit", ref)
	assert.Equal(t, ref+":reversal", ReversalReference(ref))
	assert.True(t, IsReversalReference(ReversalReference(ref)))
	assert.Equal(t, "refund:550e8400-e29b-41d4-a716-446655440000:buyer", RefundReference(id, LegBuyer))
	assert.Equal(t, "purchase:550e8400-e29b-41d4-a716-446655440000:k1", BuildPurchaseIdempotencyKey(id, "k1"))
}
