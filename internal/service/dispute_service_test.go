package service

import (
	"context"
	"sync"
	"testing"

	"purchase-engine/internal/core/domain"
	"purchase-engine/internal/core/ports"
	"purchase-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buy(t *testing.T, e *testEngine, buyer uuid.UUID, p *domain.Product) *domain.OrderLine {
	t.Helper()
	result, err := e.purchase.Purchase(context.Background(), ports.PurchaseRequest{BuyerID: buyer, ProductID: p.ID})
	require.NoError(t, err)
	return result.Order
}

func TestDispute_FullRefundReturnsSlot(t *testing.T) {
	e := newTestEngine(t)
	e.rate(t, nil, "0.10")
	provider := e.user(t, "0")
	buyer := e.user(t, "25.00")
	p := e.multiSlot(t, provider, "streaming", "10.00", 1)

	order := buy(t, e, buyer, p)
	assert.False(t, e.product(t, p.ID).IsActive)

	resolved, err := e.dispute.ApplyDisputeResolution(context.Background(), order.ID, domain.Decision{Kind: domain.DecisionFullRefund})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusRefunded, resolved.Status)
	assertAmount(t, "10.00", resolved.RefundedAmount)

	assertAmount(t, "25.00", e.balance(t, buyer))
	assertAmount(t, "0", e.balance(t, provider))
	assertAmount(t, "0", e.balance(t, e.platformOwner))

	got := e.product(t, p.ID)
	assert.True(t, got.IsActive)
	assert.Equal(t, 1, got.Pool.AvailableSlots())
	e.assertReconciled(t, buyer, provider)
}

func TestDispute_FullRefundNonReturnableKeepsSlotSold(t *testing.T) {
	e := newTestEngine(t)
	e.rate(t, nil, "0.10")
	provider := e.user(t, "0")
	buyer := e.user(t, "25.00")
	p := e.singleUnit(t, provider, "gaming", "10.00")

	order := buy(t, e, buyer, p)
	_, err := e.dispute.ApplyDisputeResolution(context.Background(), order.ID, domain.Decision{Kind: domain.DecisionFullRefund})
	require.NoError(t, err)

	assertAmount(t, "25.00", e.balance(t, buyer))
	got := e.product(t, p.ID)
	assert.False(t, got.IsActive)
	assert.Equal(t, 0, got.Pool.AvailableSlots())
}

func TestDispute_PartialRefund(t *testing.T) {
	e := newTestEngine(t)
	e.rate(t, nil, "0.05")
	provider := e.user(t, "0")
	buyer := e.user(t, "50.00")
	p := e.multiSlot(t, provider, "streaming", "15.99", 2)

	order := buy(t, e, buyer, p)
	disputed, err := e.dispute.OpenDispute(context.Background(), order.ID, buyer)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDisputed, disputed.Status)

	resolved, err := e.dispute.ApplyDisputeResolution(context.Background(), order.ID, domain.Decision{Kind: domain.DecisionPartialRefund})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusResolvedPartialRefund, resolved.Status)
	assertAmount(t, "8.00", resolved.RefundedAmount)

	// 34.01 after purchase, plus round(15.99 * 50%) = 8.00
	assertAmount(t, "42.01", e.balance(t, buyer))
	// 15.19 - round(15.19 * 50%) = 15.19 - 7.60
	assertAmount(t, "7.59", e.balance(t, provider))
	// 0.80 - (8.00 - 7.60)
	assertAmount(t, "0.40", e.balance(t, e.platformOwner))

	// streaming keeps the slot on partial refunds
	assert.Equal(t, 1, e.product(t, p.ID).Pool.AvailableSlots())
	e.assertReconciled(t, buyer, provider)
}

func TestDispute_PartialRefundExplicitPercent(t *testing.T) {
	e := newTestEngine(t)
	e.rate(t, nil, "0.20")
	provider := e.user(t, "0")
	buyer := e.user(t, "100.00")
	p := e.singleUnit(t, provider, "software", "40.00")

	order := buy(t, e, buyer, p)
	_, err := e.dispute.OpenDispute(context.Background(), order.ID, buyer)
	require.NoError(t, err)

	resolved, err := e.dispute.ApplyDisputeResolution(context.Background(), order.ID, domain.Decision{
		Kind:    domain.DecisionPartialRefund,
		Percent: decimal.NewFromInt(25),
	})
	require.NoError(t, err)
	assertAmount(t, "10.00", resolved.RefundedAmount)
	assertAmount(t, "70.00", e.balance(t, buyer))
	assertAmount(t, "24.00", e.balance(t, provider))
	assertAmount(t, "6.00", e.balance(t, e.platformOwner))
	e.assertReconciled(t, buyer, provider)
}

func TestDispute_ReleaseLeavesLedgerUntouched(t *testing.T) {
	e := newTestEngine(t)
	e.rate(t, nil, "0.10")
	provider := e.user(t, "0")
	buyer := e.user(t, "20.00")
	p := e.singleUnit(t, provider, "software", "10.00")

	order := buy(t, e, buyer, p)
	_, err := e.dispute.OpenDispute(context.Background(), order.ID, buyer)
	require.NoError(t, err)

	resolved, err := e.dispute.ApplyDisputeResolution(context.Background(), order.ID, domain.Decision{Kind: domain.DecisionRelease})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusResolvedRelease, resolved.Status)
	assert.True(t, resolved.RefundedAmount.IsZero())

	assertAmount(t, "10.00", e.balance(t, buyer))
	assertAmount(t, "9.00", e.balance(t, provider))
	assert.False(t, e.product(t, p.ID).IsActive)
}

func TestDispute_InvalidTransitions(t *testing.T) {
	e := newTestEngine(t)
	e.rate(t, nil, "0.10")
	provider := e.user(t, "0")
	buyer := e.user(t, "50.00")
	p := e.multiSlot(t, provider, "software", "5.00", 3)
	order := buy(t, e, buyer, p)

	_, err := e.dispute.ApplyDisputeResolution(context.Background(), order.ID, domain.Decision{Kind: domain.DecisionPartialRefund})
	assert.True(t, apperror.HasCode(err, "ORD_001"), "partial refund needs a dispute")

	_, err = e.dispute.ApplyDisputeResolution(context.Background(), order.ID, domain.Decision{Kind: domain.DecisionRelease})
	assert.True(t, apperror.HasCode(err, "ORD_001"))

	_, err = e.dispute.OpenDispute(context.Background(), order.ID, uuid.New())
	assert.True(t, apperror.HasCode(err, "PAY_004"), "only the buyer may dispute")

	_, err = e.dispute.ApplyDisputeResolution(context.Background(), order.ID, domain.Decision{Kind: domain.DecisionFullRefund})
	require.NoError(t, err)

	_, err = e.dispute.OpenDispute(context.Background(), order.ID, buyer)
	assert.True(t, apperror.HasCode(err, "ORD_001"), "refunded orders are terminal")

	_, err = e.dispute.ApplyDisputeResolution(context.Background(), order.ID, domain.Decision{Kind: domain.DecisionRelease})
	assert.True(t, apperror.HasCode(err, "ORD_001"))

	_, err = e.dispute.ApplyDisputeResolution(context.Background(), order.ID, domain.Decision{Kind: "SPLIT"})
	assert.True(t, apperror.HasCode(err, "PAY_002"))
}

func TestDispute_RepeatedFullRefundIsIdempotent(t *testing.T) {
	e := newTestEngine(t)
	e.rate(t, nil, "0.10")
	provider := e.user(t, "0")
	buyer := e.user(t, "30.00")
	p := e.singleUnit(t, provider, "software", "10.00")
	order := buy(t, e, buyer, p)

	for i := 0; i < 3; i++ {
		_, err := e.dispute.ApplyDisputeResolution(context.Background(), order.ID, domain.Decision{Kind: domain.DecisionFullRefund})
		require.NoError(t, err)
	}
	assertAmount(t, "30.00", e.balance(t, buyer))
	assertAmount(t, "0", e.balance(t, provider))
	e.assertReconciled(t, buyer, provider)
}

func TestDispute_ConcurrentResolutionsApplyOnce(t *testing.T) {
	e := newTestEngine(t)
	e.rate(t, nil, "0.10")
	provider := e.user(t, "0")
	buyer := e.user(t, "30.00")
	p := e.singleUnit(t, provider, "software", "10.00")
	order := buy(t, e, buyer, p)
	_, err := e.dispute.OpenDispute(context.Background(), order.ID, buyer)
	require.NoError(t, err)

	decisions := []domain.Decision{
		{Kind: domain.DecisionFullRefund},
		{Kind: domain.DecisionPartialRefund},
		{Kind: domain.DecisionRelease},
	}
	var wg sync.WaitGroup
	errs := make([]error, len(decisions))
	for i, d := range decisions {
		wg.Add(1)
		go func(i int, d domain.Decision) {
			defer wg.Done()
			_, errs[i] = e.dispute.ApplyDisputeResolution(context.Background(), order.ID, d)
		}(i, d)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.True(t, apperror.HasCode(err, "ORD_001"), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, ok)

	final, err := e.stores.Orders.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.True(t, final.Status.IsTerminal())
	assertAmount(t, "20.00", e.balance(t, buyer).Sub(final.RefundedAmount))
	e.assertReconciled(t, buyer, provider)
}

func TestDispute_ShortfallRecordsLiability(t *testing.T) {
	e := newTestEngine(t)
	e.rate(t, nil, "0.10")
	provider := e.user(t, "0")
	buyer := e.user(t, "30.00")
	p := e.singleUnit(t, provider, "software", "10.00")
	order := buy(t, e, buyer, p)

	providerWallet, err := e.ledger.GetWallet(context.Background(), provider)
	require.NoError(t, err)
	_, err = e.ledger.Debit(context.Background(), ports.LedgerRequest{
		WalletID:  providerWallet.ID,
		Amount:    decimal.RequireFromString("6.00"),
		Kind:      domain.EntryKindPurchaseDebit,
		Reference: "spent-elsewhere",
	})
	require.NoError(t, err)

	_, err = e.dispute.ApplyDisputeResolution(context.Background(), order.ID, domain.Decision{Kind: domain.DecisionFullRefund})
	require.NoError(t, err)

	assertAmount(t, "30.00", e.balance(t, buyer))
	assertAmount(t, "0", e.balance(t, provider))
	liabilities := e.stores.Wallets.Liabilities(providerWallet.ID)
	require.Len(t, liabilities, 1)
	assertAmount(t, "6.00", liabilities[0].Amount)
	e.assertReconciled(t, buyer, provider)
}
