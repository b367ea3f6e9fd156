package service

import (
	"context"
	"testing"
	"time"

	"purchase-engine/internal/adapter/storage/memory"
	"purchase-engine/internal/core/domain"
	"purchase-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEngine wires every service over the memory stores.
type testEngine struct {
	db            *memory.DB
	stores        memory.Stores
	ledger        *LedgerServiceImpl
	commission    *CommissionResolverImpl
	inventory     *InventoryServiceImpl
	purchase      *PurchaseServiceImpl
	dispute       *DisputeServiceImpl
	recon         *ReconciliationServiceImpl
	platformOwner uuid.UUID
}

func defaultTestPolicy() domain.DisputePolicy {
	return domain.DisputePolicy{
		DefaultPartialPercent: decimal.NewFromInt(50),
		Categories: map[string]domain.CategoryPolicy{
			"streaming": {Returnable: true, ReleaseOnPartialRefund: false},
			"gaming":    {Returnable: false},
		},
		Default: domain.CategoryPolicy{Returnable: true},
	}
}

func newTestEngine(t *testing.T) *testEngine {
	t.Helper()
	db, stores := memory.NewStores()
	enc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	log := newTestLogger()
	settings := PurchaseSettings{
		PlatformOwnerID: uuid.New(),
		CurrencyScale:   domain.DefaultCurrencyScale,
		SagaTimeout:     5 * time.Second,
	}

	e := &testEngine{db: db, stores: stores, platformOwner: settings.PlatformOwnerID}
	e.ledger = NewLedgerService(stores.Wallets, "USD", settings.CurrencyScale, nil, log)
	e.commission = NewCommissionResolver(stores.Commissions, log)
	e.inventory = NewInventoryService(stores.Inventory, enc, "USD", settings.CurrencyScale, nil, log)
	e.purchase = NewPurchaseService(e.inventory, e.commission, e.ledger, stores.Orders, nil, settings, nil, log)
	e.dispute = NewDisputeService(stores.Orders, e.ledger, e.inventory, nil, defaultTestPolicy(), settings, nil, log)
	e.recon = NewReconciliationService(stores.Inventory, stores.Wallets, e.ledger, SweepSettings{
		ReservationTimeout: time.Minute,
		Interval:           10 * time.Millisecond,
		Batch:              50,
	}, nil, log)

	_, err = e.ledger.EnsureWallet(context.Background(), e.platformOwner)
	require.NoError(t, err)
	return e
}

func (e *testEngine) user(t *testing.T, balance string) uuid.UUID {
	t.Helper()
	owner := uuid.New()
	_, err := e.ledger.OpenWallet(context.Background(), owner)
	require.NoError(t, err)
	if amount := decimal.RequireFromString(balance); amount.IsPositive() {
		_, err = e.ledger.Recharge(context.Background(), ports.RechargeRequest{
			OwnerID:   owner,
			Amount:    amount,
			Reference: "seed-" + owner.String(),
		})
		require.NoError(t, err)
	}
	return owner
}

func (e *testEngine) rate(t *testing.T, category *string, rate string) {
	t.Helper()
	_, err := e.commission.Create(context.Background(), ports.CreateCommissionRequest{
		Category:      category,
		Rate:          decimal.RequireFromString(rate),
		EffectiveFrom: time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)
}

func (e *testEngine) singleUnit(t *testing.T, provider uuid.UUID, category, price string) *domain.Product {
	t.Helper()
	p, err := e.inventory.CreateProduct(context.Background(), ports.CreateProductRequest{
		ProviderID: provider,
		Category:   category,
		Name:       "Account",
		Price:      decimal.RequireFromString(price),
		Kind:       domain.PoolKindSingleUnit,
		Email:      "owner@example.com",
		Password:   "hunter2",
	})
	require.NoError(t, err)
	return p
}

func (e *testEngine) multiSlot(t *testing.T, provider uuid.UUID, category, price string, slots int) *domain.Product {
	t.Helper()
	in := make([]ports.SlotInput, slots)
	for i := range in {
		name := "Profile " + string(rune('A'+i))
		pin := "000" + string(rune('0'+i%10))
		in[i] = ports.SlotInput{ProfileName: &name, PIN: &pin}
	}
	p, err := e.inventory.CreateProduct(context.Background(), ports.CreateProductRequest{
		ProviderID: provider,
		Category:   category,
		Name:       "Family plan",
		Price:      decimal.RequireFromString(price),
		Kind:       domain.PoolKindMultiSlot,
		Email:      "family@example.com",
		Password:   "s3cret",
		Slots:      in,
	})
	require.NoError(t, err)
	return p
}

func (e *testEngine) balance(t *testing.T, owner uuid.UUID) decimal.Decimal {
	t.Helper()
	b, _, err := e.ledger.GetWalletBalance(context.Background(), owner)
	require.NoError(t, err)
	return b
}

func (e *testEngine) product(t *testing.T, id uuid.UUID) *domain.Product {
	t.Helper()
	p, err := e.inventory.GetProduct(context.Background(), id)
	require.NoError(t, err)
	require.NoError(t, p.CheckPoolInvariant())
	return p
}

// assertReconciled checks that every stored balance equals its replayed ledger.
func (e *testEngine) assertReconciled(t *testing.T, owners ...uuid.UUID) {
	t.Helper()
	for _, owner := range append(owners, e.platformOwner) {
		report, err := e.recon.VerifyWallet(context.Background(), owner)
		require.NoError(t, err)
		assert.True(t, report.Consistent, "wallet %s stored=%s reconciled=%s", owner, report.Stored, report.Reconciled)
	}
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}
