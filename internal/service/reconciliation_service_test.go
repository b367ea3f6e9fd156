package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"purchase-engine/internal/core/domain"
	"purchase-engine/internal/core/ports"
	"purchase-engine/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// abandonSaga reserves a unit and applies the first legs of a purchase as if
// the process died before materializing the order.
func abandonSaga(t *testing.T, e *testEngine, buyer, provider uuid.UUID, p *domain.Product, at time.Time) *domain.SlotHandle {
	t.Helper()
	ctx := context.Background()

	e.db.SetClock(func() time.Time { return at })
	handle, err := e.inventory.ReserveOne(ctx, p.ID, buyer)
	require.NoError(t, err)
	e.db.SetClock(func() time.Time { return time.Now().UTC() })

	buyerWallet, err := e.ledger.GetWallet(ctx, buyer)
	require.NoError(t, err)
	providerWallet, err := e.ledger.GetWallet(ctx, provider)
	require.NoError(t, err)

	_, err = e.ledger.Debit(ctx, ports.LedgerRequest{
		WalletID:  buyerWallet.ID,
		Amount:    p.Price,
		Kind:      domain.EntryKindPurchaseDebit,
		Reference: domain.PurchaseReference(handle.ReservationID, domain.LegDebit),
	})
	require.NoError(t, err)
	_, err = e.ledger.Credit(ctx, ports.LedgerRequest{
		WalletID:  providerWallet.ID,
		Amount:    decimal.RequireFromString("9.00"),
		Kind:      domain.EntryKindProviderCredit,
		Reference: domain.PurchaseReference(handle.ReservationID, domain.LegProvider),
	})
	require.NoError(t, err)
	return handle
}

func TestSweep_ReversesAbandonedPurchase(t *testing.T) {
	e := newTestEngine(t)
	provider := e.user(t, "0")
	buyer := e.user(t, "20.00")
	p := e.singleUnit(t, provider, "software", "10.00")

	handle := abandonSaga(t, e, buyer, provider, p, time.Now().UTC().Add(-time.Hour))
	assertAmount(t, "10.00", e.balance(t, buyer))
	assert.False(t, e.product(t, p.ID).IsActive)

	report, err := e.recon.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ports.SweepReport{Scanned: 1, Released: 1}, report)

	assertAmount(t, "20.00", e.balance(t, buyer))
	assertAmount(t, "0", e.balance(t, provider))
	got := e.product(t, p.ID)
	assert.True(t, got.IsActive)
	assert.Equal(t, 1, got.Pool.AvailableSlots())
	e.assertReconciled(t, buyer, provider)

	// A saga that wakes up late cannot commit the swept reservation.
	split, err := domain.SplitCommission(p.Price, decimal.RequireFromString("0.10"), 2)
	require.NoError(t, err)
	err = e.stores.Orders.Materialize(context.Background(), domain.NewPaidOrder(buyer, p, handle, split))
	assert.ErrorIs(t, err, domain.ErrReservationNotHeld)

	report, err = e.recon.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ports.SweepReport{}, report)
}

func TestSweep_IgnoresFreshAndCommittedReservations(t *testing.T) {
	e := newTestEngine(t)
	e.rate(t, nil, "0.10")
	provider := e.user(t, "0")
	buyer := e.user(t, "50.00")
	p := e.multiSlot(t, provider, "streaming", "10.00", 3)

	// committed long ago
	e.db.SetClock(func() time.Time { return time.Now().UTC().Add(-time.Hour) })
	order := buy(t, e, buyer, p)
	e.db.SetClock(func() time.Time { return time.Now().UTC() })

	// still inside the saga window
	_, err := e.inventory.ReserveOne(context.Background(), p.ID, buyer)
	require.NoError(t, err)

	report, err := e.recon.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Scanned)
	assert.Equal(t, 1, e.product(t, p.ID).Pool.AvailableSlots())

	res, err := e.stores.Inventory.GetReservation(context.Background(), order.ReservationID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCommitted, res.Status)
}

func TestSweep_ReservationWithoutLedgerEffects(t *testing.T) {
	e := newTestEngine(t)
	provider := e.user(t, "0")
	buyer := e.user(t, "5.00")
	p := e.multiSlot(t, provider, "streaming", "10.00", 1)

	e.db.SetClock(func() time.Time { return time.Now().UTC().Add(-time.Hour) })
	_, err := e.inventory.ReserveOne(context.Background(), p.ID, buyer)
	require.NoError(t, err)
	e.db.SetClock(func() time.Time { return time.Now().UTC() })

	report, err := e.recon.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Released)
	assertAmount(t, "5.00", e.balance(t, buyer))
	assert.True(t, e.product(t, p.ID).IsActive)
}

func TestReconciliation_RunStopsOnCancel(t *testing.T) {
	e := newTestEngine(t)
	provider := e.user(t, "0")
	buyer := e.user(t, "20.00")
	p := e.singleUnit(t, provider, "software", "10.00")
	abandonSaga(t, e, buyer, provider, p, time.Now().UTC().Add(-time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.recon.Run(ctx) }()

	require.Eventually(t, func() bool {
		b, _, err := e.ledger.GetWalletBalance(context.Background(), buyer)
		return err == nil && b.Equal(decimal.RequireFromString("20.00"))
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestReconciliation_VerifyWalletDetectsDrift(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockLedgerService(ctrl)
	svc := NewReconciliationService(mocks.NewMockInventoryStore(ctrl), mocks.NewMockWalletStore(ctrl), ledger, SweepSettings{}, nil, newTestLogger())

	wallet := domain.NewWallet(uuid.New(), "USD")
	wallet.Balance = decimal.RequireFromString("5.00")
	ledger.EXPECT().GetWallet(gomock.Any(), wallet.OwnerID).Return(wallet, nil)
	ledger.EXPECT().Reconcile(gomock.Any(), wallet.ID).Return(decimal.RequireFromString("4.00"), nil)

	report, err := svc.VerifyWallet(context.Background(), wallet.OwnerID)
	require.NoError(t, err)
	assert.False(t, report.Consistent)
	assertAmount(t, "5.00", report.Stored)
	assertAmount(t, "4.00", report.Reconciled)
}

func TestSweep_ReleaseErrorCountsAsFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inventory := mocks.NewMockInventoryStore(ctrl)
	svc := NewReconciliationService(inventory, mocks.NewMockWalletStore(ctrl), mocks.NewMockLedgerService(ctrl), SweepSettings{
		ReservationTimeout: time.Minute,
		Batch:              10,
	}, nil, newTestLogger())

	stale := []domain.Reservation{{ID: uuid.New()}, {ID: uuid.New()}}
	inventory.EXPECT().ListStaleReservations(gomock.Any(), gomock.Any(), 10).Return(stale, nil)
	inventory.EXPECT().ReleaseIfReserved(gomock.Any(), stale[0].ID).Return(false, errors.New("conn refused"))
	inventory.EXPECT().ReleaseIfReserved(gomock.Any(), stale[1].ID).Return(false, nil)

	report, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ports.SweepReport{Scanned: 2, Failed: 1}, report)
}
