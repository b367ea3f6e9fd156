package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"purchase-engine/internal/core/domain"
	"purchase-engine/internal/core/ports"
	"purchase-engine/internal/telemetry"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SweepSettings configures the reservation sweeper.
type SweepSettings struct {
	ReservationTimeout time.Duration
	Interval           time.Duration
	Batch              int
}

// ReconciliationServiceImpl implements ports.ReconciliationService.
type ReconciliationServiceImpl struct {
	inventory ports.InventoryStore
	wallets   ports.WalletStore
	ledger    ports.LedgerService
	settings  SweepSettings
	metrics   *telemetry.Metrics
	log       zerolog.Logger
}

// NewReconciliationService creates a new ReconciliationServiceImpl.
func NewReconciliationService(
	inventory ports.InventoryStore,
	wallets ports.WalletStore,
	ledger ports.LedgerService,
	settings SweepSettings,
	metrics *telemetry.Metrics,
	log zerolog.Logger,
) *ReconciliationServiceImpl {
	return &ReconciliationServiceImpl{
		inventory: inventory,
		wallets:   wallets,
		ledger:    ledger,
		settings:  settings,
		metrics:   metrics,
		log:       log,
	}
}

// Sweep releases reservations that outlived the saga without producing an
// order and reverses whatever purchase entries they left behind.
func (s *ReconciliationServiceImpl) Sweep(ctx context.Context) (ports.SweepReport, error) {
	ctx, span := telemetry.StartSpan(ctx, "reconciliation.Sweep")
	defer span.End()

	var report ports.SweepReport
	cutoff := time.Now().UTC().Add(-s.settings.ReservationTimeout)
	stale, err := s.inventory.ListStaleReservations(ctx, cutoff, s.settings.Batch)
	if err != nil {
		return report, fmt.Errorf("list stale reservations: %w", err)
	}
	report.Scanned = len(stale)

	for i := range stale {
		res := &stale[i]
		log := s.log.With().Str("reservation_id", res.ID.String()).Logger()

		// Claim first: once released, a late Materialize fails and the
		// saga compensates with the same references used below.
		released, err := s.inventory.ReleaseIfReserved(ctx, res.ID)
		if err != nil {
			report.Failed++
			log.Error().Err(err).Msg("failed to release stale reservation")
			continue
		}
		if !released {
			continue
		}
		if err := s.reversePurchase(ctx, res.ID); err != nil {
			report.Failed++
			log.Error().Err(err).Msg("stale reservation released but ledger reversal failed")
			continue
		}
		report.Released++
		log.Warn().Str("product_id", res.ProductID.String()).Msg("orphaned reservation swept")
	}

	s.metrics.Swept(report.Released)
	return report, nil
}

// reversePurchase undoes every purchase leg of reservationID that landed.
func (s *ReconciliationServiceImpl) reversePurchase(ctx context.Context, reservationID uuid.UUID) error {
	for _, leg := range []string{domain.LegPlatform, domain.LegProvider} {
		entry, err := s.entry(ctx, domain.PurchaseReference(reservationID, leg))
		if err != nil {
			return err
		}
		if entry == nil {
			continue
		}
		if _, err := s.ledger.Clawback(ctx, ports.LedgerRequest{
			WalletID:  entry.WalletID(),
			Amount:    entry.Amount,
			Kind:      domain.EntryKindReversalDebit,
			Reference: domain.ReversalReference(entry.Reference),
			Metadata:  map[string]string{"reverses": entry.Reference, "source": "sweeper"},
		}); err != nil {
			return err
		}
	}

	debit, err := s.entry(ctx, domain.PurchaseReference(reservationID, domain.LegDebit))
	if err != nil || debit == nil {
		return err
	}
	_, err = s.ledger.Credit(ctx, ports.LedgerRequest{
		WalletID:  debit.WalletID(),
		Amount:    debit.Amount,
		Kind:      domain.EntryKindReversalCredit,
		Reference: domain.ReversalReference(debit.Reference),
		Metadata:  map[string]string{"reverses": debit.Reference, "source": "sweeper"},
	})
	return err
}

func (s *ReconciliationServiceImpl) entry(ctx context.Context, reference string) (*domain.LedgerEntry, error) {
	entry, err := s.wallets.GetEntryByReference(ctx, reference)
	if errors.Is(err, domain.ErrEntryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load entry %s: %w", reference, err)
	}
	return entry, nil
}

// Run sweeps on the configured interval until ctx is cancelled.
func (s *ReconciliationServiceImpl) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.settings.Interval)
	defer ticker.Stop()

	s.log.Info().Dur("interval", s.settings.Interval).Dur("timeout", s.settings.ReservationTimeout).Msg("reservation sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("reservation sweeper stopped")
			return nil
		case <-ticker.C:
			report, err := s.Sweep(ctx)
			if err != nil {
				s.log.Error().Err(err).Msg("sweep failed")
				continue
			}
			if report.Scanned > 0 {
				s.log.Info().
					Int("scanned", report.Scanned).
					Int("released", report.Released).
					Int("failed", report.Failed).
					Msg("sweep finished")
			}
		}
	}
}

// VerifyWallet compares ownerID's stored balance with its replayed ledger.
func (s *ReconciliationServiceImpl) VerifyWallet(ctx context.Context, ownerID uuid.UUID) (*ports.WalletReport, error) {
	wallet, err := s.ledger.GetWallet(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	reconciled, err := s.ledger.Reconcile(ctx, wallet.ID)
	if err != nil {
		return nil, err
	}

	report := &ports.WalletReport{
		WalletID:   wallet.ID,
		OwnerID:    ownerID,
		Stored:     wallet.Balance,
		Reconciled: reconciled,
		Consistent: wallet.Balance.Equal(reconciled),
	}
	if !report.Consistent {
		s.log.Error().
			Str("wallet_id", wallet.ID.String()).
			Str("stored", wallet.Balance.String()).
			Str("reconciled", reconciled.String()).
			Msg("wallet balance diverges from ledger")
	}
	return report, nil
}
