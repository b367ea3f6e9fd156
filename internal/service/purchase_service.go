package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"purchase-engine/internal/core/domain"
	"purchase-engine/internal/core/ports"
	"purchase-engine/internal/telemetry"
	"purchase-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PurchaseSettings configures the purchase saga.
type PurchaseSettings struct {
	PlatformOwnerID uuid.UUID
	CurrencyScale   int32
	// SagaTimeout bounds steps 4-6, which run detached from the caller's
	// cancellation once a unit is reserved.
	SagaTimeout time.Duration
}

// PurchaseServiceImpl implements ports.PurchaseService.
type PurchaseServiceImpl struct {
	inventory  ports.InventoryPool
	commission ports.CommissionResolver
	ledger     ports.LedgerService
	orders     ports.OrderStore
	events     ports.EventPublisher
	settings   PurchaseSettings
	metrics    *telemetry.Metrics
	log        zerolog.Logger
}

// NewPurchaseService creates a new PurchaseServiceImpl.
func NewPurchaseService(
	inventory ports.InventoryPool,
	commission ports.CommissionResolver,
	ledger ports.LedgerService,
	orders ports.OrderStore,
	events ports.EventPublisher,
	settings PurchaseSettings,
	metrics *telemetry.Metrics,
	log zerolog.Logger,
) *PurchaseServiceImpl {
	return &PurchaseServiceImpl{
		inventory:  inventory,
		commission: commission,
		ledger:     ledger,
		orders:     orders,
		events:     events,
		settings:   settings,
		metrics:    metrics,
		log:        log,
	}
}

// appliedLegs tracks which ledger effects of one saga have landed.
type appliedLegs struct {
	debit    *domain.LedgerEntry
	provider *domain.LedgerEntry
	platform *domain.LedgerEntry
	// unknown names a leg whose call failed without a definite rejection.
	// It may still have committed.
	unknown string
}

func (l *appliedLegs) set(leg string, entry *domain.LedgerEntry) {
	switch leg {
	case domain.LegDebit:
		l.debit = entry
	case domain.LegProvider:
		l.provider = entry
	case domain.LegPlatform:
		l.platform = entry
	}
}

// isRejection reports whether err means the ledger refused the operation
// outright, as opposed to an outcome the caller cannot know.
func isRejection(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.HTTPStatus < http.StatusInternalServerError
}

// Purchase runs the purchase saga for one unit of req.ProductID.
//
// Steps 1-3 (load, resolve commission, reserve) have no side effects before
// the reservation. Every failure after it is compensated before returning.
func (s *PurchaseServiceImpl) Purchase(ctx context.Context, req ports.PurchaseRequest) (*ports.PurchaseResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "purchase.Purchase")
	defer span.End()

	started := time.Now()
	result, err := s.purchase(ctx, req)
	s.metrics.ObservePurchase(purchaseOutcome(err), started)
	return result, err
}

func (s *PurchaseServiceImpl) purchase(ctx context.Context, req ports.PurchaseRequest) (*ports.PurchaseResult, error) {
	log := s.log.With().Str("buyer_id", req.BuyerID.String()).Str("product_id", req.ProductID.String()).Logger()

	// 1. Load product and buyer wallet
	product, err := s.inventory.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		if product.DeactivationReason == domain.DeactivationSoldOut {
			return nil, apperror.ErrOutOfStock()
		}
		return nil, apperror.ErrProductInactive()
	}
	if product.ProviderID == req.BuyerID {
		return nil, apperror.Validation("providers cannot buy their own products")
	}

	buyerWallet, err := s.ledger.GetWallet(ctx, req.BuyerID)
	if err != nil {
		return nil, err
	}
	if !buyerWallet.IsActive() {
		return nil, apperror.ErrWalletSuspended()
	}

	// 2. Resolve commission
	cfg, err := s.commission.Resolve(ctx, product.Category, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	split, err := domain.SplitCommission(product.Price, cfg.Rate, s.settings.CurrencyScale)
	if err != nil {
		return nil, toAppError(fmt.Errorf("split commission of product %s: %w", product.ID, err))
	}

	// 3. Reserve one unit
	handle, err := s.inventory.ReserveOne(ctx, product.ID, req.BuyerID)
	if err != nil {
		return nil, err
	}
	log = log.With().Str("reservation_id", handle.ReservationID.String()).Logger()

	// 4-6. From here on the saga must reach a terminal state even if the
	// caller goes away.
	sagaCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.settings.SagaTimeout)
	defer cancel()

	order, err := s.settle(sagaCtx, log, req.BuyerID, buyerWallet.ID, product, handle, split)
	if err != nil {
		return nil, err
	}
	log.Info().Str("order_id", order.ID.String()).Str("gross", order.GrossAmount.String()).Msg("purchase completed")

	s.publish(sagaCtx, domain.EventOrderPaid, order)

	// 7. Reveal credentials; the order is paid either way.
	creds, err := s.inventory.RevealCredentials(sagaCtx, order)
	if err != nil {
		log.Error().Err(err).Str("order_id", order.ID.String()).Msg("credentials unavailable for paid order")
		creds = nil
	}
	return &ports.PurchaseResult{Order: order, Credentials: creds}, nil
}

// settle runs steps 4-6 and compensates on failure.
func (s *PurchaseServiceImpl) settle(
	ctx context.Context,
	log zerolog.Logger,
	buyerID, buyerWalletID uuid.UUID,
	product *domain.Product,
	handle *domain.SlotHandle,
	split domain.CommissionSplit,
) (*domain.OrderLine, error) {
	var legs appliedLegs
	meta := map[string]string{
		"product_id":     product.ID.String(),
		"reservation_id": handle.ReservationID.String(),
		"buyer_id":       buyerID.String(),
	}

	fail := func(step string, err error) (*domain.OrderLine, error) {
		log.Warn().Err(err).Str("step", step).Msg("purchase failed after reservation, compensating")
		s.compensate(ctx, log, handle, legs)
		return nil, err
	}
	failLeg := func(leg string, err error) (*domain.OrderLine, error) {
		if !isRejection(err) {
			legs.unknown = leg
		}
		return fail(leg, err)
	}

	// 4. Debit buyer
	debit, err := s.ledger.Debit(ctx, ports.LedgerRequest{
		WalletID:  buyerWalletID,
		Amount:    split.Gross,
		Kind:      domain.EntryKindPurchaseDebit,
		Reference: domain.PurchaseReference(handle.ReservationID, domain.LegDebit),
		Metadata:  meta,
	})
	if err != nil {
		return failLeg(domain.LegDebit, err)
	}
	legs.debit = debit

	// 5. Credit provider and platform
	if split.ProviderEarnings.IsPositive() {
		providerWallet, err := s.ledger.GetWallet(ctx, product.ProviderID)
		if err != nil {
			return fail("provider_wallet", err)
		}
		legs.provider, err = s.ledger.Credit(ctx, ports.LedgerRequest{
			WalletID:  providerWallet.ID,
			Amount:    split.ProviderEarnings,
			Kind:      domain.EntryKindProviderCredit,
			Reference: domain.PurchaseReference(handle.ReservationID, domain.LegProvider),
			Metadata:  meta,
		})
		if err != nil {
			return failLeg(domain.LegProvider, err)
		}
	}
	if split.PlatformCommission.IsPositive() {
		platformWallet, err := s.ledger.GetWallet(ctx, s.settings.PlatformOwnerID)
		if err != nil {
			return fail("platform_wallet", err)
		}
		legs.platform, err = s.ledger.Credit(ctx, ports.LedgerRequest{
			WalletID:  platformWallet.ID,
			Amount:    split.PlatformCommission,
			Kind:      domain.EntryKindPlatformCommissionCredit,
			Reference: domain.PurchaseReference(handle.ReservationID, domain.LegPlatform),
			Metadata:  meta,
		})
		if err != nil {
			return failLeg(domain.LegPlatform, err)
		}
	}

	// 6. Materialize order and commit the reservation
	order := domain.NewPaidOrder(buyerID, product, handle, split)
	if err := s.orders.Materialize(ctx, order); err != nil {
		if errors.Is(err, domain.ErrReservationNotHeld) {
			return fail("materialize", apperror.ErrOutOfStock())
		}
		if stored, lookupErr := s.orders.GetByID(ctx, order.ID); lookupErr == nil {
			// The commit landed even though the call reported an error.
			return stored, nil
		}
		return fail("materialize", toAppError(fmt.Errorf("materialize order: %w", err)))
	}
	return order, nil
}

// compensate undoes the legs that landed, newest first, then returns the
// unit. A leg with an unknown outcome is looked up by its reference first.
// If any lookup or reversal fails the reservation is left RESERVED so the
// sweeper retries the whole compensation later.
func (s *PurchaseServiceImpl) compensate(ctx context.Context, log zerolog.Logger, handle *domain.SlotHandle, legs appliedLegs) {
	ok := true

	if legs.unknown != "" {
		ref := domain.PurchaseReference(handle.ReservationID, legs.unknown)
		entry, err := s.ledger.FindEntry(ctx, ref)
		if err != nil {
			ok = false
			log.Error().Err(err).Str("reference", ref).Msg("cannot tell whether ledger leg landed")
		} else if entry != nil {
			log.Warn().Str("reference", ref).Msg("ledger leg landed despite error, reversing")
			legs.set(legs.unknown, entry)
		}
	}

	for _, credit := range []*domain.LedgerEntry{legs.platform, legs.provider} {
		if credit == nil {
			continue
		}
		_, err := s.ledger.Clawback(ctx, ports.LedgerRequest{
			WalletID:  credit.WalletID(),
			Amount:    credit.Amount,
			Kind:      domain.EntryKindReversalDebit,
			Reference: domain.ReversalReference(credit.Reference),
			Metadata:  map[string]string{"reverses": credit.Reference},
		})
		s.metrics.Compensation("reverse_credit", err == nil)
		if err != nil {
			ok = false
			log.Error().Err(err).Str("reference", credit.Reference).Msg("failed to reverse credit")
		}
	}

	if legs.debit != nil {
		_, err := s.ledger.Credit(ctx, ports.LedgerRequest{
			WalletID:  legs.debit.WalletID(),
			Amount:    legs.debit.Amount,
			Kind:      domain.EntryKindReversalCredit,
			Reference: domain.ReversalReference(legs.debit.Reference),
			Metadata:  map[string]string{"reverses": legs.debit.Reference},
		})
		s.metrics.Compensation("reverse_debit", err == nil)
		if err != nil {
			ok = false
			log.Error().Err(err).Str("reference", legs.debit.Reference).Msg("failed to refund buyer debit")
		}
	}

	if !ok {
		log.Error().Msg("compensation incomplete, leaving reservation for the sweeper")
		return
	}

	err := s.inventory.Release(ctx, handle)
	s.metrics.Compensation("release", err == nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to release reservation")
	}
}

// GetOrder returns an order to its buyer or an admin. Credentials are only
// included while the order is PAID.
func (s *PurchaseServiceImpl) GetOrder(ctx context.Context, orderID, requesterID uuid.UUID, isAdmin bool) (*ports.PurchaseResult, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, toAppError(err)
	}
	if !isAdmin && order.BuyerID != requesterID {
		return nil, apperror.ErrNotFound("order")
	}

	result := &ports.PurchaseResult{Order: order}
	if order.CredentialsVisible() {
		creds, err := s.inventory.RevealCredentials(ctx, order)
		if err != nil {
			return nil, err
		}
		result.Credentials = creds
	}
	return result, nil
}

func (s *PurchaseServiceImpl) publish(ctx context.Context, t domain.EventType, order *domain.OrderLine) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, domain.NewOrderEvent(t, order)); err != nil {
		s.log.Warn().Err(err).Str("order_id", order.ID.String()).Str("event", string(t)).Msg("failed to publish order event")
	}
}

func purchaseOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case apperror.HasCode(err, "INV_001"):
		return "out_of_stock"
	case apperror.HasCode(err, "PAY_001"):
		return "insufficient_balance"
	case apperror.HasCode(err, "COM_001"):
		return "no_commission"
	default:
		return "error"
	}
}
