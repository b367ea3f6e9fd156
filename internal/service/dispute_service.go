package service

import (
	"context"
	"fmt"
	"time"

	"purchase-engine/internal/core/domain"
	"purchase-engine/internal/core/ports"
	"purchase-engine/internal/telemetry"
	"purchase-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DisputeServiceImpl implements ports.DisputeService.
type DisputeServiceImpl struct {
	orders        ports.OrderStore
	ledger        ports.LedgerService
	inventory     ports.InventoryPool
	events        ports.EventPublisher
	policy        domain.DisputePolicy
	platformOwner uuid.UUID
	scale         int32
	effectTimeout time.Duration
	metrics       *telemetry.Metrics
	log           zerolog.Logger
}

// NewDisputeService creates a new DisputeServiceImpl.
func NewDisputeService(
	orders ports.OrderStore,
	ledger ports.LedgerService,
	inventory ports.InventoryPool,
	events ports.EventPublisher,
	policy domain.DisputePolicy,
	settings PurchaseSettings,
	metrics *telemetry.Metrics,
	log zerolog.Logger,
) *DisputeServiceImpl {
	return &DisputeServiceImpl{
		orders:        orders,
		ledger:        ledger,
		inventory:     inventory,
		events:        events,
		policy:        policy,
		platformOwner: settings.PlatformOwnerID,
		scale:         settings.CurrencyScale,
		effectTimeout: settings.SagaTimeout,
		metrics:       metrics,
		log:           log,
	}
}

// refundPlan is the money moved by one resolution.
type refundPlan struct {
	refund   decimal.Decimal
	provider decimal.Decimal
	platform decimal.Decimal
}

// OpenDispute moves a PAID order owned by buyerID to DISPUTED.
func (s *DisputeServiceImpl) OpenDispute(ctx context.Context, orderID, buyerID uuid.UUID) (*domain.OrderLine, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, toAppError(err)
	}
	if order.BuyerID != buyerID {
		return nil, apperror.ErrNotFound("order")
	}

	updated, err := s.orders.TransitionStatus(ctx, orderID, domain.StatusChange{
		From: domain.OrderStatusPaid,
		To:   domain.OrderStatusDisputed,
		At:   time.Now().UTC(),
	})
	if err != nil {
		return nil, toAppError(err)
	}
	s.log.Info().Str("order_id", orderID.String()).Str("buyer_id", buyerID.String()).Msg("dispute opened")
	s.publish(ctx, domain.EventOrderDisputed, updated)
	return updated, nil
}

// ApplyDisputeResolution applies an operator decision to an order.
//
// The status change is claimed first so concurrent resolutions cannot both
// move money. Ledger effects carry refund references derived from the order
// id; calling again for an order already in the decision's outcome re-applies
// only the effects that are missing.
func (s *DisputeServiceImpl) ApplyDisputeResolution(ctx context.Context, orderID uuid.UUID, decision domain.Decision) (*domain.OrderLine, error) {
	ctx, span := telemetry.StartSpan(ctx, "dispute.ApplyDisputeResolution")
	defer span.End()

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, toAppError(err)
	}

	plan, err := s.plan(order, decision)
	if err != nil {
		return nil, err
	}

	resolved := order
	if !isOutcomeOf(order.Status, decision.Kind) {
		target, err := decision.TargetStatus(order.Status)
		if err != nil {
			return nil, toAppError(fmt.Errorf("resolve order %s from %s: %w", order.ID, order.Status, err))
		}
		refunded := plan.refund
		resolved, err = s.orders.TransitionStatus(ctx, order.ID, domain.StatusChange{
			From:           order.Status,
			To:             target,
			At:             time.Now().UTC(),
			RefundedAmount: &refunded,
		})
		if err != nil {
			return nil, toAppError(err)
		}
	} else if !order.RefundedAmount.Equal(plan.refund) {
		return nil, apperror.ErrInvalidTransition()
	}

	effCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.effectTimeout)
	defer cancel()

	if err := s.applyEffects(effCtx, resolved, decision.Kind, plan); err != nil {
		s.log.Error().Err(err).Str("order_id", order.ID.String()).Msg("resolution effects incomplete, retry the same decision")
		return nil, err
	}

	s.metrics.Resolution(string(decision.Kind))
	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("decision", string(decision.Kind)).
		Str("status", string(resolved.Status)).
		Str("refunded", plan.refund.String()).
		Msg("order resolved")

	eventType := domain.EventOrderResolved
	if resolved.Status == domain.OrderStatusRefunded {
		eventType = domain.EventOrderRefunded
	}
	s.publish(effCtx, eventType, resolved)
	return resolved, nil
}

func (s *DisputeServiceImpl) plan(order *domain.OrderLine, decision domain.Decision) (refundPlan, error) {
	switch decision.Kind {
	case domain.DecisionFullRefund:
		return refundPlan{
			refund:   order.GrossAmount,
			provider: order.ProviderEarnings,
			platform: order.PlatformCommission,
		}, nil
	case domain.DecisionPartialRefund:
		pct := decision.Percent
		if pct.IsZero() {
			pct = s.policy.DefaultPartialPercent
		}
		if !pct.IsPositive() || pct.GreaterThanOrEqual(hundred) {
			return refundPlan{}, apperror.Validation("partial refund percent must be between 0 and 100")
		}
		refund := domain.Proportion(order.GrossAmount, pct, s.scale)
		provider := domain.Proportion(order.ProviderEarnings, pct, s.scale)
		return refundPlan{
			refund:   refund,
			provider: provider,
			platform: refund.Sub(provider),
		}, nil
	case domain.DecisionRelease:
		return refundPlan{refund: decimal.Zero, provider: decimal.Zero, platform: decimal.Zero}, nil
	default:
		return refundPlan{}, apperror.Validation(fmt.Sprintf("unknown decision %q", decision.Kind))
	}
}

func (s *DisputeServiceImpl) applyEffects(ctx context.Context, order *domain.OrderLine, kind domain.DecisionKind, plan refundPlan) error {
	meta := map[string]string{"order_id": order.ID.String(), "decision": string(kind)}

	if plan.refund.IsPositive() {
		buyerWallet, err := s.ledger.GetWallet(ctx, order.BuyerID)
		if err != nil {
			return err
		}
		if _, err := s.ledger.Credit(ctx, ports.LedgerRequest{
			WalletID:  buyerWallet.ID,
			Amount:    plan.refund,
			Kind:      domain.EntryKindRefundCredit,
			Reference: domain.RefundReference(order.ID, domain.LegBuyer),
			Metadata:  meta,
		}); err != nil {
			return err
		}
	}

	clawbacks := []struct {
		owner  uuid.UUID
		amount decimal.Decimal
		leg    string
	}{
		{order.ProviderID, plan.provider, domain.LegProvider},
		{s.platformOwner, plan.platform, domain.LegPlatform},
	}
	for _, cb := range clawbacks {
		if !cb.amount.IsPositive() {
			continue
		}
		wallet, err := s.ledger.GetWallet(ctx, cb.owner)
		if err != nil {
			return err
		}
		if _, err := s.ledger.Clawback(ctx, ports.LedgerRequest{
			WalletID:  wallet.ID,
			Amount:    cb.amount,
			Kind:      domain.EntryKindRefundDebit,
			Reference: domain.RefundReference(order.ID, cb.leg),
			Metadata:  meta,
		}); err != nil {
			return err
		}
	}

	if s.policy.ReleasesSlot(order.Category, kind) {
		handle := &domain.SlotHandle{ReservationID: order.ReservationID, ProductID: order.ProductID}
		if err := s.inventory.Release(ctx, handle); err != nil {
			return err
		}
	}
	return nil
}

// isOutcomeOf reports whether status is what kind produces, meaning the
// transition already happened and only effects may be missing.
func isOutcomeOf(status domain.OrderStatus, kind domain.DecisionKind) bool {
	switch kind {
	case domain.DecisionFullRefund:
		return status == domain.OrderStatusRefunded || status == domain.OrderStatusResolvedRefund
	case domain.DecisionPartialRefund:
		return status == domain.OrderStatusResolvedPartialRefund
	case domain.DecisionRelease:
		return status == domain.OrderStatusResolvedRelease
	}
	return false
}

func (s *DisputeServiceImpl) publish(ctx context.Context, t domain.EventType, order *domain.OrderLine) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, domain.NewOrderEvent(t, order)); err != nil {
		s.log.Warn().Err(err).Str("order_id", order.ID.String()).Str("event", string(t)).Msg("failed to publish order event")
	}
}
