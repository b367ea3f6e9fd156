package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order line.
type OrderStatus string

const (
	OrderStatusPending               OrderStatus = "PENDING"
	OrderStatusPaid                  OrderStatus = "PAID"
	OrderStatusRefunded              OrderStatus = "REFUNDED"
	OrderStatusDisputed              OrderStatus = "DISPUTED"
	OrderStatusResolvedRefund        OrderStatus = "RESOLVED_REFUND"
	OrderStatusResolvedPartialRefund OrderStatus = "RESOLVED_PARTIAL_REFUND"
	OrderStatusResolvedRelease       OrderStatus = "RESOLVED_RELEASE"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:  {OrderStatusPaid},
	OrderStatusPaid:     {OrderStatusRefunded, OrderStatusDisputed},
	OrderStatusDisputed: {OrderStatusResolvedRefund, OrderStatusResolvedPartialRefund, OrderStatusResolvedRelease},
}

// CanTransition reports whether the order state machine allows from -> to.
func CanTransition(from, to OrderStatus) bool {
	for _, s := range orderTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// OrderLine is the durable receipt of one unit sold.
type OrderLine struct {
	ID                 uuid.UUID       `json:"id"`
	BuyerID            uuid.UUID       `json:"buyer_id"`
	ProductID          uuid.UUID       `json:"product_id"`
	ProviderID         uuid.UUID       `json:"provider_id"`
	ReservationID      uuid.UUID       `json:"reservation_id"`
	SlotID             *uuid.UUID      `json:"slot_id,omitempty"`
	Category           string          `json:"category"`
	GrossAmount        decimal.Decimal `json:"gross_amount"`
	ProviderEarnings   decimal.Decimal `json:"provider_earnings"`
	PlatformCommission decimal.Decimal `json:"platform_commission"`
	CommissionRate     decimal.Decimal `json:"commission_rate"`
	Currency           string          `json:"currency"`
	Status             OrderStatus     `json:"status"`
	RefundedAmount     decimal.Decimal `json:"refunded_amount"`
	CreatedAt          time.Time       `json:"created_at"`
	CompletedAt        *time.Time      `json:"completed_at,omitempty"`
	RefundedAt         *time.Time      `json:"refunded_at,omitempty"`
}

// NewPaidOrder builds the order line for a reservation whose ledger effects
// have all landed.
func NewPaidOrder(buyerID uuid.UUID, product *Product, handle *SlotHandle, split CommissionSplit) *OrderLine {
	now := time.Now().UTC()
	return &OrderLine{
		ID:                 uuid.New(),
		BuyerID:            buyerID,
		ProductID:          product.ID,
		ProviderID:         product.ProviderID,
		ReservationID:      handle.ReservationID,
		SlotID:             handle.SlotID(),
		Category:           product.Category,
		GrossAmount:        split.Gross,
		ProviderEarnings:   split.ProviderEarnings,
		PlatformCommission: split.PlatformCommission,
		CommissionRate:     split.Rate,
		Currency:           product.Currency,
		Status:             OrderStatusPaid,
		RefundedAmount:     decimal.Zero,
		CreatedAt:          now,
		CompletedAt:        &now,
	}
}

// CredentialsVisible reports whether the buyer may see the account details.
func (o *OrderLine) CredentialsVisible() bool {
	return o.Status == OrderStatusPaid
}

// StatusChange is a compare-and-swap request on an order's status.
type StatusChange struct {
	From           OrderStatus
	To             OrderStatus
	At             time.Time
	RefundedAmount *decimal.Decimal
}

// DecisionKind is the outcome of a refund or dispute resolution.
type DecisionKind string

const (
	DecisionFullRefund    DecisionKind = "FULL_REFUND"
	DecisionPartialRefund DecisionKind = "PARTIAL_REFUND"
	DecisionRelease       DecisionKind = "RELEASE"
)

// Decision is an operator's resolution of a paid or disputed order.
// Percent applies to partial refunds only; zero means the configured default.
type Decision struct {
	Kind    DecisionKind    `json:"kind"`
	Percent decimal.Decimal `json:"percent"`
}

// TargetStatus returns the status an order in from moves to under d.
func (d Decision) TargetStatus(from OrderStatus) (OrderStatus, error) {
	switch d.Kind {
	case DecisionFullRefund:
		switch from {
		case OrderStatusPaid:
			return OrderStatusRefunded, nil
		case OrderStatusDisputed:
			return OrderStatusResolvedRefund, nil
		}
	case DecisionPartialRefund:
		if from == OrderStatusDisputed {
			return OrderStatusResolvedPartialRefund, nil
		}
	case DecisionRelease:
		if from == OrderStatusDisputed {
			return OrderStatusResolvedRelease, nil
		}
	}
	return "", ErrInvalidTransition
}

// Credentials is the decrypted account payload revealed to a paying buyer.
type Credentials struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	ProfileName *string `json:"profile_name,omitempty"`
	PIN         *string `json:"pin,omitempty"`
}
