package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType names an order lifecycle event.
type EventType string

const (
	EventOrderPaid     EventType = "order.paid"
	EventOrderRefunded EventType = "order.refunded"
	EventOrderDisputed EventType = "order.disputed"
	EventOrderResolved EventType = "order.resolved"
)

// OrderEvent is published after an order changes state.
type OrderEvent struct {
	Type           EventType       `json:"type"`
	OrderID        uuid.UUID       `json:"order_id"`
	BuyerID        uuid.UUID       `json:"buyer_id"`
	ProductID      uuid.UUID       `json:"product_id"`
	ProviderID     uuid.UUID       `json:"provider_id"`
	Status         OrderStatus     `json:"status"`
	GrossAmount    decimal.Decimal `json:"gross_amount"`
	RefundedAmount decimal.Decimal `json:"refunded_amount"`
	Currency       string          `json:"currency"`
	OccurredAt     time.Time       `json:"occurred_at"`
}

// NewOrderEvent snapshots order into an event of type t.
func NewOrderEvent(t EventType, order *OrderLine) OrderEvent {
	return OrderEvent{
		Type:           t,
		OrderID:        order.ID,
		BuyerID:        order.BuyerID,
		ProductID:      order.ProductID,
		ProviderID:     order.ProviderID,
		Status:         order.Status,
		GrossAmount:    order.GrossAmount,
		RefundedAmount: order.RefundedAmount,
		Currency:       order.Currency,
		OccurredAt:     time.Now().UTC(),
	}
}
