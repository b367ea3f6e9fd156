package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// IdempotencyRecord is a cached HTTP response for a client-supplied
// Idempotency-Key.
type IdempotencyRecord struct {
	Key          string    `json:"key"`
	StatusCode   int       `json:"status_code"`
	ResponseJSON []byte    `json:"response_json"`
	CreatedAt    time.Time `json:"created_at"`
}

// BuildPurchaseIdempotencyKey scopes a client key to the buyer that sent it.
func BuildPurchaseIdempotencyKey(buyerID uuid.UUID, clientKey string) string {
	return "purchase:" + buyerID.String() + ":" + clientKey
}

// Ledger reference legs.
const (
	LegDebit    = "debit"
	LegProvider = "provider"
	LegPlatform = "platform"
	LegBuyer    = "buyer"
)

const reversalSuffix = ":reversal"

// PurchaseReference is the ledger reference of one saga leg of a reservation.
func PurchaseReference(reservationID uuid.UUID, leg string) string {
	return "purchase:" + reservationID.String() + ":" + leg
}

// ReversalReference is the reference of the entry that undoes ref.
func ReversalReference(ref string) string {
	return ref + reversalSuffix
}

// IsReversalReference reports whether ref undoes another entry.
func IsReversalReference(ref string) bool {
	return strings.HasSuffix(ref, reversalSuffix)
}

// RefundReference is the ledger reference of one leg of an order refund.
func RefundReference(orderID uuid.UUID, leg string) string {
	return "refund:" + orderID.String() + ":" + leg
}

// RechargeReference namespaces an external deposit reference.
func RechargeReference(external string) string {
	return "recharge:" + external
}
