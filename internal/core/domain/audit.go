package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionPurchase         AuditAction = "PURCHASE"
	AuditActionOpenDispute      AuditAction = "OPEN_DISPUTE"
	AuditActionResolveOrder     AuditAction = "RESOLVE_ORDER"
	AuditActionOpenWallet       AuditAction = "OPEN_WALLET"
	AuditActionRecharge         AuditAction = "RECHARGE"
	AuditActionSetWalletStatus  AuditAction = "SET_WALLET_STATUS"
	AuditActionCreateCommission AuditAction = "CREATE_COMMISSION"
	AuditActionToggleCommission AuditAction = "TOGGLE_COMMISSION"
	AuditActionCreateProduct    AuditAction = "CREATE_PRODUCT"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	ActorID      *uuid.UUID  `json:"actor_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
