package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletStatus represents whether a wallet may be debited.
type WalletStatus string

const (
	WalletStatusActive    WalletStatus = "ACTIVE"
	WalletStatusSuspended WalletStatus = "SUSPENDED"
)

// Wallet holds a user's balance. Balance is only ever changed together with
// a ledger entry in the same storage transaction.
type Wallet struct {
	ID        uuid.UUID       `json:"id"`
	OwnerID   uuid.UUID       `json:"owner_id"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	Status    WalletStatus    `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IsActive returns true if the wallet accepts debits.
func (w *Wallet) IsActive() bool {
	return w.Status == WalletStatusActive
}

// NewWallet creates an empty active wallet for owner.
func NewWallet(ownerID uuid.UUID, currency string) *Wallet {
	now := time.Now().UTC()
	return &Wallet{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Balance:   decimal.Zero,
		Currency:  currency,
		Status:    WalletStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Liability records an amount that could not be collected from a wallet
// during a refund clawback.
type Liability struct {
	ID        uuid.UUID       `json:"id"`
	WalletID  uuid.UUID       `json:"wallet_id"`
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// ClawbackResult describes what a clawback collected. Entry is nil when the
// wallet was empty; Liability is nil when the full amount was collected.
type ClawbackResult struct {
	Entry     *LedgerEntry `json:"entry,omitempty"`
	Liability *Liability   `json:"liability,omitempty"`
}
