package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryKind classifies a balance-affecting event.
type EntryKind string

const (
	EntryKindPurchaseDebit            EntryKind = "PURCHASE_DEBIT"
	EntryKindProviderCredit           EntryKind = "PROVIDER_CREDIT"
	EntryKindPlatformCommissionCredit EntryKind = "PLATFORM_COMMISSION_CREDIT"
	EntryKindRechargeCredit           EntryKind = "RECHARGE_CREDIT"
	EntryKindRefundCredit             EntryKind = "REFUND_CREDIT"
	EntryKindRefundDebit              EntryKind = "REFUND_DEBIT"
	EntryKindReversalCredit           EntryKind = "REVERSAL_CREDIT"
	EntryKindReversalDebit            EntryKind = "REVERSAL_DEBIT"
)

// EntryStatus is the lifecycle state of a ledger entry.
type EntryStatus string

const (
	EntryStatusPending   EntryStatus = "PENDING"
	EntryStatusCompleted EntryStatus = "COMPLETED"
	EntryStatusFailed    EntryStatus = "FAILED"
)

// LedgerEntry is an immutable record of one wallet balance change. Exactly
// one of SourceWalletID (debit) and DestinationWalletID (credit) is set for
// entries produced by this engine.
type LedgerEntry struct {
	ID                  uuid.UUID         `json:"id"`
	Reference           string            `json:"reference"`
	SourceWalletID      *uuid.UUID        `json:"source_wallet_id,omitempty"`
	DestinationWalletID *uuid.UUID        `json:"destination_wallet_id,omitempty"`
	Amount              decimal.Decimal   `json:"amount"`
	Kind                EntryKind         `json:"kind"`
	Status              EntryStatus       `json:"status"`
	Metadata            map[string]string `json:"metadata,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
}

// NewDebitEntry builds a completed entry that removes amount from walletID.
func NewDebitEntry(walletID uuid.UUID, amount decimal.Decimal, kind EntryKind, reference string, metadata map[string]string) *LedgerEntry {
	id := walletID
	return &LedgerEntry{
		ID:             uuid.New(),
		Reference:      reference,
		SourceWalletID: &id,
		Amount:         amount,
		Kind:           kind,
		Status:         EntryStatusCompleted,
		Metadata:       metadata,
		CreatedAt:      time.Now().UTC(),
	}
}

// NewCreditEntry builds a completed entry that adds amount to walletID.
func NewCreditEntry(walletID uuid.UUID, amount decimal.Decimal, kind EntryKind, reference string, metadata map[string]string) *LedgerEntry {
	id := walletID
	return &LedgerEntry{
		ID:                  uuid.New(),
		Reference:           reference,
		DestinationWalletID: &id,
		Amount:              amount,
		Kind:                kind,
		Status:              EntryStatusCompleted,
		Metadata:            metadata,
		CreatedAt:           time.Now().UTC(),
	}
}

// WalletID returns the wallet the entry touches.
func (e *LedgerEntry) WalletID() uuid.UUID {
	if e.SourceWalletID != nil {
		return *e.SourceWalletID
	}
	if e.DestinationWalletID != nil {
		return *e.DestinationWalletID
	}
	return uuid.Nil
}

// SignedAmount returns the entry's effect on walletID's balance. Entries that
// are not completed contribute nothing.
func (e *LedgerEntry) SignedAmount(walletID uuid.UUID) decimal.Decimal {
	if e.Status != EntryStatusCompleted {
		return decimal.Zero
	}
	delta := decimal.Zero
	if e.DestinationWalletID != nil && *e.DestinationWalletID == walletID {
		delta = delta.Add(e.Amount)
	}
	if e.SourceWalletID != nil && *e.SourceWalletID == walletID {
		delta = delta.Sub(e.Amount)
	}
	return delta
}

// ReplayBalance recomputes a wallet balance from its entry history.
func ReplayBalance(walletID uuid.UUID, entries []LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for i := range entries {
		total = total.Add(entries[i].SignedAmount(walletID))
	}
	return total
}
