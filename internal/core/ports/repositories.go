package ports

import (
	"context"
	"time"

	"purchase-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletStore persists wallets and their ledger. Every Apply* method is one
// atomic storage operation: the wallet row is locked, checked, updated and
// the entry appended before anything becomes visible. A reference that was
// already used yields domain.ErrDuplicateReference and changes nothing.
type WalletStore interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.WalletStatus) (*domain.Wallet, error)
	// ApplyDebit fails with ErrInsufficientBalance when balance < amount and,
	// if enforceStatus is set, with ErrWalletSuspended on a suspended wallet.
	ApplyDebit(ctx context.Context, entry *domain.LedgerEntry, enforceStatus bool) error
	ApplyCredit(ctx context.Context, entry *domain.LedgerEntry) error
	// ApplyClawback debits min(balance, amount) and records the rest as a
	// liability under the same reference.
	ApplyClawback(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, kind domain.EntryKind, reference string, metadata map[string]string) (*domain.ClawbackResult, error)
	GetClawback(ctx context.Context, reference string) (*domain.ClawbackResult, error)
	GetEntryByReference(ctx context.Context, reference string) (*domain.LedgerEntry, error)
	ListEntries(ctx context.Context, walletID uuid.UUID) ([]domain.LedgerEntry, error)
}

// InventoryStore persists products, pools and reservations.
type InventoryStore interface {
	CreateProduct(ctx context.Context, product *domain.Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	// ReserveOne atomically takes one unit and records a RESERVED reservation.
	ReserveOne(ctx context.Context, productID, buyerID uuid.UUID) (*domain.SlotHandle, error)
	// Release returns the unit of a RESERVED or COMMITTED reservation. It is a
	// no-op for a reservation that is already RELEASED.
	Release(ctx context.Context, reservationID uuid.UUID) error
	// ReleaseIfReserved releases only a reservation still RESERVED and reports
	// whether it did.
	ReleaseIfReserved(ctx context.Context, reservationID uuid.UUID) (bool, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	ListStaleReservations(ctx context.Context, olderThan time.Time, limit int) ([]domain.Reservation, error)
}

// OrderStore persists order lines.
type OrderStore interface {
	// Materialize inserts order and commits its reservation in one atomic
	// operation. It fails with ErrReservationNotHeld if the reservation is no
	// longer RESERVED.
	Materialize(ctx context.Context, order *domain.OrderLine) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.OrderLine, error)
	// TransitionStatus applies change only if the order is currently in
	// change.From, otherwise it returns ErrInvalidTransition.
	TransitionStatus(ctx context.Context, id uuid.UUID, change domain.StatusChange) (*domain.OrderLine, error)
}

// CommissionStore persists commission configs.
type CommissionStore interface {
	Create(ctx context.Context, cfg *domain.CommissionConfig) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CommissionConfig, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.CommissionConfig, error)
	// ListCandidates returns active configs for category plus active global
	// configs, effective at or before at.
	ListCandidates(ctx context.Context, category string, at time.Time) ([]domain.CommissionConfig, error)
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
