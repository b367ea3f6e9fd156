package ports

import (
	"context"
	"time"

	"purchase-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EncryptionService handles AES-256-GCM encryption of credential fields.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
	// SafeDecrypt returns the input unchanged when it is not a ciphertext
	// produced by Encrypt (legacy plaintext rows).
	SafeDecrypt(value string) string
}

// Role is the directory role carried in an identity token.
type Role string

const (
	RoleBuyer    Role = "buyer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// TokenService verifies identity tokens issued by the user directory.
type TokenService interface {
	Generate(userID uuid.UUID, role Role) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
	Role   Role
}

// IdempotencyCache is the Redis-layer idempotency store for HTTP requests.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Claim marks key as in flight. Returns false if another request holds it.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unclaim(ctx context.Context, key string) error
}

// --- Service Ports (Business Logic) ---

// LedgerRequest describes one balance change.
type LedgerRequest struct {
	WalletID  uuid.UUID
	Amount    decimal.Decimal
	Kind      domain.EntryKind
	Reference string
	Metadata  map[string]string
}

// RechargeRequest is an approved external deposit.
type RechargeRequest struct {
	OwnerID   uuid.UUID
	Amount    decimal.Decimal
	Reference string
	ActorID   *uuid.UUID
}

// LedgerService is the wallet ledger.
type LedgerService interface {
	OpenWallet(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error)
	GetWallet(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error)
	GetWalletBalance(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, string, error) // balance, currency, error
	SetWalletStatus(ctx context.Context, ownerID uuid.UUID, status domain.WalletStatus) (*domain.Wallet, error)
	Debit(ctx context.Context, req LedgerRequest) (*domain.LedgerEntry, error)
	Credit(ctx context.Context, req LedgerRequest) (*domain.LedgerEntry, error)
	// Clawback takes back up to req.Amount, ignoring suspension, and records
	// what could not be collected as a liability.
	Clawback(ctx context.Context, req LedgerRequest) (*domain.ClawbackResult, error)
	Recharge(ctx context.Context, req RechargeRequest) (*domain.LedgerEntry, error)
	// FindEntry returns the entry booked under reference, or nil if none was.
	FindEntry(ctx context.Context, reference string) (*domain.LedgerEntry, error)
	Reconcile(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, error)
}

// CreateCommissionRequest holds input for a new commission version.
type CreateCommissionRequest struct {
	Category      *string
	Rate          decimal.Decimal
	EffectiveFrom time.Time
}

// CommissionResolver selects the commission rate in effect.
type CommissionResolver interface {
	Resolve(ctx context.Context, category string, at time.Time) (*domain.CommissionConfig, error)
	Create(ctx context.Context, req CreateCommissionRequest) (*domain.CommissionConfig, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.CommissionConfig, error)
}

// CreateProductRequest holds plaintext input for a new listing. Credentials
// are encrypted before they reach storage.
type CreateProductRequest struct {
	ProviderID uuid.UUID
	Category   string
	Name       string
	Price      decimal.Decimal
	Kind       domain.PoolKind
	Email      string
	Password   string
	Slots      []SlotInput
}

// SlotInput describes one slot of a multi-slot listing.
type SlotInput struct {
	ProfileName *string
	PIN         *string
}

// InventoryPool is the inventory allocation component.
type InventoryPool interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ReserveOne(ctx context.Context, productID, buyerID uuid.UUID) (*domain.SlotHandle, error)
	Release(ctx context.Context, handle *domain.SlotHandle) error
	RevealCredentials(ctx context.Context, order *domain.OrderLine) (*domain.Credentials, error)
}

// PurchaseRequest holds validated input for a purchase.
type PurchaseRequest struct {
	BuyerID   uuid.UUID
	ProductID uuid.UUID
}

// PurchaseResult is a paid order and the credentials it unlocked.
// Credentials is nil when the order is no longer PAID.
type PurchaseResult struct {
	Order       *domain.OrderLine
	Credentials *domain.Credentials
}

// PurchaseService is the purchase orchestrator.
type PurchaseService interface {
	Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error)
	GetOrder(ctx context.Context, orderID, requesterID uuid.UUID, isAdmin bool) (*PurchaseResult, error)
}

// DisputeService applies refund and dispute outcomes.
type DisputeService interface {
	OpenDispute(ctx context.Context, orderID, buyerID uuid.UUID) (*domain.OrderLine, error)
	ApplyDisputeResolution(ctx context.Context, orderID uuid.UUID, decision domain.Decision) (*domain.OrderLine, error)
}

// SweepReport summarises one sweep of stale reservations.
type SweepReport struct {
	Scanned  int
	Released int
	Failed   int
}

// WalletReport compares a stored balance to its replayed ledger.
type WalletReport struct {
	WalletID   uuid.UUID       `json:"wallet_id"`
	OwnerID    uuid.UUID       `json:"owner_id"`
	Stored     decimal.Decimal `json:"stored_balance"`
	Reconciled decimal.Decimal `json:"reconciled_balance"`
	Consistent bool            `json:"consistent"`
}

// ReconciliationService is the crash-recovery backstop.
type ReconciliationService interface {
	Sweep(ctx context.Context) (SweepReport, error)
	Run(ctx context.Context) error
	VerifyWallet(ctx context.Context, ownerID uuid.UUID) (*WalletReport, error)
}

// EventPublisher emits order lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.OrderEvent) error
	Close() error
}

// AuditService records audit entries asynchronously.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
