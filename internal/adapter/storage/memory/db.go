// Package memory is an in-process implementation of every store port. All
// stores built from one DB share a single mutex, so each method is one
// atomic operation exactly like a Postgres transaction in the production
// adapter.
package memory

import (
	"context"
	"sync"
	"time"

	"purchase-engine/internal/core/domain"

	"github.com/google/uuid"
)

// DB is the shared state behind the memory stores.
type DB struct {
	mu sync.Mutex

	wallets        map[uuid.UUID]*domain.Wallet
	walletsByOwner map[uuid.UUID]uuid.UUID
	entries        []domain.LedgerEntry
	entryByRef     map[string]int
	clawbacks      map[string]domain.ClawbackResult

	products     map[uuid.UUID]*domain.Product
	reservations map[uuid.UUID]*domain.Reservation

	orders      map[uuid.UUID]*domain.OrderLine
	commissions map[uuid.UUID]*domain.CommissionConfig
	audit       []domain.AuditLog

	now func() time.Time
}

// NewDB creates an empty DB.
func NewDB() *DB {
	return &DB{
		wallets:        make(map[uuid.UUID]*domain.Wallet),
		walletsByOwner: make(map[uuid.UUID]uuid.UUID),
		entryByRef:     make(map[string]int),
		clawbacks:      make(map[string]domain.ClawbackResult),
		products:       make(map[uuid.UUID]*domain.Product),
		reservations:   make(map[uuid.UUID]*domain.Reservation),
		orders:         make(map[uuid.UUID]*domain.OrderLine),
		commissions:    make(map[uuid.UUID]*domain.CommissionConfig),
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the time source. Tests use it to age reservations.
func (db *DB) SetClock(now func() time.Time) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.now = now
}

// Stores bundles one store per port, all backed by db.
type Stores struct {
	Wallets     *WalletStore
	Inventory   *InventoryStore
	Orders      *OrderStore
	Commissions *CommissionStore
	Audit       *AuditRepository
}

// NewStores creates every store on a fresh DB.
func NewStores() (*DB, Stores) {
	db := NewDB()
	return db, Stores{
		Wallets:     &WalletStore{db: db},
		Inventory:   &InventoryStore{db: db},
		Orders:      &OrderStore{db: db},
		Commissions: &CommissionStore{db: db},
		Audit:       &AuditRepository{db: db},
	}
}

// Name implements ports.HealthChecker.
func (db *DB) Name() string { return "memory" }

// Ping implements ports.HealthChecker.
func (db *DB) Ping(_ context.Context) error { return nil }
