package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PoolKind is the storage discriminator of an InventoryPool.
type PoolKind string

const (
	PoolKindSingleUnit PoolKind = "SINGLE_UNIT"
	PoolKindMultiSlot  PoolKind = "MULTI_SLOT"
)

// DeactivationReason records why a product stopped being sellable.
type DeactivationReason string

const (
	DeactivationNone    DeactivationReason = ""
	DeactivationSoldOut DeactivationReason = "SOLD_OUT"
	DeactivationManual  DeactivationReason = "MANUAL"
)

// SlotStatus is the sale state of one slot.
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "AVAILABLE"
	SlotStatusSold      SlotStatus = "SOLD"
)

// AccountCredentials holds the encrypted login of the account behind a product.
type AccountCredentials struct {
	EmailEnc    string `json:"-"`
	PasswordEnc string `json:"-"`
}

// Slot is one sellable unit within a shared account.
type Slot struct {
	ID          uuid.UUID  `json:"id"`
	ProductID   uuid.UUID  `json:"product_id"`
	Position    int        `json:"position"`
	ProfileName *string    `json:"profile_name,omitempty"`
	PINEnc      *string    `json:"-"`
	Status      SlotStatus `json:"status"`
	SoldAt      *time.Time `json:"sold_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// InventoryPool is the closed set of supply shapes behind a product:
// *SingleUnitPool or *MultiSlotPool. Code that branches on a pool must use a
// type switch covering both and fail with ErrUnknownPool otherwise.
type InventoryPool interface {
	Kind() PoolKind
	TotalSlots() int
	AvailableSlots() int
	isInventoryPool()
}

// SingleUnitPool sells one whole account.
type SingleUnitPool struct {
	Sold bool `json:"sold"`
}

func (*SingleUnitPool) Kind() PoolKind { return PoolKindSingleUnit }
func (*SingleUnitPool) TotalSlots() int { return 1 }
func (p *SingleUnitPool) AvailableSlots() int {
	if p.Sold {
		return 0
	}
	return 1
}
func (*SingleUnitPool) isInventoryPool() {}

// MultiSlotPool sells named slots of a shared account in insertion order.
type MultiSlotPool struct {
	Available int    `json:"available_slots"`
	Slots     []Slot `json:"slots"`
}

func (*MultiSlotPool) Kind() PoolKind        { return PoolKindMultiSlot }
func (p *MultiSlotPool) TotalSlots() int     { return len(p.Slots) }
func (p *MultiSlotPool) AvailableSlots() int { return p.Available }
func (*MultiSlotPool) isInventoryPool()      {}

// NextAvailable returns the earliest-created available slot, or nil.
func (p *MultiSlotPool) NextAvailable() *Slot {
	var next *Slot
	for i := range p.Slots {
		s := &p.Slots[i]
		if s.Status != SlotStatusAvailable {
			continue
		}
		if next == nil || s.Position < next.Position {
			next = s
		}
	}
	return next
}

// Slot returns the slot with id, or nil.
func (p *MultiSlotPool) Slot(id uuid.UUID) *Slot {
	for i := range p.Slots {
		if p.Slots[i].ID == id {
			return &p.Slots[i]
		}
	}
	return nil
}

// CountAvailable counts slots whose status is AVAILABLE.
func (p *MultiSlotPool) CountAvailable() int {
	n := 0
	for i := range p.Slots {
		if p.Slots[i].Status == SlotStatusAvailable {
			n++
		}
	}
	return n
}

// Product is a sellable listing backed by exactly one InventoryPool.
type Product struct {
	ID                 uuid.UUID          `json:"id"`
	ProviderID         uuid.UUID          `json:"provider_id"`
	Category           string             `json:"category"`
	Name               string             `json:"name"`
	Price              decimal.Decimal    `json:"price"`
	Currency           string             `json:"currency"`
	IsActive           bool               `json:"is_active"`
	DeactivationReason DeactivationReason `json:"deactivation_reason,omitempty"`
	Account            AccountCredentials `json:"-"`
	Pool               InventoryPool      `json:"-"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// NewSingleUnitProduct creates an active product that sells one whole account.
func NewSingleUnitProduct(providerID uuid.UUID, category, name string, price decimal.Decimal, currency string, account AccountCredentials) *Product {
	now := time.Now().UTC()
	return &Product{
		ID:         uuid.New(),
		ProviderID: providerID,
		Category:   category,
		Name:       name,
		Price:      price,
		Currency:   currency,
		IsActive:   true,
		Account:    account,
		Pool:       &SingleUnitPool{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// SlotSpec describes a slot to create in a multi-slot product.
type SlotSpec struct {
	ProfileName *string
	PINEnc      *string
}

// NewMultiSlotProduct creates an active product with one available slot per spec.
// Slot positions follow the order of specs.
func NewMultiSlotProduct(providerID uuid.UUID, category, name string, price decimal.Decimal, currency string, account AccountCredentials, specs []SlotSpec) *Product {
	now := time.Now().UTC()
	p := &Product{
		ID:         uuid.New(),
		ProviderID: providerID,
		Category:   category,
		Name:       name,
		Price:      price,
		Currency:   currency,
		IsActive:   len(specs) > 0,
		Account:    account,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if len(specs) == 0 {
		p.DeactivationReason = DeactivationSoldOut
	}
	pool := &MultiSlotPool{Available: len(specs), Slots: make([]Slot, 0, len(specs))}
	for i, spec := range specs {
		pool.Slots = append(pool.Slots, Slot{
			ID:          uuid.New(),
			ProductID:   p.ID,
			Position:    i + 1,
			ProfileName: spec.ProfileName,
			PINEnc:      spec.PINEnc,
			Status:      SlotStatusAvailable,
			CreatedAt:   now,
		})
	}
	p.Pool = pool
	return p
}

// ReserveOne takes one unit out of the pool. It returns the sold slot for a
// multi-slot pool and nil for a single-unit pool. When the pool reaches zero
// the product is deactivated as part of the same mutation.
func (p *Product) ReserveOne(now time.Time) (*Slot, error) {
	if !p.IsActive {
		if p.DeactivationReason == DeactivationSoldOut {
			return nil, ErrOutOfStock
		}
		return nil, ErrProductInactive
	}

	var sold *Slot
	switch pool := p.Pool.(type) {
	case *SingleUnitPool:
		if pool.Sold {
			return nil, ErrOutOfStock
		}
		pool.Sold = true
	case *MultiSlotPool:
		if pool.Available <= 0 {
			return nil, ErrOutOfStock
		}
		slot := pool.NextAvailable()
		if slot == nil {
			return nil, ErrOutOfStock
		}
		slot.Status = SlotStatusSold
		at := now
		slot.SoldAt = &at
		pool.Available--
		copied := *slot
		sold = &copied
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownPool, p.Pool)
	}

	if p.Pool.AvailableSlots() == 0 {
		p.IsActive = false
		p.DeactivationReason = DeactivationSoldOut
	}
	p.UpdatedAt = now
	return sold, nil
}

// ReleaseOne returns a unit to the pool. slotID must be nil for single-unit
// pools. A product deactivated only because it sold out is reactivated.
func (p *Product) ReleaseOne(slotID *uuid.UUID, now time.Time) error {
	switch pool := p.Pool.(type) {
	case *SingleUnitPool:
		if !pool.Sold {
			return nil
		}
		pool.Sold = false
	case *MultiSlotPool:
		if slotID == nil {
			return fmt.Errorf("release multi-slot product %s: missing slot", p.ID)
		}
		slot := pool.Slot(*slotID)
		if slot == nil {
			return fmt.Errorf("release multi-slot product %s: slot %s not found", p.ID, *slotID)
		}
		if slot.Status == SlotStatusAvailable {
			return nil
		}
		slot.Status = SlotStatusAvailable
		slot.SoldAt = nil
		pool.Available++
	default:
		return fmt.Errorf("%w: %T", ErrUnknownPool, p.Pool)
	}

	if !p.IsActive && p.DeactivationReason == DeactivationSoldOut {
		p.IsActive = true
		p.DeactivationReason = DeactivationNone
	}
	p.UpdatedAt = now
	return nil
}

// CheckPoolInvariant verifies availableSlots == count(available slots) and
// that availability is never negative.
func (p *Product) CheckPoolInvariant() error {
	switch pool := p.Pool.(type) {
	case *SingleUnitPool:
		return nil
	case *MultiSlotPool:
		if pool.Available < 0 {
			return fmt.Errorf("product %s: negative availability %d", p.ID, pool.Available)
		}
		if n := pool.CountAvailable(); n != pool.Available {
			return fmt.Errorf("product %s: available_slots=%d but %d slots available", p.ID, pool.Available, n)
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnknownPool, p.Pool)
	}
}

// Clone returns a deep copy so stores can hand out snapshots.
func (p *Product) Clone() *Product {
	c := *p
	switch pool := p.Pool.(type) {
	case *SingleUnitPool:
		cp := *pool
		c.Pool = &cp
	case *MultiSlotPool:
		cp := MultiSlotPool{Available: pool.Available, Slots: make([]Slot, len(pool.Slots))}
		copy(cp.Slots, pool.Slots)
		sort.Slice(cp.Slots, func(i, j int) bool { return cp.Slots[i].Position < cp.Slots[j].Position })
		c.Pool = &cp
	}
	return &c
}

// SlotHandle references the unit taken by one reservation. Slot is nil for a
// single-unit pool, where the handle stands for the whole account.
type SlotHandle struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	ProductID     uuid.UUID `json:"product_id"`
	PoolKind      PoolKind  `json:"pool_kind"`
	Slot          *Slot     `json:"slot,omitempty"`
}

// IsWholeAccount reports whether the handle stands for a single-unit pool.
func (h *SlotHandle) IsWholeAccount() bool {
	return h.Slot == nil
}

// SlotID returns the reserved slot id, or nil for a whole account.
func (h *SlotHandle) SlotID() *uuid.UUID {
	if h.Slot == nil {
		return nil
	}
	id := h.Slot.ID
	return &id
}
