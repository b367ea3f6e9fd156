package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"purchase-engine/internal/core/domain"

	"github.com/google/uuid"
)

// InventoryStore implements ports.InventoryStore.
type InventoryStore struct {
	db *DB
}

func (s *InventoryStore) CreateProduct(_ context.Context, product *domain.Product) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if err := product.CheckPoolInvariant(); err != nil {
		return err
	}
	s.db.products[product.ID] = product.Clone()
	return nil
}

func (s *InventoryStore) GetProduct(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	p, ok := s.db.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p.Clone(), nil
}

func (s *InventoryStore) ReserveOne(_ context.Context, productID, buyerID uuid.UUID) (*domain.SlotHandle, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	p, ok := s.db.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	now := s.db.now()
	slot, err := p.ReserveOne(now)
	if err != nil {
		return nil, err
	}

	res := &domain.Reservation{
		ID:        uuid.New(),
		ProductID: productID,
		BuyerID:   buyerID,
		Status:    domain.ReservationStatusReserved,
		CreatedAt: now,
		UpdatedAt: now,
	}
	handle := &domain.SlotHandle{
		ReservationID: res.ID,
		ProductID:     productID,
		PoolKind:      p.Pool.Kind(),
		Slot:          slot,
	}
	res.SlotID = handle.SlotID()
	s.db.reservations[res.ID] = res
	return handle, nil
}

func (s *InventoryStore) Release(_ context.Context, reservationID uuid.UUID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	res, ok := s.db.reservations[reservationID]
	if !ok {
		return domain.ErrReservationNotFound
	}
	if res.Status == domain.ReservationStatusReleased {
		return nil
	}
	return s.db.release(res)
}

func (s *InventoryStore) ReleaseIfReserved(_ context.Context, reservationID uuid.UUID) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	res, ok := s.db.reservations[reservationID]
	if !ok {
		return false, domain.ErrReservationNotFound
	}
	if res.Status != domain.ReservationStatusReserved {
		return false, nil
	}
	if err := s.db.release(res); err != nil {
		return false, err
	}
	return true, nil
}

func (s *InventoryStore) GetReservation(_ context.Context, id uuid.UUID) (*domain.Reservation, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	res, ok := s.db.reservations[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	out := *res
	return &out, nil
}

func (s *InventoryStore) ListStaleReservations(_ context.Context, olderThan time.Time, limit int) ([]domain.Reservation, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var out []domain.Reservation
	for _, res := range s.db.reservations {
		if res.Status == domain.ReservationStatusReserved && res.CreatedAt.Before(olderThan) {
			out = append(out, *res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// release must be called with mu held.
func (db *DB) release(res *domain.Reservation) error {
	p, ok := db.products[res.ProductID]
	if !ok {
		return fmt.Errorf("release reservation %s: %w", res.ID, domain.ErrProductNotFound)
	}
	now := db.now()
	if err := p.ReleaseOne(res.SlotID, now); err != nil {
		return err
	}
	res.Status = domain.ReservationStatusReleased
	res.UpdatedAt = now
	return nil
}
