package memory

import (
	"context"

	"purchase-engine/internal/core/domain"

	"github.com/google/uuid"
)

// OrderStore implements ports.OrderStore.
type OrderStore struct {
	db *DB
}

func (s *OrderStore) Materialize(_ context.Context, order *domain.OrderLine) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	res, ok := s.db.reservations[order.ReservationID]
	if !ok {
		return domain.ErrReservationNotFound
	}
	if res.Status != domain.ReservationStatusReserved {
		return domain.ErrReservationNotHeld
	}

	o := *order
	s.db.orders[o.ID] = &o
	id := o.ID
	res.Status = domain.ReservationStatusCommitted
	res.OrderID = &id
	res.UpdatedAt = s.db.now()
	return nil
}

func (s *OrderStore) GetByID(_ context.Context, id uuid.UUID) (*domain.OrderLine, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	o, ok := s.db.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	out := *o
	return &out, nil
}

func (s *OrderStore) TransitionStatus(_ context.Context, id uuid.UUID, change domain.StatusChange) (*domain.OrderLine, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	o, ok := s.db.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	if o.Status != change.From || !domain.CanTransition(change.From, change.To) {
		return nil, domain.ErrInvalidTransition
	}

	o.Status = change.To
	if change.RefundedAmount != nil && change.RefundedAmount.IsPositive() {
		o.RefundedAmount = *change.RefundedAmount
		at := change.At
		o.RefundedAt = &at
	}
	out := *o
	return &out, nil
}
