package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus tracks a reserved unit until it is sold or returned.
type ReservationStatus string

const (
	ReservationStatusReserved  ReservationStatus = "RESERVED"
	ReservationStatusCommitted ReservationStatus = "COMMITTED"
	ReservationStatusReleased  ReservationStatus = "RELEASED"
)

// Reservation is the durable record of one ReserveOne call. A reservation
// still RESERVED after the saga timeout has no order line and is picked up
// by the reservation sweeper.
type Reservation struct {
	ID        uuid.UUID         `json:"id"`
	ProductID uuid.UUID         `json:"product_id"`
	SlotID    *uuid.UUID        `json:"slot_id,omitempty"`
	BuyerID   uuid.UUID         `json:"buyer_id"`
	Status    ReservationStatus `json:"status"`
	OrderID   *uuid.UUID        `json:"order_id,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
