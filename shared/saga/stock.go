package saga

import (
	"time"

	"github.com/sagakit/order-system/shared/models"
)

// ReservationStatus represents the status of a stock reservation.
type ReservationStatus string

const (
	ReservationStatusReserved  ReservationStatus = "RESERVED"
	ReservationStatusFailed    ReservationStatus = "FAILED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// StockReservation is owned and written by the stock service. At most one
// reservation row exists per order.
type StockReservation struct {
	ID        models.ID         `json:"id" db:"id"`
	OrderID   models.ID         `json:"order_id" db:"order_id"`
	ProductID string            `json:"product_id" db:"product_id"`
	Quantity  int               `json:"quantity" db:"quantity"`
	Status    ReservationStatus `json:"status" db:"status"`
	Timestamp time.Time         `json:"timestamp" db:"timestamp"`
}

// Trigger translates the reservation status into a state machine input.
// Reservation failure is surfaced purely as an event here; turning it
// into an order transition is the completion handler's job.
//
// A CANCELLED reservation deliberately yields no trigger: the transition
// table has no edge for it, and no component writes cancelled
// reservations today. If a release flow ever does, the table gains the
// edge first and this mapping second.
func (r *StockReservation) Trigger() (Trigger, bool) {
	switch r.Status {
	case ReservationStatusReserved:
		return TriggerStockReserved, true
	case ReservationStatusFailed:
		return TriggerStockFailed, true
	default:
		return "", false
	}
}
