package domain

import (
	"context"

	"github.com/sagakit/order-system/shared/models"
	"github.com/sagakit/order-system/shared/saga"
)

// ReservationRepository owns transactional writes to the stock_reservations table.
type ReservationRepository interface {
	// FindByOrderID returns the reservation for an order, or nil when
	// none exists. There is at most one reservation row per order.
	FindByOrderID(ctx context.Context, orderID models.ID) (*saga.StockReservation, error)

	// Insert persists a new reservation and assigns its identity. It
	// reports false when a reservation for the order already exists;
	// together with the existence pre-check this is the idempotency
	// guard under duplicate deliveries.
	Insert(ctx context.Context, reservation *saga.StockReservation) (bool, error)
}

// StockGateway is the external reservation decision: hold the quantity,
// yes or no.
type StockGateway interface {
	Reserve(ctx context.Context, productID string, quantity int) (bool, error)
}
