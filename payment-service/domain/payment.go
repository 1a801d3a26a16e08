package domain

import (
	"context"

	"github.com/sagakit/order-system/shared/models"
	"github.com/sagakit/order-system/shared/saga"
)

// PaymentRepository owns transactional writes to the payments table.
type PaymentRepository interface {
	// FindByOrderID returns the payment for an order, or nil when none
	// exists. There is at most one payment row per order.
	FindByOrderID(ctx context.Context, orderID models.ID) (*saga.Payment, error)

	// Insert persists a new payment and assigns its identity. It reports
	// false when a payment for the order already exists; together with
	// the existence pre-check this is the idempotency guard under
	// duplicate deliveries.
	Insert(ctx context.Context, payment *saga.Payment) (bool, error)

	// UpdateStatus transitions an existing payment in place. Used for
	// the compensating CANCELLED update; the row is never replaced.
	UpdateStatus(ctx context.Context, id models.ID, status saga.PaymentStatus) error
}

// PaymentGateway is the external payment decision: charge the amount,
// yes or no. No side channel, no automatic retries.
type PaymentGateway interface {
	Charge(ctx context.Context, amount models.Money) (bool, error)
}

// RefundGateway is the external refund decision used for compensation.
type RefundGateway interface {
	Refund(ctx context.Context, amount models.Money) (bool, error)
}

// Pricer resolves the unit price for a product. The default is a flat
// price; a catalog lookup can be plugged in without touching the reactor.
type Pricer interface {
	UnitPrice(ctx context.Context, productID string) (models.Money, error)
}
