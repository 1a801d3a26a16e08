package domain

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sagakit/order-system/shared/models"
	"github.com/sagakit/order-system/shared/saga"
)

// ErrInvalidRequest marks client errors on order creation.
var ErrInvalidRequest = errors.New("invalid order request")

// OrderRepository owns transactional writes to the orders table. The order
// service is the only writer; other participants learn about orders from
// the change log.
type OrderRepository interface {
	// Insert persists a new order and assigns its identity and timestamps.
	Insert(ctx context.Context, order *saga.Order) error

	// FindByID returns the order, or nil when it does not exist.
	FindByID(ctx context.Context, id models.ID) (*saga.Order, error)

	// UpdateStatus moves the order from one status to another with a
	// compare-and-set on the persisted status. It reports false when the
	// stored status no longer matches from, which is how stale triggers
	// are discarded under concurrent deliveries.
	UpdateStatus(ctx context.Context, id models.ID, from, to saga.OrderStatus) (bool, error)
}

// StatusPublisher fans out order status changes to realtime watchers.
// It is best effort: failures never affect the saga.
type StatusPublisher interface {
	PublishStatus(ctx context.Context, order *saga.Order) error
}
