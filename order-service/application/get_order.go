package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sagakit/order-system/order-service/domain"
	"github.com/sagakit/order-system/shared/models"
	"github.com/sagakit/order-system/shared/saga"
)

// ErrOrderNotFound is returned when the requested order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// GetOrder use case reads a single order from the ledger.
type GetOrder struct {
	orders domain.OrderRepository
}

// NewGetOrder creates a new GetOrder use case.
func NewGetOrder(orders domain.OrderRepository) *GetOrder {
	return &GetOrder{orders: orders}
}

// Execute returns the order with the given id.
func (uc *GetOrder) Execute(ctx context.Context, id models.ID) (*saga.Order, error) {
	order, err := uc.orders.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
