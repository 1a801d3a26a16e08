package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/sagakit/order-system/order-service/domain"
	"github.com/sagakit/order-system/shared/models"
	"github.com/sagakit/order-system/shared/saga"
	"github.com/sagakit/order-system/shared/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CreateOrderCommand represents the ingress request to place an order.
type CreateOrderCommand struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UserID    string `json:"user_id"`
}

// CreateOrder use case inserts a new order in PENDING. The change capture
// on the orders table is what kicks off the saga; nothing is published
// synchronously from here.
type CreateOrder struct {
	orders domain.OrderRepository
}

// NewCreateOrder creates a new CreateOrder use case.
func NewCreateOrder(orders domain.OrderRepository) *CreateOrder {
	return &CreateOrder{orders: orders}
}

// Execute validates the command and persists the order.
func (uc *CreateOrder) Execute(ctx context.Context, cmd *CreateOrderCommand) (*saga.Order, error) {
	ctx, span := telemetry.StartSpan(ctx, "create_order",
		trace.WithAttributes(attribute.String("product_id", cmd.ProductID)),
	)
	defer span.End()

	if err := uc.validateCommand(cmd); err != nil {
		span.RecordError(err)
		return nil, err
	}

	now := models.NewTimestamps()
	order := &saga.Order{
		ProductID: cmd.ProductID,
		Quantity:  cmd.Quantity,
		UserID:    cmd.UserID,
		Status:    saga.OrderStatusPending,
		CreatedAt: now.CreatedAt,
		UpdatedAt: now.UpdatedAt,
	}

	if err := uc.orders.Insert(ctx, order); err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "failed to insert order")
	}

	telemetry.RecordCounter(ctx, "orders_created_total", "Total orders created", 1,
		attribute.String("product_id", order.ProductID),
	)
	slog.InfoContext(ctx, "order created", "order_id", order.ID, "status", order.Status)

	return order, nil
}

func (uc *CreateOrder) validateCommand(cmd *CreateOrderCommand) error {
	if cmd.ProductID == "" {
		return errors.Wrap(domain.ErrInvalidRequest, "product ID is required")
	}
	if cmd.UserID == "" {
		return errors.Wrap(domain.ErrInvalidRequest, "user ID is required")
	}
	if cmd.Quantity <= 0 {
		return errors.Wrap(domain.ErrInvalidRequest, "quantity must be positive")
	}
	return nil
}
