package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/sagakit/order-system/shared/saga"
	"github.com/sagakit/order-system/shared/telemetry"
	"github.com/sagakit/order-system/stock-service/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ReserveStock reacts to an order entering AWAITING_STOCK: it asks the
// warehouse for the quantity once per order and records the outcome as a
// reservation row. The row's change event is what moves the saga along.
type ReserveStock struct {
	reservations domain.ReservationRepository
	gateway      domain.StockGateway
}

// NewReserveStock creates a new ReserveStock use case.
func NewReserveStock(reservations domain.ReservationRepository, gateway domain.StockGateway) *ReserveStock {
	return &ReserveStock{reservations: reservations, gateway: gateway}
}

// Execute attempts a stock reservation for the given order.
func (uc *ReserveStock) Execute(ctx context.Context, order *saga.Order) error {
	ctx, span := telemetry.StartSpan(ctx, "reserve_stock",
		trace.WithAttributes(attribute.String("order_id", order.ID.String())),
	)
	defer span.End()

	existing, err := uc.reservations.FindByOrderID(ctx, order.ID)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to check existing reservation")
	}
	if existing != nil {
		// Duplicate delivery: the decision already ran for this order.
		slog.WarnContext(ctx, "reservation already exists, skipping",
			"order_id", order.ID, "reservation_status", existing.Status)
		telemetry.RecordCounter(ctx, "reservation_duplicates_total", "Duplicate order events discarded", 1)
		return nil
	}

	reserved, err := uc.gateway.Reserve(ctx, order.ProductID, order.Quantity)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "stock gateway error")
	}

	status := saga.ReservationStatusFailed
	if reserved {
		status = saga.ReservationStatusReserved
	}

	reservation := &saga.StockReservation{
		OrderID:   order.ID,
		ProductID: order.ProductID,
		Quantity:  order.Quantity,
		Status:    status,
		Timestamp: time.Now().UTC(),
	}

	inserted, err := uc.reservations.Insert(ctx, reservation)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to insert reservation")
	}
	if !inserted {
		// A concurrent delivery won the insert race; ours is the duplicate.
		slog.WarnContext(ctx, "concurrent reservation insert detected, skipping", "order_id", order.ID)
		return nil
	}

	slog.InfoContext(ctx, "reservation recorded",
		"order_id", order.ID, "product_id", order.ProductID,
		"quantity", order.Quantity, "status", status)
	telemetry.RecordCounter(ctx, "reservations_processed_total", "Reservation decisions recorded", 1,
		attribute.String("status", string(status)),
	)
	return nil
}
