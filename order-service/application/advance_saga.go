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

// AdvanceSaga is the saga completion handler: the only writer of
// Order.status. It translates payment and stock change events into
// triggers and applies the shared transition table against the order's
// current persisted status.
type AdvanceSaga struct {
	orders domain.OrderRepository
	status domain.StatusPublisher
}

// NewAdvanceSaga creates a new AdvanceSaga use case. status may be nil
// when realtime fanout is disabled.
func NewAdvanceSaga(orders domain.OrderRepository, status domain.StatusPublisher) *AdvanceSaga {
	return &AdvanceSaga{orders: orders, status: status}
}

// Execute applies one trigger to one order.
//
// The order's status is re-read here rather than trusted from the
// triggering event: under reordered or duplicated deliveries only the
// persisted status decides whether the trigger still applies. Discarded
// triggers are not errors; only a failed ledger write is.
func (uc *AdvanceSaga) Execute(ctx context.Context, orderID models.ID, trigger saga.Trigger) error {
	ctx, span := telemetry.StartSpan(ctx, "advance_saga",
		trace.WithAttributes(
			attribute.String("order_id", orderID.String()),
			attribute.String("trigger", string(trigger)),
		),
	)
	defer span.End()

	order, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to find order")
	}
	if order == nil {
		slog.ErrorContext(ctx, "order not found for trigger", "order_id", orderID, "trigger", trigger)
		uc.recordDiscard(ctx, trigger, "order_missing")
		return nil
	}

	if order.Status.IsTerminal() {
		slog.DebugContext(ctx, "order already terminal, trigger ignored",
			"order_id", orderID, "status", order.Status, "trigger", trigger)
		uc.recordDiscard(ctx, trigger, "terminal")
		return nil
	}

	next, ok := saga.Advance(order.Status, trigger)
	if !ok {
		slog.WarnContext(ctx, "trigger does not match order status, discarding",
			"order_id", orderID, "status", order.Status, "trigger", trigger)
		uc.recordDiscard(ctx, trigger, "guard_violation")
		return nil
	}

	applied, err := uc.orders.UpdateStatus(ctx, orderID, order.Status, next)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to update order status")
	}
	if !applied {
		// A concurrent delivery moved the order between our read and the
		// compare-and-set. Treated exactly like a guard violation.
		slog.WarnContext(ctx, "order status moved concurrently, trigger discarded",
			"order_id", orderID, "expected_status", order.Status, "trigger", trigger)
		uc.recordDiscard(ctx, trigger, "stale_read")
		return nil
	}

	slog.InfoContext(ctx, "order advanced",
		"order_id", orderID, "from", order.Status, "to", next, "trigger", trigger)
	telemetry.RecordCounter(ctx, "saga_transitions_total", "Order state transitions applied", 1,
		attribute.String("from", string(order.Status)),
		attribute.String("to", string(next)),
		attribute.String("trigger", string(trigger)),
	)

	if uc.status != nil {
		order.Status = next
		order.UpdatedAt = models.NewTimestamps().UpdatedAt
		if err := uc.status.PublishStatus(ctx, order); err != nil {
			slog.WarnContext(ctx, "realtime status publish failed", "order_id", orderID, "error", err)
		}
	}

	return nil
}

func (uc *AdvanceSaga) recordDiscard(ctx context.Context, trigger saga.Trigger, reason string) {
	telemetry.RecordCounter(ctx, "saga_triggers_discarded_total", "Triggers discarded by the guard rule", 1,
		attribute.String("trigger", string(trigger)),
		attribute.String("reason", reason),
	)
}
