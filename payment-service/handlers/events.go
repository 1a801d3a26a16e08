package handlers

import (
	"context"
	"log/slog"

	"github.com/sagakit/order-system/payment-service/application"
	"github.com/sagakit/order-system/shared/cdc"
	"github.com/sagakit/order-system/shared/saga"
	"github.com/sagakit/order-system/shared/telemetry"
	kafkago "github.com/segmentio/kafka-go"
)

// PaymentEventHandlers routes order change events to the payment reactor.
type PaymentEventHandlers struct {
	processPayment    *application.ProcessPayment
	compensatePayment *application.CompensatePayment
	telemetry         *telemetry.Telemetry
}

// NewPaymentEventHandlers creates new payment event handlers.
func NewPaymentEventHandlers(
	processPayment *application.ProcessPayment,
	compensatePayment *application.CompensatePayment,
	tel *telemetry.Telemetry,
) *PaymentEventHandlers {
	return &PaymentEventHandlers{
		processPayment:    processPayment,
		compensatePayment: compensatePayment,
		telemetry:         tel,
	}
}

// HandleOrderEvent processes one order-changed envelope. Only PENDING and
// COMPENSATING_PAYMENT concern this reactor; everything else is noise
// from the perspective of payments.
func (h *PaymentEventHandlers) HandleOrderEvent(ctx context.Context, m kafkago.Message) error {
	if h.telemetry != nil {
		ctx = telemetry.WithTelemetry(ctx, h.telemetry)
	}

	var order saga.Order
	decoded, err := cdc.Decode(m.Value, &order)
	if err != nil {
		slog.WarnContext(ctx, "dropping undecodable order event", "error", err)
		return nil
	}
	if !decoded {
		slog.DebugContext(ctx, "order event without post-image, ignoring")
		return nil
	}

	switch order.Status {
	case saga.OrderStatusPending:
		return h.processPayment.Execute(ctx, &order)
	case saga.OrderStatusCompensatingPayment:
		return h.compensatePayment.Execute(ctx, &order)
	default:
		slog.DebugContext(ctx, "order status not for this reactor, ignoring",
			"order_id", order.ID, "status", order.Status)
		return nil
	}
}
