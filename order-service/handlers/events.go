package handlers

import (
	"context"
	"log/slog"

	"github.com/sagakit/order-system/order-service/application"
	"github.com/sagakit/order-system/shared/cdc"
	"github.com/sagakit/order-system/shared/saga"
	"github.com/sagakit/order-system/shared/telemetry"
	kafkago "github.com/segmentio/kafka-go"
)

// SagaEventHandlers consumes payment and stock change events and feeds
// them to the saga completion handler.
type SagaEventHandlers struct {
	advanceSaga *application.AdvanceSaga
	telemetry   *telemetry.Telemetry
}

// NewSagaEventHandlers creates new saga event handlers.
func NewSagaEventHandlers(advanceSaga *application.AdvanceSaga, tel *telemetry.Telemetry) *SagaEventHandlers {
	return &SagaEventHandlers{advanceSaga: advanceSaga, telemetry: tel}
}

// HandlePaymentEvent processes a payment-changed envelope.
func (h *SagaEventHandlers) HandlePaymentEvent(ctx context.Context, m kafkago.Message) error {
	ctx = h.withTelemetry(ctx)

	var payment saga.Payment
	decoded, err := cdc.Decode(m.Value, &payment)
	if err != nil {
		slog.WarnContext(ctx, "dropping undecodable payment event", "error", err)
		return nil
	}
	if !decoded {
		slog.DebugContext(ctx, "payment event without post-image, ignoring")
		return nil
	}

	trigger, ok := payment.Trigger()
	if !ok {
		slog.WarnContext(ctx, "unhandled payment status", "order_id", payment.OrderID, "status", payment.Status)
		return nil
	}

	return h.advanceSaga.Execute(ctx, payment.OrderID, trigger)
}

// HandleStockEvent processes a stock-changed envelope.
func (h *SagaEventHandlers) HandleStockEvent(ctx context.Context, m kafkago.Message) error {
	ctx = h.withTelemetry(ctx)

	var reservation saga.StockReservation
	decoded, err := cdc.Decode(m.Value, &reservation)
	if err != nil {
		slog.WarnContext(ctx, "dropping undecodable stock event", "error", err)
		return nil
	}
	if !decoded {
		slog.DebugContext(ctx, "stock event without post-image, ignoring")
		return nil
	}

	trigger, ok := reservation.Trigger()
	if !ok {
		slog.WarnContext(ctx, "unhandled reservation status", "order_id", reservation.OrderID, "status", reservation.Status)
		return nil
	}

	return h.advanceSaga.Execute(ctx, reservation.OrderID, trigger)
}

func (h *SagaEventHandlers) withTelemetry(ctx context.Context) context.Context {
	if h.telemetry != nil {
		return telemetry.WithTelemetry(ctx, h.telemetry)
	}
	return ctx
}
