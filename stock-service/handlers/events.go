package handlers

import (
	"context"
	"log/slog"

	"github.com/sagakit/order-system/shared/cdc"
	"github.com/sagakit/order-system/shared/saga"
	"github.com/sagakit/order-system/shared/telemetry"
	"github.com/sagakit/order-system/stock-service/application"
	kafkago "github.com/segmentio/kafka-go"
)

// StockEventHandlers routes order change events to the stock reactor.
type StockEventHandlers struct {
	reserveStock *application.ReserveStock
	telemetry    *telemetry.Telemetry
}

// NewStockEventHandlers creates new stock event handlers.
func NewStockEventHandlers(reserveStock *application.ReserveStock, tel *telemetry.Telemetry) *StockEventHandlers {
	return &StockEventHandlers{reserveStock: reserveStock, telemetry: tel}
}

// HandleOrderEvent processes one order-changed envelope. Only
// AWAITING_STOCK concerns this reactor.
func (h *StockEventHandlers) HandleOrderEvent(ctx context.Context, m kafkago.Message) error {
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

	if order.Status != saga.OrderStatusAwaitingStock {
		slog.DebugContext(ctx, "order status not for this reactor, ignoring",
			"order_id", order.ID, "status", order.Status)
		return nil
	}

	return h.reserveStock.Execute(ctx, &order)
}
