package cdc

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sagakit/order-system/shared/models"
	kafkago "github.com/segmentio/kafka-go"
)

// Publisher is the slice of the kafka producer the emitter needs.
type Publisher interface {
	Publish(ctx context.Context, key, value []byte, headers ...kafkago.Header) error
}

// Emitter publishes Debezium-shaped change envelopes for locally committed
// row writes. It stands in for the real capture connector in local runs;
// production deployments capture the tables directly and leave the emitter
// disabled. Messages are keyed by order id so consumers see per-order
// ordering either way.
type Emitter struct {
	publisher Publisher
	table     string
}

// NewEmitter creates an emitter for one owned table.
func NewEmitter(publisher Publisher, table string) *Emitter {
	return &Emitter{publisher: publisher, table: table}
}

// Emit publishes the post-image of a committed row mutation. Emission is
// best effort relative to the already-committed write: a publish failure
// is logged, not returned, because the local transaction cannot be rolled
// back anymore. The real connector does not have this gap.
func (e *Emitter) Emit(ctx context.Context, orderID models.ID, row interface{}) {
	after, err := json.Marshal(row)
	if err != nil {
		slog.ErrorContext(ctx, "cdc emit: marshal row image", "table", e.table, "error", err)
		return
	}

	value, err := json.Marshal(map[string]json.RawMessage{"after": after})
	if err != nil {
		slog.ErrorContext(ctx, "cdc emit: marshal envelope", "table", e.table, "error", err)
		return
	}

	err = e.publisher.Publish(ctx, []byte(orderID.String()), value,
		kafkago.Header{Key: "message_id", Value: []byte(uuid.NewString())},
		kafkago.Header{Key: "table", Value: []byte(e.table)},
	)
	if err != nil {
		slog.ErrorContext(ctx, "cdc emit: publish", "table", e.table, "order_id", orderID, "error", err)
	}
}
