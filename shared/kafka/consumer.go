// Package kafka wraps the broker client used as the choreography's change
// log transport. Events for one order share a partition key, so processing
// inside a consumer group member is strictly ordered per order.
package kafka

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// Handler processes a single change event. Returning nil acknowledges the
// message (the offset is committed); returning an error keeps the consumer
// on the same message until it succeeds.
type Handler func(ctx context.Context, m kafka.Message) error

// messageSource is the slice of the group reader the consume loop needs.
type messageSource interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

const (
	defaultBackoffMin = time.Second
	defaultBackoffMax = 30 * time.Second
)

// Consumer is a consumer-group member reading one topic.
type Consumer struct {
	reader     messageSource
	backoffMin time.Duration
	backoffMax time.Duration
}

// NewConsumer creates a consumer-group reader with manual offset commits.
func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        brokers,
			GroupID:        groupID,
			Topic:          topic,
			MinBytes:       1,
			MaxBytes:       10e6,
			CommitInterval: 0, // commit explicitly, after the handler succeeds
		}),
		backoffMin: defaultBackoffMin,
		backoffMax: defaultBackoffMax,
	}
}

// Run consumes messages sequentially until ctx is cancelled. Sequential
// handling is what preserves per-order ordering within the partition; do
// not fan messages out to workers here.
func (c *Consumer) Run(ctx context.Context, handler Handler) error {
	defer c.reader.Close()

	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "fetch message")
		}

		if err := c.handleWithRetry(ctx, handler, m); err != nil {
			// Shutdown requested while retrying; the offset stays
			// uncommitted so the message is redelivered on restart.
			return nil
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "commit offset")
		}
	}
}

// handleWithRetry keeps the consumer on one message until the handler
// accepts it. Fetching past a failed message would let a later commit on
// the partition advance the group offset beyond it, losing the event for
// good; blocking here stalls the partition instead, which is the intended
// behavior: the saga waits on this order until the write succeeds or an
// operator steps in.
func (c *Consumer) handleWithRetry(ctx context.Context, handler Handler, m kafka.Message) error {
	backoff := c.backoffMin
	for {
		err := handler(ctx, m)
		if err == nil {
			return nil
		}

		slog.ErrorContext(ctx, "event handler failed, retrying same message",
			"topic", m.Topic, "partition", m.Partition, "offset", m.Offset,
			"backoff", backoff, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > c.backoffMax {
			backoff = c.backoffMax
		}
	}
}
