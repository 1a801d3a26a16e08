package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sagakit/order-system/shared/saga"
)

const (
	// keyOrderStatus caches the latest status per order for dashboards.
	keyOrderStatus = "order_status:%s"

	statusCacheTTL = 5 * time.Minute
)

// RedisStatusPublisher implements domain.StatusPublisher on Redis: it
// caches the latest order status and publishes it on a channel for
// realtime subscribers.
type RedisStatusPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisStatusPublisher creates a new RedisStatusPublisher.
func NewRedisStatusPublisher(client *redis.Client, channel string) *RedisStatusPublisher {
	return &RedisStatusPublisher{client: client, channel: channel}
}

type statusMessage struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublishStatus caches and broadcasts the order's current status.
func (p *RedisStatusPublisher) PublishStatus(ctx context.Context, order *saga.Order) error {
	msg, err := json.Marshal(statusMessage{
		OrderID:   order.ID.String(),
		Status:    string(order.Status),
		UpdatedAt: order.UpdatedAt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal status message")
	}

	key := fmt.Sprintf(keyOrderStatus, order.ID.String())
	if err := p.client.Set(ctx, key, msg, statusCacheTTL).Err(); err != nil {
		return errors.Wrap(err, "failed to cache order status")
	}
	if err := p.client.Publish(ctx, p.channel, msg).Err(); err != nil {
		return errors.Wrap(err, "failed to publish order status")
	}
	return nil
}
