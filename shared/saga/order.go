// Package saga holds the entity records and the order state machine shared
// by every participant of the order choreography. Each service owns and
// writes exactly one of the entities; the others are read-only projections
// decoded from the change log. The transition table below is the single
// source of truth for order progress, even though enforcement is spread
// across services.
package saga

import (
	"time"

	"github.com/sagakit/order-system/shared/models"
)

// OrderStatus represents the saga state of an order.
type OrderStatus string

const (
	OrderStatusPending             OrderStatus = "PENDING"
	OrderStatusAwaitingStock       OrderStatus = "AWAITING_STOCK"
	OrderStatusCompleted           OrderStatus = "COMPLETED"
	OrderStatusFailed              OrderStatus = "FAILED"
	OrderStatusCompensatingPayment OrderStatus = "COMPENSATING_PAYMENT"
)

// IsTerminal reports whether the status is absorbing: once an order is
// COMPLETED or FAILED no event may move it anywhere else.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusFailed
}

// Order is the saga's source of truth. Created by the ingress API in
// PENDING; its status is mutated exclusively through Advance by the
// saga completion handler in the order service. Never deleted.
type Order struct {
	ID        models.ID   `json:"id" db:"id"`
	ProductID string      `json:"product_id" db:"product_id"`
	Quantity  int         `json:"quantity" db:"quantity"`
	UserID    string      `json:"user_id" db:"user_id"`
	Status    OrderStatus `json:"status" db:"status"`
	CreatedAt time.Time   `json:"creation_timestamp" db:"creation_timestamp"`
	UpdatedAt time.Time   `json:"last_update_timestamp" db:"last_update_timestamp"`
}

// Trigger is a status change observed on a participant entity, translated
// into an input for the order state machine.
type Trigger string

const (
	TriggerPaymentCompleted Trigger = "payment.completed"
	TriggerPaymentFailed    Trigger = "payment.failed"
	TriggerPaymentCancelled Trigger = "payment.cancelled"
	TriggerStockReserved    Trigger = "stock.reserved"
	TriggerStockFailed      Trigger = "stock.failed"
)

// transitions is the legal state graph. A (state, trigger) pair absent
// from the table is a no-op: the caller discards the trigger with a
// warning instead of applying it speculatively.
var transitions = map[OrderStatus]map[Trigger]OrderStatus{
	OrderStatusPending: {
		TriggerPaymentCompleted: OrderStatusAwaitingStock,
		TriggerPaymentFailed:    OrderStatusFailed,
		TriggerPaymentCancelled: OrderStatusFailed,
	},
	OrderStatusAwaitingStock: {
		TriggerStockReserved:    OrderStatusCompleted,
		TriggerStockFailed:      OrderStatusCompensatingPayment,
		TriggerPaymentCancelled: OrderStatusFailed,
	},
	OrderStatusCompensatingPayment: {
		TriggerPaymentCancelled: OrderStatusFailed,
	},
}

// Advance applies the transition table to the order's current persisted
// status. ok is false when the trigger does not match the expected
// precondition for the current state; such triggers must be discarded,
// never escalated.
func Advance(current OrderStatus, trigger Trigger) (next OrderStatus, ok bool) {
	next, ok = transitions[current][trigger]
	return next, ok
}
