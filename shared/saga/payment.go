package saga

import (
	"time"

	"github.com/sagakit/order-system/shared/models"
)

// PaymentStatus represents the status of a payment.
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// Payment is owned and written by the payment service. At most one row
// exists per order; CANCELLED supersedes COMPLETED in place, which is
// the compensating transaction.
type Payment struct {
	ID        models.ID     `json:"id" db:"id"`
	OrderID   models.ID     `json:"order_id" db:"order_id"`
	Amount    models.Money  `json:"amount" db:"amount"`
	Status    PaymentStatus `json:"status" db:"status"`
	Timestamp time.Time     `json:"timestamp" db:"timestamp"`
}

// Trigger translates the payment status into a state machine input.
func (p *Payment) Trigger() (Trigger, bool) {
	switch p.Status {
	case PaymentStatusCompleted:
		return TriggerPaymentCompleted, true
	case PaymentStatusFailed:
		return TriggerPaymentFailed, true
	case PaymentStatusCancelled:
		return TriggerPaymentCancelled, true
	default:
		return "", false
	}
}
