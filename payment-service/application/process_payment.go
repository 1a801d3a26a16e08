package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/sagakit/order-system/payment-service/domain"
	"github.com/sagakit/order-system/shared/saga"
	"github.com/sagakit/order-system/shared/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ProcessPayment reacts to an order entering PENDING: it invokes the
// payment decision once per order and records the outcome as a payment
// row. The row's change event is what moves the saga along.
type ProcessPayment struct {
	payments domain.PaymentRepository
	gateway  domain.PaymentGateway
	pricer   domain.Pricer
}

// NewProcessPayment creates a new ProcessPayment use case.
func NewProcessPayment(payments domain.PaymentRepository, gateway domain.PaymentGateway, pricer domain.Pricer) *ProcessPayment {
	return &ProcessPayment{payments: payments, gateway: gateway, pricer: pricer}
}

// Execute attempts payment for the given order.
func (uc *ProcessPayment) Execute(ctx context.Context, order *saga.Order) error {
	ctx, span := telemetry.StartSpan(ctx, "process_payment",
		trace.WithAttributes(attribute.String("order_id", order.ID.String())),
	)
	defer span.End()

	existing, err := uc.payments.FindByOrderID(ctx, order.ID)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to check existing payment")
	}
	if existing != nil {
		// Duplicate delivery: the decision already ran for this order.
		slog.WarnContext(ctx, "payment already exists, skipping",
			"order_id", order.ID, "payment_status", existing.Status)
		telemetry.RecordCounter(ctx, "payment_duplicates_total", "Duplicate order events discarded", 1)
		return nil
	}

	unitPrice, err := uc.pricer.UnitPrice(ctx, order.ProductID)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to price product")
	}
	amount := unitPrice.Mul(int64(order.Quantity))

	approved, err := uc.gateway.Charge(ctx, amount)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "payment gateway error")
	}

	status := saga.PaymentStatusFailed
	if approved {
		status = saga.PaymentStatusCompleted
	}

	payment := &saga.Payment{
		OrderID:   order.ID,
		Amount:    amount,
		Status:    status,
		Timestamp: time.Now().UTC(),
	}

	inserted, err := uc.payments.Insert(ctx, payment)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to insert payment")
	}
	if !inserted {
		// A concurrent delivery won the insert race; ours is the duplicate.
		slog.WarnContext(ctx, "concurrent payment insert detected, skipping", "order_id", order.ID)
		return nil
	}

	slog.InfoContext(ctx, "payment recorded",
		"order_id", order.ID, "amount", amount, "status", status)
	telemetry.RecordCounter(ctx, "payments_processed_total", "Payment decisions recorded", 1,
		attribute.String("status", string(status)),
	)
	return nil
}
