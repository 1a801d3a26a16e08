package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/sagakit/order-system/payment-service/domain"
	"github.com/sagakit/order-system/shared/saga"
	"github.com/sagakit/order-system/shared/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CompensatePayment reacts to an order entering COMPENSATING_PAYMENT: it
// refunds the completed payment and supersedes it in place with
// CANCELLED. This is the saga's compensating transaction.
type CompensatePayment struct {
	payments domain.PaymentRepository
	refunds  domain.RefundGateway
}

// NewCompensatePayment creates a new CompensatePayment use case.
func NewCompensatePayment(payments domain.PaymentRepository, refunds domain.RefundGateway) *CompensatePayment {
	return &CompensatePayment{payments: payments, refunds: refunds}
}

// Execute attempts to cancel the payment for the given order.
func (uc *CompensatePayment) Execute(ctx context.Context, order *saga.Order) error {
	ctx, span := telemetry.StartSpan(ctx, "compensate_payment",
		trace.WithAttributes(attribute.String("order_id", order.ID.String())),
	)
	defer span.End()

	payment, err := uc.payments.FindByOrderID(ctx, order.ID)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to find payment")
	}
	if payment == nil {
		slog.WarnContext(ctx, "compensation requested but no payment exists, ignoring", "order_id", order.ID)
		return nil
	}
	if payment.Status == saga.PaymentStatusCancelled || payment.Status == saga.PaymentStatusFailed {
		// Duplicate delivery, or there was never anything to refund.
		slog.WarnContext(ctx, "compensation requested but payment not refundable, ignoring",
			"order_id", order.ID, "payment_status", payment.Status)
		return nil
	}

	refunded, err := uc.refunds.Refund(ctx, payment.Amount)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "refund gateway error")
	}
	if !refunded {
		// The one inconsistency the saga cannot heal on its own: the
		// payment stays COMPLETED while the order fails. Surface it for
		// manual intervention instead of pretending otherwise.
		slog.ErrorContext(ctx, "payment compensation failed, manual intervention required",
			"order_id", order.ID, "payment_id", payment.ID, "amount", payment.Amount)
		telemetry.RecordCounter(ctx, "payment_compensation_failures_total",
			"Refund decisions rejected; operator action required", 1)
		span.SetAttributes(attribute.Bool("compensation.failed", true))
		return nil
	}

	if err := uc.payments.UpdateStatus(ctx, payment.ID, saga.PaymentStatusCancelled); err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to cancel payment")
	}

	slog.InfoContext(ctx, "payment cancelled", "order_id", order.ID, "payment_id", payment.ID)
	telemetry.RecordCounter(ctx, "payments_cancelled_total", "Payments cancelled by compensation", 1)
	return nil
}
