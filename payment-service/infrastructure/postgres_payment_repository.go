package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sagakit/order-system/shared/cdc"
	"github.com/sagakit/order-system/shared/models"
	"github.com/sagakit/order-system/shared/saga"
)

// PostgresPaymentRepository implements domain.PaymentRepository using PostgreSQL.
type PostgresPaymentRepository struct {
	db      *sqlx.DB
	emitter *cdc.Emitter
}

// NewPostgresPaymentRepository creates a new PostgresPaymentRepository.
// emitter may be nil; when set, committed writes are re-published as
// change envelopes (local stand-in for the capture connector).
func NewPostgresPaymentRepository(db *sqlx.DB, emitter *cdc.Emitter) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{db: db, emitter: emitter}
}

// postgresPayment represents a payment row.
type postgresPayment struct {
	ID        int64        `db:"id"`
	OrderID   int64        `db:"order_id"`
	Amount    models.Money `db:"amount"`
	Status    string       `db:"status"`
	Timestamp time.Time    `db:"timestamp"`
}

// FindByOrderID returns the payment for an order, or nil when none exists.
func (r *PostgresPaymentRepository) FindByOrderID(ctx context.Context, orderID models.ID) (*saga.Payment, error) {
	query := `
		SELECT id, order_id, amount, status, timestamp
		FROM payments
		WHERE order_id = $1`

	var row postgresPayment
	err := r.db.GetContext(ctx, &row, query, orderID.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find payment")
	}

	return toDomain(&row), nil
}

// Insert persists a new payment. The unique constraint on order_id backs
// the one-payment-per-order rule; a conflicting insert affects zero rows
// and is reported as not inserted rather than as an error.
func (r *PostgresPaymentRepository) Insert(ctx context.Context, payment *saga.Payment) (bool, error) {
	query := `
		INSERT INTO payments (order_id, amount, status, timestamp)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (order_id) DO NOTHING
		RETURNING id`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		payment.OrderID.Int64(), payment.Amount, string(payment.Status), payment.Timestamp,
	).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to insert payment")
	}
	payment.ID = models.ID(id)

	if r.emitter != nil {
		r.emitter.Emit(ctx, payment.OrderID, payment)
	}
	return true, nil
}

// UpdateStatus transitions an existing payment in place.
func (r *PostgresPaymentRepository) UpdateStatus(ctx context.Context, id models.ID, status saga.PaymentStatus) error {
	query := `
		UPDATE payments
		SET status = $1, timestamp = $2
		WHERE id = $3`

	_, err := r.db.ExecContext(ctx, query, string(status), time.Now().UTC(), id.Int64())
	if err != nil {
		return errors.Wrap(err, "failed to update payment status")
	}

	if r.emitter != nil {
		payment, err := r.findByID(ctx, id)
		if err == nil && payment != nil {
			r.emitter.Emit(ctx, payment.OrderID, payment)
		}
	}
	return nil
}

func (r *PostgresPaymentRepository) findByID(ctx context.Context, id models.ID) (*saga.Payment, error) {
	query := `
		SELECT id, order_id, amount, status, timestamp
		FROM payments
		WHERE id = $1`

	var row postgresPayment
	if err := r.db.GetContext(ctx, &row, query, id.Int64()); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find payment")
	}
	return toDomain(&row), nil
}

func toDomain(row *postgresPayment) *saga.Payment {
	return &saga.Payment{
		ID:        models.ID(row.ID),
		OrderID:   models.ID(row.OrderID),
		Amount:    row.Amount,
		Status:    saga.PaymentStatus(row.Status),
		Timestamp: row.Timestamp,
	}
}
