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

// PostgresReservationRepository implements domain.ReservationRepository
// using PostgreSQL.
type PostgresReservationRepository struct {
	db      *sqlx.DB
	emitter *cdc.Emitter
}

// NewPostgresReservationRepository creates a new PostgresReservationRepository.
// emitter may be nil; when set, committed writes are re-published as
// change envelopes (local stand-in for the capture connector).
func NewPostgresReservationRepository(db *sqlx.DB, emitter *cdc.Emitter) *PostgresReservationRepository {
	return &PostgresReservationRepository{db: db, emitter: emitter}
}

// postgresReservation represents a stock reservation row.
type postgresReservation struct {
	ID        int64     `db:"id"`
	OrderID   int64     `db:"order_id"`
	ProductID string    `db:"product_id"`
	Quantity  int       `db:"quantity"`
	Status    string    `db:"status"`
	Timestamp time.Time `db:"timestamp"`
}

// FindByOrderID returns the reservation for an order, or nil when none exists.
func (r *PostgresReservationRepository) FindByOrderID(ctx context.Context, orderID models.ID) (*saga.StockReservation, error) {
	query := `
		SELECT id, order_id, product_id, quantity, status, timestamp
		FROM stock_reservations
		WHERE order_id = $1`

	var row postgresReservation
	err := r.db.GetContext(ctx, &row, query, orderID.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find reservation")
	}

	return toDomain(&row), nil
}

// Insert persists a new reservation. The unique constraint on order_id
// backs the one-reservation-per-order rule; a conflicting insert affects
// zero rows and is reported as not inserted rather than as an error.
func (r *PostgresReservationRepository) Insert(ctx context.Context, reservation *saga.StockReservation) (bool, error) {
	query := `
		INSERT INTO stock_reservations (order_id, product_id, quantity, status, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (order_id) DO NOTHING
		RETURNING id`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		reservation.OrderID.Int64(), reservation.ProductID,
		reservation.Quantity, string(reservation.Status), reservation.Timestamp,
	).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to insert reservation")
	}
	reservation.ID = models.ID(id)

	if r.emitter != nil {
		r.emitter.Emit(ctx, reservation.OrderID, reservation)
	}
	return true, nil
}

func toDomain(row *postgresReservation) *saga.StockReservation {
	return &saga.StockReservation{
		ID:        models.ID(row.ID),
		OrderID:   models.ID(row.OrderID),
		ProductID: row.ProductID,
		Quantity:  row.Quantity,
		Status:    saga.ReservationStatus(row.Status),
		Timestamp: row.Timestamp,
	}
}
