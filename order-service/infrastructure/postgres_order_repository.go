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

// PostgresOrderRepository implements domain.OrderRepository using PostgreSQL.
type PostgresOrderRepository struct {
	db      *sqlx.DB
	emitter *cdc.Emitter
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository.
// emitter may be nil; when set, committed writes are re-published as
// change envelopes (local stand-in for the capture connector).
func NewPostgresOrderRepository(db *sqlx.DB, emitter *cdc.Emitter) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db, emitter: emitter}
}

// postgresOrder represents an order row.
type postgresOrder struct {
	ID        int64     `db:"id"`
	ProductID string    `db:"product_id"`
	Quantity  int       `db:"quantity"`
	UserID    string    `db:"user_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"creation_timestamp"`
	UpdatedAt time.Time `db:"last_update_timestamp"`
}

// Insert persists a new order and assigns its database identity.
func (r *PostgresOrderRepository) Insert(ctx context.Context, order *saga.Order) error {
	query := `
		INSERT INTO orders (product_id, quantity, user_id, status, creation_timestamp, last_update_timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		order.ProductID, order.Quantity, order.UserID,
		string(order.Status), order.CreatedAt, order.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return errors.Wrap(err, "failed to insert order")
	}
	order.ID = models.ID(id)

	if r.emitter != nil {
		r.emitter.Emit(ctx, order.ID, order)
	}
	return nil
}

// FindByID returns the order, or nil when it does not exist.
func (r *PostgresOrderRepository) FindByID(ctx context.Context, id models.ID) (*saga.Order, error) {
	query := `
		SELECT id, product_id, quantity, user_id, status, creation_timestamp, last_update_timestamp
		FROM orders
		WHERE id = $1`

	var row postgresOrder
	err := r.db.GetContext(ctx, &row, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find order")
	}

	return toDomain(&row), nil
}

// UpdateStatus applies a compare-and-set status transition. The WHERE
// clause on the current status is the persistence-level guard rule: a
// stale trigger matches zero rows and is reported, not applied.
func (r *PostgresOrderRepository) UpdateStatus(ctx context.Context, id models.ID, from, to saga.OrderStatus) (bool, error) {
	query := `
		UPDATE orders
		SET status = $1, last_update_timestamp = $2
		WHERE id = $3 AND status = $4`

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query, string(to), now, id.Int64(), string(from))
	if err != nil {
		return false, errors.Wrap(err, "failed to update order status")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return false, nil
	}

	if r.emitter != nil {
		order, err := r.FindByID(ctx, id)
		if err == nil && order != nil {
			r.emitter.Emit(ctx, order.ID, order)
		}
	}
	return true, nil
}

func toDomain(row *postgresOrder) *saga.Order {
	return &saga.Order{
		ID:        models.ID(row.ID),
		ProductID: row.ProductID,
		Quantity:  row.Quantity,
		UserID:    row.UserID,
		Status:    saga.OrderStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
