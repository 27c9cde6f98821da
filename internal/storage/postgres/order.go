package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/monish-s03/grokart-api/internal/domain/order"
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create persists a new order. The caller assigns ID and CreatedAt.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	const stmt = `
INSERT INTO orders (id, product_id, product_name, image, price, user_id, user_email, quantity, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, stmt,
		o.ID, o.ProductID, o.ProductName, o.Image, o.Price, o.UserID, o.UserEmail, o.Quantity, o.CreatedAt,
	)
	if err != nil {
		return errors.Wrapf(err, "insert order %q", o.ID)
	}
	return nil
}

// ListByEmail returns the purchaser's orders, newest first. No rows is an
// empty slice, not an error.
func (r *OrderRepository) ListByEmail(ctx context.Context, email string) ([]order.Order, error) {
	const query = `
SELECT id, product_id, product_name, image, price, user_id, user_email, quantity, created_at
FROM orders
WHERE user_email = $1
ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, errors.Wrap(err, "query orders")
	}
	defer rows.Close()

	orders := []order.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate orders")
	}
	return orders, nil
}

// GetByID fetches one order. A syntactically invalid id, like a non-UUID
// path segment, maps to ErrNotFound rather than a query error.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*order.Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, order.ErrNotFound
	}

	const query = `
SELECT id, product_id, product_name, image, price, user_id, user_email, quantity, created_at
FROM orders
WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// DeleteByID hard deletes an order. Deleting an absent order returns
// ErrNotFound.
func (r *OrderRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return order.ErrNotFound
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return errors.Wrapf(err, "delete order %q", id)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (order.Order, error) {
	var o order.Order
	err := row.Scan(
		&o.ID, &o.ProductID, &o.ProductName, &o.Image, &o.Price,
		&o.UserID, &o.UserEmail, &o.Quantity, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.Order{}, err
		}
		return order.Order{}, errors.Wrap(err, "scan order")
	}
	return o, nil
}
