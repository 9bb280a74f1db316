package order

import (
	"context"
	"errors"
	"io"
	"log"

	"inkpaper-express/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const orderColumns = `id, customer_name, customer_email, customer_phone, shipping_address, total::text, status, created_at, items`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("order repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Get(ctx context.Context, id int) (*domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
`
	var o domain.Order
	if err := scanOrder(r.pool.QueryRow(ctx, q, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("order repo: get id=%d not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) Create(ctx context.Context, in domain.Order) (*domain.Order, error) {
	status := in.Status
	if status == "" {
		status = domain.StatusProcessing
	}
	const q = `
INSERT INTO orders (customer_name, customer_email, customer_phone, shipping_address, total, status, items)
VALUES ($1, $2, $3, $4, $5::numeric, $6, $7)
RETURNING ` + orderColumns + `
`
	var o domain.Order
	err := scanOrder(r.pool.QueryRow(ctx, q,
		in.CustomerName,
		in.CustomerEmail,
		in.CustomerPhone,
		in.ShippingAddress,
		in.Total,
		status,
		in.Items,
	), &o)
	if err != nil {
		r.logger.Printf("order repo: create customer=%q error=%v", in.CustomerName, err)
		return nil, err
	}
	r.logger.Printf("order repo: created id=%d total=%s", o.ID, o.Total)
	return &o, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id int, status string) (*domain.Order, error) {
	const q = `
UPDATE orders
SET status = $2
WHERE id = $1
RETURNING ` + orderColumns + `
`
	var o domain.Order
	if err := scanOrder(r.pool.QueryRow(ctx, q, id, status), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("order repo: update status id=%d not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: update status id=%d error=%v", id, err)
		return nil, err
	}
	return &o, nil
}

func scanOrder(row pgx.Row, o *domain.Order) error {
	return row.Scan(
		&o.ID,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.CustomerPhone,
		&o.ShippingAddress,
		&o.Total,
		&o.Status,
		&o.CreatedAt,
		&o.Items,
	)
}
