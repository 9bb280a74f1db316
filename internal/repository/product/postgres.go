package product

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

const productColumns = `id, name, description, price::text, category, brand, image_url, stock, is_active, specifications, compatibility, delivery_time`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE is_active
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *postgresRepo) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE is_active AND category = $1
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q, category)
	if err != nil {
		r.logger.Printf("product repo: list category=%s error=%v", category, err)
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *postgresRepo) Get(ctx context.Context, id int) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	var p domain.Product
	if err := scanProduct(r.pool.QueryRow(ctx, q, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: get id=%d not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, in domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, price, category, brand, image_url, stock, is_active, specifications, compatibility, delivery_time)
VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + productColumns + `
`
	var p domain.Product
	err := scanProduct(r.pool.QueryRow(ctx, q,
		in.Name,
		in.Description,
		in.Price,
		in.Category,
		in.Brand,
		in.ImageURL,
		in.Stock,
		in.IsActive,
		in.Specifications,
		in.Compatibility,
		in.DeliveryTime,
	), &p)
	if err != nil {
		r.logger.Printf("product repo: create name=%q error=%v", in.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%d name=%q", p.ID, p.Name)
	return &p, nil
}

func (r *postgresRepo) Update(ctx context.Context, id int, patch domain.ProductPatch) (*domain.Product, error) {
	const q = `
UPDATE products SET
    name = COALESCE($2, name),
    description = COALESCE($3, description),
    price = COALESCE($4::numeric, price),
    category = COALESCE($5, category),
    brand = COALESCE($6, brand),
    image_url = COALESCE($7, image_url),
    stock = COALESCE($8, stock),
    is_active = COALESCE($9, is_active),
    specifications = COALESCE($10, specifications),
    compatibility = COALESCE($11, compatibility),
    delivery_time = COALESCE($12, delivery_time)
WHERE id = $1
RETURNING ` + productColumns + `
`
	var p domain.Product
	err := scanProduct(r.pool.QueryRow(ctx, q, id,
		patch.Name,
		patch.Description,
		patch.Price,
		patch.Category,
		patch.Brand,
		patch.ImageURL,
		patch.Stock,
		patch.IsActive,
		patch.Specifications,
		patch.Compatibility,
		patch.DeliveryTime,
	), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: update id=%d not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%d error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int) error {
	const q = `DELETE FROM products WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%d error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		r.logger.Printf("product repo: delete id=%d not found", id)
		return domain.ErrNotFound
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanProduct(row pgx.Row, p *domain.Product) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Category,
		&p.Brand,
		&p.ImageURL,
		&p.Stock,
		&p.IsActive,
		&p.Specifications,
		&p.Compatibility,
		&p.DeliveryTime,
	)
}
