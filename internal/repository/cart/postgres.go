package cart

import (
	"context"
	"errors"

	"inkpaper-express/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	const q = `
SELECT id, session_id, product_id, quantity
FROM cart_items
WHERE session_id = $1
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.SessionID, &item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Add(ctx context.Context, in domain.CartItem) (*domain.CartItem, error) {
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var item domain.CartItem
	err = tx.QueryRow(ctx, `
SELECT id, session_id, product_id, quantity
FROM cart_items
WHERE session_id = $1 AND product_id = $2
`, in.SessionID, in.ProductID).Scan(&item.ID, &item.SessionID, &item.ProductID, &item.Quantity)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if err == nil {
		item.Quantity += in.Quantity
		if _, err := tx.Exec(ctx, `
UPDATE cart_items
SET quantity = $1
WHERE id = $2
`, item.Quantity, item.ID); err != nil {
			return nil, err
		}
	} else {
		item = in
		if err := tx.QueryRow(ctx, `
INSERT INTO cart_items (session_id, product_id, quantity)
VALUES ($1, $2, $3)
RETURNING id
`, in.SessionID, in.ProductID, in.Quantity).Scan(&item.ID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) UpdateQuantity(ctx context.Context, id, quantity int) (*domain.CartItem, error) {
	const q = `
UPDATE cart_items
SET quantity = $2
WHERE id = $1
RETURNING id, session_id, product_id, quantity
`
	var item domain.CartItem
	err := r.pool.QueryRow(ctx, q, id, quantity).Scan(&item.ID, &item.SessionID, &item.ProductID, &item.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) Remove(ctx context.Context, id int) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ClearSession(ctx context.Context, sessionID string) error {
	// Clearing an empty session is fine; callers only care that the
	// session ends up empty.
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE session_id = $1`, sessionID)
	return err
}
