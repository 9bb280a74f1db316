package order

import (
	"context"

	"inkpaper-express/internal/domain"
)

// Repository stores orders. Create assigns the id, stamps CreatedAt
// server-side and defaults the status; orders are never deleted.
type Repository interface {
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id int) (*domain.Order, error)
	Create(ctx context.Context, in domain.Order) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.Order, error)
}
