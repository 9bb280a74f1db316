package product

import (
	"context"

	"inkpaper-express/internal/domain"
)

// Repository stores catalog products. List and ListByCategory return
// active products only; Get also resolves inactive ones so the admin
// dashboard and direct detail links keep working.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, in domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
}
