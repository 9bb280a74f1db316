package cart

import (
	"context"

	"inkpaper-express/internal/domain"
)

// Repository stores per-session cart rows. Add merges into an existing
// (sessionID, productID) row instead of duplicating it. UpdateQuantity
// overwrites whatever it is given; quantity floor checks belong to the
// caller. ClearSession succeeds even when the session holds nothing.
type Repository interface {
	ListBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	Add(ctx context.Context, in domain.CartItem) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, id, quantity int) (*domain.CartItem, error)
	Remove(ctx context.Context, id int) error
	ClearSession(ctx context.Context, sessionID string) error
}
