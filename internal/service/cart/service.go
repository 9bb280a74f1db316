package cart

import (
	"context"
	"errors"
	"strings"

	"inkpaper-express/internal/domain"
)

type Service struct {
	repo     cartRepo
	products productRepo
}

type cartRepo interface {
	ListBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	Add(ctx context.Context, in domain.CartItem) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, id, quantity int) (*domain.CartItem, error)
	Remove(ctx context.Context, id int) error
	ClearSession(ctx context.Context, sessionID string) error
}

type productRepo interface {
	Get(ctx context.Context, id int) (*domain.Product, error)
}

func New(repo cartRepo, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

type AddInput struct {
	SessionID string `json:"sessionId"`
	ProductID int    `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

// View returns the session's rows joined with their products. A row whose
// product has been deleted is still returned, with a nil product; the
// storefront renders it as unavailable rather than failing the whole cart.
func (s *Service) View(ctx context.Context, sessionID string) ([]domain.CartEntry, error) {
	items, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.CartEntry, 0, len(items))
	for _, item := range items {
		entry := domain.CartEntry{CartItem: item}
		p, err := s.products.Get(ctx, item.ProductID)
		switch {
		case err == nil:
			entry.Product = p
		case errors.Is(err, domain.ErrNotFound):
			// dangling weak reference, keep the row
		default:
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Add merges into an existing (session, product) row or creates one.
// Product existence and stock are deliberately not checked here.
func (s *Service) Add(ctx context.Context, in AddInput) (*domain.CartItem, error) {
	ve := &domain.ValidationError{}
	if strings.TrimSpace(in.SessionID) == "" {
		ve.Add("sessionId", "required")
	}
	if in.ProductID <= 0 {
		ve.Add("productId", "required")
	}
	quantity := 1
	if in.Quantity != nil {
		quantity = *in.Quantity
		if quantity < 1 {
			ve.Add("quantity", "must be at least 1")
		}
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	return s.repo.Add(ctx, domain.CartItem{
		SessionID: in.SessionID,
		ProductID: in.ProductID,
		Quantity:  quantity,
	})
}

// UpdateQuantity rejects quantities below 1 before touching the store;
// the store itself is a dumb setter.
func (s *Service) UpdateQuantity(ctx context.Context, id, quantity int) (*domain.CartItem, error) {
	if quantity < 1 {
		ve := &domain.ValidationError{}
		return nil, ve.Add("quantity", "must be at least 1")
	}
	return s.repo.UpdateQuantity(ctx, id, quantity)
}

func (s *Service) Remove(ctx context.Context, id int) error {
	return s.repo.Remove(ctx, id)
}

func (s *Service) ClearSession(ctx context.Context, sessionID string) error {
	return s.repo.ClearSession(ctx, sessionID)
}
