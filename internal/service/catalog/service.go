package catalog

import (
	"context"
	"strings"

	"inkpaper-express/internal/domain"
	"inkpaper-express/internal/pricing"
	productrepo "inkpaper-express/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries a new product. Optional fields fall back to the
// catalog defaults: brand "HP", stock 0, active, "Same Day" delivery.
type CreateInput struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          string  `json:"price"`
	Category       string  `json:"category"`
	Brand          *string `json:"brand"`
	ImageURL       string  `json:"imageUrl"`
	Stock          *int    `json:"stock"`
	IsActive       *bool   `json:"isActive"`
	Specifications *string `json:"specifications"`
	Compatibility  *string `json:"compatibility"`
	DeliveryTime   *string `json:"deliveryTime"`
}

func (s *Service) List(ctx context.Context, category string) ([]domain.Product, error) {
	if category != "" {
		return s.repo.ListByCategory(ctx, category)
	}
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	ve := &domain.ValidationError{}
	if strings.TrimSpace(in.Name) == "" {
		ve.Add("name", "required")
	}
	if strings.TrimSpace(in.Description) == "" {
		ve.Add("description", "required")
	}
	if _, err := pricing.ParsePrice(in.Price); err != nil {
		ve.Add("price", "must be a non-negative decimal with at most 2 fraction digits")
	}
	if !domain.ValidCategory(in.Category) {
		ve.Add("category", "unknown category")
	}
	if strings.TrimSpace(in.ImageURL) == "" {
		ve.Add("imageUrl", "required")
	}
	if in.Stock != nil && *in.Stock < 0 {
		ve.Add("stock", "must not be negative")
	}
	if in.DeliveryTime != nil && !domain.ValidDeliveryTime(*in.DeliveryTime) {
		ve.Add("deliveryTime", "unknown delivery time")
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	p := domain.Product{
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		Category:       in.Category,
		Brand:          "HP",
		ImageURL:       in.ImageURL,
		IsActive:       true,
		Specifications: in.Specifications,
		Compatibility:  in.Compatibility,
		DeliveryTime:   "Same Day",
	}
	if in.Brand != nil && *in.Brand != "" {
		p.Brand = *in.Brand
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if in.DeliveryTime != nil {
		p.DeliveryTime = *in.DeliveryTime
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, id int, patch domain.ProductPatch) (*domain.Product, error) {
	// Field-level validation happens before any merge is attempted.
	ve := &domain.ValidationError{}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		ve.Add("name", "must not be empty")
	}
	if patch.Price != nil {
		if _, err := pricing.ParsePrice(*patch.Price); err != nil {
			ve.Add("price", "must be a non-negative decimal with at most 2 fraction digits")
		}
	}
	if patch.Category != nil && !domain.ValidCategory(*patch.Category) {
		ve.Add("category", "unknown category")
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		ve.Add("stock", "must not be negative")
	}
	if patch.DeliveryTime != nil && !domain.ValidDeliveryTime(*patch.DeliveryTime) {
		ve.Add("deliveryTime", "unknown delivery time")
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, patch)
}

// Delete removes a product for good. Cart rows and order snapshots that
// reference the id keep it as a dangling weak reference; nothing
// cascades.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
