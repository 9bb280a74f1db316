package catalog

import (
	"context"
	"errors"
	"testing"

	"inkpaper-express/internal/domain"
	productrepo "inkpaper-express/internal/repository/product"
)

func validCreate() CreateInput {
	return CreateInput{
		Name:        "HP DeskJet 3755",
		Description: "Compact all-in-one wireless printer",
		Price:       "89.99",
		Category:    "home-printers",
		ImageURL:    "https://example.com/deskjet.jpg",
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := New(productrepo.NewMemory())

	p, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Brand != "HP" {
		t.Fatalf("brand = %q, want HP", p.Brand)
	}
	if p.Stock != 0 {
		t.Fatalf("stock = %d, want 0", p.Stock)
	}
	if !p.IsActive {
		t.Fatalf("expected active by default")
	}
	if p.DeliveryTime != "Same Day" {
		t.Fatalf("deliveryTime = %q, want Same Day", p.DeliveryTime)
	}
}

func TestCreateValidatesFields(t *testing.T) {
	svc := New(productrepo.NewMemory())

	in := validCreate()
	in.Price = "12.999"
	in.Category = "toner"
	_, err := svc.Create(context.Background(), in)
	ve, ok := domain.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := map[string]bool{}
	for _, f := range ve.Fields {
		fields[f.Field] = true
	}
	if !fields["price"] || !fields["category"] {
		t.Fatalf("expected price and category violations, got %+v", ve.Fields)
	}
}

func TestCreateRejectsNegativeStock(t *testing.T) {
	svc := New(productrepo.NewMemory())
	stock := -1
	in := validCreate()
	in.Stock = &stock
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatalf("expected rejection of negative stock")
	}
}

func TestUpdateValidatesBeforeMerge(t *testing.T) {
	repo := productrepo.NewMemory()
	svc := New(repo)
	created, _ := svc.Create(context.Background(), validCreate())

	bad := "not-a-price"
	_, err := svc.Update(context.Background(), created.ID, domain.ProductPatch{Price: &bad})
	if _, ok := domain.AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}

	// Nothing was merged.
	got, _ := svc.Get(context.Background(), created.ID)
	if got.Price != "89.99" {
		t.Fatalf("price = %q, want untouched 89.99", got.Price)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc := New(productrepo.NewMemory())
	name := "x"
	_, err := svc.Update(context.Background(), 5, domain.ProductPatch{Name: &name})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListByCategory(t *testing.T) {
	svc := New(productrepo.NewMemory())
	ctx := context.Background()

	svc.Create(ctx, validCreate())
	ink := validCreate()
	ink.Name = "HP 65 Ink Combo Pack"
	ink.Category = "ink"
	svc.Create(ctx, ink)

	list, err := svc.List(ctx, "ink")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Category != "ink" {
		t.Fatalf("unexpected list: %+v", list)
	}

	all, _ := svc.List(ctx, "")
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}
}

func TestDeactivatedProductHiddenButFetchable(t *testing.T) {
	svc := New(productrepo.NewMemory())
	ctx := context.Background()
	created, _ := svc.Create(ctx, validCreate())

	inactive := false
	if _, err := svc.Update(ctx, created.ID, domain.ProductPatch{IsActive: &inactive}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	list, _ := svc.List(ctx, "")
	if len(list) != 0 {
		t.Fatalf("inactive product listed: %+v", list)
	}
	if _, err := svc.Get(ctx, created.ID); err != nil {
		t.Fatalf("get inactive: %v", err)
	}
}
