package cart

import (
	"context"
	"errors"
	"testing"

	"inkpaper-express/internal/domain"
	cartrepo "inkpaper-express/internal/repository/cart"
	productrepo "inkpaper-express/internal/repository/product"
)

func newService() (*Service, cartrepo.Repository, productrepo.Repository) {
	carts := cartrepo.NewMemory()
	products := productrepo.NewMemory()
	return New(carts, products), carts, products
}

func intPtr(v int) *int {
	return &v
}

func TestAddValidation(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Add(context.Background(), AddInput{SessionID: "", ProductID: 0})
	ve, ok := domain.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(ve.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %+v", ve.Fields)
	}

	_, err = svc.Add(context.Background(), AddInput{SessionID: "s1", ProductID: 3, Quantity: intPtr(0)})
	if _, ok := domain.AsValidation(err); !ok {
		t.Fatalf("expected validation error for quantity 0, got %v", err)
	}
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	svc, _, _ := newService()
	item, err := svc.Add(context.Background(), AddInput{SessionID: "s1", ProductID: 3})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item.Quantity != 1 {
		t.Fatalf("quantity = %d, want 1", item.Quantity)
	}
}

func TestAddMergesRepeatedProduct(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	svc.Add(ctx, AddInput{SessionID: "s1", ProductID: 3, Quantity: intPtr(1)})
	merged, err := svc.Add(ctx, AddInput{SessionID: "s1", ProductID: 3, Quantity: intPtr(2)})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if merged.Quantity != 3 {
		t.Fatalf("quantity = %d, want 3", merged.Quantity)
	}

	entries, err := svc.View(ctx, "s1")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected single cart row, got %d", len(entries))
	}
}

func TestUpdateQuantityRejectsBelowOne(t *testing.T) {
	svc, carts, _ := newService()
	ctx := context.Background()
	item, _ := carts.Add(ctx, domain.CartItem{SessionID: "s1", ProductID: 3, Quantity: 2})

	if _, err := svc.UpdateQuantity(ctx, item.ID, 0); err == nil {
		t.Fatalf("expected rejection of quantity 0")
	}

	// The store was not touched.
	items, _ := carts.ListBySession(ctx, "s1")
	if items[0].Quantity != 2 {
		t.Fatalf("quantity = %d, want 2 untouched", items[0].Quantity)
	}

	updated, err := svc.UpdateQuantity(ctx, item.ID, 5)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Quantity != 5 {
		t.Fatalf("quantity = %d, want 5", updated.Quantity)
	}
}

func TestViewJoinsProducts(t *testing.T) {
	svc, _, products := newService()
	ctx := context.Background()

	p, _ := products.Create(ctx, domain.Product{Name: "HP 65 Ink", Price: "49.99", Category: "ink", IsActive: true})
	svc.Add(ctx, AddInput{SessionID: "s1", ProductID: p.ID, Quantity: intPtr(2)})

	entries, err := svc.View(ctx, "s1")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(entries) != 1 || entries[0].Product == nil {
		t.Fatalf("expected joined product, got %+v", entries)
	}
	if entries[0].Product.Name != "HP 65 Ink" {
		t.Fatalf("unexpected product: %+v", entries[0].Product)
	}
}

func TestViewToleratesDeletedProduct(t *testing.T) {
	svc, _, products := newService()
	ctx := context.Background()

	p, _ := products.Create(ctx, domain.Product{Name: "HP 65 Ink", Price: "49.99", Category: "ink", IsActive: true})
	svc.Add(ctx, AddInput{SessionID: "s1", ProductID: p.ID, Quantity: intPtr(1)})

	if err := products.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}

	entries, err := svc.View(ctx, "s1")
	if err != nil {
		t.Fatalf("view after delete: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected the row to survive, got %d rows", len(entries))
	}
	if entries[0].Product != nil {
		t.Fatalf("expected nil product for dangling reference, got %+v", entries[0].Product)
	}
}

func TestViewPropagatesProductRepoError(t *testing.T) {
	carts := cartrepo.NewMemory()
	svc := New(carts, &failingProductRepo{})
	carts.Add(context.Background(), domain.CartItem{SessionID: "s1", ProductID: 1, Quantity: 1})

	if _, err := svc.View(context.Background(), "s1"); err == nil {
		t.Fatalf("expected error from product repo")
	}
}

type failingProductRepo struct{}

func (f *failingProductRepo) Get(_ context.Context, _ int) (*domain.Product, error) {
	return nil, errors.New("boom")
}
