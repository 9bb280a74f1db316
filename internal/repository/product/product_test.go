package product

import (
	"context"
	"errors"
	"testing"

	"inkpaper-express/internal/domain"
)

func sample(name, category string, active bool) domain.Product {
	return domain.Product{
		Name:         name,
		Description:  "desc",
		Price:        "19.99",
		Category:     category,
		Brand:        "HP",
		ImageURL:     "https://example.com/img.jpg",
		IsActive:     active,
		DeliveryTime: "Same Day",
	}
}

func TestMemoryCreateAssignsIncreasingIDs(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	first, err := repo.Create(ctx, sample("A", "ink", true))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := repo.Create(ctx, sample("B", "ink", true))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1,2 got %d,%d", first.ID, second.ID)
	}
}

func TestMemoryListFiltersInactive(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()
	repo.Create(ctx, sample("Visible", "ink", true))
	hidden, _ := repo.Create(ctx, sample("Hidden", "ink", false))

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Visible" {
		t.Fatalf("unexpected list: %+v", list)
	}

	// Inactive products stay addressable by id.
	got, err := repo.Get(ctx, hidden.ID)
	if err != nil {
		t.Fatalf("get inactive: %v", err)
	}
	if got.Name != "Hidden" {
		t.Fatalf("unexpected product: %+v", got)
	}
}

func TestMemoryListByCategory(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()
	repo.Create(ctx, sample("Ink", "ink", true))
	repo.Create(ctx, sample("Paper", "paper", true))
	repo.Create(ctx, sample("Inactive Ink", "ink", false))

	list, err := repo.ListByCategory(ctx, "ink")
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Ink" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestMemoryUpdateMergesPatch(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()
	created, _ := repo.Create(ctx, sample("Old", "ink", true))

	name := "New"
	stock := 7
	updated, err := repo.Update(ctx, created.ID, domain.ProductPatch{Name: &name, Stock: &stock})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "New" || updated.Stock != 7 {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Price != "19.99" || updated.Category != "ink" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestMemoryUpdateNotFound(t *testing.T) {
	repo := NewMemory()
	_, err := repo.Update(context.Background(), 99, domain.ProductPatch{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemoryDeleteTwice(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()
	created, _ := repo.Create(ctx, sample("Gone", "supplies", true))

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete: expected not found, got %v", err)
	}
}
