package product

import (
	"context"
	"sort"
	"sync"

	"inkpaper-express/internal/domain"
)

// memoryRepo keeps products in a process-local map. The id counter is
// monotonically increasing, so iterating sorted ids yields insertion order.
type memoryRepo struct {
	mu     sync.Mutex
	items  map[int]domain.Product
	nextID int
}

func NewMemory() Repository {
	return &memoryRepo{items: make(map[int]domain.Product), nextID: 1}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []domain.Product
	for _, id := range r.sortedIDs() {
		if p := r.items[id]; p.IsActive {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *memoryRepo) ListByCategory(_ context.Context, category string) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []domain.Product
	for _, id := range r.sortedIDs() {
		if p := r.items[id]; p.IsActive && p.Category == category {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *memoryRepo) Get(_ context.Context, id int) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *memoryRepo) Create(_ context.Context, in domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	in.ID = r.nextID
	r.nextID++
	r.items[in.ID] = in
	return &in, nil
}

func (r *memoryRepo) Update(_ context.Context, id int, patch domain.ProductPatch) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	applyPatch(&p, patch)
	r.items[id] = p
	return &p, nil
}

func (r *memoryRepo) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memoryRepo) sortedIDs() []int {
	ids := make([]int, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func applyPatch(p *domain.Product, patch domain.ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	if patch.Specifications != nil {
		p.Specifications = patch.Specifications
	}
	if patch.Compatibility != nil {
		p.Compatibility = patch.Compatibility
	}
	if patch.DeliveryTime != nil {
		p.DeliveryTime = *patch.DeliveryTime
	}
}
