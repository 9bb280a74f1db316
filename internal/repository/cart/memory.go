package cart

import (
	"context"
	"sort"
	"sync"

	"inkpaper-express/internal/domain"
)

type memoryRepo struct {
	mu     sync.Mutex
	items  map[int]domain.CartItem
	nextID int
}

func NewMemory() Repository {
	return &memoryRepo{items: make(map[int]domain.CartItem), nextID: 1}
}

func (r *memoryRepo) ListBySession(_ context.Context, sessionID string) ([]domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int, 0, len(r.items))
	for id, item := range r.items {
		if item.SessionID == sessionID {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	result := make([]domain.CartItem, 0, len(ids))
	for _, id := range ids {
		result = append(result, r.items[id])
	}
	return result, nil
}

func (r *memoryRepo) Add(_ context.Context, in domain.CartItem) (*domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if in.Quantity == 0 {
		in.Quantity = 1
	}

	for id, item := range r.items {
		if item.SessionID == in.SessionID && item.ProductID == in.ProductID {
			item.Quantity += in.Quantity
			r.items[id] = item
			return &item, nil
		}
	}

	in.ID = r.nextID
	r.nextID++
	r.items[in.ID] = in
	return &in, nil
}

func (r *memoryRepo) UpdateQuantity(_ context.Context, id, quantity int) (*domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	item.Quantity = quantity
	r.items[id] = item
	return &item, nil
}

func (r *memoryRepo) Remove(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memoryRepo) ClearSession(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.SessionID == sessionID {
			delete(r.items, id)
		}
	}
	return nil
}
