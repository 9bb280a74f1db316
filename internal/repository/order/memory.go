package order

import (
	"context"
	"sort"
	"sync"
	"time"

	"inkpaper-express/internal/domain"
)

type memoryRepo struct {
	mu     sync.Mutex
	items  map[int]domain.Order
	nextID int
	now    func() time.Time
}

func NewMemory() Repository {
	return &memoryRepo{items: make(map[int]domain.Order), nextID: 1, now: time.Now}
}

// NewMemoryWithClock lets tests pin order creation times.
func NewMemoryWithClock(now func() time.Time) Repository {
	return &memoryRepo{items: make(map[int]domain.Order), nextID: 1, now: now}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	result := make([]domain.Order, 0, len(ids))
	for _, id := range ids {
		result = append(result, r.items[id])
	}
	return result, nil
}

func (r *memoryRepo) Get(_ context.Context, id int) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}

func (r *memoryRepo) Create(_ context.Context, in domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	in.ID = r.nextID
	r.nextID++
	// Client-supplied timestamps are ignored; creation time is stamped here.
	in.CreatedAt = r.now().UTC()
	if in.Status == "" {
		in.Status = domain.StatusProcessing
	}
	r.items[in.ID] = in
	return &in, nil
}

func (r *memoryRepo) UpdateStatus(_ context.Context, id int, status string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	o.Status = status
	r.items[id] = o
	return &o, nil
}
