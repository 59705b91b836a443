package orders

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-process Repository used by tests and local runs without
// a database. Per-id operations are serialized by the mutex.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	m      map[int64]Order
}

var _ Repository = (*MemoryRepo)(nil)

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{m: make(map[int64]Order)}
}

func (r *MemoryRepo) Create(_ context.Context, in CreateOrderInput) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	now := time.Now().UTC()
	o := Order{
		ID:            r.nextID,
		ProductID:     in.ProductID,
		ProductName:   in.ProductName,
		Quantity:      in.Quantity,
		TotalPrice:    in.TotalPrice,
		CustomerEmail: in.CustomerEmail,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	r.m[o.ID] = o
	return o, nil
}

func (r *MemoryRepo) FindByID(_ context.Context, id int64) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.m[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return o, nil
}

func (r *MemoryRepo) Save(_ context.Context, o Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[o.ID]; !ok {
		return Order{}, ErrNotFound
	}
	o.UpdatedAt = time.Now().UTC()
	r.m[o.ID] = o
	return o, nil
}

func (r *MemoryRepo) Destroy(_ context.Context, o Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[o.ID]; !ok {
		return ErrNotFound
	}
	delete(r.m, o.ID)
	return nil
}

func (r *MemoryRepo) FindAll(_ context.Context) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0, len(r.m))
	for _, o := range r.m {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
