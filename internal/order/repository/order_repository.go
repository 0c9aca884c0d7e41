package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/Joaomarcellodev/IzziOrder/internal/domain"
	"github.com/Joaomarcellodev/IzziOrder/internal/errors"
)

type orderEntry struct {
	mu    sync.Mutex
	order domain.Order
}

// InMemoryOrderRepository is the authoritative order store. Each order has
// its own lock so concurrent mutations of the same order serialize while
// unrelated orders proceed in parallel.
type InMemoryOrderRepository struct {
	mu      sync.RWMutex
	entries map[string]*orderEntry
	nextSeq int
}

func NewInMemoryOrderRepository(seed []domain.Order) *InMemoryOrderRepository {
	repo := &InMemoryOrderRepository{
		entries: make(map[string]*orderEntry, len(seed)),
		nextSeq: 1,
	}

	for _, order := range seed {
		repo.entries[order.ID] = &orderEntry{order: order}
		if seq, ok := parseOrderSeq(order.ID); ok && seq >= repo.nextSeq {
			repo.nextSeq = seq + 1
		}
	}
	return repo
}

// NextID allocates the next board id, e.g. "#1237".
func (r *InMemoryOrderRepository) NextID(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := fmt.Sprintf("#%d", r.nextSeq)
	r.nextSeq++
	return id, nil
}

// List returns all orders in creation order; that is the board's display
// order within each status column.
func (r *InMemoryOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]domain.Order, 0, len(r.entries))
	for _, entry := range r.entries {
		entry.mu.Lock()
		orders = append(orders, entry.order)
		entry.mu.Unlock()
	}

	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.Before(orders[j].CreatedAt)
		}
		return orders[i].ID < orders[j].ID
	})
	return orders, nil
}

func (r *InMemoryOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	entry, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}

	entry.mu.Lock()
	order := entry.order
	entry.mu.Unlock()
	return &order, nil
}

func (r *InMemoryOrderRepository) Insert(ctx context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[order.ID]; exists {
		return errors.NewInternalError(fmt.Sprintf("order %s already exists", order.ID), nil)
	}

	r.entries[order.ID] = &orderEntry{order: order}
	return nil
}

// Mutate runs fn under the order's lock. The order is updated only when fn
// returns nil; the updated copy is returned.
func (r *InMemoryOrderRepository) Mutate(ctx context.Context, id string, fn func(*domain.Order) error) (*domain.Order, error) {
	r.mu.RLock()
	entry, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	updated := entry.order
	if err := fn(&updated); err != nil {
		return nil, err
	}

	entry.order = updated
	return &updated, nil
}

func parseOrderSeq(id string) (int, bool) {
	seq, err := strconv.Atoi(strings.TrimPrefix(id, "#"))
	if err != nil {
		return 0, false
	}
	return seq, true
}
