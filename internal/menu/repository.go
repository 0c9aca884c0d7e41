package menu

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/Joaomarcellodev/IzziOrder/internal/domain"
	"github.com/Joaomarcellodev/IzziOrder/internal/errors"
)

// InMemoryRepository is the authoritative menu catalog. Items keep their
// insertion order, which is the display order of the editor.
type InMemoryRepository struct {
	mu     sync.RWMutex
	items  []domain.MenuItem
	nextID int
}

func NewInMemoryRepository(seed []domain.MenuItem) *InMemoryRepository {
	repo := &InMemoryRepository{
		items:  append([]domain.MenuItem(nil), seed...),
		nextID: 1,
	}

	for _, item := range seed {
		if id, err := strconv.Atoi(item.ID); err == nil && id >= repo.nextID {
			repo.nextID = id + 1
		}
	}
	return repo
}

func (r *InMemoryRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.MenuItem(nil), r.items...), nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("menu item %s not found", id))
}

func (r *InMemoryRepository) NextID(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := strconv.Itoa(r.nextID)
	r.nextID++
	return id, nil
}

func (r *InMemoryRepository) Insert(ctx context.Context, item domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.ID == item.ID {
			return errors.NewInternalError(fmt.Sprintf("menu item %s already exists", item.ID), nil)
		}
	}

	r.items = append(r.items, item)
	return nil
}

func (r *InMemoryRepository) Mutate(ctx context.Context, id string, fn func(*domain.MenuItem) error) (*domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}

		updated := r.items[i]
		if err := fn(&updated); err != nil {
			return nil, err
		}

		r.items[i] = updated
		return &updated, nil
	}
	return nil, errors.NewNotFoundError(fmt.Sprintf("menu item %s not found", id))
}
