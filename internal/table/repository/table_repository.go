package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Joaomarcellodev/IzziOrder/internal/domain"
	"github.com/Joaomarcellodev/IzziOrder/internal/errors"
)

type tableEntry struct {
	mu    sync.Mutex
	table domain.Table
}

// InMemoryTableRepository holds the fixed floor plan. The set of tables
// never changes after construction; each table has its own lock so an
// add-item and a close-and-pay on the same table serialize while other
// tables stay independent.
type InMemoryTableRepository struct {
	entries map[int]*tableEntry
	ids     []int
}

func NewInMemoryTableRepository(seed []domain.Table) *InMemoryTableRepository {
	repo := &InMemoryTableRepository{
		entries: make(map[int]*tableEntry, len(seed)),
		ids:     make([]int, 0, len(seed)),
	}

	for _, table := range seed {
		repo.entries[table.ID] = &tableEntry{table: table}
		repo.ids = append(repo.ids, table.ID)
	}
	sort.Ints(repo.ids)
	return repo
}

func (r *InMemoryTableRepository) List(ctx context.Context) ([]domain.Table, error) {
	tables := make([]domain.Table, 0, len(r.ids))
	for _, id := range r.ids {
		entry := r.entries[id]
		entry.mu.Lock()
		tables = append(tables, entry.table)
		entry.mu.Unlock()
	}
	return tables, nil
}

func (r *InMemoryTableRepository) FindByID(ctx context.Context, id int) (*domain.Table, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("table %d not found", id))
	}

	entry.mu.Lock()
	table := entry.table
	entry.mu.Unlock()
	return &table, nil
}

// Mutate runs fn under the table's lock. The table is updated only when fn
// returns nil; the updated copy is returned.
func (r *InMemoryTableRepository) Mutate(ctx context.Context, id int, fn func(*domain.Table) error) (*domain.Table, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("table %d not found", id))
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	updated := entry.table
	if err := fn(&updated); err != nil {
		return nil, err
	}

	entry.table = updated
	return &updated, nil
}
