package menu

import (
	"context"

	"github.com/Joaomarcellodev/IzziOrder/internal/clock"
	"github.com/Joaomarcellodev/IzziOrder/internal/domain"
)

type CatalogService struct {
	repo  Repository
	clock clock.Clock
}

func NewService(repo Repository, clk clock.Clock) *CatalogService {
	return &CatalogService{repo: repo, clock: clk}
}

// FindByID looks an item up for other modules that price lines off the
// catalog.
func (s *CatalogService) FindByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) ListByCategory(ctx context.Context, category domain.MenuCategory) ([]domain.MenuItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterByCategory(items, category), nil
}

func (s *CatalogService) Create(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	item.ID = id
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, apply func(*domain.MenuItem)) (*domain.MenuItem, error) {
	now := s.clock.Now()
	return s.repo.Mutate(ctx, id, func(item *domain.MenuItem) error {
		apply(item)
		item.UpdatedAt = now
		return nil
	})
}

func (s *CatalogService) Toggle(ctx context.Context, id string) (*domain.MenuItem, error) {
	now := s.clock.Now()
	return s.repo.Mutate(ctx, id, func(item *domain.MenuItem) error {
		item.Available = !item.Available
		item.UpdatedAt = now
		return nil
	})
}
