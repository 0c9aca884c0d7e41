package menu

import (
	"context"

	"github.com/Joaomarcellodev/IzziOrder/internal/domain"
)

type UseCase interface {
	List(ctx context.Context, category string) (*ListResponse, error)
	Create(ctx context.Context, req SaveItemRequest) (*MenuItemDTO, error)
	Update(ctx context.Context, id string, req SaveItemRequest) (*MenuItemDTO, error)
	ToggleAvailability(ctx context.Context, id string) (*MenuItemDTO, error)
}

type Service interface {
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
	ListByCategory(ctx context.Context, category domain.MenuCategory) ([]domain.MenuItem, error)
	Create(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
	Update(ctx context.Context, id string, apply func(*domain.MenuItem)) (*domain.MenuItem, error)
	Toggle(ctx context.Context, id string) (*domain.MenuItem, error)
}

type Repository interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
	NextID(ctx context.Context) (string, error)
	Insert(ctx context.Context, item domain.MenuItem) error
	Mutate(ctx context.Context, id string, fn func(*domain.MenuItem) error) (*domain.MenuItem, error)
}
