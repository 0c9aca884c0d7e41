package menu

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Joaomarcellodev/IzziOrder/internal/domain"
	apperrors "github.com/Joaomarcellodev/IzziOrder/internal/errors"
)

func seedItems() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "1", Name: "izziBurger Duplo", Price: decimal.RequireFromString("42.50"), Category: domain.CategoryBurgers, Available: true},
		{ID: "2", Name: "Pizza Margherita", Price: decimal.RequireFromString("38.00"), Category: domain.CategoryPizzas, Available: true},
		{ID: "3", Name: "Salada Caesar", Price: decimal.RequireFromString("28.00"), Category: domain.CategorySalads, Available: false},
	}
}

func TestRepositoryList_PreservesInsertionOrder(t *testing.T) {
	repo := NewInMemoryRepository(seedItems())

	items, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "izziBurger Duplo", items[0].Name)
	assert.Equal(t, "Salada Caesar", items[2].Name)
}

func TestRepositoryNextID_ContinuesAfterSeed(t *testing.T) {
	repo := NewInMemoryRepository(seedItems())

	id, err := repo.NextID(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "4", id)
}

func TestRepositoryFindByID_NotFound(t *testing.T) {
	repo := NewInMemoryRepository(seedItems())

	_, err := repo.FindByID(context.Background(), "99")
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestRepositoryMutate_ErrorLeavesItemUntouched(t *testing.T) {
	repo := NewInMemoryRepository(seedItems())
	ctx := context.Background()

	_, err := repo.Mutate(ctx, "1", func(item *domain.MenuItem) error {
		item.Name = "changed"
		return apperrors.NewValidationError("rejected")
	})
	assert.Error(t, err)

	stored, err := repo.FindByID(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, "izziBurger Duplo", stored.Name)
}

func TestRepositoryInsert_DuplicateIDRejected(t *testing.T) {
	repo := NewInMemoryRepository(seedItems())

	err := repo.Insert(context.Background(), domain.MenuItem{ID: "1", Name: "other"})
	assert.Error(t, err)
}
