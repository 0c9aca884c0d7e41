package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuCategory string

const (
	CategoryBurgers  MenuCategory = "Burgers"
	CategoryPizzas   MenuCategory = "Pizzas"
	CategorySalads   MenuCategory = "Salads"
	CategorySides    MenuCategory = "Sides"
	CategoryDrinks   MenuCategory = "Drinks"
	CategoryDesserts MenuCategory = "Desserts"

	// CategoryAll is a filter sentinel. It is never stored on an item.
	CategoryAll MenuCategory = "All"
)

func Categories() []MenuCategory {
	return []MenuCategory{
		CategoryBurgers,
		CategoryPizzas,
		CategorySalads,
		CategorySides,
		CategoryDrinks,
		CategoryDesserts,
	}
}

func (c MenuCategory) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    MenuCategory
	Image       string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FilterByCategory returns the subset of items in the given category,
// preserving input order. CategoryAll matches everything; an unknown
// category yields an empty result, never an error.
func FilterByCategory(items []MenuItem, category MenuCategory) []MenuItem {
	if category == CategoryAll {
		return items
	}

	filtered := make([]MenuItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
