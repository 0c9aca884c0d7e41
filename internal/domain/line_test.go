package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/Joaomarcellodev/IzziOrder/internal/errors"
)

func burger() MenuItem {
	return MenuItem{
		ID:        "1",
		Name:      "izziBurger Duplo",
		Price:     decimal.RequireFromString("42.50"),
		Category:  CategoryBurgers,
		Available: true,
	}
}

func pizza() MenuItem {
	return MenuItem{
		ID:        "2",
		Name:      "Pizza Margherita",
		Price:     decimal.RequireFromString("38.00"),
		Category:  CategoryPizzas,
		Available: true,
	}
}

func TestLineList_Add_NewLine(t *testing.T) {
	lines, err := LineList(nil).Add(burger(), "l1")

	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, "l1", lines[0].ID)
	assert.Equal(t, "1", lines[0].MenuItemID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.True(t, lines[0].UnitPrice.Equal(decimal.RequireFromString("42.50")))
}

func TestLineList_Add_MergesSameItem(t *testing.T) {
	lines, err := LineList(nil).Add(pizza(), "l1")
	assert.NoError(t, err)

	lines, err = lines.Add(pizza(), "l2")
	assert.NoError(t, err)

	assert.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, lines.Total().Equal(decimal.RequireFromString("76.00")))
}

func TestLineList_Add_SentLineNotMerged(t *testing.T) {
	lines, _ := LineList(nil).Add(pizza(), "l1")
	lines = lines.MarkSent()

	lines, err := lines.Add(pizza(), "l2")
	assert.NoError(t, err)

	assert.Len(t, lines, 2)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.False(t, lines[1].Sent)
}

func TestLineList_Add_UnavailableItem(t *testing.T) {
	item := burger()
	item.Available = false

	lines, err := LineList(nil).Add(item, "l1")

	assert.Empty(t, lines)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestLineList_Add_PriceLocked(t *testing.T) {
	item := burger()
	lines, _ := LineList(nil).Add(item, "l1")

	// A later menu price change must not affect the captured line.
	item.Price = decimal.RequireFromString("99.00")

	assert.True(t, lines[0].UnitPrice.Equal(decimal.RequireFromString("42.50")))
}

func TestLineList_Adjust_Increment(t *testing.T) {
	lines, _ := LineList(nil).Add(burger(), "l1")

	lines, err := lines.Adjust("l1", 1)

	assert.NoError(t, err)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestLineList_Adjust_RemovesAtZero(t *testing.T) {
	lines, _ := LineList(nil).Add(burger(), "l1")

	lines, err := lines.Adjust("l1", -1)

	assert.NoError(t, err)
	assert.Empty(t, lines)
}

func TestLineList_Adjust_ClampsBelowZero(t *testing.T) {
	lines, _ := LineList(nil).Add(burger(), "l1")
	lines, _ = lines.Adjust("l1", 1)

	lines, err := lines.Adjust("l1", -10)

	assert.NoError(t, err)
	assert.Empty(t, lines)
}

func TestLineList_Adjust_NotFound(t *testing.T) {
	lines, err := LineList(nil).Adjust("missing", 1)

	assert.Empty(t, lines)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestLineList_Adjust_SentLineImmutable(t *testing.T) {
	lines, _ := LineList(nil).Add(burger(), "l1")
	lines = lines.MarkSent()

	_, err := lines.Adjust("l1", 1)

	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestLineList_Remove(t *testing.T) {
	lines, _ := LineList(nil).Add(burger(), "l1")
	lines, _ = lines.Add(pizza(), "l2")

	lines, err := lines.Remove("l1")

	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, "l2", lines[0].ID)
}

func TestLineList_Total_MixedLines(t *testing.T) {
	lines, _ := LineList(nil).Add(burger(), "l1")
	lines, _ = lines.Add(burger(), "l2")
	lines, _ = lines.Add(pizza(), "l3")

	// 2 × 42.50 + 1 × 38.00
	assert.True(t, lines.Total().Equal(decimal.RequireFromString("123.00")))
}

func TestLineList_Total_EmptyIsZero(t *testing.T) {
	assert.True(t, LineList(nil).Total().IsZero())
}

func TestLineList_RoundTrip_AddAllRemoveAll(t *testing.T) {
	items := []MenuItem{burger(), pizza()}

	var lines LineList
	var err error
	for i, item := range items {
		lines, err = lines.Add(item, item.ID+"-line")
		assert.NoError(t, err)
		assert.Len(t, lines, i+1)
	}

	for _, item := range items {
		lines, err = lines.Remove(item.ID + "-line")
		assert.NoError(t, err)
	}

	assert.Empty(t, lines)
	assert.True(t, lines.Total().IsZero())
}

func TestLineList_UnsentAndMarkSent(t *testing.T) {
	lines, _ := LineList(nil).Add(burger(), "l1")
	lines = lines.MarkSent()
	lines, _ = lines.Add(pizza(), "l2")

	unsent := lines.Unsent()
	assert.Len(t, unsent, 1)
	assert.Equal(t, "l2", unsent[0].ID)

	lines = lines.MarkSent()
	assert.Empty(t, lines.Unsent())
}

func TestLineList_Add_DoesNotMutateReceiver(t *testing.T) {
	original, _ := LineList(nil).Add(burger(), "l1")

	_, err := original.Add(burger(), "l2")
	assert.NoError(t, err)

	assert.Equal(t, 1, original[0].Quantity)
}
