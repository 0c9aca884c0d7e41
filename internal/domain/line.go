package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Joaomarcellodev/IzziOrder/internal/errors"
)

// Line is one entry of an order or tab. UnitPrice is captured when the line
// is added and is not re-read from the menu afterwards, so later menu price
// edits never change an open order.
type Line struct {
	ID         string
	MenuItemID string
	Name       string
	UnitPrice  decimal.Decimal
	Quantity   int
	Note       string
	Sent       bool
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type LineList []Line

// Add merges the menu item into an existing unsent line for the same item,
// incrementing its quantity by one; otherwise it appends a new line with
// quantity 1 priced at the item's current menu price. Lines already sent to
// the kitchen are never merged into. lineID is used only when a new line is
// created.
func (ll LineList) Add(item MenuItem, lineID string) (LineList, error) {
	if !item.Available {
		return ll, errors.NewValidationError(
			fmt.Sprintf("menu item %q is unavailable", item.Name),
			errors.ValidationDetail{Field: "menuItemId", Message: "item is currently unavailable"},
		)
	}

	for i, line := range ll {
		if line.MenuItemID == item.ID && !line.Sent {
			out := append(LineList(nil), ll...)
			out[i].Quantity++
			return out, nil
		}
	}

	out := append(LineList(nil), ll...)
	out = append(out, Line{
		ID:         lineID,
		MenuItemID: item.ID,
		Name:       item.Name,
		UnitPrice:  item.Price,
		Quantity:   1,
	})
	return out, nil
}

// Adjust adds delta to the line's quantity, clamping the floor at zero. A
// line whose quantity reaches zero is removed. Lines already sent to the
// kitchen are immutable.
func (ll LineList) Adjust(lineID string, delta int) (LineList, error) {
	idx := ll.indexOf(lineID)
	if idx < 0 {
		return ll, errors.NewNotFoundError(fmt.Sprintf("line %s not found", lineID))
	}
	if ll[idx].Sent {
		return ll, errors.NewValidationError(
			"line already sent to kitchen",
			errors.ValidationDetail{Field: "lineId", Message: "sent lines cannot be changed"},
		)
	}

	out := append(LineList(nil), ll...)
	quantity := out[idx].Quantity + delta
	if quantity <= 0 {
		return append(out[:idx], out[idx+1:]...), nil
	}
	out[idx].Quantity = quantity
	return out, nil
}

// Remove deletes the line unconditionally, unless it was already sent.
func (ll LineList) Remove(lineID string) (LineList, error) {
	idx := ll.indexOf(lineID)
	if idx < 0 {
		return ll, errors.NewNotFoundError(fmt.Sprintf("line %s not found", lineID))
	}
	if ll[idx].Sent {
		return ll, errors.NewValidationError(
			"line already sent to kitchen",
			errors.ValidationDetail{Field: "lineId", Message: "sent lines cannot be removed"},
		)
	}

	out := append(LineList(nil), ll...)
	return append(out[:idx], out[idx+1:]...), nil
}

// Total sums unitPrice × quantity over all lines. Decimal arithmetic keeps
// repeated add/remove cycles exact for currency.
func (ll LineList) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range ll {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Unsent returns the lines not yet fired to the kitchen.
func (ll LineList) Unsent() LineList {
	var out LineList
	for _, line := range ll {
		if !line.Sent {
			out = append(out, line)
		}
	}
	return out
}

// MarkSent flags every line as fired and returns the updated list.
func (ll LineList) MarkSent() LineList {
	out := append(LineList(nil), ll...)
	for i := range out {
		out[i].Sent = true
	}
	return out
}

func (ll LineList) indexOf(lineID string) int {
	for i, line := range ll {
		if line.ID == lineID {
			return i
		}
	}
	return -1
}
