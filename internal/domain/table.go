package domain

import (
	"github.com/shopspring/decimal"

	"github.com/Joaomarcellodev/IzziOrder/internal/errors"
)

type TableStatus string

const (
	TableStatusFree     TableStatus = "free"
	TableStatusOccupied TableStatus = "occupied"
	TableStatusClosing  TableStatus = "closing"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableStatusFree, TableStatusOccupied, TableStatusClosing:
		return true
	}
	return false
}

// Table is one table of the fixed floor plan. PartySize, TabID and Lines are
// present if and only if the table is not free.
type Table struct {
	ID        int
	Status    TableStatus
	PartySize int
	TabID     string
	Lines     LineList
}

func (t Table) Total() decimal.Decimal {
	return t.Lines.Total()
}

// OpenTab seats a party at a free table, allocating the given tab identifier
// and an empty order.
func (t *Table) OpenTab(tabID string, partySize int) error {
	if t.Status != TableStatusFree {
		return errors.NewInvalidTransitionError("table", string(t.Status), string(TableStatusOccupied))
	}
	if partySize <= 0 {
		return errors.NewValidationError(
			"party size must be positive",
			errors.ValidationDetail{Field: "partySize", Message: "must be a positive integer"},
		)
	}

	t.Status = TableStatusOccupied
	t.PartySize = partySize
	t.TabID = tabID
	t.Lines = nil
	return nil
}

// RequestBill moves an occupied table into the awaiting-payment state.
func (t *Table) RequestBill() error {
	if t.Status != TableStatusOccupied {
		return errors.NewInvalidTransitionError("table", string(t.Status), string(TableStatusClosing))
	}

	t.Status = TableStatusClosing
	return nil
}

// CloseAndPay records payment and frees the table, clearing the tab.
func (t *Table) CloseAndPay() error {
	if t.Status != TableStatusOccupied && t.Status != TableStatusClosing {
		return errors.NewInvalidTransitionError("table", string(t.Status), string(TableStatusFree))
	}

	t.Status = TableStatusFree
	t.PartySize = 0
	t.TabID = ""
	t.Lines = nil
	return nil
}
