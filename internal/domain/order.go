package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Joaomarcellodev/IzziOrder/internal/errors"
)

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady:
		return true
	}
	return false
}

type OrderSource string

const (
	SourceIfood    OrderSource = "ifood"
	SourceDelivery OrderSource = "delivery"
	SourceTable    OrderSource = "table"
)

type FulfillmentType string

const (
	FulfillmentDelivery FulfillmentType = "delivery"
	FulfillmentTable    FulfillmentType = "table"
)

// orderFlow is the forward-only status sequence. Regression transitions are
// not supported.
var orderFlow = map[OrderStatus]OrderStatus{
	OrderStatusNew:       OrderStatusConfirmed,
	OrderStatusConfirmed: OrderStatusPreparing,
	OrderStatusPreparing: OrderStatusReady,
}

func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	return orderFlow[s] == next
}

type Order struct {
	ID           string
	CustomerName string
	Source       OrderSource
	Lines        LineList
	Fulfillment  FulfillmentType
	TableNumber  int
	Status       OrderStatus
	CreatedAt    time.Time
	// PreparingAt is set when the kitchen picks the order up; it freezes the
	// waiting-time clock. Zero while status is new or confirmed.
	PreparingAt time.Time
}

// Total is always derived from the lines, never stored independently.
func (o Order) Total() decimal.Decimal {
	return o.Lines.Total()
}

// Advance moves the order one step forward in the status flow. Any other
// attempted transition is rejected.
func (o *Order) Advance(next OrderStatus, at time.Time) error {
	if !o.Status.CanAdvanceTo(next) {
		return errors.NewInvalidTransitionError("order", string(o.Status), string(next))
	}

	o.Status = next
	if next == OrderStatusPreparing {
		o.PreparingAt = at
	}
	return nil
}

// WaitingMinutes reports how long the customer has been waiting. The counter
// runs while the order is new or confirmed and freezes once the kitchen
// starts preparing.
func (o Order) WaitingMinutes(now time.Time) int {
	end := now
	if !o.PreparingAt.IsZero() {
		end = o.PreparingAt
	}

	minutes := int(end.Sub(o.CreatedAt).Minutes())
	if minutes < 0 {
		return 0
	}
	return minutes
}
