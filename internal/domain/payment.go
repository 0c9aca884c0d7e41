package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the record left behind when a tab is closed and paid. The table
// itself is wiped on close, so this is the only trace of the sale.
type Payment struct {
	TableID int
	TabID   string
	Total   decimal.Decimal
	Lines   LineList
	PaidAt  time.Time
}
