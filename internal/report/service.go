package report

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Joaomarcellodev/IzziOrder/internal/clock"
	"github.com/Joaomarcellodev/IzziOrder/internal/domain"
)

type OrderLister interface {
	List(ctx context.Context) ([]domain.Order, error)
}

type TableLister interface {
	List(ctx context.Context) ([]domain.Table, error)
}

type PaymentLister interface {
	List(ctx context.Context) ([]domain.Payment, error)
}

type Summary struct {
	Revenue            string         `json:"revenue"`
	PaymentCount       int            `json:"paymentCount"`
	OrdersByStatus     map[string]int `json:"ordersByStatus"`
	OrdersBySource     map[string]int `json:"ordersBySource"`
	AverageWaitMinutes int            `json:"averageWaitMinutes"`
	OccupiedTables     int            `json:"occupiedTables"`
	TotalTables        int            `json:"totalTables"`
	TopItems           []TopItem      `json:"topItems"`
}

type TopItem struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Revenue    string `json:"revenue"`
}

const topItemLimit = 5

// SummaryService derives the analytics view from live state: the payment
// ledger, the order board and the floor plan. Nothing here is stored; every
// figure is recomputed per request.
//
// Revenue and item sales cover realized business only: paid tabs and orders
// that reached ready. Open tabs and in-flight orders count toward occupancy,
// distribution and wait figures, not sales.
type SummaryService struct {
	orders   OrderLister
	tables   TableLister
	payments PaymentLister
	clock    clock.Clock
}

func NewSummaryService(orders OrderLister, tables TableLister, payments PaymentLister, clk clock.Clock) *SummaryService {
	return &SummaryService{
		orders:   orders,
		tables:   tables,
		payments: payments,
		clock:    clk,
	}
}

func (s *SummaryService) Summary(ctx context.Context) (*Summary, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	tables, err := s.tables.List(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		OrdersByStatus: make(map[string]int),
		OrdersBySource: make(map[string]int),
		TotalTables:    len(tables),
		TopItems:       []TopItem{},
	}

	revenue := decimal.Zero
	sales := make(map[string]*TopItem)
	addSales := func(lines domain.LineList) {
		for _, line := range lines {
			entry, ok := sales[line.MenuItemID]
			if !ok {
				entry = &TopItem{MenuItemID: line.MenuItemID, Name: line.Name}
				sales[line.MenuItemID] = entry
			}
			entry.Quantity += line.Quantity
		}
	}
	itemRevenue := make(map[string]decimal.Decimal)
	addRevenue := func(lines domain.LineList) {
		for _, line := range lines {
			itemRevenue[line.MenuItemID] = itemRevenue[line.MenuItemID].Add(line.Subtotal())
		}
	}

	for _, payment := range payments {
		revenue = revenue.Add(payment.Total)
		addSales(payment.Lines)
		addRevenue(payment.Lines)
	}
	summary.PaymentCount = len(payments)

	now := s.clock.Now()
	totalWait := 0
	for _, order := range orders {
		summary.OrdersByStatus[string(order.Status)]++
		summary.OrdersBySource[string(order.Source)]++
		totalWait += order.WaitingMinutes(now)

		if order.Status == domain.OrderStatusReady {
			revenue = revenue.Add(order.Total())
			addSales(order.Lines)
			addRevenue(order.Lines)
		}
	}
	if len(orders) > 0 {
		summary.AverageWaitMinutes = totalWait / len(orders)
	}
	summary.Revenue = revenue.StringFixed(2)

	for _, table := range tables {
		if table.Status != domain.TableStatusFree {
			summary.OccupiedTables++
		}
	}

	ranked := make([]TopItem, 0, len(sales))
	for id, entry := range sales {
		entry.Revenue = itemRevenue[id].StringFixed(2)
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > topItemLimit {
		ranked = ranked[:topItemLimit]
	}
	summary.TopItems = ranked

	return summary, nil
}
