package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Joaomarcellodev/IzziOrder/internal/clock"
	"github.com/Joaomarcellodev/IzziOrder/internal/domain"
)

type mockOrderLister struct {
	ListFunc func(ctx context.Context) ([]domain.Order, error)
}

func (m *mockOrderLister) List(ctx context.Context) ([]domain.Order, error) {
	return m.ListFunc(ctx)
}

type mockTableLister struct {
	ListFunc func(ctx context.Context) ([]domain.Table, error)
}

func (m *mockTableLister) List(ctx context.Context) ([]domain.Table, error) {
	return m.ListFunc(ctx)
}

type mockPaymentLister struct {
	ListFunc func(ctx context.Context) ([]domain.Payment, error)
}

func (m *mockPaymentLister) List(ctx context.Context) ([]domain.Payment, error) {
	return m.ListFunc(ctx)
}

var testNow = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestSummaryService(orders []domain.Order, tables []domain.Table, payments []domain.Payment) *SummaryService {
	return NewSummaryService(
		&mockOrderLister{ListFunc: func(ctx context.Context) ([]domain.Order, error) { return orders, nil }},
		&mockTableLister{ListFunc: func(ctx context.Context) ([]domain.Table, error) { return tables, nil }},
		&mockPaymentLister{ListFunc: func(ctx context.Context) ([]domain.Payment, error) { return payments, nil }},
		clock.Fixed(testNow),
	)
}

func TestSummary_EmptyState(t *testing.T) {
	ctx := context.Background()

	svc := newTestSummaryService(nil, nil, nil)

	summary, err := svc.Summary(ctx)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if summary.Revenue != "0.00" {
		t.Errorf("expected revenue 0.00, got %s", summary.Revenue)
	}

	if summary.PaymentCount != 0 || summary.TotalTables != 0 {
		t.Errorf("expected empty counters, got %+v", summary)
	}

	if len(summary.TopItems) != 0 {
		t.Errorf("expected no top items, got %d", len(summary.TopItems))
	}
}

func TestSummary_RevenueFromPayments(t *testing.T) {
	ctx := context.Background()

	payments := []domain.Payment{
		{TableID: 2, Total: price("123.00"), PaidAt: testNow},
		{TableID: 4, Total: price("56.00"), PaidAt: testNow},
	}

	svc := newTestSummaryService(nil, nil, payments)

	summary, err := svc.Summary(ctx)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if summary.Revenue != "179.00" {
		t.Errorf("expected revenue 179.00, got %s", summary.Revenue)
	}

	if summary.PaymentCount != 2 {
		t.Errorf("expected 2 payments, got %d", summary.PaymentCount)
	}
}

func TestSummary_ReadyOrderRevenueCounted(t *testing.T) {
	ctx := context.Background()

	orders := []domain.Order{
		{
			ID:     "#1",
			Status: domain.OrderStatusReady,
			Lines: domain.LineList{
				{MenuItemID: "2", Name: "Pizza Margherita", UnitPrice: price("38.00"), Quantity: 1},
			},
			CreatedAt: testNow.Add(-15 * time.Minute),
		},
		{
			ID:     "#2",
			Status: domain.OrderStatusNew,
			Lines: domain.LineList{
				{MenuItemID: "5", Name: "Coca-Cola", UnitPrice: price("8.00"), Quantity: 1},
			},
			CreatedAt: testNow.Add(-2 * time.Minute),
		},
	}

	svc := newTestSummaryService(orders, nil, nil)

	summary, err := svc.Summary(ctx)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// The ready order counts as realized revenue; the new one does not yet.
	if summary.Revenue != "38.00" {
		t.Errorf("expected revenue 38.00, got %s", summary.Revenue)
	}

	if len(summary.TopItems) != 1 || summary.TopItems[0].Name != "Pizza Margherita" {
		t.Errorf("expected only the ready order's item in sales, got %v", summary.TopItems)
	}
}

func TestSummary_OpenTabsAndOrdersExcludedFromSales(t *testing.T) {
	ctx := context.Background()

	orders := []domain.Order{
		{
			ID:     "#1",
			Status: domain.OrderStatusPreparing,
			Lines: domain.LineList{
				{MenuItemID: "1", Name: "izziBurger Duplo", UnitPrice: price("42.50"), Quantity: 2},
			},
			CreatedAt: testNow.Add(-10 * time.Minute),
		},
	}
	tables := []domain.Table{
		{
			ID:     2,
			Status: domain.TableStatusOccupied,
			Lines: domain.LineList{
				{MenuItemID: "4", Name: "Batata Frita", UnitPrice: price("15.00"), Quantity: 1},
			},
		},
	}

	svc := newTestSummaryService(orders, tables, nil)

	summary, err := svc.Summary(ctx)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if summary.Revenue != "0.00" {
		t.Errorf("expected no realized revenue, got %s", summary.Revenue)
	}

	if len(summary.TopItems) != 0 {
		t.Errorf("expected no sales entries, got %v", summary.TopItems)
	}

	if summary.OccupiedTables != 1 {
		t.Errorf("expected the open tab in occupancy, got %d", summary.OccupiedTables)
	}
}

func TestSummary_OrderDistributions(t *testing.T) {
	ctx := context.Background()

	orders := []domain.Order{
		{ID: "#1", Source: domain.SourceIfood, Status: domain.OrderStatusNew, CreatedAt: testNow.Add(-10 * time.Minute)},
		{ID: "#2", Source: domain.SourceIfood, Status: domain.OrderStatusReady, CreatedAt: testNow.Add(-20 * time.Minute)},
		{ID: "#3", Source: domain.SourceTable, Status: domain.OrderStatusNew, CreatedAt: testNow.Add(-6 * time.Minute)},
	}

	svc := newTestSummaryService(orders, nil, nil)

	summary, err := svc.Summary(ctx)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if summary.OrdersByStatus["new"] != 2 {
		t.Errorf("expected 2 new orders, got %d", summary.OrdersByStatus["new"])
	}

	if summary.OrdersBySource["ifood"] != 2 || summary.OrdersBySource["table"] != 1 {
		t.Errorf("unexpected source distribution: %v", summary.OrdersBySource)
	}

	// (10 + 20 + 6) / 3
	if summary.AverageWaitMinutes != 12 {
		t.Errorf("expected average wait 12, got %d", summary.AverageWaitMinutes)
	}
}

func TestSummary_TableOccupancy(t *testing.T) {
	ctx := context.Background()

	tables := []domain.Table{
		{ID: 1, Status: domain.TableStatusFree},
		{ID: 2, Status: domain.TableStatusOccupied},
		{ID: 3, Status: domain.TableStatusClosing},
		{ID: 4, Status: domain.TableStatusFree},
	}

	svc := newTestSummaryService(nil, tables, nil)

	summary, err := svc.Summary(ctx)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if summary.OccupiedTables != 2 {
		t.Errorf("expected 2 occupied tables, got %d", summary.OccupiedTables)
	}

	if summary.TotalTables != 4 {
		t.Errorf("expected 4 tables, got %d", summary.TotalTables)
	}
}

func TestSummary_TopItemsRankedByQuantity(t *testing.T) {
	ctx := context.Background()

	burger := domain.Line{MenuItemID: "1", Name: "izziBurger Duplo", UnitPrice: price("42.50"), Quantity: 2}
	pizza := domain.Line{MenuItemID: "2", Name: "Pizza Margherita", UnitPrice: price("38.00"), Quantity: 1}
	fries := domain.Line{MenuItemID: "4", Name: "Batata Frita", UnitPrice: price("15.00"), Quantity: 3}

	payments := []domain.Payment{
		{TableID: 2, Total: price("123.00"), Lines: domain.LineList{burger, pizza}, PaidAt: testNow},
	}
	orders := []domain.Order{
		{ID: "#1", Status: domain.OrderStatusReady, Lines: domain.LineList{fries, burger}, CreatedAt: testNow},
	}

	svc := newTestSummaryService(orders, nil, payments)

	summary, err := svc.Summary(ctx)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(summary.TopItems) != 3 {
		t.Fatalf("expected 3 top items, got %d", len(summary.TopItems))
	}

	// Burger sold 4 across the payment and the ready order, fries 3, pizza 1.
	if summary.TopItems[0].Name != "izziBurger Duplo" || summary.TopItems[0].Quantity != 4 {
		t.Errorf("unexpected first item: %+v", summary.TopItems[0])
	}

	if summary.TopItems[0].Revenue != "170.00" {
		t.Errorf("expected burger revenue 170.00, got %s", summary.TopItems[0].Revenue)
	}

	if summary.TopItems[1].Name != "Batata Frita" {
		t.Errorf("unexpected second item: %+v", summary.TopItems[1])
	}

	if summary.TopItems[2].Name != "Pizza Margherita" {
		t.Errorf("unexpected third item: %+v", summary.TopItems[2])
	}
}

func TestSummary_TopItemsCappedAtFive(t *testing.T) {
	ctx := context.Background()

	var lines domain.LineList
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, name := range names {
		lines = append(lines, domain.Line{
			MenuItemID: name,
			Name:       name,
			UnitPrice:  price("10.00"),
			Quantity:   len(names) - i,
		})
	}

	orders := []domain.Order{{ID: "#1", Status: domain.OrderStatusReady, Lines: lines, CreatedAt: testNow}}

	svc := newTestSummaryService(orders, nil, nil)

	summary, err := svc.Summary(ctx)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(summary.TopItems) != 5 {
		t.Errorf("expected top items capped at 5, got %d", len(summary.TopItems))
	}

	if summary.TopItems[0].Name != "A" {
		t.Errorf("expected A first, got %s", summary.TopItems[0].Name)
	}
}
