package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Joaomarcellodev/IzziOrder/internal/clock"
	"github.com/Joaomarcellodev/IzziOrder/internal/domain"
	"github.com/Joaomarcellodev/IzziOrder/internal/dto"
	apperrors "github.com/Joaomarcellodev/IzziOrder/internal/errors"
	"github.com/Joaomarcellodev/IzziOrder/internal/notification"
)

// Mock implementations

type mockOrderRepository struct {
	NextIDFunc func(ctx context.Context) (string, error)
	ListFunc   func(ctx context.Context) ([]domain.Order, error)
	InsertFunc func(ctx context.Context, order domain.Order) error
}

func (m *mockOrderRepository) NextID(ctx context.Context) (string, error) {
	return m.NextIDFunc(ctx)
}

func (m *mockOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	return m.ListFunc(ctx)
}

func (m *mockOrderRepository) Insert(ctx context.Context, order domain.Order) error {
	return m.InsertFunc(ctx, order)
}

type mockMenuCatalog struct {
	FindByIDFunc func(ctx context.Context, id string) (*domain.MenuItem, error)
}

func (m *mockMenuCatalog) FindByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	return m.FindByIDFunc(ctx, id)
}

type recordingSink struct {
	events []notification.Event
}

func (s *recordingSink) Notify(_ context.Context, event notification.Event) {
	s.events = append(s.events, event)
}

var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestBoardUseCase(repo OrderRepository, catalog MenuCatalog, sink notification.Sink) *BoardUseCase {
	return NewBoardUseCase(repo, catalog, clock.Fixed(testNow), sink, zap.NewNop())
}

func catalogWith(items ...domain.MenuItem) *mockMenuCatalog {
	return &mockMenuCatalog{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.MenuItem, error) {
			for _, item := range items {
				if item.ID == id {
					found := item
					return &found, nil
				}
			}
			return nil, apperrors.NewNotFoundError("menu item not found")
		},
	}
}

func validCreateRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		CustomerName: "Maria Santos",
		Source:       "ifood",
		Type:         "delivery",
		Items: []dto.CreateOrderItem{
			{MenuItemID: "1", Quantity: 2},
			{MenuItemID: "5", Quantity: 1, Note: "sem gelo"},
		},
	}
}

// Tests

func TestBoard_GroupsOrdersByStatusInColumnOrder(t *testing.T) {
	ctx := context.Background()

	repo := &mockOrderRepository{
		ListFunc: func(ctx context.Context) ([]domain.Order, error) {
			return []domain.Order{
				{ID: "#1", Status: domain.OrderStatusReady, CreatedAt: testNow.Add(-30 * time.Minute)},
				{ID: "#2", Status: domain.OrderStatusNew, CreatedAt: testNow.Add(-5 * time.Minute)},
				{ID: "#3", Status: domain.OrderStatusNew, CreatedAt: testNow.Add(-2 * time.Minute)},
			}, nil
		},
	}

	uc := newTestBoardUseCase(repo, catalogWith(), &recordingSink{})

	resp, err := uc.Board(ctx)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(resp.Columns) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(resp.Columns))
	}

	wantStatuses := []string{"new", "confirmed", "preparing", "ready"}
	for i, want := range wantStatuses {
		if resp.Columns[i].Status != want {
			t.Errorf("expected column %d to be %q, got %q", i, want, resp.Columns[i].Status)
		}
	}

	if len(resp.Columns[0].Orders) != 2 {
		t.Errorf("expected 2 new orders, got %d", len(resp.Columns[0].Orders))
	}

	if len(resp.Columns[1].Orders) != 0 {
		t.Errorf("expected empty confirmed column, got %d orders", len(resp.Columns[1].Orders))
	}

	if len(resp.Columns[3].Orders) != 1 {
		t.Errorf("expected 1 ready order, got %d", len(resp.Columns[3].Orders))
	}
}

func TestCreate_BuildsLinesAndDerivesTotal(t *testing.T) {
	ctx := context.Background()

	var inserted domain.Order
	repo := &mockOrderRepository{
		NextIDFunc: func(ctx context.Context) (string, error) { return "#1237", nil },
		InsertFunc: func(ctx context.Context, order domain.Order) error {
			inserted = order
			return nil
		},
	}

	catalog := catalogWith(
		domain.MenuItem{ID: "1", Name: "izziBurger Duplo", Price: decimal.RequireFromString("42.50"), Available: true},
		domain.MenuItem{ID: "5", Name: "Coca-Cola", Price: decimal.RequireFromString("8.00"), Available: true},
	)

	sink := &recordingSink{}
	uc := newTestBoardUseCase(repo, catalog, sink)

	result, err := uc.Create(ctx, validCreateRequest())

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if inserted.ID != "#1237" {
		t.Errorf("expected inserted order ID #1237, got %s", inserted.ID)
	}

	if inserted.Status != domain.OrderStatusNew {
		t.Errorf("expected status new, got %s", inserted.Status)
	}

	if len(inserted.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(inserted.Lines))
	}

	if inserted.Lines[0].Quantity != 2 {
		t.Errorf("expected first line quantity 2, got %d", inserted.Lines[0].Quantity)
	}

	if inserted.Lines[1].Note != "sem gelo" {
		t.Errorf("expected note on second line, got %q", inserted.Lines[1].Note)
	}

	// 2 * 42.50 + 8.00
	if result.Total != "93.00" {
		t.Errorf("expected total 93.00, got %s", result.Total)
	}

	if len(sink.events) != 1 || sink.events[0].Type != notification.EventOrderCreated {
		t.Errorf("expected one order.created event, got %v", sink.events)
	}
}

func TestCreate_ValidationFailureSkipsInsert(t *testing.T) {
	ctx := context.Background()

	inserts := 0
	repo := &mockOrderRepository{
		InsertFunc: func(ctx context.Context, order domain.Order) error {
			inserts++
			return nil
		},
	}

	uc := newTestBoardUseCase(repo, catalogWith(), &recordingSink{})

	req := validCreateRequest()
	req.CustomerName = ""
	req.Source = "phone"

	_, err := uc.Create(ctx, req)

	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	ve, ok := apperrors.IsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	if len(ve.Details) != 2 {
		t.Errorf("expected 2 validation details, got %d", len(ve.Details))
	}

	if inserts != 0 {
		t.Errorf("expected no insert, got %d", inserts)
	}
}

func TestCreate_TableOrderRequiresTableNumber(t *testing.T) {
	ctx := context.Background()

	uc := newTestBoardUseCase(&mockOrderRepository{}, catalogWith(), &recordingSink{})

	req := validCreateRequest()
	req.Source = "table"
	req.Type = "table"
	req.TableNumber = 0

	_, err := uc.Create(ctx, req)

	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestCreate_UnavailableItemRejected(t *testing.T) {
	ctx := context.Background()

	catalog := catalogWith(
		domain.MenuItem{ID: "3", Name: "Salada Caesar", Price: decimal.RequireFromString("28.00"), Available: false},
	)

	sink := &recordingSink{}
	uc := newTestBoardUseCase(&mockOrderRepository{}, catalog, sink)

	req := validCreateRequest()
	req.Items = []dto.CreateOrderItem{{MenuItemID: "3", Quantity: 1}}

	_, err := uc.Create(ctx, req)

	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %v", err)
	}

	if len(sink.events) != 0 {
		t.Errorf("expected no events, got %d", len(sink.events))
	}
}

func TestCreate_UnknownItemRejected(t *testing.T) {
	ctx := context.Background()

	uc := newTestBoardUseCase(&mockOrderRepository{}, catalogWith(), &recordingSink{})

	req := validCreateRequest()
	req.Items = []dto.CreateOrderItem{{MenuItemID: "99", Quantity: 1}}

	_, err := uc.Create(ctx, req)

	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}
