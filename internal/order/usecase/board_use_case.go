package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Joaomarcellodev/IzziOrder/internal/clock"
	"github.com/Joaomarcellodev/IzziOrder/internal/domain"
	"github.com/Joaomarcellodev/IzziOrder/internal/dto"
	apperrors "github.com/Joaomarcellodev/IzziOrder/internal/errors"
	"github.com/Joaomarcellodev/IzziOrder/internal/notification"
)

type OrderRepository interface {
	NextID(ctx context.Context) (string, error)
	List(ctx context.Context) ([]domain.Order, error)
	Insert(ctx context.Context, order domain.Order) error
}

type MenuCatalog interface {
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
}

// BoardUseCase serves the kanban board: listing orders grouped by status and
// ingesting new ones. The seed data normally plays the ingestion role; the
// create operation keeps the board drivable without the external channels.
type BoardUseCase struct {
	orderRepo OrderRepository
	catalog   MenuCatalog
	clock     clock.Clock
	sink      notification.Sink
	logger    *zap.Logger
}

func NewBoardUseCase(
	orderRepo OrderRepository,
	catalog MenuCatalog,
	clk clock.Clock,
	sink notification.Sink,
	logger *zap.Logger,
) *BoardUseCase {
	return &BoardUseCase{
		orderRepo: orderRepo,
		catalog:   catalog,
		clock:     clk,
		sink:      sink,
		logger:    logger,
	}
}

// boardColumns is the kanban column order.
var boardColumns = []domain.OrderStatus{
	domain.OrderStatusNew,
	domain.OrderStatusConfirmed,
	domain.OrderStatusPreparing,
	domain.OrderStatusReady,
}

func (uc *BoardUseCase) Board(ctx context.Context) (*dto.BoardResponse, error) {
	orders, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	resp := &dto.BoardResponse{Columns: make([]dto.BoardColumn, 0, len(boardColumns))}
	for _, status := range boardColumns {
		column := dto.BoardColumn{Status: string(status), Orders: []dto.OrderDTO{}}
		for _, order := range orders {
			if order.Status == status {
				column.Orders = append(column.Orders, NewOrderDTO(order, now))
			}
		}
		resp.Columns = append(resp.Columns, column)
	}
	return resp, nil
}

func (uc *BoardUseCase) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderDTO, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	var lines domain.LineList
	for _, reqItem := range req.Items {
		item, err := uc.catalog.FindByID(ctx, reqItem.MenuItemID)
		if err != nil {
			return nil, err
		}

		lineID := uuid.New().String()
		lines, err = lines.Add(*item, lineID)
		if err != nil {
			return nil, err
		}
		if reqItem.Quantity > 1 {
			if lines, err = lines.Adjust(lineID, reqItem.Quantity-1); err != nil {
				return nil, err
			}
		}
		lines[len(lines)-1].Note = reqItem.Note
	}

	id, err := uc.orderRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	order := domain.Order{
		ID:           id,
		CustomerName: req.CustomerName,
		Source:       domain.OrderSource(req.Source),
		Lines:        lines,
		Fulfillment:  domain.FulfillmentType(req.Type),
		TableNumber:  req.TableNumber,
		Status:       domain.OrderStatusNew,
		CreatedAt:    now,
	}

	if err := uc.orderRepo.Insert(ctx, order); err != nil {
		return nil, err
	}

	uc.logger.Info("order created",
		zap.String("orderId", order.ID),
		zap.String("source", string(order.Source)),
		zap.Int("lineCount", len(order.Lines)))

	result := NewOrderDTO(order, now)
	uc.sink.Notify(ctx, notification.Event{Type: notification.EventOrderCreated, Payload: result})
	return &result, nil
}

func validateCreateRequest(req dto.CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	if req.CustomerName == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerName",
			Message: "customerName is required",
		})
	}

	switch domain.OrderSource(req.Source) {
	case domain.SourceIfood, domain.SourceDelivery, domain.SourceTable:
	default:
		details = append(details, apperrors.ValidationDetail{
			Field:   "source",
			Message: "source must be one of ifood, delivery, table",
		})
	}

	switch domain.FulfillmentType(req.Type) {
	case domain.FulfillmentDelivery:
	case domain.FulfillmentTable:
		if req.TableNumber <= 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "tableNumber",
				Message: "tableNumber is required for table orders",
			})
		}
	default:
		details = append(details, apperrors.ValidationDetail{
			Field:   "type",
			Message: "type must be delivery or table",
		})
	}

	if len(req.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	seen := make(map[string]bool, len(req.Items))
	for idx, item := range req.Items {
		if item.MenuItemID == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d].menuItemId", idx),
				Message: "menuItemId is required",
			})
		}
		if seen[item.MenuItemID] {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d].menuItemId", idx),
				Message: "menuItemId must not be duplicated",
			})
		}
		seen[item.MenuItemID] = true

		if item.Quantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d].quantity", idx),
				Message: "quantity must be a positive integer",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

// NewOrderDTO maps an order for the board, deriving total and waiting time.
func NewOrderDTO(order domain.Order, now time.Time) dto.OrderDTO {
	return dto.OrderDTO{
		ID:             order.ID,
		CustomerName:   order.CustomerName,
		Source:         string(order.Source),
		Items:          dto.NewLineDTOs(order.Lines),
		Total:          order.Total().StringFixed(2),
		WaitingMinutes: order.WaitingMinutes(now),
		Type:           string(order.Fulfillment),
		TableNumber:    order.TableNumber,
		Status:         string(order.Status),
		CreatedAt:      order.CreatedAt,
	}
}
