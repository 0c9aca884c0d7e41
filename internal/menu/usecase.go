package menu

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Joaomarcellodev/IzziOrder/internal/domain"
	apperrors "github.com/Joaomarcellodev/IzziOrder/internal/errors"
	"github.com/Joaomarcellodev/IzziOrder/internal/notification"
)

type catalogUseCase struct {
	service Service
	sink    notification.Sink
	logger  *zap.Logger
}

func NewUseCase(service Service, sink notification.Sink, logger *zap.Logger) UseCase {
	return &catalogUseCase{
		service: service,
		sink:    sink,
		logger:  logger,
	}
}

func (uc *catalogUseCase) List(ctx context.Context, category string) (*ListResponse, error) {
	filter := domain.MenuCategory(category)
	if category == "" {
		filter = domain.CategoryAll
	}

	items, err := uc.service.ListByCategory(ctx, filter)
	if err != nil {
		return nil, err
	}

	dtos := make([]MenuItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, newMenuItemDTO(item))
	}

	categories := make([]string, 0, len(domain.Categories()))
	for _, c := range domain.Categories() {
		categories = append(categories, string(c))
	}

	return &ListResponse{Items: dtos, Categories: categories}, nil
}

func (uc *catalogUseCase) Create(ctx context.Context, req SaveItemRequest) (*MenuItemDTO, error) {
	price, err := validateSaveRequest(req)
	if err != nil {
		return nil, err
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item, err := uc.service.Create(ctx, domain.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Category:    domain.MenuCategory(req.Category),
		Image:       req.Image,
		Available:   available,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("menu item created", zap.String("itemId", item.ID), zap.String("name", item.Name))

	result := newMenuItemDTO(*item)
	uc.sink.Notify(ctx, notification.Event{Type: notification.EventMenuUpdated, Payload: result})
	return &result, nil
}

func (uc *catalogUseCase) Update(ctx context.Context, id string, req SaveItemRequest) (*MenuItemDTO, error) {
	price, err := validateSaveRequest(req)
	if err != nil {
		return nil, err
	}

	item, err := uc.service.Update(ctx, id, func(item *domain.MenuItem) {
		item.Name = req.Name
		item.Description = req.Description
		item.Price = price
		item.Category = domain.MenuCategory(req.Category)
		item.Image = req.Image
		if req.Available != nil {
			item.Available = *req.Available
		}
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("menu item updated", zap.String("itemId", id))

	result := newMenuItemDTO(*item)
	uc.sink.Notify(ctx, notification.Event{Type: notification.EventMenuUpdated, Payload: result})
	return &result, nil
}

func (uc *catalogUseCase) ToggleAvailability(ctx context.Context, id string) (*MenuItemDTO, error) {
	item, err := uc.service.Toggle(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("menu item availability toggled",
		zap.String("itemId", id),
		zap.Bool("available", item.Available))

	result := newMenuItemDTO(*item)
	uc.sink.Notify(ctx, notification.Event{Type: notification.EventMenuUpdated, Payload: result})
	return &result, nil
}

func validateSaveRequest(req SaveItemRequest) (decimal.Decimal, error) {
	var details []apperrors.ValidationDetail

	if req.Name == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !domain.MenuCategory(req.Category).Valid() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "category",
			Message: "category is not one of the known categories",
		})
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be a decimal number",
		})
	} else if price.IsNegative() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be non-negative",
		})
	}

	if len(details) > 0 {
		return decimal.Zero, apperrors.NewValidationError("validation failed", details...)
	}
	return price, nil
}
