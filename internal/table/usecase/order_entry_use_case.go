package usecase

import (
	"context"

	"github.com/Joaomarcellodev/IzziOrder/internal/domain"
	"github.com/Joaomarcellodev/IzziOrder/internal/dto"
)

type OrderEntryService interface {
	AddItem(ctx context.Context, tableID int, menuItemID, note string) (*domain.Table, error)
	AdjustLine(ctx context.Context, tableID int, lineID string, delta int) (*domain.Table, error)
	RemoveLine(ctx context.Context, tableID int, lineID string) (*domain.Table, error)
}

// OrderEntryUseCase exposes the staging-order mutations of an open tab.
type OrderEntryUseCase struct {
	service OrderEntryService
}

func NewOrderEntryUseCase(service OrderEntryService) *OrderEntryUseCase {
	return &OrderEntryUseCase{service: service}
}

func (uc *OrderEntryUseCase) AddItem(ctx context.Context, tableID int, req dto.AddLineRequest) (*dto.TableDTO, error) {
	table, err := uc.service.AddItem(ctx, tableID, req.MenuItemID, req.Note)
	if err != nil {
		return nil, err
	}

	result := NewTableDTO(*table)
	return &result, nil
}

func (uc *OrderEntryUseCase) AdjustLine(ctx context.Context, tableID int, lineID string, delta int) (*dto.TableDTO, error) {
	table, err := uc.service.AdjustLine(ctx, tableID, lineID, delta)
	if err != nil {
		return nil, err
	}

	result := NewTableDTO(*table)
	return &result, nil
}

func (uc *OrderEntryUseCase) RemoveLine(ctx context.Context, tableID int, lineID string) (*dto.TableDTO, error) {
	table, err := uc.service.RemoveLine(ctx, tableID, lineID)
	if err != nil {
		return nil, err
	}

	result := NewTableDTO(*table)
	return &result, nil
}
