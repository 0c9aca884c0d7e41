package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Joaomarcellodev/IzziOrder/internal/domain"
	apperrors "github.com/Joaomarcellodev/IzziOrder/internal/errors"
)

type TableRepository interface {
	Mutate(ctx context.Context, id int, fn func(*domain.Table) error) (*domain.Table, error)
}

type MenuCatalog interface {
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
}

// OrderEntryService mutates the staging order of an occupied table: adding
// menu items, adjusting quantities and removing lines. Lifecycle transitions
// live in the use case layer.
type OrderEntryService struct {
	tableRepo TableRepository
	catalog   MenuCatalog
	logger    *zap.Logger
}

func NewOrderEntryService(tableRepo TableRepository, catalog MenuCatalog, logger *zap.Logger) *OrderEntryService {
	return &OrderEntryService{
		tableRepo: tableRepo,
		catalog:   catalog,
		logger:    logger,
	}
}

func (s *OrderEntryService) AddItem(ctx context.Context, tableID int, menuItemID, note string) (*domain.Table, error) {
	item, err := s.catalog.FindByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}

	table, err := s.tableRepo.Mutate(ctx, tableID, func(t *domain.Table) error {
		if err := requireOpenTab(t); err != nil {
			return err
		}

		before := len(t.Lines)
		lines, err := t.Lines.Add(*item, uuid.New().String())
		if err != nil {
			return err
		}
		if note != "" && len(lines) > before {
			lines[len(lines)-1].Note = note
		}

		t.Lines = lines
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("item added to tab",
		zap.Int("tableId", tableID),
		zap.String("menuItemId", menuItemID))
	return table, nil
}

func (s *OrderEntryService) AdjustLine(ctx context.Context, tableID int, lineID string, delta int) (*domain.Table, error) {
	return s.tableRepo.Mutate(ctx, tableID, func(t *domain.Table) error {
		if err := requireOpenTab(t); err != nil {
			return err
		}

		lines, err := t.Lines.Adjust(lineID, delta)
		if err != nil {
			return err
		}

		t.Lines = lines
		return nil
	})
}

func (s *OrderEntryService) RemoveLine(ctx context.Context, tableID int, lineID string) (*domain.Table, error) {
	return s.tableRepo.Mutate(ctx, tableID, func(t *domain.Table) error {
		if err := requireOpenTab(t); err != nil {
			return err
		}

		lines, err := t.Lines.Remove(lineID)
		if err != nil {
			return err
		}

		t.Lines = lines
		return nil
	})
}

func requireOpenTab(t *domain.Table) error {
	switch t.Status {
	case domain.TableStatusOccupied:
		return nil
	case domain.TableStatusClosing:
		return apperrors.NewValidationError(
			fmt.Sprintf("table %d is awaiting payment", t.ID),
			apperrors.ValidationDetail{Field: "tableId", Message: "tab is closing, order cannot change"},
		)
	default:
		return apperrors.NewValidationError(
			fmt.Sprintf("table %d has no open tab", t.ID),
			apperrors.ValidationDetail{Field: "tableId", Message: "open a tab before ordering"},
		)
	}
}
