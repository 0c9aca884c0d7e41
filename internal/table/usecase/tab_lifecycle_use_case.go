package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Joaomarcellodev/IzziOrder/internal/clock"
	"github.com/Joaomarcellodev/IzziOrder/internal/domain"
	"github.com/Joaomarcellodev/IzziOrder/internal/dto"
	apperrors "github.com/Joaomarcellodev/IzziOrder/internal/errors"
	"github.com/Joaomarcellodev/IzziOrder/internal/notification"
)

// defaultPartySize applies when the caller opens a tab without a party size.
const defaultPartySize = 2

type TableRepository interface {
	List(ctx context.Context) ([]domain.Table, error)
	FindByID(ctx context.Context, id int) (*domain.Table, error)
	Mutate(ctx context.Context, id int, fn func(*domain.Table) error) (*domain.Table, error)
}

type PaymentLedger interface {
	Record(ctx context.Context, payment domain.Payment) error
}

// TabLifecycleUseCase drives the table state machine: free → occupied →
// closing → free.
type TabLifecycleUseCase struct {
	tableRepo TableRepository
	ledger    PaymentLedger
	clock     clock.Clock
	sink      notification.Sink
	logger    *zap.Logger
}

func NewTabLifecycleUseCase(
	tableRepo TableRepository,
	ledger PaymentLedger,
	clk clock.Clock,
	sink notification.Sink,
	logger *zap.Logger,
) *TabLifecycleUseCase {
	return &TabLifecycleUseCase{
		tableRepo: tableRepo,
		ledger:    ledger,
		clock:     clk,
		sink:      sink,
		logger:    logger,
	}
}

func (uc *TabLifecycleUseCase) ListTables(ctx context.Context) ([]dto.TableDTO, error) {
	tables, err := uc.tableRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.TableDTO, 0, len(tables))
	for _, table := range tables {
		dtos = append(dtos, NewTableDTO(table))
	}
	return dtos, nil
}

func (uc *TabLifecycleUseCase) GetTable(ctx context.Context, tableID int) (*dto.TableDTO, error) {
	table, err := uc.tableRepo.FindByID(ctx, tableID)
	if err != nil {
		return nil, err
	}

	result := NewTableDTO(*table)
	return &result, nil
}

func (uc *TabLifecycleUseCase) OpenTab(ctx context.Context, tableID, partySize int) (*dto.TableDTO, error) {
	if partySize == 0 {
		partySize = defaultPartySize
	}

	tabID := uuid.New().String()
	table, err := uc.tableRepo.Mutate(ctx, tableID, func(t *domain.Table) error {
		return t.OpenTab(tabID, partySize)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("tab opened",
		zap.Int("tableId", tableID),
		zap.String("tabId", tabID),
		zap.Int("partySize", partySize))

	result := NewTableDTO(*table)
	uc.sink.Notify(ctx, notification.Event{Type: notification.EventTabOpened, Payload: result})
	return &result, nil
}

// SendToKitchen fires the lines added since the previous send. Sends are
// additive: already-fired lines never fire again.
func (uc *TabLifecycleUseCase) SendToKitchen(ctx context.Context, tableID int) (*dto.KitchenTicket, error) {
	var fired domain.LineList
	var tabID string

	_, err := uc.tableRepo.Mutate(ctx, tableID, func(t *domain.Table) error {
		if t.Status != domain.TableStatusOccupied {
			return apperrors.NewInvalidTransitionError("table", string(t.Status), "kitchen send")
		}

		unsent := t.Lines.Unsent()
		if len(unsent) == 0 {
			return apperrors.NewValidationError(
				fmt.Sprintf("table %d has no new items to send", tableID),
				apperrors.ValidationDetail{Field: "tableId", Message: "every line was already sent"},
			)
		}

		fired = unsent
		tabID = t.TabID
		t.Lines = t.Lines.MarkSent()
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order sent to kitchen",
		zap.Int("tableId", tableID),
		zap.Int("lineCount", len(fired)))

	ticket := &dto.KitchenTicket{
		TableID: tableID,
		TabID:   tabID,
		Lines:   dto.NewLineDTOs(fired),
	}
	uc.sink.Notify(ctx, notification.Event{Type: notification.EventKitchenFired, Payload: ticket})
	return ticket, nil
}

func (uc *TabLifecycleUseCase) RequestBill(ctx context.Context, tableID int) (*dto.TableDTO, error) {
	table, err := uc.tableRepo.Mutate(ctx, tableID, func(t *domain.Table) error {
		return t.RequestBill()
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("bill requested", zap.Int("tableId", tableID))

	result := NewTableDTO(*table)
	uc.sink.Notify(ctx, notification.Event{Type: notification.EventBillRequested, Payload: result})
	return &result, nil
}

// PrintBill and SplitBill have no state effect in scope; they acknowledge
// through the notification sink only.
func (uc *TabLifecycleUseCase) PrintBill(ctx context.Context, tableID int) error {
	return uc.billStub(ctx, tableID, notification.EventBillPrinted)
}

func (uc *TabLifecycleUseCase) SplitBill(ctx context.Context, tableID int) error {
	return uc.billStub(ctx, tableID, notification.EventBillSplit)
}

func (uc *TabLifecycleUseCase) billStub(ctx context.Context, tableID int, event notification.EventType) error {
	table, err := uc.tableRepo.FindByID(ctx, tableID)
	if err != nil {
		return err
	}

	if table.Status == domain.TableStatusFree {
		return apperrors.NewValidationError(
			fmt.Sprintf("table %d has no open tab", tableID),
			apperrors.ValidationDetail{Field: "tableId", Message: "nothing to bill"},
		)
	}

	uc.sink.Notify(ctx, notification.Event{Type: event, Payload: NewTableDTO(*table)})
	return nil
}

func (uc *TabLifecycleUseCase) CloseAndPay(ctx context.Context, tableID int) (*dto.TableDTO, error) {
	var payment domain.Payment

	table, err := uc.tableRepo.Mutate(ctx, tableID, func(t *domain.Table) error {
		// Capture the tab before CloseAndPay wipes it.
		payment = domain.Payment{
			TableID: t.ID,
			TabID:   t.TabID,
			Total:   t.Total(),
			Lines:   t.Lines,
			PaidAt:  uc.clock.Now(),
		}
		return t.CloseAndPay()
	})
	if err != nil {
		return nil, err
	}

	if err := uc.ledger.Record(ctx, payment); err != nil {
		// The table is already free; losing the report entry is not fatal.
		uc.logger.Error("recording payment", zap.Int("tableId", tableID), zap.Error(err))
	}

	uc.logger.Info("payment completed",
		zap.Int("tableId", tableID),
		zap.String("tabId", payment.TabID),
		zap.String("total", payment.Total.StringFixed(2)))

	result := NewTableDTO(*table)
	uc.sink.Notify(ctx, notification.Event{Type: notification.EventPaymentCompleted, Payload: map[string]any{
		"tableId": payment.TableID,
		"tabId":   payment.TabID,
		"total":   payment.Total.StringFixed(2),
	}})
	return &result, nil
}

// NewTableDTO maps a table for the floor plan. Occupancy fields are present
// only when the table is not free.
func NewTableDTO(table domain.Table) dto.TableDTO {
	result := dto.TableDTO{
		ID:     table.ID,
		Status: string(table.Status),
	}

	if table.Status != domain.TableStatusFree {
		result.PartySize = table.PartySize
		result.TabID = table.TabID
		result.Total = table.Total().StringFixed(2)
		result.Items = dto.NewLineDTOs(table.Lines)
	}
	return result
}
