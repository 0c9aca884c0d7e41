package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/Joaomarcellodev/IzziOrder/internal/clock"
	"github.com/Joaomarcellodev/IzziOrder/internal/domain"
	"github.com/Joaomarcellodev/IzziOrder/internal/dto"
	"github.com/Joaomarcellodev/IzziOrder/internal/notification"
)

type ProgressRepository interface {
	Mutate(ctx context.Context, id string, fn func(*domain.Order) error) (*domain.Order, error)
}

// ProgressUseCase drives the order status machine. Confirm is the manager
// action on the board; MarkPreparing and MarkReady are the hooks a kitchen
// display integration calls to advance orders further.
type ProgressUseCase struct {
	orderRepo ProgressRepository
	clock     clock.Clock
	sink      notification.Sink
	logger    *zap.Logger
}

func NewProgressUseCase(
	orderRepo ProgressRepository,
	clk clock.Clock,
	sink notification.Sink,
	logger *zap.Logger,
) *ProgressUseCase {
	return &ProgressUseCase{
		orderRepo: orderRepo,
		clock:     clk,
		sink:      sink,
		logger:    logger,
	}
}

func (uc *ProgressUseCase) Confirm(ctx context.Context, orderID string) (*dto.OrderDTO, error) {
	return uc.advance(ctx, orderID, domain.OrderStatusConfirmed, notification.EventOrderConfirmed)
}

func (uc *ProgressUseCase) MarkPreparing(ctx context.Context, orderID string) (*dto.OrderDTO, error) {
	return uc.advance(ctx, orderID, domain.OrderStatusPreparing, notification.EventOrderPreparing)
}

func (uc *ProgressUseCase) MarkReady(ctx context.Context, orderID string) (*dto.OrderDTO, error) {
	return uc.advance(ctx, orderID, domain.OrderStatusReady, notification.EventOrderReady)
}

func (uc *ProgressUseCase) advance(
	ctx context.Context,
	orderID string,
	next domain.OrderStatus,
	event notification.EventType,
) (*dto.OrderDTO, error) {
	now := uc.clock.Now()

	order, err := uc.orderRepo.Mutate(ctx, orderID, func(o *domain.Order) error {
		return o.Advance(next, now)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order status advanced",
		zap.String("orderId", orderID),
		zap.String("status", string(next)))

	result := NewOrderDTO(*order, now)
	// Notified only after the transition has been applied.
	uc.sink.Notify(ctx, notification.Event{Type: event, Payload: result})
	return &result, nil
}
