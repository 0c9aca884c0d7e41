package menu

import (
	"go.uber.org/zap"

	"github.com/Joaomarcellodev/IzziOrder/internal/clock"
	"github.com/Joaomarcellodev/IzziOrder/internal/notification"
)

func NewModule(
	repo *InMemoryRepository,
	clk clock.Clock,
	sink notification.Sink,
	logger *zap.Logger,
) *Controller {
	svc := NewService(repo, clk)
	uc := NewUseCase(svc, sink, logger)
	return NewController(uc, logger)
}
