package order

import (
	"go.uber.org/zap"

	"github.com/Joaomarcellodev/IzziOrder/internal/clock"
	"github.com/Joaomarcellodev/IzziOrder/internal/notification"
	"github.com/Joaomarcellodev/IzziOrder/internal/order/controller"
	"github.com/Joaomarcellodev/IzziOrder/internal/order/repository"
	"github.com/Joaomarcellodev/IzziOrder/internal/order/usecase"
)

func NewModule(
	repo *repository.InMemoryOrderRepository,
	catalog usecase.MenuCatalog,
	clk clock.Clock,
	sink notification.Sink,
	logger *zap.Logger,
) *controller.OrderController {
	board := usecase.NewBoardUseCase(repo, catalog, clk, sink, logger)
	progress := usecase.NewProgressUseCase(repo, clk, sink, logger)
	return controller.NewOrderController(board, progress, logger)
}
