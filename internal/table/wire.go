package table

import (
	"go.uber.org/zap"

	"github.com/Joaomarcellodev/IzziOrder/internal/clock"
	"github.com/Joaomarcellodev/IzziOrder/internal/notification"
	"github.com/Joaomarcellodev/IzziOrder/internal/table/controller"
	"github.com/Joaomarcellodev/IzziOrder/internal/table/repository"
	"github.com/Joaomarcellodev/IzziOrder/internal/table/service"
	"github.com/Joaomarcellodev/IzziOrder/internal/table/usecase"
)

func NewModule(
	repo *repository.InMemoryTableRepository,
	ledger *repository.InMemoryPaymentLedger,
	catalog service.MenuCatalog,
	clk clock.Clock,
	sink notification.Sink,
	logger *zap.Logger,
) *controller.TableController {
	entrySvc := service.NewOrderEntryService(repo, catalog, logger)

	lifecycle := usecase.NewTabLifecycleUseCase(repo, ledger, clk, sink, logger)
	entry := usecase.NewOrderEntryUseCase(entrySvc)

	return controller.NewTableController(lifecycle, entry, logger)
}
