package report

import (
	"go.uber.org/zap"

	"github.com/Joaomarcellodev/IzziOrder/internal/clock"
)

func NewModule(
	orders OrderLister,
	tables TableLister,
	payments PaymentLister,
	clk clock.Clock,
	logger *zap.Logger,
) *Controller {
	svc := NewSummaryService(orders, tables, payments, clk)
	return NewController(svc, logger)
}
