package report

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type SummaryUseCase interface {
	Summary(ctx context.Context) (*Summary, error)
}

type Controller struct {
	useCase SummaryUseCase
	logger  *zap.Logger
}

func NewController(useCase SummaryUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleSummary serves GET /reports/summary.
func (c *Controller) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := c.useCase.Summary(r.Context())
	if err != nil {
		c.logger.Error("building report summary", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, summary)
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
