package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Joaomarcellodev/IzziOrder/internal/dto"
	apperrors "github.com/Joaomarcellodev/IzziOrder/internal/errors"
)

type BoardUseCase interface {
	Board(ctx context.Context) (*dto.BoardResponse, error)
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderDTO, error)
}

type ProgressUseCase interface {
	Confirm(ctx context.Context, orderID string) (*dto.OrderDTO, error)
	MarkPreparing(ctx context.Context, orderID string) (*dto.OrderDTO, error)
	MarkReady(ctx context.Context, orderID string) (*dto.OrderDTO, error)
}

type OrderController struct {
	board    BoardUseCase
	progress ProgressUseCase
	logger   *zap.Logger
}

func NewOrderController(board BoardUseCase, progress ProgressUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		board:    board,
		progress: progress,
		logger:   logger,
	}
}

func (c *OrderController) HandleBoard(w http.ResponseWriter, r *http.Request) {
	resp, err := c.board.Board(r.Context())
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *OrderController) HandleCreate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := c.board.Create(r.Context(), req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, resp)
}

func (c *OrderController) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	c.advance(w, r, c.progress.Confirm)
}

func (c *OrderController) HandlePreparing(w http.ResponseWriter, r *http.Request) {
	c.advance(w, r, c.progress.MarkPreparing)
}

func (c *OrderController) HandleReady(w http.ResponseWriter, r *http.Request) {
	c.advance(w, r, c.progress.MarkReady)
}

func (c *OrderController) advance(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, orderID string) (*dto.OrderDTO, error),
) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID := chi.URLParam(r, "orderId")
	if orderID == "" {
		c.writeValidationError(w, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId is required",
		})
		return
	}

	resp, err := op(r.Context(), orderID)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *OrderController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsInvalidTransitionError(err); ok {
		c.writeErrorResponse(w, http.StatusConflict, "INVALID_TRANSITION", err.Error())
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *OrderController) writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	c.writeJSON(w, status, errorResponse{
		Error:   code,
		Message: message,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
