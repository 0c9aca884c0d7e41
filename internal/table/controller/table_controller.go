package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Joaomarcellodev/IzziOrder/internal/dto"
	apperrors "github.com/Joaomarcellodev/IzziOrder/internal/errors"
)

type TabLifecycleUseCase interface {
	ListTables(ctx context.Context) ([]dto.TableDTO, error)
	GetTable(ctx context.Context, tableID int) (*dto.TableDTO, error)
	OpenTab(ctx context.Context, tableID, partySize int) (*dto.TableDTO, error)
	SendToKitchen(ctx context.Context, tableID int) (*dto.KitchenTicket, error)
	RequestBill(ctx context.Context, tableID int) (*dto.TableDTO, error)
	PrintBill(ctx context.Context, tableID int) error
	SplitBill(ctx context.Context, tableID int) error
	CloseAndPay(ctx context.Context, tableID int) (*dto.TableDTO, error)
}

type OrderEntryUseCase interface {
	AddItem(ctx context.Context, tableID int, req dto.AddLineRequest) (*dto.TableDTO, error)
	AdjustLine(ctx context.Context, tableID int, lineID string, delta int) (*dto.TableDTO, error)
	RemoveLine(ctx context.Context, tableID int, lineID string) (*dto.TableDTO, error)
}

type TableController struct {
	lifecycle TabLifecycleUseCase
	entry     OrderEntryUseCase
	logger    *zap.Logger
}

func NewTableController(lifecycle TabLifecycleUseCase, entry OrderEntryUseCase, logger *zap.Logger) *TableController {
	return &TableController{
		lifecycle: lifecycle,
		entry:     entry,
		logger:    logger,
	}
}

func (c *TableController) HandleList(w http.ResponseWriter, r *http.Request) {
	resp, err := c.lifecycle.ListTables(r.Context())
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *TableController) HandleGet(w http.ResponseWriter, r *http.Request) {
	tableID, ok := c.tableID(w, r)
	if !ok {
		return
	}

	resp, err := c.lifecycle.GetTable(r.Context(), tableID)
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *TableController) HandleOpenTab(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	tableID, ok := c.tableID(w, r)
	if !ok {
		return
	}

	var req dto.OpenTabRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("invalid JSON body", zap.Error(err))
			c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
				Field:   "body",
				Message: "request body must be valid JSON",
			})
			return
		}
	}

	if req.PartySize < 0 {
		c.writeValidationError(w, "invalid party size", apperrors.ValidationDetail{
			Field:   "partySize",
			Message: "partySize must be a positive integer",
		})
		return
	}

	resp, err := c.lifecycle.OpenTab(r.Context(), tableID, req.PartySize)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, resp)
}

func (c *TableController) HandleAddLine(w http.ResponseWriter, r *http.Request) {
	tableID, ok := c.tableID(w, r)
	if !ok {
		return
	}

	var req dto.AddLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.MenuItemID == "" {
		c.writeValidationError(w, "invalid menu item", apperrors.ValidationDetail{
			Field:   "menuItemId",
			Message: "menuItemId is required",
		})
		return
	}

	resp, err := c.entry.AddItem(r.Context(), tableID, req)
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *TableController) HandleAdjustLine(w http.ResponseWriter, r *http.Request) {
	tableID, ok := c.tableID(w, r)
	if !ok {
		return
	}

	var req dto.AdjustLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.Delta == 0 {
		c.writeValidationError(w, "invalid delta", apperrors.ValidationDetail{
			Field:   "delta",
			Message: "delta must be a non-zero integer",
		})
		return
	}

	resp, err := c.entry.AdjustLine(r.Context(), tableID, chi.URLParam(r, "lineId"), req.Delta)
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *TableController) HandleRemoveLine(w http.ResponseWriter, r *http.Request) {
	tableID, ok := c.tableID(w, r)
	if !ok {
		return
	}

	resp, err := c.entry.RemoveLine(r.Context(), tableID, chi.URLParam(r, "lineId"))
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *TableController) HandleSendToKitchen(w http.ResponseWriter, r *http.Request) {
	tableID, ok := c.tableID(w, r)
	if !ok {
		return
	}

	resp, err := c.lifecycle.SendToKitchen(r.Context(), tableID)
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *TableController) HandleRequestBill(w http.ResponseWriter, r *http.Request) {
	tableID, ok := c.tableID(w, r)
	if !ok {
		return
	}

	resp, err := c.lifecycle.RequestBill(r.Context(), tableID)
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *TableController) HandlePrintBill(w http.ResponseWriter, r *http.Request) {
	c.billStub(w, r, c.lifecycle.PrintBill)
}

func (c *TableController) HandleSplitBill(w http.ResponseWriter, r *http.Request) {
	c.billStub(w, r, c.lifecycle.SplitBill)
}

func (c *TableController) billStub(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, tableID int) error) {
	tableID, ok := c.tableID(w, r)
	if !ok {
		return
	}

	if err := op(r.Context(), tableID); err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (c *TableController) HandleCloseAndPay(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	tableID, ok := c.tableID(w, r)
	if !ok {
		return
	}

	resp, err := c.lifecycle.CloseAndPay(r.Context(), tableID)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *TableController) tableID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "tableId"))
	if err != nil || id <= 0 {
		c.writeValidationError(w, "invalid tableId", apperrors.ValidationDetail{
			Field:   "tableId",
			Message: "tableId must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

func (c *TableController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
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

func (c *TableController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
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

func (c *TableController) writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	c.writeJSON(w, status, errorResponse{
		Error:   code,
		Message: message,
	})
}

func (c *TableController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
