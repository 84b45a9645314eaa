package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"smaug/internal/dto"
	apperrors "smaug/internal/errors"
)

type PreviewUseCase interface {
	PreviewBill(ctx context.Context, items []dto.BillItemInput) (*dto.BillPreview, error)
}

type ConfirmUseCase interface {
	ConfirmBill(ctx context.Context, req dto.InvoiceConfirmRequest) (*dto.InvoiceResponse, error)
}

type BillingController struct {
	preview PreviewUseCase
	confirm ConfirmUseCase
	logger  *zap.Logger
}

func NewBillingController(preview PreviewUseCase, confirm ConfirmUseCase, logger *zap.Logger) *BillingController {
	return &BillingController{
		preview: preview,
		confirm: confirm,
		logger:  logger,
	}
}

// PreviewBill prices a cart. The request body is a bare JSON array of
// cart lines.
func (c *BillingController) PreviewBill(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var items []dto.BillItemInput
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be a JSON array of cart lines",
		})
		return
	}

	preview, err := c.preview.PreviewBill(r.Context(), items)
	if err != nil {
		c.handleBillingError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, preview)
}

// ConfirmBill turns a cart into an invoice, decrementing stock.
func (c *BillingController) ConfirmBill(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.InvoiceConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	invoice, err := c.confirm.ConfirmBill(r.Context(), req)
	if err != nil {
		c.handleBillingError(w, err, logger)
		return
	}

	logger.Info("invoice issued",
		zap.String("invoiceNumber", invoice.InvoiceNumber),
		zap.Int64("outletId", req.OutletID),
	)
	c.writeJSON(w, http.StatusCreated, invoice)
}

func (c *BillingController) handleBillingError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, "NOT_FOUND", nfe.Message)
		return
	}

	if ise, ok := apperrors.IsInsufficientStockError(err); ok {
		c.writeError(w, http.StatusBadRequest, "INSUFFICIENT_STOCK",
			fmt.Sprintf("Insufficient stock for %s. Available: %d, Requested: %d",
				ise.ProductName, ise.Available, ise.Requested))
		return
	}

	if ce, ok := apperrors.IsConflictError(err); ok {
		c.writeError(w, http.StatusConflict, "CONFLICT", ce.Message)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *BillingController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *BillingController) writeError(w http.ResponseWriter, status int, code, message string) {
	c.writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

func (c *BillingController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
