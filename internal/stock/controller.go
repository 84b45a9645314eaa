package stock

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"smaug/internal/dto"
)

type Controller struct {
	repo   Repository
	logger *zap.Logger
}

func NewController(repo Repository, logger *zap.Logger) *Controller {
	return &Controller{
		repo:   repo,
		logger: logger,
	}
}

// HandleListStock lists stock rows, optionally filtered by product and
// outlet query parameters.
func (c *Controller) HandleListStock(w http.ResponseWriter, r *http.Request) {
	productID, ok := c.optionalIDParam(w, r, "product_id")
	if !ok {
		return
	}
	outletID, ok := c.optionalIDParam(w, r, "outlet_id")
	if !ok {
		return
	}

	rows, err := c.repo.List(r.Context(), productID, outletID)
	if err != nil {
		c.logger.Error("listing stock failed", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
		return
	}

	if rows == nil {
		rows = []dto.StockRow{}
	}
	c.writeJSON(w, http.StatusOK, rows)
}

// HandleLowStock reports every stock row sitting below its product's
// min-stock threshold.
func (c *Controller) HandleLowStock(w http.ResponseWriter, r *http.Request) {
	outletID, ok := c.optionalIDParam(w, r, "outlet_id")
	if !ok {
		return
	}

	rows, err := c.repo.ListLow(r.Context(), outletID)
	if err != nil {
		c.logger.Error("listing low stock failed", zap.Error(err))
		c.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
		return
	}

	if rows == nil {
		rows = []dto.LowStockRow{}
	}
	c.writeJSON(w, http.StatusOK, rows)
}

// optionalIDParam parses an optional positive integer query parameter;
// absence is reported as zero.
func (c *Controller) optionalIDParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

func (c *Controller) writeError(w http.ResponseWriter, status int, code, message string) {
	c.writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
