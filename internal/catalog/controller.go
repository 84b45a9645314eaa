package catalog

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "smaug/internal/errors"
	"smaug/internal/pricing"
)

type Controller struct {
	snapshots SnapshotProvider
	now       func() time.Time
	logger    *zap.Logger
}

func NewController(snapshots SnapshotProvider, logger *zap.Logger) *Controller {
	return &Controller{
		snapshots: snapshots,
		now:       time.Now,
		logger:    logger,
	}
}

// HandleGetProduct resolves a product by SPN code or barcode value.
func (c *Controller) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "productID")
	if code == "" {
		c.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "productID is required")
		return
	}

	snap, err := c.snapshots.Snapshot(r.Context(), code)
	if err != nil {
		c.writeLookupError(w, code, err)
		return
	}

	c.writeJSON(w, http.StatusOK, productDTO(snap.Product))
}

// HandleGetActiveOffer returns the single offer currently in force for a
// product, or null when no offer applies today.
func (c *Controller) HandleGetActiveOffer(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "productID")
	if code == "" {
		c.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "productID is required")
		return
	}

	snap, err := c.snapshots.Snapshot(r.Context(), code)
	if err != nil {
		c.writeLookupError(w, code, err)
		return
	}

	offer := pricing.Resolve(snap.Offers, c.now())
	if offer == nil {
		c.writeJSON(w, http.StatusOK, nil)
		return
	}

	c.writeJSON(w, http.StatusOK, offerDTO(*offer))
}

func (c *Controller) writeLookupError(w http.ResponseWriter, code string, err error) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, "NOT_FOUND", nfe.Message)
		return
	}
	c.logger.Error("catalog lookup failed", zap.String("code", code), zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
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
