package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"smaug/internal/cache"
	"smaug/internal/dto"
	apperrors "smaug/internal/errors"
	"smaug/internal/pricing"
)

type SnapshotProvider interface {
	Snapshot(ctx context.Context, code string) (*cache.ProductSnapshot, error)
}

// PreviewUseCase prices a cart without touching any state. Any number of
// previews can run concurrently over the same catalog; the same cart and
// the same offer state always produce the same bill.
type PreviewUseCase struct {
	catalog SnapshotProvider
	logger  *zap.Logger
	now     func() time.Time
}

func NewPreviewUseCase(catalog SnapshotProvider, logger *zap.Logger) *PreviewUseCase {
	return &PreviewUseCase{
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}
}

func (uc *PreviewUseCase) PreviewBill(ctx context.Context, items []dto.BillItemInput) (*dto.BillPreview, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}

	// an empty cart previews to an all-zero bill
	if len(items) == 0 {
		preview := pricing.Aggregate(nil)
		return &preview, nil
	}

	asOf := uc.now()
	priced := make([]dto.PricedLine, 0, len(items))

	for _, item := range items {
		snap, err := uc.catalog.Snapshot(ctx, item.ProductID)
		if err != nil {
			// one unknown product fails the whole preview; a partially
			// priced bill would be misleading
			return nil, err
		}

		offer := pricing.Resolve(snap.Offers, asOf)
		priced = append(priced, pricing.PriceLine(snap.Product, item.Quantity, offer))
	}

	preview := pricing.Aggregate(priced)

	uc.logger.Debug("bill previewed",
		zap.Int("lineCount", len(preview.Items)),
		zap.String("finalTotal", preview.FinalTotal.String()),
	)

	return &preview, nil
}

// validateItems rejects malformed cart lines before any catalog or
// database work happens.
func validateItems(items []dto.BillItemInput) error {
	for i, item := range items {
		if item.ProductID == "" {
			return apperrors.NewValidationError("product_id is required", apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d].product_id", i),
				Message: "product_id must not be empty",
			})
		}
		if item.Quantity < 1 {
			return apperrors.NewValidationError("quantity must be a positive integer", apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "quantity must be >= 1",
			})
		}
	}
	return nil
}
