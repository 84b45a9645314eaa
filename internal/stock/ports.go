package stock

import (
	"context"

	"smaug/internal/dto"
)

// Repository serves the read-only stock views consumed by the frontend.
// Stock mutation lives exclusively in the billing confirm path.
type Repository interface {
	List(ctx context.Context, productID, outletID int64) ([]dto.StockRow, error)
	ListLow(ctx context.Context, outletID int64) ([]dto.LowStockRow, error)
}
