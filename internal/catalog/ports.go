package catalog

import (
	"context"

	"smaug/internal/cache"
)

// SnapshotProvider serves read-only catalog snapshots keyed by SPN
// product code or barcode value.
type SnapshotProvider interface {
	Snapshot(ctx context.Context, code string) (*cache.ProductSnapshot, error)
}
