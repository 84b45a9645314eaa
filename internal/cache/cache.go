package cache

import (
	"context"
	"time"

	"smaug/internal/domain"
)

// ProductSnapshot is the catalog state a preview prices against: the
// product plus every offer attached to it. One snapshot per product code,
// taken as a unit so product and offers cannot drift apart mid-preview.
type ProductSnapshot struct {
	Product domain.Product `json:"product"`
	Offers  []domain.Offer `json:"offers"`
}

type SnapshotCache interface {
	Get(ctx context.Context, key string) (*ProductSnapshot, bool, error)
	Set(ctx context.Context, key string, snap *ProductSnapshot, ttl time.Duration) error
}

// NoopSnapshotCache keeps the service runnable without Redis; every read
// is a miss.
type NoopSnapshotCache struct{}

func (NoopSnapshotCache) Get(_ context.Context, _ string) (*ProductSnapshot, bool, error) {
	return nil, false, nil
}

func (NoopSnapshotCache) Set(_ context.Context, _ string, _ *ProductSnapshot, _ time.Duration) error {
	return nil
}
