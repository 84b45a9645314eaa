package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"smaug/internal/cache"
	"smaug/internal/domain"
)

type ProductRepository interface {
	FindByCode(ctx context.Context, code string) (*domain.Product, error)
}

type OfferRepository interface {
	FindByProductID(ctx context.Context, productID int64) ([]domain.Offer, error)
}

// CatalogService serves product snapshots for the preview path through a
// TTL-bounded read-through cache. Confirm never goes through here; it
// reads fresh rows inside its own transaction.
type CatalogService struct {
	products  ProductRepository
	offers    OfferRepository
	snapshots cache.SnapshotCache
	ttl       time.Duration
	logger    *zap.Logger
}

func New(
	products ProductRepository,
	offers OfferRepository,
	snapshots cache.SnapshotCache,
	ttl time.Duration,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		products:  products,
		offers:    offers,
		snapshots: snapshots,
		ttl:       ttl,
		logger:    logger,
	}
}

func (s *CatalogService) Snapshot(ctx context.Context, code string) (*cache.ProductSnapshot, error) {
	key := "catalog:product:" + code

	snap, hit, err := s.snapshots.Get(ctx, key)
	if err != nil {
		// a broken cache degrades to a database read, never to a failure
		s.logger.Warn("snapshot cache read failed", zap.String("code", code), zap.Error(err))
	} else if hit {
		return snap, nil
	}

	product, err := s.products.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	offers, err := s.offers.FindByProductID(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	snap = &cache.ProductSnapshot{Product: *product, Offers: offers}

	if err := s.snapshots.Set(ctx, key, snap, s.ttl); err != nil {
		s.logger.Warn("snapshot cache write failed", zap.String("code", code), zap.Error(err))
	}

	return snap, nil
}
