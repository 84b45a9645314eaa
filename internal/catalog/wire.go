package catalog

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	"smaug/internal/cache"
	"smaug/internal/catalog/repository"
	"smaug/internal/catalog/service"
)

// NewModule wires the catalog read path. The returned service is shared
// with the billing preview, which prices against the same snapshots.
func NewModule(db *sql.DB, snapshots cache.SnapshotCache, ttl time.Duration, logger *zap.Logger) (*Controller, *service.CatalogService) {
	products := repository.NewMySQLProductsRepository(db)
	offers := repository.NewMySQLOffersRepository(db)
	svc := service.New(products, offers, snapshots, ttl, logger)
	return NewController(svc, logger), svc
}
