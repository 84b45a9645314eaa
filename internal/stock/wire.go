package stock

import (
	"database/sql"

	"go.uber.org/zap"

	"smaug/internal/stock/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLStockQueryRepository(db)
	return NewController(repo, logger)
}
