package billing

import (
	"database/sql"

	"go.uber.org/zap"

	"smaug/internal/billing/controller"
	"smaug/internal/billing/repository"
	"smaug/internal/billing/service"
	"smaug/internal/billing/usecase"
	catalogrepo "smaug/internal/catalog/repository"
	"smaug/internal/config"
	outletrepo "smaug/internal/outlet/repository"
)

func NewModule(db *sql.DB, snapshots usecase.SnapshotProvider, cfg *config.Config, logger *zap.Logger) *controller.BillingController {
	productsRepo := catalogrepo.NewMySQLProductsRepository(db)
	offersRepo := catalogrepo.NewMySQLOffersRepository(db)
	stockRepo := repository.NewMySQLStockRepository(db)
	invoiceRepo := repository.NewMySQLInvoiceRepository(db)
	outletsRepo := outletrepo.NewMySQLOutletsRepository(db)

	confirmSvc := service.NewConfirmService(
		db,
		productsRepo,
		offersRepo,
		stockRepo,
		invoiceRepo,
		logger,
		cfg.Billing.TxTimeout,
	)

	previewUC := usecase.NewPreviewUseCase(snapshots, logger)
	confirmUC := usecase.NewConfirmUseCase(
		outletsRepo,
		confirmSvc,
		logger,
		cfg.Billing.MaxRetryAttempts,
	)

	return controller.NewBillingController(previewUC, confirmUC, logger)
}
