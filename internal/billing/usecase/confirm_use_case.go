package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"smaug/internal/domain"
	"smaug/internal/dto"
	apperrors "smaug/internal/errors"
)

type ConfirmService interface {
	Confirm(ctx context.Context, outletID int64, notes string, items []dto.BillItemInput) (*dto.InvoiceResponse, error)
}

type OutletRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Outlet, error)
}

// ConfirmUseCase validates the request before any transaction is opened
// and retries the transactional confirm when MySQL reports lock
// contention. Retries are internal; the caller only ever sees the final
// outcome.
type ConfirmUseCase struct {
	outlets          OutletRepository
	service          ConfirmService
	logger           *zap.Logger
	maxRetryAttempts int
}

func NewConfirmUseCase(
	outlets OutletRepository,
	service ConfirmService,
	logger *zap.Logger,
	maxRetryAttempts int,
) *ConfirmUseCase {
	return &ConfirmUseCase{
		outlets:          outlets,
		service:          service,
		logger:           logger,
		maxRetryAttempts: maxRetryAttempts,
	}
}

func (uc *ConfirmUseCase) ConfirmBill(ctx context.Context, req dto.InvoiceConfirmRequest) (*dto.InvoiceResponse, error) {
	// pre-validations, all before any transaction
	if len(req.Items) == 0 {
		return nil, apperrors.NewValidationError("cart is empty", apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	if err := validateItems(req.Items); err != nil {
		return nil, err
	}

	if req.OutletID <= 0 {
		return nil, apperrors.NewValidationError("outlet_id is required", apperrors.ValidationDetail{
			Field:   "outlet_id",
			Message: "outlet_id must be a positive integer",
		})
	}

	outlet, err := uc.outlets.FindByID(ctx, req.OutletID)
	if err != nil {
		return nil, err
	}
	if !outlet.IsActive {
		return nil, apperrors.NewValidationError(fmt.Sprintf("outlet %q is inactive", outlet.Name), apperrors.ValidationDetail{
			Field:   "outlet_id",
			Message: "outlet must be active",
		})
	}

	uc.logger.Info("confirm started",
		zap.Int64("outletId", req.OutletID),
		zap.Int("itemCount", len(req.Items)),
	)

	return uc.confirmWithRetry(ctx, req)
}

func (uc *ConfirmUseCase) confirmWithRetry(ctx context.Context, req dto.InvoiceConfirmRequest) (*dto.InvoiceResponse, error) {
	for attempt := 1; attempt <= uc.maxRetryAttempts; attempt++ {
		invoice, err := uc.service.Confirm(ctx, req.OutletID, req.Notes, req.Items)
		if err == nil {
			return invoice, nil
		}

		if !isLockContentionError(err) {
			return nil, err
		}

		if attempt < uc.maxRetryAttempts {
			// linear backoff with ±20% jitter
			base := time.Duration(attempt) * 100 * time.Millisecond
			jittered := time.Duration(float64(base) * (0.8 + rand.Float64()*0.4))
			uc.logger.Warn("lock contention on confirm, retrying",
				zap.Int("attempt", attempt),
				zap.Int("maxAttempts", uc.maxRetryAttempts),
				zap.Int64("outletId", req.OutletID),
			)
			time.Sleep(jittered)
		}
	}

	return nil, apperrors.NewConflictError("confirm aborted after repeated lock contention")
}

// isLockContentionError matches InnoDB deadlock (1213) and lock wait
// timeout (1205) which are the two safe-to-retry failures here.
func isLockContentionError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	return false
}
