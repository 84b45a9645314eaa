package service

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"go.uber.org/zap"

	"smaug/internal/domain"
	"smaug/internal/dto"
	apperrors "smaug/internal/errors"
	"smaug/internal/pricing"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type ProductReader interface {
	FindByCodeTx(ctx context.Context, tx *sql.Tx, code string) (*domain.Product, error)
}

type OfferReader interface {
	FindByProductIDTx(ctx context.Context, tx *sql.Tx, productID int64) ([]domain.Offer, error)
}

type StockRepository interface {
	FindForUpdate(ctx context.Context, tx *sql.Tx, productID, outletID int64) (*domain.StockLevel, error)
	Decrement(ctx context.Context, tx *sql.Tx, stockID int64, quantity int) error
}

type InvoiceRepository interface {
	NextSeq(ctx context.Context, tx *sql.Tx) (int64, error)
	Insert(ctx context.Context, tx *sql.Tx, invoice *domain.Invoice) error
}

// ConfirmService is the only mutating path in the engine. One confirm is
// one transaction: fresh catalog reads, stock check-and-decrement under
// row locks, sequence allocation and invoice insert either all commit or
// all roll back.
type ConfirmService struct {
	db        TransactionManager
	products  ProductReader
	offers    OfferReader
	stock     StockRepository
	invoices  InvoiceRepository
	logger    *zap.Logger
	txTimeout time.Duration
	now       func() time.Time
}

func NewConfirmService(
	db TransactionManager,
	products ProductReader,
	offers OfferReader,
	stock StockRepository,
	invoices InvoiceRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *ConfirmService {
	return &ConfirmService{
		db:        db,
		products:  products,
		offers:    offers,
		stock:     stock,
		invoices:  invoices,
		logger:    logger,
		txTimeout: txTimeout,
		now:       time.Now,
	}
}

type confirmLine struct {
	inputIndex int
	product    *domain.Product
	quantity   int
}

func (s *ConfirmService) Confirm(
	ctx context.Context,
	outletID int64,
	notes string,
	items []dto.BillItemInput,
) (*dto.InvoiceResponse, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	// Rollback on any exit path. MySQL ignores it after a commit.
	defer tx.Rollback()

	// Load products inside the transaction; a stale client preview must
	// never decide what gets billed.
	lines := make([]confirmLine, 0, len(items))
	for i, item := range items {
		product, err := s.products.FindByCodeTx(txCtx, tx, item.ProductID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, confirmLine{inputIndex: i, product: product, quantity: item.Quantity})
	}

	// Lock stock rows in product id order so concurrent confirms over
	// overlapping carts cannot deadlock each other.
	sort.Slice(lines, func(i, j int) bool { return lines[i].product.ID < lines[j].product.ID })

	asOf := s.now()
	priced := make([]dto.PricedLine, len(lines))
	invoiceItems := make([]domain.InvoiceItem, len(lines))

	for _, line := range lines {
		level, err := s.stock.FindForUpdate(txCtx, tx, line.product.ID, outletID)
		if err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				return nil, apperrors.NewInsufficientStockError(
					line.product.ProductID, line.product.Name, 0, line.quantity)
			}
			return nil, err
		}

		if level.Quantity < line.quantity {
			return nil, apperrors.NewInsufficientStockError(
				line.product.ProductID, line.product.Name, level.Quantity, line.quantity)
		}

		if err := s.stock.Decrement(txCtx, tx, level.ID, line.quantity); err != nil {
			return nil, err
		}

		// Fresh offer state: an offer that expired since the preview is
		// silently dropped, a new one silently applied.
		offers, err := s.offers.FindByProductIDTx(txCtx, tx, line.product.ID)
		if err != nil {
			return nil, err
		}
		offer := pricing.Resolve(offers, asOf)

		pl := pricing.PriceLine(*line.product, line.quantity, offer)
		priced[line.inputIndex] = pl
		invoiceItems[line.inputIndex] = domain.InvoiceItem{
			ProductID:    line.product.ID,
			ProductCode:  pl.ProductID,
			ProductName:  pl.ProductName,
			Quantity:     pl.Quantity,
			UnitPrice:    pl.UnitPrice,
			Discount:     pl.Discount,
			LineTotal:    pl.LineTotal,
			OfferApplied: pl.OfferApplied,
		}
	}

	bill := pricing.Aggregate(priced)

	seq, err := s.invoices.NextSeq(txCtx, tx)
	if err != nil {
		return nil, err
	}

	invoice := &domain.Invoice{
		Seq:            seq,
		InvoiceNumber:  domain.FormatInvoiceNumber(seq),
		OutletID:       outletID,
		TotalAmount:    bill.Subtotal,
		DiscountAmount: bill.TotalDiscount,
		FinalAmount:    bill.FinalTotal,
		Notes:          notes,
		CreatedAt:      asOf,
		Items:          invoiceItems,
	}

	if err := s.invoices.Insert(txCtx, tx, invoice); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit confirm", zap.String("invoiceNumber", invoice.InvoiceNumber), zap.Error(err))
		return nil, err
	}

	s.logger.Info("invoice confirmed",
		zap.String("invoiceNumber", invoice.InvoiceNumber),
		zap.Int64("outletId", outletID),
		zap.Int("lineCount", len(invoice.Items)),
		zap.String("finalAmount", bill.FinalTotal.String()),
	)

	return &dto.InvoiceResponse{
		ID:             invoice.ID,
		InvoiceNumber:  invoice.InvoiceNumber,
		TotalAmount:    invoice.TotalAmount,
		DiscountAmount: invoice.DiscountAmount,
		FinalAmount:    invoice.FinalAmount,
		CreatedAt:      invoice.CreatedAt,
		Items:          bill.Items,
	}, nil
}
