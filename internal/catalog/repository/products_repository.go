package repository

import (
	"context"
	"database/sql"
	"fmt"

	"smaug/internal/domain"
	"smaug/internal/errors"
)

// querier is satisfied by both *sql.DB and *sql.Tx so the same lookup can
// run standalone (preview) or inside the confirm transaction.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

type MySQLProductsRepository struct {
	db *sql.DB
}

func NewMySQLProductsRepository(db *sql.DB) *MySQLProductsRepository {
	return &MySQLProductsRepository{db: db}
}

func (r *MySQLProductsRepository) FindByCode(ctx context.Context, code string) (*domain.Product, error) {
	return findByCode(ctx, r.db, code)
}

func (r *MySQLProductsRepository) FindByCodeTx(ctx context.Context, tx *sql.Tx, code string) (*domain.Product, error) {
	return findByCode(ctx, tx, code)
}

func findByCode(ctx context.Context, q querier, code string) (*domain.Product, error) {
	query := `
		SELECT p.id, p.product_id, p.name, p.category, p.cost_price, p.mrp,
		       p.selling_price, p.min_stock, p.created_at
		FROM products p
		LEFT JOIN barcodes b ON b.product_id = p.id
		WHERE p.product_id = ? OR b.barcode_value = ?
		LIMIT 1
	`

	var (
		p        domain.Product
		category sql.NullString
		cost     int64
		mrp      int64
		selling  int64
	)
	err := q.QueryRowContext(ctx, query, code, code).Scan(
		&p.ID, &p.ProductID, &p.Name, &category, &cost, &mrp,
		&selling, &p.MinStock, &p.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product %s not found", code))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by code: %w", err)
	}

	p.Category = category.String
	p.CostPrice = domain.Money(cost)
	p.MRP = domain.Money(mrp)
	p.SellingPrice = domain.Money(selling)

	if p.SellingPrice <= 0 {
		return nil, errors.NewInternalError(
			fmt.Sprintf("product %s has non-positive selling price", p.ProductID), nil)
	}

	return &p, nil
}
