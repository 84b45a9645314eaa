package repository

import (
	"context"
	"database/sql"
	"fmt"

	"smaug/internal/dto"
)

type MySQLStockQueryRepository struct {
	db *sql.DB
}

func NewMySQLStockQueryRepository(db *sql.DB) *MySQLStockQueryRepository {
	return &MySQLStockQueryRepository{db: db}
}

func (r *MySQLStockQueryRepository) List(ctx context.Context, productID, outletID int64) ([]dto.StockRow, error) {
	query := `
		SELECT s.id, p.product_id, p.name, s.outlet_id, o.name, s.quantity, p.min_stock
		FROM stock s
		JOIN products p ON p.id = s.product_id
		JOIN outlets o ON o.id = s.outlet_id
		WHERE (? = 0 OR s.product_id = ?)
		  AND (? = 0 OR s.outlet_id = ?)
		ORDER BY s.id
	`

	rows, err := r.db.QueryContext(ctx, query, productID, productID, outletID, outletID)
	if err != nil {
		return nil, fmt.Errorf("querying stock: %w", err)
	}
	defer rows.Close()

	var result []dto.StockRow
	for rows.Next() {
		var row dto.StockRow
		err := rows.Scan(
			&row.ID, &row.ProductID, &row.ProductName, &row.OutletID,
			&row.OutletName, &row.Quantity, &row.MinStock,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning stock row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stock rows: %w", err)
	}

	return result, nil
}

func (r *MySQLStockQueryRepository) ListLow(ctx context.Context, outletID int64) ([]dto.LowStockRow, error) {
	query := `
		SELECT p.product_id, p.name, s.quantity, p.min_stock, o.name
		FROM stock s
		JOIN products p ON p.id = s.product_id
		JOIN outlets o ON o.id = s.outlet_id
		WHERE s.quantity < p.min_stock
		  AND (? = 0 OR s.outlet_id = ?)
		ORDER BY s.quantity ASC
	`

	rows, err := r.db.QueryContext(ctx, query, outletID, outletID)
	if err != nil {
		return nil, fmt.Errorf("querying low stock: %w", err)
	}
	defer rows.Close()

	var result []dto.LowStockRow
	for rows.Next() {
		var row dto.LowStockRow
		err := rows.Scan(
			&row.ProductID, &row.ProductName, &row.CurrentQuantity,
			&row.MinStock, &row.OutletName,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning low stock row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating low stock rows: %w", err)
	}

	return result, nil
}
