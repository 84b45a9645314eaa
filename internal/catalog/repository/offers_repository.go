package repository

import (
	"context"
	"database/sql"
	"fmt"

	"smaug/internal/domain"
	"smaug/internal/errors"
)

type MySQLOffersRepository struct {
	db *sql.DB
}

func NewMySQLOffersRepository(db *sql.DB) *MySQLOffersRepository {
	return &MySQLOffersRepository{db: db}
}

func (r *MySQLOffersRepository) FindByProductID(ctx context.Context, productID int64) ([]domain.Offer, error) {
	return findByProductID(ctx, r.db, productID)
}

func (r *MySQLOffersRepository) FindByProductIDTx(ctx context.Context, tx *sql.Tx, productID int64) ([]domain.Offer, error) {
	return findByProductID(ctx, tx, productID)
}

func findByProductID(ctx context.Context, q querier, productID int64) ([]domain.Offer, error) {
	query := `
		SELECT id, product_id, offer_type, x_quantity, y_quantity,
		       discount_bps, discount_flat, start_date, end_date, is_active
		FROM offers
		WHERE product_id = ?
		ORDER BY id
	`

	rows, err := q.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("querying offers by product id: %w", err)
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		var (
			o    domain.Offer
			x    sql.NullInt64
			y    sql.NullInt64
			bps  sql.NullInt64
			flat sql.NullInt64
		)
		err := rows.Scan(
			&o.ID, &o.ProductID, &o.Type, &x, &y,
			&bps, &flat, &o.StartDate, &o.EndDate, &o.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning offer row: %w", err)
		}

		o.XQuantity = int(x.Int64)
		o.YQuantity = int(y.Int64)
		o.DiscountBps = int(bps.Int64)
		o.DiscountFlat = domain.Money(flat.Int64)

		// validated here so pricing can assume a well-formed variant
		if err := o.Validate(); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}

		offers = append(offers, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating offer rows: %w", err)
	}

	return offers, nil
}
