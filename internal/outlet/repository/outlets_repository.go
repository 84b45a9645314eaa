package repository

import (
	"context"
	"database/sql"
	"fmt"

	"smaug/internal/domain"
	"smaug/internal/errors"
)

type MySQLOutletsRepository struct {
	db *sql.DB
}

func NewMySQLOutletsRepository(db *sql.DB) *MySQLOutletsRepository {
	return &MySQLOutletsRepository{db: db}
}

func (r *MySQLOutletsRepository) FindByID(ctx context.Context, id int64) (*domain.Outlet, error) {
	query := `
		SELECT id, name, is_active
		FROM outlets
		WHERE id = ?
	`

	var outlet domain.Outlet
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&outlet.ID, &outlet.Name, &outlet.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("outlet with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying outlet by id: %w", err)
	}

	return &outlet, nil
}
