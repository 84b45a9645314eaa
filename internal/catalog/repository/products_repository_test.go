package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smaug/internal/domain"
	apperrors "smaug/internal/errors"
	"smaug/internal/testutil"
)

// Unit Tests

func TestNewMySQLProductsRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLProductsRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestProductsRepository_FindByCode_BySPN(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLProductsRepository(db)

	_, err := db.Exec(`
		INSERT INTO products (product_id, name, category, cost_price, mrp, selling_price, min_stock)
		VALUES ('SPN001', 'Basmati Rice 5kg', 'grocery', 40000, 65000, 55000, 10)
	`)
	require.NoError(t, err)

	product, err := repo.FindByCode(context.Background(), "SPN001")
	require.NoError(t, err)

	assert.Equal(t, "SPN001", product.ProductID)
	assert.Equal(t, "Basmati Rice 5kg", product.Name)
	assert.Equal(t, domain.Money(55000), product.SellingPrice)
	assert.Equal(t, domain.Money(65000), product.MRP)
	assert.Equal(t, 10, product.MinStock)
}

func TestProductsRepository_FindByCode_ByBarcode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLProductsRepository(db)

	res, err := db.Exec(`
		INSERT INTO products (product_id, name, category, cost_price, mrp, selling_price, min_stock)
		VALUES ('SPN002', 'Sunflower Oil 1L', 'grocery', 9000, 15000, 13000, 5)
	`)
	require.NoError(t, err)
	productRowID, err := res.LastInsertId()
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO barcodes (product_id, barcode_value) VALUES (?, '8901234567890')`, productRowID)
	require.NoError(t, err)

	product, err := repo.FindByCode(context.Background(), "8901234567890")
	require.NoError(t, err)

	assert.Equal(t, "SPN002", product.ProductID)
	assert.Equal(t, productRowID, product.ID)
}

func TestProductsRepository_FindByCode_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLProductsRepository(db)

	_, err := repo.FindByCode(context.Background(), "SPN404")
	require.Error(t, err)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok, "expected NotFoundError, got %T", err)
}
