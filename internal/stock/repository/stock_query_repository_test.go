package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smaug/internal/testutil"
)

func seedInventory(t *testing.T, db *sql.DB) (outletA, outletB int64) {
	t.Helper()

	res, err := db.Exec(`INSERT INTO outlets (name, is_active) VALUES ('Main Street', 1)`)
	require.NoError(t, err)
	outletA, _ = res.LastInsertId()

	res, err = db.Exec(`INSERT INTO outlets (name, is_active) VALUES ('Market Road', 1)`)
	require.NoError(t, err)
	outletB, _ = res.LastInsertId()

	res, err = db.Exec(`
		INSERT INTO products (product_id, name, cost_price, mrp, selling_price, min_stock)
		VALUES ('SPN001', 'Basmati Rice 5kg', 40000, 65000, 55000, 10)
	`)
	require.NoError(t, err)
	rice, _ := res.LastInsertId()

	res, err = db.Exec(`
		INSERT INTO products (product_id, name, cost_price, mrp, selling_price, min_stock)
		VALUES ('SPN002', 'Sunflower Oil 1L', 9000, 15000, 13000, 20)
	`)
	require.NoError(t, err)
	oil, _ := res.LastInsertId()

	// rice is healthy at A, low at B; oil is low at A
	_, err = db.Exec(`INSERT INTO stock (product_id, outlet_id, quantity) VALUES (?, ?, 50), (?, ?, 3), (?, ?, 5)`,
		rice, outletA, rice, outletB, oil, outletA)
	require.NoError(t, err)

	return outletA, outletB
}

func TestStockQueryRepository_List_All(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	seedInventory(t, db)

	repo := NewMySQLStockQueryRepository(db)

	levels, err := repo.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, levels, 3)
}

func TestStockQueryRepository_List_FilterByOutlet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	outletA, _ := seedInventory(t, db)

	repo := NewMySQLStockQueryRepository(db)

	levels, err := repo.List(context.Background(), 0, outletA)
	require.NoError(t, err)
	require.Len(t, levels, 2)
	for _, lvl := range levels {
		assert.Equal(t, "Main Street", lvl.OutletName)
	}
}

func TestStockQueryRepository_ListLow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	seedInventory(t, db)

	repo := NewMySQLStockQueryRepository(db)

	low, err := repo.ListLow(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, low, 2)
	for _, lvl := range low {
		assert.Less(t, lvl.CurrentQuantity, lvl.MinStock)
	}
}
