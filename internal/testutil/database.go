package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration test database. Tests that need it
// skip when MySQL is not reachable, so the suite still passes on
// machines without a local server.
// Expects a MySQL database named 'smaug_test' on localhost:3306.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/smaug_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB wipes test data. Child tables first.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{
		"invoice_items", "invoices", "invoice_sequences",
		"stock", "barcodes", "offers", "products", "outlets",
	}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema used by the integration tests.
// Money columns are BIGINT minor units, matching what the repositories
// read and write.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createProductsTable := `
	CREATE TABLE IF NOT EXISTS products (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		product_id VARCHAR(64) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL,
		category VARCHAR(100),
		cost_price BIGINT NOT NULL,
		mrp BIGINT NOT NULL,
		selling_price BIGINT NOT NULL,
		min_stock INT NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_product_code (product_id)
	)`

	createBarcodesTable := `
	CREATE TABLE IF NOT EXISTS barcodes (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		product_id BIGINT NOT NULL,
		barcode_value VARCHAR(64) NOT NULL UNIQUE,
		FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE,
		INDEX idx_barcode_value (barcode_value)
	)`

	createOffersTable := `
	CREATE TABLE IF NOT EXISTS offers (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		product_id BIGINT NOT NULL,
		offer_type VARCHAR(20) NOT NULL,
		x_quantity INT,
		y_quantity INT,
		discount_bps INT,
		discount_flat BIGINT,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE,
		INDEX idx_offer_product (product_id)
	)`

	createOutletsTable := `
	CREATE TABLE IF NOT EXISTS outlets (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		is_active TINYINT(1) NOT NULL DEFAULT 1
	)`

	createStockTable := `
	CREATE TABLE IF NOT EXISTS stock (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		product_id BIGINT NOT NULL,
		outlet_id BIGINT NOT NULL,
		quantity INT NOT NULL DEFAULT 0,
		UNIQUE KEY uq_product_outlet (product_id, outlet_id),
		FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE,
		FOREIGN KEY (outlet_id) REFERENCES outlets(id) ON DELETE CASCADE
	)`

	createInvoiceSequencesTable := `
	CREATE TABLE IF NOT EXISTS invoice_sequences (
		name VARCHAR(32) NOT NULL PRIMARY KEY,
		value BIGINT NOT NULL
	)`

	createInvoicesTable := `
	CREATE TABLE IF NOT EXISTS invoices (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		invoice_seq BIGINT NOT NULL UNIQUE,
		invoice_number VARCHAR(20) NOT NULL UNIQUE,
		outlet_id BIGINT NOT NULL,
		total_amount BIGINT NOT NULL,
		discount_amount BIGINT NOT NULL,
		final_amount BIGINT NOT NULL,
		notes TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (outlet_id) REFERENCES outlets(id)
	)`

	createInvoiceItemsTable := `
	CREATE TABLE IF NOT EXISTS invoice_items (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		invoice_id BIGINT NOT NULL,
		product_id BIGINT NOT NULL,
		product_code VARCHAR(64) NOT NULL,
		product_name VARCHAR(255) NOT NULL,
		quantity INT NOT NULL,
		unit_price BIGINT NOT NULL,
		discount BIGINT NOT NULL,
		line_total BIGINT NOT NULL,
		offer_applied VARCHAR(100),
		FOREIGN KEY (invoice_id) REFERENCES invoices(id) ON DELETE CASCADE,
		INDEX idx_item_invoice (invoice_id)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"products", createProductsTable},
		{"barcodes", createBarcodesTable},
		{"offers", createOffersTable},
		{"outlets", createOutletsTable},
		{"stock", createStockTable},
		{"invoice_sequences", createInvoiceSequencesTable},
		{"invoices", createInvoicesTable},
		{"invoice_items", createInvoiceItemsTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
