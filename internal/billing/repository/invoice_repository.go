package repository

import (
	"context"
	"database/sql"
	"fmt"

	"smaug/internal/domain"
)

type MySQLInvoiceRepository struct {
	db *sql.DB
}

func NewMySQLInvoiceRepository(db *sql.DB) *MySQLInvoiceRepository {
	return &MySQLInvoiceRepository{db: db}
}

// NextSeq allocates the next invoice sequence value inside the confirm
// transaction. The single-statement upsert makes the increment atomic on
// the counter row, so concurrent confirms can never read the same value
// and the sequence never goes backward.
func (r *MySQLInvoiceRepository) NextSeq(ctx context.Context, tx *sql.Tx) (int64, error) {
	query := `
		INSERT INTO invoice_sequences (name, value)
		VALUES ('invoice', LAST_INSERT_ID(1))
		ON DUPLICATE KEY UPDATE value = LAST_INSERT_ID(value + 1)
	`

	result, err := tx.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("allocating invoice sequence: %w", err)
	}

	seq, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading allocated invoice sequence: %w", err)
	}

	return seq, nil
}

// Insert persists the invoice and its items. The record is immutable
// after commit; nothing in this service ever updates or deletes it.
func (r *MySQLInvoiceRepository) Insert(ctx context.Context, tx *sql.Tx, invoice *domain.Invoice) error {
	query := `
		INSERT INTO invoices (invoice_seq, invoice_number, outlet_id, total_amount,
		                      discount_amount, final_amount, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		invoice.Seq, invoice.InvoiceNumber, invoice.OutletID,
		int64(invoice.TotalAmount), int64(invoice.DiscountAmount), int64(invoice.FinalAmount),
		invoice.Notes, invoice.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting invoice: %w", err)
	}

	invoiceID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting invoice id: %w", err)
	}
	invoice.ID = invoiceID

	itemQuery := `
		INSERT INTO invoice_items (invoice_id, product_id, product_code, product_name,
		                           quantity, unit_price, discount, line_total, offer_applied)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	for i := range invoice.Items {
		item := &invoice.Items[i]
		item.InvoiceID = invoiceID

		result, err := tx.ExecContext(ctx, itemQuery,
			item.InvoiceID, item.ProductID, item.ProductCode, item.ProductName,
			item.Quantity, int64(item.UnitPrice), int64(item.Discount), int64(item.LineTotal),
			item.OfferApplied,
		)
		if err != nil {
			return fmt.Errorf("inserting invoice item: %w", err)
		}

		itemID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting invoice item id: %w", err)
		}
		item.ID = itemID
	}

	return nil
}
