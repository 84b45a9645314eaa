package domain

import (
	"fmt"
	"time"
)

// Invoice is created exactly once per successful confirm and never
// mutated afterwards.
type Invoice struct {
	ID             int64
	Seq            int64
	InvoiceNumber  string
	OutletID       int64
	TotalAmount    Money
	DiscountAmount Money
	FinalAmount    Money
	Notes          string
	CreatedAt      time.Time
	Items          []InvoiceItem
}

type InvoiceItem struct {
	ID           int64
	InvoiceID    int64
	ProductID    int64
	ProductCode  string
	ProductName  string
	Quantity     int
	UnitPrice    Money
	Discount     Money
	LineTotal    Money
	OfferApplied *string
}

// FormatInvoiceNumber renders the sequence allocated inside the confirm
// transaction. Zero padding keeps lexical order equal to numeric order.
func FormatInvoiceNumber(seq int64) string {
	return fmt.Sprintf("INV%08d", seq)
}
