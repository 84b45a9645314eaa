package domain

import "time"

// Product is a read-only catalog snapshot. The core prices against it but
// never writes it; catalog authoring lives elsewhere.
type Product struct {
	ID           int64
	ProductID    string // SPN code printed on the barcode label
	Name         string
	Category     string
	CostPrice    Money
	MRP          Money
	SellingPrice Money
	MinStock     int
	CreatedAt    time.Time
}
