package dto

import "smaug/internal/domain"

// BillItemInput is one cart line as the frontend sends it: an SPN product
// code and a quantity. Cart lines have no identity of their own.
type BillItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// PricedLine is the priced form of a cart line. UnitPrice stays the
// nominal selling price even under BUY_X_GET_Y; the free-unit value is
// carried entirely by Discount so that
// line_total = unit_price*quantity - discount always holds.
type PricedLine struct {
	ProductID    string       `json:"product_id"`
	ProductName  string       `json:"product_name"`
	Quantity     int          `json:"quantity"`
	UnitPrice    domain.Money `json:"unit_price"`
	Discount     domain.Money `json:"discount"`
	LineTotal    domain.Money `json:"line_total"`
	OfferApplied *string      `json:"offer_applied"`
}

type BillPreview struct {
	Items         []PricedLine `json:"items"`
	Subtotal      domain.Money `json:"subtotal"`
	TotalDiscount domain.Money `json:"total_discount"`
	FinalTotal    domain.Money `json:"final_total"`
}
