package dto

import (
	"time"

	"smaug/internal/domain"
)

type InvoiceConfirmRequest struct {
	Items    []BillItemInput `json:"items"`
	OutletID int64           `json:"outlet_id"`
	Notes    string          `json:"notes"`
}

type InvoiceResponse struct {
	ID             int64        `json:"id"`
	InvoiceNumber  string       `json:"invoice_number"`
	TotalAmount    domain.Money `json:"total_amount"`
	DiscountAmount domain.Money `json:"discount_amount"`
	FinalAmount    domain.Money `json:"final_amount"`
	CreatedAt      time.Time    `json:"created_at"`
	Items          []PricedLine `json:"items"`
}
