package catalog

import (
	"time"

	"smaug/internal/domain"
)

type ProductDTO struct {
	ID           int64        `json:"id"`
	ProductID    string       `json:"product_id"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	CostPrice    domain.Money `json:"cost_price"`
	MRP          domain.Money `json:"mrp"`
	SellingPrice domain.Money `json:"selling_price"`
	MinStock     int          `json:"min_stock"`
	CreatedAt    time.Time    `json:"created_at"`
}

type OfferDTO struct {
	ID              int64         `json:"id"`
	ProductID       int64         `json:"product_id"`
	OfferType       string        `json:"offer_type"`
	XQuantity       *int          `json:"x_quantity"`
	YQuantity       *int          `json:"y_quantity"`
	DiscountPercent *float64      `json:"discount_percent"`
	DiscountFlat    *domain.Money `json:"discount_flat"`
	StartDate       string        `json:"start_date"`
	EndDate         string        `json:"end_date"`
	IsActive        bool          `json:"is_active"`
	Label           string        `json:"label"`
}

func productDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID,
		ProductID:    p.ProductID,
		Name:         p.Name,
		Category:     p.Category,
		CostPrice:    p.CostPrice,
		MRP:          p.MRP,
		SellingPrice: p.SellingPrice,
		MinStock:     p.MinStock,
		CreatedAt:    p.CreatedAt,
	}
}

func offerDTO(o domain.Offer) OfferDTO {
	out := OfferDTO{
		ID:        o.ID,
		ProductID: o.ProductID,
		OfferType: string(o.Type),
		StartDate: o.StartDate.Format("2006-01-02"),
		EndDate:   o.EndDate.Format("2006-01-02"),
		IsActive:  o.IsActive,
		Label:     o.Label(),
	}

	switch o.Type {
	case domain.OfferBuyXGetY:
		x, y := o.XQuantity, o.YQuantity
		out.XQuantity = &x
		out.YQuantity = &y
	case domain.OfferPercentage:
		// display only; the engine never computes with this float
		percent := float64(o.DiscountBps) / 100
		out.DiscountPercent = &percent
	case domain.OfferFlat:
		flat := o.DiscountFlat
		out.DiscountFlat = &flat
	}
	return out
}
