package pricing

import (
	"smaug/internal/domain"
	"smaug/internal/dto"
)

// PriceLine computes one cart line. The reported unit price is always the
// nominal selling price; offers only ever move the discount. The discount
// is clamped so the line total can never go negative.
func PriceLine(p domain.Product, quantity int, offer *domain.Offer) dto.PricedLine {
	base := p.SellingPrice * domain.Money(quantity)
	line := dto.PricedLine{
		ProductID:   p.ProductID,
		ProductName: p.Name,
		Quantity:    quantity,
		UnitPrice:   p.SellingPrice,
		LineTotal:   base,
	}

	if offer == nil {
		return line
	}

	var discount domain.Money
	switch offer.Type {
	case domain.OfferBuyXGetY:
		discount = domain.Money(freeUnits(quantity, offer.XQuantity, offer.YQuantity)) * p.SellingPrice
	case domain.OfferPercentage:
		// round half up on minor units
		discount = domain.Money((int64(base)*int64(offer.DiscountBps) + 5000) / 10000)
	case domain.OfferFlat:
		discount = offer.DiscountFlat
	}

	if discount < 0 {
		discount = 0
	}
	if discount > base {
		discount = base
	}

	label := offer.Label()
	line.OfferApplied = &label
	line.Discount = discount
	line.LineTotal = base - discount
	return line
}

// freeUnits counts the units given away by a buy-x-get-y offer: y free
// units per complete group of x+y, plus whatever part of a trailing
// partial group extends past its x paid units.
func freeUnits(quantity, x, y int) int {
	group := x + y
	free := (quantity / group) * y
	if extra := quantity%group - x; extra > 0 {
		if extra > y {
			extra = y
		}
		free += extra
	}
	if free > quantity {
		free = quantity
	}
	return free
}
