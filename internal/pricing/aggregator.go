package pricing

import (
	"smaug/internal/domain"
	"smaug/internal/dto"
)

// Aggregate reduces priced lines to the bill totals. Sums are exact
// integer arithmetic on minor units; line order is preserved for display.
// An empty cart is a valid all-zero preview, not an error.
func Aggregate(lines []dto.PricedLine) dto.BillPreview {
	preview := dto.BillPreview{Items: make([]dto.PricedLine, 0, len(lines))}
	for _, line := range lines {
		preview.Items = append(preview.Items, line)
		preview.Subtotal += line.UnitPrice * domain.Money(line.Quantity)
		preview.TotalDiscount += line.Discount
	}
	preview.FinalTotal = preview.Subtotal - preview.TotalDiscount
	return preview
}
