package pricing

import (
	"testing"

	"smaug/internal/domain"
)

func testProduct(sellingPrice domain.Money) domain.Product {
	return domain.Product{
		ID:           1,
		ProductID:    "SPN00109901",
		Name:         "Soap Bar",
		SellingPrice: sellingPrice,
	}
}

func TestPriceLineNoOffer(t *testing.T) {
	line := PriceLine(testProduct(1000), 3, nil)

	if line.UnitPrice != 1000 {
		t.Errorf("unit price = %d, want 1000", line.UnitPrice)
	}
	if line.Discount != 0 {
		t.Errorf("discount = %d, want 0", line.Discount)
	}
	if line.LineTotal != 3000 {
		t.Errorf("line total = %d, want 3000", line.LineTotal)
	}
	if line.OfferApplied != nil {
		t.Errorf("offer label should be nil without an offer")
	}
}

func TestPriceLineBuyOneGetOne(t *testing.T) {
	// 5 units at 10.00 under B1G1: 2 complete pairs give 2 free units,
	// the leftover unit is paid.
	offer := &domain.Offer{Type: domain.OfferBuyXGetY, XQuantity: 1, YQuantity: 1}
	line := PriceLine(testProduct(1000), 5, offer)

	if line.UnitPrice != 1000 {
		t.Errorf("unit price must stay nominal, got %d", line.UnitPrice)
	}
	if line.Discount != 2000 {
		t.Errorf("discount = %d, want 2000", line.Discount)
	}
	if line.LineTotal != 3000 {
		t.Errorf("line total = %d, want 3000", line.LineTotal)
	}
	if line.OfferApplied == nil || *line.OfferApplied != "Buy 1 Get 1 Free" {
		t.Errorf("unexpected label %v", line.OfferApplied)
	}
}

func TestPriceLineBuyXGetYPartialGroup(t *testing.T) {
	// B2G1, 8 units: two complete groups of 3 give 2 free units; the
	// trailing 2 units are both within the paid part of their group.
	offer := &domain.Offer{Type: domain.OfferBuyXGetY, XQuantity: 2, YQuantity: 1}
	line := PriceLine(testProduct(500), 8, offer)

	if line.Discount != 1000 {
		t.Errorf("discount = %d, want 1000", line.Discount)
	}

	// B1G2, 5 units: one complete group of 3 gives 2 free units, and the
	// trailing partial group of 2 has one free unit past its single paid
	// unit.
	offer = &domain.Offer{Type: domain.OfferBuyXGetY, XQuantity: 1, YQuantity: 2}
	line = PriceLine(testProduct(500), 5, offer)

	if line.Discount != 1500 {
		t.Errorf("discount = %d, want 1500 (3 free units)", line.Discount)
	}
	if line.LineTotal != 1000 {
		t.Errorf("line total = %d, want 1000", line.LineTotal)
	}
}

func TestPriceLinePercentage(t *testing.T) {
	// 10% off 100.00 x 3 = 30.00
	offer := &domain.Offer{Type: domain.OfferPercentage, DiscountBps: 1000}
	line := PriceLine(testProduct(10000), 3, offer)

	if line.Discount != 3000 {
		t.Errorf("discount = %d, want 3000", line.Discount)
	}
	if line.LineTotal != 27000 {
		t.Errorf("line total = %d, want 27000", line.LineTotal)
	}
	if line.OfferApplied == nil || *line.OfferApplied != "10% Off" {
		t.Errorf("unexpected label %v", line.OfferApplied)
	}
}

func TestPriceLinePercentageRoundsHalfUp(t *testing.T) {
	// 25% of 0.02 is half a paisa and must round up to 0.01.
	offer := &domain.Offer{Type: domain.OfferPercentage, DiscountBps: 2500}
	line := PriceLine(testProduct(2), 1, offer)

	if line.Discount != 1 {
		t.Errorf("discount = %d, want 1 (half up)", line.Discount)
	}

	// 12.5% of 10.01 is 125.125 paise and must round down to 125.
	offer = &domain.Offer{Type: domain.OfferPercentage, DiscountBps: 1250}
	line = PriceLine(testProduct(1001), 1, offer)

	if line.Discount != 125 {
		t.Errorf("discount = %d, want 125", line.Discount)
	}
}

func TestPriceLineFlatClampsToLineValue(t *testing.T) {
	// Flat 500.00 off a 300.00 line clamps to the line value.
	offer := &domain.Offer{Type: domain.OfferFlat, DiscountFlat: 50000}
	line := PriceLine(testProduct(10000), 3, offer)

	if line.Discount != 30000 {
		t.Errorf("discount = %d, want clamped 30000", line.Discount)
	}
	if line.LineTotal != 0 {
		t.Errorf("line total = %d, want 0", line.LineTotal)
	}
}

func TestPriceLineFlatWithinLineValue(t *testing.T) {
	offer := &domain.Offer{Type: domain.OfferFlat, DiscountFlat: 2500}
	line := PriceLine(testProduct(10000), 2, offer)

	if line.Discount != 2500 {
		t.Errorf("discount = %d, want 2500", line.Discount)
	}
	if line.LineTotal != 17500 {
		t.Errorf("line total = %d, want 17500", line.LineTotal)
	}
}

func TestPriceLineNeverNegative(t *testing.T) {
	offers := []*domain.Offer{
		{Type: domain.OfferFlat, DiscountFlat: 1 << 40},
		{Type: domain.OfferPercentage, DiscountBps: 10000},
		{Type: domain.OfferBuyXGetY, XQuantity: 1, YQuantity: 10},
	}

	for _, offer := range offers {
		line := PriceLine(testProduct(999), 7, offer)
		if line.Discount < 0 {
			t.Errorf("discount went negative: %d", line.Discount)
		}
		if line.LineTotal < 0 {
			t.Errorf("line total went negative: %d", line.LineTotal)
		}
		if line.LineTotal != line.UnitPrice*domain.Money(line.Quantity)-line.Discount {
			t.Errorf("line identity broken: %+v", line)
		}
	}
}

func TestFreeUnits(t *testing.T) {
	cases := []struct {
		quantity, x, y, want int
	}{
		{5, 1, 1, 2},
		{2, 1, 1, 1},
		{1, 1, 1, 0},
		{3, 2, 1, 1},
		{8, 2, 1, 2},
		{4, 1, 2, 2},
		{5, 1, 2, 3},
		{0, 1, 1, 0},
	}

	for _, tc := range cases {
		if got := freeUnits(tc.quantity, tc.x, tc.y); got != tc.want {
			t.Errorf("freeUnits(%d, %d, %d) = %d, want %d", tc.quantity, tc.x, tc.y, got, tc.want)
		}
	}
}
