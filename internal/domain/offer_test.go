package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOfferValidate(t *testing.T) {
	valid := Offer{
		ID:        1,
		Type:      OfferBuyXGetY,
		XQuantity: 2,
		YQuantity: 1,
		StartDate: date(2026, 1, 1),
		EndDate:   date(2026, 1, 31),
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid offer, got %v", err)
	}

	cases := []struct {
		name  string
		offer Offer
	}{
		{"zero x quantity", Offer{ID: 2, Type: OfferBuyXGetY, XQuantity: 0, YQuantity: 1, StartDate: date(2026, 1, 1), EndDate: date(2026, 1, 31)}},
		{"percent above 100", Offer{ID: 3, Type: OfferPercentage, DiscountBps: 10001, StartDate: date(2026, 1, 1), EndDate: date(2026, 1, 31)}},
		{"negative flat", Offer{ID: 4, Type: OfferFlat, DiscountFlat: -1, StartDate: date(2026, 1, 1), EndDate: date(2026, 1, 31)}},
		{"unknown type", Offer{ID: 5, Type: "BOGOF", StartDate: date(2026, 1, 1), EndDate: date(2026, 1, 31)}},
		{"inverted window", Offer{ID: 6, Type: OfferFlat, DiscountFlat: 100, StartDate: date(2026, 2, 1), EndDate: date(2026, 1, 1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.offer.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestOfferActiveOnInclusiveBounds(t *testing.T) {
	offer := Offer{
		Type:      OfferFlat,
		IsActive:  true,
		StartDate: date(2026, 3, 1),
		EndDate:   date(2026, 3, 31),
	}

	if !offer.ActiveOn(date(2026, 3, 1)) {
		t.Errorf("start date should be inclusive")
	}
	if !offer.ActiveOn(date(2026, 3, 31)) {
		t.Errorf("end date should be inclusive")
	}
	if !offer.ActiveOn(time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("time of day must not matter")
	}
	if offer.ActiveOn(date(2026, 4, 1)) {
		t.Errorf("offer should be expired the day after end_date")
	}
	if offer.ActiveOn(date(2026, 2, 28)) {
		t.Errorf("offer should not be active before start_date")
	}
}

func TestOfferActiveOnKillSwitch(t *testing.T) {
	offer := Offer{
		Type:      OfferFlat,
		IsActive:  false,
		StartDate: date(2026, 3, 1),
		EndDate:   date(2026, 3, 31),
	}

	if offer.ActiveOn(date(2026, 3, 15)) {
		t.Errorf("inactive offer must never apply, even inside its window")
	}
}

func TestOfferLabel(t *testing.T) {
	cases := []struct {
		offer Offer
		want  string
	}{
		{Offer{Type: OfferBuyXGetY, XQuantity: 1, YQuantity: 1}, "Buy 1 Get 1 Free"},
		{Offer{Type: OfferBuyXGetY, XQuantity: 2, YQuantity: 1}, "Buy 2 Get 1 Free"},
		{Offer{Type: OfferPercentage, DiscountBps: 1000}, "10% Off"},
		{Offer{Type: OfferPercentage, DiscountBps: 1250}, "12.5% Off"},
		{Offer{Type: OfferPercentage, DiscountBps: 1275}, "12.75% Off"},
		{Offer{Type: OfferFlat, DiscountFlat: 5000}, "₹50.00 Off"},
	}

	for _, tc := range cases {
		if got := tc.offer.Label(); got != tc.want {
			t.Errorf("Label() = %q, want %q", got, tc.want)
		}
	}
}

func TestFormatInvoiceNumber(t *testing.T) {
	if got := FormatInvoiceNumber(42); got != "INV00000042" {
		t.Errorf("expected INV00000042, got %s", got)
	}
}
