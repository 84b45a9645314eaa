package domain

import (
	"fmt"
	"time"
)

type OfferType string

const (
	OfferBuyXGetY   OfferType = "BUY_X_GET_Y"
	OfferPercentage OfferType = "PERCENTAGE"
	OfferFlat       OfferType = "FLAT"
)

// Offer is an already-persisted promotion read from offer authoring.
// Percentage discounts are stored as basis points so the engine never
// touches floating point.
type Offer struct {
	ID           int64
	ProductID    int64 // internal product id, not the SPN code
	Type         OfferType
	XQuantity    int
	YQuantity    int
	DiscountBps  int
	DiscountFlat Money
	StartDate    time.Time // inclusive, midnight UTC
	EndDate      time.Time // inclusive, midnight UTC
	IsActive     bool
}

// Validate checks the variant-specific fields. Offers are validated when
// loaded, so pricing can assume a well-formed variant.
func (o Offer) Validate() error {
	switch o.Type {
	case OfferBuyXGetY:
		if o.XQuantity < 1 || o.YQuantity < 1 {
			return fmt.Errorf("offer %d: x_quantity and y_quantity must be >= 1", o.ID)
		}
	case OfferPercentage:
		if o.DiscountBps < 0 || o.DiscountBps > 10000 {
			return fmt.Errorf("offer %d: discount_percent must be between 0 and 100", o.ID)
		}
	case OfferFlat:
		if o.DiscountFlat < 0 {
			return fmt.Errorf("offer %d: discount_flat must be >= 0", o.ID)
		}
	default:
		return fmt.Errorf("offer %d: unknown offer type %q", o.ID, o.Type)
	}
	if o.EndDate.Before(o.StartDate) {
		return fmt.Errorf("offer %d: end_date before start_date", o.ID)
	}
	return nil
}

// ActiveOn reports whether the offer is in force on the given calendar
// day. Both date bounds are inclusive and the kill switch wins over the
// date range.
func (o Offer) ActiveOn(day time.Time) bool {
	d := DateOf(day)
	return o.IsActive && !d.Before(o.StartDate) && !d.After(o.EndDate)
}

// Label is the human-readable description shown on the bill. Purely
// descriptive; totals never depend on it.
func (o Offer) Label() string {
	switch o.Type {
	case OfferBuyXGetY:
		return fmt.Sprintf("Buy %d Get %d Free", o.XQuantity, o.YQuantity)
	case OfferPercentage:
		return fmt.Sprintf("%s%% Off", formatBps(o.DiscountBps))
	case OfferFlat:
		return fmt.Sprintf("₹%s Off", o.DiscountFlat)
	}
	return ""
}

func formatBps(bps int) string {
	whole := bps / 100
	frac := bps % 100
	switch {
	case frac == 0:
		return fmt.Sprintf("%d", whole)
	case frac%10 == 0:
		return fmt.Sprintf("%d.%d", whole, frac/10)
	default:
		return fmt.Sprintf("%d.%02d", whole, frac)
	}
}

// DateOf truncates a timestamp to its UTC calendar day, the granularity
// at which offer windows are evaluated.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
