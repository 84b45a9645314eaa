package pricing

import (
	"time"

	"smaug/internal/domain"
)

// Resolve selects the single offer in force for a product on the given
// day. Eligible offers are active and have asOf inside their inclusive
// date window. When several are eligible the latest start_date wins;
// remaining ties go to the lowest offer id, so resolution is
// deterministic regardless of input order.
func Resolve(offers []domain.Offer, asOf time.Time) *domain.Offer {
	var current *domain.Offer
	for i := range offers {
		o := &offers[i]
		if !o.ActiveOn(asOf) {
			continue
		}
		switch {
		case current == nil:
			current = o
		case o.StartDate.After(current.StartDate):
			current = o
		case o.StartDate.Equal(current.StartDate) && o.ID < current.ID:
			current = o
		}
	}
	return current
}
