package pricing

import (
	"github.com/shopspring/decimal"

	"resource-economy/core/types"
)

// Scenarios lists the quotes the range analysis considers for r: every
// canonical season with no events, then every event the resource has a
// modifier for crossed with every canonical season. The unadjusted
// no-season price is never a scenario.
func Scenarios(r *types.Resource) ([]types.PriceQuote, error) {
	quotes := make([]types.PriceQuote, 0, len(types.Seasons)*(1+len(r.EventModifiers)))

	for _, season := range types.Seasons {
		q, err := Quote(r, season, nil)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	for _, event := range r.EventNames() {
		for _, season := range types.Seasons {
			q, err := Quote(r, season, []string{event})
			if err != nil {
				return nil, err
			}
			quotes = append(quotes, q)
		}
	}

	return quotes, nil
}

// PriceRange returns the lowest and highest price across Scenarios
func PriceRange(r *types.Resource) (min, max decimal.Decimal, err error) {
	quotes, err := Scenarios(r)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	min, max = quotes[0].Price, quotes[0].Price
	for _, q := range quotes[1:] {
		if q.Price.LessThan(min) {
			min = q.Price
		}
		if q.Price.GreaterThan(max) {
			max = q.Price
		}
	}
	return min, max, nil
}
