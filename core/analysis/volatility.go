package analysis

import (
	"sort"

	"github.com/shopspring/decimal"

	"resource-economy/core/catalog"
	"resource-economy/core/pricing"
	"resource-economy/core/types"
)

// VolatilityEntry is the price spread of one resource
type VolatilityEntry struct {
	Name     string          `json:"name"`
	Category types.Category  `json:"category"`
	Min      decimal.Decimal `json:"min"`
	Max      decimal.Decimal `json:"max"`
	Base     decimal.Decimal `json:"base"`
	Range    decimal.Decimal `json:"range"`
}

// HalfRange is the "±" figure shown next to a resource: range/2
// truncated toward zero.
func (v VolatilityEntry) HalfRange() int64 {
	return v.Range.Div(decimal.NewFromInt(2)).IntPart()
}

// Volatility ranks resources by price range, widest first. Equal ranges
// keep catalog order.
func Volatility(cat *catalog.Catalog) ([]VolatilityEntry, error) {
	entries := make([]VolatilityEntry, 0, cat.Len())
	for _, r := range cat.Resources() {
		min, max, err := pricing.PriceRange(r)
		if err != nil {
			return nil, err
		}
		entries = append(entries, VolatilityEntry{
			Name:     r.Name,
			Category: r.Category,
			Min:      min,
			Max:      max,
			Base:     r.BasePrice.Decimal,
			Range:    max.Sub(min),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Range.GreaterThan(entries[j].Range)
	})

	return entries, nil
}
