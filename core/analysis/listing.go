// Package analysis shapes catalog data into the aggregations the charts
// and reports consume. Every builder is a pure function of its inputs.
package analysis

import (
	"sort"

	"github.com/shopspring/decimal"

	"resource-economy/core/catalog"
	"resource-economy/core/types"
	"resource-economy/internal/errors"
)

// PriceEntry is one row of the price overview
type PriceEntry struct {
	Name      string          `json:"name"`
	Category  types.Category  `json:"category"`
	BasePrice decimal.Decimal `json:"base_price"`
}

// SortByPrice lists resources ascending by base price. Equal prices keep
// catalog order.
func SortByPrice(cat *catalog.Catalog) ([]PriceEntry, error) {
	entries := make([]PriceEntry, 0, cat.Len())
	for _, r := range cat.Resources() {
		base, err := basePrice(r)
		if err != nil {
			return nil, err
		}
		entries = append(entries, PriceEntry{
			Name:      r.Name,
			Category:  r.Category,
			BasePrice: base,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].BasePrice.LessThan(entries[j].BasePrice)
	})

	return entries, nil
}

func basePrice(r *types.Resource) (decimal.Decimal, error) {
	if !r.BasePrice.Valid {
		return decimal.Zero, errors.MissingField(r.Name, "base_price")
	}
	return r.BasePrice.Decimal, nil
}
