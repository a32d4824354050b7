// Package pricing computes resource prices for a season and a set of
// active events, and the price bounds a resource can reach.
//
// All arithmetic is exact decimal arithmetic; only the final price is
// rounded, to two places with banker's rounding (round half to even).
package pricing

import (
	"github.com/shopspring/decimal"

	"resource-economy/core/types"
	"resource-economy/internal/errors"
)

// PricePlaces is the number of decimal places a computed price keeps
const PricePlaces = 2

var (
	// FavoredMultiplier applies when the season is one the resource favors
	FavoredMultiplier = decimal.RequireFromString("0.9")

	// UnfavoredMultiplier applies in every other season
	UnfavoredMultiplier = decimal.RequireFromString("1.1")
)

// Calculate returns the price of r in the given season with the given
// events active. SeasonNone skips the seasonal adjustment. Events apply in
// input order after the seasonal adjustment; events the resource has no
// modifier for are ignored.
func Calculate(r *types.Resource, season types.Season, events []string) (decimal.Decimal, error) {
	if !r.BasePrice.Valid {
		return decimal.Zero, errors.MissingField(r.Name, "base_price")
	}

	price := r.BasePrice.Decimal

	if season != types.SeasonNone {
		if r.Favors(season) {
			price = price.Mul(FavoredMultiplier)
		} else {
			price = price.Mul(UnfavoredMultiplier)
		}
	}

	for _, event := range events {
		if m, ok := r.Modifier(event); ok {
			price = price.Mul(m)
		}
	}

	return Round(price), nil
}

// Round rounds a price to PricePlaces using round half to even
func Round(price decimal.Decimal) decimal.Decimal {
	return price.RoundBank(PricePlaces)
}

// Quote computes a price and packages it with its scenario
func Quote(r *types.Resource, season types.Season, events []string) (types.PriceQuote, error) {
	price, err := Calculate(r, season, events)
	if err != nil {
		return types.PriceQuote{}, err
	}
	active := make([]string, len(events))
	copy(active, events)
	return types.PriceQuote{
		Resource: r.Name,
		Season:   season,
		Events:   active,
		Price:    price,
	}, nil
}

// UnknownEvents returns the events the resource has no modifier for.
// They do not affect the price.
func UnknownEvents(r *types.Resource, events []string) []string {
	var unknown []string
	for _, e := range events {
		if _, ok := r.Modifier(e); !ok {
			unknown = append(unknown, e)
		}
	}
	return unknown
}
