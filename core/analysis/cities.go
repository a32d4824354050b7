package analysis

import (
	"github.com/shopspring/decimal"

	"resource-economy/core/catalog"
	"resource-economy/core/pricing"
	"resource-economy/core/types"
)

// SeriesPoint is the price at one position of a biome's season sequence
type SeriesPoint struct {
	Position int             `json:"position"`
	Season   types.Season    `json:"season"`
	Price    decimal.Decimal `json:"price"`
}

// Series is the seasonal price line of one resource
type Series struct {
	Resource string         `json:"resource"`
	Category types.Category `json:"category"`
	Points   []SeriesPoint  `json:"points"`
}

// CitySeries holds the seasonal price lines for the resources native to a
// city's biome. Points are keyed by position, since a custom sequence may
// repeat or omit seasons.
type CitySeries struct {
	City     types.City     `json:"city"`
	Sequence []types.Season `json:"sequence"`
	Series   []Series       `json:"series"`
}

// Empty reports whether no resource is native to the city's biome
func (c *CitySeries) Empty() bool {
	return len(c.Series) == 0
}

// BuildCitySeries prices every resource native to the city's biome at each
// position of the biome's season sequence, with no events active. A biome
// with no native resources yields an empty CitySeries, not an error.
func BuildCitySeries(cat *catalog.Catalog, table *catalog.SeasonTable, city types.City) (*CitySeries, error) {
	cs := &CitySeries{
		City:     city,
		Sequence: table.Sequence(city.Biome),
		Series:   []Series{},
	}

	for _, r := range cat.Resources() {
		if !r.NativeTo(city.Biome) {
			continue
		}
		s := Series{
			Resource: r.Name,
			Category: r.Category,
			Points:   make([]SeriesPoint, 0, len(cs.Sequence)),
		}
		for pos, season := range cs.Sequence {
			price, err := pricing.Calculate(r, season, nil)
			if err != nil {
				return nil, err
			}
			s.Points = append(s.Points, SeriesPoint{Position: pos, Season: season, Price: price})
		}
		cs.Series = append(cs.Series, s)
	}

	return cs, nil
}

// AllCitySeries builds the series for every city in the fixed city table
func AllCitySeries(cat *catalog.Catalog, table *catalog.SeasonTable) ([]*CitySeries, error) {
	result := make([]*CitySeries, 0, len(types.Cities))
	for _, city := range types.Cities {
		cs, err := BuildCitySeries(cat, table, city)
		if err != nil {
			return nil, err
		}
		result = append(result, cs)
	}
	return result, nil
}
