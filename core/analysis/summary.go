package analysis

import (
	"resource-economy/core/catalog"
	"resource-economy/internal/errors"
)

// Summary bundles every aggregation for reports and exports
type Summary struct {
	Resources  int               `json:"resources"`
	Prices     []PriceEntry      `json:"prices"`
	Seasonal   *Matrix           `json:"seasonal"`
	Volatility []VolatilityEntry `json:"volatility"`
	Events     *Matrix           `json:"events,omitempty"`
	Cities     []*CitySeries     `json:"cities"`
	Timeline   *Timeline         `json:"timeline,omitempty"`
}

// Summarize runs every builder. Empty results leave the matching field
// nil; any other failure aborts.
func Summarize(cat *catalog.Catalog, table *catalog.SeasonTable) (*Summary, error) {
	s := &Summary{Resources: cat.Len()}

	var err error
	if s.Prices, err = SortByPrice(cat); err != nil {
		return nil, err
	}
	if s.Seasonal, err = SeasonalMultipliers(cat); err != nil {
		return nil, err
	}
	if s.Volatility, err = Volatility(cat); err != nil {
		return nil, err
	}
	if s.Events, err = EventImpact(cat); err != nil && !errors.IsType(err, errors.TypeEmptyResult) {
		return nil, err
	}
	if s.Cities, err = AllCitySeries(cat, table); err != nil {
		return nil, err
	}
	if s.Timeline, err = BiomeTimeline(cat); err != nil && !errors.IsType(err, errors.TypeEmptyResult) {
		return nil, err
	}

	return s, nil
}
