package analysis

import (
	"sort"

	"github.com/shopspring/decimal"

	"resource-economy/core/catalog"
	"resource-economy/core/pricing"
	"resource-economy/core/types"
	"resource-economy/internal/errors"
)

// NonLocalMarkup is the price factor in biomes where a resource is not native
var NonLocalMarkup = decimal.RequireFromString("1.2")

// MonthsPerYear is the length of the default calendar
const MonthsPerYear = 12

// BiomeLine is the monthly price of the timeline resource in one biome
type BiomeLine struct {
	Biome  types.Biome       `json:"biome"`
	Local  bool              `json:"local"`
	Prices []decimal.Decimal `json:"prices"`
}

// Timeline tracks the cheapest food across the default twelve-month
// calendar in every biome.
type Timeline struct {
	Resource    string        `json:"resource"`
	LocalBiomes []types.Biome `json:"local_biomes"`
	Months      []int         `json:"months"`
	Lines       []BiomeLine   `json:"lines"`
}

// BiomeTimeline picks the cheapest food resource (first in catalog order on
// ties) and prices it for each month of the default calendar in every
// biome, marked up by NonLocalMarkup where it is not native. No food in
// the catalog yields an empty-result error.
func BiomeTimeline(cat *catalog.Catalog) (*Timeline, error) {
	var foods []*types.Resource
	for _, r := range cat.Resources() {
		if r.Category == types.CategoryFood {
			if _, err := basePrice(r); err != nil {
				return nil, err
			}
			foods = append(foods, r)
		}
	}
	if len(foods) == 0 {
		return nil, errors.EmptyResult("no food resources found")
	}

	sort.SliceStable(foods, func(i, j int) bool {
		return foods[i].BasePrice.Decimal.LessThan(foods[j].BasePrice.Decimal)
	})
	food := foods[0]

	tl := &Timeline{
		Resource:    food.Name,
		LocalBiomes: food.LocalBiomes,
		Months:      make([]int, MonthsPerYear),
	}
	for i := range tl.Months {
		tl.Months[i] = i + 1
	}

	for _, biome := range types.Biomes {
		line := BiomeLine{
			Biome:  biome,
			Local:  food.NativeTo(biome),
			Prices: make([]decimal.Decimal, 0, MonthsPerYear),
		}
		for _, month := range tl.Months {
			price, err := pricing.Calculate(food, types.SeasonForMonth(month), nil)
			if err != nil {
				return nil, err
			}
			if !line.Local {
				price = price.Mul(NonLocalMarkup)
			}
			line.Prices = append(line.Prices, price)
		}
		tl.Lines = append(tl.Lines, line)
	}

	return tl, nil
}
