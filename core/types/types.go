// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions and
// the fixed lookup tables of the game world.
package types

import "strings"

// Season is a quarter of the game calendar. The zero value means "no season".
type Season string

const (
	SeasonNone   Season = ""
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// Seasons is the canonical global season order
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// MonthsPerSeason is the number of months (turns) each season spans
const MonthsPerSeason = 3

// String returns the string representation of the season
func (s Season) String() string {
	return string(s)
}

// Title returns the display name ("Spring")
func (s Season) Title() string {
	return Title(string(s))
}

// IsValid checks if the season is one of the canonical seasons
func (s Season) IsValid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter:
		return true
	default:
		return false
	}
}

// ParseSeason converts a name into a canonical season
func ParseSeason(name string) (Season, bool) {
	s := Season(strings.ToLower(strings.TrimSpace(name)))
	return s, s.IsValid()
}

// SeasonForMonth maps a 1-based month to its season in the default calendar
func SeasonForMonth(month int) Season {
	if month < 1 || month > len(Seasons)*MonthsPerSeason {
		return SeasonNone
	}
	return Seasons[(month-1)/MonthsPerSeason]
}

// Biome is a geographic category with its own season ordering
type Biome string

const (
	BiomeWarm     Biome = "warm"
	BiomeCoastal  Biome = "coastal"
	BiomeCold     Biome = "cold"
	BiomeSteppe   Biome = "steppe"
	BiomeMountain Biome = "mountain"
)

// Biomes lists every biome in display order
var Biomes = []Biome{BiomeWarm, BiomeCoastal, BiomeCold, BiomeSteppe, BiomeMountain}

// String returns the string representation of the biome
func (b Biome) String() string {
	return string(b)
}

// Title returns the display name ("Coastal")
func (b Biome) Title() string {
	return Title(string(b))
}

// IsValid checks if the biome is known
func (b Biome) IsValid() bool {
	for _, known := range Biomes {
		if b == known {
			return true
		}
	}
	return false
}

// Category classifies a resource
type Category string

const (
	CategoryFood      Category = "food"
	CategoryLuxury    Category = "luxury"
	CategoryMaterial  Category = "material"
	CategoryTradeGood Category = "trade_good"
	CategoryWeapon    Category = "weapon"
	CategoryCrafted   Category = "crafted"
)

// Categories lists every category in legend order
var Categories = []Category{
	CategoryFood,
	CategoryLuxury,
	CategoryMaterial,
	CategoryTradeGood,
	CategoryWeapon,
	CategoryCrafted,
}

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// Title returns the display name ("Trade Good")
func (c Category) Title() string {
	return Title(string(c))
}

// IsValid checks if the category is known
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Title turns snake_case and kebab-case identifiers into capitalized words
func Title(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
