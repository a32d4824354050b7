// Package types - Fixed world tables
package types

import "strings"

// City is a trading post located in a biome
type City struct {
	Name  string `json:"name"`
	Biome Biome  `json:"biome"`
}

// Cities is the fixed city table, in chart order
var Cities = []City{
	{Name: "Draugaholt", Biome: BiomeCold},
	{Name: "Yalanga", Biome: BiomeWarm},
	{Name: "Corvienne", Biome: BiomeCoastal},
	{Name: "Tenzura", Biome: BiomeSteppe},
	{Name: "Meiyara", Biome: BiomeWarm},
}

// CityNames returns the names of all cities in table order
func CityNames() []string {
	names := make([]string, len(Cities))
	for i, c := range Cities {
		names[i] = c.Name
	}
	return names
}

// LookupCity finds a city by case-insensitive name
func LookupCity(name string) (City, bool) {
	for _, c := range Cities {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return City{}, false
}

// FallbackColor is used for categories without an assigned color
const FallbackColor = "#888888"

// CategoryColors maps categories to chart colors
var CategoryColors = map[Category]string{
	CategoryFood:      "#8BC34A",
	CategoryLuxury:    "#9C27B0",
	CategoryMaterial:  "#795548",
	CategoryTradeGood: "#FF9800",
	CategoryWeapon:    "#F44336",
	CategoryCrafted:   "#2196F3",
}

// BiomeColors maps biomes to chart colors
var BiomeColors = map[Biome]string{
	BiomeWarm:     "#FF6B6B",
	BiomeCoastal:  "#4ECDC4",
	BiomeCold:     "#95E1D3",
	BiomeSteppe:   "#F38181",
	BiomeMountain: "#AA96DA",
}

// SeasonColors maps seasons to chart colors
var SeasonColors = map[Season]string{
	SeasonSpring: "#7BC96F",
	SeasonSummer: "#F9D56E",
	SeasonFall:   "#E8997E",
	SeasonWinter: "#9ECDEC",
}

// ColorForCategory returns the category color or the fallback
func ColorForCategory(c Category) string {
	if hex, ok := CategoryColors[c]; ok {
		return hex
	}
	return FallbackColor
}
