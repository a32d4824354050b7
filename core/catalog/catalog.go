// Package catalog - Resource catalog and biome season table
// Holds the loaded game data in document order. This is the source of
// truth for every price computation and aggregation.
package catalog

import (
	"resource-economy/core/types"
)

// Catalog is the ordered set of resources loaded from the resource file.
// Iteration order is the order of keys in the source document.
type Catalog struct {
	names   []string
	entries map[string]*types.Resource
}

// NewCatalog creates a new catalog
func NewCatalog() *Catalog {
	return &Catalog{
		entries: make(map[string]*types.Resource),
	}
}

// Register adds a resource to the catalog. Registering an existing name
// replaces the entry but keeps its position.
func (c *Catalog) Register(r *types.Resource) {
	if _, exists := c.entries[r.Name]; !exists {
		c.names = append(c.names, r.Name)
	}
	c.entries[r.Name] = r
}

// Get returns a resource by name
func (c *Catalog) Get(name string) (*types.Resource, bool) {
	r, ok := c.entries[name]
	return r, ok
}

// Len returns the number of resources
func (c *Catalog) Len() int {
	return len(c.names)
}

// Names returns resource names in catalog order
func (c *Catalog) Names() []string {
	result := make([]string, len(c.names))
	copy(result, c.names)
	return result
}

// Resources returns resources in catalog order
func (c *Catalog) Resources() []*types.Resource {
	result := make([]*types.Resource, len(c.names))
	for i, name := range c.names {
		result[i] = c.entries[name]
	}
	return result
}

// Stats returns catalog statistics
func (c *Catalog) Stats() CatalogStats {
	stats := CatalogStats{
		ByCategory: make(map[types.Category]int),
		ByBiome:    make(map[types.Biome]int),
	}

	events := make(map[string]struct{})
	for _, r := range c.Resources() {
		stats.Total++
		stats.ByCategory[r.Category]++
		for _, b := range r.LocalBiomes {
			stats.ByBiome[b]++
		}
		for _, e := range r.EventNames() {
			events[e] = struct{}{}
		}
	}
	stats.Events = len(events)

	return stats
}

// CatalogStats holds catalog statistics
type CatalogStats struct {
	Total      int
	Events     int
	ByCategory map[types.Category]int
	ByBiome    map[types.Biome]int
}

// SeasonTable maps biomes to their own ordered season calendar
type SeasonTable struct {
	biomes    []types.Biome
	sequences map[types.Biome][]types.Season
}

// NewSeasonTable creates an empty table
func NewSeasonTable() *SeasonTable {
	return &SeasonTable{
		sequences: make(map[types.Biome][]types.Season),
	}
}

// Set assigns a season sequence to a biome
func (t *SeasonTable) Set(biome types.Biome, sequence []types.Season) {
	if _, exists := t.sequences[biome]; !exists {
		t.biomes = append(t.biomes, biome)
	}
	seq := make([]types.Season, len(sequence))
	copy(seq, sequence)
	t.sequences[biome] = seq
}

// Sequence returns the biome's season sequence, or the canonical order
// when the biome has no custom (non-empty) sequence.
func (t *SeasonTable) Sequence(biome types.Biome) []types.Season {
	var seq []types.Season
	if t != nil {
		seq = t.sequences[biome]
	}
	if len(seq) == 0 {
		seq = types.Seasons
	}
	result := make([]types.Season, len(seq))
	copy(result, seq)
	return result
}

// HasCustom reports whether the biome carries its own sequence
func (t *SeasonTable) HasCustom(biome types.Biome) bool {
	return t != nil && len(t.sequences[biome]) > 0
}

// Biomes returns the biomes present in the table in document order
func (t *SeasonTable) Biomes() []types.Biome {
	result := make([]types.Biome, len(t.biomes))
	copy(result, t.biomes)
	return result
}

// Len returns the number of biomes with an entry
func (t *SeasonTable) Len() int {
	return len(t.biomes)
}
