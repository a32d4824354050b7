// Package types - Resource types
package types

import (
	"github.com/shopspring/decimal"
)

// EventModifier is a named multiplicative price adjustment
type EventModifier struct {
	Event      string          `json:"event"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// Resource is a tradeable good from the catalog.
// Collections are never nil once a Resource leaves the loader.
type Resource struct {
	// Name uniquely identifies the resource in the catalog
	Name string `json:"name"`

	// BasePrice is the unmodified reference price. Valid is false when
	// the catalog entry carried no base_price.
	BasePrice decimal.NullDecimal `json:"base_price"`

	// Category classifies the resource
	Category Category `json:"category"`

	// FavoredSeasons are the seasons in which the resource is discounted
	FavoredSeasons []Season `json:"favored_season"`

	// EventModifiers in catalog order
	EventModifiers []EventModifier `json:"event_modifiers"`

	// LocalBiomes are the biomes where the resource is native
	LocalBiomes []Biome `json:"local_biomes"`

	modifiers map[string]decimal.Decimal
}

// NewResource creates a resource with empty collections
func NewResource(name string, category Category) *Resource {
	return &Resource{
		Name:           name,
		Category:       category,
		FavoredSeasons: []Season{},
		EventModifiers: []EventModifier{},
		LocalBiomes:    []Biome{},
		modifiers:      make(map[string]decimal.Decimal),
	}
}

// SetBasePrice sets the base price
func (r *Resource) SetBasePrice(price decimal.Decimal) *Resource {
	r.BasePrice = decimal.NullDecimal{Decimal: price, Valid: true}
	return r
}

// Favor marks a season as favored
func (r *Resource) Favor(seasons ...Season) *Resource {
	r.FavoredSeasons = append(r.FavoredSeasons, seasons...)
	return r
}

// AddModifier appends an event modifier. A repeated event replaces the
// earlier multiplier but keeps its original position.
func (r *Resource) AddModifier(event string, multiplier decimal.Decimal) *Resource {
	if r.modifiers == nil {
		r.modifiers = make(map[string]decimal.Decimal)
	}
	if _, exists := r.modifiers[event]; exists {
		for i := range r.EventModifiers {
			if r.EventModifiers[i].Event == event {
				r.EventModifiers[i].Multiplier = multiplier
			}
		}
	} else {
		r.EventModifiers = append(r.EventModifiers, EventModifier{Event: event, Multiplier: multiplier})
	}
	r.modifiers[event] = multiplier
	return r
}

// NativeIn marks biomes where the resource is local
func (r *Resource) NativeIn(biomes ...Biome) *Resource {
	r.LocalBiomes = append(r.LocalBiomes, biomes...)
	return r
}

// Favors checks if the season is in the favored set
func (r *Resource) Favors(season Season) bool {
	for _, s := range r.FavoredSeasons {
		if s == season {
			return true
		}
	}
	return false
}

// Modifier returns the multiplier for an event, if the resource has one
func (r *Resource) Modifier(event string) (decimal.Decimal, bool) {
	m, ok := r.modifiers[event]
	return m, ok
}

// EventNames returns the event names in catalog order
func (r *Resource) EventNames() []string {
	names := make([]string, len(r.EventModifiers))
	for i, m := range r.EventModifiers {
		names[i] = m.Event
	}
	return names
}

// NativeTo checks if the resource is local to a biome
func (r *Resource) NativeTo(biome Biome) bool {
	for _, b := range r.LocalBiomes {
		if b == biome {
			return true
		}
	}
	return false
}

// PriceQuote is a computed price for one scenario. Never persisted.
type PriceQuote struct {
	Resource string          `json:"resource"`
	Season   Season          `json:"season,omitempty"`
	Events   []string        `json:"events,omitempty"`
	Price    decimal.Decimal `json:"price"`
}
