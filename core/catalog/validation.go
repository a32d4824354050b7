// Package catalog - Catalog validation
// Checks loaded data against the rules of the game economy.
package catalog

import (
	"fmt"

	"resource-economy/core/types"
)

// ValidationRule is a catalog validation rule
type ValidationRule func(*types.Resource) []error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validatePositiveBasePrice,
		validatePositiveModifiers,
		validateCategory,
		validateFavoredSeasons,
		validateLocalBiomes,
	}
}

// Validate checks a catalog against validation rules
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errors []error

	for _, r := range c.Resources() {
		for _, rule := range rules {
			for _, err := range rule(r) {
				errors = append(errors, fmt.Errorf("%s: %w", r.Name, err))
			}
		}
	}

	return errors
}

// Validate checks that every sequence names canonical seasons and that
// every biome is known.
func (t *SeasonTable) Validate() []error {
	var errors []error
	for _, b := range t.Biomes() {
		if !b.IsValid() {
			errors = append(errors, fmt.Errorf("biome %q is not a known biome", b))
		}
		for i, s := range t.sequences[b] {
			if !s.IsValid() {
				errors = append(errors, fmt.Errorf("biome %q: sequence position %d names unknown season %q", b, i, s))
			}
		}
	}
	return errors
}

// validatePositiveBasePrice ensures base_price > 0 when present. Absence
// is reported by the price calculator, not here.
func validatePositiveBasePrice(r *types.Resource) []error {
	if r.BasePrice.Valid && !r.BasePrice.Decimal.IsPositive() {
		return []error{fmt.Errorf("base_price must be positive, got %s", r.BasePrice.Decimal)}
	}
	return nil
}

// validatePositiveModifiers ensures every event multiplier > 0
func validatePositiveModifiers(r *types.Resource) []error {
	var errs []error
	for _, m := range r.EventModifiers {
		if !m.Multiplier.IsPositive() {
			errs = append(errs, fmt.Errorf("event %q multiplier must be positive, got %s", m.Event, m.Multiplier))
		}
	}
	return errs
}

func validateCategory(r *types.Resource) []error {
	if !r.Category.IsValid() {
		return []error{fmt.Errorf("unknown category %q", r.Category)}
	}
	return nil
}

func validateFavoredSeasons(r *types.Resource) []error {
	var errs []error
	for _, s := range r.FavoredSeasons {
		if !s.IsValid() {
			errs = append(errs, fmt.Errorf("favored_season names unknown season %q", s))
		}
	}
	return errs
}

func validateLocalBiomes(r *types.Resource) []error {
	var errs []error
	for _, b := range r.LocalBiomes {
		if !b.IsValid() {
			errs = append(errs, fmt.Errorf("local_biomes names unknown biome %q", b))
		}
	}
	return errs
}
