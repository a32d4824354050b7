// Package engine provides the API-primary pricing engine.
// CLI commands are thin wrappers around this engine.
package engine

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"resource-economy/core/analysis"
	"resource-economy/core/catalog"
	"resource-economy/core/pricing"
	"resource-economy/core/suggest"
	"resource-economy/core/types"
	"resource-economy/internal/errors"
)

// Engine answers price questions against one loaded catalog.
// Inputs are read on first use.
type Engine struct {
	config EngineConfig

	once    sync.Once
	err     error
	catalog *catalog.Catalog
	seasons *catalog.SeasonTable
}

// EngineConfig locates the engine's inputs
type EngineConfig struct {
	ResourcesPath    string
	BiomeSeasonsPath string
}

// NewEngine creates an engine
func NewEngine(config EngineConfig) *Engine {
	return &Engine{config: config}
}

// NewEngineFromCatalog creates an engine over already loaded inputs
func NewEngineFromCatalog(cat *catalog.Catalog, seasons *catalog.SeasonTable) *Engine {
	e := &Engine{catalog: cat, seasons: seasons}
	e.once.Do(func() {})
	return e
}

func (e *Engine) load() error {
	e.once.Do(func() {
		e.catalog, e.err = catalog.LoadResources(e.config.ResourcesPath)
		if e.err != nil {
			return
		}
		e.seasons, e.err = catalog.LoadBiomeSeasons(e.config.BiomeSeasonsPath)
	})
	return e.err
}

// Catalog returns the loaded catalog
func (e *Engine) Catalog() (*catalog.Catalog, error) {
	if err := e.load(); err != nil {
		return nil, err
	}
	return e.catalog, nil
}

// QuoteRequest is a pricing scenario by name
type QuoteRequest struct {
	Resource string
	Season   string
	Events   []string
}

// QuoteResult is a computed price with the events that had no effect
type QuoteResult struct {
	Quote         types.PriceQuote `json:"quote"`
	Category      types.Category   `json:"category"`
	BasePrice     decimal.Decimal  `json:"base_price"`
	UnknownEvents []string         `json:"unknown_events,omitempty"`
}

// Quote prices a resource for a season and active events. An empty season
// skips the seasonal adjustment.
func (e *Engine) Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, err := e.resource(req.Resource)
	if err != nil {
		return nil, err
	}

	season := types.SeasonNone
	if strings.TrimSpace(req.Season) != "" {
		var ok bool
		season, ok = types.ParseSeason(req.Season)
		if !ok {
			return nil, errors.NotFound("season", req.Season+suggest.Hint(req.Season, seasonNames()))
		}
	}

	q, err := pricing.Quote(r, season, req.Events)
	if err != nil {
		return nil, err
	}
	return &QuoteResult{
		Quote:         q,
		Category:      r.Category,
		BasePrice:     r.BasePrice.Decimal,
		UnknownEvents: pricing.UnknownEvents(r, req.Events),
	}, nil
}

// RangeResult is the price spread of a resource over every scenario
type RangeResult struct {
	Resource  string             `json:"resource"`
	Min       decimal.Decimal    `json:"min"`
	Max       decimal.Decimal    `json:"max"`
	Scenarios []types.PriceQuote `json:"scenarios"`
}

// Range computes the lowest and highest price of a resource
func (e *Engine) Range(ctx context.Context, name string) (*RangeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, err := e.resource(name)
	if err != nil {
		return nil, err
	}

	scenarios, err := pricing.Scenarios(r)
	if err != nil {
		return nil, err
	}
	min, max, err := pricing.PriceRange(r)
	if err != nil {
		return nil, err
	}
	return &RangeResult{Resource: r.Name, Min: min, Max: max, Scenarios: scenarios}, nil
}

// City builds the seasonal price lines of one city
func (e *Engine) City(ctx context.Context, name string) (*analysis.CitySeries, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.load(); err != nil {
		return nil, err
	}
	city, ok := types.LookupCity(name)
	if !ok {
		return nil, errors.NotFound("city", name+suggest.Hint(name, types.CityNames()))
	}
	return analysis.BuildCitySeries(e.catalog, e.seasons, city)
}

// Summary runs every aggregation
func (e *Engine) Summary(ctx context.Context) (*analysis.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.load(); err != nil {
		return nil, err
	}
	return analysis.Summarize(e.catalog, e.seasons)
}

func (e *Engine) resource(name string) (*types.Resource, error) {
	if err := e.load(); err != nil {
		return nil, err
	}
	r, ok := e.catalog.Get(name)
	if !ok {
		return nil, errors.NotFound("resource", name+suggest.Hint(name, e.catalog.Names())).
			WithContext("path", e.config.ResourcesPath)
	}
	return r, nil
}

func seasonNames() []string {
	names := make([]string, len(types.Seasons))
	for i, s := range types.Seasons {
		names[i] = s.String()
	}
	return names
}
