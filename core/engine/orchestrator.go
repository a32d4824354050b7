// Package engine - Chart generation orchestrator
// ENFORCES the execution flow of a run:
// 1. Load the resource catalog and biome season table
// 2. Validate them (warnings, fatal in strict mode)
// 3. Render every chart, handing each to the sink in order
// 4. Publish the optional workbook and the run manifest
package engine

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"resource-economy/core/analysis"
	"resource-economy/core/catalog"
	"resource-economy/core/render"
	"resource-economy/core/sink"
	"resource-economy/core/types"
	"resource-economy/internal/config"
	"resource-economy/internal/errors"
	"resource-economy/internal/logging"
)

// OrchestrationPhase represents execution phases
type OrchestrationPhase int

const (
	PhaseUninitialized OrchestrationPhase = iota
	PhaseLoaded                           // Catalog and season table loaded and validated
	PhaseRendered                         // All charts rendered or skipped
	PhaseComplete                         // Workbook and manifest published
)

// String returns the phase name
func (p OrchestrationPhase) String() string {
	names := []string{"uninitialized", "loaded", "rendered", "complete"}
	if int(p) < len(names) {
		return names[p]
	}
	return "unknown"
}

// PhaseOrderError indicates phases executed out of order
type PhaseOrderError struct {
	Required OrchestrationPhase
	Current  OrchestrationPhase
}

func (e *PhaseOrderError) Error() string {
	return fmt.Sprintf("phase %s required, but current phase is %s", e.Required, e.Current)
}

// OrchestrationError is an error during orchestration
type OrchestrationError struct {
	Phase   OrchestrationPhase
	Message string
	Cause   error
	Fatal   bool
}

// Options controls a generation run
type Options struct {
	ResourcesPath    string
	BiomeSeasonsPath string
	DPI              int
	Timeline         bool
	Workbook         bool
	Manifest         bool
	Strict           bool
}

// OptionsFromConfig derives run options from the configuration
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		ResourcesPath:    cfg.Data.Resources,
		BiomeSeasonsPath: cfg.Data.BiomeSeasons,
		DPI:              cfg.Output.DPI,
		Timeline:         cfg.Charts.Timeline,
		Workbook:         cfg.Output.Workbook,
		Manifest:         cfg.Output.Manifest,
		Strict:           cfg.Strict,
	}
}

// Observer follows the progress of a run
type Observer interface {
	// Planned reports how many artifacts the run will attempt
	Planned(total int)

	// ArtifactWritten reports an artifact stored by the sink
	ArtifactWritten(name, location string, size int)

	// ChartSkipped reports a chart left out for lack of data
	ChartSkipped(name, reason string)

	// Warning reports a non-fatal data problem
	Warning(msg string)
}

// NopObserver ignores all progress
type NopObserver struct{}

func (NopObserver) Planned(int) {}
func (NopObserver) ArtifactWritten(string, string, int) {}
func (NopObserver) ChartSkipped(string, string) {}
func (NopObserver) Warning(string) {}

// Orchestrator runs one chart generation
type Orchestrator struct {
	// Current phase - can only move forward
	phase OrchestrationPhase

	opts     Options
	runID    string
	sink     sink.Sink
	observer Observer
	renderer *render.Renderer
	log      *zap.Logger
	now      func() time.Time

	// Inputs - nil until PhaseLoaded
	catalog *catalog.Catalog
	seasons *catalog.SeasonTable

	result *Result
	errors []OrchestrationError
}

// New creates an orchestrator writing to s. A nil observer is replaced
// with NopObserver.
func New(opts Options, s sink.Sink, observer Observer) *Orchestrator {
	if observer == nil {
		observer = NopObserver{}
	}
	runID := uuid.NewString()
	o := &Orchestrator{
		phase:    PhaseUninitialized,
		opts:     opts,
		runID:    runID,
		sink:     s,
		observer: observer,
		renderer: render.New(render.Options{DPI: opts.DPI}),
		log:      logging.ForRun(runID),
		now:      time.Now,
	}
	o.result = &Result{
		RunID:       runID,
		Destination: s.Describe(),
		Artifacts:   []Artifact{},
		Skipped:     []Skipped{},
		Warnings:    []string{},
	}
	return o
}

// RunID returns the run's unique id
func (o *Orchestrator) RunID() string {
	return o.runID
}

// Phase returns the current phase
func (o *Orchestrator) Phase() OrchestrationPhase {
	return o.phase
}

// Errors returns the errors recorded so far
func (o *Orchestrator) Errors() []OrchestrationError {
	return o.errors
}

// PhaseGuard ensures a phase has been completed
func (o *Orchestrator) PhaseGuard(required OrchestrationPhase) error {
	if o.phase < required {
		return &PhaseOrderError{
			Required: required,
			Current:  o.phase,
		}
	}
	return nil
}

// Load reads and validates both input files. Validation problems are
// warnings unless the run is strict.
func (o *Orchestrator) Load(ctx context.Context) error {
	if o.phase >= PhaseLoaded {
		return fmt.Errorf("inputs already loaded")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	cat, err := catalog.LoadResources(o.opts.ResourcesPath)
	if err != nil {
		o.recordError(PhaseLoaded, "failed to load resource catalog", err, true)
		return err
	}
	seasons, err := catalog.LoadBiomeSeasons(o.opts.BiomeSeasonsPath)
	if err != nil {
		o.recordError(PhaseLoaded, "failed to load biome seasons", err, true)
		return err
	}

	var problems []error
	problems = append(problems, cat.Validate(catalog.DefaultValidationRules())...)
	problems = append(problems, seasons.Validate()...)
	for _, p := range problems {
		o.warn(p.Error())
	}
	if o.opts.Strict && len(problems) > 0 {
		err := errors.Validation(fmt.Sprintf("%d validation problems in strict mode, first: %v", len(problems), problems[0])).
			WithContext("path", o.opts.ResourcesPath)
		o.recordError(PhaseLoaded, "strict validation failed", err, true)
		return err
	}

	o.catalog = cat
	o.seasons = seasons
	o.result.Resources = cat.Len()
	o.log.Info("inputs loaded",
		zap.Int("resources", cat.Len()),
		zap.Int("custom_biomes", seasons.Len()),
		zap.Int("warnings", len(problems)))

	o.phase = PhaseLoaded
	return nil
}

// chartJob builds the aggregation for one chart and renders it
type chartJob struct {
	name  string
	build func() (*render.Chart, error)
}

func (o *Orchestrator) jobs() []chartJob {
	cat, r := o.catalog, o.renderer

	jobs := []chartJob{
		{render.PriceOverviewFile, func() (*render.Chart, error) {
			entries, err := analysis.SortByPrice(cat)
			if err != nil {
				return nil, err
			}
			return r.PriceOverview(entries)
		}},
		{render.SeasonalImpactFile, func() (*render.Chart, error) {
			m, err := analysis.SeasonalMultipliers(cat)
			if err != nil {
				return nil, err
			}
			return r.SeasonalImpact(m)
		}},
		{render.VolatilityFile, func() (*render.Chart, error) {
			entries, err := analysis.Volatility(cat)
			if err != nil {
				return nil, err
			}
			return r.Volatility(entries)
		}},
		{render.EventImpactFile, func() (*render.Chart, error) {
			m, err := analysis.EventImpact(cat)
			if err != nil {
				return nil, err
			}
			return r.EventImpact(m)
		}},
	}

	if o.opts.Timeline {
		jobs = append(jobs, chartJob{render.TimelineFile, func() (*render.Chart, error) {
			tl, err := analysis.BiomeTimeline(cat)
			if err != nil {
				return nil, err
			}
			return r.BiomeTimeline(tl)
		}})
	}

	colors := render.ResourceColors(cat.Names())
	for _, city := range types.Cities {
		city := city
		jobs = append(jobs, chartJob{render.CityFile(city.Name), func() (*render.Chart, error) {
			cs, err := analysis.BuildCitySeries(cat, o.seasons, city)
			if err != nil {
				return nil, err
			}
			return r.CitySeasonalPrices(cs, colors)
		}})
	}

	return jobs
}

// Render builds every chart concurrently, then stores them in order. An
// empty aggregation skips its chart; any other error stops the run before
// the remaining charts are stored.
func (o *Orchestrator) Render(ctx context.Context) error {
	if err := o.PhaseGuard(PhaseLoaded); err != nil {
		return err
	}
	if o.phase >= PhaseRendered {
		return fmt.Errorf("charts already rendered")
	}

	jobs := o.jobs()
	planned := len(jobs)
	if o.opts.Workbook {
		planned++
	}
	if o.opts.Manifest {
		planned++
	}
	o.observer.Planned(planned)

	charts := make([]*render.Chart, len(jobs))
	failures := make([]error, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			charts[i], failures[i] = job.build()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := failures[i]; err != nil {
			if errors.IsType(err, errors.TypeEmptyResult) {
				o.skip(job.name, err)
				continue
			}
			o.recordError(PhaseRendered, "failed to render "+job.name, err, true)
			return err
		}

		chart := charts[i]
		if err := o.put(ctx, chart.Name, chart.Data, chart.ContentType); err != nil {
			o.recordError(PhaseRendered, "failed to store "+job.name, err, true)
			return err
		}
	}

	o.phase = PhaseRendered
	return nil
}

// Publish writes the optional workbook and then the run manifest
func (o *Orchestrator) Publish(ctx context.Context) error {
	if err := o.PhaseGuard(PhaseRendered); err != nil {
		return err
	}
	if o.phase >= PhaseComplete {
		return fmt.Errorf("run already published")
	}

	if o.opts.Workbook {
		if err := o.publishWorkbook(ctx); err != nil {
			o.recordError(PhaseComplete, "failed to write workbook", err, true)
			return err
		}
	}

	o.result.GeneratedAt = o.now().UTC()
	if o.opts.Manifest {
		data, err := o.manifest().Encode()
		if err != nil {
			return errors.Internal("failed to encode manifest", err)
		}
		if err := o.put(ctx, ManifestFile, data, ContentTypeJSON); err != nil {
			o.recordError(PhaseComplete, "failed to write manifest", err, true)
			return err
		}
	}

	o.phase = PhaseComplete
	return nil
}

// Run executes every phase and returns the run result
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	start := o.now()
	o.log.Info("run started", zap.String("destination", o.result.Destination))

	if err := o.Load(ctx); err != nil {
		return o.result, err
	}
	if err := o.Render(ctx); err != nil {
		return o.result, err
	}
	if err := o.Publish(ctx); err != nil {
		return o.result, err
	}

	o.result.Duration = o.now().Sub(start)
	o.log.Info("run complete",
		zap.Int("artifacts", len(o.result.Artifacts)),
		zap.Int("skipped", len(o.result.Skipped)),
		zap.Duration("duration", o.result.Duration))
	return o.result, nil
}

// Result returns the run result so far
func (o *Orchestrator) Result() *Result {
	return o.result
}

func (o *Orchestrator) put(ctx context.Context, name string, data []byte, contentType string) error {
	loc, err := o.sink.Put(ctx, name, data, contentType)
	if err != nil {
		return err
	}
	o.result.Artifacts = append(o.result.Artifacts, newArtifact(name, loc, contentType, data))
	o.observer.ArtifactWritten(name, loc, len(data))
	o.log.Info("artifact written",
		zap.String(logging.FieldArtifact, name),
		zap.String("location", loc),
		zap.Int("bytes", len(data)))
	return nil
}

func (o *Orchestrator) skip(name string, cause error) {
	reason := cause.Error()
	if e, ok := cause.(*errors.Error); ok {
		reason = e.Message
	}
	o.result.Skipped = append(o.result.Skipped, Skipped{Name: name, Reason: reason})
	o.observer.ChartSkipped(name, reason)
	o.log.Info("chart skipped", zap.String(logging.FieldChart, name), zap.String("reason", reason))
}

func (o *Orchestrator) warn(msg string) {
	o.result.Warnings = append(o.result.Warnings, msg)
	o.observer.Warning(msg)
	o.log.Warn("catalog validation", zap.String("problem", msg))
}

func (o *Orchestrator) recordError(phase OrchestrationPhase, msg string, cause error, fatal bool) {
	o.errors = append(o.errors, OrchestrationError{
		Phase:   phase,
		Message: msg,
		Cause:   cause,
		Fatal:   fatal,
	})
	o.log.Error(msg, zap.Stringer(logging.FieldPhase, phase), zap.Error(cause))
}
