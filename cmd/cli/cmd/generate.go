// Package cmd - generate command
package cmd

import (
	"github.com/spf13/cobra"

	"resource-economy/core/engine"
	"resource-economy/core/sink"
	"resource-economy/core/ui"
	"resource-economy/internal/config"
	"resource-economy/internal/errors"
)

var (
	outputDir    string
	dpi          int
	withTimeline bool
	withWorkbook bool
	strict       bool
)

// generateCmd renders every chart
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the economy analysis charts",
	Long: `Load the resource catalog and biome season table, then render the
price overview, seasonal impact, volatility, event impact and per-city
charts as PNG files. Charts without data are skipped.

Artifacts go to the output directory, or to S3 when output.s3.bucket is
configured.

Examples:
  economy generate
  economy generate --resources data/resources.json --output ./charts
  economy generate --dpi 150 --timeline --workbook`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (overrides config)")
	generateCmd.Flags().IntVar(&dpi, "dpi", 0, "chart resolution (overrides config)")
	generateCmd.Flags().BoolVar(&withTimeline, "timeline", false, "also render the biome timeline chart")
	generateCmd.Flags().BoolVar(&withWorkbook, "workbook", false, "also export an xlsx workbook")
	generateCmd.Flags().BoolVar(&strict, "strict", false, "fail on catalog validation problems")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := *config.Get()

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Dir = outputDir
		// an explicit directory wins over a configured bucket
		cfg.Output.S3 = config.S3Config{}
	}
	if flags.Changed("dpi") {
		cfg.Output.DPI = dpi
	}
	if flags.Changed("timeline") {
		cfg.Charts.Timeline = withTimeline
	}
	if flags.Changed("workbook") {
		cfg.Output.Workbook = withWorkbook
	}
	if flags.Changed("strict") {
		cfg.Strict = strict
	}
	if err := cfg.Validate(); err != nil {
		return errors.Config("invalid configuration", err)
	}

	s, err := sink.Open(ctx, cfg.Output)
	if err != nil {
		return err
	}

	w := newWriter(cmd)
	reporter := ui.NewRunReporter(w)
	o := engine.New(engine.OptionsFromConfig(&cfg), s, reporter)

	w.Header("Resource Economy Charts")
	w.Info("Catalog: %s", cfg.Data.Resources)
	w.Info("Destination: %s", s.Describe())
	w.Debug("Run ID: %s", o.RunID())

	result, err := o.Run(ctx)
	reporter.Finish()
	if err != nil {
		return err
	}

	summary := w.NewRunSummary()
	summary.RunID = result.RunID
	summary.Destination = result.Destination
	summary.Resources = result.Resources
	summary.Charts = len(result.Artifacts)
	summary.Skipped = len(result.Skipped)
	summary.Warnings = len(result.Warnings)
	summary.Duration = result.Duration
	summary.Render()

	return nil
}
