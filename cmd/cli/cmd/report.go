// Package cmd - report command
package cmd

import (
	"github.com/spf13/cobra"

	"resource-economy/core/output"
	"resource-economy/internal/config"
)

var (
	reportFormat   string
	reportTimeline bool
)

// reportCmd prints every aggregation as text
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the economy summary",
	Long: `Print the aggregations behind the charts: base prices, seasonal
multipliers, volatility, event modifiers and per-city seasonal prices.

Examples:
  economy report
  economy report --format json
  economy report --format markdown > economy.md`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "output format (cli, json, markdown); default from config")
	reportCmd.Flags().BoolVar(&reportTimeline, "timeline", false, "include the biome timeline")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	format := cfg.Output.Format
	if reportFormat != "" {
		format = reportFormat
	}
	f, err := output.NewRegistry(noColor).Lookup(format)
	if err != nil {
		return err
	}

	summary, err := newEngine().Summary(cmd.Context())
	if err != nil {
		return err
	}
	if !reportTimeline && !cfg.Charts.Timeline {
		summary.Timeline = nil
	}

	return f.Render(cmd.OutOrStdout(), summary)
}
