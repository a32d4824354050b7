// Package cmd - range command
package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"resource-economy/core/types"
)

var (
	rangeScenarios bool
	rangeJSON      bool
)

// rangeCmd prints the price spread of one resource
var rangeCmd = &cobra.Command{
	Use:   "range <resource>",
	Short: "Print the lowest and highest price of a resource",
	Long: `Price a resource in every season with no events, and in every season
under each event it has a modifier for, then report the extremes.

Examples:
  economy range wine
  economy range wine --scenarios`,
	Args: cobra.ExactArgs(1),
	RunE: runRange,
}

func init() {
	rangeCmd.Flags().BoolVar(&rangeScenarios, "scenarios", false, "list every scenario considered")
	rangeCmd.Flags().BoolVar(&rangeJSON, "json", false, "print JSON")
}

func runRange(cmd *cobra.Command, args []string) error {
	result, err := newEngine().Range(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if rangeJSON {
		return printJSON(cmd, result)
	}

	w := newWriter(cmd)
	w.Header("Price Range: " + result.Resource)
	tbl := w.NewTable("Min", "Max", "Spread").AlignRight(0, 1, 2)
	tbl.AddRow(result.Min.StringFixed(2), result.Max.StringFixed(2), result.Max.Sub(result.Min).StringFixed(2))
	tbl.Render()

	if rangeScenarios {
		w.Println("")
		w.SubHeader("Scenarios")
		sc := w.NewTable("Season", "Event", "Price").AlignRight(2)
		for _, q := range result.Scenarios {
			event := "-"
			if len(q.Events) > 0 {
				event = strings.Join(q.Events, ", ")
			}
			season := "-"
			if q.Season != types.SeasonNone {
				season = q.Season.Title()
			}
			sc.AddRow(season, event, q.Price.StringFixed(2))
		}
		sc.Render()
	}
	return nil
}
