// Package cmd - quote command
package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"resource-economy/core/analysis"
	"resource-economy/core/engine"
	"resource-economy/core/suggest"
	"resource-economy/core/types"
)

var (
	quoteSeason string
	quoteEvents []string
	quoteCity   string
	quoteJSON   bool
)

// quoteCmd prices one resource
var quoteCmd = &cobra.Command{
	Use:   "quote <resource>",
	Short: "Price a resource for a season and active events",
	Long: `Compute the price of a resource. The season adjusts the base price
(x0.9 in a favored season, x1.1 otherwise); each active event then applies
the resource's modifier for it. Events the resource has no modifier for do
not change the price and are reported as warnings.

With --city the resource is priced over the city's season sequence.

Examples:
  economy quote wine
  economy quote wine --season fall --event grand_festival --event war
  economy quote bread --city Yalanga`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteSeason, "season", "s", "", "season (spring, summer, fall, winter)")
	quoteCmd.Flags().StringArrayVarP(&quoteEvents, "event", "e", nil, "active event (repeatable, applied in order)")
	quoteCmd.Flags().StringVar(&quoteCity, "city", "", "price over a city's season sequence")
	quoteCmd.Flags().BoolVar(&quoteJSON, "json", false, "print JSON")
}

func runQuote(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	e := newEngine()
	w := newWriter(cmd)

	if quoteCity != "" {
		return runCityQuote(cmd, e, args[0])
	}

	result, err := e.Quote(ctx, engine.QuoteRequest{
		Resource: args[0],
		Season:   quoteSeason,
		Events:   quoteEvents,
	})
	if err != nil {
		return err
	}

	if quoteJSON {
		return printJSON(cmd, result)
	}

	q := result.Quote
	season := "none"
	if q.Season != types.SeasonNone {
		season = q.Season.Title()
	}
	events := "none"
	if len(q.Events) > 0 {
		events = strings.Join(q.Events, ", ")
	}

	w.Header("Price Quote")
	tbl := w.NewTable("Resource", "Category", "Base", "Season", "Events", "Price").AlignRight(2, 5)
	tbl.AddRow(q.Resource, result.Category.Title(), result.BasePrice.StringFixed(2), season, events, q.Price.StringFixed(2))
	tbl.Render()

	if len(result.UnknownEvents) > 0 {
		cat, err := e.Catalog()
		if err != nil {
			return err
		}
		known := analysis.EventNames(cat)
		for _, ev := range result.UnknownEvents {
			w.Warning("event %q does not affect %s%s", ev, q.Resource, suggest.Hint(ev, known))
		}
	}
	return nil
}

func runCityQuote(cmd *cobra.Command, e *engine.Engine, resource string) error {
	w := newWriter(cmd)

	cs, err := e.City(cmd.Context(), quoteCity)
	if err != nil {
		return err
	}

	for _, series := range cs.Series {
		if !strings.EqualFold(series.Resource, resource) {
			continue
		}
		if quoteJSON {
			return printJSON(cmd, series)
		}

		w.Header(fmt.Sprintf("%s in %s (%s biome)", series.Resource, cs.City.Name, cs.City.Biome.Title()))
		tbl := w.NewTable("#", "Season", "Price").AlignRight(0, 2)
		for _, p := range series.Points {
			tbl.AddRow(fmt.Sprintf("%d", p.Position+1), p.Season.Title(), p.Price.StringFixed(2))
		}
		tbl.Render()
		return nil
	}

	// the resource exists but is not traded in this biome
	if _, err := e.Quote(cmd.Context(), engine.QuoteRequest{Resource: resource}); err != nil {
		return err
	}
	w.Warning("%s is not native to %s (%s biome)", resource, cs.City.Name, cs.City.Biome.Title())
	return nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
