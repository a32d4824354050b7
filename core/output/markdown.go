package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"resource-economy/core/analysis"
)

// MarkdownFormatter renders the summary as a markdown report
type MarkdownFormatter struct{}

// Format implements Formatter
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render implements Formatter
func (f *MarkdownFormatter) Render(w io.Writer, s *analysis.Summary) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Resource Economy\n\n%d resources.\n\n", s.Resources)

	bw.WriteString("## Base prices\n\n")
	var rows [][]string
	for _, e := range s.Prices {
		rows = append(rows, []string{e.Name, e.Category.Title(), e.BasePrice.StringFixed(2)})
	}
	writeTable(bw, []string{"Resource", "Category", "Base"}, rows)

	if !s.Seasonal.Empty() {
		bw.WriteString("## Seasonal multipliers\n\n")
		rows = rows[:0]
		for r, name := range s.Seasonal.Rows {
			row := []string{name}
			for c := range s.Seasonal.Columns {
				row = append(row, s.Seasonal.At(r, c).StringFixed(2))
			}
			rows = append(rows, row)
		}
		writeTable(bw, append([]string{"Resource"}, titles(s.Seasonal.Columns)...), rows)
	}

	bw.WriteString("## Volatility\n\n")
	rows = rows[:0]
	for _, e := range s.Volatility {
		rows = append(rows, []string{e.Name, e.Min.StringFixed(2), e.Base.StringFixed(2),
			e.Max.StringFixed(2), fmt.Sprintf("±%d", e.HalfRange())})
	}
	writeTable(bw, []string{"Resource", "Min", "Base", "Max", "Spread"}, rows)

	if !s.Events.Empty() {
		bw.WriteString("## Event modifiers\n\n")
		rows = rows[:0]
		for _, c := range eventCells(s.Events) {
			rows = append(rows, []string{c.resource, c.event, c.value + "x"})
		}
		writeTable(bw, []string{"Resource", "Event", "Multiplier"}, rows)
	}

	if len(s.Cities) > 0 {
		bw.WriteString("## Cities\n\n")
		for _, cs := range s.Cities {
			fmt.Fprintf(bw, "### %s (%s)\n\n", cs.City.Name, cs.City.Biome.Title())
			if cs.Empty() {
				bw.WriteString("_No native resources._\n\n")
				continue
			}
			headers, rows := citySeriesTable(cs)
			writeTable(bw, headers, rows)
		}
	}

	if s.Timeline != nil {
		fmt.Fprintf(bw, "## %s across biomes\n\n", s.Timeline.Resource)
		headers, rows := timelineTable(s.Timeline)
		writeTable(bw, headers, rows)
		bw.WriteString("\\* local biome\n")
	}

	return bw.Flush()
}

func writeTable(w *bufio.Writer, headers []string, rows [][]string) {
	writeRow(w, headers)
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
		if i > 0 {
			sep[i] = "---:"
		}
	}
	writeRow(w, sep)
	for _, row := range rows {
		writeRow(w, row)
	}
	w.WriteString("\n")
}

func writeRow(w *bufio.Writer, cells []string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	fmt.Fprintf(w, "| %s |\n", strings.Join(escaped, " | "))
}
