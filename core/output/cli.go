package output

import (
	"fmt"
	"io"

	"resource-economy/core/analysis"
	"resource-economy/core/types"
	"resource-economy/core/ui"
)

// CLIFormatter renders the summary as terminal tables
type CLIFormatter struct {
	NoColor bool
}

// Format implements Formatter
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render implements Formatter
func (f *CLIFormatter) Render(w io.Writer, s *analysis.Summary) error {
	out := ui.NewWriter(w, f.NoColor)

	out.Header(fmt.Sprintf("Resource Economy (%d resources)", s.Resources))

	out.SubHeader("Base prices")
	prices := out.NewTable("Resource", "Category", "Base").AlignRight(2)
	for _, e := range s.Prices {
		prices.AddRow(e.Name, e.Category.Title(), e.BasePrice.StringFixed(2))
	}
	prices.Render()
	out.Println("")

	if !s.Seasonal.Empty() {
		out.SubHeader("Seasonal multipliers")
		renderMatrix(out, s.Seasonal)
		out.Println("")
	}

	out.SubHeader("Volatility")
	vol := out.NewTable("Resource", "Min", "Base", "Max", "Spread").AlignRight(1, 2, 3, 4)
	for _, e := range s.Volatility {
		vol.AddRow(e.Name, e.Min.StringFixed(2), e.Base.StringFixed(2), e.Max.StringFixed(2),
			fmt.Sprintf("±%d", e.HalfRange()))
	}
	vol.Render()
	out.Println("")

	if !s.Events.Empty() {
		out.SubHeader("Event modifiers")
		events := out.NewTable("Resource", "Event", "Multiplier").AlignRight(2)
		for _, c := range eventCells(s.Events) {
			events.AddRow(c.resource, c.event, c.value+"x")
		}
		events.Render()
		out.Println("")
	}

	for _, cs := range s.Cities {
		out.SubHeader(fmt.Sprintf("%s (%s)", cs.City.Name, cs.City.Biome.Title()))
		if cs.Empty() {
			out.Println("  no native resources")
			out.Println("")
			continue
		}
		headers, rows := citySeriesTable(cs)
		tbl := out.NewTable(headers...)
		for i := 1; i < len(headers); i++ {
			tbl.AlignRight(i)
		}
		for _, row := range rows {
			tbl.AddRow(row...)
		}
		tbl.Render()
		out.Println("")
	}

	if s.Timeline != nil {
		out.SubHeader(fmt.Sprintf("%q across biomes", s.Timeline.Resource))
		headers, rows := timelineTable(s.Timeline)
		tbl := out.NewTable(headers...)
		for i := 1; i < len(headers); i++ {
			tbl.AlignRight(i)
		}
		for _, row := range rows {
			tbl.AddRow(row...)
		}
		tbl.Render()
	}

	return nil
}

func renderMatrix(out *ui.Writer, m *analysis.Matrix) {
	headers := append([]string{"Resource"}, titles(m.Columns)...)
	tbl := out.NewTable(headers...)
	for i := 1; i < len(headers); i++ {
		tbl.AlignRight(i)
	}
	for r, name := range m.Rows {
		row := []string{name}
		for c := range m.Columns {
			row = append(row, m.At(r, c).StringFixed(2))
		}
		tbl.AddRow(row...)
	}
	tbl.Render()
}

type eventCell struct {
	resource string
	event    string
	value    string
}

// eventCells lists the non-neutral cells of an event matrix, row by row
func eventCells(m *analysis.Matrix) []eventCell {
	var cells []eventCell
	for r, name := range m.Rows {
		for c, event := range m.Columns {
			v := m.At(r, c)
			if v.Equal(analysis.Neutral) {
				continue
			}
			cells = append(cells, eventCell{resource: name, event: event, value: v.StringFixed(2)})
		}
	}
	return cells
}

// citySeriesTable lays out a city as resource rows x sequence columns
func citySeriesTable(cs *analysis.CitySeries) ([]string, [][]string) {
	headers := []string{"Resource"}
	for i, s := range cs.Sequence {
		headers = append(headers, fmt.Sprintf("%d. %s", i+1, s.Title()))
	}

	rows := make([][]string, 0, len(cs.Series))
	for _, series := range cs.Series {
		row := []string{series.Resource}
		for _, p := range series.Points {
			row = append(row, p.Price.StringFixed(2))
		}
		rows = append(rows, row)
	}
	return headers, rows
}

// timelineTable lays out the timeline as biome rows x month columns
func timelineTable(tl *analysis.Timeline) ([]string, [][]string) {
	headers := []string{"Biome"}
	for _, m := range tl.Months {
		headers = append(headers, fmt.Sprintf("M%d", m))
	}

	rows := make([][]string, 0, len(tl.Lines))
	for _, line := range tl.Lines {
		name := line.Biome.Title()
		if line.Local {
			name += "*"
		}
		row := []string{name}
		for _, p := range line.Prices {
			row = append(row, p.StringFixed(2))
		}
		rows = append(rows, row)
	}
	return headers, rows
}

func titles(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = types.Title(n)
	}
	return out
}
