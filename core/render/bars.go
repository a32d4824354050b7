package render

import (
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"resource-economy/core/analysis"
	"resource-economy/core/types"
	"resource-economy/internal/errors"
)

// PriceOverview draws one horizontal bar per resource, cheapest at the
// bottom, colored by category and labeled with the whole-gold price.
func (r *Renderer) PriceOverview(entries []analysis.PriceEntry) (*Chart, error) {
	if len(entries) == 0 {
		return nil, errors.EmptyResult("no resources to chart")
	}

	const w, h = 12 * vg.Inch, 10 * vg.Inch
	p := newPlot("Resource Price Overview", "Base Price (Gold)", "")
	p.Add(verticalGrid())

	thickness := barThickness(h-2*vg.Inch, len(entries))
	names := make([]string, len(entries))
	ends := make(plotter.XYs, len(entries))
	labels := make([]string, len(entries))

	for i, e := range entries {
		price := e.BasePrice.InexactFloat64()

		bar, err := plotter.NewBarChart(plotter.Values{price}, thickness)
		if err != nil {
			return nil, errors.Render(PriceOverviewFile, err)
		}
		bar.Horizontal = true
		bar.XMin = float64(i)
		bar.Color = withAlpha(hexColor(types.ColorForCategory(e.Category)), 0.8)
		bar.LineStyle.Width = vg.Points(0.5)
		p.Add(bar)

		names[i] = e.Name
		ends[i] = plotter.XY{X: price, Y: float64(i)}
		labels[i] = strconv.FormatInt(e.BasePrice.IntPart(), 10)
	}

	values, err := endLabels(ends, labels, 8)
	if err != nil {
		return nil, errors.Render(PriceOverviewFile, err)
	}
	p.Add(values)

	p.NominalY(names...)
	p.Y.Tick.Label.Font.Size = vg.Points(9)
	addCategoryLegend(p)

	return r.encodePlot(PriceOverviewFile, p, w, h)
}

// Volatility draws each resource's min-to-max price span as a thick line
// in its category color, with a black dot at the base price and the
// half-range next to the span. The widest range is at the bottom.
func (r *Renderer) Volatility(entries []analysis.VolatilityEntry) (*Chart, error) {
	if len(entries) == 0 {
		return nil, errors.EmptyResult("no resources to chart")
	}

	const w, h = 14 * vg.Inch, 10 * vg.Inch
	p := newPlot("Resource Price Volatility\n(Black dot = base price, Line = min to max)", "Price Range (Gold)", "")
	p.Add(verticalGrid())

	names := make([]string, len(entries))
	bases := make(plotter.XYs, len(entries))
	ends := make(plotter.XYs, len(entries))
	labels := make([]string, len(entries))

	for i, e := range entries {
		y := float64(i)
		lo, hi := e.Min.InexactFloat64(), e.Max.InexactFloat64()

		span, err := plotter.NewLine(plotter.XYs{{X: lo, Y: y}, {X: hi, Y: y}})
		if err != nil {
			return nil, errors.Render(VolatilityFile, err)
		}
		span.LineStyle.Width = vg.Points(6)
		span.LineStyle.Color = withAlpha(hexColor(types.ColorForCategory(e.Category)), 0.6)
		p.Add(span)

		names[i] = e.Name
		bases[i] = plotter.XY{X: e.Base.InexactFloat64(), Y: y}
		ends[i] = plotter.XY{X: hi, Y: y}
		labels[i] = fmt.Sprintf("±%d", e.HalfRange())
	}

	dots, err := plotter.NewScatter(bases)
	if err != nil {
		return nil, errors.Render(VolatilityFile, err)
	}
	dots.GlyphStyle = draw.GlyphStyle{
		Color:  color.Black,
		Radius: vg.Points(4),
		Shape:  draw.CircleGlyph{},
	}
	p.Add(dots)

	spread, err := endLabels(ends, labels, 8)
	if err != nil {
		return nil, errors.Render(VolatilityFile, err)
	}
	spread.Offset = vg.Point{X: vg.Points(8)}
	p.Add(spread)

	p.NominalY(names...)
	p.Y.Tick.Label.Font.Size = vg.Points(9)
	addCategoryLegend(p)

	return r.encodePlot(VolatilityFile, p, w, h)
}

// endLabels places left-aligned labels just right of each point
func endLabels(xys plotter.XYs, text []string, size float64) (*plotter.Labels, error) {
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: text})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = draw.XLeft
		l.TextStyle[i].YAlign = draw.YCenter
		l.TextStyle[i].Font.Size = vg.Points(size)
	}
	l.Offset = vg.Point{X: vg.Points(4)}
	return l, nil
}

// verticalGrid is a dashed grid along the value axis only
func verticalGrid() plot.Plotter {
	g := plotter.NewGrid()
	g.Horizontal.Color = nil
	g.Vertical.Color = color.Gray{Y: 180}
	g.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	return g
}
