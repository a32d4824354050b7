package render

import (
	"image/color"
	"math"

	"github.com/shopspring/decimal"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"resource-economy/core/analysis"
	"resource-economy/core/types"
	"resource-economy/internal/errors"
)

// Color scale bounds of the two heatmaps
const (
	SeasonalScaleMin = 0.85
	SeasonalScaleMax = 1.15
	EventScaleMin    = 0.6
	EventScaleMax    = 2.2
)

// matrixGrid adapts an analysis.Matrix to plotter.GridXYZ. Grid row 0 is
// drawn at the bottom, so rows are flipped to put the first resource on top.
type matrixGrid struct {
	m *analysis.Matrix
}

func (g matrixGrid) Dims() (c, r int) { return len(g.m.Columns), len(g.m.Rows) }
func (g matrixGrid) X(c int) float64 { return float64(c) }
func (g matrixGrid) Y(r int) float64 { return float64(r) }

func (g matrixGrid) Z(c, r int) float64 {
	return g.m.At(g.row(r), c).InexactFloat64()
}

func (g matrixGrid) row(r int) int {
	return len(g.m.Rows) - 1 - r
}

type heatmapLayout struct {
	file     string
	title    string
	columns  []string
	min, max float64
	w, h     vg.Length
	rotate   bool
	annotate func(v decimal.Decimal) (string, bool)
}

// SeasonalImpact draws the resource x season multiplier heatmap on a
// fixed green-to-red scale, annotating every cell with two decimals.
func (r *Renderer) SeasonalImpact(m *analysis.Matrix) (*Chart, error) {
	if m.Empty() {
		return nil, errors.EmptyResult("no seasonal multipliers to chart")
	}
	columns := make([]string, len(m.Columns))
	for i, c := range m.Columns {
		columns[i] = types.Title(c)
	}

	return r.heatmap(m, heatmapLayout{
		file:    SeasonalImpactFile,
		title:   "Seasonal Price Multipliers by Resource",
		columns: columns,
		min:     SeasonalScaleMin,
		max:     SeasonalScaleMax,
		w:       10 * vg.Inch,
		h:       14 * vg.Inch,
		annotate: func(v decimal.Decimal) (string, bool) {
			return v.StringFixed(2), true
		},
	})
}

// EventImpact draws the resource x event modifier heatmap. Only cells that
// differ from the neutral multiplier are annotated.
func (r *Renderer) EventImpact(m *analysis.Matrix) (*Chart, error) {
	if m.Empty() {
		return nil, errors.EmptyResult("no events to chart")
	}
	columns := make([]string, len(m.Columns))
	for i, c := range m.Columns {
		columns[i] = types.Title(c)
	}

	return r.heatmap(m, heatmapLayout{
		file:    EventImpactFile,
		title:   "Event Impact on Resource Prices",
		columns: columns,
		min:     EventScaleMin,
		max:     EventScaleMax,
		w:       14 * vg.Inch,
		h:       12 * vg.Inch,
		rotate:  true,
		annotate: func(v decimal.Decimal) (string, bool) {
			if v.Equal(analysis.Neutral) {
				return "", false
			}
			return v.StringFixed(1) + "x", true
		},
	})
}

func (r *Renderer) heatmap(m *analysis.Matrix, layout heatmapLayout) (*Chart, error) {
	cm := moreland.SmoothGreenRed()
	cm.SetMax(layout.max)
	cm.SetMin(layout.min)
	pal := cm.Palette(255)
	colors := pal.Colors()

	grid := matrixGrid{m: m}
	hm := plotter.NewHeatMap(grid, pal)
	hm.Min, hm.Max = layout.min, layout.max
	hm.Underflow = colors[0]
	hm.Overflow = colors[len(colors)-1]
	hm.NaN = color.White

	p := newPlot(layout.title, "", "")
	p.Add(hm)

	cells, err := cellLabels(grid, layout.annotate)
	if err != nil {
		return nil, errors.Render(layout.file, err)
	}
	if cells != nil {
		p.Add(cells)
	}

	rows := make([]string, len(m.Rows))
	for i := range rows {
		rows[i] = m.Rows[grid.row(i)]
	}
	p.NominalY(rows...)
	p.Y.Tick.Label.Font.Size = vg.Points(9)
	p.NominalX(layout.columns...)
	p.X.Tick.Label.Font.Size = vg.Points(11)
	if layout.rotate {
		p.X.Tick.Label.Rotation = math.Pi / 4
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true})
	bar.HideX()
	bar.Y.Label.Text = "Price Multiplier"
	bar.Y.Label.TextStyle.Font.Size = vg.Points(11)
	bar.Title.Padding = p.Title.Padding

	return r.encode(layout.file, layout.w, layout.h, func(dc draw.Canvas) {
		width := dc.Max.X - dc.Min.X
		barWidth := width / 8
		p.Draw(draw.Crop(dc, 0, -barWidth, 0, 0))
		// align the bar with the data area below the main title
		top := -(p.Title.TextStyle.Height(p.Title.Text) + p.Title.Padding)
		bar.Draw(draw.Crop(dc, width-barWidth+vg.Points(10), 0, vg.Inch, top))
	})
}

// cellLabels centers an annotation on every cell the annotate func accepts
func cellLabels(g matrixGrid, annotate func(decimal.Decimal) (string, bool)) (*plotter.Labels, error) {
	var xys plotter.XYs
	var text []string

	cols, rows := g.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			s, ok := annotate(g.m.At(g.row(r), c))
			if !ok {
				continue
			}
			xys = append(xys, plotter.XY{X: g.X(c), Y: g.Y(r)})
			text = append(text, s)
		}
	}
	if len(xys) == 0 {
		return nil, nil
	}

	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: text})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = draw.XCenter
		l.TextStyle[i].YAlign = draw.YCenter
		l.TextStyle[i].Font.Size = vg.Points(7)
	}
	return l, nil
}
