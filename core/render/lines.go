package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"resource-economy/core/analysis"
	"resource-economy/core/types"
	"resource-economy/internal/errors"
)

// BiomeTimeline draws the timeline resource's monthly price in every
// biome. Biomes where the resource is not native are dashed.
func (r *Renderer) BiomeTimeline(tl *analysis.Timeline) (*Chart, error) {
	if tl == nil || len(tl.Lines) == 0 || len(tl.Months) == 0 {
		return nil, errors.EmptyResult("no timeline to chart")
	}

	local := make([]string, len(tl.LocalBiomes))
	for i, b := range tl.LocalBiomes {
		local[i] = b.Title()
	}
	where := strings.Join(local, ", ")
	if where == "" {
		where = "none"
	}

	const w, h = 14 * vg.Inch, 8 * vg.Inch
	p := newPlot(
		fmt.Sprintf("%q Price Across Biomes\n(%d months per season, local to: %s)",
			types.Title(tl.Resource), types.MonthsPerSeason, where),
		"Month (Turn)", "Price (Gold)")
	p.Add(plotter.NewGrid())

	for _, line := range tl.Lines {
		xys := make(plotter.XYs, len(tl.Months))
		for i, month := range tl.Months {
			xys[i] = plotter.XY{X: float64(month), Y: line.Prices[i].InexactFloat64()}
		}

		l, pts, err := styledLine(xys, hexColor(types.BiomeColors[line.Biome]))
		if err != nil {
			return nil, errors.Render(TimelineFile, err)
		}
		if !line.Local {
			l.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		}
		p.Add(l, pts)
		p.Legend.Add(line.Biome.Title(), l, pts)
	}

	ticks := make([]plot.Tick, len(tl.Months))
	for i, month := range tl.Months {
		label := strconv.Itoa(month)
		if (month-1)%types.MonthsPerSeason == 0 {
			label += "\n" + types.SeasonForMonth(month).Title()
		}
		ticks[i] = plot.Tick{Value: float64(month), Label: label}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = vg.Points(11)

	return r.encodePlot(TimelineFile, p, w, h)
}

// CitySeasonalPrices draws one price line per resource native to the
// city's biome across the biome's season sequence. colors pins each
// resource to the same color on every city chart; resources missing from
// it get the fallback color.
func (r *Renderer) CitySeasonalPrices(cs *analysis.CitySeries, colors map[string]color.Color) (*Chart, error) {
	if cs == nil {
		return nil, errors.EmptyResult("no city series to chart")
	}
	file := CityFile(cs.City.Name)
	if cs.Empty() {
		return nil, errors.EmptyResult("no resources available in " + cs.City.Name).
			WithContext("city", cs.City.Name).
			WithContext("biome", string(cs.City.Biome))
	}

	seasons := make([]string, len(cs.Sequence))
	ticks := make([]plot.Tick, len(cs.Sequence))
	for i, s := range cs.Sequence {
		seasons[i] = s.Title()
		ticks[i] = plot.Tick{Value: float64(i), Label: fmt.Sprintf("%d. %s", i+1, s.Title())}
	}

	const w, h = 12 * vg.Inch, 8 * vg.Inch
	p := newPlot(
		fmt.Sprintf("%s - Seasonal Resource Prices\n(%s Biome: %s)",
			cs.City.Name, cs.City.Biome.Title(), strings.Join(seasons, ", ")),
		"Seasonal Position", "Price (Gold)")
	p.Add(plotter.NewGrid())

	for _, s := range cs.Series {
		xys := make(plotter.XYs, len(s.Points))
		for i, pt := range s.Points {
			xys[i] = plotter.XY{X: float64(pt.Position), Y: pt.Price.InexactFloat64()}
		}

		c, ok := colors[s.Resource]
		if !ok {
			c = hexColor(types.FallbackColor)
		}
		l, pts, err := styledLine(xys, c)
		if err != nil {
			return nil, errors.Render(file, err)
		}
		p.Add(l, pts)
		p.Legend.Add(types.Title(s.Resource), l, pts)
	}

	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	// keep single-position sequences from collapsing the axis
	p.X.Min = math.Min(p.X.Min, -0.5)
	p.X.Max = math.Max(p.X.Max, float64(len(cs.Sequence))-0.5)
	p.Legend.Top = true
	p.Legend.TextStyle.Font.Size = vg.Points(9)

	return r.encodePlot(file, p, w, h)
}

func styledLine(xys plotter.XYs, c color.Color) (*plotter.Line, *plotter.Scatter, error) {
	l, pts, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, nil, err
	}
	l.Color = c
	l.Width = vg.Points(2.5)
	pts.Color = c
	pts.Shape = draw.CircleGlyph{}
	pts.Radius = vg.Points(3)
	return l, pts, nil
}
