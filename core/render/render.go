// Package render draws the economy charts with gonum/plot. Every chart is
// rendered completely into memory and returned as PNG bytes; writing the
// bytes anywhere is the caller's concern.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"resource-economy/core/types"
	"resource-economy/internal/errors"
)

// Chart file names, in generation order
const (
	PriceOverviewFile  = "1_price_overview.png"
	SeasonalImpactFile = "2_seasonal_impact.png"
	VolatilityFile     = "3_volatility_analysis.png"
	EventImpactFile    = "4_event_impact.png"
	TimelineFile       = "5_biome_seasonal_timeline.png"
)

// ContentTypePNG is the media type of every rendered chart
const ContentTypePNG = "image/png"

// DefaultDPI matches print-quality output
const DefaultDPI = 300

// CityFile returns the file name of a city's seasonal price chart
func CityFile(city string) string {
	return fmt.Sprintf("6_city_%s_seasonal_prices.png", strings.ToLower(city))
}

// Chart is a fully rendered image
type Chart struct {
	Name        string
	ContentType string
	Data        []byte
}

// Options controls rendering
type Options struct {
	// DPI is the output resolution
	DPI int
}

// Renderer turns aggregations into PNG charts
type Renderer struct {
	dpi int
}

// New creates a renderer. A non-positive DPI falls back to DefaultDPI.
func New(opts Options) *Renderer {
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &Renderer{dpi: dpi}
}

// DPI returns the output resolution
func (r *Renderer) DPI() int {
	return r.dpi
}

// encode draws onto an in-memory canvas and returns the PNG bytes.
// gonum/plot reports some invalid input by panicking, so panics are
// turned into render errors for the named chart.
func (r *Renderer) encode(name string, w, h vg.Length, paint func(dc draw.Canvas)) (chart *Chart, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			chart = nil
			err = errors.Render(name, fmt.Errorf("%v", rec))
		}
	}()

	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(r.dpi))
	paint(draw.New(img))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(&buf); err != nil {
		return nil, errors.Render(name, err)
	}

	return &Chart{
		Name:        name,
		ContentType: ContentTypePNG,
		Data:        buf.Bytes(),
	}, nil
}

// encodePlot renders a single plot filling the whole canvas
func (r *Renderer) encodePlot(name string, p *plot.Plot, w, h vg.Length) (*Chart, error) {
	return r.encode(name, w, h, func(dc draw.Canvas) {
		p.Draw(dc)
	})
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.Title.Padding = vg.Points(12)
	p.X.Label.Text = xLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.Text = yLabel
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	return p
}

// hexColor parses "#rrggbb". Malformed input yields the fallback color.
func hexColor(hex string) color.Color {
	c, ok := parseHex(hex)
	if !ok {
		c, _ = parseHex(types.FallbackColor)
	}
	return c
}

func parseHex(hex string) (color.NRGBA, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}

// withAlpha returns c with the given opacity in [0, 1]
func withAlpha(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(alpha*255 + 0.5)
	return n
}

// ResourceColors assigns each resource a stable color from an evenly
// spaced rainbow, so a resource keeps its color across city charts.
func ResourceColors(names []string) map[string]color.Color {
	n := len(names)
	if n < 2 {
		n = 2
	}
	colors := palette.Rainbow(n, palette.Red, palette.Magenta, 0.85, 0.85, 1).Colors()

	out := make(map[string]color.Color, len(names))
	for i, name := range names {
		out[name] = colors[i]
	}
	return out
}

// swatch is a legend thumbnail: a filled, outlined square
type swatch struct {
	fill color.Color
}

// Thumbnail implements plot.Thumbnailer
func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.fill, c.ClipPolygonXY(pts))
	c.StrokeLines(draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)}, append(pts, pts[0]))
}

// addCategoryLegend lists every known category, used or not
func addCategoryLegend(p *plot.Plot) {
	for _, cat := range types.Categories {
		p.Legend.Add(cat.Title(), swatch{fill: hexColor(types.ColorForCategory(cat))})
	}
	p.Legend.TextStyle.Font.Size = vg.Points(10)
}

// barThickness spreads n bars across the usable span of an axis
func barThickness(span vg.Length, n int) vg.Length {
	if n <= 0 {
		return vg.Points(1)
	}
	t := span / vg.Length(n) * 0.8
	if t < vg.Points(1) {
		t = vg.Points(1)
	}
	return t
}
