package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"resource-economy/core/analysis"
	"resource-economy/core/catalog"
	"resource-economy/core/types"
	"resource-economy/internal/errors"
)

const economy = `{
  "wine":  {"base_price": 120, "category": "luxury", "favored_season": ["fall"],
            "event_modifiers": {"grand_festival": 1.5, "war": 0.8}, "local_biomes": ["warm"]},
  "bread": {"base_price": 10, "category": "food", "favored_season": ["summer"],
            "local_biomes": ["warm", "steppe"]},
  "axe":   {"base_price": 45, "category": "weapon", "event_modifiers": {"war": 2.2},
            "local_biomes": ["cold"]},
  "ore":   {"base_price": 30, "category": "mystery"}
}`

// low resolution keeps the tests fast
func testRenderer() *Renderer {
	return New(Options{DPI: 20})
}

func load(t *testing.T) (*catalog.Catalog, *catalog.SeasonTable) {
	t.Helper()
	cat, err := catalog.ParseResources([]byte(economy))
	if err != nil {
		t.Fatal(err)
	}
	table, err := catalog.ParseBiomeSeasons([]byte(`{"cold": {"sequence": ["winter", "winter", "summer"]}}`))
	if err != nil {
		t.Fatal(err)
	}
	return cat, table
}

func assertPNG(t *testing.T, c *Chart, name string) {
	t.Helper()
	if c.Name != name {
		t.Errorf("chart name = %s, want %s", c.Name, name)
	}
	if c.ContentType != ContentTypePNG {
		t.Errorf("content type = %s", c.ContentType)
	}
	if !bytes.HasPrefix(c.Data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatalf("%s is not a PNG", name)
	}
	if _, err := png.Decode(bytes.NewReader(c.Data)); err != nil {
		t.Fatalf("%s does not decode: %v", name, err)
	}
}

func TestPriceOverview(t *testing.T) {
	cat, _ := load(t)
	entries, err := analysis.SortByPrice(cat)
	if err != nil {
		t.Fatal(err)
	}

	c, err := testRenderer().PriceOverview(entries)
	if err != nil {
		t.Fatalf("PriceOverview: %v", err)
	}
	assertPNG(t, c, PriceOverviewFile)
}

func TestSeasonalImpact(t *testing.T) {
	cat, _ := load(t)
	m, err := analysis.SeasonalMultipliers(cat)
	if err != nil {
		t.Fatal(err)
	}

	c, err := testRenderer().SeasonalImpact(m)
	if err != nil {
		t.Fatalf("SeasonalImpact: %v", err)
	}
	assertPNG(t, c, SeasonalImpactFile)
}

func TestVolatility(t *testing.T) {
	cat, _ := load(t)
	entries, err := analysis.Volatility(cat)
	if err != nil {
		t.Fatal(err)
	}

	c, err := testRenderer().Volatility(entries)
	if err != nil {
		t.Fatalf("Volatility: %v", err)
	}
	assertPNG(t, c, VolatilityFile)
}

func TestEventImpact(t *testing.T) {
	cat, _ := load(t)
	m, err := analysis.EventImpact(cat)
	if err != nil {
		t.Fatal(err)
	}

	// wine war 0.8 sits inside the scale, axe war 2.2 on its edge
	c, err := testRenderer().EventImpact(m)
	if err != nil {
		t.Fatalf("EventImpact: %v", err)
	}
	assertPNG(t, c, EventImpactFile)
}

func TestBiomeTimeline(t *testing.T) {
	cat, _ := load(t)
	tl, err := analysis.BiomeTimeline(cat)
	if err != nil {
		t.Fatal(err)
	}

	c, err := testRenderer().BiomeTimeline(tl)
	if err != nil {
		t.Fatalf("BiomeTimeline: %v", err)
	}
	assertPNG(t, c, TimelineFile)
}

func TestCitySeasonalPrices(t *testing.T) {
	cat, table := load(t)
	colors := ResourceColors(cat.Names())

	all, err := analysis.AllCitySeries(cat, table)
	if err != nil {
		t.Fatal(err)
	}

	rendered := 0
	for _, cs := range all {
		c, err := testRenderer().CitySeasonalPrices(cs, colors)
		if cs.Empty() {
			if !errors.IsType(err, errors.TypeEmptyResult) {
				t.Errorf("%s: expected empty result, got %v", cs.City.Name, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: %v", cs.City.Name, err)
		}
		assertPNG(t, c, CityFile(cs.City.Name))
		rendered++
	}

	// Draugaholt, Yalanga, Tenzura, Meiyara
	if rendered != 4 {
		t.Errorf("rendered %d city charts, want 4", rendered)
	}
}

func TestEmptyInputs(t *testing.T) {
	r := testRenderer()

	if _, err := r.PriceOverview(nil); !errors.IsType(err, errors.TypeEmptyResult) {
		t.Errorf("PriceOverview(nil) = %v", err)
	}
	if _, err := r.Volatility(nil); !errors.IsType(err, errors.TypeEmptyResult) {
		t.Errorf("Volatility(nil) = %v", err)
	}
	if _, err := r.EventImpact(nil); !errors.IsType(err, errors.TypeEmptyResult) {
		t.Errorf("EventImpact(nil) = %v", err)
	}
	if _, err := r.BiomeTimeline(nil); !errors.IsType(err, errors.TypeEmptyResult) {
		t.Errorf("BiomeTimeline(nil) = %v", err)
	}
	empty := &analysis.CitySeries{City: types.City{Name: "Peak", Biome: types.BiomeMountain}}
	if _, err := r.CitySeasonalPrices(empty, nil); !errors.IsType(err, errors.TypeEmptyResult) {
		t.Errorf("CitySeasonalPrices(empty) = %v", err)
	}
}

func TestDPIControlsImageSize(t *testing.T) {
	cat, _ := load(t)
	entries, _ := analysis.SortByPrice(cat)

	small, err := New(Options{DPI: 10}).PriceOverview(entries)
	if err != nil {
		t.Fatal(err)
	}
	large, err := New(Options{DPI: 20}).PriceOverview(entries)
	if err != nil {
		t.Fatal(err)
	}

	a, _ := png.DecodeConfig(bytes.NewReader(small.Data))
	b, _ := png.DecodeConfig(bytes.NewReader(large.Data))
	// 12in x 10in
	if a.Width != 120 || a.Height != 100 || b.Width != 240 || b.Height != 200 {
		t.Errorf("sizes %dx%d and %dx%d", a.Width, a.Height, b.Width, b.Height)
	}

	if New(Options{}).DPI() != DefaultDPI {
		t.Error("zero DPI must fall back to the default")
	}
}

func TestCityFile(t *testing.T) {
	if got := CityFile("Draugaholt"); got != "6_city_draugaholt_seasonal_prices.png" {
		t.Errorf("CityFile = %s", got)
	}
}

func TestHexColor(t *testing.T) {
	got := color.NRGBAModel.Convert(hexColor("#8BC34A")).(color.NRGBA)
	if got != (color.NRGBA{R: 0x8b, G: 0xc3, B: 0x4a, A: 0xff}) {
		t.Errorf("hexColor = %+v", got)
	}

	fallback, _ := parseHex(types.FallbackColor)
	if hexColor("nope") != color.Color(fallback) {
		t.Error("malformed color must fall back")
	}
}

func TestResourceColors(t *testing.T) {
	one := ResourceColors([]string{"salt"})
	if one["salt"] == nil {
		t.Fatal("single resource has no color")
	}

	many := ResourceColors([]string{"a", "b", "c"})
	if len(many) != 3 || many["a"] == many["c"] {
		t.Errorf("colors not distinct: %v", many)
	}
}
