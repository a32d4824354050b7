package analysis

import (
	"testing"

	"github.com/shopspring/decimal"

	"resource-economy/core/catalog"
	"resource-economy/core/types"
	"resource-economy/internal/errors"
)

const economy = `{
  "wine":   {"base_price": 120, "category": "luxury", "favored_season": ["fall"],
             "event_modifiers": {"festival": 1.5, "war": 0.8}, "local_biomes": ["warm"]},
  "bread":  {"base_price": 10, "category": "food", "favored_season": ["summer"],
             "local_biomes": ["warm", "steppe"]},
  "axe":    {"base_price": 45, "category": "weapon", "event_modifiers": {"war": 2.2},
             "local_biomes": ["cold"]},
  "apple":  {"base_price": 10, "category": "food", "local_biomes": ["warm", "coastal"]},
  "marble": {"base_price": 60, "category": "material"}
}`

const sequences = `{
  "cold": {"sequence": ["winter", "winter", "spring", "summer", "winter"]},
  "warm": {"sequence": ["summer", "fall"]}
}`

func load(t *testing.T) (*catalog.Catalog, *catalog.SeasonTable) {
	t.Helper()
	cat, err := catalog.ParseResources([]byte(economy))
	if err != nil {
		t.Fatal(err)
	}
	table, err := catalog.ParseBiomeSeasons([]byte(sequences))
	if err != nil {
		t.Fatal(err)
	}
	return cat, table
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSortByPriceIsStable(t *testing.T) {
	cat, _ := load(t)

	entries, err := SortByPrice(cat)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"bread", "apple", "axe", "marble", "wine"}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("position %d: got %s, want %s", i, entries[i].Name, name)
		}
	}
}

func TestSortByPriceMissingBase(t *testing.T) {
	cat := catalog.NewCatalog()
	cat.Register(types.NewResource("ghost", types.CategoryCrafted))

	if _, err := SortByPrice(cat); !errors.IsType(err, errors.TypeMissingField) {
		t.Fatalf("expected missing field, got %v", err)
	}
}

func TestSeasonalMultipliers(t *testing.T) {
	cat, _ := load(t)

	m, err := SeasonalMultipliers(cat)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Rows) != 5 || len(m.Columns) != 4 {
		t.Fatalf("unexpected shape %dx%d", len(m.Rows), len(m.Columns))
	}

	wine, ok := m.Row("wine")
	if !ok {
		t.Fatal("wine row missing")
	}
	// spring, summer, fall, winter
	want := []string{"1.1", "1.1", "0.9", "1.1"}
	for j, w := range want {
		if !wine[j].Equal(d(w)) {
			t.Errorf("wine/%s = %s, want %s", m.Columns[j], wine[j], w)
		}
	}
	if m.Rows[0] != "wine" || m.Rows[4] != "marble" {
		t.Errorf("rows must follow catalog order, got %v", m.Rows)
	}
}

func TestEventImpact(t *testing.T) {
	cat, _ := load(t)

	m, err := EventImpact(cat)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Columns) != 2 || m.Columns[0] != "festival" || m.Columns[1] != "war" {
		t.Fatalf("unexpected event columns %v", m.Columns)
	}

	axe, _ := m.Row("axe")
	if !axe[0].Equal(Neutral) || !axe[1].Equal(d("2.2")) {
		t.Errorf("axe row = %v", axe)
	}

	for _, name := range []string{"bread", "apple", "marble"} {
		row, _ := m.Row(name)
		for j, cell := range row {
			if !cell.Equal(Neutral) {
				t.Errorf("%s/%s = %s, want neutral", name, m.Columns[j], cell)
			}
		}
	}
}

func TestEventImpactWithoutEvents(t *testing.T) {
	cat, err := catalog.ParseResources([]byte(`{"salt": {"base_price": 3, "category": "trade_good"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := EventImpact(cat); !errors.IsType(err, errors.TypeEmptyResult) {
		t.Fatalf("expected empty result, got %v", err)
	}
}

func TestVolatilityRanking(t *testing.T) {
	cat, _ := load(t)

	entries, err := Volatility(cat)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Range.GreaterThan(entries[i-1].Range) {
			t.Errorf("not sorted descending at %d: %s > %s", i, entries[i].Range, entries[i-1].Range)
		}
	}

	// wine: fall with war 86.4, other seasons with festival 198
	if entries[0].Name != "wine" || !entries[0].Range.Equal(d("111.6")) {
		t.Errorf("top entry = %+v", entries[0])
	}
	if entries[0].HalfRange() != 55 {
		t.Errorf("wine half range = %d", entries[0].HalfRange())
	}
	// axe: 45*1.1 = 49.5, with war 108.9
	if entries[1].Name != "axe" || !entries[1].Range.Equal(d("59.4")) {
		t.Errorf("second entry = %+v", entries[1])
	}

	// marble has no favored season and no events
	last := entries[len(entries)-1]
	if last.Name != "marble" || !last.Min.Equal(last.Max) || !last.Range.IsZero() {
		t.Errorf("last entry = %+v", last)
	}
	if !last.Base.Equal(d("60")) {
		t.Errorf("marble base = %s", last.Base)
	}
}

func TestVolatilityTiesKeepCatalogOrder(t *testing.T) {
	cat, err := catalog.ParseResources([]byte(`{
	  "b": {"base_price": 10, "category": "food"},
	  "a": {"base_price": 20, "category": "food"},
	  "c": {"base_price": 10, "category": "food"}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	entries, err := Volatility(cat)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []string{"b", "a", "c"} {
		if entries[i].Name != want {
			t.Errorf("position %d: got %s, want %s", i, entries[i].Name, want)
		}
	}
}

func TestCitySeriesUsesBiomeSequence(t *testing.T) {
	cat, table := load(t)

	cs, err := BuildCitySeries(cat, table, types.City{Name: "Draugaholt", Biome: types.BiomeCold})
	if err != nil {
		t.Fatal(err)
	}
	if len(cs.Series) != 1 || cs.Series[0].Resource != "axe" {
		t.Fatalf("unexpected series %+v", cs.Series)
	}
	points := cs.Series[0].Points
	if len(points) != 5 {
		t.Fatalf("expected one point per sequence position, got %d", len(points))
	}
	for i, p := range points {
		if p.Position != i {
			t.Errorf("point %d has position %d", i, p.Position)
		}
		if !p.Price.Equal(d("49.5")) {
			t.Errorf("point %d price %s", i, p.Price)
		}
	}
}

func TestCitySeriesWarm(t *testing.T) {
	cat, table := load(t)

	cs, err := BuildCitySeries(cat, table, types.City{Name: "Yalanga", Biome: types.BiomeWarm})
	if err != nil {
		t.Fatal(err)
	}

	names := make([]string, len(cs.Series))
	for i, s := range cs.Series {
		names[i] = s.Resource
	}
	if len(names) != 3 || names[0] != "wine" || names[1] != "bread" || names[2] != "apple" {
		t.Fatalf("unexpected warm resources %v", names)
	}

	// bread favors summer: summer 9, fall 11
	bread := cs.Series[1]
	if !bread.Points[0].Price.Equal(d("9")) || !bread.Points[1].Price.Equal(d("11")) {
		t.Errorf("bread points %+v", bread.Points)
	}
}

func TestCitySeriesFallbackAndEmpty(t *testing.T) {
	cat, table := load(t)

	// steppe has no custom sequence: canonical order
	cs, err := BuildCitySeries(cat, table, types.City{Name: "Tenzura", Biome: types.BiomeSteppe})
	if err != nil {
		t.Fatal(err)
	}
	if len(cs.Sequence) != 4 || cs.Sequence[0] != types.SeasonSpring {
		t.Errorf("expected canonical sequence, got %v", cs.Sequence)
	}

	// nothing is native to mountain
	empty, err := BuildCitySeries(cat, table, types.City{Name: "Peak", Biome: types.BiomeMountain})
	if err != nil {
		t.Fatalf("empty biome must not fail: %v", err)
	}
	if !empty.Empty() {
		t.Errorf("expected empty series, got %+v", empty.Series)
	}
}

func TestAllCitySeries(t *testing.T) {
	cat, table := load(t)

	all, err := AllCitySeries(cat, table)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(types.Cities) {
		t.Fatalf("expected %d cities, got %d", len(types.Cities), len(all))
	}
	if all[2].City.Name != "Corvienne" || len(all[2].Series) != 1 {
		t.Errorf("corvienne = %+v", all[2])
	}
}

func TestBiomeTimeline(t *testing.T) {
	cat, _ := load(t)

	tl, err := BiomeTimeline(cat)
	if err != nil {
		t.Fatal(err)
	}
	// bread and apple tie at 10; bread comes first in the catalog
	if tl.Resource != "bread" {
		t.Fatalf("timeline resource = %s", tl.Resource)
	}
	if len(tl.Months) != 12 || len(tl.Lines) != len(types.Biomes) {
		t.Fatalf("unexpected shape %d months, %d lines", len(tl.Months), len(tl.Lines))
	}

	for _, line := range tl.Lines {
		switch line.Biome {
		case types.BiomeWarm:
			if !line.Local || !line.Prices[3].Equal(d("9")) || !line.Prices[0].Equal(d("11")) {
				t.Errorf("warm line %+v", line)
			}
		case types.BiomeCold:
			// non-local: 11 * 1.2 in spring, 9 * 1.2 in summer
			if line.Local || !line.Prices[0].Equal(d("13.2")) || !line.Prices[4].Equal(d("10.8")) {
				t.Errorf("cold line %+v", line)
			}
		}
	}
}

func TestBiomeTimelineWithoutFood(t *testing.T) {
	cat, err := catalog.ParseResources([]byte(`{"sword": {"base_price": 80, "category": "weapon"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := BiomeTimeline(cat); !errors.IsType(err, errors.TypeEmptyResult) {
		t.Fatalf("expected empty result, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	cat, table := load(t)

	s, err := Summarize(cat, table)
	if err != nil {
		t.Fatal(err)
	}
	if s.Resources != 5 || len(s.Prices) != 5 || len(s.Volatility) != 5 {
		t.Errorf("unexpected summary sizes %+v", s)
	}
	if s.Events.Empty() || s.Timeline == nil {
		t.Error("expected events and timeline")
	}

	bare, _ := catalog.ParseResources([]byte(`{"sword": {"base_price": 80, "category": "weapon"}}`))
	s, err = Summarize(bare, table)
	if err != nil {
		t.Fatalf("empty results must not fail the summary: %v", err)
	}
	if s.Events != nil || s.Timeline != nil {
		t.Errorf("expected nil events and timeline, got %+v %+v", s.Events, s.Timeline)
	}
}
