// Package pricing - Price calculator and range tests
// These tests pin the pricing rules to exact decimal outputs.
package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"resource-economy/core/types"
	"resource-economy/internal/errors"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func festivalResource() *types.Resource {
	return types.NewResource("silk", types.CategoryLuxury).
		SetBasePrice(d("100")).
		Favor(types.SeasonSummer).
		AddModifier("festival", d("1.5"))
}

func assertPrice(t *testing.T, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(d(want)) {
		t.Errorf("got %s, want %s", got, want)
	}
}

// TestCalculateWorkedExample covers the reference scenarios
func TestCalculateWorkedExample(t *testing.T) {
	r := festivalResource()

	p, err := Calculate(r, types.SeasonSummer, nil)
	if err != nil {
		t.Fatal(err)
	}
	assertPrice(t, p, "90")

	p, _ = Calculate(r, types.SeasonWinter, nil)
	assertPrice(t, p, "110")

	p, _ = Calculate(r, types.SeasonSummer, []string{"festival"})
	assertPrice(t, p, "135")
}

// TestCalculateNoSeason proves SeasonNone skips the seasonal adjustment
func TestCalculateNoSeason(t *testing.T) {
	r := festivalResource()

	p, _ := Calculate(r, types.SeasonNone, nil)
	assertPrice(t, p, "100")

	p, _ = Calculate(r, types.SeasonNone, []string{"festival"})
	assertPrice(t, p, "150")
}

// TestSeasonalAdjustmentIsBinary checks favored vs not for every season
func TestSeasonalAdjustmentIsBinary(t *testing.T) {
	r := types.NewResource("grain", types.CategoryFood).
		SetBasePrice(d("37")).
		Favor(types.SeasonFall, types.SeasonWinter)

	for _, s := range types.Seasons {
		p, err := Calculate(r, s, nil)
		if err != nil {
			t.Fatal(err)
		}
		want := Round(d("37").Mul(UnfavoredMultiplier))
		if r.Favors(s) {
			want = Round(d("37").Mul(FavoredMultiplier))
		}
		if !p.Equal(want) {
			t.Errorf("%s: got %s, want %s", s, p, want)
		}
	}
}

// TestUnknownEventsAreIgnored proves events without a modifier change nothing
func TestUnknownEventsAreIgnored(t *testing.T) {
	r := festivalResource()

	for _, s := range append([]types.Season{types.SeasonNone}, types.Seasons...) {
		base, _ := Calculate(r, s, nil)
		with, _ := Calculate(r, s, []string{"plague", "eclipse"})
		if !base.Equal(with) {
			t.Errorf("%q: unknown events changed price %s -> %s", s, base, with)
		}
	}

	if unknown := UnknownEvents(r, []string{"festival", "plague"}); len(unknown) != 1 || unknown[0] != "plague" {
		t.Errorf("UnknownEvents = %v", unknown)
	}
}

// TestModifierAppliesAfterSeason checks calc(s,[e]) == round(calc(s,[]) * m)
func TestModifierAppliesAfterSeason(t *testing.T) {
	r := types.NewResource("iron", types.CategoryMaterial).
		SetBasePrice(d("40")).
		Favor(types.SeasonSpring).
		AddModifier("war", d("1.75")).
		AddModifier("peace", d("0.85"))

	for _, s := range types.Seasons {
		seasonal, _ := Calculate(r, s, nil)
		for _, e := range r.EventModifiers {
			got, _ := Calculate(r, s, []string{e.Event})
			want := Round(seasonal.Mul(e.Multiplier))
			if !got.Equal(want) {
				t.Errorf("%s/%s: got %s, want %s", s, e.Event, got, want)
			}
		}
	}
}

// TestEventsCompound proves multiple events multiply in order
func TestEventsCompound(t *testing.T) {
	r := types.NewResource("salt", types.CategoryTradeGood).
		SetBasePrice(d("20")).
		AddModifier("storm", d("1.5")).
		AddModifier("caravan", d("0.5"))

	p, _ := Calculate(r, types.SeasonSpring, []string{"storm", "caravan"})
	// 20 * 1.1 * 1.5 * 0.5
	assertPrice(t, p, "16.5")

	p, _ = Calculate(r, types.SeasonSpring, []string{"storm", "storm"})
	// 20 * 1.1 * 1.5 * 1.5
	assertPrice(t, p, "49.5")
}

// TestRoundingIsHalfEven documents the rounding mode at exact halves
func TestRoundingIsHalfEven(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"0.25", "0.22"},   // 0.225 -> 0.22
		{"0.35", "0.32"},   // 0.315 -> 0.32
		{"1.05", "0.94"},   // 0.945 -> 0.94
		{"12.34", "11.11"}, // 11.106 -> 11.11
	}
	for _, tt := range tests {
		r := types.NewResource("coin", types.CategoryTradeGood).
			SetBasePrice(d(tt.base)).
			Favor(types.SeasonSpring)
		p, _ := Calculate(r, types.SeasonSpring, nil)
		if !p.Equal(d(tt.want)) {
			t.Errorf("base %s: got %s, want %s", tt.base, p, tt.want)
		}
	}
}

// TestMissingBasePrice proves pricing fails without a base price
func TestMissingBasePrice(t *testing.T) {
	r := types.NewResource("ghost", types.CategoryCrafted)

	_, err := Calculate(r, types.SeasonSpring, nil)
	if !errors.IsType(err, errors.TypeMissingField) {
		t.Fatalf("expected missing field error, got %v", err)
	}
	if _, _, err := PriceRange(r); !errors.IsType(err, errors.TypeMissingField) {
		t.Fatalf("expected PriceRange to propagate missing field, got %v", err)
	}
	t.Logf("Correctly failed: %v", err)
}

// TestQuoteCopiesEvents proves quotes do not alias the caller's slice
func TestQuoteCopiesEvents(t *testing.T) {
	events := []string{"festival"}
	q, err := Quote(festivalResource(), types.SeasonSummer, events)
	if err != nil {
		t.Fatal(err)
	}
	events[0] = "changed"
	if q.Events[0] != "festival" {
		t.Error("quote events alias caller slice")
	}
	assertPrice(t, q.Price, "135")
}

// TestPriceRangeWorkedExample checks the range over seasons and events
func TestPriceRangeWorkedExample(t *testing.T) {
	min, max, err := PriceRange(festivalResource())
	if err != nil {
		t.Fatal(err)
	}
	// summer alone = 90, non-summer with festival = 110 * 1.5 = 165
	assertPrice(t, min, "90")
	assertPrice(t, max, "165")
}

// TestPriceRangeExcludesBasePrice proves the no-season price is not a candidate
func TestPriceRangeExcludesBasePrice(t *testing.T) {
	r := types.NewResource("plain", types.CategoryMaterial).SetBasePrice(d("50"))

	min, max, err := PriceRange(r)
	if err != nil {
		t.Fatal(err)
	}
	// Never favored: every scenario is 55. The base price 50 is excluded.
	assertPrice(t, min, "55")
	assertPrice(t, max, "55")
}

// TestPriceRangeOrdering checks min <= max and degenerate equality
func TestPriceRangeOrdering(t *testing.T) {
	resources := []*types.Resource{
		festivalResource(),
		types.NewResource("plain", types.CategoryMaterial).SetBasePrice(d("7")),
		types.NewResource("cheapener", types.CategoryFood).
			SetBasePrice(d("12")).
			AddModifier("harvest", d("0.6")),
		types.NewResource("all-year", types.CategoryFood).
			SetBasePrice(d("12")).
			Favor(types.Seasons...),
	}

	for _, r := range resources {
		min, max, err := PriceRange(r)
		if err != nil {
			t.Fatal(err)
		}
		if min.GreaterThan(max) {
			t.Errorf("%s: min %s > max %s", r.Name, min, max)
		}
		invariant := len(r.EventModifiers) == 0 && (len(r.FavoredSeasons) == 0 || len(r.FavoredSeasons) == len(types.Seasons))
		if invariant != min.Equal(max) {
			t.Errorf("%s: invariant=%v but min=%s max=%s", r.Name, invariant, min, max)
		}
	}
}

// TestScenarioCount checks seasons + events x seasons
func TestScenarioCount(t *testing.T) {
	r := festivalResource().AddModifier("war", d("2"))
	quotes, err := Scenarios(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(quotes) != 12 {
		t.Fatalf("expected 12 scenarios, got %d", len(quotes))
	}
	for _, q := range quotes {
		if q.Season == types.SeasonNone {
			t.Error("scenario without season")
		}
	}
}
