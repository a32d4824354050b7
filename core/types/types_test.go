package types

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSeasonForMonth(t *testing.T) {
	tests := []struct {
		month int
		want  Season
	}{
		{1, SeasonSpring},
		{3, SeasonSpring},
		{4, SeasonSummer},
		{9, SeasonFall},
		{10, SeasonWinter},
		{12, SeasonWinter},
		{0, SeasonNone},
		{13, SeasonNone},
	}
	for _, tt := range tests {
		if got := SeasonForMonth(tt.month); got != tt.want {
			t.Errorf("SeasonForMonth(%d) = %q, want %q", tt.month, got, tt.want)
		}
	}
}

func TestParseSeason(t *testing.T) {
	if s, ok := ParseSeason(" Winter "); !ok || s != SeasonWinter {
		t.Errorf("ParseSeason(Winter) = %q, %v", s, ok)
	}
	if _, ok := ParseSeason("autumn"); ok {
		t.Error("autumn is not a canonical season")
	}
}

func TestTitle(t *testing.T) {
	tests := map[string]string{
		"trade_good": "Trade Good",
		"iron-ore":   "Iron Ore",
		"harvest":    "Harvest",
		"WAR_TIME":   "War Time",
		"":           "",
	}
	for in, want := range tests {
		if got := Title(in); got != want {
			t.Errorf("Title(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResourceModifiersKeepOrder(t *testing.T) {
	r := NewResource("fish", CategoryFood).
		AddModifier("storm", decimal.RequireFromString("1.5")).
		AddModifier("festival", decimal.RequireFromString("1.2")).
		AddModifier("storm", decimal.RequireFromString("1.8"))

	names := r.EventNames()
	if len(names) != 2 || names[0] != "storm" || names[1] != "festival" {
		t.Fatalf("unexpected event order %v", names)
	}
	m, ok := r.Modifier("storm")
	if !ok || !m.Equal(decimal.RequireFromString("1.8")) {
		t.Errorf("expected replaced storm multiplier, got %s", m)
	}
	if _, ok := r.Modifier("drought"); ok {
		t.Error("unexpected modifier for drought")
	}
}

func TestLookupCity(t *testing.T) {
	c, ok := LookupCity("yalanga")
	if !ok || c.Biome != BiomeWarm {
		t.Fatalf("LookupCity(yalanga) = %+v, %v", c, ok)
	}
	if _, ok := LookupCity("Atlantis"); ok {
		t.Error("unexpected city")
	}
}

func TestColorForCategory(t *testing.T) {
	if got := ColorForCategory(CategoryWeapon); got != "#F44336" {
		t.Errorf("weapon color = %s", got)
	}
	if got := ColorForCategory("gemstone"); got != FallbackColor {
		t.Errorf("unknown category color = %s", got)
	}
}
