// Package catalog - JSON loading
// Resources and biome sequences are read with gjson so that object key
// order in the file becomes catalog iteration order, and numbers are taken
// from their literal text without a float round trip.
package catalog

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"resource-economy/core/types"
	"resource-economy/internal/errors"
)

// LoadResources reads and parses the resource catalog file
func LoadResources(path string) (*Catalog, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	cat, err := ParseResources(data)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			return nil, e.WithContext("path", path)
		}
		return nil, err
	}
	return cat, nil
}

// LoadBiomeSeasons reads and parses the biome season sequence file
func LoadBiomeSeasons(path string) (*SeasonTable, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	table, err := ParseBiomeSeasons(data)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			return nil, e.WithContext("path", path)
		}
		return nil, err
	}
	return table, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FileNotFound(path, err)
		}
		return nil, errors.Wrapf(errors.TypeInternal, err, "reading %s", path)
	}
	return data, nil
}

// ParseResources parses a resource catalog document:
//
//	{"wheat": {"base_price": 10, "category": "food", "favored_season": ["fall"],
//	           "event_modifiers": {"drought": 1.8}, "local_biomes": ["steppe"]}}
//
// Optional collections default to empty. A missing base_price is not an
// error here; it surfaces when the resource is priced.
func ParseResources(data []byte) (*Catalog, error) {
	root, err := parseObject(data, "resource catalog")
	if err != nil {
		return nil, err
	}

	cat := NewCatalog()
	var parseErr error
	root.ForEach(func(key, value gjson.Result) bool {
		r, err := parseResource(key.String(), value)
		if err != nil {
			parseErr = err
			return false
		}
		cat.Register(r)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return cat, nil
}

func parseResource(name string, value gjson.Result) (*types.Resource, error) {
	if !value.IsObject() {
		return nil, resourceErr(name, "entry must be an object")
	}

	r := types.NewResource(name, types.Category(value.Get("category").String()))

	if bp := value.Get("base_price"); bp.Exists() && bp.Type != gjson.Null {
		price, err := parseNumber(bp)
		if err != nil {
			return nil, resourceErr(name, "base_price: %v", err)
		}
		r.SetBasePrice(price)
	}

	if fs := value.Get("favored_season"); fs.Exists() && fs.Type != gjson.Null {
		if !fs.IsArray() {
			return nil, resourceErr(name, "favored_season must be an array")
		}
		for _, s := range fs.Array() {
			r.Favor(types.Season(s.String()))
		}
	}

	if em := value.Get("event_modifiers"); em.Exists() && em.Type != gjson.Null {
		if !em.IsObject() {
			return nil, resourceErr(name, "event_modifiers must be an object")
		}
		var modErr error
		em.ForEach(func(event, mult gjson.Result) bool {
			m, err := parseNumber(mult)
			if err != nil {
				modErr = resourceErr(name, "event_modifiers.%s: %v", event.String(), err)
				return false
			}
			r.AddModifier(event.String(), m)
			return true
		})
		if modErr != nil {
			return nil, modErr
		}
	}

	if lb := value.Get("local_biomes"); lb.Exists() && lb.Type != gjson.Null {
		if !lb.IsArray() {
			return nil, resourceErr(name, "local_biomes must be an array")
		}
		for _, b := range lb.Array() {
			r.NativeIn(types.Biome(b.String()))
		}
	}

	return r, nil
}

// ParseBiomeSeasons parses a biome sequence document:
//
//	{"cold": {"sequence": ["winter", "winter", "spring", "summer"]}}
//
// Season names are kept verbatim; unknown names are reported by validation.
func ParseBiomeSeasons(data []byte) (*SeasonTable, error) {
	root, err := parseObject(data, "biome seasons")
	if err != nil {
		return nil, err
	}

	table := NewSeasonTable()
	var parseErr error
	root.ForEach(func(key, value gjson.Result) bool {
		biome := types.Biome(key.String())
		if !value.IsObject() {
			parseErr = errors.Parsing(fmt.Sprintf("biome %q: entry must be an object", biome), nil)
			return false
		}
		seq := value.Get("sequence")
		if !seq.Exists() || seq.Type == gjson.Null {
			table.Set(biome, nil)
			return true
		}
		if !seq.IsArray() {
			parseErr = errors.Parsing(fmt.Sprintf("biome %q: sequence must be an array", biome), nil)
			return false
		}
		var seasons []types.Season
		for _, s := range seq.Array() {
			if s.Type != gjson.String {
				parseErr = errors.Parsing(fmt.Sprintf("biome %q: sequence entries must be strings", biome), nil)
				return false
			}
			seasons = append(seasons, types.Season(s.String()))
		}
		table.Set(biome, seasons)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return table, nil
}

func parseObject(data []byte, what string) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, errors.Parsing(fmt.Sprintf("invalid JSON in %s", what), nil)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return gjson.Result{}, errors.Parsing(fmt.Sprintf("%s must be a JSON object", what), nil)
	}
	return root, nil
}

func parseNumber(v gjson.Result) (decimal.Decimal, error) {
	if v.Type != gjson.Number {
		return decimal.Zero, fmt.Errorf("expected a number, got %s", v.Type)
	}
	return decimal.NewFromString(v.Raw)
}

func resourceErr(name, format string, args ...interface{}) *errors.Error {
	return errors.Parsing(fmt.Sprintf("resource %q: %s", name, fmt.Sprintf(format, args...)), nil).
		WithContext("resource", name)
}
