package analysis

import (
	"sort"

	"github.com/shopspring/decimal"

	"resource-economy/core/catalog"
	"resource-economy/core/pricing"
	"resource-economy/core/types"
	"resource-economy/internal/errors"
)

// Neutral is the multiplier of a resource unaffected by an event
var Neutral = decimal.NewFromInt(1)

// Matrix is a resource x column grid of multipliers
type Matrix struct {
	Rows    []string            `json:"rows"`
	Columns []string            `json:"columns"`
	Cells   [][]decimal.Decimal `json:"cells"`
}

func newMatrix(rows, columns []string, fill decimal.Decimal) *Matrix {
	m := &Matrix{
		Rows:    rows,
		Columns: columns,
		Cells:   make([][]decimal.Decimal, len(rows)),
	}
	for i := range m.Cells {
		m.Cells[i] = make([]decimal.Decimal, len(columns))
		for j := range m.Cells[i] {
			m.Cells[i][j] = fill
		}
	}
	return m
}

// At returns the cell at a row and column index
func (m *Matrix) At(row, col int) decimal.Decimal {
	return m.Cells[row][col]
}

// Row returns the cells of a named row
func (m *Matrix) Row(name string) ([]decimal.Decimal, bool) {
	for i, r := range m.Rows {
		if r == name {
			return m.Cells[i], true
		}
	}
	return nil, false
}

// Empty reports whether the matrix has no cells
func (m *Matrix) Empty() bool {
	return m == nil || len(m.Rows) == 0 || len(m.Columns) == 0
}

// SeasonalMultipliers builds the resource x canonical season grid of
// seasonal price divided by base price.
func SeasonalMultipliers(cat *catalog.Catalog) (*Matrix, error) {
	columns := make([]string, len(types.Seasons))
	for i, s := range types.Seasons {
		columns[i] = s.String()
	}

	m := newMatrix(cat.Names(), columns, decimal.Zero)
	for i, r := range cat.Resources() {
		base, err := basePrice(r)
		if err != nil {
			return nil, err
		}
		if base.IsZero() {
			return nil, errors.Validation("base_price must be positive").
				WithContext("resource", r.Name)
		}
		for j, s := range types.Seasons {
			price, err := pricing.Calculate(r, s, nil)
			if err != nil {
				return nil, err
			}
			m.Cells[i][j] = price.Div(base)
		}
	}

	return m, nil
}

// EventNames returns the deduplicated, alphabetically sorted union of
// every event any resource has a modifier for.
func EventNames(cat *catalog.Catalog) []string {
	seen := make(map[string]struct{})
	var events []string
	for _, r := range cat.Resources() {
		for _, e := range r.EventNames() {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			events = append(events, e)
		}
	}
	sort.Strings(events)
	return events
}

// EventImpact builds the resource x event grid of modifiers, with Neutral
// where a resource has no modifier for the event. A catalog without any
// events yields an empty-result error.
func EventImpact(cat *catalog.Catalog) (*Matrix, error) {
	events := EventNames(cat)
	if len(events) == 0 {
		return nil, errors.EmptyResult("no events found in resources")
	}

	m := newMatrix(cat.Names(), events, Neutral)
	for i, r := range cat.Resources() {
		for j, e := range events {
			if mult, ok := r.Modifier(e); ok {
				m.Cells[i][j] = mult
			}
		}
	}

	return m, nil
}
