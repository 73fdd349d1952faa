package dataprep

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/core"
)

// NullSentinel is the literal the source uses for "no value".
const NullSentinel = "Null"

// PopulationColumn always holds a whole, present count.
const PopulationColumn = "Population"

// ErrPopulation marks a population cell that is not a non-negative integer.
var ErrPopulation = errors.New("invalid population")

// PercentColumns hold rates and ratios written like "12.5%". Year shares the
// same cleaning rule.
var PercentColumns = []string{
	"Year",
	"Population growth rate",
	"GDP growth percentage",
	"Annual change in GDP growth",
	"Annual Growth Rate in GDP Per Capita",
	"GNI Growth Rate",
	"GNI Per Capita Annual Growth Rate",
	"Government Debt as % of GDP",
	"Annual Change in Debt to GDP Ratio",
	"Inflation Rate",
	"Annual Change in Inflation Rate",
}

// CurrencyColumns hold dollar amounts written like "$3,852" or "$80.97B".
var CurrencyColumns = []string{"GDP", "GDP Per Capita", "GNI", "GNI Per Capita", "GNP"}

// BillionColumns carry a "B" unit suffix on top of the currency formatting.
var BillionColumns = []string{"GDP", "GNI", "GNP"}

// CoercionReport counts, per column, cells that were neither numeric nor the
// Null sentinel and were therefore turned into Missing.
type CoercionReport map[string]int

// Total sums the report.
func (r CoercionReport) Total() int {
	n := 0
	for _, v := range r {
		n += v
	}
	return n
}

func (r CoercionReport) merge(o CoercionReport) {
	for k, v := range o {
		r[k] += v
	}
}

// ParsePercent cleans one percent-like cell. Non-text cells are returned
// unchanged, so cleaning twice is a no-op. coerced is true when non-empty,
// non-sentinel text failed to parse.
func ParsePercent(c core.Cell) (out core.Cell, coerced bool) {
	if c.Kind() != core.KindText {
		return c, false
	}
	s := strings.TrimSpace(strings.ReplaceAll(c.Raw(), "%", ""))
	return toNumber(s, strconv.ParseFloat)
}

// ParseCurrency cleans one currency-like cell. billions strips the "B" unit.
//
// Every "." is removed as if it were a group separator, so "$80.97B" reads as
// 8097 and "1234.5" as 12345. Outputs depend on this exact behavior.
// TODO: parse "." as a decimal point once downstream outputs may change.
func ParseCurrency(c core.Cell, billions bool) (out core.Cell, coerced bool) {
	if c.Kind() != core.KindText {
		return c, false
	}
	s := c.Raw()
	if billions {
		s = strings.ReplaceAll(s, "B", "")
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	return toNumber(strings.TrimSpace(s), parseDecimal)
}

func parseDecimal(s string, _ int) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

func toNumber(s string, parse func(string, int) (float64, error)) (core.Cell, bool) {
	if s == NullSentinel || s == "" {
		return core.Missing(), false
	}
	f, err := parse(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return core.Missing(), true
	}
	return core.Number(f), false
}

// ParsePopulation strips group separators and reads a whole count.
func ParsePopulation(c core.Cell) (core.Cell, error) {
	if c.Kind() == core.KindInteger {
		return c, nil
	}
	if c.Kind() != core.KindText {
		return c, fmt.Errorf("%w: %s cell", ErrPopulation, c.Kind())
	}
	s := strings.TrimSpace(strings.ReplaceAll(c.Raw(), ",", ""))
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return c, fmt.Errorf("%w: %q", ErrPopulation, c.Raw())
	}
	if n < 0 {
		return c, fmt.Errorf("%w: negative %d", ErrPopulation, n)
	}
	return core.Integer(n), nil
}

// CleanPercent returns a copy of t with cols cleaned as percent-like columns.
// Columns absent from t are skipped.
func CleanPercent(t *core.Table, cols []string) (*core.Table, CoercionReport) {
	return cleanColumns(t, cols, func(string) func(core.Cell) (core.Cell, bool) {
		return ParsePercent
	})
}

// CleanCurrency returns a copy of t with cols cleaned as currency-like columns.
// Columns listed in billions also lose their "B" suffix.
func CleanCurrency(t *core.Table, cols, billions []string) (*core.Table, CoercionReport) {
	unit := make(map[string]bool, len(billions))
	for _, b := range billions {
		unit[b] = true
	}
	return cleanColumns(t, cols, func(col string) func(core.Cell) (core.Cell, bool) {
		b := unit[col]
		return func(c core.Cell) (core.Cell, bool) { return ParseCurrency(c, b) }
	})
}

func cleanColumns(t *core.Table, cols []string, parser func(col string) func(core.Cell) (core.Cell, bool)) (*core.Table, CoercionReport) {
	out := t.Clone()
	report := CoercionReport{}
	for _, col := range cols {
		if !out.HasColumn(col) {
			continue
		}
		parse := parser(col)
		for _, r := range out.Rows {
			c, ok := r[col]
			if !ok {
				c = core.Missing()
			}
			cleaned, coerced := parse(c)
			if coerced {
				report[col]++
			}
			r[col] = cleaned
		}
	}
	return out, report
}

// CleanPopulation returns a copy of t with the population column as integers.
// A malformed value aborts the run.
func CleanPopulation(t *core.Table) (*core.Table, error) {
	out := t.Clone()
	if !out.HasColumn(PopulationColumn) {
		return out, nil
	}
	for i, r := range out.Rows {
		c, err := ParsePopulation(out.Get(i, PopulationColumn))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		r[PopulationColumn] = c
	}
	return out, nil
}
