package dataprep

import (
	"fmt"
	"sort"

	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/core"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/stats"
)

const (
	GDPGrowthColumn     = "GDP growth percentage"
	InflationColumn     = "Inflation Rate"
	YearColumn          = "Year"
	PopulationPctChange = "pop_pct_chng"
)

// BinSuffix is appended to a column name to name its bin label column.
const BinSuffix = "_bin"

// BinColumn names the label column derived from col.
func BinColumn(col string) string { return col + BinSuffix }

// Breakpoints builds bin edges from the observed range of a column.
type Breakpoints func(min, max float64) []float64

// GDPGrowthBreakpoints yields [min, 0, 3, 5, 7, max].
func GDPGrowthBreakpoints(min, max float64) []float64 { return anchored(min, max, 0, 3, 5, 7) }

// InflationBreakpoints yields [min, 5, 10, 20, max].
func InflationBreakpoints(min, max float64) []float64 { return anchored(min, max, 5, 10, 20) }

// anchored places the inner breakpoints between min and max, dropping any that
// would not keep the edges strictly increasing. A degenerate range yields
// [min, max] with min == max.
func anchored(min, max float64, inner ...float64) []float64 {
	edges := []float64{min}
	for _, b := range inner {
		if b > edges[len(edges)-1] && b < max {
			edges = append(edges, b)
		}
	}
	if max > edges[len(edges)-1] || len(edges) == 1 {
		edges = append(edges, max)
	}
	return edges
}

// BinEdges computes the edges for col from its present values. ok is false
// when the column has no numeric values.
func BinEdges(t *core.Table, col string, bp Breakpoints) (edges []float64, ok bool) {
	vals := t.Floats(col)
	if len(vals) == 0 {
		return nil, false
	}
	min, max := stats.MinMax(vals)
	return bp(min, max), true
}

// Assign returns the lower bound of the half-open interval [lo, hi) holding v.
// The last interval also holds its upper edge.
func Assign(v float64, edges []float64) (float64, bool) {
	last := len(edges) - 2
	for k := 0; k <= last; k++ {
		lo, hi := edges[k], edges[k+1]
		if v >= lo && (v < hi || (k == last && v == hi)) {
			return lo, true
		}
	}
	return 0, false
}

// Bin adds the label column BinColumn(col) computed with bp. Values outside
// every interval, and missing values, get a Missing label.
func Bin(t *core.Table, col string, bp Breakpoints) (*core.Table, error) {
	if !t.HasColumn(col) {
		return nil, fmt.Errorf("bin: unknown column %q", col)
	}
	out := t.Clone()
	name := BinColumn(col)
	out.AddColumn(name)

	edges, ok := BinEdges(t, col, bp)
	for i, r := range out.Rows {
		r[name] = core.Missing()
		if !ok {
			continue
		}
		v, present := out.Get(i, col).Float()
		if !present {
			continue
		}
		if lo, in := Assign(v, edges); in {
			r[name] = core.Label(lo)
		}
	}
	return out, nil
}

// PctChange adds column out holding the percent change of col from the
// previous row. The first row, rows next to a missing value and rows after a
// zero are Missing.
func PctChange(t *core.Table, col, out string) (*core.Table, error) {
	if !t.HasColumn(col) {
		return nil, fmt.Errorf("pct change: unknown column %q", col)
	}
	res := t.Clone()
	res.AddColumn(out)
	for i, r := range res.Rows {
		r[out] = core.Missing()
		if i == 0 {
			continue
		}
		prev, okPrev := res.Get(i-1, col).Float()
		cur, okCur := res.Get(i, col).Float()
		if !okPrev || !okCur || prev == 0 {
			continue
		}
		r[out] = core.Number((cur - prev) / prev * 100)
	}
	return res, nil
}

// SortByYear returns a copy of t ordered by ascending Year. The sort is stable
// and rows with a missing Year go last.
func SortByYear(t *core.Table) *core.Table {
	out := t.Clone()
	sort.SliceStable(out.Rows, func(i, j int) bool {
		a, okA := yearOf(out.Rows[i])
		b, okB := yearOf(out.Rows[j])
		switch {
		case okA && okB:
			return a < b
		default:
			return okA && !okB
		}
	})
	return out
}

func yearOf(r core.Row) (float64, bool) {
	c, ok := r[YearColumn]
	if !ok {
		return 0, false
	}
	return c.Float()
}

// DuplicateYears lists years that appear on more than one row, ascending.
func DuplicateYears(t *core.Table) []float64 {
	seen := make(map[float64]int)
	for _, r := range t.Rows {
		if y, ok := yearOf(r); ok {
			seen[y]++
		}
	}
	var dup []float64
	for y, n := range seen {
		if n > 1 {
			dup = append(dup, y)
		}
	}
	sort.Float64s(dup)
	return dup
}
