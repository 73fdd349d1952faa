package dataprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/core"
)

func TestBreakpoints(t *testing.T) {
	t.Run("Should anchor the GDP growth rule at min and max", func(t *testing.T) {
		assert.Equal(t, []float64{-3.62, 0, 3, 5, 7, 9.14}, GDPGrowthBreakpoints(-3.62, 9.14))
	})

	t.Run("Should anchor the inflation rule at min and max", func(t *testing.T) {
		assert.Equal(t, []float64{-0.5, 5, 10, 20, 26.1}, InflationBreakpoints(-0.5, 26.1))
	})

	t.Run("Should drop inner breakpoints outside the observed range", func(t *testing.T) {
		assert.Equal(t, []float64{1, 3, 4.5}, GDPGrowthBreakpoints(1, 4.5))
		assert.Equal(t, []float64{0, 3, 5}, GDPGrowthBreakpoints(0, 5))
	})

	t.Run("Should keep a single closed interval for a constant column", func(t *testing.T) {
		assert.Equal(t, []float64{2, 2}, InflationBreakpoints(2, 2))
	})
}

func TestAssign(t *testing.T) {
	edges := []float64{-3.62, 0, 3, 5, 7, 9.14}
	testCases := []struct {
		v    float64
		want float64
		ok   bool
	}{
		{v: -3.62, want: -3.62, ok: true},
		{v: -0.1, want: -3.62, ok: true},
		{v: 0, want: 0, ok: true},
		{v: 2.99, want: 0, ok: true},
		{v: 3, want: 3, ok: true},
		{v: 7, want: 7, ok: true},
		{v: 9.14, want: 7, ok: true},
		{v: 9.2, ok: false},
		{v: -4, ok: false},
	}
	for _, tc := range testCases {
		got, ok := Assign(tc.v, edges)
		assert.Equal(t, tc.ok, ok, "value %v", tc.v)
		if tc.ok {
			assert.Equal(t, tc.want, got, "value %v", tc.v)
		}
	}

	t.Run("Should label the only value of a constant column", func(t *testing.T) {
		got, ok := Assign(2, []float64{2, 2})
		assert.True(t, ok)
		assert.Equal(t, 2.0, got)
	})
}

func growthTable(values ...core.Cell) *core.Table {
	tbl := core.NewTable([]string{"Year", GDPGrowthColumn})
	for i, v := range values {
		tbl.Append(core.Row{"Year": core.Number(float64(2000 + i)), GDPGrowthColumn: v})
	}
	return tbl
}

func TestBin(t *testing.T) {
	t.Run("Should label each value with the lower bound of its interval", func(t *testing.T) {
		tbl := growthTable(core.Number(-2), core.Number(0), core.Missing(), core.Number(6), core.Number(8))

		out, err := Bin(tbl, GDPGrowthColumn, GDPGrowthBreakpoints)

		require.NoError(t, err)
		col := BinColumn(GDPGrowthColumn)
		assert.Equal(t, "GDP growth percentage_bin", col)
		assert.Contains(t, out.Columns, col)
		assert.Equal(t, -2.0, number(t, out.Get(0, col)))
		assert.Equal(t, 0.0, number(t, out.Get(1, col)))
		assert.True(t, out.Get(2, col).IsMissing())
		assert.Equal(t, 5.0, number(t, out.Get(3, col)))
		assert.Equal(t, 7.0, number(t, out.Get(4, col)))
		assert.Equal(t, core.KindLabel, out.Get(4, col).Kind())
		assert.False(t, tbl.HasColumn(col))
	})

	t.Run("Should leave every label missing when the column has no numbers", func(t *testing.T) {
		out, err := Bin(growthTable(core.Missing(), core.Missing()), GDPGrowthColumn, GDPGrowthBreakpoints)

		require.NoError(t, err)
		assert.True(t, out.Get(0, BinColumn(GDPGrowthColumn)).IsMissing())
	})

	t.Run("Should fail on an unknown column", func(t *testing.T) {
		_, err := Bin(growthTable(), InflationColumn, InflationBreakpoints)
		assert.Error(t, err)
	})
}

func TestValueCounts(t *testing.T) {
	tbl := growthTable(core.Number(-2), core.Number(1), core.Number(2), core.Number(6), core.Number(8))
	out, err := Bin(tbl, GDPGrowthColumn, GDPGrowthBreakpoints)
	require.NoError(t, err)
	edges, ok := BinEdges(tbl, GDPGrowthColumn, GDPGrowthBreakpoints)
	require.True(t, ok)

	counts := ValueCounts(out, BinColumn(GDPGrowthColumn), Categories(edges))

	assert.Equal(t, []Count{
		{Label: 0, N: 2},
		{Label: -2, N: 1},
		{Label: 5, N: 1},
		{Label: 7, N: 1},
		{Label: 3, N: 0},
	}, counts)
}

func TestPctChange(t *testing.T) {
	tbl := core.NewTable([]string{"Population"})
	for _, c := range []core.Cell{core.Integer(100), core.Integer(110), core.Missing(), core.Integer(0), core.Integer(5), core.Integer(5)} {
		tbl.Append(core.Row{"Population": c})
	}

	out, err := PctChange(tbl, "Population", PopulationPctChange)

	require.NoError(t, err)
	col := out.Column(PopulationPctChange)
	assert.True(t, col[0].IsMissing())
	assert.InDelta(t, 10.0, number(t, col[1]), 1e-9)
	assert.True(t, col[2].IsMissing())
	assert.True(t, col[3].IsMissing())
	assert.True(t, col[4].IsMissing())
	assert.Equal(t, 0.0, number(t, col[5]))
}

func TestSortByYear(t *testing.T) {
	tbl := core.NewTable([]string{"Year", "tag"})
	for i, y := range []core.Cell{core.Number(2001), core.Missing(), core.Number(1960), core.Number(2001)} {
		tbl.Append(core.Row{"Year": y, "tag": core.Number(float64(i))})
	}

	out := SortByYear(tbl)

	var tags []float64
	for i := range out.Rows {
		tags = append(tags, number(t, out.Get(i, "tag")))
	}
	assert.Equal(t, []float64{2, 0, 3, 1}, tags)
	assert.Equal(t, []float64{2001}, DuplicateYears(out))
	assert.Equal(t, 2001.0, number(t, tbl.Get(0, "Year")))
}
