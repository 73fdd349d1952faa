package analysis

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/core"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/data"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/dataprep"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/logger"
)

func normalized(t *testing.T) *dataprep.Result {
	t.Helper()
	f, err := os.Open("../dataprep/testdata/economy.csv")
	require.NoError(t, err)
	defer f.Close()
	raw, err := data.ReadCSV(f)
	require.NoError(t, err)
	res, err := dataprep.Normalize(raw, logger.Discard())
	require.NoError(t, err)
	return res
}

func TestCorrWith(t *testing.T) {
	tbl := core.NewTable([]string{"a", "b", "c"})
	rows := [][3]core.Cell{
		{core.Number(1), core.Number(2), core.Number(5)},
		{core.Number(2), core.Number(4), core.Missing()},
		{core.Number(3), core.Number(6), core.Number(1)},
		{core.Number(4), core.Missing(), core.Number(0)},
	}
	for _, r := range rows {
		tbl.Append(core.Row{"a": r[0], "b": r[1], "c": r[2]})
	}

	t.Run("Should use pairwise complete rows", func(t *testing.T) {
		got := CorrWith(tbl, []string{"a", "b", "c"}, "a")

		require.Len(t, got, 3)
		assert.InDelta(t, 1.0, got[0].R, 1e-12)
		assert.Equal(t, 4, got[0].N)
		assert.InDelta(t, 1.0, got[1].R, 1e-12)
		assert.Equal(t, 3, got[1].N)
		assert.Less(t, got[2].R, -0.9)
		assert.Equal(t, 3, got[2].N)
	})

	t.Run("Should report NaN for an absent feature", func(t *testing.T) {
		got := CorrWith(tbl, []string{"zzz"}, "a")
		assert.True(t, math.IsNaN(got[0].R))
		assert.Zero(t, got[0].N)
	})
}

func TestSortDescending(t *testing.T) {
	in := []Corr{{Feature: "x", R: -0.5}, {Feature: "nan", R: math.NaN()}, {Feature: "y", R: 0.9}, {Feature: "z", R: 0.1}}

	got := SortDescending(in)

	var names []string
	for _, c := range got {
		names = append(names, c.Feature)
	}
	assert.Equal(t, []string{"y", "z", "x", "nan"}, names)
	assert.Equal(t, "x", in[0].Feature)
}

func TestCorrMatrix(t *testing.T) {
	res := normalized(t)

	m := CorrMatrix(res.Table, []string{"Year", "Population", "GDP"})

	require.Len(t, m, 3)
	for i := range m {
		assert.InDelta(t, 1.0, m[i][i], 1e-12)
		for j := range m {
			assert.InDelta(t, m[i][j], m[j][i], 1e-12)
		}
	}
	assert.Greater(t, m[0][1], 0.9)
}

func TestGroups(t *testing.T) {
	res := normalized(t)

	for _, g := range Groups() {
		for _, f := range append(append([]string{}, g.Features...), g.Hues...) {
			assert.True(t, res.Table.HasColumn(f), "%s: %s", g.Name, f)
		}
	}
}

func TestSummarizeBins(t *testing.T) {
	res := normalized(t)

	got := SummarizeBins(res.Table, res.Edges)

	require.Len(t, got, 2)
	assert.Equal(t, dataprep.GDPGrowthColumn, got[0].Column)
	assert.Equal(t, -3.62, got[0].Min)
	assert.Equal(t, 6.4, got[0].Max)
	assert.Equal(t, []dataprep.Count{{Label: 3, N: 3}, {Label: 0, N: 2}, {Label: 5, N: 2}, {Label: -3.62, N: 1}}, got[0].Counts)
	assert.Equal(t, dataprep.InflationColumn, got[1].Column)
	assert.Equal(t, 26.14, got[1].Max)
}
