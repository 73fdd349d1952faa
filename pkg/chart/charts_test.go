package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"

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

func newRenderer(t *testing.T, format string) *Renderer {
	t.Helper()
	r, err := NewRenderer(filepath.Join(t.TempDir(), "charts"), format, 4, 3, logger.Discard())
	require.NoError(t, err)
	return r
}

func assertFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRenderer(t *testing.T) {
	t.Run("Should number files in save order", func(t *testing.T) {
		r := newRenderer(t, "png")
		p, err := Histogram([]float64{1, 2, 2, 3}, "First Chart", "x")
		require.NoError(t, err)

		first, err := r.Save(p, "First Chart")
		require.NoError(t, err)
		second, err := r.Save(p, "GDP growth percentage PMF")
		require.NoError(t, err)

		assert.Equal(t, "01-first-chart.png", filepath.Base(first))
		assert.Equal(t, "02-gdp-growth-percentage-pmf.png", filepath.Base(second))
		assert.Equal(t, []string{first, second}, r.Written())
		assertFile(t, second)
	})

	t.Run("Should write a grid as svg", func(t *testing.T) {
		r := newRenderer(t, "svg")
		a, err := Histogram([]float64{1, 2}, "a", "x")
		require.NoError(t, err)
		b, err := Histogram([]float64{3, 4}, "b", "x")
		require.NoError(t, err)

		path, err := r.SaveGrid([][]*plot.Plot{{a}, {b}}, "Stacked", r.Width, r.Height)

		require.NoError(t, err)
		assert.Equal(t, ".svg", filepath.Ext(path))
		assertFile(t, path)
	})

	t.Run("Should refuse an empty grid", func(t *testing.T) {
		_, err := newRenderer(t, "png").SaveGrid(nil, "empty", 1, 1)
		assert.ErrorIs(t, err, ErrNoData)
	})
}

func TestCharts(t *testing.T) {
	res := normalized(t)

	t.Run("Should fail on an empty histogram", func(t *testing.T) {
		_, err := Histogram(nil, "nothing", "x")
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("Should fail on a line with no complete rows", func(t *testing.T) {
		tbl := core.NewTable([]string{"Year", "v"})
		tbl.Append(core.Row{"Year": core.Number(2000), "v": core.Missing()})
		_, err := Line(tbl, "Year", "v", "empty")
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("Should stack overlay panels on a shared x range", func(t *testing.T) {
		grid, err := Overlay(res.Table, OverlaySpec{
			Title:     "Population",
			X:         dataprep.YearColumn,
			Primary:   Series{Column: dataprep.PopulationColumn, Color: Palette[0], Line: true},
			Secondary: Series{Column: dataprep.PopulationPctChange, Color: Palette[4], Scatter: true},
		})

		require.NoError(t, err)
		require.Len(t, grid, 2)
		assert.Equal(t, grid[0][0].X.Min, grid[1][0].X.Min)
		assert.Equal(t, grid[0][0].X.Max, grid[1][0].X.Max)
		assert.Equal(t, 1960.0, grid[0][0].X.Min)
	})

	t.Run("Should build a square pair grid", func(t *testing.T) {
		features := []string{"Year", "GDP", "Inflation Rate"}
		grid, err := PairGrid(res.Table, PairGridSpec{
			Title: "grid", Features: features, Hue: dataprep.BinColumn(dataprep.GDPGrowthColumn),
		})

		require.NoError(t, err)
		require.Len(t, grid, 3)
		for _, row := range grid {
			assert.Len(t, row, 3)
		}
		assert.Equal(t, "GDP", grid[1][0].Y.Label.Text)
		assert.Equal(t, "Inflation Rate", grid[2][2].X.Label.Text)
	})

	t.Run("Should render a pair grid split by hue", func(t *testing.T) {
		r := newRenderer(t, "png")
		grid, err := PairGrid(res.Table, PairGridSpec{
			Title:     "by inflation",
			Features:  []string{"Year", "GDP"},
			Hue:       dataprep.BinColumn(dataprep.InflationColumn),
			HueOffset: 1,
		})
		require.NoError(t, err)

		path, err := r.SaveGrid(grid, "by inflation", 4, 4)

		require.NoError(t, err)
		assertFile(t, path)
	})
}

func TestGroupByHue(t *testing.T) {
	tbl := core.NewTable([]string{"x", "y", "h"})
	tbl.Append(core.Row{"x": core.Number(1), "y": core.Number(1), "h": core.Label(5)})
	tbl.Append(core.Row{"x": core.Number(2), "y": core.Number(2), "h": core.Label(0)})
	tbl.Append(core.Row{"x": core.Number(3), "y": core.Number(3), "h": core.Missing()})
	tbl.Append(core.Row{"x": core.Number(4), "y": core.Missing(), "h": core.Label(0)})
	tbl.Append(core.Row{"x": core.Number(5), "y": core.Number(5), "h": core.Label(0)})

	groups := groupByHue(tbl, "x", "y", "h")

	require.Len(t, groups, 3)
	assert.Equal(t, 0.0, groups[0].label)
	assert.Equal(t, []float64{2, 5}, groups[0].xs)
	assert.Equal(t, 5.0, groups[1].label)
	assert.True(t, groups[2].missing)

	assert.Len(t, groupByHue(tbl, "x", "y", ""), 1)
}

func TestPlan(t *testing.T) {
	specs := Plan()

	titles := map[string]bool{}
	grids := 0
	for _, s := range specs {
		assert.False(t, titles[s.Title], "duplicate title %s", s.Title)
		titles[s.Title] = true
		if s.Kind == KindPairGrid {
			grids++
			if s.Grid.Hue != "" {
				assert.NotContains(t, s.Grid.Features, s.Grid.Hue)
			}
		}
	}
	assert.Equal(t, 9, grids)
	assert.Equal(t, KindHistogram, specs[0].Kind)
	assert.Equal(t, "GDP growth percentage PMF", specs[0].Title)
}

func TestRender(t *testing.T) {
	res := normalized(t)
	r := newRenderer(t, "png")

	t.Run("Should write one file per chart", func(t *testing.T) {
		specs := []Spec{
			{Kind: KindHistogram, Title: "GDP growth percentage PMF", Column: dataprep.GDPGrowthColumn},
			{Kind: KindBinCounts, Title: "GDP growth percentage histogram", Column: dataprep.GDPGrowthColumn},
			line("GDP", "GDP fluctuation over the years"),
		}

		require.NoError(t, Render(res.Table, res.Edges, specs, r))

		require.Len(t, r.Written(), 3)
		for _, p := range r.Written() {
			assertFile(t, p)
		}
	})

	t.Run("Should skip charts without data", func(t *testing.T) {
		before := len(r.Written())
		specs := []Spec{{Kind: KindHistogram, Title: "absent", Column: "no such column"}}

		require.NoError(t, Render(res.Table, res.Edges, specs, r))
		assert.Len(t, r.Written(), before)
	})
}
