package chart

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/analysis"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/core"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/dataprep"
)

// Kind selects how a Spec is drawn.
type Kind int

const (
	KindHistogram Kind = iota
	KindBinCounts
	KindLine
	KindOverlay
	KindPairGrid
)

// Spec is one chart of the exploration.
type Spec struct {
	Kind    Kind
	Title   string
	Column  string
	Overlay OverlaySpec
	Grid    PairGridSpec
}

func line(col, title string) Spec {
	return Spec{Kind: KindLine, Title: title, Column: col}
}

func overlay(title string, primary, secondary Series) Spec {
	return Spec{Kind: KindOverlay, Title: title, Overlay: OverlaySpec{
		Title: title, X: dataprep.YearColumn, Primary: primary, Secondary: secondary,
	}}
}

func hueOffset(hue string) int {
	if hue == dataprep.BinColumn(dataprep.InflationColumn) {
		return 1
	}
	return 0
}

func without(features []string, col string) []string {
	out := make([]string, 0, len(features))
	for _, f := range features {
		if f != col {
			out = append(out, f)
		}
	}
	return out
}

// Plan lists every chart in report order: distributions, time series, then
// the pair grids of each feature group.
func Plan() []Spec {
	gdp, inf := dataprep.GDPGrowthColumn, dataprep.InflationColumn
	specs := []Spec{
		{Kind: KindHistogram, Title: gdp + " PMF", Column: gdp},
		{Kind: KindBinCounts, Title: gdp + " histogram", Column: gdp},
		{Kind: KindHistogram, Title: inf + " PMF", Column: inf},
		{Kind: KindBinCounts, Title: inf + " histogram", Column: inf},

		overlay("Population Growth of Sri Lanka",
			Series{Column: dataprep.PopulationColumn, Color: Palette[0], Line: true},
			Series{Column: dataprep.PopulationPctChange, Label: "% change", Color: Palette[4], Scatter: true}),

		line("GDP", "GDP fluctuation over the years"),
		line(gdp, "GDP growth percentage over the years"),
		overlay("GDP Growth of Sri Lanka",
			Series{Column: "GDP", Color: Palette[1], Line: true},
			Series{Column: gdp, Label: "% GDP change", Color: Palette[2], Line: true, Scatter: true}),
		overlay("GDP Growth per Capita of Sri Lanka",
			Series{Column: "GDP Per Capita", Color: Palette[0], Line: true},
			Series{Column: gdp, Label: "% GDP change", Color: Palette[2], Line: true, Scatter: true}),

		line("GNI", "GNI fluctuation over the years"),
		line("GNI Growth Rate", "GNI growth rate over the years"),
		line("GNI Per Capita", "GNI per Capita over the years"),
		line("GNI Per Capita Annual Growth Rate", "GNI Per Capita Annual Growth Rate over the years"),
		overlay("GNI and GNI Per Capita",
			Series{Column: "GNI", Color: Palette[0], Line: true},
			Series{Column: "GNI Per Capita", Color: Palette[4], Line: true}),
		overlay("GNI growth rates",
			Series{Column: "GNI Growth Rate", Color: Palette[0], Line: true},
			Series{Column: "GNI Per Capita Annual Growth Rate", Color: Palette[4], Line: true}),

		line("Government Debt as % of GDP", "Government Debt as % of GDP over the years"),
		line("Annual Change in Debt to GDP Ratio", "Annual Change in Debt to GDP Ratio over the years"),
		overlay("Debt in Sri Lanka",
			Series{Column: "Government Debt as % of GDP", Color: Palette[1], Line: true},
			Series{Column: "Annual Change in Debt to GDP Ratio", Color: Palette[0], Line: true}),

		line("Annual Change in Inflation Rate", "Annual Change in Inflation Rate over the years"),
		overlay("Inflation Rate in Sri Lanka",
			Series{Column: inf, Color: Palette[4], Line: true, Scatter: true},
			Series{Column: "Annual Change in Inflation Rate", Color: Palette[0], Line: true, Scatter: true}),
	}

	for _, g := range analysis.Groups() {
		specs = append(specs, Spec{Kind: KindPairGrid, Title: g.Name + " features", Grid: PairGridSpec{
			Title: g.Name + " features", Features: g.Features,
		}})
		for _, hue := range g.Hues {
			title := fmt.Sprintf("%s features by %s", g.Name, hue)
			specs = append(specs, Spec{Kind: KindPairGrid, Title: title, Grid: PairGridSpec{
				Title: title, Features: without(g.Features, hue), Hue: hue, HueOffset: hueOffset(hue),
			}})
		}
	}
	return specs
}

// Render draws every spec into r. Charts with nothing to draw are skipped
// with a warning; any other failure stops the run.
func Render(t *core.Table, edges map[string][]float64, specs []Spec, r *Renderer) error {
	for _, s := range specs {
		err := renderOne(t, edges, s, r)
		if errors.Is(err, ErrNoData) {
			r.log.Warn("chart skipped", "title", s.Title, "reason", err)
			continue
		}
		if err != nil {
			return fmt.Errorf("chart %q: %w", s.Title, err)
		}
	}
	return nil
}

func renderOne(t *core.Table, edges map[string][]float64, s Spec, r *Renderer) error {
	var (
		p    *plot.Plot
		grid [][]*plot.Plot
		err  error
	)
	switch s.Kind {
	case KindHistogram:
		p, err = Histogram(t.Floats(s.Column), s.Title, s.Column)
	case KindBinCounts:
		e, ok := edges[s.Column]
		if !ok {
			return fmt.Errorf("%s: %w", s.Title, ErrNoData)
		}
		counts := dataprep.ValueCounts(t, dataprep.BinColumn(s.Column), dataprep.Categories(e))
		p, err = BinCounts(counts, s.Title)
	case KindLine:
		p, err = Line(t, dataprep.YearColumn, s.Column, s.Title)
	case KindOverlay:
		grid, err = Overlay(t, s.Overlay)
	case KindPairGrid:
		grid, err = PairGrid(t, s.Grid)
	default:
		return fmt.Errorf("unknown chart kind %d", s.Kind)
	}
	if err != nil {
		return err
	}

	if p != nil {
		_, err = r.Save(p, s.Title)
		return err
	}
	w, h := r.Width, r.Height
	if s.Kind == KindPairGrid {
		side := vg.Length(len(grid)) * 1.6 * vg.Inch
		w, h = side, side
	}
	_, err = r.SaveGrid(grid, s.Title, w, h)
	return err
}
