// Package analysis holds the bivariate part of the exploration: the feature
// groups that are compared against each other and their correlations.
package analysis

import (
	"math"
	"sort"

	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/core"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/dataprep"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/stats"
)

var (
	gdpBin       = dataprep.BinColumn(dataprep.GDPGrowthColumn)
	inflationBin = dataprep.BinColumn(dataprep.InflationColumn)
)

// NominalFeatures are the headline aggregates.
var NominalFeatures = []string{
	"Year", "Population", "GDP", "GNI", "GNP",
	"Inflation Rate", "GDP growth percentage", inflationBin, gdpBin,
}

// PerCapitaFeatures are the per-person measures.
var PerCapitaFeatures = []string{
	"GDP Per Capita", "Annual Growth Rate in GDP Per Capita",
	"GNI Per Capita", "GNI Per Capita Annual Growth Rate",
	inflationBin, gdpBin,
}

// RateOfChangeFeatures are the growth rates and ratios.
var RateOfChangeFeatures = []string{
	"Population growth rate", "GDP growth percentage",
	"Annual Growth Rate in GDP Per Capita", "GNI Per Capita Annual Growth Rate",
	"Government Debt as % of GDP", "Inflation Rate",
	"Annual Change in Inflation Rate", gdpBin, inflationBin,
}

// Group is a named feature set with the hue columns its pair grids are split by.
type Group struct {
	Name     string
	Features []string
	Hues     []string
}

// Groups lists every feature group in report order.
func Groups() []Group {
	return []Group{
		{Name: "nominal", Features: NominalFeatures, Hues: []string{inflationBin, gdpBin}},
		{Name: "per capita", Features: PerCapitaFeatures, Hues: []string{gdpBin, inflationBin}},
		{Name: "rate of change", Features: RateOfChangeFeatures, Hues: []string{inflationBin, gdpBin}},
	}
}

// Corr is the correlation of one feature with a target.
type Corr struct {
	Feature string
	R       float64
	N       int
}

// CorrWith correlates every feature with target over the rows where both are
// present. Bin columns take part through their numeric label.
func CorrWith(t *core.Table, features []string, target string) []Corr {
	out := make([]Corr, 0, len(features))
	for _, f := range features {
		xs, ys := t.Pairs(f, target)
		out = append(out, Corr{Feature: f, R: stats.Correlation(xs, ys), N: len(xs)})
	}
	return out
}

// SortDescending orders correlations from strongest positive to strongest
// negative; undefined coefficients go last.
func SortDescending(cs []Corr) []Corr {
	out := append([]Corr(nil), cs...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].R, out[j].R
		switch {
		case math.IsNaN(a):
			return false
		case math.IsNaN(b):
			return true
		default:
			return a > b
		}
	})
	return out
}

// CorrMatrix is the pairwise correlation of every feature with every other.
func CorrMatrix(t *core.Table, features []string) [][]float64 {
	m := core.FromTable(t, features...)
	out := make([][]float64, m.C)
	for i := range out {
		out[i] = make([]float64, m.C)
		for j := range out[i] {
			xs, ys := m.CompletePairs(i, j)
			out[i][j] = stats.Correlation(xs, ys)
		}
	}
	return out
}
