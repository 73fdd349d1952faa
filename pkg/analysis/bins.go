package analysis

import (
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/core"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/dataprep"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/stats"
)

// BinSummary is what gets printed about each binned column.
type BinSummary struct {
	Column   string
	Min, Max float64
	Edges    []float64
	Counts   []dataprep.Count
}

// SummarizeBins reports range, edges and label frequencies of every binned column.
func SummarizeBins(t *core.Table, edges map[string][]float64) []BinSummary {
	var out []BinSummary
	for _, b := range dataprep.BinnedColumns {
		min, max := stats.MinMax(t.Floats(b.Column))
		e := edges[b.Column]
		out = append(out, BinSummary{
			Column: b.Column,
			Min:    min,
			Max:    max,
			Edges:  e,
			Counts: dataprep.ValueCounts(t, dataprep.BinColumn(b.Column), dataprep.Categories(e)),
		})
	}
	return out
}
