package dataprep

import (
	"sort"

	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/core"
)

// Count is the frequency of one bin label.
type Count struct {
	Label float64
	N     int
}

// ValueCounts counts the labels of a bin column, most frequent first, ties by
// ascending label. Every label in categories is reported, even with a zero
// count. Missing labels are not counted.
func ValueCounts(t *core.Table, col string, categories []float64) []Count {
	counts := make(map[float64]int, len(categories))
	for _, c := range categories {
		counts[c] = 0
	}
	for _, c := range t.Column(col) {
		if c.Kind() != core.KindLabel {
			continue
		}
		v, _ := c.Float()
		counts[v]++
	}

	out := make([]Count, 0, len(counts))
	for label, n := range counts {
		out = append(out, Count{Label: label, N: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// Categories returns the labels a bin column can take: every edge but the last.
func Categories(edges []float64) []float64 {
	if len(edges) < 2 {
		return nil
	}
	return append([]float64(nil), edges[:len(edges)-1]...)
}
