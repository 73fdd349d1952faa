package dataprep

import (
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/core"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/logger"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/pipeline"
)

// BinnedColumns pairs each binned source column with its breakpoint rule.
var BinnedColumns = []struct {
	Column string
	Rule   Breakpoints
}{
	{GDPGrowthColumn, GDPGrowthBreakpoints},
	{InflationColumn, InflationBreakpoints},
}

// Result is the normalized table plus what the run observed on the way.
type Result struct {
	Table   *core.Table
	Coerced CoercionReport
	// Edges holds the bin edges used for each binned source column.
	Edges map[string][]float64
}

// Schema is the cell kind every cleaned and derived column must hold.
func Schema() pipeline.Schema {
	s := pipeline.Schema{PopulationColumn: core.KindInteger, PopulationPctChange: core.KindNumber}
	for _, c := range PercentColumns {
		s[c] = core.KindNumber
	}
	for _, c := range CurrencyColumns {
		s[c] = core.KindNumber
	}
	for _, b := range BinnedColumns {
		s[BinColumn(b.Column)] = core.KindLabel
	}
	return s
}

// Normalize cleans every column group, derives the bin and percent change
// columns and sorts by Year. raw is left untouched.
func Normalize(raw *core.Table, log logger.Logger) (*Result, error) {
	if log == nil {
		log = logger.GetDefault()
	}
	res := &Result{Coerced: CoercionReport{}, Edges: map[string][]float64{}}

	steps := []pipeline.Step{
		pipeline.StepFunc{Label: "percent", Fn: func(t *core.Table) (*core.Table, error) {
			out, rep := CleanPercent(t, PercentColumns)
			res.Coerced.merge(rep)
			return out, nil
		}},
		pipeline.StepFunc{Label: "currency", Fn: func(t *core.Table) (*core.Table, error) {
			out, rep := CleanCurrency(t, CurrencyColumns, BillionColumns)
			res.Coerced.merge(rep)
			return out, nil
		}},
		pipeline.StepFunc{Label: "population", Fn: CleanPopulation},
	}
	for _, b := range BinnedColumns {
		col, rule := b.Column, b.Rule
		steps = append(steps, pipeline.StepFunc{Label: "bin " + col, Fn: func(t *core.Table) (*core.Table, error) {
			if edges, ok := BinEdges(t, col, rule); ok {
				res.Edges[col] = edges
			}
			return Bin(t, col, rule)
		}})
	}
	steps = append(steps,
		pipeline.StepFunc{Label: "sort by year", Fn: func(t *core.Table) (*core.Table, error) {
			return SortByYear(t), nil
		}},
		pipeline.StepFunc{Label: "population pct change", Fn: func(t *core.Table) (*core.Table, error) {
			return PctChange(t, PopulationColumn, PopulationPctChange)
		}},
	)

	out, err := pipeline.NewPipeline(log, steps...).Run(raw)
	if err != nil {
		return nil, err
	}
	res.Table = out

	for col, n := range res.Coerced {
		log.Warn("unparseable cells treated as missing", "column", col, "count", n)
	}
	if dup := DuplicateYears(out); len(dup) > 0 {
		log.Warn("duplicate years in input", "years", dup)
	}
	return res, nil
}
