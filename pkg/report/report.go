// Package report prints the console summaries of a run as aligned tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/analysis"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/core"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/dataprep"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/stats"
)

// Printer writes report sections to w, grouping digits the English way.
type Printer struct {
	w io.Writer
	p *message.Printer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w, p: message.NewPrinter(language.English)}
}

func (r *Printer) title(s string) {
	fmt.Fprintf(r.w, "\n%s\n", s)
}

func (r *Printer) table(header []string, rows [][]string) {
	tw := tablewriter.NewWriter(r.w)
	tw.SetHeader(header)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.AppendBulk(rows)
	tw.Render()
}

func (r *Printer) num(v float64) string {
	return r.p.Sprintf("%.2f", v)
}

func (r *Printer) count(n int) string {
	return r.p.Sprintf("%d", n)
}

// cell formats one value: integers grouped, numbers as entered, missing as NaN.
func (r *Printer) cell(c core.Cell) string {
	if n, ok := c.Int(); ok {
		return r.p.Sprintf("%d", n)
	}
	return c.String()
}

// Head prints the first n rows of t.
func (r *Printer) Head(t *core.Table, n int) {
	h := t.Head(n)
	r.title(fmt.Sprintf("First %d rows", h.Len()))
	rows := make([][]string, 0, h.Len())
	for i := range h.Rows {
		row := make([]string, 0, len(h.Columns)+1)
		row = append(row, strconv.Itoa(i))
		for _, col := range h.Columns {
			row = append(row, r.cell(h.Get(i, col)))
		}
		rows = append(rows, row)
	}
	r.table(append([]string{""}, h.Columns...), rows)
}

// kindOf names the kind shared by the present cells of a column.
func kindOf(cells []core.Cell) string {
	kinds := map[core.Kind]bool{}
	for _, c := range cells {
		if !c.IsMissing() {
			kinds[c.Kind()] = true
		}
	}
	switch len(kinds) {
	case 0:
		return core.KindMissing.String()
	case 1:
		for k := range kinds {
			return k.String()
		}
	}
	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, k.String())
	}
	sort.Strings(names)
	return "mixed(" + strings.Join(names, ",") + ")"
}

// Info prints one line per column: position, name, present count and kind.
func (r *Printer) Info(t *core.Table) {
	r.title(fmt.Sprintf("%s rows, %d columns", r.count(t.Len()), len(t.Columns)))
	rows := make([][]string, 0, len(t.Columns))
	for i, col := range t.Columns {
		cells := t.Column(col)
		present := 0
		for _, c := range cells {
			if !c.IsMissing() {
				present++
			}
		}
		rows = append(rows, []string{strconv.Itoa(i), col, r.count(present) + " non-null", kindOf(cells)})
	}
	r.table([]string{"#", "Column", "Count", "Kind"}, rows)
}

// Describe prints count, mean, std and quartiles of every column in cols.
func (r *Printer) Describe(t *core.Table, cols []string) {
	r.title("Summary statistics")
	rows := make([][]string, 0, len(cols))
	for _, col := range cols {
		s := stats.Describe(t.Floats(col))
		rows = append(rows, []string{
			col, r.count(s.Count), r.num(s.Mean), r.num(s.Std),
			r.num(s.Min), r.num(s.P25), r.num(s.Median), r.num(s.P75), r.num(s.Max),
		})
	}
	r.table([]string{"Column", "count", "mean", "std", "min", "25%", "50%", "75%", "max"}, rows)
}

// MinMax prints the range of a column the way the bin step reports it.
func (r *Printer) MinMax(label string, min, max float64) {
	fmt.Fprintf(r.w, "%s\nMax Value: %s\nMin Value: %s\n", label, formatFloat(max), formatFloat(min))
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Bins prints range, edges and label frequencies of each binned column.
func (r *Printer) Bins(bins []analysis.BinSummary) {
	for _, b := range bins {
		r.title(dataprep.BinColumn(b.Column))
		r.MinMax(b.Column, b.Min, b.Max)
		edges := make([]string, len(b.Edges))
		for i, e := range b.Edges {
			edges[i] = formatFloat(e)
		}
		fmt.Fprintf(r.w, "Edges: [%s]\n", strings.Join(edges, ", "))
		rows := make([][]string, 0, len(b.Counts))
		for _, c := range b.Counts {
			rows = append(rows, []string{formatFloat(c.Label), r.count(c.N)})
		}
		r.table([]string{"Label", "Count"}, rows)
	}
}

// Correlations prints feature correlations with their pair counts.
func (r *Printer) Correlations(title string, cs []analysis.Corr) {
	r.title(title)
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, []string{c.Feature, r.p.Sprintf("%.4f", c.R), r.count(c.N)})
	}
	r.table([]string{"Feature", "r", "n"}, rows)
}

// Matrix prints a square correlation matrix labelled by features.
func (r *Printer) Matrix(title string, features []string, m [][]float64) {
	r.title(title)
	rows := make([][]string, len(m))
	for i := range m {
		rows[i] = append(rows[i], features[i])
		for _, v := range m[i] {
			rows[i] = append(rows[i], r.p.Sprintf("%.2f", v))
		}
	}
	r.table(append([]string{""}, features...), rows)
}

// Years prints the Year column in row order.
func (r *Printer) Years(t *core.Table) {
	r.title(dataprep.YearColumn)
	var years []string
	for _, c := range t.Column(dataprep.YearColumn) {
		years = append(years, c.String())
	}
	fmt.Fprintln(r.w, strings.Join(years, " "))
}

// Coercions prints how many cells per column could not be parsed.
func (r *Printer) Coercions(rep dataprep.CoercionReport) {
	if rep.Total() == 0 {
		return
	}
	r.title("Unparseable cells treated as missing")
	cols := make([]string, 0, len(rep))
	for col := range rep {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	rows := make([][]string, 0, len(cols))
	for _, col := range cols {
		rows = append(rows, []string{col, r.count(rep[col])})
	}
	r.table([]string{"Column", "Cells"}, rows)
}
