package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/core"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/dataprep"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/stats"
)

// ErrNoData is returned when a chart would have nothing to draw.
var ErrNoData = errors.New("no data to plot")

func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func formatLabel(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// series returns the (x, y) points of t where both columns are present.
func series(t *core.Table, x, y string) plotter.XYs {
	xs, ys := t.Pairs(x, y)
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

// Histogram draws the distribution of values in ten equal-width bins.
func Histogram(values []float64, title, xlabel string) (*plot.Plot, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%s: %w", title, ErrNoData)
	}
	h, err := plotter.NewHist(plotter.Values(values), 10)
	if err != nil {
		return nil, err
	}
	h.FillColor = Palette[0]
	p := newPlot(title, xlabel, "Frequency")
	p.Add(h)
	return p, nil
}

// BinCounts draws one bar per bin label, in the order given.
func BinCounts(counts []dataprep.Count, title string) (*plot.Plot, error) {
	if len(counts) == 0 {
		return nil, fmt.Errorf("%s: %w", title, ErrNoData)
	}
	values := make(plotter.Values, len(counts))
	names := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.N)
		names[i] = formatLabel(c.Label)
	}
	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, err
	}
	bars.Color = Palette[0]
	bars.LineStyle.Width = vg.Length(0)

	p := newPlot(title, "", "Count")
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 50 * math.Pi / 180
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	return p, nil
}

// Line draws y against x.
func Line(t *core.Table, x, y, title string) (*plot.Plot, error) {
	pts := series(t, x, y)
	if len(pts) == 0 {
		return nil, fmt.Errorf("%s: %w", title, ErrNoData)
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.Color = Palette[0]
	l.Width = vg.Points(2)
	p := newPlot(title, x, y)
	p.Add(l)
	return p, nil
}

// Series is one column drawn in an overlay panel.
type Series struct {
	Column  string
	Label   string
	Color   color.Color
	Line    bool
	Scatter bool
}

// OverlaySpec pairs two series over the same x column. gonum/plot has no
// secondary y axis, so Secondary is drawn in its own panel under Primary and
// both panels share the x range.
type OverlaySpec struct {
	Title     string
	X         string
	Primary   Series
	Secondary Series
}

func addSeries(p *plot.Plot, pts plotter.XYs, s Series) error {
	var thumbs []plot.Thumbnailer
	if s.Line {
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.Color = s.Color
		l.Width = vg.Points(2)
		p.Add(l)
		thumbs = append(thumbs, l)
	}
	if s.Scatter {
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = s.Color
		sc.GlyphStyle.Radius = vg.Points(3)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		thumbs = append(thumbs, sc)
	}
	label := s.Label
	if label == "" {
		label = s.Column
	}
	p.Legend.Add(label, thumbs...)
	return nil
}

// Overlay returns the two aligned panels of o, top first.
func Overlay(t *core.Table, o OverlaySpec) ([][]*plot.Plot, error) {
	primary := series(t, o.X, o.Primary.Column)
	secondary := series(t, o.X, o.Secondary.Column)
	if len(primary) == 0 || len(secondary) == 0 {
		return nil, fmt.Errorf("%s: %w", o.Title, ErrNoData)
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, pts := range []plotter.XYs{primary, secondary} {
		xmin, xmax, _, _ := plotter.XYRange(pts)
		lo, hi = math.Min(lo, xmin), math.Max(hi, xmax)
	}

	top := newPlot(o.Title, "", o.Primary.Column)
	bottom := newPlot("", o.X, o.Secondary.Column)
	if err := addSeries(top, primary, o.Primary); err != nil {
		return nil, err
	}
	if err := addSeries(bottom, secondary, o.Secondary); err != nil {
		return nil, err
	}
	for _, p := range []*plot.Plot{top, bottom} {
		p.X.Min, p.X.Max = lo, hi
		p.Legend.Top = true
		p.Legend.Left = true
	}
	return [][]*plot.Plot{{top}, {bottom}}, nil
}

type hueGroup struct {
	label   float64
	missing bool
	xs, ys  []float64
}

// groupByHue splits the complete (x, y) rows of t by the label in hue. With
// an empty hue everything lands in one group.
func groupByHue(t *core.Table, x, y, hue string) []*hueGroup {
	var groups []*hueGroup
	byLabel := map[float64]*hueGroup{}
	var none *hueGroup
	for i := 0; i < t.Len(); i++ {
		a, okA := t.Get(i, x).Float()
		b, okB := t.Get(i, y).Float()
		if !okA || !okB {
			continue
		}
		var g *hueGroup
		h, okH := 0.0, false
		if hue != "" {
			h, okH = t.Get(i, hue).Float()
		}
		if okH {
			if g = byLabel[h]; g == nil {
				g = &hueGroup{label: h}
				byLabel[h] = g
				groups = append(groups, g)
			}
		} else {
			if none == nil {
				none = &hueGroup{missing: true}
			}
			g = none
		}
		g.xs = append(g.xs, a)
		g.ys = append(g.ys, b)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].label < groups[j].label })
	if none != nil {
		groups = append(groups, none)
	}
	return groups
}

// PairGridSpec describes a scatter matrix over Features, split by Hue when set.
type PairGridSpec struct {
	Title     string
	Features  []string
	Hue       string
	HueOffset int
}

// PairGrid returns a len(Features) square grid: histograms on the diagonal,
// scatter plus least squares line elsewhere. Row i plots Features[i] on y.
func PairGrid(t *core.Table, ps PairGridSpec) ([][]*plot.Plot, error) {
	n := len(ps.Features)
	if n == 0 || t.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", ps.Title, ErrNoData)
	}
	small := vg.Points(6)
	grid := make([][]*plot.Plot, n)
	for i, y := range ps.Features {
		grid[i] = make([]*plot.Plot, n)
		for j, x := range ps.Features {
			p := plot.New()
			p.X.Tick.Label.Font.Size = small
			p.Y.Tick.Label.Font.Size = small
			p.X.Label.TextStyle.Font.Size = vg.Points(7)
			p.Y.Label.TextStyle.Font.Size = vg.Points(7)
			if i == n-1 {
				p.X.Label.Text = x
			}
			if j == 0 {
				p.Y.Label.Text = y
			}
			if i == 0 && j == 0 && ps.Title != "" {
				p.Title.Text = ps.Title
				p.Title.TextStyle.Font.Size = vg.Points(9)
			}

			var err error
			if i == j {
				err = diagonal(p, t.Floats(x))
			} else {
				err = scatterCell(p, t, x, y, ps, i == 0 && j == n-1)
			}
			if err != nil {
				return nil, fmt.Errorf("%s (%s vs %s): %w", ps.Title, y, x, err)
			}
			grid[i][j] = p
		}
	}
	return grid, nil
}

func diagonal(p *plot.Plot, values []float64) error {
	if len(values) == 0 {
		return nil
	}
	h, err := plotter.NewHist(plotter.Values(values), 10)
	if err != nil {
		return err
	}
	h.FillColor = Palette[0]
	p.Add(h)
	return nil
}

func scatterCell(p *plot.Plot, t *core.Table, x, y string, ps PairGridSpec, legend bool) error {
	for k, g := range groupByHue(t, x, y, ps.Hue) {
		c := hueColor(k, ps.HueOffset)
		if g.missing {
			c = missingHue
		}
		pts := make(plotter.XYs, len(g.xs))
		for i := range g.xs {
			pts[i] = plotter.XY{X: g.xs[i], Y: g.ys[i]}
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = c
		sc.GlyphStyle.Radius = vg.Points(1.5)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)

		if alpha, beta, ok := stats.LinearFit(g.xs, g.ys); ok {
			lo, hi := stats.MinMax(g.xs)
			f := plotter.NewFunction(func(v float64) float64 { return alpha + beta*v })
			f.XMin, f.XMax = lo, hi
			f.Color = c
			f.Width = vg.Points(1)
			p.Add(f)
		}

		if legend && ps.Hue != "" {
			name := formatLabel(g.label)
			if g.missing {
				name = "NaN"
			}
			p.Legend.Add(name, sc)
		}
	}
	if legend && ps.Hue != "" {
		p.Legend.Top = true
		p.Legend.TextStyle.Font.Size = vg.Points(6)
	}
	return nil
}
