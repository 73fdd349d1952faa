package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/logger"
)

// Renderer writes charts into Dir, numbering files in the order they are saved.
type Renderer struct {
	Dir    string
	Format string
	Width  vg.Length
	Height vg.Length

	log     logger.Logger
	written []string
}

// NewRenderer creates dir if needed. width and height are in inches.
func NewRenderer(dir, format string, width, height float64, log logger.Logger) (*Renderer, error) {
	if log == nil {
		log = logger.GetDefault()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create chart directory: %w", err)
	}
	return &Renderer{
		Dir:    dir,
		Format: format,
		Width:  vg.Length(width) * vg.Inch,
		Height: vg.Length(height) * vg.Inch,
		log:    log,
	}, nil
}

// Written lists the files saved so far.
func (r *Renderer) Written() []string { return append([]string(nil), r.written...) }

func (r *Renderer) path(title string) string {
	name := fmt.Sprintf("%02d-%s.%s", len(r.written)+1, slug.Make(title), r.Format)
	return filepath.Join(r.Dir, name)
}

// Save writes a single plot.
func (r *Renderer) Save(p *plot.Plot, title string) (string, error) {
	path := r.path(title)
	if err := p.Save(r.Width, r.Height, path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	r.saved(path, title)
	return path, nil
}

// SaveGrid aligns plots on one canvas, row by row. Nil cells stay blank.
func (r *Renderer) SaveGrid(plots [][]*plot.Plot, title string, w, h vg.Length) (string, error) {
	if len(plots) == 0 || len(plots[0]) == 0 {
		return "", fmt.Errorf("save %s: %w", title, ErrNoData)
	}
	c, err := draw.NewFormattedCanvas(w, h, r.Format)
	if err != nil {
		return "", err
	}
	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      len(plots[0]),
		PadX:      vg.Millimeter * 2,
		PadY:      vg.Millimeter * 2,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	path := r.path(title)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	r.saved(path, title)
	return path, nil
}

func (r *Renderer) saved(path, title string) {
	r.written = append(r.written, path)
	r.log.Info("chart saved", "title", title, "path", path)
}
