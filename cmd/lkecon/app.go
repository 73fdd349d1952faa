package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/analysis"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/chart"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/config"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/core"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/data"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/dataprep"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/export"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/logger"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/report"
)

var errNoExportPath = errors.New("no export path: pass one or set LKECON_EXPORT")

type app struct {
	cfg *config.Config
	log logger.Logger

	raw *core.Table
	res *dataprep.Result
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger.SetupLogger(cfg.Logging.Level, cfg.Logging.JSON, cfg.Logging.Source)
	a.cfg = cfg
	a.log = logger.GetDefault()
	return nil
}

// normalize loads the input once and runs the cleaning pipeline on it.
func (a *app) normalize() error {
	if a.res != nil {
		return nil
	}
	a.log.Info("loading dataset", "path", a.cfg.Input)
	raw, err := data.Load(a.cfg.Input, a.cfg.Sheet)
	if err != nil {
		return a.fail("load", err)
	}
	if err := data.RequireColumns(raw, data.RequiredColumns); err != nil {
		return a.fail("load", err)
	}
	res, err := dataprep.Normalize(raw, a.log)
	if err != nil {
		return a.fail("normalize", err)
	}
	a.raw, a.res = raw, res
	a.log.Info("dataset normalized", "rows", res.Table.Len(), "columns", len(res.Table.Columns))
	return nil
}

func (a *app) fail(stage string, err error) error {
	a.log.Error("run failed", "stage", stage, "error", err)
	return fmt.Errorf("%s: %w", stage, err)
}

func (a *app) run(cmd *cobra.Command) error {
	if err := a.clean(cmd); err != nil {
		return err
	}
	if err := a.corr(cmd); err != nil {
		return err
	}
	if err := a.plot(cmd); err != nil {
		return err
	}
	if a.cfg.Export != "" {
		return a.export(cmd, nil)
	}
	return nil
}

func (a *app) clean(cmd *cobra.Command) error {
	if err := a.normalize(); err != nil {
		return err
	}
	p := report.New(cmd.OutOrStdout())
	p.Head(a.raw, a.cfg.Preview)
	p.Info(a.raw)

	t := a.res.Table
	p.Info(t)
	p.Coercions(a.res.Coerced)
	p.Describe(t, t.Columns)
	p.Bins(analysis.SummarizeBins(t, a.res.Edges))
	p.Years(t)
	p.Head(t, a.cfg.Preview)
	if err := dataprep.Schema().Check(t); err != nil {
		a.log.Warn("cleaned table does not match its schema", "error", err)
	}
	return nil
}

func (a *app) corr(cmd *cobra.Command) error {
	if err := a.normalize(); err != nil {
		return err
	}
	p := report.New(cmd.OutOrStdout())
	t := a.res.Table

	p.Correlations("Nominal features vs Inflation Rate",
		analysis.CorrWith(t, analysis.NominalFeatures, dataprep.InflationColumn))
	p.Correlations("Nominal features vs GDP",
		analysis.SortDescending(analysis.CorrWith(t, analysis.NominalFeatures, "GDP")))
	p.Correlations("Per capita features vs GDP Per Capita",
		analysis.SortDescending(analysis.CorrWith(t, analysis.PerCapitaFeatures, "GDP Per Capita")))
	p.Correlations("Rate of change features vs GDP growth percentage",
		analysis.SortDescending(analysis.CorrWith(t, analysis.RateOfChangeFeatures, dataprep.GDPGrowthColumn)))
	for _, g := range analysis.Groups() {
		p.Matrix("Correlation matrix: "+g.Name+" features", g.Features, analysis.CorrMatrix(t, g.Features))
	}
	return nil
}

func (a *app) plot(_ *cobra.Command) error {
	if err := a.normalize(); err != nil {
		return err
	}
	c := a.cfg.Charts
	r, err := chart.NewRenderer(c.Dir, c.Format, c.Width, c.Height, a.log)
	if err != nil {
		return a.fail("plot", err)
	}
	if err := chart.Render(a.res.Table, a.res.Edges, chart.Plan(), r); err != nil {
		return a.fail("plot", err)
	}
	a.log.Info("charts written", "dir", c.Dir, "count", len(r.Written()))
	return nil
}

func (a *app) export(_ *cobra.Command, args []string) error {
	path := a.cfg.Export
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return errNoExportPath
	}
	if err := a.normalize(); err != nil {
		return err
	}
	if err := export.Write(path, a.res.Table); err != nil {
		return a.fail("export", err)
	}
	a.log.Info("cleaned table exported", "path", path)
	return nil
}
