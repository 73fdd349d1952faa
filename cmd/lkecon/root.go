package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/config"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/logger"
)

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lkecon",
		Short: "Normalize and explore the Sri Lanka economy dataset",
		Long: `lkecon cleans the yearly Sri Lanka economy table (currency, percent and
population columns), derives growth and inflation bins, prints summary and
correlation tables and writes the exploration charts to disk.

Running lkecon without a subcommand does all of it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "YAML config file (default $LKECON_CONFIG or ./"+config.DefaultFile+")")
	flags.StringP("input", "i", "", "input dataset (.csv or .xlsx)")
	flags.String("sheet", "", "worksheet to read from an .xlsx input")
	flags.Int("preview", 0, "rows shown by the head summary")
	flags.String("charts-dir", "", "directory charts are written to")
	flags.String("format", "", "chart format: png, svg or pdf")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.Bool("log-json", false, "log as JSON")
	flags.Bool("log-source", false, "add the caller to log lines")

	root.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "Clean, summarize, correlate and plot",
			RunE:  func(cmd *cobra.Command, _ []string) error { return a.run(cmd) },
		},
		&cobra.Command{
			Use:   "clean",
			Short: "Clean the dataset and print head and info summaries",
			RunE:  func(cmd *cobra.Command, _ []string) error { return a.clean(cmd) },
		},
		&cobra.Command{
			Use:   "corr",
			Short: "Print the correlation tables of each feature group",
			RunE:  func(cmd *cobra.Command, _ []string) error { return a.corr(cmd) },
		},
		&cobra.Command{
			Use:   "plot",
			Short: "Render every exploration chart",
			RunE:  func(cmd *cobra.Command, _ []string) error { return a.plot(cmd) },
		},
		&cobra.Command{
			Use:   "export [path]",
			Short: "Write the cleaned table to .csv or .xlsx",
			Args:  cobra.MaximumNArgs(1),
			RunE:  func(cmd *cobra.Command, args []string) error { return a.export(cmd, args) },
		},
	)
	return root
}

// loadConfig reads env and file configuration, then applies changed flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	var cfg *config.Config
	if path != "" {
		cfg, err = config.LoadFile(path, true)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	strs := map[string]*string{
		"input":      &cfg.Input,
		"sheet":      &cfg.Sheet,
		"charts-dir": &cfg.Charts.Dir,
		"format":     &cfg.Charts.Format,
		"log-level":  &cfg.Logging.Level,
	}
	for name, dst := range strs {
		if !flags.Changed(name) {
			continue
		}
		if *dst, err = flags.GetString(name); err != nil {
			return nil, fmt.Errorf("failed to get %s flag: %w", name, err)
		}
	}
	if flags.Changed("preview") {
		if cfg.Preview, err = flags.GetInt("preview"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("log-json") || flags.Changed("log-source") {
		_, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
		if err != nil {
			return nil, err
		}
		if flags.Changed("log-json") {
			cfg.Logging.JSON = logJSON
		}
		if flags.Changed("log-source") {
			cfg.Logging.Source = logSource
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
