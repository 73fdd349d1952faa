package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable, e.g. LKECON_INPUT.
const EnvPrefix = "LKECON"

// DefaultFile is read when present and LKECON_CONFIG is unset.
const DefaultFile = "lkecon.yaml"

// Config represents the complete tool configuration
type Config struct {
	Input   string        `yaml:"input" envconfig:"INPUT" default:"Sri Lanka Economy.csv" validate:"required"`
	Sheet   string        `yaml:"sheet" envconfig:"SHEET"`
	Preview int           `yaml:"preview" envconfig:"PREVIEW" default:"5" validate:"gte=0"`
	Export  string        `yaml:"export" envconfig:"EXPORT"`
	Charts  ChartsConfig  `yaml:"charts" envconfig:"CHARTS"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// ChartsConfig controls where and how charts are rendered
type ChartsConfig struct {
	Dir    string  `yaml:"dir" envconfig:"DIR" default:"charts" validate:"required"`
	Format string  `yaml:"format" envconfig:"FORMAT" default:"png" validate:"oneof=png svg pdf"`
	Width  float64 `yaml:"width" envconfig:"WIDTH" default:"10" validate:"gt=0"`
	Height float64 `yaml:"height" envconfig:"HEIGHT" default:"6" validate:"gt=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	JSON   bool   `yaml:"json" envconfig:"JSON"`
	Source bool   `yaml:"source" envconfig:"SOURCE"`
}

// Load reads defaults and environment variables, then overlays the YAML file
// named by LKECON_CONFIG (or lkecon.yaml when present).
func Load() (*Config, error) {
	path := os.Getenv(EnvPrefix + "_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	return LoadFile(path, explicit)
}

// LoadFile is Load with an explicit file. When required is false a missing
// file is not an error.
func LoadFile(path string, required bool) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			var fileCfg fileConfig
			if err := yaml.Unmarshal(data, &fileCfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
			cfg = mergeConfigs(fileCfg, cfg)
		case errors.Is(err, os.ErrNotExist) && !required:
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// fileConfig mirrors Config with pointer fields so a key set to its zero
// value in the file is told apart from an absent key.
type fileConfig struct {
	Input   *string `yaml:"input"`
	Sheet   *string `yaml:"sheet"`
	Preview *int    `yaml:"preview"`
	Export  *string `yaml:"export"`
	Charts  struct {
		Dir    *string  `yaml:"dir"`
		Format *string  `yaml:"format"`
		Width  *float64 `yaml:"width"`
		Height *float64 `yaml:"height"`
	} `yaml:"charts"`
	Logging struct {
		Level  *string `yaml:"level"`
		JSON   *bool   `yaml:"json"`
		Source *bool   `yaml:"source"`
	} `yaml:"logging"`
}

// overlay copies a value present in the file unless the matching
// environment variable is set.
func overlay[T any](env string, file *T, dst *T) {
	if file == nil {
		return
	}
	if _, set := os.LookupEnv(EnvPrefix + "_" + env); set {
		return
	}
	*dst = *file
}

// mergeConfigs lets file values win over defaults, while explicitly set
// environment variables still win over the file.
func mergeConfigs(file fileConfig, cfg Config) Config {
	overlay("INPUT", file.Input, &cfg.Input)
	overlay("SHEET", file.Sheet, &cfg.Sheet)
	overlay("PREVIEW", file.Preview, &cfg.Preview)
	overlay("EXPORT", file.Export, &cfg.Export)
	overlay("CHARTS_DIR", file.Charts.Dir, &cfg.Charts.Dir)
	overlay("CHARTS_FORMAT", file.Charts.Format, &cfg.Charts.Format)
	overlay("CHARTS_WIDTH", file.Charts.Width, &cfg.Charts.Width)
	overlay("CHARTS_HEIGHT", file.Charts.Height, &cfg.Charts.Height)
	overlay("LOGGING_LEVEL", file.Logging.Level, &cfg.Logging.Level)
	overlay("LOGGING_JSON", file.Logging.JSON, &cfg.Logging.JSON)
	overlay("LOGGING_SOURCE", file.Logging.Source, &cfg.Logging.Source)
	return cfg
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
