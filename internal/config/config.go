// Package config holds all growdash configuration. Settings come from a
// growdash.yaml file next to the data, with defaults that match the layout
// the schools deliver: a data/ directory holding one 환경데이터 CSV per school
// and a single 생육결과데이터 workbook.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no explicit path is given.
const DefaultPath = "growdash.yaml"

// Config is the full growdash configuration.
type Config struct {
	// DataDir is the directory holding the source files.
	DataDir string `yaml:"data_dir"`

	// ExportDir receives generated artifacts (XLSX/CSV/PNG).
	ExportDir string `yaml:"export_dir"`

	// Theme selects the TUI color scheme ("light" or "dark").
	Theme string `yaml:"theme"`

	// OutcomeColumn is the growth outcome used for all aggregation.
	OutcomeColumn string `yaml:"outcome_column"`

	// Variables are the environmental columns analyzed, in display order.
	Variables []string `yaml:"variables"`

	// Logging controls the categorized debug log.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls the file-based debug log.
type LoggingConfig struct {
	Debug bool   `yaml:"debug"`
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		DataDir:       "data",
		ExportDir:     "export",
		Theme:         "light",
		OutcomeColumn: "생중량(g)",
		Variables:     []string{"temperature", "humidity", "ph", "ec"},
		Logging: LoggingConfig{
			Debug: false,
			Level: "info",
			Dir:   ".growdash/logs",
		},
	}
}

// Load reads the YAML config at path, falling back to defaults for every
// unset field. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.withDefaults(), nil
}

// withDefaults backfills fields an explicit config file left empty.
func (c Config) withDefaults() Config {
	d := Default()
	if c.DataDir == "" {
		c.DataDir = d.DataDir
	}
	if c.ExportDir == "" {
		c.ExportDir = d.ExportDir
	}
	if c.Theme == "" {
		c.Theme = d.Theme
	}
	if c.OutcomeColumn == "" {
		c.OutcomeColumn = d.OutcomeColumn
	}
	if len(c.Variables) == 0 {
		c.Variables = d.Variables
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Logging.Dir == "" {
		c.Logging.Dir = d.Logging.Dir
	}
	return c
}
