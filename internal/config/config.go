// Package config provides configuration loading for cosmoscope.
// Settings are loaded from a YAML file over built-in defaults. Analysis
// parameters live here rather than in command-line flags so a run is
// reproducible from the base directory alone.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config contains all cosmoscope configuration settings.
type Config struct {
	// Analysis contains the selection parameters for the pipeline.
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`

	// Data contains input location overrides.
	Data DataConfig `json:"data" yaml:"data"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Catalog contains settings for the run catalog.
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
}

// AnalysisConfig configures generation filtering and elite selection.
type AnalysisConfig struct {
	// TargetGeneration is the dominant-generation tag the landscape and
	// adam pipelines keep. Generation 1 is the universe we live in.
	TargetGeneration int `json:"target_generation" yaml:"target_generation"`

	// EliteSize is K for the top-K elite subset.
	EliteSize int `json:"elite_size" yaml:"elite_size"`
}

// DataConfig configures where input files are found.
type DataConfig struct {
	// Dir overrides the data directory. Empty means <base>/data.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// LoggingConfig configures operational logging.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level"`
}

// CatalogConfig configures the sqlite run catalog.
type CatalogConfig struct {
	// Enabled records every completed run in <base>/.cosmoscope/catalog.db.
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// Default returns a Config with the standard analysis parameters.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			TargetGeneration: 1,
			EliteSize:        500,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Catalog: CatalogConfig{
			Enabled: true,
		},
	}
}

// Load reads the config file at path, applying it over defaults.
// A missing file is not an error; defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the analysis parameters are usable.
func (c *Config) Validate() error {
	if c.Analysis.EliteSize <= 0 {
		return fmt.Errorf("analysis.elite_size must be positive, got %d", c.Analysis.EliteSize)
	}
	if c.Analysis.TargetGeneration < 0 {
		return fmt.Errorf("analysis.target_generation must not be negative, got %d", c.Analysis.TargetGeneration)
	}
	return nil
}
