// SPDX-License-Identifier: MIT

// Package config loads and validates modcat configuration from YAML files
// with environment-variable overrides. A config names one or more search
// profiles, each a set of modifications plus the most that may co-occur.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lonelu/Informed-Proteomics/modcomb"
	"github.com/lonelu/Informed-Proteomics/modification"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the top-level modcat configuration.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Catalogue CatalogueConfig `yaml:"catalogue"`
	Profiles  []ProfileConfig `yaml:"profiles"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Textfile string `yaml:"textfile"`
}

// CatalogueConfig bounds catalogue construction.
type CatalogueConfig struct {
	MaxCombinations int `yaml:"maxCombinations"`
	// Concurrency caps parallel profile builds; 0 means GOMAXPROCS.
	Concurrency int `yaml:"concurrency"`
}

// ProfileConfig is one search setting: its modifications and K.
type ProfileConfig struct {
	Name             string           `yaml:"name"`
	MaxModifications int              `yaml:"maxModifications"`
	Modifications    modification.Set `yaml:"modifications"`
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides, then validates the result.
func Load(path string) (*Config, error) {
	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults, applies MODCAT_* overrides and
// validates.
func Parse(data []byte) (*Config, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Catalogue: CatalogueConfig{
			MaxCombinations: modcomb.DefaultMaxCombinations,
		},
	}
}

// applyEnvOverrides reads MODCAT_* environment variables and overrides the
// corresponding config fields. Numeric variables that do not parse as
// integers are reported as ErrInvalid.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("MODCAT_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("MODCAT_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("MODCAT_METRICS_TEXTFILE"); v != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Textfile = v
	}
	if v := os.Getenv("MODCAT_MAX_COMBINATIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: MODCAT_MAX_COMBINATIONS=%q is not an integer", ErrInvalid, v)
		}
		cfg.Catalogue.MaxCombinations = n
	}
	if v := os.Getenv("MODCAT_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: MODCAT_CONCURRENCY=%q is not an integer", ErrInvalid, v)
		}
		cfg.Catalogue.Concurrency = n
	}
	return nil
}

// Validate checks the configuration for values the catalogue would reject
// anyway, so that errors name the offending profile.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging level %q, want debug, info, warn or error", ErrInvalid, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging format %q, want text or json", ErrInvalid, c.Logging.Format)
	}
	if c.Metrics.Enabled && c.Metrics.Textfile == "" {
		return fmt.Errorf("%w: metrics enabled without a textfile path", ErrInvalid)
	}
	if c.Catalogue.MaxCombinations < 1 || c.Catalogue.MaxCombinations > math.MaxInt32 {
		return fmt.Errorf("%w: maxCombinations must be in [1,%d], got %d", ErrInvalid, math.MaxInt32, c.Catalogue.MaxCombinations)
	}
	if c.Catalogue.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must be ≥ 0, got %d", ErrInvalid, c.Catalogue.Concurrency)
	}
	if len(c.Profiles) == 0 {
		return fmt.Errorf("%w: no profiles", ErrInvalid)
	}

	names := make(map[string]bool, len(c.Profiles))
	for i, p := range c.Profiles {
		if p.Name == "" {
			return fmt.Errorf("%w: profile %d has no name", ErrInvalid, i)
		}
		if names[p.Name] {
			return fmt.Errorf("%w: duplicate profile %q", ErrInvalid, p.Name)
		}
		names[p.Name] = true
		if p.MaxModifications < 1 {
			return fmt.Errorf("%w: profile %q: maxModifications must be ≥ 1, got %d", ErrInvalid, p.Name, p.MaxModifications)
		}
		if err := p.Modifications.Validate(); err != nil {
			return fmt.Errorf("%w: profile %q: %w", ErrInvalid, p.Name, err)
		}
		if len(p.Modifications.Dynamic()) == 0 {
			return fmt.Errorf("%w: profile %q has no dynamic modifications", ErrInvalid, p.Name)
		}
	}

	return nil
}

// Profile returns the profile with the given name.
func (c *Config) Profile(name string) (ProfileConfig, bool) {
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return ProfileConfig{}, false
}
