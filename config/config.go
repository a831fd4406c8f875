// Package config provides configuration loading and management for citenum.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/citenum/numeric"
	"github.com/c360studio/citenum/source"
	"github.com/c360studio/citenum/vocabulary/csl"
)

// Config represents the complete citenum configuration
type Config struct {
	Locale  LocaleConfig       `yaml:"locale"`
	Roman   RomanConfig        `yaml:"roman"`
	Scan    ScanConfig         `yaml:"scan"`
	Watch   source.WatchConfig `yaml:"watch"`
	Metrics MetricsConfig      `yaml:"metrics"`
}

// LocaleConfig configures locale handling
type LocaleConfig struct {
	// Default is used when a value has no locale (default: en)
	Default string `yaml:"default"`
}

// RomanConfig configures Roman numeral decoding
type RomanConfig struct {
	// Mode is "lenient" (IIII accepted) or "strict" (canonical only)
	Mode string `yaml:"mode"`
}

// ScanConfig configures bibliography scanning
type ScanConfig struct {
	// Variables are the CSL variables to inspect (empty = all number variables)
	Variables []string `yaml:"variables"`
	// Match combines per-variable results: all, any or none
	Match string `yaml:"match"`
}

// MetricsConfig configures metrics output
type MetricsConfig struct {
	// Textfile, when set, receives classification counters in Prometheus
	// text format after each command
	Textfile string `yaml:"textfile"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Locale: LocaleConfig{
			Default: numeric.DefaultLocale,
		},
		Roman: RomanConfig{
			Mode: string(numeric.RomanLenient),
		},
		Scan: ScanConfig{
			Variables: nil, // All number variables
			Match:     string(csl.MatchAll),
		},
		Watch: source.DefaultWatchConfig(),
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Locale.Default == "" {
		return fmt.Errorf("locale.default is required")
	}
	if _, err := language.Parse(c.Locale.Default); err != nil {
		return fmt.Errorf("locale.default %q: %w", c.Locale.Default, err)
	}
	if _, err := numeric.ParseRomanMode(c.Roman.Mode); err != nil {
		return fmt.Errorf("roman.mode: %w", err)
	}
	if _, err := csl.ParseMatch(c.Scan.Match); err != nil {
		return fmt.Errorf("scan.match: %w", err)
	}
	for _, v := range c.Scan.Variables {
		if !csl.IsNumberVariable(v) {
			return fmt.Errorf("scan.variables: %q is not a CSL number variable", v)
		}
	}
	return nil
}

// Classifier builds a classifier from the configuration.
func (c *Config) Classifier() (*numeric.Classifier, error) {
	mode, err := numeric.ParseRomanMode(c.Roman.Mode)
	if err != nil {
		return nil, err
	}
	return numeric.New(
		numeric.WithRomanMode(mode),
		numeric.WithDefaultLocale(c.Locale.Default),
	), nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	return loadInto(path, DefaultConfig())
}

// loadOverlay loads only the values set in a YAML file, for merging
func loadOverlay(path string) (*Config, error) {
	return loadInto(path, &Config{})
}

func loadInto(path string, config *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Locale.Default != "" {
		c.Locale.Default = other.Locale.Default
	}

	if other.Roman.Mode != "" {
		c.Roman.Mode = other.Roman.Mode
	}

	if len(other.Scan.Variables) > 0 {
		c.Scan.Variables = other.Scan.Variables
	}
	if other.Scan.Match != "" {
		c.Scan.Match = other.Scan.Match
	}

	if other.Watch.DebounceDelay != "" {
		c.Watch.DebounceDelay = other.Watch.DebounceDelay
	}
	if len(other.Watch.Extensions) > 0 {
		c.Watch.Extensions = other.Watch.Extensions
	}

	if other.Metrics.Textfile != "" {
		c.Metrics.Textfile = other.Metrics.Textfile
	}
}
