package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/c360studio/citenum/numeric"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Locale.Default != "en" {
		t.Errorf("expected default locale en, got %s", cfg.Locale.Default)
	}
	if cfg.Roman.Mode != "lenient" {
		t.Errorf("expected lenient roman mode, got %s", cfg.Roman.Mode)
	}
	if cfg.Scan.Match != "all" {
		t.Errorf("expected match all, got %s", cfg.Scan.Match)
	}
	if len(cfg.Scan.Variables) != 0 {
		t.Errorf("expected no explicit variables, got %v", cfg.Scan.Variables)
	}
	if cfg.Watch.GetDebounceDelay() != 500*time.Millisecond {
		t.Errorf("expected 500ms debounce, got %v", cfg.Watch.GetDebounceDelay())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "regional locale",
			modify:  func(c *Config) { c.Locale.Default = "fr-CA" },
			wantErr: false,
		},
		{
			name:    "missing locale",
			modify:  func(c *Config) { c.Locale.Default = "" },
			wantErr: true,
		},
		{
			name:    "malformed locale",
			modify:  func(c *Config) { c.Locale.Default = "not a locale" },
			wantErr: true,
		},
		{
			name:    "strict roman mode",
			modify:  func(c *Config) { c.Roman.Mode = "strict" },
			wantErr: false,
		},
		{
			name:    "unknown roman mode",
			modify:  func(c *Config) { c.Roman.Mode = "loose" },
			wantErr: true,
		},
		{
			name:    "unknown match",
			modify:  func(c *Config) { c.Scan.Match = "some" },
			wantErr: true,
		},
		{
			name:    "number variables",
			modify:  func(c *Config) { c.Scan.Variables = []string{"volume", "issue"} },
			wantErr: false,
		},
		{
			name:    "non-number variable",
			modify:  func(c *Config) { c.Scan.Variables = []string{"title"} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigClassifier(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Roman.Mode = "strict"
	cfg.Locale.Default = "de"

	c, err := cfg.Classifier()
	if err != nil {
		t.Fatalf("Classifier() error = %v", err)
	}
	if c.RomanMode() != numeric.RomanStrict {
		t.Errorf("expected strict mode, got %s", c.RomanMode())
	}
	if c.Classify("IIII", "") {
		t.Error("strict classifier should reject IIII")
	}
	// Empty locale falls back to the configured default (German).
	if !c.Classify("3te", "") {
		t.Error("expected 3te to be a German ordinal")
	}
	if c.Classify("3rd", "") {
		t.Error("expected 3rd to be rejected in German")
	}

	cfg.Roman.Mode = "bogus"
	if _, err := cfg.Classifier(); err == nil {
		t.Error("expected error for unknown roman mode")
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
locale:
  default: "fr"
roman:
  mode: strict
scan:
  variables:
    - volume
    - page
  match: any
watch:
  debounce_delay: 2s
metrics:
  textfile: /tmp/citenum.prom
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Locale.Default != "fr" {
		t.Errorf("expected locale fr, got %s", cfg.Locale.Default)
	}
	if cfg.Roman.Mode != "strict" {
		t.Errorf("expected roman mode strict, got %s", cfg.Roman.Mode)
	}
	if len(cfg.Scan.Variables) != 2 {
		t.Errorf("expected 2 variables, got %d", len(cfg.Scan.Variables))
	}
	if cfg.Scan.Match != "any" {
		t.Errorf("expected match any, got %s", cfg.Scan.Match)
	}
	if cfg.Watch.GetDebounceDelay() != 2*time.Second {
		t.Errorf("expected debounce 2s, got %v", cfg.Watch.GetDebounceDelay())
	}
	// Extensions were not set and keep the default
	if len(cfg.Watch.Extensions) != 1 || cfg.Watch.Extensions[0] != ".json" {
		t.Errorf("expected default extensions, got %v", cfg.Watch.Extensions)
	}
	if cfg.Metrics.Textfile != "/tmp/citenum.prom" {
		t.Errorf("expected textfile /tmp/citenum.prom, got %s", cfg.Metrics.Textfile)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadFromFile(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	badPath := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(badPath, []byte("locale: [unterminated"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := LoadFromFile(badPath); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Roman: RomanConfig{
			Mode: "strict",
		},
		Scan: ScanConfig{
			Variables: []string{"issue"},
		},
	}

	base.Merge(override)

	if base.Roman.Mode != "strict" {
		t.Errorf("expected roman mode strict, got %s", base.Roman.Mode)
	}
	if len(base.Scan.Variables) != 1 || base.Scan.Variables[0] != "issue" {
		t.Errorf("expected variables [issue], got %v", base.Scan.Variables)
	}
	// Locale and match should remain from base since override didn't set them
	if base.Locale.Default != "en" {
		t.Errorf("expected locale to remain default, got %s", base.Locale.Default)
	}
	if base.Scan.Match != "all" {
		t.Errorf("expected match to remain all, got %s", base.Scan.Match)
	}

	base.Merge(nil)
	if base.Roman.Mode != "strict" {
		t.Error("merging nil should be a no-op")
	}
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Locale.Default = "nl"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	// Load and verify
	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Locale.Default != "nl" {
		t.Errorf("expected locale nl, got %s", loaded.Locale.Default)
	}
}
