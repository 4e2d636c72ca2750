// Package config loads run settings from YAML.
//
// A config file is optional. Values from the file are applied over Default,
// and the CLI applies explicitly set flags over the result.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/roach88/specrun/internal/formatter"
)

// Config holds the settings for one run.
type Config struct {
	// Format selects the report formatter: text, html, wiki, json or table.
	Format string `yaml:"format"`

	// Output is the report path. Empty means stdout.
	Output string `yaml:"output,omitempty"`

	// Filter is a glob over root context names. Empty selects every root.
	Filter string `yaml:"filter,omitempty"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose,omitempty"`

	// NoColor disables terminal styling in text and table reports.
	NoColor bool `yaml:"no_color,omitempty"`

	// MetricsTextfile, when set, receives the run's metrics in node
	// exporter textfile format.
	MetricsTextfile string `yaml:"metrics_textfile,omitempty"`
}

// Default returns the settings used when no file or flag says otherwise.
func Default() *Config {
	return &Config{Format: "text"}
}

// Load reads the YAML file at path over Default.
//
// Unknown fields are rejected. Relative output paths are resolved against
// the directory holding the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	cfg.Output = resolve(base, cfg.Output)
	cfg.MetricsTextfile = resolve(base, cfg.MetricsTextfile)
	return cfg, nil
}

// Parse decodes YAML config data over Default and validates the result.
// Empty input yields Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the settings can drive a run.
func (c *Config) Validate() error {
	if !slices.Contains(formatter.Names, c.Format) {
		return fmt.Errorf("format %q is not one of %v", c.Format, formatter.Names)
	}
	if c.Filter != "" {
		if _, err := path.Match(c.Filter, ""); err != nil {
			return fmt.Errorf("filter %q: %w", c.Filter, err)
		}
	}
	return nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
