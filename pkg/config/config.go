// Package config defines the slugger configuration.
//
// The configuration is organized into logical sections:
//   - Data: the batting file to load and how much of it
//   - Logging: level and encoding of the process logger
//   - Observability: tracing and metrics output
//   - Output: how results are rendered
//
// Example usage:
//
//	cfg := config.Default()
//	cfg.Data.Path = "testdata/Batting.csv.gz"
//	cfg.Data.Limit = 0 // read everything
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"strings"

	"github.com/ajitpratap0/slugger/pkg/errors"
)

// Config is the complete slugger configuration.
type Config struct {
	// Data selects the input file
	Data DataConfig `yaml:"data" json:"data"`

	// Logging configures the process logger
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	// Observability enables tracing and metrics output
	Observability ObservabilityConfig `yaml:"observability" json:"observability"`

	// Output controls result rendering
	Output OutputConfig `yaml:"output" json:"output"`
}

// DataConfig describes the batting file.
type DataConfig struct {
	// Path to a Lahman-style Batting.csv, optionally compressed
	Path string `yaml:"path" json:"path"`
	// Limit is the number of data rows to examine (0 = all rows)
	Limit int `yaml:"limit" json:"limit"`
	// Compression is auto, none, gzip, zstd or lz4
	Compression string `yaml:"compression" json:"compression"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	// Level is debug, info, warn or error
	Level string `yaml:"level" json:"level"`
	// Encoding is console or json
	Encoding string `yaml:"encoding" json:"encoding"`
	// Development enables caller and stacktrace annotations
	Development bool `yaml:"development" json:"development"`
}

// ObservabilityConfig contains tracing and metrics settings.
type ObservabilityConfig struct {
	// Tracing prints a span per operation to stderr
	Tracing bool `yaml:"tracing" json:"tracing"`
	// PrettyTrace indents each span instead of one JSON object per line
	PrettyTrace bool `yaml:"pretty_trace" json:"pretty_trace"`
	// Metrics dumps the Prometheus metrics after each command
	Metrics bool `yaml:"metrics" json:"metrics"`
	// ServiceName is attached to every span
	ServiceName string `yaml:"service_name" json:"service_name"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	// Format is text or json
	Format string `yaml:"format" json:"format"`
}

var (
	validLevels       = []string{"debug", "info", "warn", "error"}
	validEncodings    = []string{"console", "json"}
	validCompressions = []string{"auto", "none", "gzip", "zstd", "lz4"}
	validFormats      = []string{"text", "json"}
)

// Default returns the configuration used when no file is given: the first
// 20 rows of Batting.csv in the working directory, warn-level console
// logging and text output.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Path:        "Batting.csv",
			Limit:       20,
			Compression: "auto",
		},
		Logging: LoggingConfig{
			Level:    "warn",
			Encoding: "console",
		},
		Observability: ObservabilityConfig{
			ServiceName: "slugger",
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Validate checks required fields and enumerated values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Data.Path) == "" {
		return errors.New(errors.ErrorTypeConfig, "data.path is required")
	}
	if c.Data.Limit < 0 {
		return errors.New(errors.ErrorTypeConfig, "data.limit cannot be negative").
			WithDetail("limit", c.Data.Limit)
	}
	checks := []struct {
		key   string
		value string
		valid []string
	}{
		{"data.compression", c.Data.Compression, validCompressions},
		{"logging.level", c.Logging.Level, validLevels},
		{"logging.encoding", c.Logging.Encoding, validEncodings},
		{"output.format", c.Output.Format, validFormats},
	}
	for _, check := range checks {
		if !oneOf(check.value, check.valid) {
			return errors.Newf(errors.ErrorTypeConfig, "invalid %s %q", check.key, check.value).
				WithDetail("valid", check.valid)
		}
	}
	return nil
}

// oneOf reports whether v is empty or one of valid, ignoring case.
func oneOf(v string, valid []string) bool {
	if v == "" {
		return true
	}
	for _, s := range valid {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
