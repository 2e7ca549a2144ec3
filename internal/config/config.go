// Package config resolves runtime settings that are not part of a beam
// problem: logging, sampling and image export defaults.
//
// Values come from, in increasing precedence: built-in defaults, a .env
// file, the process environment. Command-line flags are applied on top by
// the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when no other file is named
const DefaultEnvFile = ".env"

// Environment variable names
const (
	EnvLogLevel   = "SSBEAM_LOG_LEVEL"
	EnvSamples    = "SSBEAM_SAMPLES"
	EnvPlotFormat = "SSBEAM_PLOT_FORMAT"
	EnvOutputDir  = "SSBEAM_OUTPUT_DIR"
	EnvNoColor    = "SSBEAM_NO_COLOR"
)

// Config holds the resolved settings
type Config struct {
	LogLevel   slog.Level
	Samples    int    // points per diagram, at least 2
	PlotFormat string // png, svg or pdf
	OutputDir  string // empty disables image export
	NoColor    bool
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		LogLevel:   slog.LevelWarn,
		Samples:    400,
		PlotFormat: "png",
	}
}

// Load reads envFile (if it exists) and the process environment. A
// missing file is not an error.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	vars, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
		vars = map[string]string{}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}
	return FromLookup(lookup)
}

// FromLookup builds a Config from a key lookup function
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		level, err := ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if v, ok := lookup(EnvSamples); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSamples, err)
		}
		cfg.Samples = n
	}

	if v, ok := lookup(EnvPlotFormat); ok && v != "" {
		cfg.PlotFormat = strings.ToLower(strings.TrimSpace(v))
	}

	if v, ok := lookup(EnvOutputDir); ok {
		cfg.OutputDir = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvNoColor); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvNoColor, err)
		}
		cfg.NoColor = b
	}

	return cfg, cfg.Validate()
}

// Validate checks the settings
func (c Config) Validate() error {
	if c.Samples < 2 {
		return fmt.Errorf("samples must be at least 2, got %d", c.Samples)
	}
	switch c.PlotFormat {
	case "png", "svg", "pdf":
	default:
		return fmt.Errorf("unsupported plot format %q (want png, svg or pdf)", c.PlotFormat)
	}
	return nil
}

// ParseLevel accepts debug, info, warn/warning and error
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return level, nil
}
