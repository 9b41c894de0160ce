// SPDX-License-Identifier: MIT

// Package config holds the run settings of the roadpath CLI and batch
// processor. Settings come from Default, optionally overlaid by a TOML file:
//
//	workers      = 4
//	separator    = ", "
//	no_path_text = "No path found"
//	log_level    = "info"
//
//	[trace]
//	enabled  = true
//	endpoint = "http://localhost:4318"
//
// Keys missing from the file keep their defaults; unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// ErrInvalidConfig marks a configuration that cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults.
const (
	DefaultSeparator  = ", "
	DefaultNoPathText = "No path found"
	DefaultLogLevel   = "info"
)

// Config is the full set of run settings.
type Config struct {
	// Workers bounds how many sources are processed concurrently.
	Workers int `toml:"workers"`
	// Separator joins node IDs of a found path.
	Separator string `toml:"separator"`
	// NoPathText is reported when Finish cannot be reached.
	NoPathText string `toml:"no_path_text"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	Trace    Trace  `toml:"trace"`
}

// Trace configures OpenTelemetry export.
type Trace struct {
	Enabled bool `toml:"enabled"`
	// Endpoint is an OTLP/HTTP URL; empty falls back to OTEL_EXPORTER_OTLP_ENDPOINT
	// and then to a local writer.
	Endpoint string `toml:"endpoint"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Workers:    runtime.NumCPU(),
		Separator:  DefaultSeparator,
		NoPathText: DefaultNoPathText,
		LogLevel:   DefaultLogLevel,
	}
}

// Load decodes the TOML file at path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.NoPathText == "" {
		return fmt.Errorf("%w: no_path_text must not be empty", ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q: %v", ErrInvalidConfig, c.LogLevel, err)
	}

	return nil
}

// Level returns the parsed log level, InfoLevel if it cannot be parsed.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
