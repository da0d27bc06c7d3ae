package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
)

const (
	EnvLogLevel  = "ASSAY_LOG_LEVEL"
	EnvLogFormat = "ASSAY_LOG_FORMAT"
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
	LogFormatTint = "tint"
)

var logFormats = []string{LogFormatText, LogFormatJSON, LogFormatTint}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// SlogLevel returns Level as a slog.Level. Validation guarantees it parses.
func (c *LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	level.UnmarshalText([]byte(c.Level))
	return level
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *LogConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *LogConfig) Merge(overlay *LogConfig) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
}

func (c *LogConfig) loadDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = LogFormatText
	}
}

func (c *LogConfig) loadEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Format = v
	}
}

func (c *LogConfig) validate() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return fmt.Errorf("invalid level: %w", err)
	}
	c.Format = strings.ToLower(c.Format)
	if !slices.Contains(logFormats, c.Format) {
		return fmt.Errorf("invalid format %q: want one of %s", c.Format, strings.Join(logFormats, ", "))
	}
	return nil
}
