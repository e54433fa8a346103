// Package config provides environment-driven configuration.
package config

import (
	"fmt"
	"os"
)

// Config holds the runtime settings for the converter.
type Config struct {
	// DataDir is the directory holding both input and output files.
	DataDir string
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string
	// LogFormat is "text" or "json".
	LogFormat string
}

// Load reads configuration from environment variables, applying
// defaults for unset values, and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		DataDir:   envOr("CALCCONV_DATA_DIR", "public"),
		LogLevel:  envOr("CALCCONV_LOG_LEVEL", "info"),
		LogFormat: envOr("CALCCONV_LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("CALCCONV_DATA_DIR must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("CALCCONV_LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("CALCCONV_LOG_FORMAT %q is not one of text, json", c.LogFormat)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
