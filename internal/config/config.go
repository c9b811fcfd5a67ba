// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the export commands need besides the documents'
// own styling, which stays compiled in.
type Config struct {
	OutputDir string
	LogEvents bool
	Timezone  string
	Parallel  int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		OutputDir: ".",
		LogEvents: false,
		Timezone:  "Europe/Paris",
		Parallel:  4,
	}
}

// LoadConfig reads configuration from environment variables, falling back to
// defaults for any unset or invalid value.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CADRAGE_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("CADRAGE_LOG_EVENTS"); v != "" {
		cfg.LogEvents, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("CADRAGE_TIMEZONE"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("CADRAGE_PARALLEL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Parallel = n
		}
	}

	return cfg
}

// Location resolves Timezone, or UTC when the zone is unknown.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
