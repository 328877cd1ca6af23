// Package config provides centralized configuration for the Studio
// backend.
package config

import (
	"os"
	"time"
)

// Config holds application-wide configuration.
type Config struct {
	// ListenAddr is the HTTP listen address.
	ListenAddr string
	// GeneratorURL is the base URL of the external generative service.
	GeneratorURL string
	// PreviewDelay is the quiet period before the preview regenerates.
	PreviewDelay time.Duration
	// LogLevel is the zap level name.
	LogLevel string
}

// DefaultConfig returns the default configuration, reading from
// environment variables.
func DefaultConfig() *Config {
	cfg := &Config{
		ListenAddr:   ":8080",
		PreviewDelay: 750 * time.Millisecond,
		LogLevel:     "info",
	}
	if v := os.Getenv("STUDIO_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("STUDIO_GENERATOR_URL"); v != "" {
		cfg.GeneratorURL = v
	}
	if v := os.Getenv("STUDIO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("STUDIO_PREVIEW_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.PreviewDelay = d
		}
	}
	return cfg
}

// Global is the application-wide configuration instance.
var Global = DefaultConfig()
