// Package config loads labyrinth settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds game configuration options.
type Config struct {
	// Seed for room generation. 0 means a time-based seed.
	Seed int64 `env:"LABYRINTH_SEED" envDefault:"0"`

	// StopOnEmpty drops the rest of a queued batch at the first empty command
	// instead of skipping just that entry.
	StopOnEmpty bool `env:"LABYRINTH_STOP_ON_EMPTY" envDefault:"false"`

	LogLevel string `env:"LABYRINTH_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LABYRINTH_LOG_FILE" envDefault:"labyrinth.log"`

	// MetricsAddr is where /metrics is served; empty disables it.
	MetricsAddr string `env:"LABYRINTH_METRICS_ADDR"`

	Telemetry TelemetryConfig
}

// TelemetryConfig controls trace export to Honeycomb.
type TelemetryConfig struct {
	Enabled  bool   `env:"LABYRINTH_TELEMETRY" envDefault:"false"`
	Endpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"https://api.honeycomb.io"`
	APIKey   string `env:"HONEYCOMB_LABYRINTH_API_KEY"`
	Dataset  string `env:"HONEYCOMB_LABYRINTH_DATASET" envDefault:"labyrinth"`
}

// Headers returns the OTLP headers for the configured Honeycomb team.
func (t TelemetryConfig) Headers() map[string]string {
	if t.APIKey == "" {
		return nil
	}
	return map[string]string{
		"x-honeycomb-team":    t.APIKey,
		"x-honeycomb-dataset": t.Dataset,
	}
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
