// Package config loads game configuration from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/officecrawl/internal/logger"
)

// Mode selects the movement model for a session.
type Mode string

const (
	// ModeGrid derives rooms from a terrain grid by flood fill.
	ModeGrid Mode = "grid"
	// ModeRooms uses hand-placed named rooms with explicit exits.
	ModeRooms Mode = "rooms"
)

// Config holds game configuration options.
type Config struct {
	// Mode picks grid regions or named rooms.
	Mode Mode `yaml:"mode"`

	// MapFile is an optional YAML or JSON floor plan. Empty means the embedded office map.
	MapFile string `yaml:"map_file"`

	// Start is the starting room: a region number in grid mode, a room ID in rooms mode.
	// Empty means the default start.
	Start string `yaml:"start"`

	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   logger.Config   `yaml:"logging"`
}

// TelemetryConfig controls OpenTelemetry tracing.
type TelemetryConfig struct {
	// Enabled turns on the OTLP exporter. Endpoint and headers come from the
	// standard OTEL_EXPORTER_OTLP_* environment variables.
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Mode:    ModeGrid,
		Logging: logger.DefaultConfig(),
	}
}

// Load reads configuration from path on top of the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyEnv() {
	if mode := os.Getenv("OFFICECRAWL_MODE"); mode != "" {
		c.Mode = Mode(mode)
	}
	if path := os.Getenv("OFFICECRAWL_MAP"); path != "" {
		c.MapFile = path
	}
	if start := os.Getenv("OFFICECRAWL_START"); start != "" {
		c.Start = start
	}
	if v := os.Getenv("OFFICECRAWL_TELEMETRY"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Telemetry.Enabled = enabled
		}
	}
	c.Logging.ApplyEnv()
}

// Validate checks option values.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeGrid, ModeRooms:
	default:
		return fmt.Errorf("unknown mode %q (want %q or %q)", c.Mode, ModeGrid, ModeRooms)
	}
	if c.Mode == ModeRooms && c.MapFile != "" {
		return fmt.Errorf("map_file is only used in %q mode", ModeGrid)
	}
	return nil
}
