// Package config provides configuration management for depthls.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds user defaults applied when the corresponding flag is not
// given on the command line. Flags always win.
type Config struct {
	// Filter is the default name filter glob.
	Filter string `yaml:"filter"`

	// Color controls entry colorization: auto, always, or never.
	Color string `yaml:"color"`

	// Trace enables the diagnostic trace channel (same as --verbose).
	Trace bool `yaml:"trace"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Filter: "*",
		Color:  "auto",
		Trace:  false,
	}
}

// Load reads configuration from path. A missing file returns the defaults
// without error; a malformed file returns an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always, or never, got %q", c.Color)
	}
	return nil
}
