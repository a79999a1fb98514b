// Package config loads CLI defaults from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the cubie CLI configuration. All fields are optional; a
// missing config file yields the defaults.
type Config struct {
	Scramble ScrambleConfig `yaml:"scramble"`
	Database DatabaseConfig `yaml:"database"`
}

// ScrambleConfig contains scramble defaults.
type ScrambleConfig struct {
	Length int `yaml:"length"`
}

// DatabaseConfig contains the scramble history database settings.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Scramble: ScrambleConfig{Length: 25},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubie", "config.yaml"), nil
}

// Load reads the config file at path. A missing file is not an error and
// yields the defaults; a malformed file is reported.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Scramble.Length < 0 {
		return fmt.Errorf("config: scramble.length must not be negative, got %d", c.Scramble.Length)
	}
	if c.Scramble.Length == 0 {
		c.Scramble.Length = 25
	}
	return nil
}
