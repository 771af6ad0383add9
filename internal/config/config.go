// SPDX-License-Identifier: EPL-2.0

// Package config loads the namhost command configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"

	"github.com/ik5/namhost/session"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything the CLI can read from a file. Command line flags
// override individual fields after loading.
type Config struct {
	// Model is the path of the .nam file to load.
	Model string `yaml:"model"`

	// MaxBufferSize is the initial watermark of the session.
	MaxBufferSize int `yaml:"max_buffer_size"`

	// BlockSize is the largest block rendered at once.
	BlockSize int `yaml:"block_size"`

	PrewarmOnGrowth bool `yaml:"prewarm_on_growth"`

	// OutputBitDepth of rendered WAV files: 16, 24 or 32.
	OutputBitDepth int `yaml:"output_bit_depth"`

	Log Log `yaml:"log"`

	// MetricsAddr, when set, serves Prometheus metrics on this address.
	MetricsAddr string `yaml:"metrics_addr"`
}

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level"` // debug, info, warn, error
	Pretty bool   `yaml:"pretty"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		MaxBufferSize:  session.DefaultMaximumBufferSize,
		BlockSize:      session.DefaultMaximumBufferSize,
		OutputBitDepth: 24,
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.DisallowUnknownField()); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if c.MaxBufferSize < 1 {
		errs = append(errs, fmt.Errorf("max_buffer_size must be positive, got %d", c.MaxBufferSize))
	}
	if c.BlockSize < 1 {
		errs = append(errs, fmt.Errorf("block_size must be positive, got %d", c.BlockSize))
	}

	switch c.OutputBitDepth {
	case 16, 24, 32:
	default:
		errs = append(errs, fmt.Errorf("output_bit_depth must be 16, 24 or 32, got %d", c.OutputBitDepth))
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
