// SPDX-License-Identifier: MIT

// Package config loads stepviz settings from YAML or JSON files.
//
// Files are parsed into a generic map and decoded with mapstructure, so keys
// are matched case-insensitively and durations may be written as "750ms".
// Unset keys keep their defaults; CLI flags override file values.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepviz/internal/logging"
	"github.com/katalvlaran/stepviz/player"
)

// ErrInvalid is returned when a decoded value fails validation.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved configuration.
type Config struct {
	// Speed is the initial playback speed multiplier.
	Speed float64 `mapstructure:"speed" yaml:"speed"`

	// BaseDelay is the auto-advance interval at speed 1.
	BaseDelay time.Duration `mapstructure:"base_delay" yaml:"base_delay"`

	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// MetricsAddr, when set, serves Prometheus metrics during play.
	MetricsAddr string `mapstructure:"metrics_addr" yaml:"metrics_addr"`

	// Algorithm and Input give the default run for play and generate.
	Algorithm string         `mapstructure:"algorithm" yaml:"algorithm"`
	Input     map[string]any `mapstructure:"input" yaml:"input"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Speed:     player.DefaultSpeed,
		BaseDelay: player.DefaultBaseDelay,
		LogLevel:  "info",
	}
}

// FromFile loads configuration from a file, choosing the format by
// extension: .yaml, .yml or .json.
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return Config{}, fmt.Errorf("unsupported config file extension: %s", ext)
	}
}

// FromYAML parses YAML data into a Config.
func FromYAML(data []byte) (Config, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	return FromMap(m)
}

// FromJSON parses JSON data into a Config.
func FromJSON(data []byte) (Config, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return Config{}, fmt.Errorf("parse json: %w", err)
	}
	return FromMap(m)
}

// FromMap decodes m over the defaults and validates the result.
func FromMap(m map[string]any) (Config, error) {
	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(m); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges. Speed is clamped by the player, so only
// non-positive values are rejected.
func (c Config) Validate() error {
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed %v must be positive", ErrInvalid, c.Speed)
	}
	if c.BaseDelay <= 0 {
		return fmt.Errorf("%w: base_delay %v must be positive", ErrInvalid, c.BaseDelay)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
