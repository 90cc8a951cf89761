// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/airpower-calculator/internal/mastery"
	"gopkg.in/yaml.v3"
)

// Config represents the configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Types    string `json:"types,omitempty" yaml:"types,omitempty"`       // Aircraft types file replacing the standard catalog
	Aircraft string `json:"aircraft,omitempty" yaml:"aircraft,omitempty"` // Aircraft templates file
	Ships    string `json:"ships,omitempty" yaml:"ships,omitempty"`       // Ship templates file

	// Scoring
	Mode         string `json:"mode,omitempty" yaml:"mode,omitempty"`                  // Default mode for loadouts without one
	HighAltitude bool   `json:"high_altitude,omitempty" yaml:"high_altitude,omitempty"` // Apply the high-altitude revision by default

	// Server
	Port               int    `json:"port,omitempty" yaml:"port,omitempty"`                                 // HTTP port for serve
	RateLimitPerMinute int    `json:"rate_limit_per_minute,omitempty" yaml:"rate_limit_per_minute,omitempty"` // POST /mastery requests per client per minute
	JWTSecret          string `json:"jwt_secret,omitempty" yaml:"jwt_secret,omitempty"`                     // Enables bearer auth on POST /mastery

	// Behavior
	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration values.
func Defaults() Config {
	return Config{
		Mode:               string(mastery.Sortie),
		Port:               8080,
		RateLimitPerMinute: 60,
	}
}

// LoadConfig loads configuration from a JSON or YAML file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Mode != "" {
		if _, err := mastery.ParseMode(c.Mode); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	// Validate numeric ranges
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("config error: 'rate_limit_per_minute' must be non-negative")
	}

	// Validate file paths exist (if specified)
	files := []struct {
		name string
		path string
	}{
		{"types", c.Types},
		{"aircraft", c.Aircraft},
		{"ships", c.Ships},
	}
	for _, f := range files {
		if f.path == "" {
			continue
		}
		if _, err := os.Stat(f.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", f.name, f.path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Types == "" {
		result.Types = defaults.Types
	}
	if result.Aircraft == "" {
		result.Aircraft = defaults.Aircraft
	}
	if result.Ships == "" {
		result.Ships = defaults.Ships
	}
	if result.Mode == "" {
		result.Mode = defaults.Mode
	}
	if result.JWTSecret == "" {
		result.JWTSecret = defaults.JWTSecret
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RateLimitPerMinute == 0 {
		result.RateLimitPerMinute = defaults.RateLimitPerMinute
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ParsedMode returns the configured mode, or sortie when none is set.
func (c *Config) ParsedMode() (mastery.Mode, error) {
	if c.Mode == "" {
		return mastery.Sortie, nil
	}
	return mastery.ParseMode(c.Mode)
}
