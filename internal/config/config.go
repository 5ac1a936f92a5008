// Package config loads the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/onetake/internal/constants"
)

// Config represents the portal configuration.
type Config struct {
	UI   UIConfig   `yaml:"ui"`
	Auth AuthConfig `yaml:"auth"`
	Data DataConfig `yaml:"data"`
	Log  LogConfig  `yaml:"log"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	Theme     string `yaml:"theme"`      // dark or light (default: dark)
	AltScreen *bool  `yaml:"alt_screen"` // default: true
}

// AuthConfig contains login settings.
type AuthConfig struct {
	// RequireFields rejects blank email or password (default: true)
	RequireFields *bool `yaml:"require_fields"`
}

// DataConfig selects the fixture source.
type DataConfig struct {
	Driver string `yaml:"driver"` // memory or sqlite (default: memory)
}

// LogConfig contains logging settings.
type LogConfig struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"` // default: directory of the config file
}

// LoadConfig loads configuration from a YAML file. A missing file yields
// the defaults.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.setDefaults(path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file exists at path.
func Default(path string) *Config {
	var cfg Config
	cfg.setDefaults(path)
	return &cfg
}

// setDefaults sets default values for missing config fields.
func (c *Config) setDefaults(path string) {
	if c.UI.Theme == "" {
		c.UI.Theme = constants.ThemeModeDark
	}
	if c.UI.AltScreen == nil {
		c.UI.AltScreen = boolPtr(true)
	}
	if c.Auth.RequireFields == nil {
		c.Auth.RequireFields = boolPtr(true)
	}
	if c.Data.Driver == "" {
		c.Data.Driver = constants.DataDriverMemory
	}
	if c.Log.Dir == "" {
		c.Log.Dir = filepath.Dir(path)
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case constants.ThemeModeDark, constants.ThemeModeLight:
	default:
		return fmt.Errorf("ui.theme must be %q or %q, got %q", constants.ThemeModeDark, constants.ThemeModeLight, c.UI.Theme)
	}
	switch c.Data.Driver {
	case constants.DataDriverMemory, constants.DataDriverSQLite:
	default:
		return fmt.Errorf("data.driver must be %q or %q, got %q", constants.DataDriverMemory, constants.DataDriverSQLite, c.Data.Driver)
	}
	return nil
}

// AltScreen reports whether the TUI takes over the whole terminal.
func (c *Config) AltScreen() bool {
	return c.UI.AltScreen == nil || *c.UI.AltScreen
}

// RequireFields reports whether blank credentials are rejected at login.
func (c *Config) RequireFields() bool {
	return c.Auth.RequireFields == nil || *c.Auth.RequireFields
}

func boolPtr(b bool) *bool {
	return &b
}
