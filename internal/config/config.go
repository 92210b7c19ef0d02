// Package config loads gridctl settings from the user's config directory.
//
// The file is TOML by default (config.toml); a path ending in .yaml or .yml
// is read as YAML instead. A missing file yields the defaults, and any
// field left out of the file keeps its default value.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/briancoyner/interactive-grid/pkg/errors"
	"github.com/briancoyner/interactive-grid/pkg/grid"
	"github.com/briancoyner/interactive-grid/pkg/layout"
)

const (
	appName  = "interactive-grid"
	fileName = "config.toml"

	// EnvPath overrides the config file location.
	EnvPath = "INTERACTIVE_GRID_CONFIG"
)

// Config is the full settings file.
type Config struct {
	Layout layout.Options `toml:"layout" yaml:"layout"`
	Play   Play           `toml:"play" yaml:"play"`
	Cache  Cache          `toml:"cache" yaml:"cache"`
}

// Play configures the interactive grid.
type Play struct {
	Preset string `toml:"preset" yaml:"preset"`
	Seed   uint64 `toml:"seed" yaml:"seed"`
}

// Cache configures the render artifact cache.
type Cache struct {
	Disabled bool     `toml:"disabled" yaml:"disabled"`
	TTL      Duration `toml:"ttl" yaml:"ttl"`
}

// Duration is a time.Duration written as "720h" in config files.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Layout: layout.DefaultOptions(),
		Play:   Play{Preset: grid.PresetMix, Seed: 42},
		Cache:  Cache{TTL: Duration{7 * 24 * time.Hour}},
	}
}

// Path returns the config file location: $INTERACTIVE_GRID_CONFIG if set,
// then $XDG_CONFIG_HOME/interactive-grid/config.toml, then
// ~/.config/interactive-grid/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config at path, or at Path() when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}

	cfg := Default()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		_, err = toml.Decode(string(data), cfg)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "config %s", path)
	}
	return cfg, nil
}

// Validate rejects values no command can use.
func (c *Config) Validate() error {
	if c.Layout.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "layout.width must be positive, got %v", c.Layout.Width)
	}
	if c.Layout.Spacing < 0 || c.Layout.Inset < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "layout.spacing and layout.inset must not be negative")
	}
	if _, err := grid.Preset(c.Play.Preset, c.Play.Seed); err != nil {
		return err
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache.ttl must not be negative")
	}
	return nil
}

// Save writes the config to path in the format its extension selects.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := c.Encode(isYAML(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Encode renders the config as TOML, or YAML when asYAML is set.
func (c *Config) Encode(asYAML bool) ([]byte, error) {
	if asYAML {
		return yaml.Marshal(c)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
