// Package config loads the focalpick configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable settings. Zero values are filled in by Load.
type Config struct {
	Theme        string `yaml:"theme"`         // "dark" or "light"
	ExportWidth  int    `yaml:"export_width"`  // crop target width
	ExportHeight int    `yaml:"export_height"` // crop target height
	ExportDir    string `yaml:"export_dir"`    // bundle output, relative to the media dir
	Watch        bool   `yaml:"watch"`         // reload when media files change
	HistoryDB    string `yaml:"history_db"`    // sqlite path; empty for the default
	HistoryKeep  int    `yaml:"history_keep"`  // records kept per media path
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme:        "dark",
		ExportWidth:  1200,
		ExportHeight: 630,
		ExportDir:    "focalpick-export",
		Watch:        true,
		HistoryKeep:  50,
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(base, "focalpick", "config.yaml"), nil
}

// Load reads the config at path, layering it over the defaults. A missing
// file yields the defaults with no error; a malformed one is an error, not
// silently ignored, since the user clearly meant to configure something.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.normalized(), nil
}

// Save writes the config to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// normalized replaces nonsensical values with defaults.
func (c Config) normalized() Config {
	def := Default()
	if c.Theme != "dark" && c.Theme != "light" {
		c.Theme = def.Theme
	}
	if c.ExportWidth <= 0 {
		c.ExportWidth = def.ExportWidth
	}
	if c.ExportHeight <= 0 {
		c.ExportHeight = def.ExportHeight
	}
	if c.ExportDir == "" {
		c.ExportDir = def.ExportDir
	}
	if c.HistoryKeep <= 0 {
		c.HistoryKeep = def.HistoryKeep
	}
	return c
}
