// Package config loads the settings of the otd command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
)

// FileName is looked up in the working directory when no path is given.
const FileName = "otd.yaml"

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config stores the defaults applied to every command.
type Config struct {
	// Input documents
	Schematic string `yaml:"schematic"`
	Board     string `yaml:"board"`

	Output OutputConfig `yaml:"output"`

	Diff  bool   `yaml:"diff"`  // Show a diff after edits (default: false)
	Color string `yaml:"color"` // auto, always or never (default: auto)
}

// OutputConfig names where edited documents are written.
type OutputConfig struct {
	Schematic string `yaml:"schematic"`
	Board     string `yaml:"board"`
	Suffix    string `yaml:"suffix"` // Inserted before the extension when no path is set
}

// DefaultConfig returns a Config with the defaults used without a file.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Suffix: ".edited",
		},
		Diff:  false,
		Color: ColorAuto,
	}
}

// Validate checks the configuration and fills in empty defaults.
func (c *Config) Validate() error {
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	switch c.Color {
	case "":
		c.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}

	if c.Output.Suffix == "" && (c.Output.Schematic == "" || c.Output.Board == "") {
		c.Output.Suffix = ".edited"
	}
	if c.Schematic != "" && c.Schematic == c.Output.Schematic {
		return fmt.Errorf("output schematic would overwrite the input %s", c.Schematic)
	}
	if c.Board != "" && c.Board == c.Output.Board {
		return fmt.Errorf("output board would overwrite the input %s", c.Board)
	}
	return nil
}

// userConfigPath returns the per-user config file path
func userConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "opentraceascii", "config.yaml"), nil
}

// Find returns the config file to load: ./otd.yaml, then the per-user file.
// An empty path means neither exists.
func Find() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	if p, err := userConfigPath(); err == nil {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Load reads a config file over the defaults. An empty path searches with
// Find; a missing file yields the defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = Find()
	}
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// OutputPath returns where an edited copy of input is written: the explicit
// path when set, otherwise input with the suffix before its extension.
func (c *Config) OutputPath(input, explicit string) string {
	if explicit != "" {
		return explicit
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + c.Output.Suffix + ext
}

// UseColor resolves the color mode for the given output file.
func (c *Config) UseColor(f *os.File) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
