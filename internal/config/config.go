// Package config loads toyrobot settings.
//
// Settings come from a YAML file. When no file is named, the default
// location under the XDG config home is tried, and its absence simply
// means defaults. A file named explicitly must exist.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"toyrobot/internal/robot"
)

// Config is the full set of settings.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Log     LogConfig     `yaml:"log"`
	Session SessionConfig `yaml:"session"`
	Console ConsoleConfig `yaml:"console"`
}

// BoardConfig sizes the table.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// File receives log records. Empty means stderr.
	File string `yaml:"file"`
}

// SessionConfig controls stream handling.
type SessionConfig struct {
	// StopOnError stops reading after the first failing line.
	StopOnError bool `yaml:"stop_on_error"`

	// Trace draws the board after each line.
	Trace bool `yaml:"trace"`
}

// ConsoleConfig controls what a person sees.
type ConsoleConfig struct {
	Color  bool   `yaml:"color"`
	Prompt string `yaml:"prompt"`
}

// Default returns the built-in settings: a 5 x 5 board, warnings only, colored output.
func Default() *Config {
	return &Config{
		Board:   BoardConfig{Width: 5, Height: 5},
		Log:     LogConfig{Level: "warn"},
		Console: ConsoleConfig{Color: true, Prompt: "> "},
	}
}

// DefaultPath is where the config file is looked up when none is given.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "toyrobot", "config.yaml")
}

// Loader reads config files.
type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// Load reads path, or the default path when path is empty.
func (l *Loader) Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("no config file, using defaults", zap.String("path", path))
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	l.logger.Debug("loaded config", zap.String("path", path))
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail later.
func (c *Config) Validate() error {
	if _, err := robot.NewBoard(c.Board.Width, c.Board.Height); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
