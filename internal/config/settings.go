package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file read when --config is not given.
const DefaultPath = ".check-skip-env.yml"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings holds persistent CLI defaults loaded from a config file.
type Settings struct {
	Format  string   `yaml:"format"`            // text, json or sarif
	Output  string   `yaml:"output,omitempty"`  // report file; empty = stdout/stderr
	Color   string   `yaml:"color,omitempty"`   // auto, always or never
	Exclude []string `yaml:"exclude,omitempty"` // glob patterns of files never checked

	// Delay between the last file event and a rescan in --watch mode
	WatchDebounce time.Duration `yaml:"watch_debounce,omitempty"`
}

// LoadSettings reads a YAML config file into Settings.
// If the file does not exist, it returns zero-value Settings and nil error.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return &s, nil
}

// Validate checks enumerated fields. Empty values mean "use the default".
func (s *Settings) Validate() error {
	switch s.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q (use auto, always or never)", s.Color)
	}
	for _, p := range s.Exclude {
		if _, err := filepath.Match(p, ""); err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
	}
	if s.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must not be negative, got %v", s.WatchDebounce)
	}
	return nil
}
