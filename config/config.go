// Package config loads editor settings from a YAML file and watches it for
// changes so toggles take effect without a restart.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings are the user-adjustable editor options.
type Settings struct {
	// Theme names the frontend color theme.
	Theme string `yaml:"theme" json:"theme"`

	// LineNumbers toggles the gutter.
	LineNumbers bool `yaml:"lineNumbers" json:"lineNumbers"`

	// WordWrap toggles soft wrapping of long lines.
	WordWrap bool `yaml:"wordWrap" json:"wordWrap"`

	// FrameIntervalMS is the recompute coalescing window in milliseconds.
	FrameIntervalMS int `yaml:"frameIntervalMs" json:"frameIntervalMs"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		Theme:           "dark",
		LineNumbers:     true,
		WordWrap:        false,
		FrameIntervalMS: 16,
	}
}

// FrameInterval returns the coalescing window as a duration, falling back to
// the default when the configured value is not positive.
func (s Settings) FrameInterval() time.Duration {
	if s.FrameIntervalMS <= 0 {
		return time.Duration(Default().FrameIntervalMS) * time.Millisecond
	}
	return time.Duration(s.FrameIntervalMS) * time.Millisecond
}

// Load reads settings from path, layered over the defaults. A missing file
// returns the defaults without error; a malformed file is an error.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse settings: %w", err)
	}
	return s, nil
}
