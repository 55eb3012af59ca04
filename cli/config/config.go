// Package config handles YAML config file loading for the framelift CLI.
package config

import (
	"fmt"

	"github.com/tessellate-io/framelift/capture"
	"github.com/tessellate-io/framelift/types"
)

// Config represents a framelift.yaml configuration file.
// All values are optional and act as defaults for extract/probe flags.
// CLI flags always override config values; metadata tokens embedded in the
// capture always override both.
type Config struct {
	// OutDir is where artifacts are written. Defaults to ".".
	OutDir string `yaml:"out_dir"`
	// Container is the output container: "png", "bmp", or "raw".
	Container string `yaml:"container"`
	// KeepRaw retains the intermediate raw byte file after a successful
	// image encode.
	KeepRaw bool `yaml:"keep_raw"`
	// LogLevel is the zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Display sets the fallback geometry for captures that carry no
	// WIDTH:/HEIGHT: tokens. Override here when targeting a device other
	// than the 240x320 default.
	Display DisplayConfig `yaml:"display"`
	// Markers overrides the sentinel strings for firmware that prints
	// different boundaries.
	Markers MarkerConfig `yaml:"markers"`
}

// DisplayConfig is the fallback frame geometry.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MarkerConfig holds the payload boundary sentinels.
type MarkerConfig struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutDir:    ".",
		Container: "png",
		LogLevel:  "info",
		Display: DisplayConfig{
			Width:  types.DefaultWidth,
			Height: types.DefaultHeight,
		},
		Markers: MarkerConfig{
			Start: capture.StartMarker,
			End:   capture.EndMarker,
		},
	}
}

// Validate checks invariants that hold regardless of source.
func (c *Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display geometry must be positive, got %dx%d",
			c.Display.Width, c.Display.Height)
	}
	if c.Markers.Start == "" || c.Markers.End == "" {
		return fmt.Errorf("markers must be non-empty")
	}
	switch c.Container {
	case "png", "bmp", "raw":
		return nil
	default:
		return fmt.Errorf("unknown container %q (must be png, bmp, or raw)", c.Container)
	}
}
