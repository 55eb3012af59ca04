package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/tessellate-io/framelift/capture"
	"github.com/tessellate-io/framelift/cli/config"
)

// defaultConfigPath is picked up implicitly when --config is not given.
const defaultConfigPath = "framelift.yaml"

// loadConfig resolves the effective configuration: explicit --config,
// else an implicit framelift.yaml in the working directory, else built-in
// defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(defaultConfigPath); err == nil {
		return config.Load(defaultConfigPath)
	}
	return config.Default(), nil
}

// applyOverrides layers set CLI flags over cfg. Flags always win over
// config values.
func applyOverrides(c *cli.Context, cfg *config.Config) error {
	if c.IsSet("out-dir") {
		cfg.OutDir = c.String("out-dir")
	}
	if c.IsSet("container") {
		cfg.Container = c.String("container")
	}
	if c.IsSet("keep-raw") {
		cfg.KeepRaw = c.Bool("keep-raw")
	}
	if c.IsSet("width") {
		cfg.Display.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Display.Height = c.Int("height")
	}
	return cfg.Validate()
}

// extractorFrom builds the capture extractor for the effective config.
func extractorFrom(cfg *config.Config) *capture.Extractor {
	return &capture.Extractor{
		StartMarker:   cfg.Markers.Start,
		EndMarker:     cfg.Markers.End,
		DefaultWidth:  cfg.Display.Width,
		DefaultHeight: cfg.Display.Height,
	}
}
