// Package cmd provides CLI commands for the framelift binary.
package cmd

import "github.com/urfave/cli/v2"

// Shared flags.
var (
	// FormatFlag selects output format for read-only commands.
	FormatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: json, table, yaml",
	}

	// ConfigFlag points at a framelift.yaml file.
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to framelift.yaml config file",
	}
)

// ReadOnlyFlags returns the shared flags for read-only commands.
func ReadOnlyFlags() []cli.Flag {
	return []cli.Flag{
		FormatFlag,
		ConfigFlag,
	}
}
