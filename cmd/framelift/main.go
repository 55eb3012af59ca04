// Package main provides the framelift CLI entrypoint.
//
// framelift recovers raster screenshots that a device dumps as hex text
// over its serial console.
//
// Usage:
//
//	framelift <command> [options] <capture.log>
//
// Exit codes for extract:
//   - 0: success (including the degraded raw-plus-recipe path)
//   - 1: extraction failure (missing markers, no payload, invalid hex)
//   - 2: usage or input error
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/tessellate-io/framelift/cli/cmd"
	"github.com/tessellate-io/framelift/types"
)

// commit is set via ldflags at build time.
var commit = "unknown"

func main() {
	app := &cli.App{
		Name:           "framelift",
		Usage:          "Recover device screenshots from serial capture logs",
		Version:        fmt.Sprintf("%s (commit: %s)", types.Version, commit),
		ExitErrHandler: exitErrHandler,
		Commands: []*cli.Command{
			cmd.ExtractCommand(),
			cmd.ProbeCommand(),
			cmd.VersionCommand(commit),
		},
	}

	if err := app.Run(os.Args); err != nil {
		// ExitErrHandler already handled cli.ExitCoder errors. This branch
		// handles unexpected errors that weren't wrapped.
		os.Exit(1)
	}
}

// exitErrHandler preserves exit codes from cli.Exit(), including wrapped
// errors.
func exitErrHandler(_ *cli.Context, err error) {
	if err == nil {
		return
	}

	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		code := exitCoder.ExitCode()
		msg := exitCoder.Error()

		// cli.Exit("", N).Error() returns "exit status N"; skip those.
		if msg != "" && msg != fmt.Sprintf("exit status %d", code) {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
