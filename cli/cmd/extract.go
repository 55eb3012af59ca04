package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tessellate-io/framelift/capture"
	"github.com/tessellate-io/framelift/cli/reader"
	"github.com/tessellate-io/framelift/emit"
	"github.com/tessellate-io/framelift/log"
	"github.com/tessellate-io/framelift/pixel"
	"github.com/tessellate-io/framelift/types"
)

// Exit codes for extract.
const (
	exitSuccess = 0
	exitExtract = 1
	exitUsage   = 2
)

// ExtractCommand returns the extract command, the only command that
// writes artifacts.
func ExtractCommand() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Recover embedded screenshots from a serial capture log",
		ArgsUsage: "<capture.log>  (use \"-\" for stdin; .gz/.zst accepted)",
		Flags: []cli.Flag{
			ConfigFlag,
			&cli.StringFlag{
				Name:    "out-dir",
				Aliases: []string{"o"},
				Usage:   "Directory for emitted artifacts",
			},
			&cli.StringFlag{
				Name:  "container",
				Usage: "Output container: png, bmp, or raw",
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "Fallback width when the capture has no WIDTH: token",
			},
			&cli.IntFlag{
				Name:  "height",
				Usage: "Fallback height when the capture has no HEIGHT: token",
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Extract every screenshot in the capture, not just the first",
			},
			&cli.BoolFlag{
				Name:  "keep-raw",
				Usage: "Keep the intermediate raw byte file after a successful encode",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "Suppress the per-artifact summary on stdout",
			},
		},
		Action: extractAction,
	}
}

func extractAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("exactly one capture file required", exitUsage)
	}
	input := c.Args().First()

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}
	if err := applyOverrides(c, cfg); err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}

	level := zapcore.InfoLevel
	if c.Bool("verbose") {
		level = zapcore.DebugLevel
	}
	logger := log.New(level).WithCapture(input, uuid.NewString()[:8])

	text, err := reader.ReadCapture(input)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}

	extractor := extractorFrom(cfg)
	frames, truncated, err := collectFrames(extractor, text, c.Bool("all"))
	if err != nil {
		logger.Error("extraction failed", zap.Error(err))
		return cli.Exit(err.Error(), exitExtract)
	}
	if truncated > 0 {
		logger.Warn("capture ends with an unterminated screenshot dump",
			zap.Int("truncated", truncated))
	}

	emitter := emit.NewEmitter(emit.OSWriter{}, cfg.OutDir, cfg.KeepRaw)
	for i, frame := range frames {
		if err := emitFrame(c, logger, emitter, cfg.Container, i, frame); err != nil {
			return cli.Exit(err.Error(), exitExtract)
		}
	}
	return nil
}

// collectFrames extracts one frame, or all of them under --all.
func collectFrames(e *capture.Extractor, text string, all bool) ([]*capture.Frame, int, error) {
	if all {
		return e.ExtractAll(text)
	}
	frame, err := e.Extract(text)
	if err != nil {
		return nil, 0, err
	}
	return []*capture.Frame{frame}, 0, nil
}

// emitFrame converts and persists one extracted frame.
func emitFrame(c *cli.Context, logger *log.Logger, emitter *emit.Emitter, container string, index int, frame *capture.Frame) error {
	meta := frame.Meta
	logger.Debug("frame extracted",
		zap.Int("index", index),
		zap.String("format", meta.Format),
		zap.Int("width", meta.Width),
		zap.Int("height", meta.Height),
		zap.Int("hex_lines", frame.HexLines),
		zap.Int("raw_bytes", len(frame.Raw)))

	if meta.Format != "" && meta.Format != types.FormatRGB565 {
		logger.Warn("capture declares an unsupported pixel format, decoding as RGB565",
			zap.String("format", meta.Format))
	}

	img := pixel.ConvertRGB565(frame.Raw, meta.Width, meta.Height)
	outcome, err := emitter.Emit(img, frame.Raw, container)
	if err != nil {
		return err
	}

	for _, w := range outcome.Warnings {
		logger.Warn(w, zap.Int("index", index))
	}

	switch outcome.Kind {
	case emit.OutcomeImage:
		logger.Info("screenshot written", zap.String("path", outcome.Path))
		if !c.Bool("quiet") {
			fmt.Fprintf(c.App.Writer, "wrote %s\n", outcome.Path)
		}
	case emit.OutcomeRaw:
		logger.Info("raw fallback written", zap.String("path", outcome.Path))
		if !c.Bool("quiet") {
			fmt.Fprintf(c.App.Writer, "wrote %s\n%s", outcome.Path, outcome.Recipe)
		}
	}
	return nil
}
