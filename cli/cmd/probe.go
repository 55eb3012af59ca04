package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/tessellate-io/framelift/capture"
	"github.com/tessellate-io/framelift/cli/reader"
	"github.com/tessellate-io/framelift/cli/render"
	"github.com/tessellate-io/framelift/types"
)

// ProbeCommand returns the probe command. Probe is read-only: it reports
// what extract would find without writing any artifact.
func ProbeCommand() *cli.Command {
	return &cli.Command{
		Name:      "probe",
		Usage:     "Inspect a capture: markers, metadata, payload size (read-only)",
		ArgsUsage: "<capture.log>",
		Flags:     ReadOnlyFlags(),
		Action:    probeAction,
	}
}

func probeAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("exactly one capture file required", exitUsage)
	}
	input := c.Args().First()

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}

	r, err := render.NewRenderer(c)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}

	text, err := reader.ReadCapture(input)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}

	extractor := extractorFrom(cfg)
	report, err := probe(extractor, input, text)
	if err != nil {
		return cli.Exit(err.Error(), exitExtract)
	}
	return r.Render(report)
}

// probe builds a report over every complete frame span. Per-frame payload
// problems are reported in place rather than aborting, since diagnosing a
// bad capture is exactly what probe is for; only missing markers fail.
func probe(e *capture.Extractor, input, text string) (*types.ProbeReport, error) {
	spans, _, err := capture.LocateAll(text, e.StartMarker, e.EndMarker)
	if err != nil {
		return nil, err
	}

	report := &types.ProbeReport{
		Input:      input,
		FrameCount: len(spans),
	}
	for i, span := range spans {
		meta := capture.ExtractMeta(span, e.DefaultWidth, e.DefaultHeight)
		fp := types.FrameProbe{
			Index:         i,
			Format:        meta.Format,
			Width:         meta.Width,
			Height:        meta.Height,
			ExpectedBytes: meta.Width * meta.Height * 2,
		}

		hexText, lines, err := capture.Collect(span)
		if err != nil {
			fp.Error = err.Error()
			report.Frames = append(report.Frames, fp)
			continue
		}
		fp.HexLines = lines

		raw, err := capture.Decode(hexText)
		if err != nil {
			fp.Error = err.Error()
			report.Frames = append(report.Frames, fp)
			continue
		}
		fp.DecodedBytes = len(raw)
		fp.SizeMatch = fp.DecodedBytes == fp.ExpectedBytes
		report.Frames = append(report.Frames, fp)
	}
	return report, nil
}
