package emit

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tessellate-io/framelift/types"
)

// Emitter persists one decoded frame per Emit call.
type Emitter struct {
	writer  FileWriter
	outDir  string
	keepRaw bool

	// baseName produces the artifact name stem. Overridable in tests.
	baseName func() string
}

// NewEmitter creates an emitter writing under outDir via writer. When
// keepRaw is set the intermediate raw byte file survives a successful
// image encode instead of being cleaned up.
func NewEmitter(writer FileWriter, outDir string, keepRaw bool) *Emitter {
	return &Emitter{
		writer:   writer,
		outDir:   outDir,
		keepRaw:  keepRaw,
		baseName: defaultBaseName,
	}
}

// defaultBaseName stamps artifacts with wall-clock time for the operator
// plus a short uuid so simultaneous invocations within the same second
// cannot collide.
func defaultBaseName() string {
	ts := time.Now().UTC().Format("20060102_150405")
	return fmt.Sprintf("screenshot_%s_%s", ts, uuid.NewString()[:8])
}

// Emit writes frame as an image in the requested container format.
//
// The raw decoded bytes are persisted first, mirroring the capture-side
// flow: if the encoder then succeeds the raw file is cleaned up (unless
// keepRaw), and if the encoder is unavailable or fails the raw file plus
// a manual conversion recipe becomes the result. Encoder absence is never
// an overall failure; only storage errors are.
//
// A pixel count that disagrees with the frame geometry is surfaced as a
// warning on the outcome, never as an error: partial captures are an
// expected occurrence and a best-effort artifact beats nothing.
func (e *Emitter) Emit(frame *types.ImageFrame, raw []byte, container string) (*Outcome, error) {
	var warnings []string
	if frame.SizeMismatch() {
		warnings = append(warnings, fmt.Sprintf(
			"decoded %d pixels but geometry is %dx%d (%d expected)",
			len(frame.Pixels), frame.Width, frame.Height, frame.ExpectedPixels()))
	}

	base := e.baseName()
	rawPath := filepath.Join(e.outDir, base+".raw")
	if err := e.writer.WriteFile(rawPath, raw); err != nil {
		return nil, err
	}

	encoded, ext, encErr := e.encode(frame, container)
	if encErr != nil {
		if !errors.Is(encErr, ErrEncoderUnavailable) {
			warnings = append(warnings, fmt.Sprintf("encode failed: %v", encErr))
		}
		return &Outcome{
			Kind:     OutcomeRaw,
			Path:     rawPath,
			Recipe:   Recipe(rawPath, frame.Width, frame.Height),
			Warnings: warnings,
		}, nil
	}

	imgPath := filepath.Join(e.outDir, base+"."+ext)
	if err := e.writer.WriteFile(imgPath, encoded); err != nil {
		return nil, err
	}

	out := &Outcome{Kind: OutcomeImage, Path: imgPath}
	if e.keepRaw {
		out.RawPath = rawPath
	} else if err := e.writer.Remove(rawPath); err != nil {
		warnings = append(warnings, fmt.Sprintf("could not clean up raw file %s: %v", rawPath, err))
		out.RawPath = rawPath
	}
	out.Warnings = warnings
	return out, nil
}

// encode renders frame into the requested container in memory.
func (e *Emitter) encode(frame *types.ImageFrame, container string) ([]byte, string, error) {
	enc, err := EncoderFor(container)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := enc.Encode(&buf, frame); err != nil {
		return nil, "", fmt.Errorf("%s encode: %w", container, err)
	}
	return buf.Bytes(), enc.Ext(), nil
}

// Recipe renders the manual conversion instructions reported alongside a
// raw fallback artifact, so an operator can finish the conversion with an
// external tool.
func Recipe(rawPath string, width, height int) string {
	png := strings.TrimSuffix(rawPath, ".raw") + ".png"
	var b strings.Builder
	fmt.Fprintf(&b, "raw layout: 16-bit big-endian packed RGB565 (5 bits red, 6 green, 5 blue)\n")
	fmt.Fprintf(&b, "width: %d\n", width)
	fmt.Fprintf(&b, "height: %d\n", height)
	fmt.Fprintf(&b, "convert manually with ImageMagick:\n")
	fmt.Fprintf(&b, "  convert -depth 5 -size %dx%d RGB565:%s %s\n", width, height, rawPath, png)
	return b.String()
}
