// Package types defines core domain types for the framelift pipeline.
package types

// Default frame geometry.
// These match the native resolution of the target device display and are
// used when the capture carries no WIDTH:/HEIGHT: tokens. Callers targeting
// a different device override them via config, not by editing this package.
const (
	DefaultWidth  = 240
	DefaultHeight = 320
)

// FormatRGB565 is the only pixel format the converter understands:
// 16-bit packed RGB, 5 bits red / 6 bits green / 5 bits blue, transmitted
// big-endian per sample.
const FormatRGB565 = "RGB565"

// FrameMeta describes one embedded frame as declared by the capture.
// Each field is sourced independently; absence of one token never blocks
// extraction of the others.
type FrameMeta struct {
	// Format is the declared pixel format name, or "" if the capture
	// carried no FORMAT: token.
	Format string `json:"format"`
	// Width is the frame width in pixels. Always > 0.
	Width int `json:"width"`
	// Height is the frame height in pixels. Always > 0.
	Height int `json:"height"`
	// Declared reports which of width/height came from capture tokens
	// rather than defaults.
	DeclaredWidth  bool `json:"declared_width"`
	DeclaredHeight bool `json:"declared_height"`
}

// Pixel is one 8-bit-per-channel RGB triple.
type Pixel struct {
	R uint8
	G uint8
	B uint8
}

// ImageFrame is a decoded frame ready for encoding.
// Pixels are row-major, top-left to bottom-right. The pixel count may be
// short of Width*Height for truncated captures; consumers must not read
// past the available pixels.
type ImageFrame struct {
	Width  int
	Height int
	Pixels []Pixel
}

// ExpectedPixels returns the pixel count implied by the frame geometry.
func (f *ImageFrame) ExpectedPixels() int {
	return f.Width * f.Height
}

// SizeMismatch reports whether the decoded pixel count differs from the
// geometry. A mismatch is a warning, never an error: partial captures are
// an expected failure mode of the serial transport.
func (f *ImageFrame) SizeMismatch() bool {
	return len(f.Pixels) != f.ExpectedPixels()
}
