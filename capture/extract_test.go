package capture

import (
	"bytes"
	"errors"
	"testing"
)

// sampleCapture mimics real serial console output: boot noise, the marker
// pair, metadata tokens, hex payload, and interleaved log lines.
const sampleCapture = `[BOOT] device starting
[INFO] button pressed
========== SCREENSHOT START ==========
FORMAT:RGB565
WIDTH:2
HEIGHT:2
DATA:
F800F800
[WIFI] reconnecting...
07E0001F
========== SCREENSHOT END ==========
[INFO] done
`

func TestExtract(t *testing.T) {
	frame, err := NewExtractor().Extract(sampleCapture)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if frame.Meta.Format != "RGB565" {
		t.Errorf("format = %q, want RGB565", frame.Meta.Format)
	}
	if frame.Meta.Width != 2 || frame.Meta.Height != 2 {
		t.Errorf("geometry = %dx%d, want 2x2", frame.Meta.Width, frame.Meta.Height)
	}
	if frame.HexLines != 2 {
		t.Errorf("hex lines = %d, want 2", frame.HexLines)
	}

	want := []byte{0xF8, 0x00, 0xF8, 0x00, 0x07, 0xE0, 0x00, 0x1F}
	if !bytes.Equal(frame.Raw, want) {
		t.Errorf("raw = %x, want %x", frame.Raw, want)
	}
}

func TestExtractDefaultsWithoutTokens(t *testing.T) {
	text := StartMarker + "\ndeadbeef\n" + EndMarker
	frame, err := NewExtractor().Extract(text)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if frame.Meta.Width != 240 || frame.Meta.Height != 320 {
		t.Errorf("geometry = %dx%d, want 240x320", frame.Meta.Width, frame.Meta.Height)
	}
	if frame.Meta.Format != "" {
		t.Errorf("format = %q, want unset", frame.Meta.Format)
	}
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{
			name: "missing markers",
			text: "no markers anywhere\n",
			want: ErrMissingMarker,
		},
		{
			name: "markers with no hex lines",
			text: StartMarker + "\nonly noise\n" + EndMarker,
			want: ErrNoPayload,
		},
		{
			name: "invalid hex between markers",
			text: StartMarker + "\ndeadbeef\nabc\n" + EndMarker,
			want: ErrInvalidHex,
		},
	}

	e := NewExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Extract(tt.text)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Extract() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestExtractCustomMarkers(t *testing.T) {
	e := &Extractor{
		StartMarker:   "--- DUMP BEGIN ---",
		EndMarker:     "--- DUMP END ---",
		DefaultWidth:  8,
		DefaultHeight: 8,
	}
	frame, err := e.Extract("--- DUMP BEGIN ---\nffff\n--- DUMP END ---")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !bytes.Equal(frame.Raw, []byte{0xFF, 0xFF}) {
		t.Errorf("raw = %x, want ffff", frame.Raw)
	}
}

func TestExtractAll(t *testing.T) {
	text := sampleCapture +
		"[INFO] second press\n" +
		StartMarker + "\nWIDTH:1\nHEIGHT:1\n0000\n" + EndMarker + "\n"

	frames, truncated, err := NewExtractor().ExtractAll(text)
	if err != nil {
		t.Fatalf("ExtractAll() error = %v", err)
	}
	if truncated != 0 {
		t.Errorf("truncated = %d, want 0", truncated)
	}
	if len(frames) != 2 {
		t.Fatalf("len(frames) = %d, want 2", len(frames))
	}
	if len(frames[0].Raw) != 8 {
		t.Errorf("frame 0 raw = %d bytes, want 8", len(frames[0].Raw))
	}
	if frames[1].Meta.Width != 1 || frames[1].Meta.Height != 1 {
		t.Errorf("frame 1 geometry = %dx%d, want 1x1", frames[1].Meta.Width, frames[1].Meta.Height)
	}
}
