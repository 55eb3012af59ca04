// Package emit turns decoded frames into image files, or into a raw file
// plus a manual conversion recipe when no encoder can serve.
package emit

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"

	"github.com/tessellate-io/framelift/types"
)

// ErrEncoderUnavailable indicates no encoder is registered for the
// requested container. Non-fatal: the emitter converts it into the
// raw-file-plus-recipe fallback instead of failing the operation.
var ErrEncoderUnavailable = errors.New("image encoder unavailable")

// Encoder writes an ImageFrame into one container format.
type Encoder interface {
	// Encode writes the frame to w.
	Encode(w io.Writer, frame *types.ImageFrame) error
	// Ext is the filename extension, without the dot.
	Ext() string
}

// encoders is the container registry. PNG is the portable default; BMP is
// offered for tooling that expects the device's own export format.
var encoders = map[string]Encoder{
	"png": pngEncoder{},
	"bmp": bmpEncoder{},
}

// EncoderFor returns the encoder registered for container, or
// ErrEncoderUnavailable (wrapped) if there is none. "raw" is a valid
// container with no encoder: callers get the fallback path on purpose.
func EncoderFor(container string) (Encoder, error) {
	enc, ok := encoders[container]
	if !ok {
		return nil, fmt.Errorf("container %q: %w", container, ErrEncoderUnavailable)
	}
	return enc, nil
}

type pngEncoder struct{}

func (pngEncoder) Encode(w io.Writer, frame *types.ImageFrame) error {
	return png.Encode(w, rasterize(frame))
}

func (pngEncoder) Ext() string { return "png" }

type bmpEncoder struct{}

func (bmpEncoder) Encode(w io.Writer, frame *types.ImageFrame) error {
	return bmp.Encode(w, rasterize(frame))
}

func (bmpEncoder) Ext() string { return "bmp" }

// rasterize lays the flat pixel sequence out row-major into an RGBA image.
// A short frame fills only the pixels it has, leaving the remainder black;
// extra pixels beyond width*height are ignored.
func rasterize(frame *types.ImageFrame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))

	n := len(frame.Pixels)
	if limit := frame.Width * frame.Height; n > limit {
		n = limit
	}
	for i := 0; i < n; i++ {
		p := frame.Pixels[i]
		img.SetRGBA(i%frame.Width, i/frame.Width, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xFF})
	}
	return img
}
