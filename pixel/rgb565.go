// Package pixel converts packed pixel buffers to 8-bit-per-channel RGB.
package pixel

import (
	"encoding/binary"

	"github.com/tessellate-io/framelift/types"
)

// Expand565 expands one RGB565 sample to an 8-bit RGB triple.
//
// The expansion replicates each channel's most significant bits into the
// low bits of the widened channel. Plain left-shifting would leave the low
// bits zero and measurably darken the result; replication is the faithful
// upscaling and its exact outputs are pinned by tests.
func Expand565(val uint16) types.Pixel {
	r5 := uint8(val>>11) & 0x1F
	g6 := uint8(val>>5) & 0x3F
	b5 := uint8(val) & 0x1F

	return types.Pixel{
		R: r5<<3 | r5>>2,
		G: g6<<2 | g6>>4,
		B: b5<<3 | b5>>2,
	}
}

// ConvertRGB565 interprets raw as consecutive big-endian RGB565 samples and
// expands each to one pixel, in sample order. The converter is a flat 1D
// map: width and height are carried through as framing metadata for the
// emitter, and the sample count is not validated against them.
//
// An odd trailing byte contributes no sample and is dropped without error;
// truncated captures are a realistic transport failure and a best-effort
// frame is more useful than nothing.
func ConvertRGB565(raw []byte, width, height int) *types.ImageFrame {
	n := len(raw) / 2
	pixels := make([]types.Pixel, n)
	for i := 0; i < n; i++ {
		val := binary.BigEndian.Uint16(raw[2*i:])
		pixels[i] = Expand565(val)
	}

	return &types.ImageFrame{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}
