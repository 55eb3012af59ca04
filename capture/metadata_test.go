package capture

import (
	"testing"

	"github.com/tessellate-io/framelift/types"
)

func TestExtractMeta(t *testing.T) {
	tests := []struct {
		name string
		span string
		want types.FrameMeta
	}{
		{
			name: "all tokens present",
			span: "FORMAT:RGB565\nWIDTH:240\nHEIGHT:320\nDATA:\n",
			want: types.FrameMeta{
				Format: "RGB565", Width: 240, Height: 320,
				DeclaredWidth: true, DeclaredHeight: true,
			},
		},
		{
			name: "no tokens falls back to defaults",
			span: "just noise\ndeadbeef\n",
			want: types.FrameMeta{Width: 240, Height: 320},
		},
		{
			name: "tokens in any order and position",
			span: "HEIGHT:64 some log text WIDTH:128\nlater FORMAT:RGB565",
			want: types.FrameMeta{
				Format: "RGB565", Width: 128, Height: 64,
				DeclaredWidth: true, DeclaredHeight: true,
			},
		},
		{
			name: "width token alone",
			span: "WIDTH:480\n",
			want: types.FrameMeta{Width: 480, Height: 320, DeclaredWidth: true},
		},
		{
			name: "first match of each token wins",
			span: "WIDTH:100\nWIDTH:999\n",
			want: types.FrameMeta{Width: 100, Height: 320, DeclaredWidth: true},
		},
		{
			name: "zero width treated as absent",
			span: "WIDTH:0\nHEIGHT:320\n",
			want: types.FrameMeta{Width: 240, Height: 320, DeclaredHeight: true},
		},
		{
			name: "overflowing width treated as absent",
			span: "WIDTH:99999999999999999999999999\n",
			want: types.FrameMeta{Width: 240, Height: 320},
		},
		{
			name: "lowercase key is not a token",
			span: "width:128\n",
			want: types.FrameMeta{Width: 240, Height: 320},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractMeta(tt.span, types.DefaultWidth, types.DefaultHeight)
			if got != tt.want {
				t.Errorf("ExtractMeta() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExtractMetaCustomDefaults(t *testing.T) {
	got := ExtractMeta("no tokens here", 128, 160)
	if got.Width != 128 || got.Height != 160 {
		t.Errorf("ExtractMeta() = %dx%d, want 128x160", got.Width, got.Height)
	}
	if got.DeclaredWidth || got.DeclaredHeight {
		t.Errorf("defaults must not be marked declared: %+v", got)
	}
}
