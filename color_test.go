package lettermark

import (
	"image/color"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want color.NRGBA
	}{
		{
			name: "brand purple with hash",
			hex:  "#6b21a8",
			want: color.NRGBA{R: 107, G: 33, B: 168, A: 255},
		},
		{
			name: "brand purple without hash",
			hex:  "6b21a8",
			want: color.NRGBA{R: 107, G: 33, B: 168, A: 255},
		},
		{
			name: "uppercase digits",
			hex:  "#6B21A8",
			want: color.NRGBA{R: 107, G: 33, B: 168, A: 255},
		},
		{
			name: "short form white",
			hex:  "fff",
			want: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		},
		{
			name: "eight digits with alpha",
			hex:  "10203040",
			want: color.NRGBA{R: 16, G: 32, B: 48, A: 64},
		},
		{
			name: "malformed length yields black",
			hex:  "#12345",
			want: color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		},
		{
			name: "empty yields black",
			hex:  "",
			want: color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex).Color()
			if got != tt.want {
				t.Errorf("Hex(%q).Color() = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestRGBA_ColorRoundtrip(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
	}{
		{"white", White},
		{"black", Black},
		{"brand purple", Hex("#6b21a8")},
		{"half alpha", RGBA{R: 1, G: 0.5, B: 0, A: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromColor(tt.c.Color())
			// Quantization through 8-bit channels loses at most 1/255
			// per component.
			const tol = 1.0 / 255
			if absDiff(got.R, tt.c.R) > tol || absDiff(got.G, tt.c.G) > tol ||
				absDiff(got.B, tt.c.B) > tol || absDiff(got.A, tt.c.A) > tol {
				t.Errorf("FromColor(Color()) = %+v, want %+v", got, tt.c)
			}
		})
	}
}

func TestFromColor_Transparent(t *testing.T) {
	got := FromColor(color.NRGBA{})
	if got != Transparent {
		t.Errorf("FromColor(transparent) = %+v, want %+v", got, Transparent)
	}
}

func TestClamp255(t *testing.T) {
	if got := clamp255(-10); got != 0 {
		t.Errorf("clamp255(-10) = %v, want 0", got)
	}
	if got := clamp255(300); got != 255 {
		t.Errorf("clamp255(300) = %v, want 255", got)
	}
	if got := clamp255(128); got != 128 {
		t.Errorf("clamp255(128) = %v, want 128", got)
	}
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
