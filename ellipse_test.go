package lettermark

import (
	"bytes"
	"image/color"
	"testing"
)

func TestFillCircle(t *testing.T) {
	c := NewCanvas(64, 64)
	c.Fill(Black)
	c.FillCircle(32, 32, 16, White)

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.NRGBA{R: 0, G: 0, B: 0, A: 255}

	inside := []struct{ x, y int }{
		{32, 32}, {24, 32}, {40, 32}, {32, 24}, {32, 40},
	}
	for _, p := range inside {
		if got := c.At(p.x, p.y); got != white {
			t.Errorf("At(%d, %d) = %v, want white", p.x, p.y, got)
		}
	}

	outside := []struct{ x, y int }{
		{0, 0}, {63, 63}, {32, 12}, {12, 32}, {52, 32},
	}
	for _, p := range outside {
		if got := c.At(p.x, p.y); got != black {
			t.Errorf("At(%d, %d) = %v, want black", p.x, p.y, got)
		}
	}
}

func TestFillEllipse_BoundingBox(t *testing.T) {
	// The icon geometry from the 192px lettermark: disc in [64,64]-[128,128].
	c := NewCanvas(192, 192)
	c.Fill(Hex("#6b21a8"))
	c.FillEllipse(64, 64, 128, 128, White)

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	if got := c.At(96, 96); got != white {
		t.Errorf("disc center = %v, want white", got)
	}

	brand := color.NRGBA{R: 107, G: 33, B: 168, A: 255}
	corners := []struct{ x, y int }{
		{0, 0}, {191, 0}, {0, 191}, {191, 191},
		// Bounding box corners lie outside the inscribed ellipse.
		{65, 65}, {127, 65}, {65, 127}, {127, 127},
	}
	for _, p := range corners {
		if got := c.At(p.x, p.y); got != brand {
			t.Errorf("At(%d, %d) = %v, want background", p.x, p.y, got)
		}
	}
}

func TestFillEllipse_Antialiased(t *testing.T) {
	c := NewCanvas(64, 64)
	c.Fill(Black)
	c.FillCircle(32, 32, 16, White)

	// Walk the horizontal diameter and require a gray transition pixel on
	// the way in: hard-edged circles jump straight from 0 to 255.
	sawPartial := false
	for x := 8; x <= 32; x++ {
		p := c.Pixel(x, 32)
		if p.R > 0.05 && p.R < 0.95 {
			sawPartial = true
			break
		}
	}
	if !sawPartial {
		t.Error("no partial-coverage pixel found along the circle edge")
	}
}

func TestFillEllipse_Degenerate(t *testing.T) {
	c := NewCanvas(32, 32)
	c.Fill(Black)

	original := make([]uint8, len(c.pix))
	copy(original, c.pix)

	c.FillEllipse(10, 10, 10, 20, White) // zero width
	c.FillEllipse(10, 10, 20, 10, White) // zero height
	c.FillEllipse(20, 20, 10, 10, White) // inverted box

	if !bytes.Equal(c.pix, original) {
		t.Error("degenerate ellipse modified the canvas")
	}
}

func TestFillEllipse_ClipsToCanvas(t *testing.T) {
	c := NewCanvas(32, 32)
	c.Fill(Black)
	// Disc partially off-canvas must not panic and must paint the
	// on-canvas part.
	c.FillCircle(0, 0, 10, White)

	if got := c.At(2, 2); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("At(2, 2) = %v, want white", got)
	}
}
