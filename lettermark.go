package lettermark

import "image"

// Lettermark describes a letter-badge icon: a square canvas filled with
// the background color, a white disc, and a single letter centered on the
// canvas in the background color.
type Lettermark struct {
	// Size is the width and height of the icon in pixels.
	Size int

	// Background is the fill color of the canvas and of the letter.
	Background RGBA

	// Disc is the bounding box of the white disc.
	Disc image.Rectangle

	// Letter is the glyph drawn at the canvas center, typically a single
	// capital letter.
	Letter string

	// Face renders the letter. A nil Face uses the bitmap fallback.
	Face Face
}

// Render draws the lettermark and returns the finished canvas.
// Rendering is deterministic: the same Lettermark yields identical pixel
// content on every call.
func (m Lettermark) Render() *Canvas {
	c := NewCanvas(m.Size, m.Size)
	c.Fill(m.Background)
	c.FillEllipse(
		float64(m.Disc.Min.X), float64(m.Disc.Min.Y),
		float64(m.Disc.Max.X), float64(m.Disc.Max.Y),
		White,
	)

	face := m.Face
	if face == nil {
		face = FallbackFace()
	}
	center := float64(m.Size) / 2
	c.DrawStringAnchored(m.Letter, face, center, center, 0.5, 0.5, m.Background)
	return c
}

// DrawStringAnchored draws s with an anchor point. The anchor fractions
// ax and ay are in the range [0, 1]:
//
//	(0, 0) = top-left
//	(0.5, 0.5) = center
//	(1, 1) = bottom-right
//
// Horizontal placement uses the pen advance; vertical placement uses the
// rendered extents, so (0.5, 0.5) puts the letter's visual middle on
// (x, y) regardless of ascender or descender asymmetry.
func (c *Canvas) DrawStringAnchored(s string, face Face, x, y, ax, ay float64, col RGBA) {
	if s == "" || face == nil {
		return
	}

	w := face.Advance(s)
	_, minY, _, maxY := face.Extents(s)

	originX := x - w*ax
	originY := y - minY - (maxY-minY)*ay

	face.draw(c.Image(), s, originX, originY, col.Color())
}
