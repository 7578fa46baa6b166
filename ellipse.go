package lettermark

import (
	"image"

	"golang.org/x/image/vector"
)

// bezierCircleKappa is the control-point distance that makes four cubic
// Bézier arcs approximate a circle: 4*(sqrt(2)-1)/3.
const bezierCircleKappa = 0.5522847498307936

// FillEllipse draws an antialiased solid ellipse inscribed in the
// bounding box (x0, y0)-(x1, y1), composited over the existing pixels.
// A degenerate box (zero or negative extent) draws nothing.
func (c *Canvas) FillEllipse(x0, y0, x1, y1 float64, col RGBA) {
	if x1 <= x0 || y1 <= y0 {
		return
	}

	cx := (x0 + x1) / 2
	cy := (y0 + y1) / 2
	rx := (x1 - x0) / 2
	ry := (y1 - y0) / 2

	// Four cubic arcs, one per quadrant, starting at the rightmost point
	// and winding clockwise in raster coordinates.
	kx := rx * bezierCircleKappa
	ky := ry * bezierCircleKappa

	var z vector.Rasterizer
	z.Reset(c.width, c.height)
	z.MoveTo(float32(cx+rx), float32(cy))
	z.CubeTo(
		float32(cx+rx), float32(cy+ky),
		float32(cx+kx), float32(cy+ry),
		float32(cx), float32(cy+ry),
	)
	z.CubeTo(
		float32(cx-kx), float32(cy+ry),
		float32(cx-rx), float32(cy+ky),
		float32(cx-rx), float32(cy),
	)
	z.CubeTo(
		float32(cx-rx), float32(cy-ky),
		float32(cx-kx), float32(cy-ry),
		float32(cx), float32(cy-ry),
	)
	z.CubeTo(
		float32(cx+kx), float32(cy-ry),
		float32(cx+rx), float32(cy-ky),
		float32(cx+rx), float32(cy),
	)
	z.ClosePath()

	z.Draw(c.Image(), c.Bounds(), image.NewUniform(col.Color()), image.Point{})
}

// FillCircle draws an antialiased solid circle centered at (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r float64, col RGBA) {
	c.FillEllipse(cx-r, cy-r, cx+r, cy+r, col)
}
