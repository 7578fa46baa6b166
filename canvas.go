package lettermark

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Canvas is a fixed-size raster buffer that icons are drawn into.
// Pixels are stored as straight-alpha RGBA, 4 bytes per pixel.
//
// Canvas implements image.Image and draw.Image, so the standard library
// and golang.org/x/image rasterizers can composite into it directly.
type Canvas struct {
	width  int
	height int
	pix    []uint8
}

// NewCanvas creates a canvas with the given dimensions.
// All pixels start fully transparent.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int { return c.height }

// Fill sets every pixel to the given color.
func (c *Canvas) Fill(col RGBA) {
	r := uint8(clamp255(col.R * 255))
	g := uint8(clamp255(col.G * 255))
	b := uint8(clamp255(col.B * 255))
	a := uint8(clamp255(col.A * 255))

	for i := 0; i < len(c.pix); i += 4 {
		c.pix[i+0] = r
		c.pix[i+1] = g
		c.pix[i+2] = b
		c.pix[i+3] = a
	}
}

// SetPixel sets the color of a single pixel.
// Coordinates outside the canvas are ignored.
func (c *Canvas) SetPixel(x, y int, col RGBA) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 4
	c.pix[i+0] = uint8(clamp255(col.R * 255))
	c.pix[i+1] = uint8(clamp255(col.G * 255))
	c.pix[i+2] = uint8(clamp255(col.B * 255))
	c.pix[i+3] = uint8(clamp255(col.A * 255))
}

// Pixel returns the color of a single pixel.
// Coordinates outside the canvas return Transparent.
func (c *Canvas) Pixel(x, y int) RGBA {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Transparent
	}
	i := (y*c.width + x) * 4
	return RGBA{
		R: float64(c.pix[i+0]) / 255,
		G: float64(c.pix[i+1]) / 255,
		B: float64(c.pix[i+2]) / 255,
		A: float64(c.pix[i+3]) / 255,
	}
}

// Image returns the canvas as an *image.NRGBA sharing the same pixel
// storage. Drawing into the returned image mutates the canvas.
func (c *Canvas) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    c.pix,
		Stride: c.width * 4,
		Rect:   image.Rect(0, 0, c.width, c.height),
	}
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.Pixel(x, y).Color()
}

// Set implements the draw.Image interface.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.SetPixel(x, y, FromColor(col))
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// EncodePNG writes the canvas to w in PNG format.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// SavePNG saves the canvas to a PNG file, creating or truncating it.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // output path is caller-provided intentionally
	if err != nil {
		return err
	}

	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
