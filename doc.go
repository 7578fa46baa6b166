// Package lettermark renders letter-badge icons: a solid background, a
// filled disc, and a single centered letter.
//
// # Overview
//
// The package is a small software rasterization layer for build-time asset
// generation. It draws into an in-memory Canvas and serializes the result
// as PNG. Shapes are rasterized with golang.org/x/image/vector, scalable
// text with golang.org/x/image/font/opentype, and label advances are
// measured with go-text/typesetting's HarfBuzz shaper.
//
// # Quick Start
//
//	import "github.com/teabrew/lettermark"
//
//	mark := lettermark.Lettermark{
//		Size:       192,
//		Background: lettermark.Hex("#6b21a8"),
//		Disc:       image.Rect(64, 64, 128, 128),
//		Letter:     "T",
//		Face:       lettermark.ResolveFace("Arial", 60),
//	}
//	if err := mark.Render().SavePNG("icon-192x192.png"); err != nil {
//		log.Fatal(err)
//	}
//
// # Fonts
//
// ResolveFace looks for a scalable font by family name in the operating
// system's font directories. When the font cannot be located or parsed it
// silently substitutes a built-in bitmap face, so rendering always
// succeeds. The substitution is reported through the package logger at
// debug level; see SetLogger.
//
// # Coordinate System
//
// Standard raster coordinates: origin (0,0) at the top-left, X increases
// right, Y increases down.
package lettermark
