// Command genicons renders the app icon set: two letter-badge PNGs
// (192x192 and 512x512) written under public/icons/. The output directory
// must already exist. genicons takes no arguments.
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/teabrew/lettermark"
)

// fontFamily is the preferred scalable font. When it cannot be resolved
// the built-in bitmap face is used instead.
const fontFamily = "Arial"

func main() {
	background := lettermark.Hex("#6b21a8")

	icons := []struct {
		size     int
		disc     image.Rectangle
		fontSize float64
		path     string
	}{
		{192, image.Rect(64, 64, 128, 128), 60, "public/icons/icon-192x192.png"},
		{512, image.Rect(170, 170, 342, 342), 160, "public/icons/icon-512x512.png"},
	}

	for _, ic := range icons {
		mark := lettermark.Lettermark{
			Size:       ic.size,
			Background: background,
			Disc:       ic.disc,
			Letter:     "T",
			Face:       lettermark.ResolveFace(fontFamily, ic.fontSize),
		}
		if err := mark.Render().SavePNG(ic.path); err != nil {
			fmt.Fprintf(os.Stderr, "genicons: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Icons created successfully!")
}
