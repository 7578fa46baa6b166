package lettermark

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrEmptyFontData is returned by NewFontSource for a zero-length input.
var ErrEmptyFontData = errors.New("lettermark: empty font data")

// FontSource represents a loaded scalable font (TTF or OTF).
// One FontSource can create multiple Face values at different sizes and
// is safe for concurrent use once created.
//
// The data is parsed by both backends the renderer relies on: the
// x/image opentype parser (rasterization, metrics) and go-text's
// typesetting parser (HarfBuzz shaping). Data either backend rejects
// fails the load, so a FontSource that exists can always render.
type FontSource struct {
	data   []byte
	sfnt   *opentype.Font
	shaped *gtfont.Font
	name   string
}

// NewFontSource creates a FontSource from font data.
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("lettermark: parse font: %w", err)
	}

	shapedFace, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("lettermark: parse font for shaping: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:   dataCopy,
		sfnt:   parsed,
		shaped: shapedFace.Font,
	}
	if name, err := parsed.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- font file path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lettermark: read font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name, or "" if the font does not carry one.
func (s *FontSource) Name() string { return s.name }

// Face creates a Face at the specified size in points.
// Rendering assumes 72 DPI, so points equal pixels.
func (s *FontSource) Face(size float64) Face {
	return &sourceFace{source: s, size: size}
}

// Face is a font face bound to a size. It can measure and draw short
// strings such as an icon letter. A Face is always usable: scalable faces
// come from FontSource.Face or ResolveFace, and FallbackFace provides a
// built-in bitmap face that needs no font files.
type Face interface {
	// Advance returns the horizontal pen advance of s in pixels.
	Advance(s string) float64

	// Extents returns the rendered bounding box of s in pixels, relative
	// to a baseline origin: minY is negative above the baseline, maxY
	// positive below it.
	Extents(s string) (minX, minY, maxX, maxY float64)

	// draw renders s with the baseline origin at (x, y).
	draw(dst draw.Image, s string, x, y float64, col color.Color)
}

// ResolveFace locates a scalable font by family name in the system font
// directories and returns a Face at the given size. Any failure along the
// way (font not found, unreadable file, corrupt data) substitutes the
// built-in bitmap fallback face instead of returning an error. The cause
// is reported through the package logger at debug level only.
func ResolveFace(family string, size float64) Face {
	path, err := findFontFile(family)
	if err != nil {
		Logger().Debug("scalable font unavailable, using bitmap fallback",
			"family", family, "err", err)
		return FallbackFace()
	}

	source, err := NewFontSourceFromFile(path)
	if err != nil {
		Logger().Debug("scalable font unusable, using bitmap fallback",
			"family", family, "path", path, "err", err)
		return FallbackFace()
	}

	Logger().Debug("resolved scalable font",
		"family", family, "path", path, "name", source.Name())
	return source.Face(size)
}

// FallbackFace returns the built-in bitmap face used when no scalable
// font can be loaded. It ignores the requested size: like every bitmap
// strike, it renders at its one designed size.
func FallbackFace() Face {
	return &bitmapFace{face: basicfont.Face7x13}
}

// sourceFace is a scalable Face backed by a FontSource.
type sourceFace struct {
	source *FontSource
	size   float64
}

// newRasterFace creates the opentype face used for rasterization and
// bounds. Faces are cheap and not safe for concurrent use, so one is
// created per call and closed afterwards.
func (f *sourceFace) newRasterFace() (font.Face, error) {
	return opentype.NewFace(f.source.sfnt, &opentype.FaceOptions{
		Size:    f.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Advance implements Face using HarfBuzz shaping, which accounts for
// kerning and substitutions that per-rune advances would miss.
func (f *sourceFace) Advance(s string) float64 {
	if s == "" {
		return 0
	}
	runes := []rune(s)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(f.source.shaped),
		Size:      fixed.Int26_6(f.size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	var shaper shaping.HarfbuzzShaper
	output := shaper.Shape(input)

	var advance fixed.Int26_6
	for _, g := range output.Glyphs {
		advance += g.XAdvance
	}
	return fixedToFloat(advance)
}

// Extents implements Face.
func (f *sourceFace) Extents(s string) (minX, minY, maxX, maxY float64) {
	face, err := f.newRasterFace()
	if err != nil {
		return 0, 0, 0, 0
	}
	defer func() {
		_ = face.Close()
	}()

	bounds, _ := font.BoundString(face, s)
	return fixedToFloat(bounds.Min.X), fixedToFloat(bounds.Min.Y),
		fixedToFloat(bounds.Max.X), fixedToFloat(bounds.Max.Y)
}

// draw implements Face.
func (f *sourceFace) draw(dst draw.Image, s string, x, y float64, col color.Color) {
	face, err := f.newRasterFace()
	if err != nil {
		return
	}
	defer func() {
		_ = face.Close()
	}()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(s)
}

// bitmapFace adapts a fixed-size bitmap strike to the Face interface.
type bitmapFace struct {
	face font.Face
}

func (f *bitmapFace) Advance(s string) float64 {
	return fixedToFloat(font.MeasureString(f.face, s))
}

func (f *bitmapFace) Extents(s string) (minX, minY, maxX, maxY float64) {
	bounds, _ := font.BoundString(f.face, s)
	return fixedToFloat(bounds.Min.X), fixedToFloat(bounds.Min.Y),
		fixedToFloat(bounds.Max.X), fixedToFloat(bounds.Max.Y)
}

func (f *bitmapFace) draw(dst draw.Image, s string, x, y float64, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: f.face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(s)
}

// detectScript returns the script of the first non-space rune, defaulting
// to Latin. Single-script input is assumed; icon labels are one letter.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// fixedToFloat converts fixed.Int26_6 to float64 pixels.
func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// floatToFixed converts float64 pixels to fixed.Int26_6.
func floatToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}
