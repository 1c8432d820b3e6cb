package raster

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawString draws s with the built-in 7x13 bitmap face. The coordinate is
// the baseline origin of the first glyph, in grid coordinates (bottom-left
// origin). Glyphs that extend past the image edges are clipped.
func (m *Image) DrawString(s string, at Coord, c Pixel) {
	m.DrawStringFace(s, at, c, basicfont.Face7x13)
}

// DrawStringFace draws s using the given font face. The coordinate is the
// baseline origin of the first glyph, in grid coordinates.
func (m *Image) DrawStringFace(s string, at Coord, c Pixel, face font.Face) {
	d := &font.Drawer{
		Dst:  m,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(at.X, m.height-1-at.Y),
	}
	d.DrawString(s)
}

// MeasureString returns the advance width of s in pixels, rounded up,
// when drawn with the given face.
func MeasureString(s string, face font.Face) int {
	return font.MeasureString(face, s).Ceil()
}

// LoadFontFace parses TTF font data and returns a face at the given point
// size, suitable for DrawStringFace.
func LoadFontFace(ttf []byte, points float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("could not parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size: points,
	}), nil
}
