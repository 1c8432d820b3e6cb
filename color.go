package raster

import (
	"fmt"
	"image/color"
)

// Pixel represents an 8-bit RGB color. It is a plain value type with
// structural equality; two pixels are equal iff all three channels match.
type Pixel struct {
	R, G, B uint8
}

// RGB creates a pixel from three channel values.
func RGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b}
}

// Common colors
var (
	Black  = RGB(0, 0, 0)
	Unit   = RGB(1, 1, 1)
	White  = RGB(255, 255, 255)
	Red    = RGB(255, 0, 0)
	Green  = RGB(0, 255, 0)
	Blue   = RGB(0, 0, 255)
	Purple = RGB(255, 0, 255)
)

// Scale returns the pixel with each channel multiplied by s.
// The multiplication is wrapping 8-bit arithmetic: a product exceeding 255
// wraps modulo 256 rather than saturating.
func (p Pixel) Scale(s uint8) Pixel {
	return Pixel{R: p.R * s, G: p.G * s, B: p.B * s}
}

// RGBA implements the color.Color interface. The pixel is always opaque.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p.R)
	r |= r << 8
	g = uint32(p.G)
	g |= g << 8
	b = uint32(p.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// FromColor converts a standard color.Color to a Pixel, discarding alpha.
func FromColor(c color.Color) Pixel {
	if p, ok := c.(Pixel); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return Pixel{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// Hex parses a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with an optional leading '#'.
func Hex(hex string) (Pixel, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint8
	var err error
	switch len(s) {
	case 3: // RGB
		if r, err = parseHex(s[0:1]); err == nil {
			if g, err = parseHex(s[1:2]); err == nil {
				b, err = parseHex(s[2:3])
			}
		}
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		if r, err = parseHex(s[0:2]); err == nil {
			if g, err = parseHex(s[2:4]); err == nil {
				b, err = parseHex(s[4:6])
			}
		}
	default:
		err = fmt.Errorf("invalid length %d", len(s))
	}
	if err != nil {
		return Pixel{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return Pixel{R: r, G: g, B: b}, nil
}

// parseHex is a helper for hex parsing
func parseHex(s string) (uint8, error) {
	var val uint8
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += c - '0'
		case 'a' <= c && c <= 'f':
			val += c - 'a' + 10
		case 'A' <= c && c <= 'F':
			val += c - 'A' + 10
		default:
			return 0, fmt.Errorf("invalid hex digit %q", c)
		}
	}
	return val, nil
}
