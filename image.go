package raster

import (
	"image"
	"image/color"
)

// Image represents a rectangular pixel buffer with fixed dimensions.
// The pixel grid is addressed with a bottom-left origin: (0,0) is the
// bottom-left cell and Y increases upward.
type Image struct {
	width  int
	height int
	pix    []Pixel // row-major, top row first
}

// NewImage creates a new image with the given dimensions, every cell set to
// the background color. Dimensions should be at least 1; a zero dimension is
// constructible but produces an empty, unusable image.
func NewImage(width, height int, background Pixel) *Image {
	pix := make([]Pixel, width*height)
	for i := range pix {
		pix[i] = background
	}
	return &Image{
		width:  width,
		height: height,
		pix:    pix,
	}
}

// Width returns the width of the image.
func (m *Image) Width() int {
	return m.width
}

// Height returns the height of the image.
func (m *Image) Height() int {
	return m.height
}

// Pix returns the raw pixel data, row-major with the top row first.
func (m *Image) Pix() []Pixel {
	return m.pix
}

// pixOffset maps a grid coordinate (bottom-left origin) to an index into
// pix, which is stored top row first to match the PPM emission order.
func (m *Image) pixOffset(x, y int) int {
	return x + (m.height-y-1)*m.width
}

// GetPixel returns the pixel at grid coordinate (x, y) with a bottom-left
// origin. The second return value reports whether the coordinate is inside
// the image; out-of-bounds queries return false, never panic.
func (m *Image) GetPixel(x, y int) (Pixel, bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Pixel{}, false
	}
	return m.pix[m.pixOffset(x, y)], true
}

// SetPixel sets the pixel at grid coordinate (x, y) with a bottom-left
// origin. It reports whether the coordinate was inside the image; writes
// outside the bounds are ignored.
func (m *Image) SetPixel(x, y int, c Pixel) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	m.pix[m.pixOffset(x, y)] = c
	return true
}

// Clear fills the entire image with a color.
func (m *Image) Clear(c Pixel) {
	for i := range m.pix {
		m.pix[i] = c
	}
}

// ToImage converts the image to an image.RGBA.
func (m *Image) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.width, m.height))
	for i, p := range m.pix {
		j := i * 4
		img.Pix[j+0] = p.R
		img.Pix[j+1] = p.G
		img.Pix[j+2] = p.B
		img.Pix[j+3] = 0xff
	}
	return img
}

// FromImage creates an Image from a standard image, discarding alpha.
func FromImage(img image.Image) *Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	m := NewImage(width, height, Black)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			m.pix[y*width+x] = FromColor(c)
		}
	}

	return m
}

// At implements the image.Image interface. Unlike GetPixel, it follows the
// image package convention: (0,0) is the top-left corner and y increases
// downward. Out-of-bounds coordinates return opaque black.
func (m *Image) At(x, y int) color.Color {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Black
	}
	return m.pix[y*m.width+x]
}

// Set implements the draw.Image interface, using the same top-left origin
// as At. Out-of-bounds writes are ignored.
func (m *Image) Set(x, y int, c color.Color) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.pix[y*m.width+x] = FromColor(c)
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return color.RGBAModel
}
