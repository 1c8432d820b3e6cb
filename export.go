package raster

import (
	"image/png"
	"io"

	"golang.org/x/image/bmp"
)

// EncodePNG writes the image to w in PNG format.
func (m *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, m.ToImage())
}

// SavePNG saves the image to a PNG file.
func (m *Image) SavePNG(path string) error {
	return m.saveWith(path, "PNG", m.EncodePNG)
}

// EncodeBMP writes the image to w in BMP format.
func (m *Image) EncodeBMP(w io.Writer) error {
	return bmp.Encode(w, m.ToImage())
}

// SaveBMP saves the image to a BMP file.
func (m *Image) SaveBMP(path string) error {
	return m.saveWith(path, "BMP", m.EncodeBMP)
}
