package raster

import "fmt"

// DrawLine rasterizes a straight segment from a to b in the given color.
//
// The segment is walked parametrically in unit steps of arc length; each
// interpolated point is floored onto the grid and painted. The endpoint b is
// always painted last, so it holds the color regardless of floating-point
// rounding along the walk. A zero-length segment (a == b) paints exactly the
// one cell at a.
//
// Both endpoints and every interpolated point must lie inside the image;
// a point outside the bounds panics. Callers are responsible for keeping
// segments on the image surface.
func (m *Image) DrawLine(a, b Coord, c Pixel) {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	dist := a.Distance(b)

	if dist == 0 {
		m.mustSet(a.X, a.Y, c)
		return
	}

	for t := 0.0; t <= dist; t += 1.0 {
		x := ax + (bx-ax)*(t/dist)
		y := ay + (by-ay)*(t/dist)
		m.mustSet(int(x), int(y), c)
	}

	m.mustSet(b.X, b.Y, c)
}

// DrawCircle paints the filled disk around center with the given radius.
//
// A cell is painted iff its Euclidean distance to center is strictly less
// than radius; cells exactly on the boundary stay untouched. The scan covers
// the entire image, so cost is O(width×height) regardless of radius. Disks
// that extend past the image edges are clipped by the scan itself.
func (m *Image) DrawCircle(center Coord, radius int, c Pixel) {
	r := float64(radius)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if Pt(x, y).Distance(center) < r {
				m.pix[m.pixOffset(x, y)] = c
			}
		}
	}
}

// mustSet writes a pixel and panics if the coordinate is out of range.
// Drawing operations use it so that shapes escaping the image surface fail
// loudly instead of being silently clipped.
func (m *Image) mustSet(x, y int, c Pixel) {
	if !m.SetPixel(x, y, c) {
		panic(fmt.Sprintf("raster: coordinate (%d,%d) out of range for %dx%d image", x, y, m.width, m.height))
	}
}
