package raster

import "math"

// Coord represents a grid coordinate or displacement on the pixel grid.
// Components are non-negative by contract; the grid origin (0,0) is the
// bottom-left corner and Y increases upward.
type Coord struct {
	X, Y int
}

// Pt is a convenience function to create a Coord.
func Pt(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the component-wise sum of two coordinates.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Sub returns the component-wise difference of two coordinates.
// Each component saturates at zero, so the result is always a valid
// (non-negative) coordinate even when a component of d exceeds the
// corresponding component of c.
func (c Coord) Sub(d Coord) Coord {
	x := c.X - d.X
	if x < 0 {
		x = 0
	}
	y := c.Y - d.Y
	if y < 0 {
		y = 0
	}
	return Coord{X: x, Y: y}
}

// Length returns the Euclidean norm of the coordinate treated as a vector
// from the origin.
func (c Coord) Length() float64 {
	fx, fy := float64(c.X), float64(c.Y)
	return math.Sqrt(fx*fx + fy*fy)
}

// Distance returns the Euclidean distance between two coordinates.
// It is computed from the absolute component-wise differences, so it is
// symmetric in its operands and never goes through saturating subtraction.
func (c Coord) Distance(d Coord) float64 {
	dx := c.X - d.X
	if dx < 0 {
		dx = -dx
	}
	dy := c.Y - d.Y
	if dy < 0 {
		dy = -dy
	}
	return Coord{X: dx, Y: dy}.Length()
}
