// Package core provides fundamental types and utilities shared by the
// simulation and the platform layers. It contains no external dependencies
// (especially no Bubble Tea) to keep the game core pure and testable.
package core

import "math"

// Point is a 2D point in scene units. Y grows downwards, matching the
// screen, so a positive rotation turns clockwise on screen.
type Point struct {
	X, Y float64
}

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Len returns the distance from the origin.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Rotate rotates p by rad radians about center.
func Rotate(p Point, rad float64, center Point) Point {
	sin, cos := math.Sincos(rad)
	dx, dy := p.X-center.X, p.Y-center.Y
	return Point{
		X: center.X + cos*dx - sin*dy,
		Y: center.Y + sin*dx + cos*dy,
	}
}

// RotateDeg rotates p by deg degrees about the origin.
func RotateDeg(p Point, deg float64) Point {
	return Rotate(p, deg*math.Pi/180, Point{})
}

// Bearing returns the clockwise angle in degrees [0,360) of p measured from
// "up" (the negative Y axis). It is the inverse of rotating (0,-1).
func Bearing(p Point) float64 {
	return NormalizeDegrees(math.Atan2(p.X, -p.Y) * 180 / math.Pi)
}

// NormalizeDegrees maps any angle into [0,360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -1e-15 + 360 rounds to exactly 360
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
