// Package core provides fundamental geometry and screen types for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an axis-aligned rectangle in logical playfield units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Circle is a collision circle in logical playfield units.
type Circle struct {
	X, Y float64 // Center position
	R    float64 // Radius
}

// IntersectsRect reports whether the circle overlaps the rectangle.
// This is an exact circle-vs-AABB test, boundary inclusive: the circle
// center is clamped to the rectangle's extents and the squared distance
// to that nearest point is compared against the squared radius. A circle
// touching a corner at exactly distance R counts as a collision. Zero-size
// rectangles never collide.
func (c Circle) IntersectsRect(r Rect) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}

	nearestX := ClampF(c.X, r.X, r.Right())
	nearestY := ClampF(c.Y, r.Y, r.Bottom())

	dx := c.X - nearestX
	dy := c.Y - nearestY
	return dx*dx+dy*dy <= c.R*c.R
}

// Clamp restricts an integer value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
