// Package core provides the geometry, colour and cell-buffer primitives shared
// by the simulation, the engine and the terminal platform. It has no external
// dependencies so game logic stays pure and testable.
package core

import "math"

// Rect is an integer axis-aligned bounding box in logical pixels.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// SquareAt builds the integer rectangle for a float-positioned square
// entity. Position and size are truncated toward zero.
func SquareAt(x, y, size float64) Rect {
	s := int(size)
	if s < 0 {
		s = 0
	}
	return Rect{X: int(x), Y: int(y), W: s, H: s}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count and empty rectangles never intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Size is a width/height pair in logical pixels.
type Size struct {
	W, H int
}

// Bounds returns the rectangle anchored at the origin with this size.
func (s Size) Bounds() Rect {
	return Rect{W: s.W, H: s.H}
}

// Clamp restricts a value to be within [lo, hi].
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
	return math.Max(lo, math.Min(hi, val))
}

// Bounce keeps a coordinate inside [0, limit] and reports whether it had to
// be moved, in which case the caller inverts the matching velocity.
func Bounce(pos, limit float64) (float64, bool) {
	if pos < 0 {
		return 0, true
	}
	if pos > limit {
		return limit, true
	}
	return pos, false
}
