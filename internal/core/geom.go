// Package core provides fundamental types and utilities shared by the
// simulation, the terminal frontend and the desktop frontend.
// It has no external dependencies (especially no Bubble Tea) so game logic
// stays pure and testable.
package core

// Point is an integer position in pixel or cell space.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// At returns a copy of the rectangle moved so its top-left corner is p.
func (r Rect) At(p Point) Rect {
	return Rect{X: p.X, Y: p.Y, W: r.W, H: r.H}
}

// Move returns a copy of the rectangle translated by (dx, dy).
func (r Rect) Move(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// IntersectsAny returns the index of the first rect in list overlapping r,
// or -1 if there is none.
func (r Rect) IntersectsAny(list []Rect) int {
	for i, o := range list {
		if r.Intersects(o) {
			return i
		}
	}
	return -1
}

// IntersectsAll returns the indices of every rect in list overlapping r.
func (r Rect) IntersectsAll(list []Rect) []int {
	var hits []int
	for i, o := range list {
		if r.Intersects(o) {
			hits = append(hits, i)
		}
	}
	return hits
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inside reports whether r lies entirely within bounds.
func (r Rect) Inside(bounds Rect) bool {
	return r.X >= bounds.X && r.Y >= bounds.Y &&
		r.Right() <= bounds.Right() && r.Bottom() <= bounds.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Nearest rounds num to the nearest multiple of base (half rounds away from zero).
func Nearest(num, base int) int {
	if base <= 0 {
		return num
	}
	if num >= 0 {
		return (num + base/2) / base * base
	}
	return -((-num + base/2) / base * base)
}
