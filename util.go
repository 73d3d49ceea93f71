package reflow

import (
	"fmt"
	"math"
)

const Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	} else if hi < v {
		return hi
	}
	return v
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in layout space, with Y pointing down.
type Point struct {
	X, Y float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Size is a width and height in layout space.
type Size struct {
	W, H float64
}

// Equals returns true if S and T are equal with tolerance Epsilon.
func (s Size) Equals(t Size) bool {
	return equal(s.W, t.W) && equal(s.H, t.H)
}

// Mul multiplies the width and height by f.
func (s Size) Mul(f float64) Size {
	return Size{f * s.W, f * s.H}
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.W, s.H)
}

////////////////////////////////////////////////////////////////

// Rect is a rectangle in layout space, where X and Y are the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Add returns a rect that encompasses both the current rect and the given rect.
func (r Rect) Add(q Rect) Rect {
	if q.W == 0.0 && q.H == 0.0 {
		return r
	} else if r.W == 0.0 && r.H == 0.0 {
		return q
	}
	x0 := math.Min(r.X, q.X)
	y0 := math.Min(r.Y, q.Y)
	x1 := math.Max(r.Right(), q.Right())
	y1 := math.Max(r.Bottom(), q.Bottom())
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Contains returns true if the point lies inside the rect, where the right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return r.X <= p.X && p.X < r.Right() && r.Y <= p.Y && p.Y < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X, r.Y, r.Right(), r.Bottom())
}

////////////////////////////////////////////////////////////////

// Margin is the space around the laid out text.
type Margin struct {
	Left, Top, Right, Bottom float64
}

// UniformMargin returns a margin with the same value on every side.
func UniformMargin(m float64) Margin {
	return Margin{m, m, m, m}
}

// Horizontal returns the total horizontal margin.
func (m Margin) Horizontal() float64 {
	return m.Left + m.Right
}

// Vertical returns the total vertical margin.
func (m Margin) Vertical() float64 {
	return m.Top + m.Bottom
}

// Mul scales every side by f.
func (m Margin) Mul(f float64) Margin {
	return Margin{f * m.Left, f * m.Top, f * m.Right, f * m.Bottom}
}
