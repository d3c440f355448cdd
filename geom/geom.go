// Package geom provides 2D point and vector algebra over the fixed-point
// number types. All types are plain values: operations either return a new
// value or mutate the explicit pointer receiver, never both.
package geom

import "github.com/pthm-cable/physix/fixed"

// Point2 is an absolute position.
type Point2 struct {
	X, Y fixed.Number
}

// Vector2 is a displacement, velocity or force.
type Vector2 struct {
	X, Y fixed.Number
}

// Size2 holds non-negative extents.
type Size2 struct {
	W, H fixed.NumberU
}

// Add returns the point translated by v.
func (p Point2) Add(v Vector2) Point2 {
	return Point2{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the point translated by the negation of v.
func (p Point2) Sub(v Vector2) Point2 {
	return Point2{X: p.X - v.X, Y: p.Y - v.Y}
}

// Translate moves the point in place by v.
func (p *Point2) Translate(v Vector2) {
	p.X += v.X
	p.Y += v.Y
}

// Add returns the component-wise sum.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Neg returns the negation. Exact for every representable value.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Scale multiplies both components by the scalar s.
func (v Vector2) Scale(s fixed.Number) Vector2 {
	return Vector2{X: v.X.Mul(s), Y: v.Y.Mul(s)}
}

// Div divides both components by the scalar s.
func (v Vector2) Div(s fixed.Number) Vector2 {
	return Vector2{X: v.X.Div(s), Y: v.Y.Div(s)}
}

// DistanceSquared returns (ax-bx)^2 + (ay-by)^2 as an unsigned value.
// Intermediates are 32-bit, so screen-range coordinates cannot overflow
// before the final conversion onto the 16-bit grid.
func DistanceSquared(a, b Point2) fixed.NumberU {
	dx := int32(a.X) - int32(b.X)
	dy := int32(a.Y) - int32(b.Y)
	sum := dx*dx>>fixed.FracBits + dy*dy>>fixed.FracBits
	return fixed.NumberU(uint16(sum))
}
