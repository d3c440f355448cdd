package geom

import "github.com/pthm-cable/physix/fixed"

// Circle is a center plus radius, used for point containment tests.
type Circle struct {
	Center Point2
	Radius fixed.NumberU
}

// RadiusSquared returns Radius * Radius on the fixed grid.
func (c Circle) RadiusSquared() fixed.NumberU {
	return c.Radius.Mul(c.Radius)
}

// Intersects reports whether the point touches the circle; the boundary is
// included.
func (c Circle) Intersects(p Point2) bool {
	return DistanceSquared(c.Center, p) <= c.RadiusSquared()
}

// Contains reports whether the point lies strictly inside the circle; the
// boundary is excluded.
func (c Circle) Contains(p Point2) bool {
	return DistanceSquared(c.Center, p) < c.RadiusSquared()
}

// IntersectsCircle reports whether two circles touch or overlap.
func (c Circle) IntersectsCircle(o Circle) bool {
	sum := c.Radius + o.Radius
	return DistanceSquared(c.Center, o.Center) <= sum.Mul(sum)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Position Point2
	Size     Size2
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() fixed.Number {
	return r.Position.X
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() fixed.Number {
	return r.Position.X + fixed.Signed(r.Size.W)
}

// Top returns the y coordinate of the top edge.
func (r Rect) Top() fixed.Number {
	return r.Position.Y
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() fixed.Number {
	return r.Position.Y + fixed.Signed(r.Size.H)
}

// IntersectsPoint reports whether the point touches the rectangle; all four
// edges are included.
func (r Rect) IntersectsPoint(p Point2) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Intersects reports whether two rectangles touch or overlap; edge contact
// counts.
func (r Rect) Intersects(o Rect) bool {
	return !(r.Right() < o.Left() ||
		r.Left() > o.Right() ||
		r.Bottom() < o.Top() ||
		r.Top() > o.Bottom())
}
