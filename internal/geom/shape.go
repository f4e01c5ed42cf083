package geom

// Shape is a positioned area that can be tested for overlap.
// The set of implementations is closed: Rect and Circle.
type Shape interface {
	// Bounds returns the smallest axis-aligned rectangle containing the shape.
	Bounds() Rect
	// Contains reports whether p lies inside the shape.
	Contains(p Point) bool
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround creates a rectangle of size s centered on c.
func RectAround(c Point, s Size) Rect {
	return Rect{X: c.X - s.W/2, Y: c.Y - s.H/2, W: s.W, H: s.H}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Bounds returns r itself.
func (r Rect) Bounds() Rect {
	return r
}

// Contains returns true if p is inside the rectangle. The right and bottom
// edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// ClosestPoint returns the point of r nearest to p.
func (r Rect) ClosestPoint(p Point) Point {
	return Point{
		X: Clamp(p.X, r.X, r.Right()),
		Y: Clamp(p.Y, r.Y, r.Bottom()),
	}
}

// Circle is a disc given by its center and radius.
type Circle struct {
	C Point
	R float64
}

// NewCircle creates a circle centered on c.
func NewCircle(c Point, r float64) Circle {
	return Circle{C: c, R: r}
}

// Bounds returns the square enclosing the circle.
func (c Circle) Bounds() Rect {
	return Rect{X: c.C.X - c.R, Y: c.C.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}

// Contains reports whether p lies inside the circle.
func (c Circle) Contains(p Point) bool {
	return DistanceSquared(c.C, p) < c.R*c.R
}

// DistanceSquared returns the squared distance between two points.
func DistanceSquared(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap.
func CirclesOverlap(a, b Circle) bool {
	r := a.R + b.R
	return DistanceSquared(a.C, b.C) < r*r
}

// CircleRectOverlap checks if a circle overlaps a rectangle using the
// closest point of the rectangle to the circle's center.
func CircleRectOverlap(c Circle, r Rect) bool {
	return DistanceSquared(c.C, r.ClosestPoint(c.C)) < c.R*c.R
}

// Overlaps reports whether two shapes share any area. Touching shapes do
// not overlap. Unknown shape types never overlap.
func Overlaps(a, b Shape) bool {
	switch sa := a.(type) {
	case Circle:
		switch sb := b.(type) {
		case Circle:
			return CirclesOverlap(sa, sb)
		case Rect:
			return CircleRectOverlap(sa, sb)
		}
	case Rect:
		switch sb := b.(type) {
		case Circle:
			return CircleRectOverlap(sb, sa)
		case Rect:
			return sa.Intersects(sb)
		}
	}
	return false
}
