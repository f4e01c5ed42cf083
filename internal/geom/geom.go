// Package geom provides the 2D primitives shared by the simulation and the
// presentation layer: points, vectors, sizes and the shapes used for exact
// overlap tests. It has no dependencies outside the standard library.
package geom

import "math"

// Point is a position in world units. Y grows downwards.
type Point struct {
	X, Y float64
}

// Add returns the point translated by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Vector is a displacement or velocity in world units.
type Vector struct {
	X, Y float64
}

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns v scaled to unit length. The zero vector stays zero.
func (v Vector) Normalized() Vector {
	l := v.Len()
	if l == 0 {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// NewSize creates a size with the given dimensions.
func NewSize(w, h float64) Size {
	return Size{W: w, H: h}
}

// Clamp restricts a value to be within [min, max].
// If min > max the midpoint is returned.
func Clamp(val, min, max float64) float64 {
	if min > max {
		return (min + max) / 2
	}
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
