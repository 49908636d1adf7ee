// Package vmath provides the 2D vector, rectangle and scalar helpers shared by
// the runtime and its subsystems. Every function is pure.
package vmath

import "math"

// Vec2 is a 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// Zero is the zero vector
var Zero = Vec2{}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the magnitude of v
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	mag := v.Len()
	if mag == 0 {
		return Zero
	}
	return v.Scale(1 / mag)
}

// Dot returns the dot product of v and o
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Distance returns the euclidean distance between v and o
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Len()
}

// AngleTo returns the angle in radians of the direction from v to o
func (v Vec2) AngleTo(o Vec2) float64 {
	return math.Atan2(o.Y-v.Y, o.X-v.X)
}

// ClosestPointOnSegment projects p onto the segment [a, b], clamping to its ends
func ClosestPointOnSegment(a, b, p Vec2) Vec2 {
	line := b.Sub(a)
	length := line.Len()
	dir := line.Normalize()

	projection := Clamp(p.Sub(a).Dot(dir), 0, length)
	return a.Add(dir.Scale(projection))
}
