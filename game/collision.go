package game

import "github.com/plus3/stagecraft/vmath"

// Collider is anything with an axis-aligned bounding box
type Collider interface {
	Bounds() vmath.Rect
}

// StaticCollider is a fixed rectangle usable as an obstacle
type StaticCollider vmath.Rect

func (c StaticCollider) Bounds() vmath.Rect {
	return vmath.Rect(c)
}

// CheckCollision reports whether the bounding boxes of a and b overlap.
// Touching edges do not count as a collision.
func CheckCollision(a, b Collider) bool {
	return a.Bounds().Overlaps(b.Bounds())
}
