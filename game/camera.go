package game

import (
	"math"

	"github.com/plus3/stagecraft/vmath"
)

// CameraConfig replaces the camera's target, bounds and zoom. Zero fields reset to their
// defaults: no target, no bounds, zoom 1.
type CameraConfig struct {
	Target EntityId
	Bounds *vmath.Rect
	Zoom   float64
}

// Camera maps world coordinates onto the surface.
// When a target is set the position is recomputed every tick; otherwise X and Y belong to the caller.
type Camera struct {
	X, Y float64
	Zoom float64

	target EntityId
	bounds *vmath.Rect
}

func newCamera() *Camera {
	return &Camera{Zoom: 1}
}

// Set applies cfg wholesale
func (c *Camera) Set(cfg CameraConfig) {
	c.target = cfg.Target

	c.bounds = nil
	if cfg.Bounds != nil {
		b := *cfg.Bounds
		c.bounds = &b
	}

	c.Zoom = cfg.Zoom
	if c.Zoom <= 0 {
		c.Zoom = 1
	}
}

// Target returns the followed entity, or 0
func (c *Camera) Target() EntityId {
	return c.target
}

// Bounds returns the world rectangle constraining the camera's top-left corner
func (c *Camera) Bounds() (vmath.Rect, bool) {
	if c.bounds == nil {
		return vmath.Rect{}, false
	}
	return *c.bounds, true
}

// Follow centers the viewport on the target and clamps it into the bounds.
// A target that no longer resolves is cleared and the camera stays where it is.
func (c *Camera) Follow(scene *Scene, viewWidth, viewHeight float64) {
	if c.target == 0 {
		return
	}

	target, ok := scene.Get(c.target)
	if !ok {
		c.target = 0
		return
	}

	visibleW := viewWidth / c.Zoom
	visibleH := viewHeight / c.Zoom

	c.X = target.X - visibleW/2
	c.Y = target.Y - visibleH/2

	if c.bounds != nil {
		c.X = math.Max(c.bounds.X, math.Min(c.X, c.bounds.Right()-visibleW))
		c.Y = math.Max(c.bounds.Y, math.Min(c.Y, c.bounds.Bottom()-visibleH))
	}
}

// Transform returns the world-to-screen transform: screen = (world - position) * zoom
func (c *Camera) Transform() Transform {
	return Transform{
		ScaleX:  c.Zoom,
		ScaleY:  c.Zoom,
		OffsetX: -c.X * c.Zoom,
		OffsetY: -c.Y * c.Zoom,
	}
}

// WorldToScreen maps a world position to surface pixels
func (c *Camera) WorldToScreen(p vmath.Vec2) vmath.Vec2 {
	x, y := c.Transform().Apply(p.X, p.Y)
	return vmath.Vec2{X: x, Y: y}
}

// ScreenToWorld maps surface pixels to a world position
func (c *Camera) ScreenToWorld(p vmath.Vec2) vmath.Vec2 {
	x, y := c.Transform().Invert(p.X, p.Y)
	return vmath.Vec2{X: x, Y: y}
}
