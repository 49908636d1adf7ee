package game

import (
	"image"
	"image/color"
)

// Surface is the drawing sink a backend hands to the frame loop.
// Coordinates passed to the fill, stroke and image calls are mapped through the current transform.
type Surface interface {
	// Size returns the surface size in pixels
	Size() (width, height int)

	ResetTransform()
	SetTransform(t Transform)

	FillRect(x, y, width, height float64, c color.Color)
	FillCircle(cx, cy, radius float64, c color.Color)
	StrokeLine(x1, y1, x2, y2, lineWidth float64, c color.Color)

	// DrawImage draws the src region of img with its top-left corner at (x, y)
	DrawImage(img image.Image, src image.Rectangle, x, y float64)
}

// Transform is a scale followed by a translation:
//
//	screen = world * Scale + Offset
type Transform struct {
	ScaleX, ScaleY   float64
	OffsetX, OffsetY float64
}

// Identity returns the transform that leaves coordinates unchanged
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Apply maps a point through the transform
func (t Transform) Apply(x, y float64) (float64, float64) {
	return x*t.ScaleX + t.OffsetX, y*t.ScaleY + t.OffsetY
}

// Invert maps a point back through the transform. Zero scales map to the offset origin.
func (t Transform) Invert(x, y float64) (float64, float64) {
	var ix, iy float64
	if t.ScaleX != 0 {
		ix = (x - t.OffsetX) / t.ScaleX
	}
	if t.ScaleY != 0 {
		iy = (y - t.OffsetY) / t.ScaleY
	}
	return ix, iy
}
