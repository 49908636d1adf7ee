package game_test

import (
	"fmt"
	"image"
	"image/color"

	"github.com/plus3/stagecraft/game"
)

// recordingSurface logs every call so tests can assert on draw order
type recordingSurface struct {
	width, height int
	transform     game.Transform
	ops           []string
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{width: 800, height: 600, transform: game.Identity()}
}

func (r *recordingSurface) Size() (int, int) {
	return r.width, r.height
}

func (r *recordingSurface) ResetTransform() {
	r.transform = game.Identity()
	r.ops = append(r.ops, "reset")
}

func (r *recordingSurface) SetTransform(t game.Transform) {
	r.transform = t
	r.ops = append(r.ops, "transform")
}

func (r *recordingSurface) FillRect(x, y, width, height float64, c color.Color) {
	r.ops = append(r.ops, fmt.Sprintf("rect %g,%g %gx%g", x, y, width, height))
}

func (r *recordingSurface) FillCircle(cx, cy, radius float64, c color.Color) {
	r.ops = append(r.ops, fmt.Sprintf("circle %g,%g r%g", cx, cy, radius))
}

func (r *recordingSurface) StrokeLine(x1, y1, x2, y2, lineWidth float64, c color.Color) {
	r.ops = append(r.ops, fmt.Sprintf("line %g,%g %g,%g", x1, y1, x2, y2))
}

func (r *recordingSurface) DrawImage(img image.Image, src image.Rectangle, x, y float64) {
	r.ops = append(r.ops, fmt.Sprintf("image %v at %g,%g", src, x, y))
}

func (r *recordingSurface) reset() {
	r.ops = r.ops[:0]
}
