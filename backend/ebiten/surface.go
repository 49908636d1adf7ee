// Package ebiten binds the frame loop to an ebiten window: a Surface over the screen image,
// input polling and an ebiten.Game runner.
package ebiten

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/stagecraft/game"
)

// Surface draws onto an ebiten image. The vector helpers ignore GeoM, so
// shape coordinates are mapped through the transform here.
type Surface struct {
	target    *ebiten.Image
	transform game.Transform
	images    map[image.Image]*ebiten.Image

	// Antialias smooths shape edges
	Antialias bool
}

var _ game.Surface = (*Surface)(nil)

func NewSurface() *Surface {
	return &Surface{
		transform: game.Identity(),
		images:    make(map[image.Image]*ebiten.Image),
	}
}

// SetTarget points the surface at the image to draw on, usually the screen passed to Draw
func (s *Surface) SetTarget(target *ebiten.Image) {
	s.target = target
}

func (s *Surface) Size() (int, int) {
	if s.target == nil {
		return 0, 0
	}
	b := s.target.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) ResetTransform() {
	s.transform = game.Identity()
}

func (s *Surface) SetTransform(t game.Transform) {
	s.transform = t
}

func (s *Surface) FillRect(x, y, width, height float64, c color.Color) {
	x0, y0 := s.transform.Apply(x, y)
	x1, y1 := s.transform.Apply(x+width, y+height)

	vector.DrawFilledRect(s.target,
		float32(math.Min(x0, x1)), float32(math.Min(y0, y1)),
		float32(math.Abs(x1-x0)), float32(math.Abs(y1-y0)),
		c, s.Antialias)
}

func (s *Surface) FillCircle(cx, cy, radius float64, c color.Color) {
	x, y := s.transform.Apply(cx, cy)
	r := radius * math.Abs(s.transform.ScaleX)

	vector.DrawFilledCircle(s.target, float32(x), float32(y), float32(r), c, s.Antialias)
}

func (s *Surface) StrokeLine(x1, y1, x2, y2, lineWidth float64, c color.Color) {
	ax, ay := s.transform.Apply(x1, y1)
	bx, by := s.transform.Apply(x2, y2)
	w := lineWidth * math.Abs(s.transform.ScaleX)

	vector.StrokeLine(s.target, float32(ax), float32(ay), float32(bx), float32(by), float32(w), c, s.Antialias)
}

// DrawImage draws the src region of img. Non-ebiten images are uploaded once and cached by identity.
func (s *Surface) DrawImage(img image.Image, src image.Rectangle, x, y float64) {
	texture := s.texture(img)
	sub, ok := texture.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}

	tx, ty := s.transform.Apply(x, y)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(s.transform.ScaleX, s.transform.ScaleY)
	opts.GeoM.Translate(tx, ty)
	s.target.DrawImage(sub, opts)
}

// Forget drops the cached texture for img
func (s *Surface) Forget(img image.Image) {
	if texture, ok := s.images[img]; ok {
		texture.Deallocate()
		delete(s.images, img)
	}
}

func (s *Surface) texture(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}

	texture, ok := s.images[img]
	if !ok {
		texture = ebiten.NewImageFromImage(img)
		s.images[img] = texture
	}
	return texture
}
