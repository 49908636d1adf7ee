// Package gg renders frames in software on a gogpu/gg context.
// It needs no window or GPU, so it serves headless runs, snapshots and tests.
package gg

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/plus3/stagecraft/game"
)

// Surface is a game.Surface backed by an offscreen gg context
type Surface struct {
	ctx    *gg.Context
	images map[image.Image]*gg.ImageBuf

	// Err holds the first rasterization error of the current frame
	Err error
}

var _ game.Surface = (*Surface)(nil)

// NewSurface creates a width x height surface
func NewSurface(width, height int) *Surface {
	return &Surface{
		ctx:    gg.NewContext(width, height),
		images: make(map[image.Image]*gg.ImageBuf),
	}
}

func (s *Surface) Size() (int, int) {
	return s.ctx.Width(), s.ctx.Height()
}

func (s *Surface) ResetTransform() {
	s.ctx.Identity()
}

func (s *Surface) SetTransform(t game.Transform) {
	s.ctx.SetTransform(gg.Matrix{
		A: t.ScaleX, B: 0, C: t.OffsetX,
		D: 0, E: t.ScaleY, F: t.OffsetY,
	})
}

func (s *Surface) FillRect(x, y, width, height float64, c color.Color) {
	s.ctx.SetColor(c)
	s.ctx.DrawRectangle(x, y, width, height)
	s.record(s.ctx.Fill())
}

func (s *Surface) FillCircle(cx, cy, radius float64, c color.Color) {
	s.ctx.SetColor(c)
	s.ctx.DrawCircle(cx, cy, radius)
	s.record(s.ctx.Fill())
}

func (s *Surface) StrokeLine(x1, y1, x2, y2, lineWidth float64, c color.Color) {
	s.ctx.SetColor(c)
	s.ctx.SetLineWidth(lineWidth)
	s.ctx.DrawLine(x1, y1, x2, y2)
	s.record(s.ctx.Stroke())
}

// DrawImage draws the src region of img. Converted images are cached by identity,
// so callers should reuse the same image.Image value across frames.
func (s *Surface) DrawImage(img image.Image, src image.Rectangle, x, y float64) {
	buf, ok := s.images[img]
	if !ok {
		buf = gg.ImageBufFromImage(img)
		s.images[img] = buf
	}

	s.ctx.DrawImageEx(buf, gg.DrawImageOptions{
		X:       x,
		Y:       y,
		SrcRect: &src,
	})
}

// Clear fills the surface with c, ignoring the current transform
func (s *Surface) Clear(c color.Color) {
	s.ctx.ClearWithColor(gg.FromColor(c))
	s.Err = nil
}

// Image returns a copy of the current pixels
func (s *Surface) Image() image.Image {
	return s.ctx.Image()
}

// SavePNG writes the current frame to path
func (s *Surface) SavePNG(path string) error {
	if err := s.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// EncodePNG writes the current frame to w
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.ctx.EncodePNG(w); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Close releases the context
func (s *Surface) Close() error {
	clear(s.images)
	return s.ctx.Close()
}

func (s *Surface) record(err error) {
	if err != nil && s.Err == nil {
		s.Err = err
	}
}
