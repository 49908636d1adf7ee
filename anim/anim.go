// Package anim steps through sprite frames at a fixed rate.
package anim

import (
	"image"

	"github.com/plus3/stagecraft/game"
)

// KindAnimation is the stage kind of an Animation attached to an entity
const KindAnimation game.StageKind = "animation"

// Frame is one region of a sprite sheet
type Frame struct {
	Image image.Image
	Src   image.Rectangle
}

// Sheet cuts count frames of frameWidth x frameHeight from the top row of img, left to right
func Sheet(img image.Image, frameWidth, frameHeight, count int) []Frame {
	origin := img.Bounds().Min
	frames := make([]Frame, count)
	for i := range frames {
		corner := origin.Add(image.Pt(i*frameWidth, 0))
		frames[i] = Frame{
			Image: img,
			Src:   image.Rectangle{Min: corner, Max: corner.Add(image.Pt(frameWidth, frameHeight))},
		}
	}
	return frames
}

// Animation advances at most one frame per update. Once FrameDuration has
// elapsed the leftover time is discarded.
type Animation struct {
	Frames        []Frame
	FrameDuration float64
	Loop          bool

	current int
	elapsed float64
}

var _ game.Stage = (*Animation)(nil)

func New(frames []Frame, frameDuration float64, loop bool) *Animation {
	return &Animation{
		Frames:        frames,
		FrameDuration: frameDuration,
		Loop:          loop,
	}
}

func (a *Animation) Update(dt float64) {
	if len(a.Frames) == 0 {
		return
	}

	a.elapsed += dt
	if a.elapsed < a.FrameDuration {
		return
	}

	a.elapsed = 0
	if a.Loop {
		a.current = (a.current + 1) % len(a.Frames)
	} else {
		a.current = min(a.current+1, len(a.Frames)-1)
	}
}

// Current returns the index of the displayed frame
func (a *Animation) Current() int {
	return a.current
}

// Frame returns the displayed frame, or the zero Frame when there are none
func (a *Animation) Frame() Frame {
	if len(a.Frames) == 0 {
		return Frame{}
	}
	return a.Frames[a.current]
}

// Done reports whether a non-looping animation has reached its last frame
func (a *Animation) Done() bool {
	return !a.Loop && a.current == len(a.Frames)-1
}

// Reset rewinds to the first frame
func (a *Animation) Reset() {
	a.current = 0
	a.elapsed = 0
}

// DrawAt draws the current frame with its top-left corner at (x, y)
func (a *Animation) DrawAt(s game.Surface, x, y float64) {
	f := a.Frame()
	if f.Image == nil {
		return
	}
	s.DrawImage(f.Image, f.Src, x, y)
}

func (a *Animation) Kind() game.StageKind {
	return KindAnimation
}

func (a *Animation) Advance(e *game.Entity, dt float64) {
	a.Update(dt)
}

// Draw has the game.DrawFunc signature and draws at the entity position
func (a *Animation) Draw(e *game.Entity, s game.Surface) {
	a.DrawAt(s, e.X, e.Y)
}
