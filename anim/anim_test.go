package anim_test

import (
	"image"
	"testing"

	"github.com/plus3/stagecraft/anim"
	"github.com/plus3/stagecraft/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sheet = image.NewNRGBA(image.Rect(0, 0, 48, 16))

func TestSheet(t *testing.T) {
	frames := anim.Sheet(sheet, 16, 16, 3)

	require.Len(t, frames, 3)
	assert.Equal(t, image.Rect(16, 0, 32, 16), frames[1].Src)
	assert.Same(t, sheet, frames[2].Image)
}

func TestAnimationLoop(t *testing.T) {
	a := anim.New(anim.Sheet(sheet, 16, 16, 3), 0.1, true)

	a.Update(0.05)
	assert.Equal(t, 0, a.Current())

	a.Update(0.05)
	assert.Equal(t, 1, a.Current())

	a.Update(0.5)
	assert.Equal(t, 2, a.Current(), "at most one frame per update")

	a.Update(0.1)
	assert.Equal(t, 0, a.Current())
	assert.False(t, a.Done())
}

func TestAnimationElapsedResets(t *testing.T) {
	a := anim.New(anim.Sheet(sheet, 16, 16, 3), 0.25, true)

	a.Update(0.375)
	assert.Equal(t, 1, a.Current())

	a.Update(0.125)
	assert.Equal(t, 1, a.Current(), "leftover time from the previous frame is discarded")
}

func TestAnimationOnce(t *testing.T) {
	a := anim.New(anim.Sheet(sheet, 16, 16, 2), 0.25, false)

	a.Update(0.25)
	assert.Equal(t, 1, a.Current())
	assert.True(t, a.Done())

	a.Update(0.25)
	assert.Equal(t, 1, a.Current())

	a.Reset()
	assert.Equal(t, 0, a.Current())
	assert.False(t, a.Done())
}

func TestAnimationEmpty(t *testing.T) {
	a := anim.New(nil, 0.1, true)

	assert.NotPanics(t, func() { a.Update(1) })
	assert.Equal(t, anim.Frame{}, a.Frame())
}

func TestAnimationOnEntity(t *testing.T) {
	a := anim.New(anim.Sheet(sheet, 16, 16, 3), 0.5, true)

	e := game.NewEntity(0, 0, 16, 16)
	e.Attach(a)
	e.Draw = a.Draw

	e.Update(0.5)
	assert.Equal(t, image.Rect(16, 0, 32, 16), a.Frame().Src)
	assert.True(t, e.HasStage(anim.KindAnimation))
}
