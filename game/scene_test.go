package game_test

import (
	"testing"

	"github.com/plus3/stagecraft/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(s *game.Scene) []*game.Entity {
	var out []*game.Entity
	for e := range s.Ordered() {
		out = append(out, e)
	}
	return out
}

func TestSceneAdd(t *testing.T) {
	t.Run("stable layer order", func(t *testing.T) {
		s := game.NewScene()
		a := game.NewEntity(0, 0, 1, 1)
		b := game.NewEntity(0, 0, 1, 1)
		c := game.NewEntity(0, 0, 1, 1)
		d := game.NewEntity(0, 0, 1, 1)

		s.Add(a, 2)
		s.Add(b, 0)
		s.Add(c, 1)
		s.Add(d, 0)

		assert.Equal(t, []*game.Entity{b, d, c, a}, collect(s))
	})

	t.Run("layer and events are injected", func(t *testing.T) {
		s := game.NewScene()
		e := game.NewEntity(0, 0, 1, 1)
		e.Layer = 7
		require.Nil(t, e.Events())

		id := s.Add(e, 3)

		assert.NotZero(t, id)
		assert.Equal(t, id, e.ID())
		assert.Equal(t, 3, e.Layer)
		assert.NotNil(t, e.Events())
	})

	t.Run("existing events are kept", func(t *testing.T) {
		s := game.NewScene()
		e := game.NewEntity(0, 0, 1, 1)
		events := e.AttachEvents()
		events.On("x", func(any) {})

		s.Add(e, 0)

		assert.Same(t, events, e.Events())
		assert.Equal(t, 1, e.Events().Listeners("x"))
	})

	t.Run("re-adding moves to the end of the new layer", func(t *testing.T) {
		s := game.NewScene()
		a := game.NewEntity(0, 0, 1, 1)
		b := game.NewEntity(0, 0, 1, 1)
		c := game.NewEntity(0, 0, 1, 1)

		idA := s.Add(a, 0)
		s.Add(b, 0)
		s.Add(c, 1)

		assert.Equal(t, idA, s.Add(a, 1))
		assert.Equal(t, []*game.Entity{b, c, a}, collect(s))
		assert.Equal(t, 3, s.Len())
	})

	t.Run("nil entity panics", func(t *testing.T) {
		s := game.NewScene()
		assert.Panics(t, func() { s.Add(nil, 0) })
	})

	t.Run("entity owned by another scene panics", func(t *testing.T) {
		e := game.NewEntity(0, 0, 1, 1)
		game.NewScene().Add(e, 0)
		assert.Panics(t, func() { game.NewScene().Add(e, 0) })
	})

	t.Run("manual layer change needs Sort", func(t *testing.T) {
		s := game.NewScene()
		a := game.NewEntity(0, 0, 1, 1)
		b := game.NewEntity(0, 0, 1, 1)
		s.Add(a, 0)
		s.Add(b, 1)

		a.Layer = 5
		assert.Equal(t, []*game.Entity{a, b}, collect(s))

		s.Sort()
		assert.Equal(t, []*game.Entity{b, a}, collect(s))
	})
}

func TestSceneRemove(t *testing.T) {
	t.Run("remove keeps relative order", func(t *testing.T) {
		s := game.NewScene()
		a := game.NewEntity(0, 0, 1, 1)
		b := game.NewEntity(0, 0, 1, 1)
		c := game.NewEntity(0, 0, 1, 1)
		s.Add(a, 0)
		s.Add(b, 0)
		s.Add(c, 0)

		events := b.Events()
		s.Remove(b)

		assert.Equal(t, []*game.Entity{a, c}, collect(s))
		assert.False(t, s.Contains(b))
		assert.Zero(t, b.ID())
		assert.Equal(t, 0, b.Layer)
		assert.Same(t, events, b.Events())
	})

	t.Run("removing an absent entity is a no-op", func(t *testing.T) {
		s := game.NewScene()
		a := game.NewEntity(0, 0, 1, 1)
		s.Add(a, 0)

		assert.NotPanics(t, func() {
			s.Remove(game.NewEntity(0, 0, 1, 1))
			s.Remove(nil)
		})
		assert.Equal(t, 1, s.Len())
	})

	t.Run("stale ids do not resolve after slot reuse", func(t *testing.T) {
		s := game.NewScene()
		a := game.NewEntity(0, 0, 1, 1)
		idA := s.Add(a, 0)
		s.Remove(a)

		b := game.NewEntity(0, 0, 1, 1)
		idB := s.Add(b, 0)

		assert.Equal(t, idA.Index(), idB.Index())
		assert.NotEqual(t, idA, idB)

		_, ok := s.Get(idA)
		assert.False(t, ok)

		got, ok := s.Get(idB)
		assert.True(t, ok)
		assert.Same(t, b, got)

		_, ok = s.Get(0)
		assert.False(t, ok)
	})
}

func TestSceneTraverse(t *testing.T) {
	t.Run("add during traversal is deferred", func(t *testing.T) {
		s := game.NewScene()
		a := game.NewEntity(0, 0, 1, 1)
		late := game.NewEntity(0, 0, 1, 1)
		s.Add(a, 0)

		var visited []*game.Entity
		s.Traverse(func(e *game.Entity) {
			visited = append(visited, e)
			if e == a {
				id := s.Add(late, -1)
				assert.NotZero(t, id)
				assert.Equal(t, -1, late.Layer)
				assert.NotNil(t, late.Events())
				assert.Equal(t, 1, s.Len())
			}
		})

		assert.Equal(t, []*game.Entity{a}, visited)
		assert.Equal(t, []*game.Entity{late, a}, collect(s))
	})

	t.Run("remove during traversal is deferred", func(t *testing.T) {
		s := game.NewScene()
		a := game.NewEntity(0, 0, 1, 1)
		b := game.NewEntity(0, 0, 1, 1)
		s.Add(a, 0)
		s.Add(b, 0)

		var visited []*game.Entity
		s.Traverse(func(e *game.Entity) {
			visited = append(visited, e)
			if e == a {
				s.Remove(b)
				assert.True(t, s.Contains(b))
			}
		})

		assert.Equal(t, []*game.Entity{a, b}, visited)
		assert.Equal(t, []*game.Entity{a}, collect(s))
		assert.False(t, s.Contains(b))
	})

	t.Run("remove then add in one traversal re-registers", func(t *testing.T) {
		s := game.NewScene()
		a := game.NewEntity(0, 0, 1, 1)
		oldId := s.Add(a, 0)

		var readdId game.EntityId
		s.Traverse(func(e *game.Entity) {
			s.Remove(a)
			readdId = s.Add(a, 2)
		})

		assert.Zero(t, readdId, "the id is only known after the traversal")
		assert.True(t, s.Contains(a))
		assert.NotEqual(t, oldId, a.ID())
		got, ok := s.Get(a.ID())
		assert.True(t, ok)
		assert.Same(t, a, got)
		_, ok = s.Get(oldId)
		assert.False(t, ok)
		assert.Equal(t, 2, a.Layer)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("defer runs after traversal", func(t *testing.T) {
		s := game.NewScene()
		s.Add(game.NewEntity(0, 0, 1, 1), 0)
		s.Add(game.NewEntity(0, 0, 1, 1), 0)

		var trace []string
		s.Traverse(func(e *game.Entity) {
			trace = append(trace, "visit")
			s.Defer(func() { trace = append(trace, "deferred") })
		})

		assert.Equal(t, []string{"visit", "visit", "deferred", "deferred"}, trace)
		assert.False(t, s.Traversing())

		s.Defer(func() { trace = append(trace, "now") })
		assert.Equal(t, "now", trace[len(trace)-1])
	})
}
