package game_test

import (
	"testing"

	"github.com/plus3/stagecraft/game"
	"github.com/plus3/stagecraft/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhysicsStage(t *testing.T) {
	t.Run("gravity is integrated before position", func(t *testing.T) {
		e := game.NewEntity(0, 0, 10, 10)
		game.AddPhysics(e, game.PhysicsConfig{Gravity: 10})

		e.Update(1.0)

		assert.Equal(t, vmath.Vec2{X: 0, Y: 10}, e.Velocity)
		assert.Equal(t, 0.0, e.X)
		assert.Equal(t, 10.0, e.Y)
	})

	t.Run("existing velocity is kept", func(t *testing.T) {
		e := game.NewEntity(0, 0, 10, 10)
		e.Velocity = vmath.Vec2{X: 4, Y: 0}
		game.AddPhysics(e, game.PhysicsConfig{Gravity: 2, Bounce: 0.25})

		assert.Equal(t, vmath.Vec2{X: 4, Y: 0}, e.Velocity)
		assert.Equal(t, 2.0, e.Gravity)
		assert.Equal(t, 0.25, e.Bounce)

		e.Update(0.5)

		assert.Equal(t, 2.0, e.X)
		assert.Equal(t, 1.0, e.Velocity.Y)
		assert.Equal(t, 0.5, e.Y)
	})

	t.Run("adding physics twice integrates once", func(t *testing.T) {
		e := game.NewEntity(0, 0, 10, 10)
		game.AddPhysics(e, game.PhysicsConfig{Gravity: 10})
		game.AddPhysics(e, game.PhysicsConfig{Gravity: 10})

		e.Update(1.0)

		assert.Equal(t, []game.StageKind{game.KindPhysics}, e.Stages())
		assert.Equal(t, 10.0, e.Velocity.Y, "gravity must be applied once per update")
		assert.Equal(t, 10.0, e.Y)
	})

	t.Run("re-adding physics updates configuration", func(t *testing.T) {
		e := game.NewEntity(0, 0, 10, 10)
		game.AddPhysics(e, game.PhysicsConfig{Gravity: 10, Bounce: 0.1})
		game.AddPhysics(e, game.PhysicsConfig{Gravity: 3, Bounce: 0.9})

		assert.Equal(t, 3.0, e.Gravity)
		assert.Equal(t, 0.9, e.Bounce)
	})
}

func TestCollisionStage(t *testing.T) {
	ground := game.StaticCollider{X: -100, Y: 100, Width: 1000, Height: 50}

	t.Run("landing snaps onto the obstacle", func(t *testing.T) {
		e := game.NewEntity(0, 70, 10, 20)
		game.AddPhysics(e, game.PhysicsConfig{Gravity: 100})
		game.EnableCollision(e, []game.Collider{ground}, game.CollisionConfig{})
		e.Velocity.Y = 50

		// 70 + (50+100*0.1)*0.1 = 76 -> bottom 96, not yet touching
		e.Update(0.1)
		require.InDelta(t, 76.0, e.Y, 1e-9)

		// 76 + (60+10)*0.1 = 83 -> bottom 103 overlaps the ground
		e.Update(0.1)

		assert.Equal(t, 80.0, e.Y)
		assert.Equal(t, 0.0, e.Velocity.Y)
	})

	t.Run("bounce reflects scaled velocity", func(t *testing.T) {
		e := game.NewEntity(0, 85, 10, 20)
		e.Bounce = 0.5
		e.Velocity.Y = 10
		game.EnableCollision(e, []game.Collider{ground}, game.CollisionConfig{Bounce: true})

		e.Update(0.016)

		assert.Equal(t, -5.0, e.Velocity.Y)
		assert.Equal(t, 85.0, e.Y, "bouncing does not move the entity")
	})

	t.Run("touching edge does not collide", func(t *testing.T) {
		e := game.NewEntity(0, 80, 10, 20)
		e.Velocity.Y = 7
		game.EnableCollision(e, []game.Collider{ground}, game.CollisionConfig{})

		e.Update(0.016)

		assert.Equal(t, 7.0, e.Velocity.Y)
		assert.Equal(t, 80.0, e.Y)
	})

	t.Run("last overlapping obstacle wins", func(t *testing.T) {
		upper := game.StaticCollider{X: 0, Y: 50, Width: 10, Height: 100}
		lower := game.StaticCollider{X: 0, Y: 60, Width: 10, Height: 100}

		e := game.NewEntity(0, 55, 10, 20)
		game.EnableCollision(e, []game.Collider{lower, upper}, game.CollisionConfig{})

		// lower snaps to 40, which still overlaps upper, which snaps to 30
		e.Update(0.016)

		assert.Equal(t, 30.0, e.Y)
	})

	t.Run("obstacles are copied", func(t *testing.T) {
		obstacles := []game.Collider{game.StaticCollider{X: 500, Y: 500, Width: 1, Height: 1}}
		e := game.NewEntity(0, 0, 10, 10)
		stage := game.EnableCollision(e, obstacles, game.CollisionConfig{})

		obstacles[0] = game.StaticCollider{X: 0, Y: 0, Width: 10, Height: 10}

		assert.Equal(t, vmath.Rect{X: 500, Y: 500, Width: 1, Height: 1}, stage.Obstacles[0].Bounds())
	})
}

func TestStagePipeline(t *testing.T) {
	t.Run("stages run in attachment order", func(t *testing.T) {
		var trace []string

		e := game.NewEntity(0, 0, 1, 1)
		e.OnUpdate(func(e *game.Entity, dt float64) {
			trace = append(trace, "user")
		})
		game.AddPhysics(e, game.PhysicsConfig{})
		game.EnableCollision(e, nil, game.CollisionConfig{})

		assert.Equal(t, []game.StageKind{game.KindUser, game.KindPhysics, game.KindCollision}, e.Stages())

		e.Update(1)
		assert.Equal(t, []string{"user"}, trace)
	})

	t.Run("physics then collision resolves after integration", func(t *testing.T) {
		e := game.NewEntity(0, 75, 10, 20)
		game.AddPhysics(e, game.PhysicsConfig{Gravity: 1000})
		game.EnableCollision(e, []game.Collider{game.StaticCollider{X: 0, Y: 100, Width: 10, Height: 10}}, game.CollisionConfig{})

		e.Update(0.1)

		assert.Equal(t, 80.0, e.Y)
		assert.Equal(t, 0.0, e.Velocity.Y)
	})

	t.Run("collision then physics integrates after resolving", func(t *testing.T) {
		e := game.NewEntity(0, 85, 10, 20)
		game.EnableCollision(e, []game.Collider{game.StaticCollider{X: 0, Y: 100, Width: 10, Height: 10}}, game.CollisionConfig{})
		game.AddPhysics(e, game.PhysicsConfig{Gravity: 10})

		e.Update(1)

		assert.Equal(t, 10.0, e.Velocity.Y)
		assert.Equal(t, 90.0, e.Y)
	})

	t.Run("replacing a stage keeps its position", func(t *testing.T) {
		var trace []string

		e := game.NewEntity(0, 0, 1, 1)
		e.OnUpdate(func(e *game.Entity, dt float64) { trace = append(trace, "first") })
		game.AddPhysics(e, game.PhysicsConfig{})
		e.OnUpdate(func(e *game.Entity, dt float64) { trace = append(trace, "second") })

		assert.Equal(t, []game.StageKind{game.KindUser, game.KindPhysics}, e.Stages())

		e.Update(1)
		assert.Equal(t, []string{"second"}, trace)
	})

	t.Run("detach", func(t *testing.T) {
		e := game.NewEntity(0, 0, 1, 1)
		game.AddPhysics(e, game.PhysicsConfig{Gravity: 10})

		assert.True(t, e.HasStage(game.KindPhysics))
		assert.True(t, e.Detach(game.KindPhysics))
		assert.False(t, e.Detach(game.KindPhysics))
		assert.False(t, e.HasStage(game.KindPhysics))

		e.Update(1)
		assert.Equal(t, 0.0, e.Velocity.Y)
	})
}

func TestCheckCollision(t *testing.T) {
	a := game.NewEntity(0, 0, 10, 10)
	b := game.NewEntity(10, 0, 10, 10)
	c := game.NewEntity(9, 9, 10, 10)

	assert.False(t, game.CheckCollision(a, b))
	assert.False(t, game.CheckCollision(b, a))
	assert.True(t, game.CheckCollision(a, c))
	assert.True(t, game.CheckCollision(c, a))
	assert.True(t, game.CheckCollision(a, game.StaticCollider{X: 5, Y: 5, Width: 1, Height: 1}))
}
