package main

import (
	"image/color"
	"math/rand/v2"

	"github.com/plus3/stagecraft/game"
	"github.com/plus3/stagecraft/particles"
	"github.com/plus3/stagecraft/tilemap"
	"github.com/plus3/stagecraft/vmath"
	"golang.org/x/image/colornames"
)

const (
	tileSize     = 16
	groundTile   = 1
	eventRespawn = "stress:respawn"
)

var palette = []color.Color{
	colornames.Tomato,
	colornames.Gold,
	colornames.Mediumseagreen,
	colornames.Steelblue,
	colornames.Orchid,
}

type world struct {
	rng       *rand.Rand
	bounds    vmath.Rect
	colliders []game.Collider
	respawns  int
}

// populate fills g with a noise-generated floor and count bouncing boxes.
// Boxes that leave the world are removed and replaced by a fresh one.
func populate(g *game.Game, count, emitterEvery int, seed uint64) *world {
	cfg := g.Config()
	columns := cfg.Width * 2 / tileSize
	rows := cfg.Height / tileSize

	floor := &tilemap.Tilemap{
		TileWidth:  tileSize,
		TileHeight: tileSize,
		Data:       tilemap.Ground(columns, rows, max(2, rows/4), rows/8, groundTile, int64(seed)),
	}
	width, height := floor.Size()

	w := &world{
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		bounds:    vmath.Rect{Width: width, Height: height},
		colliders: floor.Colliders(0, 0, tilemap.AnyTile),
	}

	ground := game.NewEntity(0, 0, width, height)
	ground.Draw = func(e *game.Entity, s game.Surface) {
		for _, c := range w.colliders {
			b := c.Bounds()
			s.FillRect(b.X, b.Y, b.Width, b.Height, colornames.Saddlebrown)
		}
	}
	g.Add(ground, 0)

	g.On(eventRespawn, func(payload any) {
		w.respawns++
	})

	var first *game.Entity
	for i := range count {
		e := w.spawn(g, emitterEvery > 0 && i%emitterEvery == 0)
		if first == nil {
			first = e
		}
	}

	if first != nil {
		g.SetCamera(game.CameraConfig{Target: first.ID(), Bounds: &w.bounds, Zoom: 1})
	}
	return w
}

func (w *world) spawn(g *game.Game, withEmitter bool) *game.Entity {
	size := vmath.RandomRange(w.rng, 4, 12)
	e := game.NewEntity(
		vmath.RandomRange(w.rng, 0, w.bounds.Width-size),
		vmath.RandomRange(w.rng, 0, w.bounds.Height/2),
		size, size,
	)
	e.Velocity = vmath.Vec2{X: vmath.RandomRange(w.rng, -80, 80)}

	game.AddPhysics(e, game.PhysicsConfig{
		Gravity: vmath.RandomRange(w.rng, 200, 600),
		Bounce:  vmath.RandomRange(w.rng, 0.3, 0.9),
	})
	game.EnableCollision(e, w.colliders, game.CollisionConfig{Bounce: true})

	fill := palette[vmath.RandomInt(w.rng, 0, len(palette))]

	var emitter *particles.Emitter
	if withEmitter {
		emitter = particles.NewEmitter(e.Position(), 0.05, func(origin vmath.Vec2) particles.Particle {
			return particles.Particle{
				Position: origin,
				Velocity: vmath.RandomDirection(w.rng).Scale(30),
				Lifetime: 0.5,
			}
		})
		emitter.Follow = true
		emitter.Color = fill
		e.Attach(emitter)
	}

	e.OnUpdate(func(e *game.Entity, dt float64) {
		if w.bounds.Overlaps(e.Bounds()) {
			return
		}
		g.Remove(e)
		w.spawn(g, withEmitter)
		g.Emit(eventRespawn, e.ID())
	})

	e.Draw = func(e *game.Entity, s game.Surface) {
		s.FillRect(e.X, e.Y, e.Width, e.Height, fill)
		if emitter != nil {
			emitter.Draw(s)
		}
	}

	g.Add(e, 1)
	return e
}
