package particles

import (
	"image/color"

	"github.com/plus3/stagecraft/game"
	"github.com/plus3/stagecraft/vmath"
)

// SpawnFunc creates a particle at the emitter's position
type SpawnFunc func(origin vmath.Vec2) Particle

// Emitter spawns one particle every Rate seconds and draws them as small squares
type Emitter struct {
	Position vmath.Vec2
	Rate     float64
	Spawn    SpawnFunc
	Size     float64
	Color    color.Color

	// Follow moves the emitter to the owning entity's center before spawning
	Follow bool

	elapsed   float64
	particles []Particle
}

var _ game.Stage = (*Emitter)(nil)

// NewEmitter creates an emitter spawning every rate seconds. A rate <= 0 never spawns.
func NewEmitter(position vmath.Vec2, rate float64, spawn SpawnFunc) *Emitter {
	return &Emitter{
		Position: position,
		Rate:     rate,
		Spawn:    spawn,
		Size:     2,
		Color:    color.White,
	}
}

// Len returns the number of live particles
func (em *Emitter) Len() int {
	return len(em.particles)
}

func (em *Emitter) Particles() []Particle {
	return em.particles
}

// Update spawns every particle due since the last update, then advances all of them, new ones included
func (em *Emitter) Update(dt float64) {
	em.elapsed += dt
	if em.Rate > 0 && em.Spawn != nil {
		for em.elapsed > em.Rate {
			em.particles = append(em.particles, em.Spawn(em.Position))
			em.elapsed -= em.Rate
		}
	}

	em.particles = advance(em.particles, dt)
}

func (em *Emitter) Draw(surface game.Surface) {
	for _, p := range em.particles {
		surface.FillRect(p.Position.X, p.Position.Y, em.Size, em.Size, colorOr(p.Color, em.Color))
	}
}

func (em *Emitter) Kind() game.StageKind {
	return KindEmitter
}

func (em *Emitter) Advance(e *game.Entity, dt float64) {
	if em.Follow {
		em.Position = vmath.Vec2{X: e.X + e.Width/2, Y: e.Y + e.Height/2}
	}
	em.Update(dt)
}

// DrawHook has the game.DrawFunc signature
func (em *Emitter) DrawHook(e *game.Entity, surface game.Surface) {
	em.Draw(surface)
}
