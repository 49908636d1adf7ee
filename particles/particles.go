// Package particles simulates short-lived points: a System holds particles added
// by the caller, an Emitter spawns them at a fixed rate.
// Both can be attached to an entity as an update stage and used as its draw hook.
package particles

import (
	"image/color"
	"math/rand/v2"

	"github.com/plus3/stagecraft/game"
	"github.com/plus3/stagecraft/vmath"
)

// Stage kinds. An entity holds at most one System and one Emitter; attaching a
// second one of the same type replaces the first.
const (
	KindParticles game.StageKind = "particles"
	KindEmitter   game.StageKind = "emitter"
)

// Particle moves in a straight line until its lifetime runs out
type Particle struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Lifetime float64
	Color    color.Color
}

// Update advances the particle and reports whether it is still alive
func (p *Particle) Update(dt float64) bool {
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.Lifetime -= dt
	return p.Lifetime > 0
}

// System is a bag of particles drawn as circles
type System struct {
	Radius    float64
	particles []Particle
}

var _ game.Stage = (*System)(nil)

func NewSystem() *System {
	return &System{Radius: 3}
}

func (s *System) Add(p Particle) {
	s.particles = append(s.particles, p)
}

// Len returns the number of live particles
func (s *System) Len() int {
	return len(s.particles)
}

// Particles returns the live particles. The slice is reused by the next Update.
func (s *System) Particles() []Particle {
	return s.particles
}

// Update advances every particle and drops the dead ones
func (s *System) Update(dt float64) {
	s.particles = advance(s.particles, dt)
}

func (s *System) Draw(surface game.Surface) {
	for _, p := range s.particles {
		surface.FillCircle(p.Position.X, p.Position.Y, s.Radius, colorOr(p.Color, color.White))
	}
}

func (s *System) Kind() game.StageKind {
	return KindParticles
}

func (s *System) Advance(e *game.Entity, dt float64) {
	s.Update(dt)
}

// DrawHook has the game.DrawFunc signature
func (s *System) DrawHook(e *game.Entity, surface game.Surface) {
	s.Draw(surface)
}

// Burst adds n particles at origin flying in random directions
func (s *System) Burst(rng *rand.Rand, origin vmath.Vec2, n int, minSpeed, maxSpeed, lifetime float64, c color.Color) {
	for range n {
		speed := vmath.RandomRange(rng, minSpeed, maxSpeed)
		s.Add(Particle{
			Position: origin,
			Velocity: vmath.RandomDirection(rng).Scale(speed),
			Lifetime: lifetime,
			Color:    c,
		})
	}
}

// advance updates particles in place and compacts the survivors to the front
func advance(particles []Particle, dt float64) []Particle {
	n := 0
	for i := range particles {
		if particles[i].Update(dt) {
			particles[n] = particles[i]
			n++
		}
	}
	clear(particles[n:])
	return particles[:n]
}

func colorOr(c, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}
