package game

import "slices"

// KindPhysicsWorld is the stage kind of a PhysicsWorld attached to a driver entity
const KindPhysicsWorld StageKind = "physics-world"

// PhysicsWorld integrates a set of bodies together. Each step moves a body by its
// velocity, then applies its gravity, then stops it if it overlaps any other body.
// Bodies are processed in insertion order, so a body is tested against others that
// may or may not have moved yet this step.
type PhysicsWorld struct {
	bodies []*Entity
}

var _ Stage = (*PhysicsWorld)(nil)

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{}
}

// Add registers a body. Adding the same entity twice is a no-op.
func (w *PhysicsWorld) Add(e *Entity) {
	if e == nil || slices.Contains(w.bodies, e) {
		return
	}
	w.bodies = append(w.bodies, e)
}

// Remove unregisters a body and reports whether it was present
func (w *PhysicsWorld) Remove(e *Entity) bool {
	before := len(w.bodies)
	w.bodies = slices.DeleteFunc(w.bodies, func(b *Entity) bool { return b == e })
	return len(w.bodies) != before
}

// Bodies returns the registered bodies in processing order
func (w *PhysicsWorld) Bodies() []*Entity {
	return slices.Clone(w.bodies)
}

// Step advances every body by dt seconds
func (w *PhysicsWorld) Step(dt float64) {
	for _, body := range w.bodies {
		body.X += body.Velocity.X * dt
		body.Y += body.Velocity.Y * dt
		body.Velocity.Y += body.Gravity * dt

		for _, other := range w.bodies {
			if other != body && CheckCollision(body, other) {
				body.Velocity.X = 0
				body.Velocity.Y = 0
			}
		}
	}
}

func (w *PhysicsWorld) Kind() StageKind {
	return KindPhysicsWorld
}

// Advance steps the whole world; the entity it is attached to only drives the timing
func (w *PhysicsWorld) Advance(e *Entity, dt float64) {
	w.Step(dt)
}
