package game

import (
	"slices"

	"github.com/plus3/stagecraft/vmath"
)

// EntityId encodes both the slot generation (upper 32 bits) and the arena index (lower 32 bits).
// The zero EntityId never refers to a registered entity.
type EntityId uint64

// NewEntityId creates an EntityId from a generation and an arena index
func NewEntityId(generation uint32, index uint32) EntityId {
	return EntityId(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the slot generation from the entity ID
func (e EntityId) Generation() uint32 {
	return uint32(e >> 32)
}

// Index extracts the arena index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// DrawFunc renders an entity onto the surface. The surface already carries the camera transform.
type DrawFunc func(e *Entity, s Surface)

// Entity is a mutable game object. It is created and owned by the caller; a Scene only
// references it between Add and Remove.
type Entity struct {
	X, Y          float64
	Width, Height float64

	// Velocity, Gravity and Bounce are integrated by the physics stage
	Velocity vmath.Vec2
	Gravity  float64
	Bounce   float64

	// Layer orders updates and draws, lower layers first. Assigned by Scene.Add.
	Layer int

	Draw DrawFunc

	id     EntityId
	scene  *Scene
	events *EventChannel
	stages []Stage
}

// NewEntity creates an entity covering the given rectangle
func NewEntity(x, y, width, height float64) *Entity {
	return &Entity{X: x, Y: y, Width: width, Height: height}
}

// ID returns the handle assigned on registration, or 0 if the entity is not registered
func (e *Entity) ID() EntityId {
	return e.id
}

// Bounds returns the entity's rectangle in world coordinates
func (e *Entity) Bounds() vmath.Rect {
	return vmath.Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

// Position returns the top-left corner as a vector
func (e *Entity) Position() vmath.Vec2 {
	return vmath.Vec2{X: e.X, Y: e.Y}
}

// Events returns the entity's event channel, or nil until one is attached
func (e *Entity) Events() *EventChannel {
	return e.events
}

// AttachEvents gives the entity an event channel if it has none and returns it
func (e *Entity) AttachEvents() *EventChannel {
	if e.events == nil {
		e.events = NewEventChannel()
	}
	return e.events
}

// Attach adds a stage to the update pipeline. A stage of a kind already present
// replaces the existing one in place, so its position in the pipeline is kept.
func (e *Entity) Attach(stage Stage) {
	kind := stage.Kind()
	for i, existing := range e.stages {
		if existing.Kind() == kind {
			e.stages[i] = stage
			return
		}
	}
	e.stages = append(e.stages, stage)
}

// Detach removes the stage of the given kind. Returns false if none was attached.
func (e *Entity) Detach(kind StageKind) bool {
	before := len(e.stages)
	e.stages = slices.DeleteFunc(e.stages, func(s Stage) bool {
		return s.Kind() == kind
	})
	return len(e.stages) != before
}

// HasStage reports whether a stage of the given kind is attached
func (e *Entity) HasStage(kind StageKind) bool {
	return slices.ContainsFunc(e.stages, func(s Stage) bool {
		return s.Kind() == kind
	})
}

// Stages returns the attached stage kinds in execution order
func (e *Entity) Stages() []StageKind {
	kinds := make([]StageKind, len(e.stages))
	for i, s := range e.stages {
		kinds[i] = s.Kind()
	}
	return kinds
}

// OnUpdate attaches fn as the entity's user update stage
func (e *Entity) OnUpdate(fn UpdateFunc) {
	e.Attach(fn)
}

// Update advances every attached stage, in attachment order
func (e *Entity) Update(dt float64) {
	for _, stage := range e.stages {
		stage.Advance(e, dt)
	}
}
