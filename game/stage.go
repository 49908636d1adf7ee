package game

// StageKind identifies a stage in an entity's update pipeline.
// Only one stage per kind can be attached to an entity.
type StageKind string

const (
	KindPhysics   StageKind = "physics"
	KindCollision StageKind = "collision"
	KindUser      StageKind = "update"
)

// Stage is one step of an entity's update pipeline
type Stage interface {
	Kind() StageKind
	Advance(e *Entity, dt float64)
}

// UpdateFunc adapts a plain function into the user stage
type UpdateFunc func(e *Entity, dt float64)

func (f UpdateFunc) Kind() StageKind {
	return KindUser
}

func (f UpdateFunc) Advance(e *Entity, dt float64) {
	f(e, dt)
}

// PhysicsConfig configures AddPhysics
type PhysicsConfig struct {
	Gravity float64
	Bounce  float64
}

// PhysicsStage integrates gravity into velocity, then velocity into position
type PhysicsStage struct{}

func (PhysicsStage) Kind() StageKind {
	return KindPhysics
}

func (PhysicsStage) Advance(e *Entity, dt float64) {
	e.Velocity.Y += e.Gravity * dt

	e.X += e.Velocity.X * dt
	e.Y += e.Velocity.Y * dt
}

// AddPhysics sets the entity's gravity and bounce and attaches a PhysicsStage.
// The current velocity is kept. Calling it again only updates the configuration.
func AddPhysics(e *Entity, cfg PhysicsConfig) {
	e.Gravity = cfg.Gravity
	e.Bounce = cfg.Bounce
	e.Attach(PhysicsStage{})
}

// CollisionConfig configures EnableCollision
type CollisionConfig struct {
	// Bounce reflects vertical velocity scaled by the entity's Bounce instead of landing
	Bounce bool
}

// CollisionStage resolves overlaps against a fixed set of obstacles.
// Every overlapping obstacle applies its correction in order, the last one wins.
type CollisionStage struct {
	Obstacles []Collider
	Bounce    bool
}

func (c *CollisionStage) Kind() StageKind {
	return KindCollision
}

func (c *CollisionStage) Advance(e *Entity, dt float64) {
	for _, obstacle := range c.Obstacles {
		if !CheckCollision(e, obstacle) {
			continue
		}

		if c.Bounce {
			e.Velocity.Y *= -e.Bounce
		} else {
			e.Velocity.Y = 0
			e.Y = obstacle.Bounds().Y - e.Height
		}
	}
}

// EnableCollision attaches a CollisionStage resolving against obstacles.
// The obstacle slice is copied; later appends by the caller are not seen.
func EnableCollision(e *Entity, obstacles []Collider, cfg CollisionConfig) *CollisionStage {
	stage := &CollisionStage{
		Obstacles: append([]Collider(nil), obstacles...),
		Bounce:    cfg.Bounce,
	}
	e.Attach(stage)
	return stage
}
