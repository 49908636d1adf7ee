// Package game is a frame-driven 2D runtime. A Game owns a Scene of entities, a Camera and a
// world event channel; each tick it follows the camera target, clears the surface, applies the
// camera transform and runs every entity's update pipeline and draw hook in layer order.
package game

import (
	"fmt"
	"image/color"

	"go.uber.org/zap"
)

// EventHookFailure is emitted on the world channel with a HookFailure payload
// whenever an entity hook panics during a tick.
const EventHookFailure = "hook:failure"

// Phase names the hook that was running when a failure occurred
type Phase string

const (
	PhaseUpdate Phase = "update"
	PhaseDraw   Phase = "draw"
)

// HookFailure describes a recovered panic from an entity hook
type HookFailure struct {
	Entity EntityId
	Phase  Phase
	Err    error
}

// Option configures a Game
type Option func(*Game)

// WithLogger sets the logger used to report hook failures
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		g.logger = loggerOrNop(logger)
	}
}

// Game is the world: entities, camera and world-level events
type Game struct {
	config     Config
	background color.Color

	scene  *Scene
	camera *Camera
	events *EventChannel
	logger *zap.Logger

	hookFailures int64
}

// New creates a game for the given configuration
func New(config Config, opts ...Option) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	background, err := ParseColor(config.Background)
	if err != nil {
		return nil, err
	}

	g := &Game{
		config:     config,
		background: background,
		scene:      NewScene(),
		camera:     newCamera(),
		events:     NewEventChannel(),
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Config returns the configuration the game was created with
func (g *Game) Config() Config {
	return g.config
}

// Scene returns the entity arena
func (g *Game) Scene() *Scene {
	return g.scene
}

// Camera returns the camera
func (g *Game) Camera() *Camera {
	return g.camera
}

// Events returns the world event channel
func (g *Game) Events() *EventChannel {
	return g.events
}

// Add registers e at layer, injecting an event channel if it has none
func (g *Game) Add(e *Entity, layer int) EntityId {
	return g.scene.Add(e, layer)
}

// Remove unregisters e. A camera following e clears its target on the next tick.
func (g *Game) Remove(e *Entity) {
	g.scene.Remove(e)
}

// Get resolves an entity handle
func (g *Game) Get(id EntityId) (*Entity, bool) {
	return g.scene.Get(id)
}

// SetCamera replaces the camera's target, bounds and zoom
func (g *Game) SetCamera(cfg CameraConfig) {
	g.camera.Set(cfg)
}

// On subscribes to a world event
func (g *Game) On(event string, handler Handler) Subscription {
	return g.events.On(event, handler)
}

// Off removes a world event subscription
func (g *Game) Off(sub Subscription) bool {
	return g.events.Off(sub)
}

// Emit publishes a world event
func (g *Game) Emit(event string, payload any) {
	g.events.Emit(event, payload)
}

// Defer runs fn once the current tick has visited every entity
func (g *Game) Defer(fn func()) {
	g.scene.Defer(fn)
}

// HookFailures returns the number of recovered hook panics so far
func (g *Game) HookFailures() int64 {
	return g.hookFailures
}

// Tick runs one frame against s with the given delta in seconds
func (g *Game) Tick(s Surface, dt float64) {
	width := float64(g.config.Width)
	height := float64(g.config.Height)

	g.camera.Follow(g.scene, width, height)

	s.ResetTransform()
	s.FillRect(0, 0, width, height, g.background)

	s.SetTransform(g.camera.Transform())

	g.scene.Traverse(func(e *Entity) {
		if len(e.stages) > 0 {
			g.runHook(e, PhaseUpdate, func() { e.Update(dt) })
		}
		if e.Draw != nil {
			g.runHook(e, PhaseDraw, func() { e.Draw(e, s) })
		}
	})
}

func (g *Game) runHook(e *Entity, phase Phase, hook func()) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("%v", r)
		}

		g.hookFailures++
		g.logger.Error("entity hook failed",
			zap.Uint64("entity", uint64(e.id)),
			zap.String("phase", string(phase)),
			zap.Int("layer", e.Layer),
			zap.Error(err),
		)
		g.events.Emit(EventHookFailure, HookFailure{Entity: e.id, Phase: phase, Err: err})
	}()

	hook()
}
