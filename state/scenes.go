// Package state switches between named game scenes and keeps a stack of states.
package state

import (
	"errors"
	"fmt"

	"github.com/plus3/stagecraft/game"
)

// ErrSceneNotFound is returned by SetActive for an unregistered name
var ErrSceneNotFound = errors.New("scene not found")

// KindScenes is the stage kind of a Scenes manager attached to an entity
const KindScenes game.StageKind = "scenes"

// SceneFunc runs one tick of a scene
type SceneFunc func(dt float64)

// Scenes runs whichever registered scene is active
type Scenes struct {
	scenes map[string]SceneFunc
	active string

	// OnChange is called after the active scene changes
	OnChange func(from, to string)
}

var _ game.Stage = (*Scenes)(nil)

func NewScenes() *Scenes {
	return &Scenes{scenes: make(map[string]SceneFunc)}
}

// Add registers scene under name, replacing any previous scene with that name
func (s *Scenes) Add(name string, scene SceneFunc) {
	s.scenes[name] = scene
}

// SetActive selects the scene run by Update. On error the active scene is unchanged.
func (s *Scenes) SetActive(name string) error {
	if _, ok := s.scenes[name]; !ok {
		return fmt.Errorf("set active %q: %w", name, ErrSceneNotFound)
	}

	from := s.active
	s.active = name
	if s.OnChange != nil && from != name {
		s.OnChange(from, name)
	}
	return nil
}

// Active returns the active scene name, or "" before the first SetActive
func (s *Scenes) Active() string {
	return s.active
}

// Update runs the active scene, if any
func (s *Scenes) Update(dt float64) {
	if scene, ok := s.scenes[s.active]; ok {
		scene(dt)
	}
}

func (s *Scenes) Kind() game.StageKind {
	return KindScenes
}

func (s *Scenes) Advance(e *game.Entity, dt float64) {
	s.Update(dt)
}
