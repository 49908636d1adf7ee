package game

import (
	"cmp"
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
)

// Scene owns the entity arena and the render order index.
// The render order is kept sorted by Layer ascending; entities sharing a layer keep
// their insertion order.
type Scene struct {
	entities    *intmap.Map[EntityId, *Entity]
	generations []uint32
	free        []uint32
	order       []EntityId
	snapshot    []EntityId

	commands   *Commands
	traversing bool
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{
		entities: intmap.New[EntityId, *Entity](256),
		commands: newCommands(),
	}
}

// Add registers e at the given layer and inserts it into the render order.
// The layer and the event channel are assigned immediately; while a traversal is running
// the insertion itself is deferred until the traversal completes.
// Adding an entity that is already registered moves it to the end of its new layer.
// If a removal of e is queued in the same traversal, the entity gets a new id when the
// traversal completes; Add returns 0 in that case and ID reports the new id afterwards.
func (s *Scene) Add(e *Entity, layer int) EntityId {
	if e == nil {
		panic("cannot add nil entity")
	}
	if e.scene != nil && e.scene != s {
		panic("entity is registered with another scene")
	}

	e.Layer = layer
	e.AttachEvents()
	s.register(e)

	if s.traversing {
		readded := s.commands.removing(e)
		s.commands.insert(e)
		if readded {
			return 0
		}
		return e.id
	}

	s.insert(e)
	return e.id
}

// Remove unregisters e. Its id stops resolving, its layer and events are untouched.
// Removing an entity that is not registered is a no-op.
func (s *Scene) Remove(e *Entity) {
	if e == nil || e.scene != s {
		return
	}

	if s.traversing {
		s.commands.remove(e)
		return
	}

	s.delete(e)
}

// Get resolves an id to its entity
func (s *Scene) Get(id EntityId) (*Entity, bool) {
	if id == 0 {
		return nil, false
	}
	return s.entities.Get(id)
}

// Contains reports whether e is registered with this scene
func (s *Scene) Contains(e *Entity) bool {
	return e != nil && e.scene == s
}

// Len returns the number of entities in the render order
func (s *Scene) Len() int {
	return len(s.order)
}

// Ordered iterates the entities in render order
func (s *Scene) Ordered() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for _, id := range s.order {
			e, ok := s.entities.Get(id)
			if !ok {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Sort stably re-sorts the render order by layer.
// Add calls it after every insertion; call it directly after changing Layer by hand.
func (s *Scene) Sort() {
	slices.SortStableFunc(s.order, func(a, b EntityId) int {
		return cmp.Compare(s.layerOf(a), s.layerOf(b))
	})
}

// Traversing reports whether a traversal is in progress
func (s *Scene) Traversing() bool {
	return s.traversing
}

// Traverse visits the render order as it was when the traversal started.
// Add and Remove requests made by fn are applied, in request order, once every entity has been visited.
func (s *Scene) Traverse(fn func(e *Entity)) {
	if s.traversing {
		panic("scene traversal is not reentrant")
	}

	s.snapshot = append(s.snapshot[:0], s.order...)
	s.traversing = true

	defer func() {
		s.traversing = false
		s.commands.Flush(s)
	}()

	for _, id := range s.snapshot {
		if e, ok := s.entities.Get(id); ok {
			fn(e)
		}
	}
}

// Defer runs fn after the current traversal, or immediately when no traversal is running
func (s *Scene) Defer(fn func()) {
	if s.traversing {
		s.commands.Defer(fn)
		return
	}
	fn()
}

func (s *Scene) register(e *Entity) {
	if e.scene == s {
		return
	}

	var index uint32
	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		index = uint32(len(s.generations))
		s.generations = append(s.generations, 1)
	}

	e.id = NewEntityId(s.generations[index], index)
	e.scene = s
	s.entities.Put(e.id, e)
}

func (s *Scene) insert(e *Entity) {
	s.register(e)
	s.order = slices.DeleteFunc(s.order, func(id EntityId) bool { return id == e.id })
	s.order = append(s.order, e.id)
	s.Sort()
}

func (s *Scene) delete(e *Entity) {
	if e.scene != s {
		return
	}

	id := e.id
	s.order = slices.DeleteFunc(s.order, func(o EntityId) bool { return o == id })
	s.entities.Del(id)

	index := id.Index()
	s.generations[index]++
	if s.generations[index] == 0 {
		s.generations[index] = 1
	}
	s.free = append(s.free, index)

	e.id = 0
	e.scene = nil
}

func (s *Scene) layerOf(id EntityId) int {
	e, ok := s.entities.Get(id)
	if !ok {
		return 0
	}
	return e.Layer
}
