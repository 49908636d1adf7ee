package game

// Commands buffers scene mutations requested during a traversal.
// They are applied in request order when the traversal completes, followed by deferred functions.
type Commands struct {
	ops    []sceneOp
	defers []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type opKind uint8

const (
	opInsert opKind = iota
	opRemove
)

type sceneOp struct {
	kind   opKind
	entity *Entity
}

type deferCommand struct {
	fn func()
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

func (c *Commands) insert(e *Entity) {
	c.ops = append(c.ops, sceneOp{kind: opInsert, entity: e})
}

func (c *Commands) remove(e *Entity) {
	c.ops = append(c.ops, sceneOp{kind: opRemove, entity: e})
}

// removing reports whether the latest queued operation on e is a removal
func (c *Commands) removing(e *Entity) bool {
	for i := len(c.ops) - 1; i >= 0; i-- {
		if c.ops[i].entity == e {
			return c.ops[i].kind == opRemove
		}
	}
	return false
}

// Pending returns the number of queued operations
func (c *Commands) Pending() int {
	return len(c.ops) + len(c.defers)
}

// Flush applies all queued operations to the scene, resetting the buffer state
func (c *Commands) Flush(s *Scene) {
	for _, op := range c.ops {
		switch op.kind {
		case opInsert:
			s.insert(op.entity)
		case opRemove:
			s.delete(op.entity)
		}
	}

	// Deferred functions may queue more work, so run them from a detached slice
	defers := c.defers
	c.defers = nil
	for _, df := range defers {
		df.fn()
	}

	clear(c.ops)
	c.ops = c.ops[:0]
}
