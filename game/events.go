package game

// Handler receives the payload of an emitted event
type Handler func(payload any)

// Subscription identifies a single handler registration on an EventChannel
type Subscription struct {
	Event string
	id    uint64
}

type registration struct {
	id      uint64
	handler Handler
}

// EventChannel maps event names to ordered handler lists.
// The same type backs the world channel and every per-entity channel.
type EventChannel struct {
	handlers map[string][]registration
	nextId   uint64
}

// NewEventChannel creates an empty event channel
func NewEventChannel() *EventChannel {
	return &EventChannel{
		handlers: make(map[string][]registration),
	}
}

// On registers handler for event. Registering the same handler twice makes it run twice.
func (c *EventChannel) On(event string, handler Handler) Subscription {
	c.nextId++
	c.handlers[event] = append(c.handlers[event], registration{id: c.nextId, handler: handler})
	return Subscription{Event: event, id: c.nextId}
}

// Off removes the registration identified by sub. Returns false if it was not registered.
func (c *EventChannel) Off(sub Subscription) bool {
	regs := c.handlers[sub.Event]
	for i, reg := range regs {
		if reg.id != sub.id {
			continue
		}

		// Copy so an Emit iterating the old slice is unaffected
		next := make([]registration, 0, len(regs)-1)
		next = append(next, regs[:i]...)
		next = append(next, regs[i+1:]...)

		if len(next) == 0 {
			delete(c.handlers, sub.Event)
		} else {
			c.handlers[sub.Event] = next
		}
		return true
	}
	return false
}

// Emit invokes every handler registered for event, in registration order.
// Handlers added or removed while emitting take effect from the next Emit.
func (c *EventChannel) Emit(event string, payload any) {
	regs := c.handlers[event]
	n := len(regs)
	for i := 0; i < n; i++ {
		regs[i].handler(payload)
	}
}

// Listeners returns the number of registrations for event
func (c *EventChannel) Listeners(event string) int {
	return len(c.handlers[event])
}
