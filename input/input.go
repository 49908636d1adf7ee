// Package input tracks which keys and gamepad buttons are held down.
// A backend feeds it once per frame; entity hooks query it by name or index.
package input

import "sync"

// Manager is a pressed-state registry for keys and gamepad buttons
type Manager struct {
	mu      sync.RWMutex
	keys    map[string]bool
	buttons map[int]bool
}

func NewManager() *Manager {
	return &Manager{
		keys:    make(map[string]bool),
		buttons: make(map[int]bool),
	}
}

// IsKeyPressed reports whether the named key is held. Unknown keys are not pressed.
func (m *Manager) IsKeyPressed(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.keys[key]
}

// IsGamepadButtonPressed reports whether the button at index is held on the primary gamepad
func (m *Manager) IsGamepadButtonPressed(index int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.buttons[index]
}

// SetKey records a key transition
func (m *Manager) SetKey(key string, pressed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[key] = pressed
}

// SetButton records a gamepad button transition
func (m *Manager) SetButton(index int, pressed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buttons[index] = pressed
}

// SetPressedKeys replaces the key state with a full poll: only the given keys are pressed
func (m *Manager) SetPressedKeys(keys []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.keys)
	for _, k := range keys {
		m.keys[k] = true
	}
}

// SetPressedButtons replaces the gamepad state with a full poll
func (m *Manager) SetPressedButtons(buttons []int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.buttons)
	for _, b := range buttons {
		m.buttons[b] = true
	}
}

// PressedKeys returns the names of all held keys, in no particular order
func (m *Manager) PressedKeys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.keys))
	for k, pressed := range m.keys {
		if pressed {
			keys = append(keys, k)
		}
	}
	return keys
}

// Axis returns -1, 0 or 1 from a pair of opposing keys
func (m *Manager) Axis(negative, positive string) float64 {
	var v float64
	if m.IsKeyPressed(negative) {
		v--
	}
	if m.IsKeyPressed(positive) {
		v++
	}
	return v
}
