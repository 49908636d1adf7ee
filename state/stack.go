package state

// State is one entry of a Stack
type State func()

// Stack runs only its most recently pushed state
type Stack struct {
	states []State
}

func (s *Stack) Push(state State) {
	s.states = append(s.states, state)
}

// Pop removes the top state. Popping an empty stack does nothing.
func (s *Stack) Pop() {
	if n := len(s.states); n > 0 {
		s.states[n-1] = nil
		s.states = s.states[:n-1]
	}
}

// Run invokes the top state, if any
func (s *Stack) Run() {
	if n := len(s.states); n > 0 && s.states[n-1] != nil {
		s.states[n-1]()
	}
}

func (s *Stack) Len() int {
	return len(s.states)
}
