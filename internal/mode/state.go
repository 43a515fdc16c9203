package mode

// State holds the currently active mode. All mode buttons share a single
// State and write to it when toggled. It is deliberately unsynchronized: the
// control loop is the only goroutine that polls buttons and reads the mode,
// so writes within a poll cycle are serialized by call order.
type State struct {
	current Mode
}

func NewState(initial Mode) *State {
	return &State{current: initial}
}

func (s *State) Current() Mode {
	return s.current
}

func (s *State) Set(m Mode) {
	s.current = m
}
