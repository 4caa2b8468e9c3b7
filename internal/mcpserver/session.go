package mcpserver

import (
	"sync"

	"github.com/verte-zerg/lumicalc/internal/calc"
)

// Session holds the calculator state shared by all tool calls of one server.
// Each call swaps the whole state under the lock.
type Session struct {
	mu    sync.Mutex
	state calc.State
}

// NewSession returns a session in the default state.
func NewSession() *Session {
	return &Session{state: calc.Default()}
}

// Press applies labels in order. If any label is unknown nothing is applied.
func (s *Session) Press(labels []string) (calc.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	for _, label := range labels {
		var err error
		next, err = calc.Press(next, label)
		if err != nil {
			return s.state, err
		}
	}
	s.state = next
	return next, nil
}

// Clear resets the session to the default state.
func (s *Session) Clear() calc.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = calc.Apply(s.state, calc.Clear)
	return s.state
}

// State returns the current state.
func (s *Session) State() calc.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
