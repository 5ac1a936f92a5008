package theme

import "sync"

// Store holds the process-wide display mode. Screens receive a *Store at
// construction and read Tokens on every render, so a Toggle re-skins
// whatever is on screen at the next frame.
type Store struct {
	mu   sync.RWMutex
	mode Mode
}

func NewStore(mode Mode) *Store {
	if mode != Light {
		mode = Dark
	}
	return &Store{mode: mode}
}

func (s *Store) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *Store) Tokens() Tokens {
	return TokensFor(s.Mode())
}

// Toggle flips between dark and light and returns the new mode.
func (s *Store) Toggle() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == Dark {
		s.mode = Light
	} else {
		s.mode = Dark
	}
	return s.mode
}

func (s *Store) SetMode(mode Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}
