package demo

import (
	"slices"
	"time"
)

// KeySource emulates key lifetime on top of terminal input. Terminals
// deliver presses and auto-repeats but no release events, so a key is
// modeled as down from its first press until no press has been seen for
// the hold window. Auto-repeat restamps the key and keeps it down without
// producing a second down edge.
//
// Not safe for concurrent use.
type KeySource struct {
	hold time.Duration
	last map[string]time.Time
}

// NewKeySource creates a source with the given hold window. Non-positive
// values fall back to DefaultHold.
func NewKeySource(hold time.Duration) *KeySource {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &KeySource{
		hold: hold,
		last: make(map[string]time.Time),
	}
}

// Press records a press or auto-repeat of name at the given time. Returns
// true when this press is a fresh down edge, false when the key was
// already down and has merely been restamped.
func (s *KeySource) Press(name string, now time.Time) bool {
	_, down := s.last[name]
	s.last[name] = now
	return !down
}

// Expire removes every key whose last press is older than the hold window
// and returns their names sorted. Each returned name is an up edge.
func (s *KeySource) Expire(now time.Time) []string {
	var expired []string
	for name, stamp := range s.last {
		if now.Sub(stamp) > s.hold {
			expired = append(expired, name)
		}
	}
	for _, name := range expired {
		delete(s.last, name)
	}
	slices.Sort(expired)
	return expired
}

// Down reports whether name is currently down.
func (s *KeySource) Down(name string) bool {
	_, down := s.last[name]
	return down
}

// Snapshot returns the names of all currently down keys, sorted.
func (s *KeySource) Snapshot() []string {
	names := make([]string, 0, len(s.last))
	for name := range s.last {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of keys currently down.
func (s *KeySource) Len() int {
	return len(s.last)
}

// Reset drops all tracked keys without emitting up edges.
func (s *KeySource) Reset() {
	clear(s.last)
}
