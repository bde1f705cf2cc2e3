package controlmap

// State is the frame-relative state of a control, scoped to the current
// reconciliation tick. StatePressed and StateReleased are exactly one tick
// wide; StateIdle and StateHeld are stable. The zero value is StateIdle.
type State uint8

const (
	// StateIdle means the control is up and was up at the previous tick.
	StateIdle State = iota

	// StatePressed means the control went down this tick.
	StatePressed

	// StateHeld means the control is down and was already down at the
	// previous tick.
	StateHeld

	// StateReleased means the control went up this tick.
	StateReleased
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePressed:
		return "Pressed"
	case StateHeld:
		return "Held"
	case StateReleased:
		return "Released"
	default:
		return "Unknown"
	}
}

// IsDown reports whether the control is down this tick (Pressed or Held).
func (s State) IsDown() bool {
	return s == StatePressed || s == StateHeld
}

// IsUp reports whether the control is up this tick (Released or Idle).
func (s State) IsUp() bool {
	return !s.IsDown()
}

// record tracks one control across ticks. down is the signal-level
// down-ness for the tick in progress; prev is the down-ness as of the last
// Advance; state and frames are recomputed by Advance.
type record struct {
	down   bool
	prev   bool
	state  State
	frames int
}

// Store holds per-control frame state. Adapters write raw down/up signals
// into it during a tick; Advance reconciles them into states once per
// tick; the host reads states afterward. The Store performs no I/O and
// owns no goroutines.
//
// The zero value is not usable; construct with NewStore.
type Store[C comparable] struct {
	records map[C]*record
}

// NewStore creates an empty control state store.
func NewStore[C comparable]() *Store[C] {
	return &Store[C]{
		records: make(map[C]*record),
	}
}

// SignalDown marks control as down for the tick in progress. Idempotent
// within a tick: any number of down signals collapse to a single Pressed
// transition, since several bound inputs may be down simultaneously.
func (s *Store[C]) SignalDown(control C) {
	r := s.records[control]
	if r == nil {
		r = &record{}
		s.records[control] = r
	}
	r.down = true
}

// SignalUp marks control as up for the tick in progress. Idempotent
// within a tick. An up signal for a control that was never down is a
// no-op.
func (s *Store[C]) SignalUp(control C) {
	if r := s.records[control]; r != nil {
		r.down = false
	}
}

// StateOf returns the control's state as of the last Advance. Controls
// that were never signaled report StateIdle.
func (s *Store[C]) StateOf(control C) State {
	r := s.records[control]
	if r == nil {
		return StateIdle
	}
	return r.state
}

// Down reports whether the control is down (Pressed or Held).
func (s *Store[C]) Down(control C) bool {
	return s.StateOf(control).IsDown()
}

// JustPressed reports whether the control went down this tick.
func (s *Store[C]) JustPressed(control C) bool {
	return s.StateOf(control) == StatePressed
}

// JustReleased reports whether the control went up this tick.
func (s *Store[C]) JustReleased(control C) bool {
	return s.StateOf(control) == StateReleased
}

// FramesHeld returns the number of consecutive completed ticks the
// control has been down: 1 on its Pressed tick, increasing while held,
// 0 whenever the control is up.
func (s *Store[C]) FramesHeld(control C) int {
	r := s.records[control]
	if r == nil {
		return 0
	}
	return r.frames
}

// DownControls returns every control that is down as of the last Advance,
// in no particular order. Useful for bulk release handling, e.g. when a
// device is unplugged mid-session.
func (s *Store[C]) DownControls() []C {
	var down []C
	for control, r := range s.records {
		if r.state.IsDown() {
			down = append(down, control)
		}
	}
	return down
}

// Reset returns every control to StateIdle and zeroes all duration
// counters, discarding any signals applied since the last Advance.
func (s *Store[C]) Reset() {
	s.records = make(map[C]*record)
}
