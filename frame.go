package controlmap

// nextState classifies a control from its down-ness at the previous
// reconciliation and its down-ness now:
//
//	prev  down  ->  state
//	no    no        Idle
//	no    yes       Pressed
//	yes   yes       Held
//	yes   no        Released
func nextState(prev, down bool) State {
	switch {
	case !prev && down:
		return StatePressed
	case prev && down:
		return StateHeld
	case prev && !down:
		return StateReleased
	default:
		return StateIdle
	}
}

// Advance runs the frame reconciliation step. It must be called exactly
// once per tick, after all of the tick's signals have been applied and
// before the host reads states.
//
// Advance ages the one-tick transients (Pressed becomes Held, Released
// becomes Idle), applies pending edges (a down signal takes Idle or
// Released to Pressed; an up signal takes Pressed or Held to Released),
// and updates duration counters. Controls with no signal keep their
// stable state: Idle stays Idle, Held stays Held.
//
// A control that went down and back up within a single tick makes no
// observable transition.
func (s *Store[C]) Advance() {
	for control, r := range s.records {
		r.state = nextState(r.prev, r.down)
		if r.down {
			r.frames++
		} else {
			r.frames = 0
		}
		r.prev = r.down
		// Fully quiescent records are dropped; a missing record reads
		// as StateIdle, so pruning is invisible to callers.
		if r.state == StateIdle {
			delete(s.records, control)
		}
	}
}
