package controlmap

// PollingHandler ingests per-tick snapshots of the currently-pressed
// input set, the native shape of hosts that expose keyboard state as an
// array to poll. The handler owns one piece of persistent state: the
// previous tick's snapshot, replaced atomically on every call, which it
// diffs against the current snapshot to synthesize down/up edges per
// input. Edges then resolve and signal exactly as the event adapter does.
//
// An input that goes down and back up between two snapshots is invisible
// to this adapter and indistinguishable from one that was never pressed;
// likewise a release-and-repress reads as held throughout. This is an
// accepted limitation of snapshot ingestion, not a defect to work around.
type PollingHandler[I, C comparable] struct {
	core[I, C]
	prev map[I]struct{}
}

// NewPollingHandler creates a polling-snapshot adapter with an empty
// binding table and an empty previous snapshot.
func NewPollingHandler[I, C comparable]() *PollingHandler[I, C] {
	return &PollingHandler[I, C]{
		core: newCore[I, C](),
		prev: make(map[I]struct{}),
	}
}

// HandleSnapshot consumes the full set of inputs that are down this tick.
// Inputs newly present emit a down signal; inputs that left the set emit
// an up signal; inputs present in both snapshots emit nothing, so a held
// input is never re-signaled. Duplicate entries in pressed are collapsed.
func (h *PollingHandler[I, C]) HandleSnapshot(pressed []I) {
	current := make(map[I]struct{}, len(pressed))
	for _, input := range pressed {
		if _, dup := current[input]; dup {
			continue
		}
		current[input] = struct{}{}
		if _, held := h.prev[input]; !held {
			h.signal(input, true)
		}
	}
	for input := range h.prev {
		if _, still := current[input]; !still {
			h.signal(input, false)
		}
	}
	h.prev = current
}

// Reset returns every control to Idle and forgets the previous snapshot,
// so the next HandleSnapshot treats every pressed input as newly down.
func (h *PollingHandler[I, C]) Reset() {
	h.core.Reset()
	h.prev = make(map[I]struct{})
}
