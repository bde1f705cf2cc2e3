package controlmap

import "iter"

// EventHandler ingests discrete press/release events, the native shape of
// event-driven hosts. Events for unbound inputs are silently ignored.
type EventHandler[I, C comparable] struct {
	core[I, C]
}

// NewEventHandler creates an event-driven adapter with an empty binding
// table.
func NewEventHandler[I, C comparable]() *EventHandler[I, C] {
	return &EventHandler[I, C]{
		core: newCore[I, C](),
	}
}

// HandleEvent consumes one (input, down) event: the input is resolved
// through the binding table and, if bound, the matching signal is applied
// to the state store. Events arriving between two Advance calls belong to
// the same tick; event order within a tick is preserved, so a down
// followed by an up in the same tick cancels out.
func (h *EventHandler[I, C]) HandleEvent(input I, down bool) {
	h.signal(input, down)
}

// HandleEvents consumes a finite ordered sequence of (input, down)
// events. The sequence is fully drained in one call; it is not retained.
func (h *EventHandler[I, C]) HandleEvents(events iter.Seq2[I, bool]) {
	for input, down := range events {
		h.signal(input, down)
	}
}
