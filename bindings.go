package controlmap

import (
	"iter"
	"maps"
)

// Binding is an ordered pair mapping one input to one control.
type Binding[I, C comparable] struct {
	Input   I
	Control C
}

// Bindings is the binding table: a many-to-one mapping from raw input
// identifiers to control identifiers. The forward direction is always
// single-valued (one input resolves to at most one control); the reverse
// direction is unconstrained (any number of inputs may share a control).
//
// The zero value is not usable; construct with NewBindings.
type Bindings[I, C comparable] struct {
	forward map[I]C
}

// NewBindings creates an empty binding table.
func NewBindings[I, C comparable]() *Bindings[I, C] {
	return &Bindings[I, C]{
		forward: make(map[I]C),
	}
}

// Bind registers a mapping from input to control. If the input is already
// bound, the previous binding is silently replaced; last write wins. This
// is the default policy, since only one control per input can ever be
// valid. Use BindStrict to surface replacement as an error instead.
func (b *Bindings[I, C]) Bind(input I, control C) {
	b.forward[input] = control
}

// BindStrict registers a mapping from input to control, failing with a
// DuplicateInputError if the input is already bound to a different
// control. Rebinding an input to the control it already resolves to is a
// no-op, not an error. The existing binding is never modified on failure.
func (b *Bindings[I, C]) BindStrict(input I, control C) error {
	if existing, ok := b.forward[input]; ok {
		if existing == control {
			return nil
		}
		return &DuplicateInputError[I, C]{
			Input:     input,
			Existing:  existing,
			Attempted: control,
		}
	}
	b.forward[input] = control
	return nil
}

// BindAll registers multiple bindings with Bind's overwrite semantics,
// in argument order.
func (b *Bindings[I, C]) BindAll(bindings ...Binding[I, C]) {
	for _, bind := range bindings {
		b.forward[bind.Input] = bind.Control
	}
}

// Unbind removes the mapping for input if present; no-op otherwise.
func (b *Bindings[I, C]) Unbind(input I) {
	delete(b.forward, input)
}

// UnbindControl removes every binding that targets control.
func (b *Bindings[I, C]) UnbindControl(control C) {
	for input, bound := range b.forward {
		if bound == control {
			delete(b.forward, input)
		}
	}
}

// Resolve looks up the control bound to input. The second return value
// reports whether the input is bound. Resolve has no side effects.
func (b *Bindings[I, C]) Resolve(input I) (C, bool) {
	control, ok := b.forward[input]
	return control, ok
}

// InputsFor returns every input bound to control, in no particular order.
// Returns nil if no input targets the control.
func (b *Bindings[I, C]) InputsFor(control C) []I {
	var inputs []I
	for input, bound := range b.forward {
		if bound == control {
			inputs = append(inputs, input)
		}
	}
	return inputs
}

// Inputs returns every bound input, in no particular order.
func (b *Bindings[I, C]) Inputs() []I {
	inputs := make([]I, 0, len(b.forward))
	for input := range b.forward {
		inputs = append(inputs, input)
	}
	return inputs
}

// Controls returns the distinct controls that have at least one binding,
// in no particular order.
func (b *Bindings[I, C]) Controls() []C {
	seen := make(map[C]struct{})
	controls := make([]C, 0)
	for _, control := range b.forward {
		if _, ok := seen[control]; ok {
			continue
		}
		seen[control] = struct{}{}
		controls = append(controls, control)
	}
	return controls
}

// Len returns the number of bindings in the table.
func (b *Bindings[I, C]) Len() int {
	return len(b.forward)
}

// Clear removes every binding.
func (b *Bindings[I, C]) Clear() {
	b.forward = make(map[I]C)
}

// All returns an iterator over the live (input, control) pairs in no
// particular order. The table must not be modified while iterating.
func (b *Bindings[I, C]) All() iter.Seq2[I, C] {
	return maps.All(b.forward)
}
