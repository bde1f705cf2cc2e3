// Package controlmap provides a frame-accurate input-to-control abstraction
// for real-time applications.
//
// Raw hardware input arrives in one of three shapes depending on the host
// environment: discrete press/release events, a snapshot of currently-down
// keys, or a per-key query callback. This package reconciles all three into
// one consistent, per-frame notion of control state, while allowing many raw
// inputs to alias to a single logical control and forbidding the reverse.
//
// # Bindings
//
// A Binding maps one host-defined Input identifier to one host-defined
// Control identifier. Inputs and Controls are opaque to this package; any
// comparable type works. The forward map is single-valued: binding an input
// that is already bound replaces the previous binding (or fails, if the
// strict variant is used). Any number of inputs may target the same control.
//
// # Control States
//
// Each control is in exactly one of four states per tick: StateIdle,
// StatePressed, StateHeld, or StateReleased. StatePressed and StateReleased
// are exactly one tick wide, so hosts can implement "on press" and
// "on release" logic with a plain equality check. StateIdle and StateHeld
// are stable until a signal changes them.
//
// # Ingestion Adapters
//
// Three interchangeable adapters convert native input into state updates:
// EventHandler consumes discrete (input, down) events, PollingHandler diffs
// per-tick snapshots of the pressed-input set, and QueryHandler actively
// probes every bound input through a host-supplied Querier. All three embed
// the same binding table and state store and satisfy the Handler interface,
// so hosts can select an adapter at construction time and treat it
// uniformly afterward.
//
// # Frame Lifecycle
//
// Hosts drive the package once per frame: feed one tick's worth of native
// input through the adapter, call Advance exactly once, then read states.
//
//	h := controlmap.NewEventHandler[rune, string]()
//	h.Bind('w', "move-up")
//	h.Bind('k', "move-up")
//
//	// each frame:
//	h.HandleEvent('w', true)
//	h.Advance()
//	if h.JustPressed("move-up") {
//	    // ...
//	}
//
// Unbound inputs are silently ignored by every adapter; hosts routinely
// emit events for keys no control maps to.
//
// # Concurrency
//
// The package is single-threaded: no locking, no blocking, no goroutines.
// There is exactly one writer per tick (the active adapter), and reads
// are meaningful only after Advance completes. Hosts that need
// cross-thread access must wrap the whole signal-advance-read cycle in
// their own synchronization.
package controlmap
