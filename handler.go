package controlmap

// Handler is the adapter-agnostic surface shared by the three ingestion
// adapters. It covers binding management, state reads, and the per-tick
// Advance; how native input enters the handler is specific to the
// concrete adapter (HandleEvent, HandleSnapshot, or Sample), chosen by
// the host at construction time.
type Handler[I, C comparable] interface {
	// Bind registers input -> control, replacing any previous binding
	// for input.
	Bind(input I, control C)

	// BindStrict registers input -> control, failing with a
	// DuplicateInputError if input is already bound to a different
	// control.
	BindStrict(input I, control C) error

	// BindAll registers multiple bindings with overwrite semantics.
	BindAll(bindings ...Binding[I, C])

	// Unbind removes the binding for input if present.
	Unbind(input I)

	// UnbindControl removes every binding targeting control.
	UnbindControl(control C)

	// Resolve looks up the control bound to input.
	Resolve(input I) (C, bool)

	// InputsFor returns every input bound to control.
	InputsFor(control C) []I

	// Controls returns the distinct bound controls.
	Controls() []C

	// Inputs returns every bound input.
	Inputs() []I

	// Len returns the number of bindings.
	Len() int

	// Clear removes every binding. Control state is unaffected.
	Clear()

	// StateOf returns the control's state as of the last Advance.
	StateOf(control C) State

	// Down reports whether the control is Pressed or Held.
	Down(control C) bool

	// JustPressed reports whether the control went down this tick.
	JustPressed(control C) bool

	// JustReleased reports whether the control went up this tick.
	JustReleased(control C) bool

	// FramesHeld returns consecutive completed ticks the control has
	// been down.
	FramesHeld(control C) int

	// DownControls returns every control currently down.
	DownControls() []C

	// Advance runs frame reconciliation; exactly once per tick.
	Advance()

	// Reset returns every control to Idle and clears adapter-held
	// ingestion state.
	Reset()
}

// Compile-time checks that each adapter satisfies Handler.
var (
	_ Handler[int, int] = (*EventHandler[int, int])(nil)
	_ Handler[int, int] = (*PollingHandler[int, int])(nil)
	_ Handler[int, int] = (*QueryHandler[int, int])(nil)
)

// core is the engine shared by the adapters: the binding table, the state
// store, and the resolve-then-signal step every adapter funnels through.
type core[I, C comparable] struct {
	bindings *Bindings[I, C]
	store    *Store[C]
}

func newCore[I, C comparable]() core[I, C] {
	return core[I, C]{
		bindings: NewBindings[I, C](),
		store:    NewStore[C](),
	}
}

// signal resolves input and applies the corresponding store signal.
// Unbound inputs are silently ignored: hosts expose more raw inputs than
// any one application maps, so an unmapped key is expected, not an error.
func (c *core[I, C]) signal(input I, down bool) {
	control, ok := c.bindings.Resolve(input)
	if !ok {
		return
	}
	if down {
		c.store.SignalDown(control)
	} else {
		c.store.SignalUp(control)
	}
}

// Bindings returns the underlying binding table. Mutating it between a
// tick's signals and its Advance is the host's responsibility to avoid.
func (c *core[I, C]) Bindings() *Bindings[I, C] {
	return c.bindings
}

// Store returns the underlying control state store.
func (c *core[I, C]) Store() *Store[C] {
	return c.store
}

// Bind registers input -> control, replacing any previous binding.
func (c *core[I, C]) Bind(input I, control C) {
	c.bindings.Bind(input, control)
}

// BindStrict registers input -> control without overwriting.
func (c *core[I, C]) BindStrict(input I, control C) error {
	return c.bindings.BindStrict(input, control)
}

// BindAll registers multiple bindings with overwrite semantics.
func (c *core[I, C]) BindAll(bindings ...Binding[I, C]) {
	c.bindings.BindAll(bindings...)
}

// Unbind removes the binding for input if present.
func (c *core[I, C]) Unbind(input I) {
	c.bindings.Unbind(input)
}

// UnbindControl removes every binding targeting control.
func (c *core[I, C]) UnbindControl(control C) {
	c.bindings.UnbindControl(control)
}

// Resolve looks up the control bound to input.
func (c *core[I, C]) Resolve(input I) (C, bool) {
	return c.bindings.Resolve(input)
}

// InputsFor returns every input bound to control.
func (c *core[I, C]) InputsFor(control C) []I {
	return c.bindings.InputsFor(control)
}

// Controls returns the distinct bound controls.
func (c *core[I, C]) Controls() []C {
	return c.bindings.Controls()
}

// Inputs returns every bound input.
func (c *core[I, C]) Inputs() []I {
	return c.bindings.Inputs()
}

// Len returns the number of bindings.
func (c *core[I, C]) Len() int {
	return c.bindings.Len()
}

// Clear removes every binding. Control state is unaffected.
func (c *core[I, C]) Clear() {
	c.bindings.Clear()
}

// StateOf returns the control's state as of the last Advance.
func (c *core[I, C]) StateOf(control C) State {
	return c.store.StateOf(control)
}

// Down reports whether the control is Pressed or Held.
func (c *core[I, C]) Down(control C) bool {
	return c.store.Down(control)
}

// JustPressed reports whether the control went down this tick.
func (c *core[I, C]) JustPressed(control C) bool {
	return c.store.JustPressed(control)
}

// JustReleased reports whether the control went up this tick.
func (c *core[I, C]) JustReleased(control C) bool {
	return c.store.JustReleased(control)
}

// FramesHeld returns consecutive completed ticks the control has been
// down.
func (c *core[I, C]) FramesHeld(control C) int {
	return c.store.FramesHeld(control)
}

// DownControls returns every control currently down.
func (c *core[I, C]) DownControls() []C {
	return c.store.DownControls()
}

// Advance runs frame reconciliation; exactly once per tick.
func (c *core[I, C]) Advance() {
	c.store.Advance()
}

// Reset returns every control to Idle and zeroes duration counters.
func (c *core[I, C]) Reset() {
	c.store.Reset()
}
