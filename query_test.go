package controlmap

import (
	"errors"
	"fmt"
	"testing"
)

// fakeQuerier answers from a fixed map, counts probes per input, and can
// inject failures.
type fakeQuerier struct {
	down   map[string]bool
	fail   map[string]error
	probes map[string]int
}

func newFakeQuerier() *fakeQuerier {
	return &fakeQuerier{
		down:   make(map[string]bool),
		fail:   make(map[string]error),
		probes: make(map[string]int),
	}
}

func (q *fakeQuerier) Query(input string) (bool, error) {
	q.probes[input]++
	if err := q.fail[input]; err != nil {
		return false, err
	}
	return q.down[input], nil
}

func TestQueryHandler_ProbesBoundInputsOnly(t *testing.T) {
	q := newFakeQuerier()
	q.down["w"] = true
	q.down["x"] = true

	h := NewQueryHandler[string, string](q)
	h.Bind("w", "move-up")
	h.Bind("s", "move-down")

	if err := h.Sample(); err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	h.Advance()

	if got := q.probes["w"]; got != 1 {
		t.Errorf("probes[w] = %d, want 1", got)
	}
	if got := q.probes["s"]; got != 1 {
		t.Errorf("probes[s] = %d, want 1", got)
	}
	if got := q.probes["x"]; got != 0 {
		t.Errorf("probes[x] = %d, want 0 (unbound inputs are never queried)", got)
	}
	if got := h.StateOf("move-up"); got != StatePressed {
		t.Errorf("StateOf(move-up) = %v, want Pressed", got)
	}
}

func TestQueryHandler_PressHoldReleaseIdle(t *testing.T) {
	q := newFakeQuerier()
	h := NewQueryHandler[string, string](q)
	h.Bind("w", "move-up")

	sample := func(down bool, want State) {
		t.Helper()
		q.down["w"] = down
		if err := h.Sample(); err != nil {
			t.Fatalf("Sample() error = %v", err)
		}
		h.Advance()
		if got := h.StateOf("move-up"); got != want {
			t.Fatalf("StateOf = %v, want %v", got, want)
		}
	}

	sample(true, StatePressed)
	sample(true, StateHeld)
	sample(false, StateReleased)
	sample(false, StateIdle)
}

func TestQueryHandler_FailureIsolatedPerInput(t *testing.T) {
	q := newFakeQuerier()
	q.down["w"] = true
	q.fail["s"] = fmt.Errorf("scan code out of range")

	h := NewQueryHandler[string, string](q)
	h.Bind("w", "move-up")
	h.Bind("s", "move-down")

	err := h.Sample()
	h.Advance()

	if err == nil {
		t.Fatal("Sample() error = nil, want per-input failure")
	}
	if !errors.Is(err, ErrQueryFailed) {
		t.Errorf("errors.Is(err, ErrQueryFailed) = false, err = %v", err)
	}
	var qe *QueryError[string]
	if !errors.As(err, &qe) {
		t.Fatalf("errors.As(*QueryError) = false, err = %v", err)
	}
	if qe.Input != "s" {
		t.Errorf("QueryError.Input = %q, want s", qe.Input)
	}

	// The healthy input still reconciled this tick.
	if got := h.StateOf("move-up"); got != StatePressed {
		t.Errorf("StateOf(move-up) = %v, want Pressed", got)
	}
	// The failed input produced no edge.
	if got := h.StateOf("move-down"); got != StateIdle {
		t.Errorf("StateOf(move-down) = %v, want Idle", got)
	}
}

func TestQueryHandler_FailedInputKeepsPreviousReading(t *testing.T) {
	q := newFakeQuerier()
	q.down["s"] = true

	h := NewQueryHandler[string, string](q)
	h.Bind("s", "move-down")

	// Tick 1: healthy, held down.
	if err := h.Sample(); err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	h.Advance()

	// Tick 2: the probe fails; the previous down reading is retained,
	// so no release edge fires and the control stays down.
	q.fail["s"] = fmt.Errorf("device busy")
	if err := h.Sample(); !errors.Is(err, ErrQueryFailed) {
		t.Fatalf("Sample() error = %v, want ErrQueryFailed", err)
	}
	h.Advance()
	if got := h.StateOf("move-down"); got != StateHeld {
		t.Errorf("StateOf = %v, want Held", got)
	}

	// Tick 3: the probe recovers reporting up; the release edge fires
	// now.
	delete(q.fail, "s")
	q.down["s"] = false
	if err := h.Sample(); err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	h.Advance()
	if got := h.StateOf("move-down"); got != StateReleased {
		t.Errorf("StateOf = %v, want Released", got)
	}
}

func TestQueryHandler_NilQuerier(t *testing.T) {
	h := NewQueryHandler[string, string](nil)
	h.Bind("w", "move-up")

	if err := h.Sample(); !errors.Is(err, ErrNilQuerier) {
		t.Errorf("Sample() error = %v, want ErrNilQuerier", err)
	}
}

func TestQueryHandler_QuerierFunc(t *testing.T) {
	calls := 0
	h := NewQueryHandler[string, string](QuerierFunc[string](func(input string) (bool, error) {
		calls++
		return input == "w", nil
	}))
	h.Bind("w", "move-up")

	if err := h.Sample(); err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	h.Advance()

	if calls != 1 {
		t.Errorf("querier calls = %d, want 1", calls)
	}
	if got := h.StateOf("move-up"); got != StatePressed {
		t.Errorf("StateOf = %v, want Pressed", got)
	}
}

func TestQueryHandler_NewlyBoundHeldInputFires(t *testing.T) {
	q := newFakeQuerier()
	q.down["w"] = true

	h := NewQueryHandler[string, string](q)
	h.Sample()
	h.Advance()

	// Unlike the snapshot adapter, readings are binding-scoped: binding
	// an already-down input makes its first sample an edge.
	h.Bind("w", "move-up")
	if err := h.Sample(); err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	h.Advance()
	if got := h.StateOf("move-up"); got != StatePressed {
		t.Errorf("StateOf = %v, want Pressed", got)
	}
}

func TestQueryHandler_UnbindDropsReading(t *testing.T) {
	q := newFakeQuerier()
	q.down["w"] = true

	h := NewQueryHandler[string, string](q)
	h.Bind("w", "move-up")
	if err := h.Sample(); err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	h.Advance()

	h.Unbind("w")
	if err := h.Sample(); err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	h.Advance()
	if got := q.probes["w"]; got != 1 {
		t.Errorf("probes[w] = %d after unbind, want 1", got)
	}

	// The control saw no up signal while unbound, so it is still down.
	if got := h.StateOf("move-up"); got != StateHeld {
		t.Errorf("StateOf = %v while unbound, want Held", got)
	}

	// Rebinding starts from a clean reading: the still-down input fires
	// a down edge, which is idempotent against the still-down control.
	h.Bind("w", "move-up")
	if err := h.Sample(); err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	h.Advance()
	if got := h.StateOf("move-up"); got != StateHeld {
		t.Errorf("StateOf = %v after rebind, want Held", got)
	}
}

func TestQueryHandler_Reset(t *testing.T) {
	q := newFakeQuerier()
	q.down["w"] = true

	h := NewQueryHandler[string, string](q)
	h.Bind("w", "move-up")
	h.Sample()
	h.Advance()
	h.Sample()
	h.Advance()

	h.Reset()
	if got := h.StateOf("move-up"); got != StateIdle {
		t.Fatalf("StateOf after Reset = %v, want Idle", got)
	}

	h.Sample()
	h.Advance()
	if got := h.StateOf("move-up"); got != StatePressed {
		t.Errorf("StateOf = %v, want Pressed after Reset", got)
	}
}
