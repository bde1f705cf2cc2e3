package controlmap

import "testing"

func TestPollingHandler_EdgeSynthesis(t *testing.T) {
	h := NewPollingHandler[string, string]()
	h.Bind("a", "action-a")
	h.Bind("b", "action-b")

	// Tick 1: {A} pressed.
	h.HandleSnapshot([]string{"a"})
	h.Advance()
	if got := h.StateOf("action-a"); got != StatePressed {
		t.Fatalf("tick 1: StateOf(action-a) = %v, want Pressed", got)
	}

	// Tick 2: {A, B} pressed. Down must be synthesized for B only; A is
	// not re-signaled and ages to Held.
	h.HandleSnapshot([]string{"a", "b"})
	h.Advance()
	if got := h.StateOf("action-a"); got != StateHeld {
		t.Errorf("tick 2: StateOf(action-a) = %v, want Held", got)
	}
	if got := h.StateOf("action-b"); got != StatePressed {
		t.Errorf("tick 2: StateOf(action-b) = %v, want Pressed", got)
	}
}

func TestPollingHandler_ReleaseEdge(t *testing.T) {
	h := NewPollingHandler[string, string]()
	h.Bind("a", "action-a")

	h.HandleSnapshot([]string{"a"})
	h.Advance()
	h.HandleSnapshot([]string{"a"})
	h.Advance()

	// A leaves the snapshot: up edge, then Released, then Idle.
	h.HandleSnapshot(nil)
	h.Advance()
	if got := h.StateOf("action-a"); got != StateReleased {
		t.Fatalf("StateOf = %v, want Released", got)
	}

	h.HandleSnapshot(nil)
	h.Advance()
	if got := h.StateOf("action-a"); got != StateIdle {
		t.Errorf("StateOf = %v, want Idle", got)
	}
}

func TestPollingHandler_HeldAcrossTicks(t *testing.T) {
	h := NewPollingHandler[string, string]()
	h.Bind("a", "action-a")

	h.HandleSnapshot([]string{"a"})
	h.Advance()

	for tick := 2; tick <= 5; tick++ {
		h.HandleSnapshot([]string{"a"})
		h.Advance()
		if got := h.StateOf("action-a"); got != StateHeld {
			t.Fatalf("tick %d: StateOf = %v, want Held", tick, got)
		}
		if got := h.FramesHeld("action-a"); got != tick {
			t.Fatalf("tick %d: FramesHeld = %d, want %d", tick, got, tick)
		}
	}
}

func TestPollingHandler_UnboundInputsSkipped(t *testing.T) {
	h := NewPollingHandler[string, string]()
	h.Bind("a", "action-a")

	h.HandleSnapshot([]string{"a", "x", "y"})
	h.Advance()

	down := h.DownControls()
	if len(down) != 1 || down[0] != "action-a" {
		t.Errorf("DownControls() = %v, want [action-a]", down)
	}
}

func TestPollingHandler_LateBindingOfHeldInput(t *testing.T) {
	h := NewPollingHandler[string, string]()

	// X is physically held before any binding exists.
	h.HandleSnapshot([]string{"x"})
	h.Advance()

	// Binding X while it is still held produces no edge: the snapshot
	// diff is input-level, and X never left the set. The control fires
	// only after X is released and pressed again.
	h.Bind("x", "action-x")
	h.HandleSnapshot([]string{"x"})
	h.Advance()
	if got := h.StateOf("action-x"); got != StateIdle {
		t.Fatalf("StateOf = %v, want Idle (no edge for already-held input)", got)
	}

	h.HandleSnapshot(nil)
	h.Advance()
	h.HandleSnapshot([]string{"x"})
	h.Advance()
	if got := h.StateOf("action-x"); got != StatePressed {
		t.Errorf("StateOf = %v, want Pressed after re-press", got)
	}
}

func TestPollingHandler_DuplicateEntriesCollapsed(t *testing.T) {
	h := NewPollingHandler[string, string]()
	h.Bind("a", "action-a")

	h.HandleSnapshot([]string{"a", "a", "a"})
	h.Advance()

	if got := h.StateOf("action-a"); got != StatePressed {
		t.Errorf("StateOf = %v, want Pressed", got)
	}

	// The duplicates must not leave phantom entries that would emit
	// extra up edges later.
	h.HandleSnapshot([]string{"a"})
	h.Advance()
	if got := h.StateOf("action-a"); got != StateHeld {
		t.Errorf("StateOf = %v, want Held", got)
	}
}

func TestPollingHandler_EmptyFirstSnapshot(t *testing.T) {
	h := NewPollingHandler[string, string]()
	h.Bind("a", "action-a")

	h.HandleSnapshot(nil)
	h.Advance()

	if got := h.StateOf("action-a"); got != StateIdle {
		t.Errorf("StateOf = %v, want Idle", got)
	}
}

func TestPollingHandler_Reset(t *testing.T) {
	h := NewPollingHandler[string, string]()
	h.Bind("a", "action-a")

	h.HandleSnapshot([]string{"a"})
	h.Advance()
	h.HandleSnapshot([]string{"a"})
	h.Advance()

	h.Reset()
	if got := h.StateOf("action-a"); got != StateIdle {
		t.Fatalf("StateOf after Reset = %v, want Idle", got)
	}

	// The forgotten snapshot means the same physical state reads as a
	// fresh press.
	h.HandleSnapshot([]string{"a"})
	h.Advance()
	if got := h.StateOf("action-a"); got != StatePressed {
		t.Errorf("StateOf = %v, want Pressed after Reset", got)
	}
}
