package controlmap

import (
	"errors"
	"testing"
)

func TestBindings_BindLastWriteWins(t *testing.T) {
	tests := []struct {
		name  string
		binds []Binding[string, string]
		input string
		want  string
	}{
		{
			name:  "single bind resolves",
			binds: []Binding[string, string]{{"w", "move-up"}},
			input: "w",
			want:  "move-up",
		},
		{
			name: "rebind replaces previous",
			binds: []Binding[string, string]{
				{"shift", "sprint"},
				{"shift", "crouch"},
			},
			input: "shift",
			want:  "crouch",
		},
		{
			name: "rebind to same control is stable",
			binds: []Binding[string, string]{
				{"w", "move-up"},
				{"w", "move-up"},
			},
			input: "w",
			want:  "move-up",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBindings[string, string]()
			for _, bind := range tt.binds {
				b.Bind(bind.Input, bind.Control)
			}

			got, ok := b.Resolve(tt.input)
			if !ok {
				t.Fatalf("Resolve(%q) reported unbound", tt.input)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBindings_ForwardMapStaysSingleValued(t *testing.T) {
	b := NewBindings[string, string]()
	b.Bind("shift", "sprint")
	b.Bind("shift", "crouch")

	if got := b.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
	if inputs := b.InputsFor("sprint"); len(inputs) != 0 {
		t.Errorf("InputsFor(sprint) = %v, want empty after rebind", inputs)
	}
	got, _ := b.Resolve("shift")
	if got != "crouch" {
		t.Errorf("Resolve(shift) = %q, want crouch", got)
	}
}

func TestBindings_ManyToOnePermitted(t *testing.T) {
	b := NewBindings[string, string]()
	b.Bind("w", "move-up")
	b.Bind("arrow-up", "move-up")

	for _, input := range []string{"w", "arrow-up"} {
		got, ok := b.Resolve(input)
		if !ok || got != "move-up" {
			t.Errorf("Resolve(%q) = %q, %v, want move-up, true", input, got, ok)
		}
	}
	if inputs := b.InputsFor("move-up"); len(inputs) != 2 {
		t.Errorf("InputsFor(move-up) returned %d inputs, want 2", len(inputs))
	}
}

func TestBindings_BindStrict(t *testing.T) {
	tests := []struct {
		name    string
		pre     []Binding[string, string]
		input   string
		control string
		wantErr bool
	}{
		{
			name:    "fresh input binds",
			input:   "w",
			control: "move-up",
		},
		{
			name:    "same control is a no-op",
			pre:     []Binding[string, string]{{"w", "move-up"}},
			input:   "w",
			control: "move-up",
		},
		{
			name:    "different control conflicts",
			pre:     []Binding[string, string]{{"shift", "sprint"}},
			input:   "shift",
			control: "crouch",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBindings[string, string]()
			for _, bind := range tt.pre {
				b.Bind(bind.Input, bind.Control)
			}

			err := b.BindStrict(tt.input, tt.control)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BindStrict(%q, %q) error = %v, wantErr %v", tt.input, tt.control, err, tt.wantErr)
			}
			if !tt.wantErr {
				if got, _ := b.Resolve(tt.input); got != tt.control {
					t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.control)
				}
				return
			}

			if !errors.Is(err, ErrDuplicateInput) {
				t.Errorf("errors.Is(err, ErrDuplicateInput) = false, err = %v", err)
			}
			var dup *DuplicateInputError[string, string]
			if !errors.As(err, &dup) {
				t.Fatalf("errors.As(*DuplicateInputError) = false, err = %v", err)
			}
			if dup.Input != tt.input || dup.Attempted != tt.control {
				t.Errorf("DuplicateInputError = %+v, want Input %q Attempted %q", dup, tt.input, tt.control)
			}
			// The existing binding must survive the failed rebind.
			if got, _ := b.Resolve(tt.input); got != dup.Existing {
				t.Errorf("Resolve(%q) = %q after failed rebind, want %q", tt.input, got, dup.Existing)
			}
		})
	}
}

func TestBindings_Unbind(t *testing.T) {
	b := NewBindings[string, string]()
	b.Bind("w", "move-up")

	b.Unbind("w")
	if _, ok := b.Resolve("w"); ok {
		t.Error("Resolve(w) still bound after Unbind")
	}

	// Unbinding an absent input is a no-op.
	b.Unbind("w")
	if got := b.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestBindings_UnbindControl(t *testing.T) {
	b := NewBindings[string, string]()
	b.Bind("w", "move-up")
	b.Bind("arrow-up", "move-up")
	b.Bind("s", "move-down")

	b.UnbindControl("move-up")

	if inputs := b.InputsFor("move-up"); len(inputs) != 0 {
		t.Errorf("InputsFor(move-up) = %v, want empty", inputs)
	}
	if got, ok := b.Resolve("s"); !ok || got != "move-down" {
		t.Errorf("Resolve(s) = %q, %v, want move-down, true", got, ok)
	}
}

func TestBindings_BindAllOrder(t *testing.T) {
	b := NewBindings[string, string]()
	b.BindAll(
		Binding[string, string]{"shift", "sprint"},
		Binding[string, string]{"shift", "crouch"},
	)

	if got, _ := b.Resolve("shift"); got != "crouch" {
		t.Errorf("Resolve(shift) = %q, want crouch (later binding wins)", got)
	}
}

func TestBindings_Introspection(t *testing.T) {
	b := NewBindings[string, string]()
	b.Bind("w", "move-up")
	b.Bind("arrow-up", "move-up")
	b.Bind("s", "move-down")

	if got := b.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if inputs := b.Inputs(); len(inputs) != 3 {
		t.Errorf("Inputs() returned %d inputs, want 3", len(inputs))
	}
	controls := b.Controls()
	if len(controls) != 2 {
		t.Errorf("Controls() returned %d controls, want 2", len(controls))
	}
	if inputs := b.InputsFor("jump"); inputs != nil {
		t.Errorf("InputsFor(jump) = %v, want nil", inputs)
	}
}

func TestBindings_All(t *testing.T) {
	b := NewBindings[string, string]()
	b.Bind("w", "move-up")
	b.Bind("s", "move-down")

	seen := make(map[string]string)
	for input, control := range b.All() {
		seen[input] = control
	}

	want := map[string]string{"w": "move-up", "s": "move-down"}
	if len(seen) != len(want) {
		t.Fatalf("All() yielded %d pairs, want %d", len(seen), len(want))
	}
	for input, control := range want {
		if seen[input] != control {
			t.Errorf("All() yielded %q -> %q, want %q", input, seen[input], control)
		}
	}
}

func TestBindings_Clear(t *testing.T) {
	b := NewBindings[string, string]()
	b.Bind("w", "move-up")
	b.Bind("s", "move-down")

	b.Clear()

	if got := b.Len(); got != 0 {
		t.Errorf("Len() = %d after Clear, want 0", got)
	}
	if _, ok := b.Resolve("w"); ok {
		t.Error("Resolve(w) still bound after Clear")
	}
}
