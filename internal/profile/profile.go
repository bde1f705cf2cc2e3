// Package profile loads declarative binding profiles for the demo host.
//
// A profile names a set of controls and, for each control, the inputs that
// drive it. Profiles are authored control-first because bindings are
// many-to-one; validation rejects any input that appears under two controls,
// so a loaded profile always flattens to a single-valued input table.
// Supported formats are TOML, YAML, and JSON, chosen by file extension.
package profile

import (
	"fmt"
	"slices"
)

// Profile is a named set of control-to-inputs declarations.
type Profile struct {
	// Name identifies the profile for display.
	Name string `toml:"name" yaml:"name" json:"name"`

	// Controls maps each control to the inputs bound to it.
	Controls map[string][]string `toml:"controls" yaml:"controls" json:"controls"`
}

// Pair is one flattened input-to-control binding.
type Pair struct {
	Input   string
	Control string
}

// Pairs flattens the profile into bindings, ordered by control name and then
// by the authored input order. An input repeated under the same control is
// emitted once.
func (p *Profile) Pairs() []Pair {
	controls := make([]string, 0, len(p.Controls))
	for control := range p.Controls {
		controls = append(controls, control)
	}
	slices.Sort(controls)

	var pairs []Pair
	seen := make(map[string]struct{})
	for _, control := range controls {
		for _, input := range p.Controls[control] {
			if _, dup := seen[input]; dup {
				continue
			}
			seen[input] = struct{}{}
			pairs = append(pairs, Pair{Input: input, Control: control})
		}
	}
	return pairs
}

// Validate checks the profile for structural problems: empty control names,
// empty inputs, and inputs claimed by more than one control. An input
// repeated under the same control is tolerated and collapses to one binding.
func (p *Profile) Validate() error {
	owner := make(map[string]string)
	for control, inputs := range p.Controls {
		if control == "" {
			return &ValidationError{
				Message: "empty control name",
				Err:     ErrInvalidProfile,
			}
		}
		for _, input := range inputs {
			if input == "" {
				return &ValidationError{
					Control: control,
					Message: "empty input",
					Err:     ErrInvalidProfile,
				}
			}
			if prev, bound := owner[input]; bound && prev != control {
				return &ValidationError{
					Control: control,
					Input:   input,
					Message: fmt.Sprintf("already bound to control %q", prev),
					Err:     ErrDuplicateInput,
				}
			}
			owner[input] = control
		}
	}
	return nil
}
