// Package demo is the interactive host: a tcell viewer that drives a handler
// from terminal key input and renders per-control state each tick.
//
// Terminals report key presses and repeats but never releases, so the demo
// emulates key lifetime: a key counts as down until no press has been seen
// for a hold window. From that one emulated truth it derives all three
// ingestion shapes, which makes the adapters directly comparable on screen.
package demo

import (
	"fmt"
	"time"

	"github.com/dshills/controlmap"
)

// Adapter selects which ingestion shape drives the handler.
type Adapter string

const (
	// AdapterEvent feeds discrete down/up edges.
	AdapterEvent Adapter = "event"
	// AdapterPolling feeds a full snapshot of down keys each tick.
	AdapterPolling Adapter = "polling"
	// AdapterQuery probes each bound key through a callback each tick.
	AdapterQuery Adapter = "query"
)

// Valid reports whether the adapter name is one of the three shapes.
func (a Adapter) Valid() bool {
	switch a {
	case AdapterEvent, AdapterPolling, AdapterQuery:
		return true
	default:
		return false
	}
}

// DefaultHold is how long a key stays down after its last press or repeat.
// Matches typical terminal auto-repeat delay closely enough that a held key
// reads as continuously down.
const DefaultHold = 300 * time.Millisecond

// Config holds the demo's runtime settings.
type Config struct {
	// Adapter is the ingestion shape to drive.
	Adapter Adapter

	// FPS is the reconciliation rate in ticks per second.
	FPS int

	// Hold is the emulated key lifetime window.
	Hold time.Duration

	// Profile is an optional binding profile path; empty uses built-ins.
	Profile string

	// Script is the Lua script path for script mode.
	Script string

	// Watch reloads the profile when it changes on disk.
	Watch bool

	// Record captures the session for playback after recording stops.
	Record bool
}

// DefaultConfig returns the demo defaults.
func DefaultConfig() Config {
	return Config{
		Adapter: AdapterEvent,
		FPS:     30,
		Hold:    DefaultHold,
	}
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if !c.Adapter.Valid() {
		return fmt.Errorf("unknown adapter %q", c.Adapter)
	}
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("fps %d out of range [1, 240]", c.FPS)
	}
	if c.Hold <= 0 {
		return fmt.Errorf("hold window must be positive, got %v", c.Hold)
	}
	if c.Watch && c.Profile == "" {
		return fmt.Errorf("watch requires a profile path")
	}
	if c.Record && c.Adapter != AdapterEvent {
		return fmt.Errorf("recording needs the event adapter: only edges are captured")
	}
	return nil
}

// TickInterval converts FPS to the loop's tick duration.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// DefaultBindings is the built-in table used when no profile is given:
// WASD plus arrows for movement, space to jump, tab to sprint.
func DefaultBindings() []controlmap.Binding[string, string] {
	return []controlmap.Binding[string, string]{
		{Input: "w", Control: "move-up"},
		{Input: "up", Control: "move-up"},
		{Input: "s", Control: "move-down"},
		{Input: "down", Control: "move-down"},
		{Input: "a", Control: "move-left"},
		{Input: "left", Control: "move-left"},
		{Input: "d", Control: "move-right"},
		{Input: "right", Control: "move-right"},
		{Input: "space", Control: "jump"},
		{Input: "tab", Control: "sprint"},
	}
}
