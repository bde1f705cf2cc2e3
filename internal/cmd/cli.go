// Package cmd defines the controlmap command tree. Each command carries
// its flags as kong-tagged fields and a Run method invoked with the bound
// logger.
package cmd

import (
	"errors"
	"os"
	"time"

	"golang.org/x/term"
)

// CLI is the root command tree.
type CLI struct {
	Live   LiveCmd   `cmd:"" help:"Run the interactive control state viewer"`
	Replay ReplayCmd `cmd:"" help:"Record a session, then play it back into a fresh handler"`
	Script ScriptCmd `cmd:"" help:"Run the viewer with a Lua script declaring bindings and hooks"`
	Check  CheckCmd  `cmd:"" help:"Validate a binding profile and print its resolved table"`

	LogLevel string `help:"Log verbosity" enum:"debug,info,warn,error" default:"info" env:"CONTROLMAP_LOG_LEVEL"`
}

// tickFlags are the loop settings shared by the interactive commands.
type tickFlags struct {
	FPS  int           `help:"Reconciliation ticks per second" default:"30" env:"CONTROLMAP_FPS"`
	Hold time.Duration `help:"Emulated key lifetime after the last press or repeat" default:"300ms" env:"CONTROLMAP_HOLD"`
}

// requireTerminal refuses to start the fullscreen viewer when stdout is
// not a terminal, before tcell puts the descriptor into raw mode.
func requireTerminal() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}
	return nil
}
