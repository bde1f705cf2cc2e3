// Package script runs Lua binding scripts for the demo.
//
// A script declares bindings and reacts to control transitions. The host
// loads it once, applies the declared bindings to a handler, and fires hooks
// as controls change state.
//
// # Script API
//
// Scripts see four registration globals and a logger:
//
//	bind("w", "move-up")
//
//	on_pressed("move-up", function(control)
//	    log("going up")
//	end)
//
//	on_released("move-up", function(control) ... end)
//	on_held("move-up", function(control) ... end)
//
// Hook functions receive the control name, so one function can serve several
// controls. log lines are captured in a bounded buffer the host reads with
// Log.
//
// # Sandbox
//
// Only the base, table, string, and math libraries are opened, and the chunk
// loaders base carries (dofile, loadfile, load, loadstring) are removed.
// Scripts have no access to io, os, debug, or package, so they cannot touch
// the file system, compile new chunks, or load native code.
//
// # Concurrency
//
// An Engine is not safe for concurrent use. Drive it from the single host
// loop that owns the handler it configures.
package script
