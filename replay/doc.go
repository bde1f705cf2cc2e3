// Package replay provides in-memory recording and frame-locked playback of
// event-shaped input.
//
// A session captures the exact event stream a host fed to an event-driven
// handler, sliced into frames at the host's tick boundaries. Playing the
// session back through a fresh handler reproduces the same per-frame control
// states, which makes sessions useful for demo playback and for capturing
// input regressions.
//
// # Recording
//
// A Recorder accumulates events into the current frame and closes a frame on
// every Tick. Call Tick at the same point in the loop where the live handler
// calls Advance, so recorded frame boundaries line up with reconciliations.
//
// Example:
//
//	rec := replay.NewRecorder[string]()
//	if err := rec.Start(); err != nil {
//		return err
//	}
//	// per tick:
//	rec.Record("w", true) // alongside handler.HandleEvent("w", true)
//	rec.Tick()            // alongside handler.Advance()
//	session, err := rec.Stop()
//
// Frames with no events are kept. A session's length in frames is its length
// in ticks, so quiet stretches replay with their original timing.
//
// # Playback
//
// A Player walks a session one frame at a time, delivering each frame's
// events to a Sink and then advancing it.
//
// Example:
//
//	handler := controlmap.NewEventHandler[string, string]()
//	player := replay.NewPlayer(session)
//	for player.Step(handler) {
//		render(handler)
//	}
//
// Play runs the remaining frames in one call. Rewind returns the player to
// the first frame; sessions can be replayed any number of times.
//
// # Concurrency
//
// This package follows the same cooperative model as the handlers it feeds:
// no internal locking, not safe for concurrent use. Drive a Recorder and a
// Player from the single host loop that owns the handler.
package replay
