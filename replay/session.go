package replay

import (
	"time"

	"github.com/google/uuid"
)

// Event is one recorded input transition: a key went down or came back up.
type Event[I comparable] struct {
	Input I
	Down  bool
}

// Frame holds every event recorded during one tick, in arrival order.
// A frame with no events represents a tick where nothing happened.
type Frame[I comparable] struct {
	Events []Event[I]
}

// Session is a completed recording: an ordered frame sequence plus identity.
type Session[I comparable] struct {
	// ID uniquely identifies the recording.
	ID uuid.UUID

	// CreatedAt is when recording started.
	CreatedAt time.Time

	// Frames is the recorded tick sequence, one entry per tick.
	Frames []Frame[I]
}

// Len returns the number of frames (ticks) in the session.
func (s Session[I]) Len() int {
	return len(s.Frames)
}

// EventCount returns the total number of events across all frames.
func (s Session[I]) EventCount() int {
	var n int
	for _, frame := range s.Frames {
		n += len(frame.Events)
	}
	return n
}
