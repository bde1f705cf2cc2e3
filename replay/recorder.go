package replay

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Recorder captures an event stream into frames for later playback.
// One recording is in flight at a time; Stop produces the finished Session
// and returns the Recorder to an idle, reusable state.
type Recorder[I comparable] struct {
	recording bool
	id        uuid.UUID
	started   time.Time
	frames    []Frame[I]
	pending   []Event[I]
}

// NewRecorder creates an idle recorder.
func NewRecorder[I comparable]() *Recorder[I] {
	return &Recorder[I]{}
}

// Start begins a new recording with a fresh session identity.
// Returns an error if a recording is already in progress.
func (r *Recorder[I]) Start() error {
	if r.recording {
		return fmt.Errorf("already recording session %s", r.id)
	}

	r.recording = true
	r.id = uuid.New()
	r.started = time.Now()
	r.frames = nil
	r.pending = nil
	return nil
}

// Record adds one event to the current frame.
// Does nothing if not recording.
func (r *Recorder[I]) Record(input I, down bool) {
	if !r.recording {
		return
	}
	r.pending = append(r.pending, Event[I]{Input: input, Down: down})
}

// Tick closes the current frame and opens the next one.
// Frames without events are kept so the recording preserves tick timing.
// Does nothing if not recording.
func (r *Recorder[I]) Tick() {
	if !r.recording {
		return
	}
	r.frames = append(r.frames, Frame[I]{Events: r.pending})
	r.pending = nil
}

// Stop ends the recording and returns the session. Events recorded since the
// last Tick are flushed as a final frame. The frame slice is handed to the
// session; the recorder keeps no reference to it.
// Returns an error if not recording.
func (r *Recorder[I]) Stop() (Session[I], error) {
	if !r.recording {
		return Session[I]{}, fmt.Errorf("not recording")
	}

	if len(r.pending) > 0 {
		r.frames = append(r.frames, Frame[I]{Events: r.pending})
	}

	session := Session[I]{
		ID:        r.id,
		CreatedAt: r.started,
		Frames:    r.frames,
	}

	r.recording = false
	r.frames = nil
	r.pending = nil
	return session, nil
}

// IsRecording reports whether a recording is in progress.
func (r *Recorder[I]) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of completed frames in the current
// recording. Returns 0 when idle.
func (r *Recorder[I]) FrameCount() int {
	return len(r.frames)
}

// SessionID returns the identity of the in-progress recording, or uuid.Nil
// when idle.
func (r *Recorder[I]) SessionID() uuid.UUID {
	if !r.recording {
		return uuid.Nil
	}
	return r.id
}
