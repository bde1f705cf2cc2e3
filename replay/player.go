package replay

import "errors"

// ErrNilSink is returned by Play when given a nil sink.
var ErrNilSink = errors.New("nil sink")

// Sink receives a replayed event stream. It is the event-ingestion face of a
// handler: deliver events, then advance the frame.
type Sink[I comparable] interface {
	HandleEvent(input I, down bool)
	Advance()
}

// Player replays a session frame by frame into a Sink.
type Player[I comparable] struct {
	session Session[I]
	pos     int
}

// NewPlayer creates a player positioned at the session's first frame.
func NewPlayer[I comparable](session Session[I]) *Player[I] {
	return &Player[I]{session: session}
}

// Step delivers the current frame's events to the sink, advances it, and
// moves to the next frame. Returns false once the session is exhausted, or
// if the sink is nil.
func (p *Player[I]) Step(sink Sink[I]) bool {
	if sink == nil || p.Done() {
		return false
	}

	for _, event := range p.session.Frames[p.pos].Events {
		sink.HandleEvent(event.Input, event.Down)
	}
	sink.Advance()
	p.pos++
	return true
}

// Play replays every remaining frame into the sink.
func (p *Player[I]) Play(sink Sink[I]) error {
	if sink == nil {
		return ErrNilSink
	}
	for p.Step(sink) {
	}
	return nil
}

// Rewind repositions the player at the first frame.
func (p *Player[I]) Rewind() {
	p.pos = 0
}

// Pos returns the index of the next frame to play.
func (p *Player[I]) Pos() int {
	return p.pos
}

// Len returns the total number of frames in the session.
func (p *Player[I]) Len() int {
	return p.session.Len()
}

// Done reports whether every frame has been played.
func (p *Player[I]) Done() bool {
	return p.pos >= p.session.Len()
}
