package controlmap

import "errors"

// Querier is the capability a query-driven host supplies: answer whether
// a single input is currently down. Queries may fail (an out-of-range
// input, a disconnected device); failures are surfaced per input by
// Sample without aborting the tick.
type Querier[I comparable] interface {
	Query(input I) (down bool, err error)
}

// QuerierFunc adapts a plain function to the Querier interface.
type QuerierFunc[I comparable] func(I) (bool, error)

// Query calls f.
func (f QuerierFunc[I]) Query(input I) (bool, error) {
	return f(input)
}

// QueryHandler ingests input by actively probing the host through a
// Querier. Each Sample probes every bound input exactly once; unbound
// inputs cannot affect any control and are never queried. The handler
// keeps the previous tick's reading per bound input to detect edges,
// which it signals exactly as the other adapters do.
//
// Like the polling adapter, a down-and-up between two samples is
// invisible and reads as held throughout.
type QueryHandler[I, C comparable] struct {
	core[I, C]
	querier Querier[I]
	prev    map[I]bool
}

// NewQueryHandler creates a query-driven adapter probing through q. A nil
// querier is tolerated at construction; Sample then fails with
// ErrNilQuerier.
func NewQueryHandler[I, C comparable](q Querier[I]) *QueryHandler[I, C] {
	return &QueryHandler[I, C]{
		core:    newCore[I, C](),
		querier: q,
		prev:    make(map[I]bool),
	}
}

// Sample probes every bound input once and applies the resulting edges to
// the state store. A failed probe is reported as a QueryError for that
// input only: the input keeps its previous reading, emits no edge, and
// the remaining inputs still reconcile normally. All per-input errors are
// returned joined; a nil return means every probe succeeded.
//
// The previous-tick readings are rebuilt from the live binding table on
// every call, so readings for since-unbound inputs are dropped and a
// newly bound input that is already physically down produces a down edge
// on its first sample.
func (h *QueryHandler[I, C]) Sample() error {
	if h.querier == nil {
		return ErrNilQuerier
	}

	var errs []error
	next := make(map[I]bool, h.bindings.Len())
	for input := range h.bindings.All() {
		down, err := h.querier.Query(input)
		if err != nil {
			errs = append(errs, &QueryError[I]{Input: input, Err: err})
			next[input] = h.prev[input]
			continue
		}
		next[input] = down
		if down != h.prev[input] {
			h.signal(input, down)
		}
	}
	h.prev = next

	return errors.Join(errs...)
}

// Reset returns every control to Idle and forgets all previous readings,
// so the next Sample treats every down input as newly down.
func (h *QueryHandler[I, C]) Reset() {
	h.core.Reset()
	h.prev = make(map[I]bool)
}
