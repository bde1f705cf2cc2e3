package controlmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for binding and query operations.
var (
	// ErrDuplicateInput is returned when a strict bind would rebind an
	// input that already resolves to a different control.
	ErrDuplicateInput = errors.New("input already bound")

	// ErrQueryFailed is returned (possibly joined with others) when a
	// host-supplied query fails for a bound input.
	ErrQueryFailed = errors.New("input query failed")

	// ErrNilQuerier is returned by Sample when the handler was constructed
	// without a querier.
	ErrNilQuerier = errors.New("querier cannot be nil")
)

// DuplicateInputError reports a strict bind that conflicted with an
// existing binding. The existing binding is left untouched.
type DuplicateInputError[I, C comparable] struct {
	// Input is the input the caller attempted to rebind.
	Input I

	// Existing is the control the input currently resolves to.
	Existing C

	// Attempted is the control the caller tried to bind.
	Attempted C
}

// Error implements the error interface.
func (e *DuplicateInputError[I, C]) Error() string {
	return fmt.Sprintf("input %v already bound to control %v (attempted rebind to %v)",
		e.Input, e.Existing, e.Attempted)
}

// Is allows errors.Is to match DuplicateInputError with ErrDuplicateInput.
func (e *DuplicateInputError[I, C]) Is(target error) bool {
	return target == ErrDuplicateInput
}

// QueryError reports a failed query for a single bound input. Sampling
// continues for the remaining inputs; the failed input keeps its
// previous-tick reading and produces no edge.
type QueryError[I comparable] struct {
	// Input is the input whose query failed.
	Input I

	// Err is the error returned by the querier.
	Err error
}

// Error implements the error interface.
func (e *QueryError[I]) Error() string {
	return fmt.Sprintf("query failed for input %v: %v", e.Input, e.Err)
}

// Unwrap returns the underlying error.
func (e *QueryError[I]) Unwrap() error {
	return e.Err
}

// Is allows errors.Is to match QueryError with ErrQueryFailed.
func (e *QueryError[I]) Is(target error) bool {
	return target == ErrQueryFailed
}
