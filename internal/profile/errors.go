package profile

import (
	"errors"
	"fmt"
)

// Errors returned by profile loading and validation.
var (
	// ErrUnknownFormat indicates the profile path has no recognized
	// extension.
	ErrUnknownFormat = errors.New("unknown profile format")

	// ErrDuplicateInput indicates an input is listed under more than one
	// control, which would make the binding table ambiguous.
	ErrDuplicateInput = errors.New("input bound to multiple controls")

	// ErrInvalidProfile indicates a structurally invalid profile, such as
	// an empty control name or an empty input.
	ErrInvalidProfile = errors.New("invalid profile")
)

// ParseError represents an error while parsing a profile file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Err is the underlying decoder error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes a single validation failure in a profile.
type ValidationError struct {
	// Control is the control under which the failure was found.
	Control string
	// Input is the offending input, if the failure concerns one.
	Input string
	// Message describes the failure.
	Message string
	// Err is the category sentinel (ErrDuplicateInput or ErrInvalidProfile).
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("control %q: input %q: %s", e.Control, e.Input, e.Message)
	}
	return fmt.Sprintf("control %q: %s", e.Control, e.Message)
}

// Unwrap returns the category sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
