package dynamo

import (
	"errors"
	"strconv"
)

// Domain errors for configuration of a simulation world. The world itself
// never fails; these surface only while loading or validating scenarios.
var (
	// ErrInvalidBounds indicates a viewport with non-positive width or height.
	ErrInvalidBounds = errors.New("dynamo: bounds must have positive width and height")

	// ErrInvalidSize indicates a particle or source with non-positive size.
	ErrInvalidSize = errors.New("dynamo: size must be positive")

	// ErrUnknownPreset indicates a preset name that is not registered.
	ErrUnknownPreset = errors.New("dynamo: unknown preset")

	// ErrUnknownParam indicates a parameter name not recognised by SetParam.
	ErrUnknownParam = errors.New("dynamo: unknown parameter")
)

// SpawnError wraps an error with the index of the offending spawn entry.
type SpawnError struct {
	Kind    string
	Index   int
	Wrapped error
}

func (e *SpawnError) Error() string {
	return e.Kind + "[" + strconv.Itoa(e.Index) + "]: " + e.Wrapped.Error()
}

func (e *SpawnError) Unwrap() error {
	return e.Wrapped
}
