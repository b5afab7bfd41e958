package cmd

import (
	"errors"
	"fmt"
)

// ErrInvalidBeatsArgument matches any *InvalidBeatsArgumentError.
var ErrInvalidBeatsArgument = errors.New("invalid beats argument")

// InvalidBeatsArgumentError indicates a beat count argument that is not an integer.
type InvalidBeatsArgumentError struct {
	Value string
	Err   error
}

// Error implements the error interface.
func (e *InvalidBeatsArgumentError) Error() string {
	return fmt.Sprintf("invalid beats value %q: must be an integer between 0 and 999", e.Value)
}

// Is reports whether target is ErrInvalidBeatsArgument.
func (e *InvalidBeatsArgumentError) Is(target error) bool {
	return target == ErrInvalidBeatsArgument
}

// Unwrap returns the underlying parse error.
func (e *InvalidBeatsArgumentError) Unwrap() error {
	return e.Err
}
