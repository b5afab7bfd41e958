package beat

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBeatCount matches any *InvalidBeatCountError.
	ErrInvalidBeatCount = errors.New("invalid beat count")
	// ErrInvalidTimeOfDay matches any *InvalidTimeOfDayError.
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
)

// InvalidBeatCountError indicates a beat count outside [0, 999].
type InvalidBeatCountError struct {
	Beats int
}

// Error implements the error interface.
func (e *InvalidBeatCountError) Error() string {
	return fmt.Sprintf("invalid beat count %d: must be between %d and %d", e.Beats, MinBeats, MaxBeats)
}

// Is reports whether target is ErrInvalidBeatCount.
func (e *InvalidBeatCountError) Is(target error) bool {
	return target == ErrInvalidBeatCount
}

// InvalidTimeOfDayError indicates an hour, minute or second outside its valid range.
type InvalidTimeOfDayError struct {
	Field string // "hour", "minute" or "second"
	Value int
	Max   int
}

// Error implements the error interface.
func (e *InvalidTimeOfDayError) Error() string {
	return fmt.Sprintf("invalid time of day: %s %d out of range 0..%d", e.Field, e.Value, e.Max)
}

// Is reports whether target is ErrInvalidTimeOfDay.
func (e *InvalidTimeOfDayError) Is(target error) bool {
	return target == ErrInvalidTimeOfDay
}
