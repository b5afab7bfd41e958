// Package render formats beats for the command line.
package render

import (
	"errors"
	"fmt"
	"strings"
)

// Format selects an output rendering.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatSwiftBar Format = "swiftbar"
)

// ErrInvalidFormat matches any *InvalidFormatError.
var ErrInvalidFormat = errors.New("invalid format")

// InvalidFormatError indicates an unrecognized output format name.
type InvalidFormatError struct {
	Value string
}

// Error implements the error interface.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format %q: must be one of %s", e.Value, formatList())
}

// Is reports whether target is ErrInvalidFormat.
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// Formats returns the supported formats in display order.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatSwiftBar}
}

// ParseFormat returns the Format named by s. Matching is exact; unknown names
// are rejected rather than defaulted.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", &InvalidFormatError{Value: s}
}

func formatList() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
