package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gilbeats/beats/internal/beat"
	"github.com/gilbeats/beats/internal/log"

	"github.com/charmbracelet/lipgloss"
)

// DefaultTimeLayout is the layout of the human time line in swiftbar output.
const DefaultTimeLayout = "15:04:05"

// SwiftBarSeparator separates the menu bar title from the dropdown items.
const SwiftBarSeparator = "---"

// Options tune rendering. The zero value renders with the defaults.
type Options struct {
	// LookupURL is the world clock page linked from swiftbar output.
	// Empty means beat.DefaultLookupURL.
	LookupURL string
	// TimeLayout is a Go time layout for the swiftbar human time.
	TimeLayout string
	// Color styles the text display when the writer is a color terminal.
	Color bool
}

func (o Options) lookupURL() string {
	if o.LookupURL == "" {
		return beat.DefaultLookupURL
	}
	return o.LookupURL
}

func (o Options) timeLayout() string {
	if o.TimeLayout == "" {
		return DefaultTimeLayout
	}
	return o.TimeLayout
}

// Render writes b to w in format f.
func Render(w io.Writer, b beat.Beat, f Format, opts Options) error {
	log.Debug(log.CatRender, "Rendering beat", "beats", b.Beats(), "format", string(f))

	switch f {
	case FormatText:
		return writeLines(w, Text(w, b, opts))
	case FormatJSON:
		line, err := JSON(b)
		if err != nil {
			return err
		}
		return writeLines(w, line)
	case FormatSwiftBar:
		return writeLines(w, SwiftBar(b, opts)...)
	default:
		return &InvalidFormatError{Value: string(f)}
	}
}

// Text returns the display string, styled for w when opts.Color is set.
// Writers that are not color terminals always get the plain "@NNN".
func Text(w io.Writer, b beat.Beat, opts Options) string {
	if !opts.Color {
		return b.String()
	}
	return displayStyle(lipgloss.NewRenderer(w)).Render(b.String())
}

// JSON returns the single-line JSON encoding of b.
func JSON(b beat.Beat) (string, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("encoding beat: %w", err)
	}
	return string(data), nil
}

// SwiftBar returns the three plugin lines: the display string, the
// separator, and the BMT time with a link to the lookup page.
func SwiftBar(b beat.Beat, opts Options) []string {
	return []string{
		b.String(),
		SwiftBarSeparator,
		fmt.Sprintf("%s BMT | href=%s", HumanTime(b, opts.timeLayout()), b.LookupURLWithBase(opts.lookupURL())),
	}
}

// HumanTime formats the beat's BMT time of day with layout.
func HumanTime(b beat.Beat, layout string) string {
	if ts, ok := b.Timestamp(); ok {
		return ts.Format(layout)
	}
	h, m, s := b.TimeOfDay()
	return time.Date(2000, time.January, 1, h, m, s, 0, beat.BMT).Format(layout)
}

func writeLines(w io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}
