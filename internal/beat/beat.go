package beat

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DefaultLookupURL is the world clock page LookupURL points at.
const DefaultLookupURL = "https://www.timeanddate.com/worldclock/fixedtime.html"

// Beat is an immutable beat count with an optional BMT timestamp.
type Beat struct {
	beats     int
	timestamp time.Time
	hasTime   bool
}

// FromBeatCount returns the Beat for n, which must be in [0, 999].
func FromBeatCount(n int) (Beat, error) {
	if err := validateBeats(n); err != nil {
		return Beat{}, err
	}
	return Beat{beats: n}, nil
}

// FromTimestamp returns the Beat for ts. The timestamp is normalized to BMT
// before conversion and kept on the Beat.
func FromTimestamp(ts time.Time) Beat {
	bmt := ts.In(BMT)
	return Beat{
		beats:     fromInstant(bmt, BMT),
		timestamp: bmt,
		hasTime:   true,
	}
}

// NowBeat returns the Beat for the instant reported by clock.
func NowBeat(clock Clock) Beat {
	return FromTimestamp(clockOrSystem(clock).Now())
}

// On returns a copy of b whose timestamp is the start of the beat on the BMT
// calendar day containing date.
func (b Beat) On(date time.Time) Beat {
	d := date.In(BMT)
	h, m, s := b.TimeOfDay()
	return Beat{
		beats:     b.beats,
		timestamp: time.Date(d.Year(), d.Month(), d.Day(), h, m, s, 0, BMT),
		hasTime:   true,
	}
}

// Beats returns the beat count.
func (b Beat) Beats() int {
	return b.beats
}

// Timestamp returns the associated timestamp, if any.
func (b Beat) Timestamp() (time.Time, bool) {
	return b.timestamp, b.hasTime
}

// TimeOfDay returns the BMT time of day. With a timestamp this is the
// timestamp's clock; otherwise it is the start of the beat.
func (b Beat) TimeOfDay() (hours, minutes, seconds int) {
	if b.hasTime {
		return b.timestamp.Hour(), b.timestamp.Minute(), b.timestamp.Second()
	}
	// b.beats is always valid here.
	hours, minutes, seconds, _ = ToTimeOfDay(b.beats)
	return hours, minutes, seconds
}

// String returns the display form, e.g. "@042".
func (b Beat) String() string {
	return fmt.Sprintf("@%03d", b.beats)
}

// LookupURL returns a world clock URL for the beat.
func (b Beat) LookupURL() string {
	return b.LookupURLWithBase(DefaultLookupURL)
}

// LookupURLWithBase is LookupURL against a different world clock page.
// Day, month and year are omitted when the beat has no timestamp.
func (b Beat) LookupURLWithBase(base string) string {
	var q strings.Builder
	if b.hasTime {
		fmt.Fprintf(&q, "day=%d&month=%d&year=%d&",
			b.timestamp.Day(), int(b.timestamp.Month()), b.timestamp.Year())
	}
	fmt.Fprintf(&q, "beats=%d&p1=0", b.beats)

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + q.String()
}

// beatJSON is the wire shape of a Beat. Exactly one of Datetime and Time is set.
type beatJSON struct {
	Beats    int    `json:"beats"`
	Datetime string `json:"datetime,omitempty"`
	Time     string `json:"time,omitempty"`
}

// MarshalJSON encodes the beat as {"beats":N,"datetime":...} when it has a
// timestamp and {"beats":N,"time":"HH:MM:SS"} otherwise.
func (b Beat) MarshalJSON() ([]byte, error) {
	out := beatJSON{Beats: b.beats}
	if b.hasTime {
		out.Datetime = b.timestamp.Format(time.RFC3339)
	} else {
		h, m, s := b.TimeOfDay()
		out.Time = fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes either wire shape. The beat count is required and,
// when a datetime is present, must be the beat of that instant.
func (b *Beat) UnmarshalJSON(data []byte) error {
	var in struct {
		Beats    *int   `json:"beats"`
		Datetime string `json:"datetime"`
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Beats == nil {
		return fmt.Errorf("decoding beat: beats is required")
	}
	if err := validateBeats(*in.Beats); err != nil {
		return err
	}

	decoded := Beat{beats: *in.Beats}
	if in.Datetime != "" {
		ts, err := time.Parse(time.RFC3339, in.Datetime)
		if err != nil {
			return fmt.Errorf("parsing datetime: %w", err)
		}
		decoded = FromTimestamp(ts)
		if decoded.beats != *in.Beats {
			return fmt.Errorf("decoding beat: beats %d does not match datetime %s (%s)",
				*in.Beats, in.Datetime, decoded)
		}
	}
	*b = decoded
	return nil
}
