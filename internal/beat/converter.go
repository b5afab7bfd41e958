// Package beat converts between civil time and Swatch Internet Time.
//
// A beat is 1/1000 of a day (86.4 seconds). Beats are anchored to Biel Mean
// Time (UTC+1) regardless of the observer's timezone, so @000 is midnight in
// Biel and the same beat is shown everywhere at the same instant.
package beat

import "time"

const (
	// MinBeats is the first beat of the day.
	MinBeats = 0
	// MaxBeats is the last beat of the day.
	MaxBeats = 999

	// BeatsPerDay is the number of beats in a day. It is never a valid beat count.
	BeatsPerDay = 1000

	// DefaultOffsetMinutes is the UTC offset of Biel Mean Time.
	DefaultOffsetMinutes = 60
)

// BMT is the fixed UTC+1 zone beats are anchored to.
var BMT = time.FixedZone("BMT", DefaultOffsetMinutes*60)

// FromTimeOfDay returns the beat for a time of day. Hours must be in [0,23]
// and minutes and seconds in [0,59].
func FromTimeOfDay(hours, minutes, seconds int) (int, error) {
	if err := validateTimeOfDay(hours, minutes, seconds); err != nil {
		return 0, err
	}
	secondsOfDay := seconds + minutes*60 + hours*3600
	// floor(secondsOfDay / 86.4) without floating point.
	return secondsOfDay * 10 / 864, nil
}

// ToTimeOfDay returns the start of the given beat as a time of day.
func ToTimeOfDay(beats int) (hours, minutes, seconds int, err error) {
	if err := validateBeats(beats); err != nil {
		return 0, 0, 0, err
	}
	totalSeconds := beats * 864 / 10
	hours = (totalSeconds / 3600) % 24
	minutes = (totalSeconds / 60) % 60
	seconds = totalSeconds % 60
	return hours, minutes, seconds, nil
}

// Now returns the current beat as reported by clock. A nil clock reads the
// system clock.
func Now(clock Clock) int {
	return NowAt(clock, DefaultOffsetMinutes)
}

// NowAt is Now with an explicit reference offset in minutes east of UTC.
func NowAt(clock Clock, offsetMinutes int) int {
	t := clockOrSystem(clock).Now()
	return fromInstant(t, zoneFor(offsetMinutes))
}

// fromInstant converts t to the civil time of loc and returns its beat.
func fromInstant(t time.Time, loc *time.Location) int {
	civil := t.In(loc)
	// Civil clock fields are always in range, so the error is unreachable.
	b, _ := FromTimeOfDay(civil.Hour(), civil.Minute(), civil.Second())
	return b
}

func zoneFor(offsetMinutes int) *time.Location {
	if offsetMinutes == DefaultOffsetMinutes {
		return BMT
	}
	return time.FixedZone("", offsetMinutes*60)
}

func validateTimeOfDay(hours, minutes, seconds int) error {
	switch {
	case hours < 0 || hours > 23:
		return &InvalidTimeOfDayError{Field: "hour", Value: hours, Max: 23}
	case minutes < 0 || minutes > 59:
		return &InvalidTimeOfDayError{Field: "minute", Value: minutes, Max: 59}
	case seconds < 0 || seconds > 59:
		return &InvalidTimeOfDayError{Field: "second", Value: seconds, Max: 59}
	}
	return nil
}

func validateBeats(beats int) error {
	if beats < MinBeats || beats >= BeatsPerDay {
		return &InvalidBeatCountError{Beats: beats}
	}
	return nil
}
