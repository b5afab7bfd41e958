package beat

import "time"

// Clock interface for time operations (allows testing).
type Clock interface {
	Now() time.Time
}

// realClock implements Clock using the real time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// fixedClock always reports the same instant.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return realClock{}
}

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return fixedClock{t: t}
}

func clockOrSystem(c Clock) Clock {
	if c == nil {
		return realClock{}
	}
	return c
}
