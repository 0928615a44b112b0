package kernel

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock, in UTC.
type SystemClock struct{}

// NewSystemClock returns the production Clock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	at time.Time
}

// NewFixedClock returns a Clock frozen at t.
func NewFixedClock(t time.Time) FixedClock {
	return FixedClock{at: t}
}

// Now returns the frozen instant.
func (c FixedClock) Now() time.Time {
	return c.at
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}
