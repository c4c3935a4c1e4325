package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// SecondsSince returns the seconds elapsed between from and the clock's current
// time, or zero when from is unset or in the future
func SecondsSince(c Clock, from time.Time) float64 {
	if from.IsZero() {
		return 0
	}
	d := c.Now().Sub(from)
	if d < 0 {
		return 0
	}
	return d.Seconds()
}
