package animation

import "time"

// Clock is the time source tickers measure elapsed time against.
// Hosts use the system clock; tests install a fake one with SetClock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var clock Clock = systemClock{}

// SetClock installs c as the animation clock and returns the previous one
// so tests can restore it.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
