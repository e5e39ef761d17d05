package common

import "time"

// Clock measures the wall time between loop iterations. It relies on the
// monotonic reading carried by time.Time.
type Clock struct {
	now  func() time.Time
	prev time.Time
}

func NewClock() *Clock {
	return NewClockFunc(time.Now)
}

// NewClockFunc returns a clock reading from now, starting at its current
// value.
func NewClockFunc(now func() time.Time) *Clock {
	return &Clock{now: now, prev: now()}
}

// Tick returns the seconds elapsed since the previous Tick, or since the
// clock was created for the first call.
func (c *Clock) Tick() float64 {
	t := c.now()
	dt := t.Sub(c.prev).Seconds()
	c.prev = t
	if dt < 0 {
		return 0
	}
	return dt
}

// Restart discards the time accumulated since the last Tick, so a paused
// host does not feed the pause into the next step.
func (c *Clock) Restart() {
	c.prev = c.now()
}
