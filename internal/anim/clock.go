package anim

import "time"

// Clock is a driver-local clock in seconds since the driver's activation.
type Clock struct {
	Elapsed float64

	last   time.Time
	primed bool
}

// Advance adds the time since the previous call. The first call only
// records the timestamp. It returns the delta in seconds.
func (c *Clock) Advance(now time.Time) float64 {
	if !c.primed {
		c.last = now
		c.primed = true
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		dt = 0
	}
	c.Elapsed += dt
	return dt
}

// Step adds dt seconds without consulting a timestamp.
func (c *Clock) Step(dt float64) {
	if dt > 0 {
		c.Elapsed += dt
	}
}

// Reset sets Elapsed back to zero. The last timestamp is kept so the next
// Advance measures from the previous tick.
func (c *Clock) Reset() {
	c.Elapsed = 0
}
