package core

// Countdown is a periodic timer advanced explicitly by delta time rather
// than by the host event loop. Because it only moves when Tick is called,
// pausing the session freezes it for free, and tests can drive it
// deterministically.
type Countdown struct {
	interval  float64 // Seconds between firings
	remaining float64 // Seconds until the next firing
}

// NewCountdown creates a countdown that first fires after interval seconds.
func NewCountdown(interval float64) Countdown {
	return Countdown{interval: interval, remaining: interval}
}

// Tick advances the countdown by dt seconds and reports whether it fired.
// On firing, the unconsumed overshoot carries into the next period so the
// long-run rate stays accurate.
func (c *Countdown) Tick(dt float64) bool {
	if c.interval <= 0 {
		return false
	}
	c.remaining -= dt
	if c.remaining > 0 {
		return false
	}
	c.remaining += c.interval
	if c.remaining < 0 {
		// Guard against a dt far larger than the interval.
		c.remaining = c.interval
	}
	return true
}

// Rearm changes the interval and restarts the countdown from the full new
// interval, abandoning any progress toward the previous deadline.
func (c *Countdown) Rearm(interval float64) {
	c.interval = interval
	c.remaining = interval
}

// Reset restarts the countdown from the full current interval.
func (c *Countdown) Reset() {
	c.remaining = c.interval
}

// Interval returns the current firing period in seconds.
func (c *Countdown) Interval() float64 {
	return c.interval
}
