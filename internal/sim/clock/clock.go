// Package clock turns continuous elapsed time into discrete simulation steps.
//
// Every moving entity owns a Countdown; the host owns a Stopwatch that
// measures the real time between frames.
package clock

import "time"

// Countdown fires once each time its remaining time runs out, then rearms to
// the full interval. Overshoot is discarded rather than carried into the next
// period. Times are in seconds.
type Countdown struct {
	interval  float64
	remaining float64
}

// NewCountdown creates a countdown with nothing remaining, so the first
// Advance fires immediately.
func NewCountdown(interval float64) Countdown {
	return Countdown{interval: interval}
}

// Advance subtracts dt and reports whether the countdown expired. On expiry the
// countdown is rearmed to the interval.
func (c *Countdown) Advance(dt float64) bool {
	c.remaining -= dt
	if c.remaining > 0 {
		return false
	}
	c.remaining = c.interval
	return true
}

// Interval returns the period in seconds.
func (c *Countdown) Interval() float64 {
	return c.interval
}

// Remaining returns the time left until the next expiry.
func (c *Countdown) Remaining() float64 {
	return c.remaining
}

// SetInterval changes the period. Remaining time never exceeds the new period.
func (c *Countdown) SetInterval(interval float64) {
	c.interval = interval
	if c.remaining > interval {
		c.remaining = interval
	}
}

// Rearm restarts the current period from the full interval.
func (c *Countdown) Rearm() {
	c.remaining = c.interval
}

// Progress returns how far through the current period the countdown is, in
// [0,1]. It is used to interpolate rendering between two discrete steps.
func (c *Countdown) Progress() float64 {
	if c.remaining <= 0 || c.interval <= 0 {
		return 0
	}
	p := 1 - c.remaining/c.interval
	if p < 0 {
		return 0
	}
	return p
}

// Stopwatch measures elapsed time between host frames.
type Stopwatch struct {
	last  time.Time
	limit time.Duration
}

// NewStopwatch creates a stopwatch. Laps longer than limit are clamped so a
// stalled terminal does not teleport entities; a zero limit disables clamping.
func NewStopwatch(limit time.Duration) *Stopwatch {
	return &Stopwatch{limit: limit}
}

// Lap returns the seconds elapsed since the previous Lap. The first call
// returns zero.
func (s *Stopwatch) Lap(now time.Time) float64 {
	if s.last.IsZero() {
		s.last = now
		return 0
	}
	d := now.Sub(s.last)
	s.last = now
	if d < 0 {
		return 0
	}
	if s.limit > 0 && d > s.limit {
		d = s.limit
	}
	return d.Seconds()
}

// Restart forgets the previous timestamp.
func (s *Stopwatch) Restart() {
	s.last = time.Time{}
}

// FrameInterval returns the duration of one frame at the given rate.
func FrameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
