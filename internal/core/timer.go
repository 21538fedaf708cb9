package core

import "time"

// Throttle converts elapsed wall-clock time into a whole number of simulation
// steps at a configurable rate. Fractional progress carries over between calls.
type Throttle struct {
	rate        float64
	accumulator float64
	last        time.Time
}

// NewThrottle constructs a Throttle targeting rate steps per second.
func NewThrottle(rate float64) *Throttle {
	t := &Throttle{}
	t.SetRate(rate)
	return t
}

// SetRate changes the step rate. Negative rates are treated as zero.
func (t *Throttle) SetRate(rate float64) {
	if rate < 0 {
		rate = 0
	}
	t.rate = rate
}

// Rate reports the configured steps per second.
func (t *Throttle) Rate() float64 { return t.rate }

// Due reports how many steps should run at now and how much time passed since
// the previous call. The first call only primes the clock.
func (t *Throttle) Due(now time.Time) (int, time.Duration) {
	if t.last.IsZero() {
		t.last = now
		return 0, 0
	}
	delta := now.Sub(t.last)
	t.last = now
	if delta < 0 {
		return 0, 0
	}
	t.accumulator += t.rate * delta.Seconds()
	n := int(t.accumulator)
	t.accumulator -= float64(n)
	return n, delta
}

// Resync drops accumulated progress and restarts the clock, e.g. after a pause.
func (t *Throttle) Resync() {
	t.accumulator = 0
	t.last = time.Time{}
}
