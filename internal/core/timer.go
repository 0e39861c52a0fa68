package core

import "time"

// Pulse is a wall-clock square wave used to pace UI blink effects
// independently of the tick rate.
type Pulse struct {
	period time.Duration
	start  time.Time
}

// NewPulse constructs a Pulse that completes a full on/off cycle every
// period. Non-positive periods fall back to one second.
func NewPulse(period time.Duration) *Pulse {
	if period <= 0 {
		period = time.Second
	}
	return &Pulse{period: period, start: time.Now()}
}

// On reports whether the pulse is currently in the first half of its cycle.
func (p *Pulse) On() bool {
	elapsed := time.Since(p.start) % p.period
	return elapsed < p.period/2
}

// Reset restarts the cycle so the pulse is on right now.
func (p *Pulse) Reset() {
	p.start = time.Now()
}
