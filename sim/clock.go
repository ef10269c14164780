package sim

import (
	"math"
	"time"
)

// Clock is a monotonic time source for the frame driver
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock; time.Time carries a monotonic reading
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClampDelta maps a raw elapsed time into [0, maxDelta].
// NaN, infinities and negative values become 0.
func ClampDelta(dt, maxDelta float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	if dt > maxDelta {
		return maxDelta
	}
	return dt
}

// FrameTimer turns clock readings into per-tick deltas
type FrameTimer struct {
	clock    Clock
	last     time.Time
	maxDelta float64

	// Hitch is set when the last raw delta had to be clamped
	Hitch bool
	// Raw is the last unclamped delta in seconds
	Raw float64
}

// NewFrameTimer creates a timer starting at the clock's current reading
func NewFrameTimer(clock Clock, maxDelta float64) *FrameTimer {
	return &FrameTimer{
		clock:    clock,
		last:     clock.Now(),
		maxDelta: maxDelta,
	}
}

// Tick returns the clamped seconds elapsed since the previous Tick or Reset
func (t *FrameTimer) Tick() float64 {
	now := t.clock.Now()
	t.Raw = now.Sub(t.last).Seconds()
	t.last = now
	dt := ClampDelta(t.Raw, t.maxDelta)
	t.Hitch = dt != t.Raw
	return dt
}

// Reset restarts the measurement from now, used when resuming from pause
func (t *FrameTimer) Reset() {
	t.last = t.clock.Now()
	t.Hitch = false
	t.Raw = 0
}
