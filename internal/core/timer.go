package core

import "time"

// FixedStep paces simulation ticks at a target rate independent of the frame
// rate. Callers poll ShouldStep once per frame.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting tps ticks per second. The
// first poll always steps.
func NewFixedStep(tps float64) *FixedStep {
	return NewFixedStepWithClock(tps, time.Now)
}

// NewFixedStepWithClock is NewFixedStep with an explicit time source.
func NewFixedStepWithClock(tps float64, now func() time.Time) *FixedStep {
	fs := &FixedStep{now: now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to one tick per
// second.
func (f *FixedStep) SetTPS(tps float64) {
	if tps <= 0 {
		tps = 1
	}
	f.step = time.Duration(float64(time.Second) / tps)
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
}

// Step returns the current interval between ticks.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick. At
// most one tick is granted per call; lag beyond one interval is dropped.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

// Reset discards accumulated time so the next poll waits a full interval.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}
