package core

import "time"

// FixedStep paces generations at a steady rate independent of the frame rate
// that polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep running rate steps per second. The first
// ShouldStep call always steps.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the number of steps per second. Non-positive rates fall
// back to 60.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.step = time.Second / time.Duration(rate)
}

// Rate returns the configured steps per second.
func (f *FixedStep) Rate() int { return int(time.Second / f.step) }

// ShouldStep reports whether a step is due. At most one step is reported per
// call; time owed beyond one step is dropped so a stalled frame does not
// cause a burst of generations.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	return true
}
