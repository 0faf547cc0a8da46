package core

import "time"

// FixedStep paces generation updates at a steady rate independent of the
// frame rate driving it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting rate steps per second. The
// first call to ShouldStep always reports true.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.step = time.Second / time.Duration(rate)
}

// Interval returns the time between steps.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether enough time has elapsed for one more step.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
