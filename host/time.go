package host

import (
	"time"

	"github.com/plus3/perfui/ecs"
)

// Time tracks wall clock and running time.
type Time struct {
	// Now reads the wall clock. Nil means time.Now.
	Now     func() time.Time
	Startup time.Time
	Elapsed time.Duration
	Delta   time.Duration
}

// NewTime creates a Time whose startup is the current wall clock.
func NewTime() Time {
	return Time{Startup: time.Now()}
}

// Wall returns the current wall-clock time.
func (t *Time) Wall() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// Advance moves running time forward by delta.
func (t *Time) Advance(delta time.Duration) {
	t.Delta = delta
	t.Elapsed += delta
}

// DefaultTimestep is the fixed update period, 64 Hz.
const DefaultTimestep = time.Second / 64

// FixedTime is a fixed-timestep accumulator. Overstep is the time
// accumulated towards the next step.
type FixedTime struct {
	Timestep time.Duration
	Overstep time.Duration
}

// NewFixedTime creates an accumulator with the given step. A non-positive
// step means DefaultTimestep.
func NewFixedTime(step time.Duration) FixedTime {
	if step <= 0 {
		step = DefaultTimestep
	}
	return FixedTime{Timestep: step}
}

// Accumulate adds delta and consumes whole timesteps, returning how many ran.
func (f *FixedTime) Accumulate(delta time.Duration) int {
	if f.Timestep <= 0 {
		return 0
	}
	f.Overstep += delta
	steps := int(f.Overstep / f.Timestep)
	f.Overstep -= time.Duration(steps) * f.Timestep
	return steps
}

// OverstepFraction returns Overstep as a fraction of Timestep, in [0, 1).
func (f *FixedTime) OverstepFraction() float64 {
	if f.Timestep <= 0 {
		return 0
	}
	return float64(f.Overstep) / float64(f.Timestep)
}

// TimeSystem advances Time and FixedTime from the scheduler's delta time.
// Either singleton may be absent.
type TimeSystem struct {
	Time      ecs.Singleton[Time]
	FixedTime ecs.Singleton[FixedTime]
}

// Execute advances Time and accumulates FixedTime by the frame delta.
func (s *TimeSystem) Execute(frame *ecs.UpdateFrame) {
	delta := time.Duration(frame.DeltaTime * float64(time.Second))

	if t := s.Time.Get(); t != nil {
		t.Advance(delta)
	}
	if f := s.FixedTime.Get(); f != nil {
		f.Accumulate(delta)
	}
}
