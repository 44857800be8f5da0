package diagnostics

import "time"

// DefaultMaxHistory is the number of samples a Diagnostic keeps unless told otherwise.
const DefaultMaxHistory = 120

// DefaultSmoothingFactor weights new samples in the exponential moving average.
const DefaultSmoothingFactor = 2.0 / (DefaultMaxHistory + 1)

// Measurement is a single sample.
type Measurement struct {
	Time  time.Time
	Value float64
}

// Diagnostic is one measurement stream with a fixed-capacity history.
type Diagnostic struct {
	Path            Path
	Suffix          string
	Enabled         bool
	SmoothingFactor float64

	history []Measurement
	start   int
	count   int
	sum     float64
	ema     float64
	hasEMA  bool
	now     func() time.Time
}

// New creates an enabled diagnostic with the default history length and smoothing.
func New(path Path) *Diagnostic {
	return &Diagnostic{
		Path:            path,
		Enabled:         true,
		SmoothingFactor: DefaultSmoothingFactor,
		history:         make([]Measurement, DefaultMaxHistory),
		now:             time.Now,
	}
}

// WithSuffix sets the unit suffix shown next to values, e.g. "ms".
func (d *Diagnostic) WithSuffix(suffix string) *Diagnostic {
	d.Suffix = suffix
	return d
}

// WithMaxHistory resizes the history buffer, dropping recorded samples.
// Values below one are treated as one.
func (d *Diagnostic) WithMaxHistory(n int) *Diagnostic {
	n = max(n, 1)
	d.history = make([]Measurement, n)
	d.Clear()
	return d
}

// WithSmoothingFactor sets the EMA weight of new samples, clamped to [0, 1].
func (d *Diagnostic) WithSmoothingFactor(f float64) *Diagnostic {
	d.SmoothingFactor = min(max(f, 0), 1)
	return d
}

// Add records a sample. When the history is full the oldest sample is dropped.
// A Diagnostic not built with New gets the default history length on first use.
func (d *Diagnostic) Add(value float64) {
	if len(d.history) == 0 {
		d.history = make([]Measurement, DefaultMaxHistory)
	}
	now := d.now
	if now == nil {
		now = time.Now
	}
	m := Measurement{Time: now(), Value: value}

	if d.count == len(d.history) {
		d.sum -= d.history[d.start].Value
		d.history[d.start] = m
		d.start = (d.start + 1) % len(d.history)
	} else {
		d.history[(d.start+d.count)%len(d.history)] = m
		d.count++
	}
	d.sum += value

	if !d.hasEMA {
		d.ema = value
		d.hasEMA = true
	} else {
		d.ema += (value - d.ema) * d.SmoothingFactor
	}
}

// Clear drops all samples.
func (d *Diagnostic) Clear() {
	d.start = 0
	d.count = 0
	d.sum = 0
	d.ema = 0
	d.hasEMA = false
}

// Len returns the number of samples in the history.
func (d *Diagnostic) Len() int {
	return d.count
}

// MaxHistory returns the history capacity.
func (d *Diagnostic) MaxHistory() int {
	return len(d.history)
}

// Measurement returns the latest sample.
func (d *Diagnostic) Measurement() (Measurement, bool) {
	if d.count == 0 {
		return Measurement{}, false
	}
	return d.history[(d.start+d.count-1)%len(d.history)], true
}

// Value returns the latest sample value.
func (d *Diagnostic) Value() (float64, bool) {
	m, ok := d.Measurement()
	return m.Value, ok
}

// Smoothed returns the exponential moving average of all samples.
func (d *Diagnostic) Smoothed() (float64, bool) {
	return d.ema, d.hasEMA
}

// Average returns the arithmetic mean of the history.
func (d *Diagnostic) Average() (float64, bool) {
	if d.count == 0 {
		return 0, false
	}
	return d.sum / float64(d.count), true
}

// Min returns the smallest value in the history.
func (d *Diagnostic) Min() (float64, bool) {
	return d.fold(func(a, b float64) float64 { return min(a, b) })
}

// Max returns the largest value in the history.
func (d *Diagnostic) Max() (float64, bool) {
	return d.fold(func(a, b float64) float64 { return max(a, b) })
}

func (d *Diagnostic) fold(pick func(a, b float64) float64) (float64, bool) {
	if d.count == 0 {
		return 0, false
	}
	result := d.history[d.start].Value
	for i := 1; i < d.count; i++ {
		result = pick(result, d.history[(d.start+i)%len(d.history)].Value)
	}
	return result, true
}

// History returns the samples oldest first.
func (d *Diagnostic) History() []Measurement {
	out := make([]Measurement, d.count)
	for i := range out {
		out[i] = d.history[(d.start+i)%len(d.history)]
	}
	return out
}

// Values returns the sample values oldest first.
func (d *Diagnostic) Values() []float64 {
	out := make([]float64, d.count)
	for i := range out {
		out[i] = d.history[(d.start+i)%len(d.history)].Value
	}
	return out
}
