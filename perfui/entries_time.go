package perfui

import "time"

// EntryClock shows the wall-clock time of day.
type EntryClock struct {
	Name      string
	Precision int
	UTC       bool
	Sort      int

	now time.Time
	ok  bool
}

// NewEntryClock returns a local wall clock entry with whole seconds.
func NewEntryClock() EntryClock {
	return EntryClock{Sort: SortClock}
}

func (e *EntryClock) Label() string { return labelOr(e.Name, "Time") }
func (e *EntryClock) SortKey() int  { return e.Sort }

func (e *EntryClock) Update(src *Sources) {
	if src == nil || src.Time == nil {
		e.ok = false
		return
	}
	e.now, e.ok = src.Time.Wall(), true
}

func (e *EntryClock) Display() Display {
	now := e.now
	if e.UTC {
		now = now.UTC()
	} else {
		now = now.Local()
	}
	return textDisplay(now.Format(clockLayout(e.Precision)), e.ok)
}

// EntryRunningTime shows the time elapsed since startup, in seconds or h:mm:ss.
type EntryRunningTime struct {
	Name         string
	Precision    int
	HMS          bool
	DisplayUnits bool
	Sort         int

	elapsed time.Duration
	ok      bool
}

// NewEntryRunningTime returns a running time entry in seconds.
func NewEntryRunningTime() EntryRunningTime {
	return EntryRunningTime{
		Precision:    3,
		DisplayUnits: true,
		Sort:         SortRunningTime,
	}
}

func (e *EntryRunningTime) Label() string { return labelOr(e.Name, "Running Time") }
func (e *EntryRunningTime) SortKey() int  { return e.Sort }

func (e *EntryRunningTime) Update(src *Sources) {
	if src == nil || src.Time == nil {
		e.ok = false
		return
	}
	e.elapsed, e.ok = src.Time.Elapsed, true
}

func (e *EntryRunningTime) Display() Display {
	if e.HMS {
		return textDisplay(FormatHMS(e.elapsed, e.Precision), e.ok)
	}
	return numberDisplay(e.elapsed.Seconds(), e.ok, e.Precision, "s", e.DisplayUnits, Thresholds{})
}

// EntryFixedTimestep shows the fixed update period in milliseconds.
type EntryFixedTimestep struct {
	Name         string
	Precision    int
	DisplayUnits bool
	Sort         int

	step time.Duration
	ok   bool
}

// NewEntryFixedTimestep returns a fixed timestep entry in milliseconds.
func NewEntryFixedTimestep() EntryFixedTimestep {
	return EntryFixedTimestep{
		Precision:    2,
		DisplayUnits: true,
		Sort:         SortFixedTimestep,
	}
}

func (e *EntryFixedTimestep) Label() string { return labelOr(e.Name, "Fixed Timestep") }
func (e *EntryFixedTimestep) SortKey() int  { return e.Sort }

func (e *EntryFixedTimestep) Update(src *Sources) {
	if src == nil || src.FixedTime == nil {
		e.ok = false
		return
	}
	e.step, e.ok = src.FixedTime.Timestep, true
}

func (e *EntryFixedTimestep) Display() Display {
	return numberDisplay(millis(e.step), e.ok, e.Precision, "ms", e.DisplayUnits, Thresholds{})
}

// EntryFixedOverstep shows how far the fixed-timestep accumulator is into the
// next step, as a percentage of the step or in milliseconds.
type EntryFixedOverstep struct {
	Name         string
	Precision    int
	AsPercentage bool
	DisplayUnits bool
	Sort         int

	overstep time.Duration
	fraction float64
	ok       bool
}

// NewEntryFixedOverstep returns an overstep entry shown as a percentage of the timestep.
func NewEntryFixedOverstep() EntryFixedOverstep {
	return EntryFixedOverstep{
		Precision:    1,
		AsPercentage: true,
		DisplayUnits: true,
		Sort:         SortFixedOverstep,
	}
}

func (e *EntryFixedOverstep) Label() string { return labelOr(e.Name, "Fixed Overstep") }
func (e *EntryFixedOverstep) SortKey() int  { return e.Sort }

func (e *EntryFixedOverstep) Update(src *Sources) {
	if src == nil || src.FixedTime == nil {
		e.ok = false
		return
	}
	e.overstep = src.FixedTime.Overstep
	e.fraction = src.FixedTime.OverstepFraction()
	e.ok = true
}

func (e *EntryFixedOverstep) Display() Display {
	if e.AsPercentage {
		return numberDisplay(e.fraction*100, e.ok, e.Precision, "%", e.DisplayUnits, Thresholds{})
	}
	return numberDisplay(millis(e.overstep), e.ok, e.Precision, "ms", e.DisplayUnits, Thresholds{})
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
