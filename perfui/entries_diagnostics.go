package perfui

import "github.com/plus3/perfui/diagnostics"

// Default sort keys of the predefined entries. Gaps leave room for custom
// entries between them.
const (
	SortFPS = iota * 10
	SortFPSWorst
	SortFrameTime
	SortFrameTimeWorst
	SortFrameCount
	SortEntityCount
	SortCPUUsage
	SortMemUsage
	SortFixedTimestep
	SortFixedOverstep
	SortRunningTime
	SortClock
	SortCursorPosition
	SortWindowResolution
	SortWindowScaleFactor
	SortWindowMode
	SortWindowPresentMode
)

// diagnosticReading reads path from the store, smoothed or raw.
func diagnosticReading(src *Sources, path diagnostics.Path, smoothed bool) (float64, bool) {
	if src == nil || src.Diagnostics == nil {
		return 0, false
	}
	d, ok := src.Diagnostics.Get(path)
	if !ok {
		return 0, false
	}
	if smoothed {
		return d.Smoothed()
	}
	return d.Value()
}

// diagnosticHistory folds the history of path with pick (Diagnostic.Min or Diagnostic.Max).
func diagnosticHistory(src *Sources, path diagnostics.Path, pick func(*diagnostics.Diagnostic) (float64, bool)) (float64, bool) {
	if src == nil || src.Diagnostics == nil {
		return 0, false
	}
	d, ok := src.Diagnostics.Get(path)
	if !ok {
		return 0, false
	}
	return pick(d)
}

// EntryFPS shows frames per second.
type EntryFPS struct {
	Name         string
	Precision    int
	Smoothed     bool
	DisplayUnits bool
	Thresholds   Thresholds
	Sort         int

	value float64
	ok    bool
}

// NewEntryFPS returns a smoothed, whole-number FPS entry that warns at 50 or below.
func NewEntryFPS() EntryFPS {
	return EntryFPS{
		Smoothed:   true,
		Thresholds: Thresholds{Enabled: true, Warning: 50, Critical: 30, LowerIsWorse: true},
		Sort:       SortFPS,
	}
}

func (e *EntryFPS) Label() string { return labelOr(e.Name, "FPS") }
func (e *EntryFPS) SortKey() int  { return e.Sort }

func (e *EntryFPS) Update(src *Sources) {
	e.value, e.ok = diagnosticReading(src, diagnostics.FPS, e.Smoothed)
}

func (e *EntryFPS) Display() Display {
	return numberDisplay(e.value, e.ok, e.Precision, "fps", e.DisplayUnits, e.Thresholds)
}

// EntryFPSWorst shows the lowest FPS in the diagnostic history.
type EntryFPSWorst struct {
	Name         string
	Precision    int
	DisplayUnits bool
	Thresholds   Thresholds
	Sort         int

	value float64
	ok    bool
}

// NewEntryFPSWorst returns a worst-FPS entry with the FPS thresholds.
func NewEntryFPSWorst() EntryFPSWorst {
	return EntryFPSWorst{
		Thresholds: Thresholds{Enabled: true, Warning: 50, Critical: 30, LowerIsWorse: true},
		Sort:       SortFPSWorst,
	}
}

func (e *EntryFPSWorst) Label() string { return labelOr(e.Name, "FPS (min)") }
func (e *EntryFPSWorst) SortKey() int  { return e.Sort }

func (e *EntryFPSWorst) Update(src *Sources) {
	e.value, e.ok = diagnosticHistory(src, diagnostics.FPS, (*diagnostics.Diagnostic).Min)
}

func (e *EntryFPSWorst) Display() Display {
	return numberDisplay(e.value, e.ok, e.Precision, "fps", e.DisplayUnits, e.Thresholds)
}

// EntryFrameTime shows the frame time in milliseconds.
type EntryFrameTime struct {
	Name         string
	Precision    int
	Smoothed     bool
	DisplayUnits bool
	Thresholds   Thresholds
	Sort         int

	value float64
	ok    bool
}

// NewEntryFrameTime returns a smoothed frame time entry in milliseconds.
func NewEntryFrameTime() EntryFrameTime {
	return EntryFrameTime{
		Precision:    2,
		Smoothed:     true,
		DisplayUnits: true,
		Thresholds:   Thresholds{Enabled: true, Warning: 20, Critical: 34},
		Sort:         SortFrameTime,
	}
}

func (e *EntryFrameTime) Label() string { return labelOr(e.Name, "Frame Time") }
func (e *EntryFrameTime) SortKey() int  { return e.Sort }

func (e *EntryFrameTime) Update(src *Sources) {
	e.value, e.ok = diagnosticReading(src, diagnostics.FrameTime, e.Smoothed)
}

func (e *EntryFrameTime) Display() Display {
	return numberDisplay(e.value, e.ok, e.Precision, "ms", e.DisplayUnits, e.Thresholds)
}

// EntryFrameTimeWorst shows the longest frame time in the diagnostic history.
type EntryFrameTimeWorst struct {
	Name         string
	Precision    int
	DisplayUnits bool
	Thresholds   Thresholds
	Sort         int

	value float64
	ok    bool
}

// NewEntryFrameTimeWorst returns a worst frame time entry in milliseconds.
func NewEntryFrameTimeWorst() EntryFrameTimeWorst {
	return EntryFrameTimeWorst{
		Precision:    2,
		DisplayUnits: true,
		Thresholds:   Thresholds{Enabled: true, Warning: 20, Critical: 34},
		Sort:         SortFrameTimeWorst,
	}
}

func (e *EntryFrameTimeWorst) Label() string { return labelOr(e.Name, "Frame Time (max)") }
func (e *EntryFrameTimeWorst) SortKey() int  { return e.Sort }

func (e *EntryFrameTimeWorst) Update(src *Sources) {
	e.value, e.ok = diagnosticHistory(src, diagnostics.FrameTime, (*diagnostics.Diagnostic).Max)
}

func (e *EntryFrameTimeWorst) Display() Display {
	return numberDisplay(e.value, e.ok, e.Precision, "ms", e.DisplayUnits, e.Thresholds)
}

// EntryFrameCount shows the number of frames since startup.
type EntryFrameCount struct {
	Name string
	Sort int

	value float64
	ok    bool
}

// NewEntryFrameCount returns a frame count entry.
func NewEntryFrameCount() EntryFrameCount {
	return EntryFrameCount{Sort: SortFrameCount}
}

func (e *EntryFrameCount) Label() string { return labelOr(e.Name, "Frame Count") }
func (e *EntryFrameCount) SortKey() int  { return e.Sort }

func (e *EntryFrameCount) Update(src *Sources) {
	e.value, e.ok = diagnosticReading(src, diagnostics.FrameCount, false)
}

func (e *EntryFrameCount) Display() Display {
	return numberDisplay(e.value, e.ok, 0, "", false, Thresholds{})
}

// EntryEntityCount shows the number of live entities.
type EntryEntityCount struct {
	Name       string
	Thresholds Thresholds
	Sort       int

	value float64
	ok    bool
}

// NewEntryEntityCount returns an entity count entry.
func NewEntryEntityCount() EntryEntityCount {
	return EntryEntityCount{Sort: SortEntityCount}
}

func (e *EntryEntityCount) Label() string { return labelOr(e.Name, "#Entities") }
func (e *EntryEntityCount) SortKey() int  { return e.Sort }

func (e *EntryEntityCount) Update(src *Sources) {
	e.value, e.ok = diagnosticReading(src, diagnostics.EntityCount, false)
}

func (e *EntryEntityCount) Display() Display {
	return numberDisplay(e.value, e.ok, 0, "", false, e.Thresholds)
}
