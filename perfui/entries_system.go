package perfui

import "github.com/plus3/perfui/diagnostics"

// EntryCPUUsage shows process CPU usage as a share of the whole machine.
// It needs a Plugin built WithSystemInfo(true).
type EntryCPUUsage struct {
	Name         string
	Precision    int
	Smoothed     bool
	DisplayUnits bool
	Thresholds   Thresholds
	Sort         int

	value float64
	ok    bool
}

// NewEntryCPUUsage returns a CPU usage entry that warns at 50%.
func NewEntryCPUUsage() EntryCPUUsage {
	return EntryCPUUsage{
		Precision:    1,
		DisplayUnits: true,
		Thresholds:   Thresholds{Enabled: true, Warning: 50, Critical: 80},
		Sort:         SortCPUUsage,
	}
}

func (e *EntryCPUUsage) Label() string { return labelOr(e.Name, "CPU Usage") }
func (e *EntryCPUUsage) SortKey() int  { return e.Sort }

func (e *EntryCPUUsage) Update(src *Sources) {
	e.value, e.ok = diagnosticReading(src, diagnostics.ProcessCPUUsage, e.Smoothed)
}

func (e *EntryCPUUsage) Display() Display {
	return numberDisplay(e.value, e.ok, e.Precision, "%", e.DisplayUnits, e.Thresholds)
}

// EntryMemUsage shows the resident memory of the process in MiB.
// It needs a Plugin built WithSystemInfo(true).
type EntryMemUsage struct {
	Name         string
	Precision    int
	DisplayUnits bool
	Thresholds   Thresholds
	Sort         int

	value float64
	ok    bool
}

// NewEntryMemUsage returns a resident memory entry in MiB.
func NewEntryMemUsage() EntryMemUsage {
	return EntryMemUsage{
		Precision:    1,
		DisplayUnits: true,
		Sort:         SortMemUsage,
	}
}

func (e *EntryMemUsage) Label() string { return labelOr(e.Name, "Mem Usage") }
func (e *EntryMemUsage) SortKey() int  { return e.Sort }

func (e *EntryMemUsage) Update(src *Sources) {
	e.value, e.ok = diagnosticReading(src, diagnostics.ProcessMemUsage, false)
}

func (e *EntryMemUsage) Display() Display {
	return numberDisplay(e.value, e.ok, e.Precision, "MiB", e.DisplayUnits, e.Thresholds)
}
