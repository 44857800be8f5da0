package perfui

import (
	"github.com/plus3/perfui/diagnostics"
	"github.com/plus3/perfui/host"
)

// Placeholder is the text shown for an entry whose source has no value yet.
const Placeholder = "N/A"

// Entry is the contract every overlay entry type implements on its pointer
// receiver. Entries are components: they live on the overlay entity and hold
// only their own configuration and last observed value.
type Entry interface {
	// Label is the row caption.
	Label() string
	// SortKey orders rows within a panel, lowest first.
	SortKey() int
	// Update reads the entry's source once per frame.
	Update(src *Sources)
	// Display formats the last observed value.
	Display() Display
}

// Display is the formatted state of one entry.
type Display struct {
	Text     string
	Unit     string
	Severity Severity
	// Missing is set when the source had no value; Text is Placeholder.
	Missing bool
}

func missingDisplay() Display {
	return Display{Text: Placeholder, Missing: true}
}

// Sources is what entries read from during Update. Any field may be nil.
type Sources struct {
	Diagnostics *diagnostics.Store
	Time        *host.Time
	FixedTime   *host.FixedTime
	Window      *host.Window
}

// Severity is the highlight level of a value.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityWarning
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "normal"
	}
}

// Thresholds classify a numeric value. With Warning < Critical, values below
// Warning are normal, values in [Warning, Critical) are warnings and values at
// or above Critical are critical. LowerIsWorse mirrors the comparison for
// metrics such as FPS, where Warning > Critical. The zero value is disabled.
type Thresholds struct {
	Enabled      bool
	Warning      float64
	Critical     float64
	LowerIsWorse bool
}

// Classify returns the severity of v. Disabled thresholds classify everything
// as normal.
func (t Thresholds) Classify(v float64) Severity {
	if !t.Enabled {
		return SeverityNormal
	}
	if t.LowerIsWorse {
		switch {
		case v <= t.Critical:
			return SeverityCritical
		case v <= t.Warning:
			return SeverityWarning
		}
		return SeverityNormal
	}
	switch {
	case v >= t.Critical:
		return SeverityCritical
	case v >= t.Warning:
		return SeverityWarning
	}
	return SeverityNormal
}
