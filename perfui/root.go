package perfui

import (
	"fmt"
	"image/color"
	"strings"
)

// Corner is the screen corner an overlay is anchored to.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

var cornerNames = [...]string{"top-left", "top-right", "bottom-left", "bottom-right"}

func (c Corner) String() string {
	if c < 0 || int(c) >= len(cornerNames) {
		return fmt.Sprintf("Corner(%d)", int(c))
	}
	return cornerNames[c]
}

// ParseCorner accepts the names returned by Corner.String, case-insensitively.
// Underscores may be used instead of dashes.
func ParseCorner(s string) (Corner, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, n := range cornerNames {
		if n == name {
			return Corner(i), nil
		}
	}
	return 0, fmt.Errorf("unknown corner %q", s)
}

// Root holds the presentation settings shared by every entry on an overlay
// entity. Entities carrying entries but no Root get the Plugin's Root.
type Root struct {
	DisplayLabels bool
	// DisplayUnits hides every unit when false, regardless of entry settings.
	DisplayUnits bool
	// Placeholder replaces the text of missing values. Empty means Placeholder.
	Placeholder string
	Corner      Corner
	Margin      float64
	FontSize    float64

	LabelColor      color.RGBA
	ValueColor      color.RGBA
	WarningColor    color.RGBA
	CriticalColor   color.RGBA
	MissingColor    color.RGBA
	BackgroundColor color.RGBA
}

// DefaultRoot returns the settings used when none are given.
func DefaultRoot() Root {
	return Root{
		DisplayLabels:   true,
		DisplayUnits:    true,
		Placeholder:     Placeholder,
		Corner:          TopLeft,
		Margin:          8,
		FontSize:        16,
		LabelColor:      color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
		ValueColor:      color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		WarningColor:    color.RGBA{R: 0xff, G: 0xc8, B: 0x32, A: 0xff},
		CriticalColor:   color.RGBA{R: 0xff, G: 0x46, B: 0x46, A: 0xff},
		MissingColor:    color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
		BackgroundColor: color.RGBA{A: 0xc0},
	}
}

// ColorFor returns the value color of row.
func (r *Root) ColorFor(row Row) color.RGBA {
	switch {
	case row.Missing:
		return r.MissingColor
	case row.Severity == SeverityCritical:
		return r.CriticalColor
	case row.Severity == SeverityWarning:
		return r.WarningColor
	}
	return r.ValueColor
}

func (r *Root) placeholder() string {
	if r.Placeholder == "" {
		return Placeholder
	}
	return r.Placeholder
}

// Panel is the rendered state of one overlay entity, rebuilt every frame by
// the collect system.
type Panel struct {
	Rows []Row
}

// Row is one formatted entry.
type Row struct {
	// Kind is the entry type name, e.g. "EntryFPS".
	Kind     string
	Label    string
	Value    string
	Unit     string
	Severity Severity
	Missing  bool
	Color    color.RGBA
	SortKey  int
}

// Text returns the value followed by its unit, if any.
func (r Row) Text() string {
	if r.Unit == "" {
		return r.Value
	}
	return r.Value + " " + r.Unit
}
