package perfui

import (
	"strconv"

	"github.com/plus3/perfui/host"
)

// EntryWindowResolution shows the window size as "WIDTHxHEIGHT".
type EntryWindowResolution struct {
	Name string
	// Physical selects the framebuffer size instead of the logical size.
	Physical     bool
	DisplayUnits bool
	Sort         int

	width, height int
	ok            bool
}

// NewEntryWindowResolution returns a logical resolution entry.
func NewEntryWindowResolution() EntryWindowResolution {
	return EntryWindowResolution{
		DisplayUnits: true,
		Sort:         SortWindowResolution,
	}
}

func (e *EntryWindowResolution) Label() string { return labelOr(e.Name, "Window Resolution") }
func (e *EntryWindowResolution) SortKey() int  { return e.Sort }

func (e *EntryWindowResolution) Update(src *Sources) {
	if src == nil || src.Window == nil {
		e.ok = false
		return
	}
	w := src.Window
	if e.Physical {
		e.width, e.height = w.PhysicalWidth, w.PhysicalHeight
	} else {
		e.width, e.height = w.Width, w.Height
	}
	e.ok = true
}

func (e *EntryWindowResolution) Display() Display {
	d := textDisplay(strconv.Itoa(e.width)+"x"+strconv.Itoa(e.height), e.ok)
	if e.ok && e.DisplayUnits {
		d.Unit = "px"
	}
	return d
}

// EntryWindowScaleFactor shows the window's DPI scale factor.
type EntryWindowScaleFactor struct {
	Name         string
	Precision    int
	DisplayUnits bool
	Sort         int

	value float64
	ok    bool
}

// NewEntryWindowScaleFactor returns a scale factor entry.
func NewEntryWindowScaleFactor() EntryWindowScaleFactor {
	return EntryWindowScaleFactor{
		Precision: 2,
		Sort:      SortWindowScaleFactor,
	}
}

func (e *EntryWindowScaleFactor) Label() string { return labelOr(e.Name, "Window Scale Factor") }
func (e *EntryWindowScaleFactor) SortKey() int  { return e.Sort }

func (e *EntryWindowScaleFactor) Update(src *Sources) {
	if src == nil || src.Window == nil {
		e.ok = false
		return
	}
	e.value, e.ok = src.Window.ScaleFactor, true
}

func (e *EntryWindowScaleFactor) Display() Display {
	return numberDisplay(e.value, e.ok, e.Precision, "x", e.DisplayUnits, Thresholds{})
}

// EntryWindowMode shows whether the window is windowed or fullscreen.
type EntryWindowMode struct {
	Name string
	Sort int

	mode host.WindowMode
	ok   bool
}

// NewEntryWindowMode returns a window mode entry.
func NewEntryWindowMode() EntryWindowMode {
	return EntryWindowMode{Sort: SortWindowMode}
}

func (e *EntryWindowMode) Label() string { return labelOr(e.Name, "Window Mode") }
func (e *EntryWindowMode) SortKey() int  { return e.Sort }

func (e *EntryWindowMode) Update(src *Sources) {
	if src == nil || src.Window == nil {
		e.ok = false
		return
	}
	e.mode, e.ok = src.Window.Mode, true
}

func (e *EntryWindowMode) Display() Display {
	return textDisplay(e.mode.String(), e.ok)
}

// EntryWindowPresentMode shows the presentation (vsync) mode.
type EntryWindowPresentMode struct {
	Name string
	Sort int

	mode host.PresentMode
	ok   bool
}

// NewEntryWindowPresentMode returns a present mode entry.
func NewEntryWindowPresentMode() EntryWindowPresentMode {
	return EntryWindowPresentMode{Sort: SortWindowPresentMode}
}

func (e *EntryWindowPresentMode) Label() string { return labelOr(e.Name, "Present Mode") }
func (e *EntryWindowPresentMode) SortKey() int  { return e.Sort }

func (e *EntryWindowPresentMode) Update(src *Sources) {
	if src == nil || src.Window == nil {
		e.ok = false
		return
	}
	e.mode, e.ok = src.Window.PresentMode, true
}

func (e *EntryWindowPresentMode) Display() Display {
	return textDisplay(e.mode.String(), e.ok)
}

// EntryCursorPosition shows the cursor position as "x, y". It is missing while
// the cursor is outside the window.
type EntryCursorPosition struct {
	Name         string
	Precision    int
	DisplayUnits bool
	Sort         int

	pos host.Vec2
	ok  bool
}

// NewEntryCursorPosition returns a cursor position entry in logical pixels.
func NewEntryCursorPosition() EntryCursorPosition {
	return EntryCursorPosition{Sort: SortCursorPosition}
}

func (e *EntryCursorPosition) Label() string { return labelOr(e.Name, "Cursor Position") }
func (e *EntryCursorPosition) SortKey() int  { return e.Sort }

func (e *EntryCursorPosition) Update(src *Sources) {
	if src == nil || src.Window == nil || src.Window.Cursor == nil {
		e.ok = false
		return
	}
	e.pos, e.ok = *src.Window.Cursor, true
}

func (e *EntryCursorPosition) Display() Display {
	d := textDisplay(FormatFloat(e.pos.X, e.Precision)+", "+FormatFloat(e.pos.Y, e.Precision), e.ok)
	if e.ok && e.DisplayUnits {
		d.Unit = "px"
	}
	return d
}
