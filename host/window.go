package host

import "fmt"

// Vec2 is a 2D point in logical pixels.
type Vec2 struct {
	X, Y float64
}

// WindowMode is how the window occupies the display.
type WindowMode int

const (
	Windowed WindowMode = iota
	BorderlessFullscreen
	SizedFullscreen
	Fullscreen
)

func (m WindowMode) String() string {
	switch m {
	case Windowed:
		return "Windowed"
	case BorderlessFullscreen:
		return "BorderlessFullscreen"
	case SizedFullscreen:
		return "SizedFullscreen"
	case Fullscreen:
		return "Fullscreen"
	}
	return fmt.Sprintf("WindowMode(%d)", int(m))
}

// PresentMode is the swap chain presentation strategy.
type PresentMode int

const (
	AutoVsync PresentMode = iota
	AutoNoVsync
	Fifo
	FifoRelaxed
	Immediate
	Mailbox
)

func (m PresentMode) String() string {
	switch m {
	case AutoVsync:
		return "AutoVsync"
	case AutoNoVsync:
		return "AutoNoVsync"
	case Fifo:
		return "Fifo"
	case FifoRelaxed:
		return "FifoRelaxed"
	case Immediate:
		return "Immediate"
	case Mailbox:
		return "Mailbox"
	}
	return fmt.Sprintf("PresentMode(%d)", int(m))
}

// Window describes the primary window. The singleton is absent when the
// program has no window.
type Window struct {
	// Width and Height are the logical size.
	Width, Height int
	// PhysicalWidth and PhysicalHeight are the framebuffer size.
	PhysicalWidth, PhysicalHeight int
	ScaleFactor                   float64
	Mode                          WindowMode
	PresentMode                   PresentMode
	// Cursor is nil while the cursor is outside the window.
	Cursor *Vec2
}

// SetCursor records the cursor position, or clears it when inside is false.
func (w *Window) SetCursor(x, y float64, inside bool) {
	if !inside {
		w.Cursor = nil
		return
	}
	if w.Cursor == nil {
		w.Cursor = &Vec2{}
	}
	w.Cursor.X, w.Cursor.Y = x, y
}
