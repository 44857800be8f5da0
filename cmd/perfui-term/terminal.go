package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/perfui/ecs"
	"github.com/plus3/perfui/host"
)

// applyEvent folds a terminal event into the window state and reports
// whether the program should quit.
func applyEvent(window *host.Window, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return ev.Rune() == 'q'
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		setSize(window, w, h)
	case *tcell.EventMouse:
		x, y := ev.Position()
		window.SetCursor(float64(x), float64(y), x >= 0 && y >= 0 && x < window.Width && y < window.Height)
	}
	return false
}

// setSize treats one cell as one logical and physical pixel.
func setSize(window *host.Window, w, h int) {
	window.Width, window.Height = w, h
	window.PhysicalWidth, window.PhysicalHeight = w, h
	window.ScaleFactor = 1
}

func newWindow(screen tcell.Screen) host.Window {
	window := host.Window{
		Mode:        host.Windowed,
		PresentMode: host.Immediate,
	}
	w, h := screen.Size()
	setSize(&window, w, h)
	return window
}

// ClearSystem blanks the screen at the start of each frame.
type ClearSystem struct {
	Screen tcell.Screen
}

func (s *ClearSystem) Execute(frame *ecs.UpdateFrame) {
	s.Screen.Clear()
}
