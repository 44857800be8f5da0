// Package ebitenhost feeds the host.Window singleton from Ebiten's window state.
package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/perfui/ecs"
	"github.com/plus3/perfui/host"
)

// Snapshot is the raw window state read from Ebiten in one frame.
type Snapshot struct {
	Width, Height    int
	ScaleFactor      float64
	Fullscreen       bool
	Vsync            bool
	CursorX, CursorY int
}

// ReadSnapshot reads the current Ebiten window state. It must be called from
// the game loop.
func ReadSnapshot() Snapshot {
	s := Snapshot{
		ScaleFactor: 1,
		Fullscreen:  ebiten.IsFullscreen(),
		Vsync:       ebiten.IsVsyncEnabled(),
	}
	if monitor := ebiten.Monitor(); monitor != nil {
		s.ScaleFactor = monitor.DeviceScaleFactor()
	}
	s.Width, s.Height = ebiten.WindowSize()
	s.CursorX, s.CursorY = ebiten.CursorPosition()
	return s
}

// Apply copies s into w.
func (s Snapshot) Apply(w *host.Window) {
	scale := s.ScaleFactor
	if scale <= 0 {
		scale = 1
	}

	w.Width, w.Height = s.Width, s.Height
	w.PhysicalWidth = int(math.Round(float64(s.Width) * scale))
	w.PhysicalHeight = int(math.Round(float64(s.Height) * scale))
	w.ScaleFactor = scale

	w.Mode = host.Windowed
	if s.Fullscreen {
		w.Mode = host.BorderlessFullscreen
	}
	w.PresentMode = host.AutoNoVsync
	if s.Vsync {
		w.PresentMode = host.AutoVsync
	}

	inside := s.CursorX >= 0 && s.CursorY >= 0 && s.CursorX < s.Width && s.CursorY < s.Height
	w.SetCursor(float64(s.CursorX), float64(s.CursorY), inside)
}

// WindowSystem refreshes the Window singleton every frame. Register it only in
// programs that run inside ebiten.RunGame.
type WindowSystem struct {
	Window ecs.Singleton[host.Window]

	// Read defaults to ReadSnapshot.
	Read func() Snapshot
}

// Execute copies the current ebiten window state into the Window singleton.
func (s *WindowSystem) Execute(frame *ecs.UpdateFrame) {
	window := s.Window.Get()
	if window == nil {
		return
	}

	read := s.Read
	if read == nil {
		read = ReadSnapshot
	}
	read().Apply(window)
}
