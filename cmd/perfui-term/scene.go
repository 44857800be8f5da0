package main

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/perfui/ecs"
	"github.com/plus3/perfui/host"
)

// Dot is a glyph bouncing around the terminal.
type Dot struct {
	X, Y   float64
	VX, VY float64
	Glyph  rune
}

var glyphs = []rune{'*', 'o', '+', '.'}

func spawnDots(storage *ecs.Storage, rng *rand.Rand, n, w, h int) {
	for range n {
		storage.Spawn(Dot{
			X:     rng.Float64() * float64(w),
			Y:     rng.Float64() * float64(h),
			VX:    rng.Float64()*30 - 15,
			VY:    rng.Float64()*16 - 8,
			Glyph: glyphs[rng.Intn(len(glyphs))],
		})
	}
}

// DotSystem moves dots inside the window bounds and draws them.
type DotSystem struct {
	Dots   ecs.Query[struct{ Dot *Dot }]
	Window ecs.Singleton[host.Window]

	Screen tcell.Screen
}

func (s *DotSystem) Execute(frame *ecs.UpdateFrame) {
	window := s.Window.Get()
	if window == nil {
		return
	}
	w, h := float64(window.Width), float64(window.Height)
	style := tcell.StyleDefault.Foreground(tcell.ColorTeal)

	for d := range s.Dots.Values() {
		dot := d.Dot
		dot.X += dot.VX * frame.DeltaTime
		dot.Y += dot.VY * frame.DeltaTime
		dot.X, dot.VX = bounce(dot.X, dot.VX, w)
		dot.Y, dot.VY = bounce(dot.Y, dot.VY, h)
		s.Screen.SetContent(int(dot.X), int(dot.Y), dot.Glyph, nil, style)
	}
}

// bounce reflects pos into [0, limit) and flips the velocity on contact.
func bounce(pos, vel, limit float64) (float64, float64) {
	if limit <= 1 {
		return 0, vel
	}
	switch {
	case pos < 0:
		return -pos, -vel
	case pos >= limit:
		return 2*(limit-1) - pos, -vel
	}
	return pos, vel
}
