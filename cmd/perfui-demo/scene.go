package main

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/perfui/ecs"
	"github.com/plus3/perfui/host"
)

const spriteSize = 8

var palette = []color.RGBA{
	{255, 179, 186, 255},
	{179, 229, 252, 255},
	{255, 223, 186, 255},
	{186, 255, 201, 255},
	{217, 186, 255, 255},
}

type Sprite struct {
	X, Y   float64
	VX, VY float64
	Color  color.RGBA
}

func newSprite(rng *rand.Rand, w, h int) Sprite {
	return Sprite{
		X:     rng.Float64() * float64(w-spriteSize),
		Y:     rng.Float64() * float64(h-spriteSize),
		VX:    rng.Float64()*240 - 120,
		VY:    rng.Float64()*240 - 120,
		Color: palette[rng.Intn(len(palette))],
	}
}

// step moves s and keeps it inside a w by h area.
func (s *Sprite) step(dt float64, w, h int) {
	s.X += s.VX * dt
	s.Y += s.VY * dt

	maxX, maxY := float64(w-spriteSize), float64(h-spriteSize)
	if s.X < 0 || s.X > maxX {
		s.VX = -s.VX
		s.X = min(max(s.X, 0), maxX)
	}
	if s.Y < 0 || s.Y > maxY {
		s.VY = -s.VY
		s.Y = min(max(s.Y, 0), maxY)
	}
}

// SpriteSystem moves sprites within the window.
type SpriteSystem struct {
	Sprites ecs.Query[struct{ Sprite *Sprite }]
	Window  ecs.Singleton[host.Window]
}

func (s *SpriteSystem) Execute(frame *ecs.UpdateFrame) {
	window := s.Window.Get()
	if window == nil {
		return
	}
	for sp := range s.Sprites.Values() {
		sp.Sprite.step(frame.DeltaTime, window.Width, window.Height)
	}
}

type spriteView struct {
	Sprite *Sprite
}

type spriteRenderer struct {
	view *ecs.View[spriteView]
}

func (r *spriteRenderer) Draw(screen *ebiten.Image) {
	for sp := range r.view.Values() {
		s := sp.Sprite
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), spriteSize, spriteSize, s.Color, false)
	}
}
