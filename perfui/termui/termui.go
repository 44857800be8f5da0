// Package termui draws perf overlay panels into a tcell terminal screen.
package termui

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/perfui/ecs"
	"github.com/plus3/perfui/perfui"
)

// Renderer draws panels into Screen.
type Renderer struct {
	Screen tcell.Screen
	// Margin is the distance from the screen edge in cells.
	Margin int
	// Padding is the number of blank cells left and right of the text.
	Padding int
}

// New creates a renderer with a one-cell margin and padding.
func New(screen tcell.Screen) *Renderer {
	return &Renderer{Screen: screen, Margin: 1, Padding: 1}
}

// DrawPanel draws one panel in the corner chosen by root.
func (r *Renderer) DrawPanel(root *perfui.Root, panel *perfui.Panel) {
	lines := perfui.TextLines(root, panel)
	if len(lines) == 0 {
		return
	}

	width := perfui.TextWidth(lines) + 2*r.Padding
	screenW, screenH := r.Screen.Size()
	fx, fy := perfui.Anchor(root.Corner, float64(r.Margin), float64(width), float64(len(lines)), float64(screenW), float64(screenH))
	x0, y0 := int(fx), int(fy)

	base := tcell.StyleDefault.Background(toColor(root.BackgroundColor))
	labelStyle := base.Foreground(toColor(root.LabelColor))

	for i, line := range lines {
		y := y0 + i
		for x := x0; x < x0+width; x++ {
			r.Screen.SetContent(x, y, ' ', nil, base)
		}

		x := r.put(x0+r.Padding, y, line.Label, labelStyle)
		r.put(x, y, line.Value, base.Foreground(toColor(line.Row.Color)))
	}
}

func (r *Renderer) put(x, y int, s string, style tcell.Style) int {
	for _, c := range s {
		r.Screen.SetContent(x, y, c, nil, style)
		x++
	}
	return x
}

func toColor(c color.RGBA) tcell.Color {
	if c.A == 0 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// OverlaySystem draws every overlay panel and shows the screen. Register it
// after the perfui Plugin's systems.
type OverlaySystem struct {
	Overlays ecs.Query[struct {
		Root  *perfui.Root
		Panel *perfui.Panel
	}]

	Renderer *Renderer
}

// Execute draws every panel, then shows the screen.
func (s *OverlaySystem) Execute(frame *ecs.UpdateFrame) {
	for overlay := range s.Overlays.Values() {
		s.Renderer.DrawPanel(overlay.Root, overlay.Panel)
	}
	s.Renderer.Screen.Show()
}
