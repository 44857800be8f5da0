// Package ebitenui draws perf overlay panels onto an Ebiten screen with the
// built-in debug font. The debug font has a fixed size, so Root.FontSize is
// not used here.
package ebitenui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/perfui/ecs"
	"github.com/plus3/perfui/perfui"
)

// Debug font metrics in pixels.
const (
	GlyphWidth = 6
	LineHeight = 16
)

// Padding inside the panel background, and the width of the severity bar.
const (
	Padding  = 4
	BarWidth = 3
)

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Line is one row positioned on screen.
type Line struct {
	X, Y   int
	Label  string
	Value  string
	ValueX int
	Bar    Rect
	Color  color.RGBA
}

// Layout positions the rows of panel on a screenW by screenH screen. It
// returns the background rectangle and one Line per row.
func Layout(root *perfui.Root, panel *perfui.Panel, screenW, screenH int) (Rect, []Line) {
	text := perfui.TextLines(root, panel)
	if len(text) == 0 {
		return Rect{}, nil
	}

	box := Rect{
		W: float64(perfui.TextWidth(text)*GlyphWidth + 2*Padding + BarWidth + Padding),
		H: float64(len(text)*LineHeight + 2*Padding),
	}
	box.X, box.Y = perfui.Anchor(root.Corner, root.Margin, box.W, box.H, float64(screenW), float64(screenH))

	lines := make([]Line, len(text))
	for i, t := range text {
		y := int(box.Y) + Padding + i*LineHeight
		x := int(box.X) + Padding + BarWidth + Padding
		lines[i] = Line{
			X:      x,
			Y:      y,
			Label:  t.Label,
			Value:  t.Value,
			ValueX: x + len([]rune(t.Label))*GlyphWidth,
			Bar:    Rect{X: box.X + Padding, Y: float64(y) + 2, W: BarWidth, H: LineHeight - 4},
			Color:  t.Row.Color,
		}
	}
	return box, lines
}

// Draw draws one panel onto screen.
func Draw(screen *ebiten.Image, root *perfui.Root, panel *perfui.Panel) {
	bounds := screen.Bounds()
	box, lines := Layout(root, panel, bounds.Dx(), bounds.Dy())
	if len(lines) == 0 {
		return
	}

	vector.DrawFilledRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), root.BackgroundColor, false)
	for _, line := range lines {
		vector.DrawFilledRect(screen, float32(line.Bar.X), float32(line.Bar.Y), float32(line.Bar.W), float32(line.Bar.H), line.Color, false)
		if line.Label != "" {
			ebitenutil.DebugPrintAt(screen, line.Label, line.X, line.Y)
		}
		ebitenutil.DebugPrintAt(screen, line.Value, line.ValueX, line.Y)
	}
}

type overlayView struct {
	Root  *perfui.Root
	Panel *perfui.Panel
}

// Overlay draws every overlay entity of a storage. Call Draw from the game's
// Draw method.
type Overlay struct {
	view *ecs.View[overlayView]
}

// NewOverlay creates an overlay drawing the panels of storage.
func NewOverlay(storage *ecs.Storage) *Overlay {
	return &Overlay{view: ecs.NewView[overlayView](storage)}
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	for overlay := range o.view.Values() {
		Draw(screen, overlay.Root, overlay.Panel)
	}
}
