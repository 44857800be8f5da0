package ebitenui

import (
	"testing"

	"github.com/plus3/perfui/perfui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutTopLeft(t *testing.T) {
	root := perfui.DefaultRoot()
	panel := &perfui.Panel{Rows: []perfui.Row{
		{Label: "FPS", Value: "60", Color: root.ValueColor},
		{Label: "Frame Time", Value: "16.67", Unit: "ms", Color: root.ValueColor},
	}}

	box, lines := Layout(&root, panel, 640, 480)
	require.Len(t, lines, 2)

	assert.Equal(t, Rect{X: 8, Y: 8, W: 19*GlyphWidth + 3*Padding + BarWidth, H: 2*LineHeight + 2*Padding}, box)
	assert.Equal(t, 8+Padding+BarWidth+Padding, lines[0].X)
	assert.Equal(t, 8+Padding, lines[0].Y)
	assert.Equal(t, 8+Padding+LineHeight, lines[1].Y)
	assert.Equal(t, lines[0].X+11*GlyphWidth, lines[0].ValueX)
	assert.Equal(t, "16.67 ms", lines[1].Value)
	assert.Equal(t, root.ValueColor, lines[1].Color)
}

func TestLayoutBottomRight(t *testing.T) {
	root := perfui.DefaultRoot()
	root.Corner = perfui.BottomRight
	root.DisplayLabels = false

	box, lines := Layout(&root, &perfui.Panel{Rows: []perfui.Row{{Label: "FPS", Value: "60"}}}, 640, 480)
	require.Len(t, lines, 1)

	assert.Equal(t, 640-root.Margin-box.W, box.X)
	assert.Equal(t, 480-root.Margin-box.H, box.Y)
	assert.Equal(t, lines[0].X, lines[0].ValueX)
	assert.Empty(t, lines[0].Label)
}

func TestLayoutEmptyPanel(t *testing.T) {
	root := perfui.DefaultRoot()
	box, lines := Layout(&root, &perfui.Panel{}, 640, 480)
	assert.Zero(t, box)
	assert.Empty(t, lines)
}
