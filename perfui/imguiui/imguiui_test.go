package imguiui

import (
	"image/color"
	"testing"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/perfui/diagnostics"
	"github.com/plus3/perfui/perfui"
	"github.com/stretchr/testify/assert"
)

func TestPlacement(t *testing.T) {
	workPos := imgui.NewVec2(0, 20)
	workSize := imgui.NewVec2(800, 580)

	for corner, want := range map[perfui.Corner][2]imgui.Vec2{
		perfui.TopLeft:     {imgui.NewVec2(8, 28), imgui.NewVec2(0, 0)},
		perfui.TopRight:    {imgui.NewVec2(792, 28), imgui.NewVec2(1, 0)},
		perfui.BottomLeft:  {imgui.NewVec2(8, 592), imgui.NewVec2(0, 1)},
		perfui.BottomRight: {imgui.NewVec2(792, 592), imgui.NewVec2(1, 1)},
	} {
		pos, pivot := placement(corner, 8, workPos, workSize)
		assert.Equal(t, want[0], pos, corner.String())
		assert.Equal(t, want[1], pivot, corner.String())
	}
}

func TestVec4(t *testing.T) {
	assert.Equal(t, imgui.NewVec4(1, 0, 0, 1), vec4(color.RGBA{R: 0xff, A: 0xff}))
}

func TestFrameTimeHistory(t *testing.T) {
	assert.Empty(t, frameTimeHistory(nil, nil))

	store := diagnostics.NewStore()
	assert.Empty(t, frameTimeHistory(store, nil))

	d := store.Register(diagnostics.New(diagnostics.FrameTime))
	d.Add(16)
	d.Add(17.5)

	buf := make([]float32, 0, 4)
	assert.Equal(t, []float32{16, 17.5}, frameTimeHistory(store, buf))
}
