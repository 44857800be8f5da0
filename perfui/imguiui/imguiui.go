// Package imguiui draws perf overlay panels as Dear ImGui windows.
// Rendering is deferred through ecs.Commands, so the scheduler must run
// between the ImGui backend's BeginFrame and EndFrame.
package imguiui

import (
	"fmt"
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/perfui/ecs"
	"github.com/plus3/perfui/perfui"
)

// InputState tracks whether ImGui is consuming mouse or keyboard input.
// It is a singleton; OverlaySystem updates it when present.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// RegisterComponents registers the component types of this package.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[StatsWindow](registry)
	ecs.RegisterComponent[EntryInspector](registry)
}

const overlayFlags = imgui.WindowFlagsNoDecoration |
	imgui.WindowFlagsAlwaysAutoResize |
	imgui.WindowFlagsNoSavedSettings |
	imgui.WindowFlagsNoFocusOnAppearing |
	imgui.WindowFlagsNoNav |
	imgui.WindowFlagsNoInputs

// OverlaySystem queues one borderless ImGui window per overlay entity.
type OverlaySystem struct {
	Overlays ecs.Query[struct {
		Root  *perfui.Root
		Panel *perfui.Panel
	}]
	InputState ecs.Singleton[InputState]
}

// Execute refreshes InputState and defers one window per overlay.
func (s *OverlaySystem) Execute(frame *ecs.UpdateFrame) {
	if state := s.InputState.Get(); state != nil {
		state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
		state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	}

	for id, overlay := range s.Overlays.Iter() {
		root, panel := overlay.Root, overlay.Panel
		name := fmt.Sprintf("##perfui-%d", id)
		frame.Commands.Defer(func() { renderPanel(name, root, panel) })
	}
}

func renderPanel(name string, root *perfui.Root, panel *perfui.Panel) {
	if len(panel.Rows) == 0 {
		return
	}

	viewport := imgui.MainViewport()
	pos, pivot := placement(root.Corner, float32(root.Margin), viewport.WorkPos(), viewport.WorkSize())
	imgui.SetNextWindowPosV(pos, imgui.CondAlways, pivot)
	imgui.SetNextWindowBgAlpha(float32(root.BackgroundColor.A) / 0xff)

	if !imgui.BeginV(name, nil, overlayFlags) {
		imgui.End()
		return
	}
	imgui.SetWindowFontScale(float32(root.FontSize / defaultFontSize))

	if root.DisplayLabels {
		if imgui.BeginTableV("rows", 2, imgui.TableFlagsNone, imgui.NewVec2(0, 0), 0) {
			for _, row := range panel.Rows {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.TextColored(vec4(root.LabelColor), row.Label)
				imgui.TableNextColumn()
				imgui.TextColored(vec4(row.Color), row.Text())
			}
			imgui.EndTable()
		}
	} else {
		for _, row := range panel.Rows {
			imgui.TextColored(vec4(row.Color), row.Text())
		}
	}

	imgui.End()
}

// defaultFontSize is the size of the ImGui default font.
const defaultFontSize = 13

// placement returns the window position and pivot for corner.
func placement(corner perfui.Corner, margin float32, workPos, workSize imgui.Vec2) (pos, pivot imgui.Vec2) {
	pos = imgui.NewVec2(workPos.X+margin, workPos.Y+margin)
	if corner == perfui.TopRight || corner == perfui.BottomRight {
		pos.X = workPos.X + workSize.X - margin
		pivot.X = 1
	}
	if corner == perfui.BottomLeft || corner == perfui.BottomRight {
		pos.Y = workPos.Y + workSize.Y - margin
		pivot.Y = 1
	}
	return pos, pivot
}

func vec4(c color.RGBA) imgui.Vec4 {
	return imgui.NewVec4(float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff)
}
