package imguiui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/perfui/diagnostics"
	"github.com/plus3/perfui/ecs"
)

// StatsWindow is a component that shows a frame time graph and storage
// statistics in a regular, movable ImGui window.
type StatsWindow struct {
	Title string

	history []float32
}

// NewStatsWindow returns a stats window with the default title.
func NewStatsWindow() StatsWindow {
	return StatsWindow{Title: "Performance Stats"}
}

// Render draws the window. store may be nil.
func (w *StatsWindow) Render(storage *ecs.Storage, store *diagnostics.Store) {
	if !imgui.BeginV(w.Title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := storage.CollectStats()
	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

	w.history = frameTimeHistory(store, w.history)
	if len(w.history) > 0 {
		imgui.Separator()
		imgui.Text("Frame Time Graph (ms)")
		imgui.PlotLinesFloatPtr("##frametime", &w.history[0], int32(len(w.history)))
	}

	if imgui.TreeNodeStr("Archetype Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ArchStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Archetype ID")
			imgui.TableSetupColumn("Components")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, row := range archetypeRows(stats) {
				imgui.TableNextRow()
				for _, cell := range row {
					imgui.TableNextColumn()
					imgui.Text(cell)
				}
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singleton Details") {
		for _, singletonType := range stats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}

	imgui.End()
}

// archetypeRows formats the archetype breakdown as table cells: id, component
// type names and entity count. Empty archetypes are skipped.
func archetypeRows(stats *ecs.StorageStats) [][3]string {
	rows := make([][3]string, 0, len(stats.ArchetypeBreakdown))
	for _, arch := range stats.ArchetypeBreakdown {
		if arch.EntityCount == 0 {
			continue
		}
		rows = append(rows, [3]string{
			fmt.Sprintf("0x%X", arch.ID),
			strings.Join(arch.ComponentTypes, ", "),
			fmt.Sprintf("%d", arch.EntityCount),
		})
	}
	return rows
}

// frameTimeHistory copies the frame time history into buf, oldest first.
func frameTimeHistory(store *diagnostics.Store, buf []float32) []float32 {
	buf = buf[:0]
	if store == nil {
		return buf
	}
	d, ok := store.Get(diagnostics.FrameTime)
	if !ok {
		return buf
	}
	for _, v := range d.Values() {
		buf = append(buf, float32(v))
	}
	return buf
}

// StatsSystem queues every StatsWindow for rendering.
type StatsSystem struct {
	Windows     ecs.Query[struct{ *StatsWindow }]
	Diagnostics ecs.Singleton[diagnostics.Store]
}

// Execute defers rendering of every stats window.
func (s *StatsSystem) Execute(frame *ecs.UpdateFrame) {
	store := s.Diagnostics.Get()
	for item := range s.Windows.Values() {
		window := item.StatsWindow
		frame.Commands.Defer(func() { window.Render(frame.Storage, store) })
	}
}
