package imguiui

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/perfui/ecs"
	"github.com/plus3/perfui/perfui"
)

// EntryInspector is a component that lists the raw rows of every overlay in
// a sortable, filterable table.
type EntryInspector struct {
	Title string

	filter     string
	sortColumn int
	descending bool
}

// NewEntryInspector returns an inspector sorted by entity.
func NewEntryInspector() EntryInspector {
	return EntryInspector{Title: "Perf Entries"}
}

type inspectorRow struct {
	Entity ecs.EntityId
	perfui.Row
}

const (
	columnEntity = iota
	columnKind
	columnLabel
	columnValue
	columnSeverity
	columnSortKey
	columnCount
)

// Render draws the table. It must run inside an ImGui frame.
func (w *EntryInspector) Render(rows []inspectorRow) {
	if !imgui.BeginV(w.Title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##filter", "Filter...", &w.filter, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		w.filter = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntryTable", columnCount, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Label")
		imgui.TableSetupColumn("Value")
		imgui.TableSetupColumn("Severity")
		imgui.TableSetupColumn("Sort")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			w.sortColumn = int(spec.ColumnIndex())
			w.descending = spec.SortDirection() == imgui.SortDirectionDescending
			sortSpecs.SetSpecsDirty(false)
		}

		rows = filterRows(rows, w.filter)
		sortRows(rows, w.sortColumn, w.descending)

		for _, row := range rows {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(strconv.FormatUint(uint64(row.Entity), 10))
			imgui.TableNextColumn()
			imgui.Text(row.Kind)
			imgui.TableNextColumn()
			imgui.Text(row.Label)
			imgui.TableNextColumn()
			imgui.TextColored(vec4(row.Color), row.Text())
			imgui.TableNextColumn()
			imgui.Text(row.Severity.String())
			imgui.TableNextColumn()
			imgui.Text(strconv.Itoa(row.SortKey))
		}
		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("Total: %d entries", len(rows)))
	imgui.End()
}

// filterRows keeps rows whose kind, label, value or severity contains filter,
// ignoring case. It returns a new slice.
func filterRows(rows []inspectorRow, filter string) []inspectorRow {
	filter = strings.ToLower(filter)
	filtered := make([]inspectorRow, 0, len(rows))
	for _, row := range rows {
		if filter != "" &&
			!strings.Contains(strings.ToLower(row.Kind), filter) &&
			!strings.Contains(strings.ToLower(row.Label), filter) &&
			!strings.Contains(strings.ToLower(row.Text()), filter) &&
			!strings.Contains(row.Severity.String(), filter) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

func sortRows(rows []inspectorRow, column int, descending bool) {
	slices.SortStableFunc(rows, func(a, b inspectorRow) int {
		var c int
		switch column {
		case columnKind:
			c = cmp.Compare(a.Kind, b.Kind)
		case columnLabel:
			c = cmp.Compare(a.Label, b.Label)
		case columnValue:
			c = cmp.Compare(a.Text(), b.Text())
		case columnSeverity:
			c = cmp.Compare(a.Severity, b.Severity)
		case columnSortKey:
			c = cmp.Compare(a.SortKey, b.SortKey)
		default:
			c = cmp.Compare(a.Entity, b.Entity)
		}
		if descending {
			return -c
		}
		return c
	})
}

// InspectorSystem gathers overlay rows and queues every EntryInspector.
type InspectorSystem struct {
	Windows  ecs.Query[struct{ *EntryInspector }]
	Overlays ecs.Query[struct{ Panel *perfui.Panel }]
}

// Execute defers rendering of every inspector with this frame's rows.
func (s *InspectorSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Windows.Len() == 0 {
		return
	}

	var rows []inspectorRow
	for id, overlay := range s.Overlays.Iter() {
		for _, row := range overlay.Panel.Rows {
			rows = append(rows, inspectorRow{Entity: id, Row: row})
		}
	}

	for item := range s.Windows.Values() {
		window := item.EntryInspector
		frame.Commands.Defer(func() { window.Render(rows) })
	}
}
