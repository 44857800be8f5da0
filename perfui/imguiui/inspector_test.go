package imguiui

import (
	"testing"

	"github.com/plus3/perfui/perfui"
	"github.com/stretchr/testify/assert"
)

func inspectorFixture() []inspectorRow {
	return []inspectorRow{
		{Entity: 2, Row: perfui.Row{Kind: "EntryFrameTime", Label: "Frame Time", Value: "45.00", Unit: "ms", Severity: perfui.SeverityCritical, SortKey: 20}},
		{Entity: 1, Row: perfui.Row{Kind: "EntryFPS", Label: "FPS", Value: "60", SortKey: 0}},
		{Entity: 1, Row: perfui.Row{Kind: "EntryCursorPosition", Label: "Cursor Position", Value: "N/A", Missing: true, SortKey: 120}},
	}
}

func labels(rows []inspectorRow) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.Label
	}
	return out
}

func TestFilterRows(t *testing.T) {
	rows := inspectorFixture()

	assert.Len(t, filterRows(rows, ""), 3)
	assert.Equal(t, []string{"Frame Time"}, labels(filterRows(rows, "CRIT")))
	assert.Equal(t, []string{"Frame Time"}, labels(filterRows(rows, "45.00 ms")))
	assert.Equal(t, []string{"Cursor Position"}, labels(filterRows(rows, "cursor")))
	assert.Empty(t, filterRows(rows, "memory"))
	assert.Equal(t, "Frame Time", rows[0].Label, "input is not modified")
}

func TestSortRows(t *testing.T) {
	rows := inspectorFixture()

	sortRows(rows, columnEntity, false)
	assert.Equal(t, []string{"FPS", "Cursor Position", "Frame Time"}, labels(rows))

	sortRows(rows, columnSortKey, true)
	assert.Equal(t, []string{"Cursor Position", "Frame Time", "FPS"}, labels(rows))

	sortRows(rows, columnSeverity, true)
	assert.Equal(t, "Frame Time", rows[0].Label)

	sortRows(rows, columnLabel, false)
	assert.Equal(t, []string{"Cursor Position", "FPS", "Frame Time"}, labels(rows))
}
