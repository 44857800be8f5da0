package perfui

import (
	"strings"
	"unicode/utf8"
)

// TextLine is a Row laid out for a monospace renderer.
type TextLine struct {
	// Label is padded to the widest label in the panel plus one space. It is
	// empty when the root hides labels.
	Label string
	Value string
	Row   Row
}

// Width returns the line width in characters.
func (l TextLine) Width() int {
	return utf8.RuneCountInString(l.Label) + utf8.RuneCountInString(l.Value)
}

// TextLines lays out the rows of panel in two aligned columns.
func TextLines(root *Root, panel *Panel) []TextLine {
	labelWidth := 0
	if root.DisplayLabels {
		for _, row := range panel.Rows {
			labelWidth = max(labelWidth, utf8.RuneCountInString(row.Label))
		}
	}

	lines := make([]TextLine, len(panel.Rows))
	for i, row := range panel.Rows {
		lines[i] = TextLine{Value: row.Text(), Row: row}
		if root.DisplayLabels {
			pad := labelWidth - utf8.RuneCountInString(row.Label)
			lines[i].Label = row.Label + strings.Repeat(" ", pad+1)
		}
	}
	return lines
}

// TextWidth returns the width of the widest line.
func TextWidth(lines []TextLine) int {
	width := 0
	for _, line := range lines {
		width = max(width, line.Width())
	}
	return width
}

// Anchor returns the top-left position of a w by h box placed in corner of a
// screenW by screenH area, inset by margin.
func Anchor(corner Corner, margin, w, h, screenW, screenH float64) (x, y float64) {
	x, y = margin, margin
	if corner == TopRight || corner == BottomRight {
		x = screenW - w - margin
	}
	if corner == BottomLeft || corner == BottomRight {
		y = screenH - h - margin
	}
	return max(x, 0), max(y, 0)
}
