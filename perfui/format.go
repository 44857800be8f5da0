package perfui

import (
	"fmt"
	"strconv"
	"time"
)

// FormatFloat renders v with exactly precision fractional digits.
// Negative precision is treated as zero.
func FormatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', max(precision, 0), 64)
}

// FormatHMS renders d as h:mm:ss with precision fractional second digits,
// e.g. "1:02:03.45".
func FormatHMS(d time.Duration, precision int) string {
	precision = max(precision, 0)
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}

	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d.Seconds()

	width := 2
	if precision > 0 {
		width += precision + 1
	}
	// Rounding can carry into the minute, e.g. 59.9996 at precision 3.
	secs := fmt.Sprintf("%0*.*f", width, precision, seconds)
	if parsed, _ := strconv.ParseFloat(secs, 64); parsed >= 60 {
		secs = fmt.Sprintf("%0*.*f", width, precision, 0.0)
		minutes++
		if minutes == 60 {
			minutes = 0
			hours++
		}
	}
	return fmt.Sprintf("%s%d:%02d:%s", sign, hours, minutes, secs)
}

// clockLayout returns a time layout with precision fractional second digits.
func clockLayout(precision int) string {
	layout := "15:04:05"
	precision = min(max(precision, 0), 9)
	if precision > 0 {
		layout += "."
		for range precision {
			layout += "0"
		}
	}
	return layout
}

func numberDisplay(value float64, ok bool, precision int, unit string, units bool, thresholds Thresholds) Display {
	if !ok {
		return missingDisplay()
	}
	d := Display{
		Text:     FormatFloat(value, precision),
		Severity: thresholds.Classify(value),
	}
	if units {
		d.Unit = unit
	}
	return d
}

func textDisplay(text string, ok bool) Display {
	if !ok {
		return missingDisplay()
	}
	return Display{Text: text}
}

func labelOr(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}
