package perfui_test

import (
	"testing"
	"time"

	"github.com/plus3/perfui/diagnostics"
	"github.com/plus3/perfui/host"
	"github.com/plus3/perfui/perfui"
	"github.com/stretchr/testify/assert"
)

func storeWith(samples map[diagnostics.Path][]float64) *diagnostics.Store {
	store := diagnostics.NewStore()
	for path, values := range samples {
		d := store.Register(diagnostics.New(path))
		for _, v := range values {
			d.Add(v)
		}
	}
	return store
}

func testSources() *perfui.Sources {
	return &perfui.Sources{
		Diagnostics: storeWith(map[diagnostics.Path][]float64{
			diagnostics.FPS:             {60, 45},
			diagnostics.FrameTime:       {16.667},
			diagnostics.FrameCount:      {3},
			diagnostics.EntityCount:     {42},
			diagnostics.ProcessCPUUsage: {12.34},
			diagnostics.ProcessMemUsage: {256},
		}),
		Time: &host.Time{
			Now:     func() time.Time { return time.Date(2024, 1, 1, 12, 34, 56, 789e6, time.Local) },
			Elapsed: 12345600 * time.Microsecond,
		},
		FixedTime: &host.FixedTime{Timestep: 20 * time.Millisecond, Overstep: 5 * time.Millisecond},
		Window: &host.Window{
			Width: 1280, Height: 720,
			PhysicalWidth: 2560, PhysicalHeight: 1440,
			ScaleFactor: 1.5,
			Mode:        host.Fullscreen,
			PresentMode: host.Fifo,
			Cursor:      &host.Vec2{X: 12.4, Y: 300.6},
		},
	}
}

func entryOf[T any, PT interface {
	*T
	perfui.Entry
}](v T) perfui.Entry {
	return PT(&v)
}

func defaultEntries() map[string]perfui.Entry {
	return map[string]perfui.Entry{
		"fps":                 entryOf(perfui.NewEntryFPS()),
		"fps worst":           entryOf(perfui.NewEntryFPSWorst()),
		"frame time":          entryOf(perfui.NewEntryFrameTime()),
		"frame time worst":    entryOf(perfui.NewEntryFrameTimeWorst()),
		"frame count":         entryOf(perfui.NewEntryFrameCount()),
		"entity count":        entryOf(perfui.NewEntryEntityCount()),
		"cpu usage":           entryOf(perfui.NewEntryCPUUsage()),
		"mem usage":           entryOf(perfui.NewEntryMemUsage()),
		"clock":               entryOf(perfui.NewEntryClock()),
		"running time":        entryOf(perfui.NewEntryRunningTime()),
		"fixed timestep":      entryOf(perfui.NewEntryFixedTimestep()),
		"fixed overstep":      entryOf(perfui.NewEntryFixedOverstep()),
		"window resolution":   entryOf(perfui.NewEntryWindowResolution()),
		"window scale factor": entryOf(perfui.NewEntryWindowScaleFactor()),
		"window mode":         entryOf(perfui.NewEntryWindowMode()),
		"present mode":        entryOf(perfui.NewEntryWindowPresentMode()),
		"cursor position":     entryOf(perfui.NewEntryCursorPosition()),
	}
}

func TestEntryDisplay(t *testing.T) {
	want := map[string]perfui.Display{
		"fps":                 {Text: "60"},
		"fps worst":           {Text: "45", Severity: perfui.SeverityWarning},
		"frame time":          {Text: "16.67", Unit: "ms"},
		"frame time worst":    {Text: "16.67", Unit: "ms"},
		"frame count":         {Text: "3"},
		"entity count":        {Text: "42"},
		"cpu usage":           {Text: "12.3", Unit: "%"},
		"mem usage":           {Text: "256.0", Unit: "MiB"},
		"clock":               {Text: "12:34:56"},
		"running time":        {Text: "12.346", Unit: "s"},
		"fixed timestep":      {Text: "20.00", Unit: "ms"},
		"fixed overstep":      {Text: "25.0", Unit: "%"},
		"window resolution":   {Text: "1280x720", Unit: "px"},
		"window scale factor": {Text: "1.50"},
		"window mode":         {Text: "Fullscreen"},
		"present mode":        {Text: "Fifo"},
		"cursor position":     {Text: "12, 301"},
	}

	src := testSources()
	for name, entry := range defaultEntries() {
		t.Run(name, func(t *testing.T) {
			entry.Update(src)
			assert.Equal(t, want[name], entry.Display())
		})
	}
}

func TestEntryDisplayMissing(t *testing.T) {
	for _, src := range []*perfui.Sources{nil, {}, {Diagnostics: diagnostics.NewStore()}} {
		for name, entry := range defaultEntries() {
			assert.NotPanics(t, func() { entry.Update(src) }, name)
			d := entry.Display()
			assert.True(t, d.Missing, name)
			assert.Equal(t, perfui.Placeholder, d.Text, name)
		}
	}

	cursor := perfui.NewEntryCursorPosition()
	cursor.Update(&perfui.Sources{Window: &host.Window{Width: 640, Height: 480}})
	assert.Equal(t, perfui.Display{Text: perfui.Placeholder, Missing: true}, cursor.Display())
}

func TestEntryOptions(t *testing.T) {
	src := testSources()

	frameTime := perfui.NewEntryFrameTime()
	frameTime.Smoothed = false
	frameTime.DisplayUnits = false
	frameTime.Precision = 1
	frameTime.Name = "Frame"
	frameTime.Update(src)
	assert.Equal(t, "Frame", frameTime.Label())
	assert.Equal(t, perfui.Display{Text: "16.7"}, frameTime.Display())

	fps := perfui.NewEntryFPS()
	fps.Smoothed = false
	fps.Update(src)
	assert.Equal(t, perfui.Display{Text: "45", Severity: perfui.SeverityWarning}, fps.Display())

	running := perfui.NewEntryRunningTime()
	running.HMS = true
	running.Precision = 1
	running.Update(src)
	assert.Equal(t, "0:00:12.3", running.Display().Text)

	overstep := perfui.NewEntryFixedOverstep()
	overstep.AsPercentage = false
	overstep.Update(src)
	assert.Equal(t, perfui.Display{Text: "5.0", Unit: "ms"}, overstep.Display())

	resolution := perfui.NewEntryWindowResolution()
	resolution.Physical = true
	resolution.Update(src)
	assert.Equal(t, "2560x1440", resolution.Display().Text)

	clock := perfui.NewEntryClock()
	clock.Precision = 2
	clock.Update(src)
	assert.Equal(t, "12:34:56.78", clock.Display().Text)
}

func TestThresholdsClassify(t *testing.T) {
	higher := perfui.Thresholds{Enabled: true, Warning: 20, Critical: 34}
	for value, want := range map[float64]perfui.Severity{
		10:    perfui.SeverityNormal,
		19.99: perfui.SeverityNormal,
		20:    perfui.SeverityWarning,
		33.9:  perfui.SeverityWarning,
		34:    perfui.SeverityCritical,
		100:   perfui.SeverityCritical,
	} {
		assert.Equal(t, want, higher.Classify(value), "value %v", value)
	}

	lower := perfui.Thresholds{Enabled: true, Warning: 50, Critical: 30, LowerIsWorse: true}
	for value, want := range map[float64]perfui.Severity{
		60: perfui.SeverityNormal,
		50: perfui.SeverityWarning,
		31: perfui.SeverityWarning,
		30: perfui.SeverityCritical,
		0:  perfui.SeverityCritical,
	} {
		assert.Equal(t, want, lower.Classify(value), "value %v", value)
	}

	var none perfui.Thresholds
	assert.Equal(t, perfui.SeverityNormal, none.Classify(1e9))

	disabled := higher
	disabled.Enabled = false
	assert.Equal(t, perfui.SeverityNormal, disabled.Classify(100))
}

func TestFrameTimeSeverity(t *testing.T) {
	entry := perfui.NewEntryFrameTime()
	entry.Thresholds = perfui.Thresholds{Enabled: true, Warning: 16, Critical: 33}

	for value, want := range map[float64]perfui.Severity{
		8:  perfui.SeverityNormal,
		16: perfui.SeverityWarning,
		40: perfui.SeverityCritical,
	} {
		entry.Update(&perfui.Sources{Diagnostics: storeWith(map[diagnostics.Path][]float64{diagnostics.FrameTime: {value}})})
		assert.Equal(t, want, entry.Display().Severity, "value %v", value)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "16.67", perfui.FormatFloat(16.667, 2))
	assert.Equal(t, "1", perfui.FormatFloat(1.4, -1))

	assert.Equal(t, "0:00:05", perfui.FormatHMS(5*time.Second, 0))
	assert.Equal(t, "1:02:03.5", perfui.FormatHMS(3723500*time.Millisecond, 1))
	assert.Equal(t, "0:01:00.000", perfui.FormatHMS(59999600*time.Microsecond, 3))
	assert.Equal(t, "-0:00:02", perfui.FormatHMS(-2*time.Second, 0))
}
