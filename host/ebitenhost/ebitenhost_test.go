package ebitenhost

import (
	"testing"

	"github.com/plus3/perfui/ecs"
	"github.com/plus3/perfui/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotApply(t *testing.T) {
	var w host.Window

	Snapshot{
		Width: 1280, Height: 720, ScaleFactor: 1.5,
		Vsync: true, CursorX: 10, CursorY: 20,
	}.Apply(&w)

	assert.Equal(t, 1280, w.Width)
	assert.Equal(t, 720, w.Height)
	assert.Equal(t, 1920, w.PhysicalWidth)
	assert.Equal(t, 1080, w.PhysicalHeight)
	assert.Equal(t, host.Windowed, w.Mode)
	assert.Equal(t, host.AutoVsync, w.PresentMode)
	require.NotNil(t, w.Cursor)
	assert.Equal(t, host.Vec2{X: 10, Y: 20}, *w.Cursor)

	Snapshot{Width: 800, Height: 600, Fullscreen: true, CursorX: -1, CursorY: 5}.Apply(&w)

	assert.Equal(t, 1.0, w.ScaleFactor)
	assert.Equal(t, host.BorderlessFullscreen, w.Mode)
	assert.Equal(t, host.AutoNoVsync, w.PresentMode)
	assert.Nil(t, w.Cursor)
}

func TestWindowSystem(t *testing.T) {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	window := ecs.NewSingleton[host.Window](storage)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&WindowSystem{
		Read: func() Snapshot { return Snapshot{Width: 640, Height: 480, ScaleFactor: 2} },
	})
	scheduler.Once(1.0 / 60)

	assert.Equal(t, 1280, window.Get().PhysicalWidth)
	assert.Nil(t, window.Get().Cursor)
}
