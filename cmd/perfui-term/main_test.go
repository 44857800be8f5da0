package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/perfui/ecs"
	"github.com/plus3/perfui/host"
	"github.com/plus3/perfui/perfui"
	"github.com/plus3/perfui/perfui/termui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEvent(t *testing.T) {
	window := host.Window{}
	setSize(&window, 80, 24)

	assert.False(t, applyEvent(&window, tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.True(t, applyEvent(&window, tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, applyEvent(&window, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, applyEvent(&window, tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))

	applyEvent(&window, tcell.NewEventMouse(5, 3, tcell.ButtonNone, tcell.ModNone))
	require.NotNil(t, window.Cursor)
	assert.Equal(t, host.Vec2{X: 5, Y: 3}, *window.Cursor)

	applyEvent(&window, tcell.NewEventResize(100, 30))
	assert.Equal(t, 100, window.Width)
	assert.Equal(t, 30, window.PhysicalHeight)
	assert.Equal(t, 1.0, window.ScaleFactor)

	applyEvent(&window, tcell.NewEventMouse(120, 3, tcell.ButtonNone, tcell.ModNone))
	assert.Nil(t, window.Cursor)
}

func TestBounce(t *testing.T) {
	pos, vel := bounce(-2, -1, 10)
	assert.Equal(t, 2.0, pos)
	assert.Equal(t, 1.0, vel)

	pos, vel = bounce(11, 1, 10)
	assert.Equal(t, 7.0, pos)
	assert.Equal(t, -1.0, vel)

	pos, vel = bounce(4, 1, 10)
	assert.Equal(t, 4.0, pos)
	assert.Equal(t, 1.0, vel)
}

func TestRunDrawsOverlay(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(60, 20)

	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Dot](registry)
	storage := ecs.NewStorage(registry)
	scheduler := ecs.NewScheduler(storage)
	storage.AddSingleton(newWindow(screen))

	scheduler.Register(&ClearSystem{Screen: screen})
	scheduler.Register(&DotSystem{Screen: screen})
	perfui.NewPlugin().Build(scheduler)
	scheduler.Register(&termui.OverlaySystem{Renderer: termui.New(screen)})

	root := perfui.DefaultRoot()
	perfui.Spawn(storage, perfui.NewWindowEntries(), root)

	events := make(chan tcell.Event, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	run(ctx, scheduler, events, 10*time.Millisecond)

	assert.Contains(t, screenText(screen), "60x20")
}

func screenText(screen tcell.Screen) string {
	w, h := screen.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, _, _, _ := screen.GetContent(x, y)
			sb.WriteRune(c)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
