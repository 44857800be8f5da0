package host_test

import (
	"testing"
	"time"

	"github.com/plus3/perfui/ecs"
	"github.com/plus3/perfui/host"
	"github.com/stretchr/testify/assert"
)

func TestFixedTimeAccumulate(t *testing.T) {
	fixed := host.NewFixedTime(10 * time.Millisecond)

	assert.Equal(t, 0, fixed.Accumulate(4*time.Millisecond))
	assert.Equal(t, 0.4, fixed.OverstepFraction())

	assert.Equal(t, 2, fixed.Accumulate(21*time.Millisecond))
	assert.Equal(t, 5*time.Millisecond, fixed.Overstep)
	assert.Equal(t, 0.5, fixed.OverstepFraction())

	assert.Equal(t, host.DefaultTimestep, host.NewFixedTime(0).Timestep)
}

func TestTimeSystem(t *testing.T) {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	clock := ecs.NewSingleton(storage, host.NewTime())
	fixed := ecs.NewSingleton(storage, host.NewFixedTime(20*time.Millisecond))

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&host.TimeSystem{})

	scheduler.Once(0.025)
	scheduler.Once(0.025)

	assert.Equal(t, 50*time.Millisecond, clock.Get().Elapsed)
	assert.Equal(t, 25*time.Millisecond, clock.Get().Delta)
	assert.Equal(t, 10*time.Millisecond, fixed.Get().Overstep)
}

func TestTimeSystemWithoutSingletons(t *testing.T) {
	scheduler := ecs.NewScheduler(ecs.NewStorage(ecs.NewComponentRegistry()))
	scheduler.Register(&host.TimeSystem{})

	assert.NotPanics(t, func() { scheduler.Once(0.016) })
}

func TestWindowCursor(t *testing.T) {
	var w host.Window

	w.SetCursor(3, 4, true)
	assert.Equal(t, &host.Vec2{X: 3, Y: 4}, w.Cursor)

	w.SetCursor(0, 0, false)
	assert.Nil(t, w.Cursor)

	assert.Equal(t, "BorderlessFullscreen", host.BorderlessFullscreen.String())
	assert.Equal(t, "Mailbox", host.Mailbox.String())
	assert.Equal(t, "PresentMode(42)", host.PresentMode(42).String())
}
