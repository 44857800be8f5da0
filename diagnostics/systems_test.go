package diagnostics

import (
	"errors"
	"testing"
	"time"

	"github.com/plus3/perfui/ecs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld() (*ecs.Storage, *ecs.Scheduler, *Store) {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[int](registry)
	storage := ecs.NewStorage(registry)
	store := ecs.NewSingleton[Store](storage, *NewStore()).Get()
	return storage, ecs.NewScheduler(storage), store
}

func TestFrameTimeSystem(t *testing.T) {
	_, scheduler, store := newTestWorld()
	RegisterFrameTime(store)
	scheduler.Register(&FrameTimeSystem{})

	scheduler.Once(0.016667)
	scheduler.Once(0.016667)
	scheduler.Once(0)

	frameTime, ok := store.Value(FrameTime)
	require.True(t, ok)
	assert.InDelta(t, 16.667, frameTime, 1e-9)

	fps, ok := store.Value(FPS)
	require.True(t, ok)
	assert.InDelta(t, 59.998, fps, 1e-3)

	count, ok := store.Value(FrameCount)
	require.True(t, ok)
	assert.Equal(t, 3.0, count)

	d, _ := store.Get(FrameTime)
	assert.Equal(t, 2, d.Len(), "zero delta frames are not recorded")
}

func TestEntityCountSystem(t *testing.T) {
	storage, scheduler, store := newTestWorld()
	RegisterEntityCount(store)
	scheduler.Register(&EntityCountSystem{})

	storage.Spawn(1)
	storage.Spawn(2)
	scheduler.Once(0.01)

	count, ok := store.Value(EntityCount)
	require.True(t, ok)
	assert.Equal(t, 2.0, count)
}

func TestSystemInfoSystem(t *testing.T) {
	_, scheduler, store := newTestWorld()
	RegisterSystemInfo(store)

	calls := 0
	sampler := SamplerFunc(func() (Sample, error) {
		calls++
		if calls == 2 {
			return Sample{}, errors.New("boom")
		}
		return Sample{CPUPercent: 12.5, HasCPU: calls > 1, MemoryMiB: 256}, nil
	})

	clock := time.Unix(0, 0)
	system := NewSystemInfoSystem(sampler, time.Second, zerolog.Nop())
	system.now = func() time.Time { return clock }
	scheduler.Register(system)

	scheduler.Once(0.01)
	_, ok := store.Value(ProcessCPUUsage)
	assert.False(t, ok, "first sample has no CPU delta")
	mem, ok := store.Value(ProcessMemUsage)
	require.True(t, ok)
	assert.Equal(t, 256.0, mem)

	clock = clock.Add(500 * time.Millisecond)
	scheduler.Once(0.01)
	assert.Equal(t, 1, calls, "sampler polled before interval elapsed")

	clock = clock.Add(time.Second)
	scheduler.Once(0.01)
	assert.Equal(t, 2, calls)

	clock = clock.Add(time.Second)
	scheduler.Once(0.01)
	cpu, ok := store.Value(ProcessCPUUsage)
	require.True(t, ok)
	assert.Equal(t, 12.5, cpu)
}
