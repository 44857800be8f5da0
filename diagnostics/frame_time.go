package diagnostics

import "github.com/plus3/perfui/ecs"

// FrameTimeSystem records frame time (ms), frames per second and the
// scheduler's frame number.
type FrameTimeSystem struct {
	Store ecs.Singleton[Store]
}

// RegisterFrameTime registers the paths written by FrameTimeSystem.
func RegisterFrameTime(store *Store) {
	store.Register(New(FrameTime).WithSuffix("ms"))
	store.Register(New(FPS))
	store.Register(New(FrameCount))
}

// Execute records the frame number and, for a non-zero delta, frame time and FPS.
func (s *FrameTimeSystem) Execute(frame *ecs.UpdateFrame) {
	store := s.Store.Get()
	if store == nil {
		return
	}

	store.Add(FrameCount, float64(frame.Number))

	dt := frame.DeltaTime
	if dt <= 0 {
		return
	}
	store.Add(FrameTime, dt*1000)
	store.Add(FPS, 1/dt)
}

// EntityCountSystem records the number of live entities.
type EntityCountSystem struct {
	Store ecs.Singleton[Store]
}

// RegisterEntityCount registers the path written by EntityCountSystem.
func RegisterEntityCount(store *Store) {
	store.Register(New(EntityCount))
}

// Execute records the live entity count.
func (s *EntityCountSystem) Execute(frame *ecs.UpdateFrame) {
	if store := s.Store.Get(); store != nil {
		store.Add(EntityCount, float64(frame.Storage.EntityCount()))
	}
}
