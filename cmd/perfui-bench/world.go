package main

import (
	"math/rand"

	"github.com/plus3/perfui/ecs"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Current, Max float64
}

// Lifetime counts down in seconds; the entity is replaced when it expires.
type Lifetime struct {
	Remaining float64
}

type Tag struct {
	Group int
}

const (
	componentCount = 5
	systemCount    = 3
	worldSize      = 1000.0
)

func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Lifetime](registry)
	ecs.RegisterComponent[Tag](registry)
}

func RegisterSystems(scheduler *ecs.Scheduler, rng *rand.Rand) {
	scheduler.Register(&MovementSystem{})
	scheduler.Register(&RegenSystem{})
	scheduler.Register(&LifetimeSystem{rng: rng})
}

// randomComponents returns a Position plus up to n-1 further components.
func randomComponents(rng *rand.Rand, n int) []any {
	components := []any{Position{X: rng.Float64() * worldSize, Y: rng.Float64() * worldSize}}
	extras := []func() any{
		func() any { return Velocity{X: rng.Float64()*20 - 10, Y: rng.Float64()*20 - 10} },
		func() any { return Health{Current: 50, Max: 100} },
		func() any { return Lifetime{Remaining: 1 + rng.Float64()*4} },
		func() any { return Tag{Group: rng.Intn(8)} },
	}
	for _, i := range rng.Perm(len(extras))[:min(max(n-1, 0), len(extras))] {
		components = append(components, extras[i]())
	}
	return components
}

func SpawnRandomEntity(storage *ecs.Storage, rng *rand.Rand, n int) ecs.EntityId {
	return storage.Spawn(randomComponents(rng, n)...)
}

type MovementSystem struct {
	Movers ecs.Query[struct {
		Position *Position
		Velocity *Velocity
	}]
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	for m := range s.Movers.Values() {
		m.Position.X += m.Velocity.X * frame.DeltaTime
		m.Position.Y += m.Velocity.Y * frame.DeltaTime

		if m.Position.X < 0 || m.Position.X > worldSize {
			m.Velocity.X = -m.Velocity.X
		}
		if m.Position.Y < 0 || m.Position.Y > worldSize {
			m.Velocity.Y = -m.Velocity.Y
		}
	}
}

type RegenSystem struct {
	Living ecs.Query[struct{ Health *Health }]
}

func (s *RegenSystem) Execute(frame *ecs.UpdateFrame) {
	for l := range s.Living.Values() {
		l.Health.Current = min(l.Health.Max, l.Health.Current+5*frame.DeltaTime)
	}
}

// LifetimeSystem deletes expired entities and spawns a replacement for each,
// so archetypes keep churning while the entity count stays flat.
type LifetimeSystem struct {
	Mortal ecs.Query[struct{ Lifetime *Lifetime }]

	rng *rand.Rand
}

func (s *LifetimeSystem) Execute(frame *ecs.UpdateFrame) {
	for id, m := range s.Mortal.Iter() {
		m.Lifetime.Remaining -= frame.DeltaTime
		if m.Lifetime.Remaining > 0 {
			continue
		}
		frame.Commands.Delete(id)
		frame.Commands.Spawn(randomComponents(s.rng, s.rng.Intn(5)+1)...)
	}
}
