package ecs_test

import "github.com/plus3/perfui/ecs"

type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

type Score int32
type Temperature float64

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Name](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Score](registry)
	ecs.RegisterComponent[Temperature](registry)
	ecs.RegisterComponent[int](registry)
	ecs.RegisterComponent[float64](registry)
	ecs.RegisterComponent[string](registry)
	return registry
}
