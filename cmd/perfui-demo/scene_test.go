package main

import (
	"math/rand"
	"testing"

	"github.com/plus3/perfui/ecs"
	"github.com/plus3/perfui/host"
	"github.com/stretchr/testify/assert"
)

func TestSpriteStepBounces(t *testing.T) {
	s := Sprite{X: 5, Y: 50, VX: -100, VY: 0}
	s.step(0.1, 100, 100)

	assert.Equal(t, 0.0, s.X)
	assert.Equal(t, 100.0, s.VX)
	assert.Equal(t, 50.0, s.Y)

	s = Sprite{X: 90, Y: 10, VX: 100, VY: 0}
	s.step(0.1, 100, 100)
	assert.Equal(t, float64(100-spriteSize), s.X)
	assert.Equal(t, -100.0, s.VX)
}

func TestSpriteSystemStaysInWindow(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Sprite](registry)
	storage := ecs.NewStorage(registry)
	scheduler := ecs.NewScheduler(storage)
	ecs.NewSingleton[host.Window](storage, host.Window{Width: 200, Height: 100})
	scheduler.Register(&SpriteSystem{})

	rng := rand.New(rand.NewSource(7))
	for range 20 {
		storage.Spawn(newSprite(rng, 200, 100))
	}
	for range 60 {
		scheduler.Once(1.0 / 30)
	}

	sprites := ecs.NewQuery[struct{ Sprite *Sprite }](storage)
	sprites.Execute()
	assert.Equal(t, 20, sprites.Len())
	for sp := range sprites.Values() {
		assert.GreaterOrEqual(t, sp.Sprite.X, 0.0)
		assert.LessOrEqual(t, sp.Sprite.X, float64(200-spriteSize))
		assert.GreaterOrEqual(t, sp.Sprite.Y, 0.0)
		assert.LessOrEqual(t, sp.Sprite.Y, float64(100-spriteSize))
	}
}
