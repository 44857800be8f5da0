package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/perfui/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageSpawnAndGet(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1, Y: 2}, &Velocity{DX: 3, DY: 4})

	pos := ecs.ReadComponent[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, float32(1), pos.X)
	assert.Equal(t, float32(2), pos.Y)

	vel := ecs.ReadComponent[Velocity](storage, id)
	require.NotNil(t, vel)
	assert.Equal(t, float32(3), vel.DX)

	assert.Nil(t, ecs.ReadComponent[Health](storage, id))
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Position]()))
	assert.False(t, storage.HasComponent(id, reflect.TypeFor[Health]()))
}

func TestStorageSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() })
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) })

	type unregistered struct{}
	assert.Panics(t, func() { storage.Spawn(unregistered{}) })
}

func TestStorageSameArchetype(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{}, Velocity{})
	b := storage.Spawn(Velocity{}, Position{})

	assert.Equal(t, a.ArchetypeId(), b.ArchetypeId())
	assert.NotEqual(t, a.Index(), b.Index())
	assert.Equal(t, 1, storage.ArchetypeCount())
	assert.NotNil(t, storage.GetArchetype(Position{}, Velocity{}))
	assert.NotNil(t, storage.GetArchetypeByTypes([]reflect.Type{reflect.TypeFor[Velocity](), reflect.TypeFor[Position]()}))
}

func TestStorageDelete(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{X: 1})
	b := storage.Spawn(Position{X: 2})
	assert.Equal(t, 2, storage.EntityCount())

	storage.Delete(a)
	assert.False(t, storage.Alive(a))
	assert.True(t, storage.Alive(b))
	assert.Equal(t, 1, storage.EntityCount())
	assert.Nil(t, ecs.ReadComponent[Position](storage, a))

	// Freed slots are reused.
	c := storage.Spawn(Position{X: 3})
	assert.Equal(t, a, c)
	assert.Equal(t, float32(3), ecs.ReadComponent[Position](storage, c).X)
}

func TestStorageAddComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 5, Y: 6})
	moved := storage.AddComponent(id, Health{Current: 10, Max: 20})

	assert.NotEqual(t, id.ArchetypeId(), moved.ArchetypeId())
	assert.False(t, storage.Alive(id))
	assert.Equal(t, float32(5), ecs.ReadComponent[Position](storage, moved).X)
	assert.Equal(t, 10, ecs.ReadComponent[Health](storage, moved).Current)

	t.Run("existing component is overwritten in place", func(t *testing.T) {
		same := storage.AddComponent(moved, &Health{Current: 99, Max: 100})
		assert.Equal(t, moved, same)
		assert.Equal(t, 99, ecs.ReadComponent[Health](storage, same).Current)
	})
}

func TestStorageRemoveComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1}, Name{Value: "a"})
	moved := storage.RemoveComponent(id, reflect.TypeFor[Name]())

	assert.True(t, storage.Alive(moved))
	assert.Nil(t, ecs.ReadComponent[Name](storage, moved))
	assert.Equal(t, float32(1), ecs.ReadComponent[Position](storage, moved).X)

	assert.Equal(t, moved, storage.RemoveComponent(moved, reflect.TypeFor[Health]()))

	gone := storage.RemoveComponent(moved, reflect.TypeFor[Position]())
	assert.Equal(t, ecs.EntityId(0), gone)
	assert.Equal(t, 0, storage.EntityCount())
}

func TestStorageComponents(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1}, Score(7), Name{Value: "n"})

	found := make(map[reflect.Type]any)
	for typ, comp := range storage.Components(id) {
		found[typ] = comp
	}

	assert.Len(t, found, 3)
	assert.Equal(t, Score(7), *found[reflect.TypeFor[Score]()].(*Score))
	assert.Equal(t, "n", found[reflect.TypeFor[Name]()].(*Name).Value)
}

func TestStorageArchetypesOrdered(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{})
	storage.Spawn(Velocity{})
	storage.Spawn(Position{}, Velocity{})

	var ids []uint32
	for archetype := range storage.Archetypes() {
		ids = append(ids, archetype.ID())
	}

	require.Len(t, ids, 3)
	assert.IsIncreasing(t, ids)
}

func TestRegisterComponentTwice(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Position](registry)

	assert.True(t, registry.IsRegistered(reflect.TypeFor[Position]()))
	assert.False(t, registry.IsRegistered(reflect.TypeFor[Velocity]()))
}

func TestStorageManyEntities(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	ids := make([]ecs.EntityId, 0, 500)
	for i := 0; i < 500; i++ {
		ids = append(ids, storage.Spawn(Score(i)))
	}

	for i, id := range ids {
		assert.Equal(t, Score(i), *ecs.ReadComponent[Score](storage, id))
	}

	archetype := storage.GetArchetype(Score(0))
	require.NotNil(t, archetype)
	assert.Equal(t, 500, archetype.Len())
}
