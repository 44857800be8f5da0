package ecs

import (
	"iter"
	"reflect"
	"slices"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype holds every entity that has exactly the same set of component types.
// Columns share slot indices, so slot i across all columns is one entity.
type Archetype struct {
	id       uint32
	types    []reflect.Type
	storages []iComponentStorage
}

// NewArchetype creates an archetype for the sorted component types.
// It panics if any type has not been registered.
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:       id,
		types:    types,
		storages: make([]iComponentStorage, len(types)),
	}

	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.storages[idx] = factory()
	}

	return a
}

// Spawn appends one entity and returns its slot index.
func (a *Archetype) Spawn(components []any) uint32 {
	var slot int
	for _, comp := range components {
		idx := a.columnOf(componentType(comp))
		if idx >= 0 {
			slot = a.storages[idx].Append(comp)
		}
	}
	return uint32(slot)
}

// GetComponent returns a pointer to the component of compType in the given
// slot, or nil if the archetype has no such column or the slot is empty.
func (a *Archetype) GetComponent(entityIndex uint32, compType reflect.Type) any {
	idx := a.columnOf(compType)
	if idx == -1 {
		return nil
	}
	return a.storages[idx].Get(int(entityIndex))
}

// Delete empties the slot in every column. Slot indices of other entities are unaffected.
func (a *Archetype) Delete(entityIndex uint32) {
	for _, storage := range a.storages {
		storage.Delete(int(entityIndex))
	}
}

// HasComponent reports whether compType is one of the archetype's columns.
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

// ID returns the archetype's hash ID.
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types.
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities.
func (a *Archetype) Len() int {
	if len(a.storages) == 0 {
		return 0
	}
	return a.storages[0].Len()
}

// Iter yields the ID of every live entity.
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		if len(a.storages) == 0 {
			return
		}
		for index := range a.storages[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}

func (a *Archetype) columnOf(compType reflect.Type) int {
	for i, typ := range a.types {
		if typ == compType {
			return i
		}
	}
	return -1
}
