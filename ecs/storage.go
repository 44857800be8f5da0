package ecs

import (
	"iter"
	"maps"
	"reflect"
	"slices"
	"sort"
	"unsafe"
)

// Storage owns every archetype and singleton of one ECS world.
type Storage struct {
	archetypes map[uint32]*Archetype
	registry   *ComponentRegistry
	singletons map[reflect.Type]*singletonEntry
}

// NewStorage creates an empty world backed by registry.
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: make(map[uint32]*Archetype),
		registry:   registry,
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Registry returns the component registry the storage was created with.
// Types may still be registered after the storage exists, up until the first
// entity carrying them is spawned.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// GetArchetype returns the archetype for exactly the given components, if one exists.
func (s *Storage) GetArchetype(components ...any) *Archetype {
	types := extractComponentTypes(components)
	return s.archetypes[hashTypesToUint32(types)]
}

// GetArchetypeByTypes is GetArchetype keyed by reflect.Type.
func (s *Storage) GetArchetypeByTypes(types []reflect.Type) *Archetype {
	sorted := slices.Clone(types)
	sort.Sort(byTypeName(sorted))
	return s.archetypes[hashTypesToUint32(sorted)]
}

// Archetypes yields every archetype in ascending ID order.
func (s *Storage) Archetypes() iter.Seq[*Archetype] {
	return func(yield func(*Archetype) bool) {
		for _, id := range slices.Sorted(maps.Keys(s.archetypes)) {
			if !yield(s.archetypes[id]) {
				return
			}
		}
	}
}

// ArchetypeCount returns the number of archetypes created so far.
func (s *Storage) ArchetypeCount() int {
	return len(s.archetypes)
}

// EntityCount returns the number of live entities across all archetypes.
func (s *Storage) EntityCount() int {
	count := 0
	for _, archetype := range s.archetypes {
		count += archetype.Len()
	}
	return count
}

// Spawn creates an entity carrying the given components. Components may be
// passed by value or by pointer; pointers are copied into storage.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types := extractComponentTypes(components)
	archetype := s.archetypeFor(types)
	return NewEntityId(archetype.id, archetype.Spawn(components))
}

// Delete removes the entity and all of its components.
func (s *Storage) Delete(id EntityId) {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return
	}
	archetype.Delete(id.Index())
}

// Alive reports whether id refers to a live entity.
func (s *Storage) Alive(id EntityId) bool {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok || len(archetype.storages) == 0 {
		return false
	}
	return archetype.storages[0].Has(int(id.Index()))
}

// AddComponent attaches component to the entity and returns the entity's new
// ID, since the entity moves to a different archetype. If the entity already
// has a component of that type, the value is overwritten in place and the ID
// is unchanged.
func (s *Storage) AddComponent(id EntityId, component any) EntityId {
	oldArchetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return 0
	}

	compType := componentType(component)
	if existing := oldArchetype.GetComponent(id.Index(), compType); existing != nil {
		reflect.ValueOf(existing).Elem().Set(reflect.Indirect(reflect.ValueOf(component)))
		return id
	}

	newTypes := make([]reflect.Type, 0, len(oldArchetype.types)+1)
	newTypes = append(newTypes, oldArchetype.types...)
	newTypes = append(newTypes, compType)
	sort.Sort(byTypeName(newTypes))

	components := make([]any, 0, len(newTypes))
	for _, typ := range newTypes {
		if typ == compType {
			components = append(components, component)
		} else {
			components = append(components, oldArchetype.GetComponent(id.Index(), typ))
		}
	}

	return s.move(id, oldArchetype, newTypes, components)
}

// RemoveComponent detaches compType from the entity and returns its new ID.
// Removing the last component deletes the entity and returns 0.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) EntityId {
	oldArchetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok || !oldArchetype.HasComponent(compType) {
		return id
	}

	newTypes := make([]reflect.Type, 0, len(oldArchetype.types)-1)
	for _, typ := range oldArchetype.types {
		if typ != compType {
			newTypes = append(newTypes, typ)
		}
	}

	if len(newTypes) == 0 {
		oldArchetype.Delete(id.Index())
		return 0
	}

	components := make([]any, 0, len(newTypes))
	for _, typ := range newTypes {
		components = append(components, oldArchetype.GetComponent(id.Index(), typ))
	}

	return s.move(id, oldArchetype, newTypes, components)
}

func (s *Storage) move(id EntityId, from *Archetype, types []reflect.Type, components []any) EntityId {
	to := s.archetypeFor(types)
	newId := NewEntityId(to.id, to.Spawn(components))
	from.Delete(id.Index())
	return newId
}

func (s *Storage) archetypeFor(sortedTypes []reflect.Type) *Archetype {
	archetypeId := hashTypesToUint32(sortedTypes)
	archetype, exists := s.archetypes[archetypeId]
	if !exists {
		archetype = NewArchetype(archetypeId, sortedTypes, s.registry)
		s.archetypes[archetypeId] = archetype
	}
	return archetype
}

// GetComponent returns a pointer to the entity's component of compType, or nil.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return nil
	}
	return archetype.GetComponent(id.Index(), compType)
}

// HasComponent reports whether the entity's archetype includes compType.
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	archetype, ok := s.archetypes[id.ArchetypeId()]
	if !ok {
		return false
	}
	return archetype.HasComponent(compType)
}

// Components yields every component attached to the entity as (type, pointer) pairs.
func (s *Storage) Components(id EntityId) iter.Seq2[reflect.Type, any] {
	return func(yield func(reflect.Type, any) bool) {
		archetype, ok := s.archetypes[id.ArchetypeId()]
		if !ok {
			return
		}
		for i, typ := range archetype.types {
			comp := archetype.storages[i].Get(int(id.Index()))
			if comp == nil {
				continue
			}
			if !yield(typ, comp) {
				return
			}
		}
	}
}

func componentType(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// extractComponentTypes returns the sorted component types of components.
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		compType := componentType(comp)

		switch compType.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
			panic("components cannot be pointers, maps, channels, or functions")
		}

		types = append(types, compType)
	}
	sort.Sort(byTypeName(types))
	return types
}

// hashTypesToUint32 is FNV-1a over the runtime type pointers of a sorted type list.
func hashTypesToUint32(types []reflect.Type) uint32 {
	var h uint32 = 2166136261
	const prime uint32 = 16777619

	for _, t := range types {
		ptr := uintptr((*eface)(unsafe.Pointer(&t)).data)
		val := uint32(ptr)
		if unsafe.Sizeof(uintptr(0)) == 8 {
			val ^= uint32(uint64(ptr) >> 32)
		}

		h ^= val
		h *= prime
	}

	return h
}

// ComponentReader is anything that can look up a component by entity and type.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's T component, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
