package ecs

import (
	"iter"
	"reflect"
)

// ComponentRegistry maps component types to their column factories. Every
// Storage owns exactly one registry; a type must be registered before an
// entity carrying it can be spawned.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
}

// NewComponentRegistry creates an empty registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent registers T with the registry. Registering the same type
// again is a no-op.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	if _, ok := r.factories[t]; ok {
		return
	}
	r.factories[t] = func() iComponentStorage {
		return &genericComponentStorage[T]{}
	}
}

// IsRegistered reports whether t has a column factory.
func (r *ComponentRegistry) IsRegistered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

const genericBlockSize = 64

// genericComponentStorage keeps components of type T in fixed-size blocks so
// pointers handed out by Get stay valid while the column grows.
type genericComponentStorage[T any] struct {
	blocks    [][genericBlockSize]T
	filled    [][genericBlockSize]bool
	freeSlots []int
	nextIndex int
	live      int
}

func (cs *genericComponentStorage[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	var index int
	if n := len(cs.freeSlots); n > 0 {
		index = cs.freeSlots[n-1]
		cs.freeSlots = cs.freeSlots[:n-1]
	} else {
		index = cs.nextIndex
		cs.nextIndex++
		if index/genericBlockSize >= len(cs.blocks) {
			cs.blocks = append(cs.blocks, [genericBlockSize]T{})
			cs.filled = append(cs.filled, [genericBlockSize]bool{})
		}
	}

	cs.blocks[index/genericBlockSize][index%genericBlockSize] = value
	cs.filled[index/genericBlockSize][index%genericBlockSize] = true
	cs.live++
	return index
}

// Get returns a *T for the slot, or nil when the slot is empty.
func (cs *genericComponentStorage[T]) Get(index int) any {
	if !cs.Has(index) {
		return nil
	}
	return &cs.blocks[index/genericBlockSize][index%genericBlockSize]
}

func (cs *genericComponentStorage[T]) Delete(index int) {
	if !cs.Has(index) {
		return
	}
	var zero T
	cs.blocks[index/genericBlockSize][index%genericBlockSize] = zero
	cs.filled[index/genericBlockSize][index%genericBlockSize] = false
	cs.freeSlots = append(cs.freeSlots, index)
	cs.live--
}

func (cs *genericComponentStorage[T]) Has(index int) bool {
	if index < 0 || index >= cs.nextIndex {
		return false
	}
	return cs.filled[index/genericBlockSize][index%genericBlockSize]
}

// Len returns the number of occupied slots.
func (cs *genericComponentStorage[T]) Len() int {
	return cs.live
}

func (cs *genericComponentStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < cs.nextIndex; i++ {
			if !cs.filled[i/genericBlockSize][i%genericBlockSize] {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}
