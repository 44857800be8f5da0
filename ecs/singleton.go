package ecs

import (
	"reflect"
	"unsafe"
)

// singletonEntry keeps a heap copy of a singleton value. The pointer is
// stable for the lifetime of the storage.
type singletonEntry struct {
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// AddSingleton stores value as the world-wide instance of its type. value may be
// passed by value or pointer. Adding a type that already exists overwrites the
// stored value in place, so outstanding Singleton accessors stay valid.
func (s *Storage) AddSingleton(value any) {
	t := componentType(value)
	v := reflect.Indirect(reflect.ValueOf(value))

	if entry, ok := s.singletons[t]; ok {
		entry.value.Elem().Set(v)
		return
	}

	ptr := reflect.New(t)
	ptr.Elem().Set(v)
	s.singletons[t] = &singletonEntry{
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	}
}

// ReadSingleton sets *target to the stored singleton of the pointed-to type.
// target must be a **T. It returns false and leaves *target nil when no such
// singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr || targetValue.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	ptrValue := targetValue.Elem()
	entry := s.getSingletonEntry(ptrValue.Type().Elem())
	if entry == nil {
		ptrValue.Set(reflect.Zero(ptrValue.Type()))
		return false
	}

	ptrValue.Set(entry.value)
	return true
}

// RemoveSingleton drops the singleton of type t. Accessors created earlier
// report the singleton as missing on their next refresh.
func (s *Storage) RemoveSingleton(t reflect.Type) {
	delete(s.singletons, t)
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// Singleton is a typed accessor for a world-wide component that is not
// attached to any entity (configuration, clocks, shared stores).
type Singleton[T any] struct {
	storage      *Storage
	componentPtr unsafe.Pointer
}

// NewSingleton returns an accessor for T, creating the singleton from
// initializer (or T's zero value) when it does not exist yet.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	t := reflect.TypeFor[T]()

	entry := storage.getSingletonEntry(t)
	if entry == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
		entry = storage.getSingletonEntry(t)
	}

	return &Singleton[T]{
		storage:      storage,
		componentPtr: entry.dataPtr,
	}
}

// Init binds the accessor to storage. The Scheduler calls this for every
// Singleton field of a registered system. Unlike NewSingleton it does not
// create the singleton.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.componentPtr = nil
	s.updateCache()
}

// Get returns the singleton, or nil if it has not been added.
func (s *Singleton[T]) Get() *T {
	s.updateCache()
	if s.componentPtr == nil {
		return nil
	}
	return (*T)(s.componentPtr)
}

// Exists reports whether the singleton has been added.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) updateCache() {
	if s.storage == nil {
		return
	}
	if entry := s.storage.getSingletonEntry(reflect.TypeFor[T]()); entry != nil {
		s.componentPtr = entry.dataPtr
	} else {
		s.componentPtr = nil
	}
}
