package ecs

import "unsafe"

// eface mirrors the runtime layout of an empty interface so the data pointer
// of a boxed component can be read without reflection.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// dataPointer returns the pointer held by v. v must hold a pointer.
func dataPointer(v any) unsafe.Pointer {
	return (*eface)(unsafe.Pointer(&v)).data
}
