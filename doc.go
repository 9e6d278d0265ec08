// Package containers implements sequence containers with explicit storage
// management: a contiguous growable Vector, an OwnerVector that owns the
// objects its pointers refer to, and a chunked append-only List.
//
// # Overview
//
// Each container owns its backing storage through a DataPtr, a single
// exclusively owned allocation of element slots. Slots beyond the live
// range are treated as uninitialized memory: they are never read and may
// still hold values left behind by earlier occupants.
//
//   - Vector keeps its elements contiguous and grows by reallocation.
//     Besides the usual operations it supports MoveToFront and MoveToBack,
//     which reposition one element while preserving the order of the rest.
//   - OwnerVector stores pointers and deletes the pointees it owns when
//     slots are erased or cleared. Release hands a pointee back to the caller.
//   - List stores elements in a chain of fixed-size nodes. Growth never
//     relocates elements, so pointers and iterators survive appends.
//
// # Basic Usage
//
//	v := containers.NewVector[int]()
//	v.Reserve(4)
//	v.PushBack(1, 2, 3)
//	v.PushFront(0)
//	v.MoveToBack(v.Begin()) // 1 2 3 0
//
//	l := containers.NewList[string](16)
//	p := l.EmplaceBack(func(s *string) { *s = "first" })
//	l.PushBack("second", "third") // p is still valid
//
// # Element Traits
//
// TraitsOf resolves, once per element type, which algorithms a container may
// use. Pointer-free types without hooks are copied with plain memory copies
// and destroyed for free. Types whose pointer implements Destroyer get their
// Destroy method called whenever a container destroys an element, and types
// implementing Cloner are cloned element by element whenever a container
// copies them (Clone, Assign, NewVectorFill, NewVectorFrom).
// Relocation is always a memory move.
//
// # Invalidation
//
// Iterators, pointers from Ptr and slices from Data are weak references.
// Any reallocation of a Vector invalidates all of them; inserting or erasing
// without reallocation shifts the elements at and after the affected
// position. Iterators record the allocation they were taken from and panic
// when used after a reallocation. List iterators and pointers are only
// invalidated by Clear, Move and Destroy.
//
// # Errors
//
// Out-of-range indexes, foreign or stale iterators, and allocations larger
// than MaxSize panic. Operations that are safe to ignore, such as PopBack on
// an empty vector or a negative Resize, are clamped rather than reported.
//
// # Thread Safety
//
// No container is safe for concurrent use. Callers that share a container
// between goroutines must synchronize access themselves.
package containers
