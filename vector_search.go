package containers

import (
	"slices"
	"unsafe"
)

// Contains reports whether x is present in v.
func Contains[T comparable](v *Vector[T], x T) bool {
	return Find(v, x) >= 0
}

// Find returns the index of the first element equal to x, or -1.
func Find[T comparable](v *Vector[T], x T) int {
	return slices.Index(v.Data(), x)
}

// ReverseFind returns the index of the last element equal to x, or -1.
func ReverseFind[T comparable](v *Vector[T], x T) int {
	return ReverseFindBounded(v, x, v.Len())
}

// ReverseFindBounded searches [0, before) from the back and returns the
// index of the last element equal to x, or -1. before is clamped to the
// vector's length.
func ReverseFindBounded[T comparable](v *Vector[T], x T, before int) int {
	s := v.Data()
	if before > len(s) {
		before = len(s)
	}
	for i := before - 1; i >= 0; i-- {
		if s[i] == x {
			return i
		}
	}
	return -1
}

// FindErase erases the first element equal to x and reports whether one was found.
func FindErase[T comparable](v *Vector[T], x T) bool {
	i := Find(v, x)
	if i < 0 {
		return false
	}
	v.EraseAt(i)
	return true
}

// Equal reports whether a and b have the same length and pairwise equal elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U any](a *Vector[T], b *Vector[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}

// IndexFunc returns the index of the first element satisfying pred, or -1.
func (v *Vector[T]) IndexFunc(pred func(T) bool) int {
	return slices.IndexFunc(v.Data(), pred)
}

// LastIndexFunc returns the index of the last element satisfying pred, or -1.
func (v *Vector[T]) LastIndexFunc(pred func(T) bool) int {
	s := v.Data()
	for i := len(s) - 1; i >= 0; i-- {
		if pred(s[i]) {
			return i
		}
	}
	return -1
}

// ContainsFunc reports whether any element satisfies pred.
func (v *Vector[T]) ContainsFunc(pred func(T) bool) bool {
	return v.IndexFunc(pred) >= 0
}

// IndexOf returns the index of the live element p points to, or -1 if p
// does not point into the vector's live range.
func (v *Vector[T]) IndexOf(p *T) int {
	if p == nil || v.end == 0 {
		return -1
	}
	size := unsafe.Sizeof(*p)
	base := uintptr(unsafe.Pointer(&v.data.slots[0]))
	addr := uintptr(unsafe.Pointer(p))
	if size == 0 {
		if addr == base {
			return 0
		}
		return -1
	}
	if addr < base || (addr-base)%size != 0 {
		return -1
	}
	i := (addr - base) / size
	if i >= uintptr(v.end) {
		return -1
	}
	return int(i)
}
