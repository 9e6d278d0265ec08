package containers

import (
	"fmt"
	"math"
	"unsafe"
)

// DataPtr exclusively owns a single allocation of element slots.
// Slots beyond a container's live range are treated as uninitialized: they
// may hold zero values or stale data from earlier occupants.
// A DataPtr must not be copied; use Take to move it.
type DataPtr[T any] struct {
	_     noCopy
	slots []T
}

// NewDataPtr allocates n slots. If n <= 0 the DataPtr owns nothing.
// Requests larger than MaxSize panic.
func NewDataPtr[T any](n int) DataPtr[T] {
	if n <= 0 {
		return DataPtr[T]{}
	}
	if n > MaxSize[T]() {
		panic(fmt.Sprintf("containers: allocation of %d elements exceeds MaxSize", n))
	}
	return DataPtr[T]{slots: make([]T, n)}
}

// MaxSize returns the largest number of T a single allocation can describe.
func MaxSize[T any]() int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return math.MaxInt
	}
	return int(uintptr(math.MaxInt) / size)
}

// Slots returns every slot of the allocation, live or not.
func (p *DataPtr[T]) Slots() []T {
	return p.slots
}

// Len returns the number of slots owned.
func (p *DataPtr[T]) Len() int {
	return len(p.slots)
}

// Empty reports whether p owns no allocation.
func (p *DataPtr[T]) Empty() bool {
	return len(p.slots) == 0
}

// Swap exchanges the allocations of p and o.
func (p *DataPtr[T]) Swap(o *DataPtr[T]) {
	p.slots, o.slots = o.slots, p.slots
}

// Take moves the allocation out of p, leaving p empty.
func (p *DataPtr[T]) Take() DataPtr[T] {
	s := p.slots
	p.slots = nil
	return DataPtr[T]{slots: s}
}

// Reset releases the current allocation and moves q's into p.
func (p *DataPtr[T]) Reset(q *DataPtr[T]) {
	if p == q {
		return
	}
	p.slots = q.slots
	q.slots = nil
}

// Release drops the allocation. It does not run element destructors; the
// owning container does that before releasing.
func (p *DataPtr[T]) Release() {
	p.slots = nil
}

// Bytes returns the first n slots as raw bytes. It panics if T holds Go
// pointers, because the garbage collector does not trace byte memory.
func (p *DataPtr[T]) Bytes(n int) []byte {
	if !traitsFor[T]().PointerFree {
		panic("containers: Bytes on element type containing pointers")
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if n <= 0 || size == 0 || len(p.slots) == 0 {
		return nil
	}
	if n > len(p.slots) {
		panic(fmt.Sprintf("containers: byte view of %d slots exceeds allocation of %d", n, len(p.slots)))
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&p.slots[0])), n*size)
}

// destroySlots runs element destructors over s and clears the slots so the
// garbage collector can reclaim what they referenced.
func destroySlots[T any](tr *Traits, s []T) {
	if tr.TriviallyDestructible {
		return
	}
	if tr.HasDestroy {
		for i := range s {
			any(&s[i]).(Destroyer).Destroy()
		}
	}
	if !tr.PointerFree {
		clear(s)
	}
}

// vacate forgets slots whose values were relocated elsewhere.
func vacate[T any](tr *Traits, s []T) {
	if !tr.PointerFree {
		clear(s)
	}
}

// copySlots copy-constructs src into dst.
func copySlots[T any](tr *Traits, dst, src []T) {
	if !tr.HasClone {
		copy(dst, src)
		return
	}
	for i := range src {
		dst[i] = cloneValue(tr, src[i])
	}
}

// fillSlots copy-constructs value into every slot of dst.
func fillSlots[T any](tr *Traits, dst []T, value T) {
	for i := range dst {
		dst[i] = cloneValue(tr, value)
	}
}

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
