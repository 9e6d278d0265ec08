package containers

import (
	"fmt"
	"iter"
)

// minGrowth is the smallest capacity a growing append allocates.
const minGrowth = 16

// Vector is a contiguous growable array. Slots [0, Len()) hold live
// elements; slots [Len(), Cap()) are uninitialized storage.
//
// The zero value is an empty vector ready to use. A Vector must not be
// copied by value; use Clone for a deep copy and Move to transfer storage.
type Vector[T any] struct {
	_        noCopy
	data     DataPtr[T]
	end      int
	gen      uint64 // bumped whenever existing iterators become invalid
	reallocs int
	tr       *Traits
}

// NewVector returns an empty vector. No storage is allocated.
func NewVector[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewVectorSize returns a vector of count zero-valued elements.
func NewVectorSize[T any](count int) *Vector[T] {
	v := &Vector[T]{}
	if count > 0 {
		v.data = NewDataPtr[T](count)
		clear(v.data.slots)
		v.end = count
	}
	return v
}

// NewVectorFill returns a vector of count copies of value.
func NewVectorFill[T any](count int, value T) *Vector[T] {
	v := &Vector[T]{}
	if count > 0 {
		v.data = NewDataPtr[T](count)
		fillSlots(v.traits(), v.data.slots, value)
		v.end = count
	}
	return v
}

// NewVectorFrom returns a vector holding copies of items, in order.
func NewVectorFrom[T any](items ...T) *Vector[T] {
	v := &Vector[T]{}
	if len(items) > 0 {
		v.data = NewDataPtr[T](len(items))
		copySlots(v.traits(), v.data.slots, items)
		v.end = len(items)
	}
	return v
}

// NewVectorRange returns a vector holding copies of [first, last).
// Both iterators must refer to the same vector.
func NewVectorRange[T any](first, last ConstIterator[T]) *Vector[T] {
	src := first.it.v
	if src == nil || src != last.it.v {
		panic("containers: iterator range spans different vectors")
	}
	lo, hi := src.own(first.it), src.own(last.it)
	if lo > hi || hi > src.end {
		panic(fmt.Sprintf("containers: invalid iterator range [%d:%d)", lo, hi))
	}
	return NewVectorFrom(src.data.slots[lo:hi]...)
}

// Collect returns a vector of the values yielded by seq.
func Collect[T any](seq iter.Seq[T]) *Vector[T] {
	v := &Vector[T]{}
	for x := range seq {
		v.PushBack(x)
	}
	return v
}

func (v *Vector[T]) traits() *Traits {
	if v.tr == nil {
		v.tr = traitsFor[T]()
	}
	return v.tr
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.end
}

// Cap returns the number of slots in the current allocation.
func (v *Vector[T]) Cap() int {
	return v.data.Len()
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.end == 0
}

// MaxSize returns the largest length the vector could reach.
func (v *Vector[T]) MaxSize() int {
	return MaxSize[T]()
}

// Reserve ensures Cap() >= n. If the allocation has to grow, the elements are
// relocated into a new allocation of exactly n slots and every outstanding
// iterator, pointer and Data slice is invalidated.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.data.Len() {
		return
	}
	v.reallocate(n, v.end, 0)
}

// ShrinkToFit reallocates so that Cap() == Len().
func (v *Vector[T]) ShrinkToFit() {
	if v.data.Len() == v.end {
		return
	}
	if v.end == 0 {
		v.data.Release()
		v.gen++
		return
	}
	v.reallocate(v.end, v.end, 0)
}

// growthPolicy returns the capacity to allocate when n slots are needed.
func (v *Vector[T]) growthPolicy(n int) int {
	capacity := v.data.Len()
	c := capacity + capacity/2
	if c < minGrowth {
		c = minGrowth
	}
	if limit := MaxSize[T](); c > limit || c < 0 {
		c = limit
	}
	if n > c {
		c = n
	}
	return c
}

// reallocate moves the live elements into a fresh allocation of newCap
// slots, leaving gapLen uninitialized slots at index gap.
func (v *Vector[T]) reallocate(newCap, gap, gapLen int) {
	buf := NewDataPtr[T](newCap)
	src := v.data.slots[:v.end]
	copy(buf.slots[:gap], src[:gap])
	copy(buf.slots[gap+gapLen:], src[gap:])
	v.data.Release()
	v.data.Reset(&buf)
	v.gen++
	v.reallocs++
}

// makeRoom opens k slots at index i, either by shifting [i, Len()) toward
// the tail or by reallocating with a gap. The opened slots hold stale values.
func (v *Vector[T]) makeRoom(i, k int) {
	need := v.end + k
	if need < v.end {
		panic("containers: vector length overflow")
	}
	if need > v.data.Len() {
		v.reallocate(v.growthPolicy(need), i, k)
	} else if i < v.end {
		s := v.data.slots
		copy(s[i+k:need], s[i:v.end])
	}
	v.end = need
}

func (v *Vector[T]) checkIndex(i int) {
	if uint(i) >= uint(v.end) {
		panic(fmt.Sprintf("containers: index %d out of range [0:%d)", i, v.end))
	}
}

func (v *Vector[T]) checkRange(first, last int) {
	if first < 0 || first > last || last > v.end {
		panic(fmt.Sprintf("containers: invalid erase range [%d:%d) with length %d", first, last, v.end))
	}
}

func (v *Vector[T]) checkPosition(i int) {
	if uint(i) > uint(v.end) {
		panic(fmt.Sprintf("containers: position %d out of range [0:%d]", i, v.end))
	}
}

// At returns the element at index i. It panics if i is out of range.
func (v *Vector[T]) At(i int) T {
	v.checkIndex(i)
	return v.data.slots[i]
}

// Set replaces the element at index i.
func (v *Vector[T]) Set(i int, x T) {
	v.checkIndex(i)
	v.data.slots[i] = x
}

// Ptr returns a pointer to the element at index i. The pointer is
// invalidated by any reallocation and refers to a different element after a
// shifting insert or erase.
func (v *Vector[T]) Ptr(i int) *T {
	v.checkIndex(i)
	return &v.data.slots[i]
}

// Front returns the first element. It panics on an empty vector.
func (v *Vector[T]) Front() T {
	return v.At(0)
}

// Back returns the last element. It panics on an empty vector.
func (v *Vector[T]) Back() T {
	return v.At(v.end - 1)
}

// Data returns the live elements as a slice sharing the vector's storage.
// Appending to the returned slice never writes into the vector.
func (v *Vector[T]) Data() []T {
	return v.data.slots[:v.end:v.end]
}

// Bytes returns the live elements as raw bytes. T must be pointer-free.
func (v *Vector[T]) Bytes() []byte {
	return v.data.Bytes(v.end)
}

// Clear destroys all elements and keeps the allocation.
func (v *Vector[T]) Clear() {
	destroySlots(v.traits(), v.data.slots[:v.end])
	v.end = 0
}

// Resize sets the length to n. New elements are zero-valued; removed ones are
// destroyed. A negative n is treated as 0.
func (v *Vector[T]) Resize(n int) {
	if !v.resize(n) {
		return
	}
	clear(v.data.slots[v.end:n])
	v.end = n
}

// ResizeFill is like Resize but new elements are copies of value.
func (v *Vector[T]) ResizeFill(n int, value T) {
	if !v.resize(n) {
		return
	}
	fillSlots(v.traits(), v.data.slots[v.end:n], value)
	v.end = n
}

// resize shrinks the vector or prepares storage for growth to n.
// It reports whether the caller has to construct [Len(), n).
func (v *Vector[T]) resize(n int) bool {
	if n <= v.end {
		v.Shrink(n)
		return false
	}
	if n > v.data.Len() {
		v.reallocate(v.growthPolicy(n), v.end, 0)
	}
	return true
}

// Shrink destroys elements beyond index n. It never reallocates and never
// grows the vector. A negative n is treated as 0.
func (v *Vector[T]) Shrink(n int) {
	if n < 0 {
		n = 0
	}
	if n >= v.end {
		return
	}
	destroySlots(v.traits(), v.data.slots[n:v.end])
	v.end = n
}

// construct initializes slot i in place. A nil ctor leaves the zero value.
func (v *Vector[T]) construct(i int, ctor func(*T)) *T {
	p := &v.data.slots[i]
	var zero T
	*p = zero
	if ctor != nil {
		ctor(p)
	}
	return p
}

// EmplaceBack appends an element constructed in place by ctor and returns a
// pointer to it. Amortized O(1).
func (v *Vector[T]) EmplaceBack(ctor func(*T)) *T {
	i := v.end
	v.makeRoom(i, 1)
	return v.construct(i, ctor)
}

// PushBack appends xs in order.
func (v *Vector[T]) PushBack(xs ...T) {
	if len(xs) == 0 {
		return
	}
	i := v.end
	v.makeRoom(i, len(xs))
	copy(v.data.slots[i:], xs)
}

// EmplaceFront prepends an element constructed in place by ctor. O(n).
func (v *Vector[T]) EmplaceFront(ctor func(*T)) *T {
	return v.EmplaceAt(0, ctor)
}

// PushFront prepends x. O(n).
func (v *Vector[T]) PushFront(x T) {
	v.InsertAt(0, x)
}

// EmplaceAt inserts an element constructed by ctor before index i,
// shifting the tail one slot toward the end.
func (v *Vector[T]) EmplaceAt(i int, ctor func(*T)) *T {
	v.checkPosition(i)
	v.makeRoom(i, 1)
	return v.construct(i, ctor)
}

// InsertAt inserts x before index i.
func (v *Vector[T]) InsertAt(i int, x T) {
	v.checkPosition(i)
	v.makeRoom(i, 1)
	v.data.slots[i] = x
}

// PopBack destroys the last element. It does nothing on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.end == 0 {
		return
	}
	v.Shrink(v.end - 1)
}

// EraseAt removes the element at index i. It does nothing on an empty
// vector and panics if i is otherwise out of range.
func (v *Vector[T]) EraseAt(i int) {
	if v.end == 0 {
		return
	}
	v.checkIndex(i)
	v.EraseRangeAt(i, i+1)
}

// EraseRangeAt removes the elements in [first, last), shifting the tail left.
func (v *Vector[T]) EraseRangeAt(first, last int) {
	v.checkRange(first, last)
	if first == last {
		return
	}
	tr := v.traits()
	s := v.data.slots
	destroySlots(tr, s[first:last])
	copy(s[first:], s[last:v.end])
	n := v.end - (last - first)
	vacate(tr, s[n:v.end])
	v.end = n
}

// MoveToFrontAt moves the element at index i to index 0, keeping the
// relative order of all other elements. Out of range indexes and i == 0 are
// ignored.
func (v *Vector[T]) MoveToFrontAt(i int) {
	if i <= 0 || i >= v.end {
		return
	}
	s := v.data.slots
	saved := s[i]
	copy(s[1:i+1], s[:i])
	s[0] = saved
}

// MoveToBackAt moves the element at index i to the last index, keeping the
// relative order of all other elements. Out of range indexes and the last
// index are ignored.
func (v *Vector[T]) MoveToBackAt(i int) {
	if i < 0 || i >= v.end-1 {
		return
	}
	s := v.data.slots
	saved := s[i]
	copy(s[i:v.end-1], s[i+1:v.end])
	s[v.end-1] = saved
}

// Clone returns a deep copy with capacity equal to Len().
func (v *Vector[T]) Clone() *Vector[T] {
	w := &Vector[T]{tr: v.tr}
	if v.end > 0 {
		w.data = NewDataPtr[T](v.end)
		copySlots(w.traits(), w.data.slots, v.data.slots[:v.end])
		w.end = v.end
	}
	return w
}

// Assign replaces the contents of v with copies of src's elements, reusing
// v's allocation when it is large enough.
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}
	v.Clear()
	if src.end > v.data.Len() {
		buf := NewDataPtr[T](src.end)
		v.data.Release()
		v.data.Reset(&buf)
		v.gen++
		v.reallocs++
	}
	copySlots(v.traits(), v.data.slots, src.data.slots[:src.end])
	v.end = src.end
}

// Move transfers the storage of v to a new vector in O(1) and leaves v empty.
// Iterators into v are invalidated.
func (v *Vector[T]) Move() *Vector[T] {
	w := &Vector[T]{tr: v.tr, end: v.end, reallocs: v.reallocs}
	w.data.Reset(&v.data)
	v.end = 0
	v.reallocs = 0
	v.gen++
	return w
}

// Swap exchanges the contents of v and o in O(1).
func (v *Vector[T]) Swap(o *Vector[T]) {
	v.data.Swap(&o.data)
	v.end, o.end = o.end, v.end
	v.reallocs, o.reallocs = o.reallocs, v.reallocs
	v.gen++
	o.gen++
}

// Destroy destroys every element and releases the allocation. The vector
// is left empty and may be reused.
func (v *Vector[T]) Destroy() {
	v.Clear()
	v.data.Release()
	v.gen++
}

// All returns an iterator over index/value pairs, front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.end; i++ {
			if !yield(i, v.data.slots[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.end; i++ {
			if !yield(v.data.slots[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs, back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.end - 1; i >= 0; i-- {
			if i >= v.end {
				continue
			}
			if !yield(i, v.data.slots[i]) {
				return
			}
		}
	}
}
