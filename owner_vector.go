package containers

import (
	"fmt"
	"iter"
)

// OwnerVector is a vector of pointers that owns its pointees. Erasing,
// clearing or destroying a slot deletes the pointee: Destroy is called when
// *T implements Destroyer and the slot is nilled. Release hands a pointee
// back to the caller without deleting it.
//
// Each non-nil pointer may be owned at most once; adding a pointer that is
// already owned panics. Copies (Clone, Assign) clone the pointees, so two
// OwnerVectors never share ownership of an object.
type OwnerVector[T any] struct {
	v     Vector[*T]
	owned map[*T]struct{}
}

// NewOwnerVector returns an empty OwnerVector.
func NewOwnerVector[T any]() *OwnerVector[T] {
	return &OwnerVector[T]{}
}

func (o *OwnerVector[T]) adopt(p *T) {
	if p == nil {
		return
	}
	if o.owned == nil {
		o.owned = make(map[*T]struct{})
	}
	if _, dup := o.owned[p]; dup {
		panic(fmt.Sprintf("containers: pointer %p is already owned", p))
	}
	o.owned[p] = struct{}{}
}

// disown forgets p without deleting it.
func (o *OwnerVector[T]) disown(p *T) {
	if p != nil {
		delete(o.owned, p)
	}
}

// deletePointee runs the destructor of p and forgets it.
func (o *OwnerVector[T]) deletePointee(p *T) {
	if p == nil {
		return
	}
	o.disown(p)
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
	}
}

// Len returns the number of slots.
func (o *OwnerVector[T]) Len() int { return o.v.Len() }

// Cap returns the slot capacity.
func (o *OwnerVector[T]) Cap() int { return o.v.Cap() }

// Empty reports whether the vector holds no slots.
func (o *OwnerVector[T]) Empty() bool { return o.v.Empty() }

// Reserve ensures Cap() >= n.
func (o *OwnerVector[T]) Reserve(n int) { o.v.Reserve(n) }

// At returns the pointer stored at index i. Ownership stays with o.
func (o *OwnerVector[T]) At(i int) *T { return o.v.At(i) }

// Front returns the first pointer.
func (o *OwnerVector[T]) Front() *T { return o.v.Front() }

// Back returns the last pointer.
func (o *OwnerVector[T]) Back() *T { return o.v.Back() }

// Data returns the stored pointers. Ownership stays with o.
func (o *OwnerVector[T]) Data() []*T { return o.v.Data() }

// Begin returns an iterator at the first slot.
func (o *OwnerVector[T]) Begin() Iterator[*T] { return o.v.Begin() }

// End returns an iterator one past the last slot.
func (o *OwnerVector[T]) End() Iterator[*T] { return o.v.End() }

// CBegin returns a read-only iterator at the first slot.
func (o *OwnerVector[T]) CBegin() ConstIterator[*T] { return o.v.CBegin() }

// CEnd returns a read-only iterator one past the last slot.
func (o *OwnerVector[T]) CEnd() ConstIterator[*T] { return o.v.CEnd() }

// IndexOf returns the index of the slot that slot points to, or -1.
func (o *OwnerVector[T]) IndexOf(slot **T) int { return o.v.IndexOf(slot) }

// IndexOfIter returns the index it refers to.
func (o *OwnerVector[T]) IndexOfIter(it Iterator[*T]) int { return o.v.IndexOfIter(it) }

// All returns an iterator over index/pointer pairs.
func (o *OwnerVector[T]) All() iter.Seq2[int, *T] { return o.v.All() }

// EmplaceBack takes ownership of p and appends it.
func (o *OwnerVector[T]) EmplaceBack(p *T) *T {
	o.adopt(p)
	o.v.PushBack(p)
	return p
}

// PushBack takes ownership of every pointer in ps and appends them.
func (o *OwnerVector[T]) PushBack(ps ...*T) {
	for _, p := range ps {
		o.EmplaceBack(p)
	}
}

// EmplaceFront takes ownership of p and prepends it.
func (o *OwnerVector[T]) EmplaceFront(p *T) *T {
	o.adopt(p)
	o.v.PushFront(p)
	return p
}

// PushFront takes ownership of p and prepends it.
func (o *OwnerVector[T]) PushFront(p *T) {
	o.EmplaceFront(p)
}

// InsertAt takes ownership of p and inserts it before index i.
func (o *OwnerVector[T]) InsertAt(i int, p *T) {
	o.v.checkPosition(i)
	o.adopt(p)
	o.v.InsertAt(i, p)
}

// Insert takes ownership of p and inserts it before it.
func (o *OwnerVector[T]) Insert(it Iterator[*T], p *T) Iterator[*T] {
	i := o.v.own(it)
	o.InsertAt(i, p)
	return o.v.IterAt(i)
}

// EraseAt deletes the pointee at index i and removes the slot. It does
// nothing on an empty vector.
func (o *OwnerVector[T]) EraseAt(i int) {
	if o.v.Empty() {
		return
	}
	p := o.v.At(i)
	o.v.Set(i, nil)
	o.deletePointee(p)
	o.v.EraseAt(i)
}

// Erase deletes the pointee at it and removes the slot. On an empty vector
// it does nothing and returns End.
func (o *OwnerVector[T]) Erase(it Iterator[*T]) Iterator[*T] {
	i := o.v.own(it)
	if o.v.Empty() {
		return o.End()
	}
	o.EraseAt(i)
	return o.v.IterAt(i)
}

// EraseRangeAt deletes the pointees in [first, last) and removes their slots.
func (o *OwnerVector[T]) EraseRangeAt(first, last int) {
	o.v.checkRange(first, last)
	o.deleteSlots(first, last)
	o.v.EraseRangeAt(first, last)
}

// EraseRange deletes the pointees in [first, last) and returns an iterator at first.
func (o *OwnerVector[T]) EraseRange(first, last Iterator[*T]) Iterator[*T] {
	lo, hi := o.v.own(first), o.v.own(last)
	o.EraseRangeAt(lo, hi)
	return o.v.IterAt(lo)
}

// PopBack deletes the last pointee. It does nothing on an empty vector.
func (o *OwnerVector[T]) PopBack() {
	if o.v.Empty() {
		return
	}
	o.EraseAt(o.v.Len() - 1)
}

// Shrink deletes the pointees beyond index n and removes their slots.
// A negative n is treated as 0.
func (o *OwnerVector[T]) Shrink(n int) {
	n = max(n, 0)
	if n >= o.v.Len() {
		return
	}
	o.deleteSlots(n, o.v.Len())
	o.v.Shrink(n)
}

// Resize sets the number of slots to n. New slots are nil; dropped slots
// have their pointees deleted.
func (o *OwnerVector[T]) Resize(n int) {
	if n <= o.v.Len() {
		o.Shrink(n)
		return
	}
	o.v.Resize(n)
}

// deleteSlots nils the slots in [first, last) and deletes their pointees.
func (o *OwnerVector[T]) deleteSlots(first, last int) {
	for i := first; i < last; i++ {
		p := o.v.At(i)
		o.v.Set(i, nil)
		o.deletePointee(p)
	}
}

// ReleaseAt removes the slot at index i and returns its pointer without
// deleting it. The caller becomes the owner.
func (o *OwnerVector[T]) ReleaseAt(i int) *T {
	p := o.v.At(i)
	o.v.Set(i, nil)
	o.disown(p)
	o.v.EraseAt(i)
	return p
}

// Release removes the slot at it and returns its pointer without deleting
// it. The caller becomes the owner.
func (o *OwnerVector[T]) Release(it Iterator[*T]) *T {
	return o.ReleaseAt(o.v.own(it))
}

// FindErase deletes the slot holding p and reports whether it was found.
func (o *OwnerVector[T]) FindErase(p *T) bool {
	i := Find(&o.v, p)
	if i < 0 {
		return false
	}
	o.EraseAt(i)
	return true
}

// Contains reports whether p is stored in o.
func (o *OwnerVector[T]) Contains(p *T) bool {
	return Contains(&o.v, p)
}

// Find returns the index of p, or -1.
func (o *OwnerVector[T]) Find(p *T) int {
	return Find(&o.v, p)
}

// ReverseFind returns the index of the last slot holding p, or -1.
func (o *OwnerVector[T]) ReverseFind(p *T) int {
	return ReverseFind(&o.v, p)
}

// MoveToFrontAt moves the slot at index i to the front.
func (o *OwnerVector[T]) MoveToFrontAt(i int) { o.v.MoveToFrontAt(i) }

// MoveToBackAt moves the slot at index i to the back.
func (o *OwnerVector[T]) MoveToBackAt(i int) { o.v.MoveToBackAt(i) }

// MoveToFront moves the slot at it to the front.
func (o *OwnerVector[T]) MoveToFront(it Iterator[*T]) { o.v.MoveToFront(it) }

// MoveToBack moves the slot at it to the back.
func (o *OwnerVector[T]) MoveToBack(it Iterator[*T]) { o.v.MoveToBack(it) }

// Clear deletes every pointee and removes all slots.
func (o *OwnerVector[T]) Clear() {
	o.deleteSlots(0, o.v.Len())
	o.v.Clear()
}

// Destroy deletes every pointee and releases the slot storage.
func (o *OwnerVector[T]) Destroy() {
	o.Clear()
	o.v.Destroy()
	o.owned = nil
}

// Clone returns an OwnerVector holding clones of o's pointees.
func (o *OwnerVector[T]) Clone() *OwnerVector[T] {
	c := &OwnerVector[T]{}
	c.Assign(o)
	return c
}

// Assign deletes o's pointees and replaces them with clones of src's.
// A pointee is cloned with its Clone method when *T implements
// Cloner[*T], and by copying the pointed-to value otherwise.
func (o *OwnerVector[T]) Assign(src *OwnerVector[T]) {
	if o == src {
		return
	}
	o.Clear()
	o.v.Reserve(src.v.Len())
	for _, p := range src.v.Data() {
		o.EmplaceBack(clonePointee(p))
	}
}

func clonePointee[T any](p *T) *T {
	if p == nil {
		return nil
	}
	if c, ok := any(p).(Cloner[*T]); ok {
		return c.Clone()
	}
	q := new(T)
	*q = cloneValue(traitsFor[T](), *p)
	return q
}

// Swap exchanges the slots and pointee ownership of o and other.
func (o *OwnerVector[T]) Swap(other *OwnerVector[T]) {
	o.v.Swap(&other.v)
	o.owned, other.owned = other.owned, o.owned
}

// Move transfers the slots and ownership to a new OwnerVector and leaves o empty.
func (o *OwnerVector[T]) Move() *OwnerVector[T] {
	w := &OwnerVector[T]{owned: o.owned}
	w.v.Swap(&o.v)
	o.owned = nil
	return w
}

// Metrics returns a snapshot of slot storage statistics.
func (o *OwnerVector[T]) Metrics() VectorMetrics {
	return o.v.Metrics()
}
