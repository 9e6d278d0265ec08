package containers

import "fmt"

// Iterator is a random-access position in a Vector. It is a weak reference:
// it does not keep the storage alive in any sense beyond the vector itself
// and becomes invalid when the vector reallocates. Using an invalidated
// iterator panics.
type Iterator[T any] struct {
	v   *Vector[T]
	i   int
	gen uint64
}

// ConstIterator is a read-only Iterator.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// Begin returns an iterator at the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{v: v, i: 0, gen: v.gen}
}

// End returns an iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{v: v, i: v.end, gen: v.gen}
}

// IterAt returns an iterator at index i, where 0 <= i <= Len().
func (v *Vector[T]) IterAt(i int) Iterator[T] {
	v.checkPosition(i)
	return Iterator[T]{v: v, i: i, gen: v.gen}
}

// CBegin returns a read-only iterator at the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{it: v.Begin()}
}

// CEnd returns a read-only iterator one past the last element.
func (v *Vector[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{it: v.End()}
}

// own validates that it belongs to v and is still valid, and returns its index.
func (v *Vector[T]) own(it Iterator[T]) int {
	if it.v != v {
		panic("containers: iterator belongs to a different vector")
	}
	if it.gen != v.gen {
		panic("containers: iterator invalidated by reallocation")
	}
	return it.i
}

// Emplace inserts an element constructed by ctor before it and returns an
// iterator to the new element.
func (v *Vector[T]) Emplace(it Iterator[T], ctor func(*T)) Iterator[T] {
	i := v.own(it)
	v.EmplaceAt(i, ctor)
	return v.IterAt(i)
}

// Insert inserts x before it and returns an iterator to the new element.
func (v *Vector[T]) Insert(it Iterator[T], x T) Iterator[T] {
	i := v.own(it)
	v.InsertAt(i, x)
	return v.IterAt(i)
}

// Erase removes the element at it and returns an iterator to the element
// that followed it. On an empty vector it does nothing and returns End.
func (v *Vector[T]) Erase(it Iterator[T]) Iterator[T] {
	i := v.own(it)
	if v.end == 0 {
		return v.End()
	}
	v.EraseAt(i)
	return v.IterAt(i)
}

// EraseRange removes [first, last) and returns an iterator at first.
func (v *Vector[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	lo, hi := v.own(first), v.own(last)
	v.EraseRangeAt(lo, hi)
	return v.IterAt(lo)
}

// MoveToFront moves the element at it to the front. See MoveToFrontAt.
func (v *Vector[T]) MoveToFront(it Iterator[T]) {
	v.MoveToFrontAt(v.own(it))
}

// MoveToBack moves the element at it to the back. See MoveToBackAt.
func (v *Vector[T]) MoveToBack(it Iterator[T]) {
	v.MoveToBackAt(v.own(it))
}

// IndexOfIter returns the index it refers to.
func (v *Vector[T]) IndexOfIter(it Iterator[T]) int {
	return v.own(it)
}

func (it Iterator[T]) check() {
	if it.v == nil {
		panic("containers: use of zero Iterator")
	}
	if it.gen != it.v.gen {
		panic("containers: iterator invalidated by reallocation")
	}
}

// Valid reports whether it can be dereferenced.
func (it Iterator[T]) Valid() bool {
	return it.v != nil && it.gen == it.v.gen && it.i >= 0 && it.i < it.v.end
}

// Index returns the position of it.
func (it Iterator[T]) Index() int {
	return it.i
}

// Next returns the iterator one position forward.
func (it Iterator[T]) Next() Iterator[T] {
	it.i++
	return it
}

// Prev returns the iterator one position back.
func (it Iterator[T]) Prev() Iterator[T] {
	it.i--
	return it
}

// Add returns the iterator n positions away.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.i += n
	return it
}

// Sub returns the distance from o to it.
func (it Iterator[T]) Sub(o Iterator[T]) int {
	if it.v != o.v {
		panic("containers: distance between iterators of different vectors")
	}
	return it.i - o.i
}

// Distance returns the number of positions from first to last.
func Distance[T any](first, last Iterator[T]) int {
	return last.Sub(first)
}

// Equal reports whether it and o denote the same position.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.v == o.v && it.i == o.i
}

// Less reports whether it precedes o.
func (it Iterator[T]) Less(o Iterator[T]) bool {
	return it.i < o.i
}

// Get returns the element at it.
func (it Iterator[T]) Get() T {
	return *it.Ptr()
}

// Ptr returns a pointer to the element at it.
func (it Iterator[T]) Ptr() *T {
	it.check()
	if it.i < 0 || it.i >= it.v.end {
		panic(fmt.Sprintf("containers: iterator position %d out of range [0:%d)", it.i, it.v.end))
	}
	return &it.v.data.slots[it.i]
}

// Set replaces the element at it.
func (it Iterator[T]) Set(x T) {
	*it.Ptr() = x
}

// Const returns a read-only copy of it.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

// Valid reports whether it can be dereferenced.
func (c ConstIterator[T]) Valid() bool { return c.it.Valid() }

// Index returns the position of c.
func (c ConstIterator[T]) Index() int { return c.it.i }

// Next returns the iterator one position forward.
func (c ConstIterator[T]) Next() ConstIterator[T] { return ConstIterator[T]{it: c.it.Next()} }

// Prev returns the iterator one position back.
func (c ConstIterator[T]) Prev() ConstIterator[T] { return ConstIterator[T]{it: c.it.Prev()} }

// Add returns the iterator n positions away.
func (c ConstIterator[T]) Add(n int) ConstIterator[T] { return ConstIterator[T]{it: c.it.Add(n)} }

// Sub returns the distance from o to c.
func (c ConstIterator[T]) Sub(o ConstIterator[T]) int { return c.it.Sub(o.it) }

// Equal reports whether c and o denote the same position.
func (c ConstIterator[T]) Equal(o ConstIterator[T]) bool { return c.it.Equal(o.it) }

// Less reports whether c precedes o.
func (c ConstIterator[T]) Less(o ConstIterator[T]) bool { return c.it.Less(o.it) }

// Get returns the element at c.
func (c ConstIterator[T]) Get() T { return c.it.Get() }
