package containers

import (
	"fmt"
	"iter"
)

// DefaultNodeSize is the node capacity used when NewList is given a
// non-positive size.
const DefaultNodeSize = 32

const noNode = -1

// node is a fixed-capacity chunk of element slots. next is the index of the
// following node in the list's node arena, or noNode.
type node[T any] struct {
	slots DataPtr[T]
	next  int
}

// List is an append-only sequence stored as a chain of fixed-capacity nodes.
// Growth never relocates existing elements, so pointers and iterators to
// elements stay valid across EmplaceBack and PushBack.
//
// Every node except the last is full. The node size is fixed when the list is
// created; the zero value is an empty list using DefaultNodeSize.
// A List must not be copied; use Move to transfer it.
type List[T any] struct {
	_        noCopy
	nodes    []node[T] // arena; links run through node.next
	first    int       // meaningful only while nodes is non-empty
	last     int
	size     int
	nodeSize int
	gen      uint64 // bumped by Clear, Move and Destroy
	tr       *Traits
}

// NewList creates an empty list whose nodes hold nodeSize elements.
// If nodeSize <= 0, DefaultNodeSize is used.
func NewList[T any](nodeSize int) *List[T] {
	if nodeSize <= 0 {
		nodeSize = DefaultNodeSize
	}
	return &List[T]{first: noNode, last: noNode, nodeSize: nodeSize}
}

func (l *List[T]) traits() *Traits {
	if l.tr == nil {
		l.tr = traitsFor[T]()
	}
	return l.tr
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// NodeSize returns the capacity of each node.
func (l *List[T]) NodeSize() int {
	if l.nodeSize == 0 {
		return DefaultNodeSize
	}
	return l.nodeSize
}

// NumNodes returns the number of allocated nodes.
func (l *List[T]) NumNodes() int {
	return len(l.nodes)
}

// tailUsed returns the number of live slots in the last node.
func (l *List[T]) tailUsed() int {
	if l.size == 0 {
		return 0
	}
	if r := l.size % l.nodeSize; r != 0 {
		return r
	}
	return l.nodeSize
}

// head returns the index of the first node, or noNode.
func (l *List[T]) head() int {
	if len(l.nodes) == 0 {
		return noNode
	}
	return l.first
}

// tail returns the index of the last node, or noNode.
func (l *List[T]) tail() int {
	if len(l.nodes) == 0 {
		return noNode
	}
	return l.last
}

// grow links a new empty node at the tail.
func (l *List[T]) grow() {
	l.nodes = append(l.nodes, node[T]{slots: NewDataPtr[T](l.nodeSize), next: noNode})
	idx := len(l.nodes) - 1
	if idx == 0 {
		l.first = idx
	} else {
		l.nodes[l.last].next = idx
	}
	l.last = idx
}

// EmplaceBack appends an element constructed in place by ctor and returns a
// pointer to it. The pointer stays valid until the list is cleared.
func (l *List[T]) EmplaceBack(ctor func(*T)) *T {
	if l.nodeSize == 0 {
		l.nodeSize = DefaultNodeSize
	}
	used := l.tailUsed()
	if len(l.nodes) == 0 || used == l.nodeSize {
		l.grow()
		used = 0
	}
	p := &l.nodes[l.last].slots.slots[used]
	var zero T
	*p = zero
	if ctor != nil {
		ctor(p)
	}
	l.size++
	return p
}

// PushBack appends xs in order.
func (l *List[T]) PushBack(xs ...T) {
	for _, x := range xs {
		*l.EmplaceBack(nil) = x
	}
}

// Ptr returns a pointer to the element at index i. O(1).
func (l *List[T]) Ptr(i int) *T {
	if uint(i) >= uint(l.size) {
		panic(fmt.Sprintf("containers: index %d out of range [0:%d)", i, l.size))
	}
	// Nodes are appended to the arena in chain order.
	return &l.nodes[i/l.nodeSize].slots.slots[i%l.nodeSize]
}

// At returns the element at index i.
func (l *List[T]) At(i int) T {
	return *l.Ptr(i)
}

// Front returns the first element. It panics on an empty list.
func (l *List[T]) Front() T {
	return l.At(0)
}

// Back returns the last element. It panics on an empty list.
func (l *List[T]) Back() T {
	return l.At(l.size - 1)
}

// Clear destroys every element and frees every node.
func (l *List[T]) Clear() {
	tr := l.traits()
	for n := l.head(); n != noNode; n = l.nodes[n].next {
		used := l.nodeSize
		if n == l.last {
			used = l.tailUsed()
		}
		destroySlots(tr, l.nodes[n].slots.slots[:used])
		l.nodes[n].slots.Release()
	}
	clear(l.nodes)
	l.nodes = l.nodes[:0:0]
	l.first, l.last, l.size = noNode, noNode, 0
	l.gen++
}

// Destroy is Clear; the list may be reused afterwards.
func (l *List[T]) Destroy() {
	l.Clear()
}

// Move transfers the node chain to a new list in O(1) and leaves l empty.
func (l *List[T]) Move() *List[T] {
	w := &List[T]{
		nodes:    l.nodes,
		first:    l.first,
		last:     l.last,
		size:     l.size,
		nodeSize: l.nodeSize,
		tr:       l.tr,
	}
	l.nodes = nil
	l.first, l.last, l.size = noNode, noNode, 0
	l.gen++
	return w
}

// All returns an iterator over index/value pairs, front to back.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head(); n != noNode; n = l.nodes[n].next {
			used := l.nodeSize
			if n == l.last {
				used = l.tailUsed()
			}
			for _, x := range l.nodes[n].slots.slots[:used] {
				if !yield(i, x) {
					return
				}
				i++
			}
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range l.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// ListIterator is a forward position in a List. Iterators to elements stay
// valid while the list grows; Clear and Move invalidate them.
type ListIterator[T any] struct {
	l    *List[T]
	node int
	slot int
	gen  uint64
}

// Begin returns an iterator at the first element.
func (l *List[T]) Begin() ListIterator[T] {
	return ListIterator[T]{l: l, node: l.head(), slot: 0, gen: l.gen}
}

// End returns an iterator one past the last element. Later appends are
// placed at that position, so after growth End denotes the first new
// element. This holds for an End taken on an empty list too.
func (l *List[T]) End() ListIterator[T] {
	return ListIterator[T]{l: l, node: l.tail(), slot: l.tailUsed(), gen: l.gen}
}

func (it *ListIterator[T]) check() {
	if it.l == nil {
		panic("containers: use of zero ListIterator")
	}
	if it.gen != it.l.gen {
		panic("containers: list iterator invalidated")
	}
}

// normalize resolves a position taken before the list grew: an iterator
// from an empty list moves to the first node, and one past a full node
// moves onto its successor.
func (it *ListIterator[T]) normalize() {
	if it.node == noNode {
		it.node, it.slot = it.l.head(), 0
		return
	}
	if it.slot == it.l.nodeSize {
		if next := it.l.nodes[it.node].next; next != noNode {
			it.node, it.slot = next, 0
		}
	}
}

// atEnd reports whether a normalized iterator is at End.
func (it *ListIterator[T]) atEnd() bool {
	return it.node == noNode || (it.node == it.l.last && it.slot >= it.l.tailUsed())
}

// Next returns the iterator one position forward. Next of End is End.
func (it ListIterator[T]) Next() ListIterator[T] {
	it.check()
	it.normalize()
	if it.atEnd() {
		return it
	}
	it.slot++
	it.normalize()
	return it
}

// Equal reports whether it and o denote the same position.
func (it ListIterator[T]) Equal(o ListIterator[T]) bool {
	if it.l != o.l {
		return false
	}
	if it.l != nil && it.gen == it.l.gen && o.gen == o.l.gen {
		it.normalize()
		o.normalize()
	}
	return it.node == o.node && it.slot == o.slot
}

// Valid reports whether it can be dereferenced.
func (it ListIterator[T]) Valid() bool {
	if it.l == nil || it.gen != it.l.gen {
		return false
	}
	it.normalize()
	return !it.atEnd()
}

// Ptr returns a pointer to the element at it.
func (it ListIterator[T]) Ptr() *T {
	it.check()
	if !it.Valid() {
		panic("containers: dereference of list end iterator")
	}
	it.normalize()
	return &it.l.nodes[it.node].slots.slots[it.slot]
}

// Get returns the element at it.
func (it ListIterator[T]) Get() T {
	return *it.Ptr()
}

// Set replaces the element at it.
func (it ListIterator[T]) Set(x T) {
	*it.Ptr() = x
}
