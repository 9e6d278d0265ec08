package workload

import (
	"iter"

	"github.com/pavanmanishd/containers"
	"github.com/pavanmanishd/containers/internal/config"
	"github.com/pavanmanishd/containers/internal/instrument"
)

// outcome is the result of a single repetition.
type outcome struct {
	ops       int
	container string
	vector    *containers.VectorMetrics
	list      *containers.ListMetrics
}

type kindFunc func(w config.Workload) (outcome, error)

var kinds = map[string]kindFunc{
	config.KindVectorAppend:      vectorAppend,
	config.KindVectorFront:       vectorFront,
	config.KindVectorInsertErase: vectorInsertErase,
	config.KindVectorReorder:     vectorReorder,
	config.KindListAppend:        listAppend,
	config.KindOwnerChurn:        ownerChurn,
}

type sample struct {
	Seq   int64
	Value float64
}

// job is an owned object that counts its own destruction.
type job struct {
	id        int
	destroyed *int
}

func (j *job) Destroy() { *j.destroyed++ }

func sequence(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range n {
			if !yield(i) {
				return
			}
		}
	}
}

func vectorOutcome[T any](ops int, v *containers.Vector[T]) outcome {
	m := v.Metrics()
	return outcome{ops: ops, container: instrument.ContainerVector, vector: &m}
}

// vectorAppend grows a vector by PushBack and checks order and that appends
// within reserved capacity never reallocate.
func vectorAppend(w config.Workload) (outcome, error) {
	v := containers.NewVector[sample]()
	defer v.Destroy()
	v.Reserve(w.Reserve)
	reserved := v.Reallocations()

	for i := range w.Count {
		v.PushBack(sample{Seq: int64(i), Value: float64(i) / 2})
	}
	if v.Len() != w.Count || v.Cap() < v.Len() {
		return outcome{}, violated("len %d cap %d after %d appends", v.Len(), v.Cap(), w.Count)
	}
	if w.Reserve >= w.Count && v.Reallocations() != reserved {
		return outcome{}, violated("appends within reserved capacity %d reallocated", w.Reserve)
	}
	for i, s := range v.All() {
		if s.Seq != int64(i) {
			return outcome{}, violated("element %d holds seq %d", i, s.Seq)
		}
	}
	return vectorOutcome(w.Count, v), nil
}

// vectorFront builds a vector with EmplaceFront, which reverses insertion order.
func vectorFront(w config.Workload) (outcome, error) {
	v := containers.NewVector[sample]()
	defer v.Destroy()
	v.Reserve(w.Reserve)

	for i := range w.Count {
		v.EmplaceFront(func(s *sample) { s.Seq = int64(i) })
	}
	for i, s := range v.All() {
		if want := int64(w.Count - 1 - i); s.Seq != want {
			return outcome{}, violated("element %d holds seq %d, want %d", i, s.Seq, want)
		}
	}
	return vectorOutcome(w.Count, v), nil
}

// vectorInsertErase erases every even value, then inserts them back and
// expects the original sequence.
func vectorInsertErase(w config.Workload) (outcome, error) {
	v := containers.Collect(sequence(w.Count))
	defer v.Destroy()
	want := v.Clone()
	defer want.Destroy()
	v.Reserve(w.Reserve)
	ops := 0

	for k := 0; k < (w.Count+1)/2; k++ {
		v.EraseAt(k)
		ops++
	}
	if i := v.IndexFunc(func(x int) bool { return x%2 == 0 }); i >= 0 {
		return outcome{}, violated("even value %d survived erasure at %d", v.At(i), i)
	}
	for k := 0; 2*k < w.Count; k++ {
		v.Insert(v.IterAt(2*k), 2*k)
		ops++
	}
	if !containers.Equal(v, want) {
		return outcome{}, violated("erase/insert round trip changed the sequence")
	}

	last := w.Count - 1
	if !containers.FindErase(v, last) || containers.Contains(v, last) {
		return outcome{}, violated("FindErase(%d) did not remove the element", last)
	}
	v.PushBack(last)
	ops += 2
	if !containers.Equal(v, want) {
		return outcome{}, violated("sequence differs after re-appending %d", last)
	}
	return vectorOutcome(ops, v), nil
}

// vectorReorder rotates the vector with MoveToBack and MoveToFront, which
// must restore the order and never reallocate.
func vectorReorder(w config.Workload) (outcome, error) {
	v := containers.Collect(sequence(w.Count))
	defer v.Destroy()
	want := v.Clone()
	defer want.Destroy()
	before := v.Reallocations()

	for range w.Count {
		v.MoveToBack(v.Begin())
	}
	if !containers.Equal(v, want) {
		return outcome{}, violated("full rotation by MoveToBack changed the order")
	}
	for range w.Count {
		v.MoveToFrontAt(v.Len() - 1)
	}
	if !containers.Equal(v, want) {
		return outcome{}, violated("full rotation by MoveToFront changed the order")
	}
	if v.Reallocations() != before {
		return outcome{}, violated("reordering reallocated")
	}

	mid := w.Count / 2
	c := v.Clone()
	defer c.Destroy()
	c.MoveToFrontAt(mid)
	if c.Front() != mid {
		return outcome{}, violated("front is %d after moving %d to the front", c.Front(), mid)
	}
	prev := -1
	for _, x := range c.Data()[1:] {
		if x == mid || x <= prev {
			return outcome{}, violated("relative order broken after MoveToFront")
		}
		prev = x
	}
	return vectorOutcome(2*w.Count+1, v), nil
}

// listAppend appends to a List and checks that element addresses survive growth.
func listAppend(w config.Workload) (outcome, error) {
	l := containers.NewList[sample](w.NodeSize)
	defer l.Destroy()
	nodeSize := l.NodeSize()

	anchors := containers.NewVector[*sample]()
	defer anchors.Destroy()
	for i := range w.Count {
		p := l.EmplaceBack(func(s *sample) { s.Seq = int64(i) })
		if i%nodeSize == 0 {
			anchors.PushBack(p)
		}
	}

	for k, p := range anchors.All() {
		i := k * nodeSize
		if p != l.Ptr(i) || p.Seq != int64(i) {
			return outcome{}, violated("element %d moved during growth", i)
		}
	}
	n := 0
	for it := l.Begin(); !it.Equal(l.End()); it = it.Next() {
		if seq := it.Get().Seq; seq != int64(n) {
			return outcome{}, violated("list position %d holds seq %d", n, seq)
		}
		n++
	}
	if n != w.Count || l.Len() != w.Count {
		return outcome{}, violated("walked %d elements, len %d, want %d", n, l.Len(), w.Count)
	}
	if want := (w.Count + nodeSize - 1) / nodeSize; l.NumNodes() != want {
		return outcome{}, violated("%d nodes for %d elements of node size %d, want %d",
			l.NumNodes(), w.Count, nodeSize, want)
	}

	m := l.Metrics()
	return outcome{ops: w.Count, container: instrument.ContainerList, list: &m}, nil
}

// ownerChurn checks OwnerVector ownership accounting: clones own distinct
// pointees, released pointees are not destroyed, everything else is.
func ownerChurn(w config.Workload) (outcome, error) {
	destroyed := 0
	o := containers.NewOwnerVector[job]()
	o.Reserve(w.Reserve)
	for i := range w.Count {
		o.PushBack(&job{id: i, destroyed: &destroyed})
	}

	c := o.Clone()
	for i, p := range c.All() {
		if orig := o.At(i); p == orig || p.id != orig.id {
			c.Destroy()
			o.Destroy()
			return outcome{}, violated("clone slot %d shares or reorders its pointee", i)
		}
	}
	c.Destroy()
	if destroyed != w.Count {
		o.Destroy()
		return outcome{}, violated("destroying the clone deleted %d of %d pointees", destroyed, w.Count)
	}

	released := 0
	for i := o.Len() - 1; i >= 0; i -= 4 {
		p := o.ReleaseAt(i)
		if o.Contains(p) {
			o.Destroy()
			return outcome{}, violated("released pointee %d still owned", p.id)
		}
		released++
	}

	m := o.Metrics()
	o.Destroy()
	if want := 2*w.Count - released; destroyed != want {
		return outcome{}, violated("%d pointees destroyed, want %d", destroyed, want)
	}
	return outcome{ops: 3 * w.Count, container: instrument.ContainerOwner, vector: &m}, nil
}
