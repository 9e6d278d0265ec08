package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerVectorEraseDeletesOnce(t *testing.T) {
	o := NewOwnerVector[Widget]()
	w := o.EmplaceBack(&Widget{ID: 7})
	o.Erase(o.Begin())

	assert.Equal(t, 1, w.destroyed)
	assert.True(t, o.Empty())
}

func TestOwnerVectorLifetimeAccounting(t *testing.T) {
	o := NewOwnerVector[Widget]()
	var all []*Widget
	for i := 0; i < 40; i++ {
		w := &Widget{ID: i}
		all = append(all, w)
		o.PushBack(w)
	}

	o.EraseAt(3)
	o.FindErase(all[10])
	released := o.ReleaseAt(0)
	o.MoveToFrontAt(5)
	o.MoveToBack(o.Begin())
	o.Clear()
	o.Destroy()

	require.Same(t, all[0], released)
	assert.Equal(t, 0, released.destroyed, "released pointee is not deleted")
	for _, w := range all[1:] {
		assert.Equal(t, 1, w.destroyed, "widget %d", w.ID)
	}
}

func TestOwnerVectorEraseOnEmptyIsIgnored(t *testing.T) {
	o := NewOwnerVector[Widget]()
	assert.NotPanics(t, func() { o.EraseAt(0) })
	it := o.Erase(o.Begin())
	assert.True(t, it.Equal(o.End()))
	assert.NotPanics(t, o.PopBack)
	assert.True(t, o.Empty())
}

func TestOwnerVectorPositionalOps(t *testing.T) {
	o := NewOwnerVector[Widget]()
	var all []*Widget
	adopt := func(front bool) *Widget {
		w := &Widget{ID: len(all)}
		all = append(all, w)
		if front {
			o.PushFront(w)
		} else {
			o.PushBack(w)
		}
		return w
	}
	for i := 0; i < 20; i++ {
		adopt(false)
	}
	first := adopt(true)
	assert.Same(t, first, o.Front())
	front := &Widget{ID: len(all)}
	all = append(all, front)
	assert.Same(t, front, o.EmplaceFront(front))

	o.PopBack()
	assert.Equal(t, 1, all[19].destroyed, "PopBack deletes the last pointee")

	o.EraseRangeAt(2, 5)
	for _, w := range all[0:3] {
		assert.Equal(t, 1, w.destroyed, "widget %d", w.ID)
	}
	it := o.EraseRange(o.Begin().Add(2), o.Begin().Add(4))
	assert.Equal(t, 2, o.IndexOfIter(it))
	assert.Equal(t, 1, all[3].destroyed)
	assert.Equal(t, 1, all[4].destroyed)

	o.Shrink(10)
	assert.Equal(t, 10, o.Len())
	o.Resize(12)
	assert.Nil(t, o.Back(), "grown slots are nil")
	o.Resize(8)
	assert.Equal(t, 8, o.Len())

	back := o.At(7)
	assert.Equal(t, 7, o.ReverseFind(back))
	assert.Equal(t, -1, o.ReverseFind(all[19]))
	assert.Equal(t, 3, o.IndexOf(&o.Data()[3]))
	assert.Same(t, front, o.CBegin().Get())
	assert.Equal(t, 8, o.CEnd().Sub(o.CBegin()))

	other := NewOwnerVector[Widget]()
	extra := &Widget{ID: -1}
	other.PushBack(extra)
	o.Swap(other)
	assert.Equal(t, 1, o.Len())
	assert.Equal(t, 8, other.Len())
	assert.Panics(t, func() { other.PushBack(back) }, "ownership moves with the slots")

	o.Destroy()
	other.Destroy()
	assert.Equal(t, 1, extra.destroyed)
	for _, w := range all {
		assert.Equal(t, 1, w.destroyed, "widget %d deleted exactly once", w.ID)
	}
}

func TestOwnerVectorRelease(t *testing.T) {
	o := NewOwnerVector[Widget]()
	a, b := &Widget{ID: 1}, &Widget{ID: 2}
	o.PushBack(a, b)

	got := o.Release(o.Begin().Next())
	assert.Same(t, b, got)
	assert.Equal(t, 1, o.Len())
	assert.False(t, o.Contains(b))

	// Ownership was handed back, so the pointer can be adopted again.
	o.PushBack(b)
	o.Destroy()
	assert.Equal(t, 1, a.destroyed)
	assert.Equal(t, 1, b.destroyed)
}

func TestOwnerVectorRejectsDoubleOwnership(t *testing.T) {
	o := NewOwnerVector[Widget]()
	w := &Widget{}
	o.PushBack(w)
	assert.Panics(t, func() { o.PushBack(w) })
	assert.Panics(t, func() { o.InsertAt(0, w) })
	assert.Equal(t, 1, o.Len())
}

func TestOwnerVectorNilSlots(t *testing.T) {
	o := NewOwnerVector[Widget]()
	o.PushBack(nil, nil, &Widget{})
	o.EraseAt(0)
	assert.Nil(t, o.Front())
	o.Clear()
	assert.True(t, o.Empty())
}

func TestOwnerVectorInsert(t *testing.T) {
	o := NewOwnerVector[Gadget]()
	o.PushBack(&Gadget{Name: "a"}, &Gadget{Name: "c"})
	it := o.Insert(o.Begin().Next(), &Gadget{Name: "b"})
	assert.Equal(t, "b", it.Get().Name)

	names := []string{}
	for _, g := range o.All() {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, "c", o.Back().Name)
	assert.Equal(t, 1, o.Find(o.At(1)))
	assert.Len(t, o.Data(), 3)
}

func TestOwnerVectorAssignClonesPointees(t *testing.T) {
	src := NewOwnerVector[Gadget]()
	src.PushBack(&Gadget{Name: "x"}, nil, &Gadget{Name: "y"})

	dst := NewOwnerVector[Gadget]()
	old := &Gadget{Name: "old"}
	dst.PushBack(old)
	dst.Assign(src)

	require.Equal(t, 3, dst.Len())
	assert.False(t, dst.Contains(old))
	assert.Nil(t, dst.At(1))
	for i, p := range src.Data() {
		if p == nil {
			continue
		}
		assert.NotSame(t, p, dst.At(i))
		assert.Equal(t, *p, *dst.At(i))
	}

	src.At(0).Name = "changed"
	assert.Equal(t, "x", dst.At(0).Name)
}

func TestOwnerVectorCloneUsesCloner(t *testing.T) {
	src := NewOwnerVector[clonedWidget]()
	src.PushBack(&clonedWidget{ID: 3})
	c := src.Clone()

	assert.True(t, c.At(0).cloned)
	assert.Equal(t, 3, c.At(0).ID)

	// Destroying the source leaves the clone's pointees alone.
	src.Destroy()
	assert.Equal(t, 0, c.At(0).destroyed)
}

type clonedWidget struct {
	ID        int
	cloned    bool
	destroyed int
}

func (w *clonedWidget) Clone() *clonedWidget {
	return &clonedWidget{ID: w.ID, cloned: true}
}

func (w *clonedWidget) Destroy() { w.destroyed++ }

func TestOwnerVectorMove(t *testing.T) {
	o := NewOwnerVector[Widget]()
	w := &Widget{}
	o.PushBack(w)

	m := o.Move()
	assert.True(t, o.Empty())
	assert.Equal(t, 1, m.Len())

	// The source no longer owns w, so it may adopt it without conflict.
	o.PushBack(w)
	o.Release(o.Begin())

	m.Destroy()
	assert.Equal(t, 1, w.destroyed)
}

func TestOwnerVectorMetrics(t *testing.T) {
	o := NewOwnerVector[Widget]()
	o.Reserve(4)
	o.PushBack(&Widget{})
	m := o.Metrics()
	assert.Equal(t, 1, m.Size)
	assert.Equal(t, 4, m.Capacity)
	assert.Equal(t, 4, o.Cap())
}
