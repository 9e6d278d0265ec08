package containers

// tracked counts how many times containers destroy it.
type tracked struct {
	id        int
	name      string
	destroyed *int
}

func (t *tracked) Destroy() {
	if t.destroyed != nil {
		*t.destroyed++
	}
}

// deep owns a slice that must not be shared between copies.
type deep struct {
	vals []int
}

func (d deep) Clone() deep {
	return deep{vals: append([]int(nil), d.vals...)}
}

// Widget is owned through pointers by OwnerVector tests.
type Widget struct {
	ID        int
	destroyed int
}

func (w *Widget) Destroy() {
	w.destroyed++
}

// Gadget has no hooks; OwnerVector clones it by value.
type Gadget struct {
	Name string
}

func ints(v *Vector[int]) []int {
	out := make([]int, 0, v.Len())
	for x := range v.Values() {
		out = append(out, x)
	}
	return out
}

func expectPanic(t interface {
	Helper()
	Errorf(string, ...any)
}, name string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
