package containers

import (
	"bytes"
	"math"
	"testing"
	"unsafe"
)

func TestNewDataPtr(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected int
	}{
		{"zero", 0, 0},
		{"negative", -1, 0},
		{"small", 16, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewDataPtr[int64](tt.n)
			if p.Len() != tt.expected {
				t.Errorf("NewDataPtr(%d) len = %d, want %d", tt.n, p.Len(), tt.expected)
			}
			if p.Empty() != (tt.expected == 0) {
				t.Errorf("NewDataPtr(%d) Empty = %v", tt.n, p.Empty())
			}
		})
	}
}

func TestDataPtrTooLarge(t *testing.T) {
	expectPanic(t, "NewDataPtr(MaxSize+1)", func() {
		NewDataPtr[int64](MaxSize[int64]() + 1)
	})
}

func TestMaxSize(t *testing.T) {
	if got := MaxSize[struct{}](); got != math.MaxInt {
		t.Errorf("MaxSize[struct{}] = %d, want %d", got, math.MaxInt)
	}
	if got, want := MaxSize[int64](), math.MaxInt/8; got != want {
		t.Errorf("MaxSize[int64] = %d, want %d", got, want)
	}
}

func TestDataPtrOwnership(t *testing.T) {
	p := NewDataPtr[int](4)
	p.Slots()[0] = 7

	q := p.Take()
	if !p.Empty() {
		t.Error("Take should leave the source empty")
	}
	if q.Len() != 4 || q.Slots()[0] != 7 {
		t.Errorf("Take moved %v, want 4 slots starting with 7", q.Slots())
	}

	var r DataPtr[int]
	r.Reset(&q)
	if !q.Empty() || r.Len() != 4 {
		t.Errorf("Reset: source len %d, dest len %d", q.Len(), r.Len())
	}

	s := NewDataPtr[int](2)
	r.Swap(&s)
	if r.Len() != 2 || s.Len() != 4 {
		t.Errorf("Swap: lens %d/%d, want 2/4", r.Len(), s.Len())
	}

	s.Release()
	if !s.Empty() || s.Slots() != nil {
		t.Error("Release should drop the allocation")
	}
}

func TestDataPtrBytes(t *testing.T) {
	p := NewDataPtr[uint32](3)
	copy(p.Slots(), []uint32{1, 2, 3})

	want := []uint32{1, 2, 3}
	wantBytes := unsafe.Slice((*byte)(unsafe.Pointer(&want[0])), 12)
	if got := p.Bytes(3); !bytes.Equal(got, wantBytes) {
		t.Errorf("Bytes(3) = %v, want %v", got, wantBytes)
	}
	if got := p.Bytes(0); got != nil {
		t.Errorf("Bytes(0) = %v, want nil", got)
	}
	expectPanic(t, "Bytes past allocation", func() { p.Bytes(4) })

	s := NewDataPtr[string](1)
	expectPanic(t, "Bytes on pointer type", func() { s.Bytes(1) })
}

func TestDestroySlots(t *testing.T) {
	count := 0
	s := []tracked{{id: 1, destroyed: &count}, {id: 2, destroyed: &count}}
	destroySlots(traitsFor[tracked](), s)
	if count != 2 {
		t.Errorf("destroyed %d elements, want 2", count)
	}
	if s[0].destroyed != nil || s[1].name != "" {
		t.Error("destroyed slots should be cleared")
	}

	// Pointer-free slots are left untouched.
	n := []int{1, 2}
	destroySlots(traitsFor[int](), n)
	if n[0] != 1 || n[1] != 2 {
		t.Errorf("trivially destructible slots changed: %v", n)
	}
}
