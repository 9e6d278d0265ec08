package containers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorFind(t *testing.T) {
	v := NewVectorFrom("a", "b", "a", "c")

	assert.True(t, Contains(v, "c"))
	assert.False(t, Contains(v, "z"))
	assert.Equal(t, 0, Find(v, "a"))
	assert.Equal(t, -1, Find(v, "z"))
	assert.Equal(t, 2, ReverseFind(v, "a"))
	assert.Equal(t, 0, ReverseFindBounded(v, "a", 2))
	assert.Equal(t, 2, ReverseFindBounded(v, "a", 100))
	assert.Equal(t, -1, ReverseFindBounded(v, "a", 0))
}

func TestVectorFindErase(t *testing.T) {
	v := NewVectorFrom(1, 2, 1)
	assert.True(t, FindErase(v, 1))
	assert.Equal(t, []int{2, 1}, ints(v))
	assert.False(t, FindErase(v, 5))
}

func TestVectorFuncSearch(t *testing.T) {
	v := NewVectorFrom("apple", "banana", "avocado")
	isA := func(s string) bool { return strings.HasPrefix(s, "a") }

	assert.Equal(t, 0, v.IndexFunc(isA))
	assert.Equal(t, 2, v.LastIndexFunc(isA))
	assert.True(t, v.ContainsFunc(func(s string) bool { return s == "banana" }))
	assert.Equal(t, -1, v.LastIndexFunc(func(string) bool { return false }))
}

func TestVectorEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want bool
	}{
		{"both empty", nil, nil, true},
		{"equal", []int{1, 2}, []int{1, 2}, true},
		{"different sizes", []int{1, 2}, []int{1, 2, 3}, false},
		{"same size different elements", []int{1, 2}, []int{1, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := NewVectorFrom(tt.a...), NewVectorFrom(tt.b...)
			assert.Equal(t, tt.want, Equal(a, b))
			assert.Equal(t, tt.want, Equal(b, a))
		})
	}

	// Capacity does not take part in equality.
	a := NewVectorFrom(1)
	a.Reserve(50)
	assert.True(t, Equal(a, NewVectorFrom(1)))

	words := NewVectorFrom("a", "bb")
	lens := NewVectorFrom(1, 2)
	assert.True(t, EqualFunc(words, lens, func(s string, n int) bool { return len(s) == n }))
}

func TestVectorIndexOf(t *testing.T) {
	v := NewVectorFrom(5, 6, 7)
	assert.Equal(t, 2, v.IndexOf(v.Ptr(2)))
	assert.Equal(t, 0, v.IndexOf(&v.Data()[0]))

	other := 6
	assert.Equal(t, -1, v.IndexOf(&other))
	assert.Equal(t, -1, v.IndexOf(nil))

	// Spare capacity is outside the live range.
	v.Reserve(10)
	p := v.Ptr(2)
	v.PopBack()
	assert.Equal(t, -1, v.IndexOf(p))
}
