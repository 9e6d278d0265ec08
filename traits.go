package containers

import (
	"reflect"
	"sync"
)

// Destroyer is implemented by element types that need explicit cleanup when
// a container destroys them (erase, clear, pop, shrink, Destroy).
// The method is looked up on *T.
type Destroyer interface {
	Destroy()
}

// Cloner is implemented by element types whose copies must not share state
// with the original. Containers call Clone wherever they copy-construct an
// element (Clone, Assign, fill and range constructors).
type Cloner[T any] interface {
	Clone() T
}

// Traits describes the capabilities of an element type. It is resolved once
// per type and selects between the bulk and element-wise algorithms.
type Traits struct {
	// PointerFree reports that T holds no Go pointers, so its storage can be
	// viewed as raw bytes and vacated slots never need clearing.
	PointerFree bool
	// HasDestroy reports that *T implements Destroyer.
	HasDestroy bool
	// HasClone reports that T or *T implements Cloner[T].
	HasClone bool
	// TriviallyCopyable allows copies by plain memory copy.
	TriviallyCopyable bool
	// TriviallyDestructible allows destruction to be skipped entirely.
	TriviallyDestructible bool
	// Size is the element size in bytes.
	Size uintptr
}

var traitsCache sync.Map // reflect.Type -> *Traits

var destroyerType = reflect.TypeFor[Destroyer]()

// TraitsOf returns the capability set of T.
func TraitsOf[T any]() Traits {
	return *traitsFor[T]()
}

func traitsFor[T any]() *Traits {
	t := reflect.TypeFor[T]()
	if tr, ok := traitsCache.Load(t); ok {
		return tr.(*Traits)
	}
	tr := &Traits{
		PointerFree: pointerFree(t),
		HasDestroy:  reflect.PointerTo(t).Implements(destroyerType),
		HasClone:    hasClone[T](),
		Size:        t.Size(),
	}
	tr.TriviallyCopyable = tr.PointerFree && !tr.HasDestroy && !tr.HasClone
	tr.TriviallyDestructible = tr.PointerFree && !tr.HasDestroy
	actual, _ := traitsCache.LoadOrStore(t, tr)
	return actual.(*Traits)
}

func hasClone[T any]() bool {
	var zero T
	if _, ok := any(zero).(Cloner[T]); ok {
		return true
	}
	_, ok := any(&zero).(Cloner[T])
	return ok
}

// pointerFree reports whether values of t contain no pointers the garbage
// collector has to trace.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// cloneValue copy-constructs x, using the Cloner hook when T provides one.
func cloneValue[T any](tr *Traits, x T) T {
	if !tr.HasClone {
		return x
	}
	if c, ok := any(x).(Cloner[T]); ok {
		return c.Clone()
	}
	if c, ok := any(&x).(Cloner[T]); ok {
		return c.Clone()
	}
	return x
}
