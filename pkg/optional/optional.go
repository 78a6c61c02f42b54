// Package optional implements a value-or-absent wrapper.
//
// A Value is either engaged, holding a T, or empty.
// Reading an empty Value is a detectable error (ErrEmptyAccess),
// never a silent zero value.
package optional

import (
	"cmp"
	"fmt"

	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrEmptyAccess errorkit.Error = "ErrEmptyAccess"

// Value holds either a T or nothing.
// The zero Value is empty.
type Value[T any] struct {
	value   T
	engaged bool
}

// Of returns an engaged Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{value: v, engaged: true}
}

// Empty returns a disengaged Value.
func Empty[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr returns an engaged Value with the pointed value, or an empty one for a nil pointer.
func FromPtr[T any](ptr *T) Value[T] {
	if ptr == nil {
		return Empty[T]()
	}
	return Of(*ptr)
}

func (o Value[T]) HasValue() bool {
	return o.engaged
}

// Get returns the held value.
// When the Value is empty, it returns ErrEmptyAccess.
func (o Value[T]) Get() (T, error) {
	if !o.engaged {
		var zero T
		return zero, ErrEmptyAccess.F("%T has no value", o)
	}
	return o.value, nil
}

// MustGet is like Get, but panics with ErrEmptyAccess when the Value is empty.
func (o Value[T]) MustGet() T {
	v, err := o.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// ValueOr returns the held value or the given default.
func (o Value[T]) ValueOr(d T) T {
	if !o.engaged {
		return d
	}
	return o.value
}

// Set engages the Value with v, replacing any held value.
func (o *Value[T]) Set(v T) {
	o.value = v
	o.engaged = true
}

// Reset disengages the Value and drops the held value.
func (o *Value[T]) Reset() {
	var zero T
	o.value = zero
	o.engaged = false
}

// Ptr returns a pointer to a copy of the held value, or nil when the Value is empty.
func (o Value[T]) Ptr() *T {
	if !o.engaged {
		return nil
	}
	v := o.value
	return &v
}

func (o Value[T]) String() string {
	if !o.engaged {
		return "<empty>"
	}
	return fmt.Sprint(o.value)
}

// Compare orders two Values.
// An empty Value is less than any engaged one,
// and two engaged Values compare by their held values.
func Compare[T cmp.Ordered](a, b Value[T]) int {
	switch {
	case !a.engaged && !b.engaged:
		return 0
	case !a.engaged:
		return -1
	case !b.engaged:
		return 1
	default:
		return cmp.Compare(a.value, b.value)
	}
}

// Equal reports whether both Values are empty, or both hold equal values.
func Equal[T comparable](a, b Value[T]) bool {
	if a.engaged != b.engaged {
		return false
	}
	return !a.engaged || a.value == b.value
}

// Map applies fn on the held value.
// An empty Value maps to an empty Value without calling fn.
func Map[T, V any](o Value[T], fn func(T) V) Value[V] {
	if !o.engaged {
		return Empty[V]()
	}
	return Of(fn(o.value))
}

// Lookup is the fallible map access expressed as a Value.
func Lookup[K comparable, V any](m map[K]V, key K) Value[V] {
	v, ok := m[key]
	if !ok {
		return Empty[V]()
	}
	return Of(v)
}
