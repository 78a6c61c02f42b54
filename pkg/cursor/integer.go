package cursor

import (
	"cmp"

	"go.llib.dev/cursorkit/internal/constraints"
)

// Integer is a random access cursor whose element is the integer it holds.
// The end of an integer sequence is marked by another Integer holding the bound.
type Integer[T constraints.Integer] = Tagged[T, untagged]

type untagged struct{}

// Tagged is an Integer cursor that carries a phantom Tag type,
// so integer cursors of different meaning can't be mixed up.
type Tagged[T constraints.Integer, Tag any] struct {
	value T
}

// Int returns an Integer cursor positioned at v.
func Int[T constraints.Integer](v T) Integer[T] {
	return Integer[T]{value: v}
}

// TaggedInt returns a Tagged cursor positioned at v.
func TaggedInt[Tag any, T constraints.Integer](v T) Tagged[T, Tag] {
	return Tagged[T, Tag]{value: v}
}

func (i Tagged[T, Tag]) Deref() T { return i.value }

func (i Tagged[T, Tag]) Equal(o Tagged[T, Tag]) bool { return i.value == o.value }

func (i Tagged[T, Tag]) Next() Tagged[T, Tag] { return Tagged[T, Tag]{value: i.value + 1} }

func (i Tagged[T, Tag]) Prev() Tagged[T, Tag] { return Tagged[T, Tag]{value: i.value - 1} }

func (i Tagged[T, Tag]) Offset(n int) Tagged[T, Tag] {
	return Tagged[T, Tag]{value: i.value + T(n)}
}

// Diff is computed in T, so unsigned values beyond math.MaxInt are measured correctly
// as long as the distance itself fits in an int.
func (i Tagged[T, Tag]) Diff(o Tagged[T, Tag]) int {
	if o.value <= i.value {
		return int(i.value - o.value)
	}
	return -int(o.value - i.value)
}

// Index returns the integer n steps away from the cursor.
func (i Tagged[T, Tag]) Index(n int) T {
	return i.Offset(n).value
}

func (i Tagged[T, Tag]) Compare(o Tagged[T, Tag]) int {
	return cmp.Compare(i.value, o.value)
}
