// Package container synthesizes the access and traversal surface of a container
// from three primitives: Begin, End and Len.
//
// Every type that implements Container gets emptiness checks, range-over-func traversal
// and bounds-checked element access through the functions of this package,
// with the same semantics regardless of the underlying cursor type.
package container

import (
	"iter"
	"slices"

	"go.llib.dev/cursorkit/pkg/cursor"
	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrOutOfRange errorkit.Error = "ErrOutOfRange"

// Container is the set of primitives a container implements.
//
// Len must be equal to the distance between Begin and End.
// This is not verified, it's a contract the implementation upholds.
type Container[I cursor.Iterator[I, R], R any] interface {
	Begin() I
	End() I
	Len() int
}

func Empty[C Container[I, R], I cursor.Iterator[I, R], R any](c C) bool {
	return c.Len() == 0
}

// All traverses the container from Begin to End.
func All[C Container[I, R], I cursor.Iterator[I, R], R any](c C) iter.Seq[R] {
	return cursor.Seq(c.Begin(), c.End())
}

// Backward traverses the container from its last element to its first.
// When the end cursor can't step backwards, the elements are buffered first.
func Backward[C Container[I, R], I cursor.Bidirectional[I, R], R any](c C) iter.Seq[R] {
	if !cursor.CanPrev(c.End()) {
		return buffered(All(c))
	}
	return cursor.Seq(cursor.Reversed(c.End()), cursor.Reversed(c.Begin()))
}

func buffered[R any](seq iter.Seq[R]) iter.Seq[R] {
	return func(yield func(R) bool) {
		vs := slices.Collect(seq)
		for i := len(vs) - 1; 0 <= i; i-- {
			if !yield(vs[i]) {
				return
			}
		}
	}
}

// At returns the element at index i.
// It's constant time for random access cursors, and linear otherwise.
func At[C Container[I, R], I cursor.Iterator[I, R], R any](c C, i int) (R, error) {
	it, err := seek(c, i)
	if err != nil {
		var zero R
		return zero, err
	}
	return it.Deref(), nil
}

// Ptr returns a pointer to the element at index i.
// For cursors that expose the address of their element, writes through the pointer
// reach the container's storage, otherwise the pointer refers to a copy.
func Ptr[C Container[I, R], I cursor.Iterator[I, R], R any](c C, i int) (*R, error) {
	it, err := seek(c, i)
	if err != nil {
		return nil, err
	}
	return cursor.Arrow(it), nil
}

func Front[C Container[I, R], I cursor.Iterator[I, R], R any](c C) (R, error) {
	return At(c, 0)
}

func Back[C Container[I, R], I cursor.Iterator[I, R], R any](c C) (R, error) {
	return At(c, c.Len()-1)
}

func Collect[C Container[I, R], I cursor.Iterator[I, R], R any](c C) []R {
	return slices.Collect(All(c))
}

func seek[C Container[I, R], I cursor.Iterator[I, R], R any](c C, i int) (I, error) {
	if n := c.Len(); i < 0 || n <= i {
		var zero I
		return zero, ErrOutOfRange.F("index %d is out of range [0, %d)", i, n)
	}
	it := c.Begin()
	cursor.AdvanceN(&it, i)
	return it, nil
}
