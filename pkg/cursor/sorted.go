package cursor

import (
	"slices"

	"go.llib.dev/cursorkit/internal/constraints"
)

// Sorted enumerates every strictly ordered tuple (x[0] < x[1] < ... < x[n-1])
// where each element is within [0, limit).
//
// The first element varies fastest. For n=2 and limit=4 the order is:
//
//	(0,1) (0,2) (1,2) (0,3) (1,3) (2,3)
//
// The enumeration ends when the last element would reach the limit.
// Deref returns a fresh copy of the tuple.
type Sorted[T constraints.Integer] struct {
	tuple []T
	limit T
	end   bool
}

// SortedBegin returns a cursor to the first tuple, (0, 1, ..., n-1).
// When no tuple of length n fits under the limit, the returned cursor is already at the end.
func SortedBegin[T constraints.Integer](n int, limit T) Sorted[T] {
	if n <= 0 || limit < T(n) {
		return SortedEnd[T](n, limit)
	}
	tuple := make([]T, n)
	for i := range tuple {
		tuple[i] = T(i)
	}
	return Sorted[T]{tuple: tuple, limit: limit}
}

// SortedEnd returns the end cursor of the enumeration.
func SortedEnd[T constraints.Integer](n int, limit T) Sorted[T] {
	return Sorted[T]{limit: limit, end: true}
}

func (i Sorted[T]) Deref() []T {
	if err := i.Check(); err != nil {
		panic(err)
	}
	return slices.Clone(i.tuple)
}

func (i Sorted[T]) Equal(o Sorted[T]) bool {
	if i.end || o.end {
		return i.end == o.end
	}
	return slices.Equal(i.tuple, o.tuple)
}

func (i Sorted[T]) Next() Sorted[T] {
	if err := i.Check(); err != nil {
		panic(err)
	}
	tuple := slices.Clone(i.tuple)
	last := len(tuple) - 1
	for n := 0; n < last; n++ {
		tuple[n]++
		if tuple[n] != tuple[n+1] {
			return Sorted[T]{tuple: tuple, limit: i.limit}
		}
		if n == 0 {
			tuple[n] = 0
		} else {
			tuple[n] = tuple[n-1] + 1
		}
	}
	tuple[last]++
	if tuple[last] == i.limit {
		return SortedEnd[T](len(tuple), i.limit)
	}
	return Sorted[T]{tuple: tuple, limit: i.limit}
}

func (i Sorted[T]) Check() error {
	if i.end {
		return ErrInvalidIterator.F("sorted tuple enumeration is over")
	}
	return nil
}
