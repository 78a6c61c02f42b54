package container

import (
	"iter"
	"slices"

	"go.llib.dev/cursorkit/internal/constraints"
	"go.llib.dev/cursorkit/pkg/cursor"
)

// Range is a view over the half-open span [first, last) of two cursors.
//
// A Range owns nothing but the two cursors,
// and it is valid only as long as the sequence behind them is.
//
// Len is constant time when the cursors support random access (Integer, Slice, Counted),
// and linear otherwise. Callers who need the size of a forward only range repeatedly
// should keep it around.
type Range[I cursor.Iterator[I, R], R any] struct {
	first, last I
}

// Make returns the Range of [first, last).
func Make[I cursor.Iterator[I, R], R any](first, last I) Range[I, R] {
	return Range[I, R]{first: first, last: last}
}

// Integers returns the range of [0, end).
func Integers[T constraints.Integer](end T) Range[cursor.Integer[T], T] {
	return Make(cursor.Int[T](0), cursor.Int(end))
}

// IntegersBetween returns the range of [begin, end).
func IntegersBetween[T constraints.Integer](begin, end T) Range[cursor.Integer[T], T] {
	return Make(cursor.Int(begin), cursor.Int(end))
}

// Of returns a Range over the elements of s.
func Of[T any](s []T) Range[cursor.Slice[T], T] {
	return Make(cursor.SliceBegin(s), cursor.SliceEnd(s))
}

// NullTerminated returns a Range over s that ends at its first zero value.
func NullTerminated[T comparable](s []T) Range[cursor.NullTerminated[T], T] {
	return Make(cursor.NullTerminatedBegin(s), cursor.NullTerminatedEnd(s))
}

// Take returns a Range of the first n elements starting at it.
// The sequence behind it must have at least n elements left.
//
// When it supports random access, the end of the Range knows its inner position,
// and the Range can be traversed backwards.
// Otherwise the end is detached, and only Range.Backward works, by buffering.
func Take[I cursor.Iterator[I, R], R any](it I, n int) Range[cursor.Counted[I, R], R] {
	first := cursor.Count(it, n)
	if _, ok := any(it).(cursor.RandomAccess[I]); ok {
		end := it
		cursor.AdvanceN(&end, first.Remaining())
		return Make(first, cursor.Count(end, 0))
	}
	return Make(first, cursor.CountedEnd[I, R]())
}

// Transform returns a Range that lazily applies fn on the elements of r.
func Transform[I cursor.Iterator[I, R], R, V any](r Range[I, R], fn func(R) V) Range[cursor.Transform[I, R, V], V] {
	return Make(cursor.Map(r.first, fn), cursor.Map(r.last, fn))
}

// Reverse returns a Range over the elements of r in reverse order.
// Dereferencing it panics with cursor.ErrInvalidIterator when the end of r can't step backwards.
func Reverse[I cursor.Bidirectional[I, R], R any](r Range[I, R]) Range[cursor.Reverse[I, R], R] {
	return Make(cursor.Reversed(r.last), cursor.Reversed(r.first))
}

// SortedTuples returns the Range of every strictly ordered n-tuple with elements in [0, limit).
func SortedTuples[T constraints.Integer](n int, limit T) Range[cursor.Sorted[T], []T] {
	return Make(cursor.SortedBegin(n, limit), cursor.SortedEnd(n, limit))
}

func (r Range[I, R]) Begin() I { return r.first }

func (r Range[I, R]) End() I { return r.last }

func (r Range[I, R]) Len() int { return cursor.Distance(r.first, r.last) }

// Empty reports whether the range has no elements.
// Unlike Len, it is always constant time.
func (r Range[I, R]) Empty() bool { return r.first.Equal(r.last) }

func (r Range[I, R]) All() iter.Seq[R] { return cursor.Seq(r.first, r.last) }

// Backward traverses the range in reverse.
// Ranges whose end can't step backwards are buffered first.
func (r Range[I, R]) Backward() iter.Seq[R] {
	if !cursor.CanPrev(r.last) {
		return buffered(r.All())
	}
	return func(yield func(R) bool) {
		for it := r.last; !it.Equal(r.first); {
			it = any(it).(interface{ Prev() I }).Prev()
			if !yield(it.Deref()) {
				return
			}
		}
	}
}

func (r Range[I, R]) At(i int) (R, error) { return At(r, i) }

func (r Range[I, R]) Ptr(i int) (*R, error) { return Ptr(r, i) }

func (r Range[I, R]) Front() (R, error) { return Front(r) }

func (r Range[I, R]) Back() (R, error) { return Back(r) }

func (r Range[I, R]) Collect() []R { return slices.Collect(r.All()) }
