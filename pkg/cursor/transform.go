package cursor

// Transform applies a function on the elements of an inner cursor.
//
// The function is applied lazily, on every Deref, and its result is not cached.
// Two Transform cursors are equal when their inner cursors are.
type Transform[I Iterator[I, R], R, V any] struct {
	inner I
	fn    func(R) V
}

// Map returns a Transform cursor that applies fn on the elements of inner.
func Map[I Iterator[I, R], R, V any](inner I, fn func(R) V) Transform[I, R, V] {
	return Transform[I, R, V]{inner: inner, fn: fn}
}

// Base returns the inner cursor.
func (i Transform[I, R, V]) Base() I { return i.inner }

// Func returns the applied function.
func (i Transform[I, R, V]) Func() func(R) V { return i.fn }

func (i Transform[I, R, V]) Deref() V { return i.fn(i.inner.Deref()) }

func (i Transform[I, R, V]) Equal(o Transform[I, R, V]) bool { return i.inner.Equal(o.inner) }

func (i Transform[I, R, V]) Next() Transform[I, R, V] {
	return Transform[I, R, V]{inner: i.inner.Next(), fn: i.fn}
}

// CanPrev reports whether the inner cursor can move backwards.
func (i Transform[I, R, V]) CanPrev() bool { return CanPrev(i.inner) }

// Prev steps back the inner cursor.
// It panics with ErrInvalidIterator when CanPrev is false.
func (i Transform[I, R, V]) Prev() Transform[I, R, V] {
	bi, ok := any(i.inner).(interface{ Prev() I })
	if !ok || !CanPrev(i.inner) {
		panic(ErrInvalidIterator.F("%T can't move backwards", i.inner))
	}
	return Transform[I, R, V]{inner: bi.Prev(), fn: i.fn}
}

// Offset moves the inner cursor by n steps,
// in constant time when the inner cursor supports random access.
func (i Transform[I, R, V]) Offset(n int) Transform[I, R, V] {
	if ra, ok := any(i.inner).(RandomAccess[I]); ok {
		return Transform[I, R, V]{inner: ra.Offset(n), fn: i.fn}
	}
	for ; n < 0; n++ {
		i = i.Prev()
	}
	inner := i.inner
	AdvanceN(&inner, n)
	return Transform[I, R, V]{inner: inner, fn: i.fn}
}

// Diff measures the distance of the inner cursors.
// It is constant time only when the inner cursor supports random access.
func (i Transform[I, R, V]) Diff(o Transform[I, R, V]) int {
	return Distance(o.inner, i.inner)
}

func (i Transform[I, R, V]) Check() error { return Check(i.inner) }
