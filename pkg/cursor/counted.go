package cursor

// Counted bounds an inner cursor to a number of remaining steps.
//
// A Counted cursor with no remaining steps compares equal to any other exhausted Counted cursor,
// regardless of where their inner cursors stand.
// This makes it possible to take a finite range from cursors that have no natural end,
// such as an endless Integer sequence or an unterminated buffer.
//
// Only cursors made with Count know the position of their inner cursor.
// The detached end made by CountedEnd can't step backwards.
type Counted[I Iterator[I, R], R any] struct {
	inner     I
	remaining int
	anchored  bool
}

// Count bounds the inner cursor to n steps.
func Count[I Iterator[I, R], R any](inner I, n int) Counted[I, R] {
	if n < 0 {
		n = 0
	}
	return Counted[I, R]{inner: inner, remaining: n, anchored: true}
}

// CountedEnd returns a detached, exhausted Counted cursor, usable as the end of any Counted range.
func CountedEnd[I Iterator[I, R], R any]() Counted[I, R] {
	return Counted[I, R]{}
}

// Base returns the inner cursor.
func (i Counted[I, R]) Base() I { return i.inner }

// Remaining returns the number of steps left before the cursor is exhausted.
func (i Counted[I, R]) Remaining() int { return i.remaining }

func (i Counted[I, R]) Deref() R {
	if err := i.Check(); err != nil {
		panic(err)
	}
	return i.inner.Deref()
}

func (i Counted[I, R]) Equal(o Counted[I, R]) bool {
	if i.remaining == 0 || o.remaining == 0 {
		return i.remaining == o.remaining
	}
	return i.remaining == o.remaining && i.inner.Equal(o.inner)
}

// Next advances the inner cursor and consumes one step.
// Advancing an exhausted cursor panics with ErrInvalidIterator.
func (i Counted[I, R]) Next() Counted[I, R] {
	if i.remaining <= 0 {
		panic(ErrInvalidIterator.F("counted cursor is exhausted"))
	}
	return Counted[I, R]{inner: i.inner.Next(), remaining: i.remaining - 1, anchored: i.anchored}
}

// CanPrev reports whether Prev is permitted.
func (i Counted[I, R]) CanPrev() bool {
	return i.anchored && CanPrev(i.inner)
}

// Prev steps back the inner cursor and gives back one step.
// It panics with ErrInvalidIterator when CanPrev is false.
func (i Counted[I, R]) Prev() Counted[I, R] {
	if !i.anchored {
		panic(ErrInvalidIterator.F("detached counted cursor can't move backwards"))
	}
	bi, ok := any(i.inner).(interface{ Prev() I })
	if !ok || !CanPrev(i.inner) {
		panic(ErrInvalidIterator.F("%T can't move backwards", i.inner))
	}
	return Counted[I, R]{inner: bi.Prev(), remaining: i.remaining + 1, anchored: true}
}

// Offset moves the cursor by n steps.
// Moving past the bound panics with ErrInvalidIterator.
func (i Counted[I, R]) Offset(n int) Counted[I, R] {
	if i.remaining < n {
		panic(ErrInvalidIterator.F("counted cursor has %d steps left, %d requested", i.remaining, n))
	}
	if n < 0 && !i.anchored {
		panic(ErrInvalidIterator.F("detached counted cursor can't move backwards"))
	}
	if ra, ok := any(i.inner).(RandomAccess[I]); ok {
		return Counted[I, R]{inner: ra.Offset(n), remaining: i.remaining - n, anchored: i.anchored}
	}
	for ; n < 0; n++ {
		i = i.Prev()
	}
	for ; 0 < n; n-- {
		i = i.Next()
	}
	return i
}

// Diff is answered from the step counters, without touching the inner cursors.
func (i Counted[I, R]) Diff(o Counted[I, R]) int {
	return o.remaining - i.remaining
}

func (i Counted[I, R]) Check() error {
	if i.remaining <= 0 {
		return ErrInvalidIterator.F("counted cursor is exhausted")
	}
	return Check(i.inner)
}
