package cursor

// Reverse walks a bidirectional cursor backwards.
//
// A Reverse cursor wraps the position right after the element it yields,
// so the reverse of a [first, last) range is [Reversed(last), Reversed(first)).
type Reverse[I Bidirectional[I, R], R any] struct {
	base I
}

// Reversed returns the reverse cursor of base.
func Reversed[I Bidirectional[I, R], R any](base I) Reverse[I, R] {
	return Reverse[I, R]{base: base}
}

// Base returns the wrapped cursor, which stands one step after the yielded element.
func (i Reverse[I, R]) Base() I { return i.base }

func (i Reverse[I, R]) Deref() R { return i.base.Prev().Deref() }

func (i Reverse[I, R]) Equal(o Reverse[I, R]) bool { return i.base.Equal(o.base) }

func (i Reverse[I, R]) Next() Reverse[I, R] { return Reverse[I, R]{base: i.base.Prev()} }

func (i Reverse[I, R]) Prev() Reverse[I, R] { return Reverse[I, R]{base: i.base.Next()} }

func (i Reverse[I, R]) Offset(n int) Reverse[I, R] {
	if ra, ok := any(i.base).(RandomAccess[I]); ok {
		return Reverse[I, R]{base: ra.Offset(-n)}
	}
	for ; 0 < n; n-- {
		i = i.Next()
	}
	for ; n < 0; n++ {
		i = i.Prev()
	}
	return i
}

func (i Reverse[I, R]) Diff(o Reverse[I, R]) int {
	return Distance(i.base, o.base)
}

func (i Reverse[I, R]) Check() error { return Check(i.base.Prev()) }
