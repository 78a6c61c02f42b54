package cursor

// NullTerminated is a forward cursor over a sequence that ends at its first zero value,
// like a C string.
//
// Constructing it costs O(1): the position of the terminator is not searched up front.
// The past-the-end cursor is a sentinel, and any cursor standing on a terminator,
// or outside of the slice, compares equal to it.
// Cursors on elements compare equal only when they share the same backing array.
type NullTerminated[T comparable] struct {
	s   []T
	pos int
	end bool
}

// NullTerminatedBegin returns a cursor to the first element of s.
func NullTerminatedBegin[T comparable](s []T) NullTerminated[T] {
	return NullTerminated[T]{s: s}
}

// NullTerminatedEnd returns the sentinel cursor for s.
func NullTerminatedEnd[T comparable](s []T) NullTerminated[T] {
	return NullTerminated[T]{s: s, end: true}
}

func (i NullTerminated[T]) Deref() T {
	if err := i.Check(); err != nil {
		panic(err)
	}
	return i.s[i.pos]
}

func (i NullTerminated[T]) Equal(o NullTerminated[T]) bool {
	ie, oe := i.atEnd(), o.atEnd()
	if ie || oe {
		return ie && oe
	}
	return i.pos == o.pos && &i.s[0] == &o.s[0]
}

// Next moves to the following element.
// Advancing from the terminator panics with ErrInvalidIterator,
// as elements beyond it are not part of the sequence.
func (i NullTerminated[T]) Next() NullTerminated[T] {
	if err := i.Check(); err != nil {
		panic(err)
	}
	return NullTerminated[T]{s: i.s, pos: i.pos + 1}
}

func (i NullTerminated[T]) Check() error {
	if i.atEnd() {
		return ErrInvalidIterator.F("null terminated cursor is past the end")
	}
	return nil
}

func (i NullTerminated[T]) atEnd() bool {
	if i.end || i.pos < 0 || len(i.s) <= i.pos {
		return true
	}
	var zero T
	return i.s[i.pos] == zero
}
