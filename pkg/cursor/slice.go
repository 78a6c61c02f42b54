package cursor

// Slice is a random access cursor over the elements of a slice.
// It is the cursor counterpart of a raw element pointer:
// the slice is referenced, never copied.
// Only cursors of the same slice may be compared.
type Slice[T any] struct {
	s   []T
	pos int
}

// SliceBegin returns a cursor to the first element of s.
func SliceBegin[T any](s []T) Slice[T] { return Slice[T]{s: s, pos: 0} }

// SliceEnd returns the past-the-end cursor of s.
func SliceEnd[T any](s []T) Slice[T] { return Slice[T]{s: s, pos: len(s)} }

// SliceAt returns a cursor to the element at index i of s.
func SliceAt[T any](s []T, i int) Slice[T] { return Slice[T]{s: s, pos: i} }

func (i Slice[T]) Deref() T {
	if err := i.Check(); err != nil {
		panic(err)
	}
	return i.s[i.pos]
}

func (i Slice[T]) Equal(o Slice[T]) bool { return i.pos == o.pos }

func (i Slice[T]) Next() Slice[T] { return Slice[T]{s: i.s, pos: i.pos + 1} }

func (i Slice[T]) Prev() Slice[T] { return Slice[T]{s: i.s, pos: i.pos - 1} }

func (i Slice[T]) Offset(n int) Slice[T] { return Slice[T]{s: i.s, pos: i.pos + n} }

func (i Slice[T]) Diff(o Slice[T]) int { return i.pos - o.pos }

// Pointer returns the address of the current element.
// Writes through it reach the underlying slice.
func (i Slice[T]) Pointer() *T {
	if err := i.Check(); err != nil {
		panic(err)
	}
	return &i.s[i.pos]
}

// Pos returns the index of the cursor in the slice.
func (i Slice[T]) Pos() int { return i.pos }

func (i Slice[T]) Check() error {
	if i.pos < 0 || len(i.s) <= i.pos {
		return ErrInvalidIterator.F("slice cursor at %d is outside of [0, %d)", i.pos, len(i.s))
	}
	return nil
}
