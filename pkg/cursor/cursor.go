// Package cursor implements position-based iterators.
//
// # Summary
//
// An iterator adaptor only needs to declare three primitives:
// Deref to read the current element,
// Equal to tell whether two cursors stand on the same logical position,
// and Next to produce the cursor moved one step forward.
// Everything else, such as inequality, post-increment, member access,
// distance or range traversal, is synthesized from these primitives,
// so every adaptor gets the same, consistent behaviour.
//
// Cursors are plain values.
// Copying a cursor and advancing the copy never affects the original,
// which makes every adaptor lazy and restartable.
//
// Optional capabilities, such as random access or backward movement,
// are detected on the concrete cursor type and used when present.
package cursor

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
)

// ErrInvalidIterator is raised when a cursor is dereferenced or advanced past its boundary.
const ErrInvalidIterator errorkit.Error = "ErrInvalidIterator"

// Iterator is the set of primitives an adaptor implements.
//
// I is the adaptor type itself, and R is the type its Deref yields.
type Iterator[I, R any] interface {
	// Deref returns the element at the current position.
	// Dereferencing a cursor past its boundary may panic with ErrInvalidIterator.
	Deref() R
	// Equal reports whether both cursors stand on the same logical position.
	Equal(I) bool
	// Next returns the cursor moved one logical step forward.
	// The receiver itself is left untouched.
	Next() I
}

// RandomAccess is implemented by cursors that can jump in constant time.
type RandomAccess[I any] interface {
	// Offset returns the cursor moved by n steps. n may be negative.
	Offset(n int) I
	// Diff returns the number of steps from the argument to the receiver.
	Diff(I) int
}

// Bidirectional is implemented by cursors that can step backwards.
type Bidirectional[I, R any] interface {
	Iterator[I, R]
	Prev() I
}

// Reversible is implemented by wrappers that declare Prev,
// but can only step backwards when the cursor they wrap can.
type Reversible interface {
	CanPrev() bool
}

// Checker is implemented by cursors that have a boundary.
// Check returns ErrInvalidIterator when the cursor must not be dereferenced.
type Checker interface {
	Check() error
}

// NotEqual is the negation of the adaptor's Equal.
func NotEqual[I Iterator[I, R], R any](a, b I) bool {
	return !a.Equal(b)
}

// Advance moves the cursor forward in place and returns it.
func Advance[I Iterator[I, R], R any](it *I) I {
	*it = (*it).Next()
	return *it
}

// PostAdvance moves the cursor forward in place, and returns its state prior to the move.
func PostAdvance[I Iterator[I, R], R any](it *I) I {
	prev := *it
	*it = prev.Next()
	return prev
}

// Arrow gives pointer-like access to the current element.
//
// When the cursor exposes the element's address (Pointer() *R),
// that address is returned, and writes through it reach the underlying storage.
// Otherwise, Arrow returns the address of a dereferenced copy.
func Arrow[I Iterator[I, R], R any](it I) *R {
	if p, ok := any(it).(interface{ Pointer() *R }); ok {
		return p.Pointer()
	}
	v := it.Deref()
	return &v
}

// CanPrev reports whether the cursor can step backwards.
// Wrappers answer through Reversible, other cursors by declaring Prev.
func CanPrev[I Iterator[I, R], R any](it I) bool {
	if r, ok := any(it).(Reversible); ok {
		return r.CanPrev()
	}
	_, ok := any(it).(interface{ Prev() I })
	return ok
}

// AdvanceN moves the cursor n steps forward in place.
// Random access cursors jump in constant time, others walk step by step.
func AdvanceN[I Iterator[I, R], R any](it *I, n int) I {
	if ra, ok := any(*it).(RandomAccess[I]); ok {
		*it = ra.Offset(n)
		return *it
	}
	for ; 0 < n; n-- {
		*it = (*it).Next()
	}
	return *it
}

// Distance returns the number of steps needed to reach last from first.
// Random access cursors answer in constant time, others are walked.
func Distance[I Iterator[I, R], R any](first, last I) int {
	if ra, ok := any(last).(RandomAccess[I]); ok {
		return ra.Diff(first)
	}
	var n int
	for it := first; !it.Equal(last); it = it.Next() {
		n++
	}
	return n
}

// Seq traverses the half-open range [first, last).
// The returned sequence can be iterated multiple times.
func Seq[I Iterator[I, R], R any](first, last I) iter.Seq[R] {
	return func(yield func(R) bool) {
		for it := first; !it.Equal(last); it = it.Next() {
			if !yield(it.Deref()) {
				return
			}
		}
	}
}

// Check returns ErrInvalidIterator when the cursor must not be dereferenced.
// Cursors without a boundary are always valid.
func Check[I Iterator[I, R], R any](it I) error {
	if c, ok := any(it).(Checker); ok {
		return c.Check()
	}
	return nil
}

// TryDeref is the non-panicking form of Deref.
func TryDeref[I Iterator[I, R], R any](it I) (R, error) {
	if err := Check(it); err != nil {
		var zero R
		return zero, err
	}
	return it.Deref(), nil
}
