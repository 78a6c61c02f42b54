package lens

import "go.llib.dev/cursorkit/internal/constraints"

// Negating projects the negation of what the inner lens projects.
type Negating[L Lens[B, T], B any, T constraints.Signed] struct {
	inner L
}

func Negate[L Lens[B, T], B any, T constraints.Signed](inner L) Negating[L, B, T] {
	return Negating[L, B, T]{inner: inner}
}

func (l Negating[L, B, T]) Get(b B) T { return -l.inner.Get(b) }

func (l Negating[L, B, T]) Set(b B, v T) { l.inner.Set(b, -v) }

// Add subtracts v from the inner property, without negating it twice.
func (l Negating[L, B, T]) Add(b B, v T) T { return -Sub(l.inner, b, v) }

// Sub adds v to the inner property, without negating it twice.
func (l Negating[L, B, T]) Sub(b B, v T) T { return -Add(l.inner, b, v) }

func (l Negating[L, B, T]) Inner() L { return l.inner }
