package lens

import (
	"go.llib.dev/cursorkit/internal/constraints"
	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrZeroFactor errorkit.Error = "ErrZeroFactor"

// Scaling projects what the inner lens projects, multiplied by a factor.
// Set divides by the factor before writing, so Set then Get is the identity
// within the precision of T.
type Scaling[L Lens[B, T], B any, T constraints.Number] struct {
	inner  L
	factor T
}

// Scale returns a Scaling lens.
// A zero factor can't be inverted, and it panics with ErrZeroFactor.
func Scale[L Lens[B, T], B any, T constraints.Number](inner L, factor T) Scaling[L, B, T] {
	if factor == 0 {
		panic(ErrZeroFactor.F("%T lens can't be scaled by zero", inner))
	}
	return Scaling[L, B, T]{inner: inner, factor: factor}
}

func (l Scaling[L, B, T]) Get(b B) T { return l.inner.Get(b) * l.factor }

func (l Scaling[L, B, T]) Set(b B, v T) { l.inner.Set(b, v/l.factor) }

func (l Scaling[L, B, T]) Factor() T { return l.factor }

func (l Scaling[L, B, T]) Inner() L { return l.inner }
