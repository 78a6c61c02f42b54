package lens

import (
	"github.com/cockroachdb/apd/v3"

	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrDecimal errorkit.Error = "ErrDecimal"

// DecimalPrecision is the number of significant digits DecimalScaling computes with.
const DecimalPrecision = 34

// DecimalScaling is the Scaling lens of arbitrary precision decimals.
// Factors such as 0.1 are exact, so scaling doesn't suffer from binary floating point error.
type DecimalScaling[L Lens[B, *apd.Decimal], B any] struct {
	inner  L
	factor *apd.Decimal
	ctx    *apd.Context
}

// ScaleDecimal returns a DecimalScaling lens.
// The factor is copied. A zero factor panics with ErrZeroFactor.
func ScaleDecimal[L Lens[B, *apd.Decimal], B any](inner L, factor *apd.Decimal) DecimalScaling[L, B] {
	if factor == nil || factor.IsZero() {
		panic(ErrZeroFactor.F("%T lens can't be scaled by zero", inner))
	}
	return DecimalScaling[L, B]{
		inner:  inner,
		factor: new(apd.Decimal).Set(factor),
		ctx:    apd.BaseContext.WithPrecision(DecimalPrecision),
	}
}

// Get returns a new decimal, the inner value is never modified.
// Results are reduced, trailing zeros of the working precision are dropped.
func (l DecimalScaling[L, B]) Get(b B) *apd.Decimal {
	var out apd.Decimal
	if _, err := l.ctx.Mul(&out, l.inner.Get(b), l.factor); err != nil {
		panic(ErrDecimal.Wrap(err))
	}
	out.Reduce(&out)
	return &out
}

func (l DecimalScaling[L, B]) Set(b B, v *apd.Decimal) {
	var out apd.Decimal
	if _, err := l.ctx.Quo(&out, v, l.factor); err != nil {
		panic(ErrDecimal.Wrap(err))
	}
	out.Reduce(&out)
	l.inner.Set(b, &out)
}

func (l DecimalScaling[L, B]) Factor() *apd.Decimal { return new(apd.Decimal).Set(l.factor) }

// NegatingDecimal is the Negating lens of arbitrary precision decimals.
type NegatingDecimal[L Lens[B, *apd.Decimal], B any] struct {
	inner L
}

func NegateDecimal[L Lens[B, *apd.Decimal], B any](inner L) NegatingDecimal[L, B] {
	return NegatingDecimal[L, B]{inner: inner}
}

func (l NegatingDecimal[L, B]) Get(b B) *apd.Decimal {
	return new(apd.Decimal).Neg(l.inner.Get(b))
}

func (l NegatingDecimal[L, B]) Set(b B, v *apd.Decimal) {
	l.inner.Set(b, new(apd.Decimal).Neg(v))
}
