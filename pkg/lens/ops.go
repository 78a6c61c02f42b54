package lens

import "go.llib.dev/cursorkit/internal/constraints"

// Modify sets the property to fn applied on its current value, and returns the new value.
func Modify[L Lens[B, T], B, T any](l L, b B, fn func(T) T) T {
	v := fn(l.Get(b))
	l.Set(b, v)
	return v
}

// Adder is implemented by lenses that can add to their property
// more precisely than a get followed by a set.
type Adder[B, T any] interface {
	Add(B, T) T
	Sub(B, T) T
}

func Add[L Lens[B, T], B any, T constraints.Number](l L, b B, v T) T {
	if a, ok := any(l).(Adder[B, T]); ok {
		return a.Add(b, v)
	}
	return Modify(l, b, func(c T) T { return c + v })
}

func Sub[L Lens[B, T], B any, T constraints.Number](l L, b B, v T) T {
	if a, ok := any(l).(Adder[B, T]); ok {
		return a.Sub(b, v)
	}
	return Modify(l, b, func(c T) T { return c - v })
}

func Mul[L Lens[B, T], B any, T constraints.Number](l L, b B, v T) T {
	return Modify(l, b, func(c T) T { return c * v })
}

// Div divides the property by v.
// Integer division by zero panics, the same way the division operator does.
func Div[L Lens[B, T], B any, T constraints.Number](l L, b B, v T) T {
	return Modify(l, b, func(c T) T { return c / v })
}

func Mod[L Lens[B, T], B any, T constraints.Integer](l L, b B, v T) T {
	return Modify(l, b, func(c T) T { return c % v })
}

func Inc[L Lens[B, T], B any, T constraints.Number](l L, b B) T { return Add[L, B, T](l, b, 1) }

func Dec[L Lens[B, T], B any, T constraints.Number](l L, b B) T { return Sub[L, B, T](l, b, 1) }

func And[L Lens[B, T], B any, T constraints.Integer](l L, b B, v T) T {
	return Modify(l, b, func(c T) T { return c & v })
}

func Or[L Lens[B, T], B any, T constraints.Integer](l L, b B, v T) T {
	return Modify(l, b, func(c T) T { return c | v })
}

func Xor[L Lens[B, T], B any, T constraints.Integer](l L, b B, v T) T {
	return Modify(l, b, func(c T) T { return c ^ v })
}

func Shl[L Lens[B, T], B any, T constraints.Integer](l L, b B, n uint) T {
	return Modify(l, b, func(c T) T { return c << n })
}

func Shr[L Lens[B, T], B any, T constraints.Integer](l L, b B, n uint) T {
	return Modify(l, b, func(c T) T { return c >> n })
}
