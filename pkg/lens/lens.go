// Package lens implements composable accessors.
//
// A Lens knows how to read and write a projection of a backing value, without owning it.
// A plain field, a computed property and a decorated property are all used the same way,
// and decorators such as Negating or Scaling wrap another Lens to transform the values
// on the way in and out.
package lens

import "reflect"

// Lens is the set of primitives a lens implements.
//
// B is the backing handle, typically a pointer to the backing value,
// and T is the projected type.
type Lens[B, T any] interface {
	Get(B) T
	Set(B, T)
}

// Func is a Lens made from a getter and a setter function.
type Func[B, T any] struct {
	get func(B) T
	set func(B, T)
}

// Of returns a Lens from a get and set function pair.
func Of[B, T any](get func(B) T, set func(B, T)) Func[B, T] {
	return Func[B, T]{get: get, set: set}
}

func (l Func[B, T]) Get(b B) T { return l.get(b) }

func (l Func[B, T]) Set(b B, v T) { l.set(b, v) }

// Ptr is the identity Lens over a pointer: a value projects itself.
type Ptr[T any] struct{}

func Pointer[T any]() Ptr[T] { return Ptr[T]{} }

func (Ptr[T]) Get(p *T) T { return *p }

func (Ptr[T]) Set(p *T, v T) { *p = v }

// Composed focuses an inner lens through the value an outer lens projects.
type Composed[O Lens[B, M], I Lens[*M, T], B, M, T any] struct {
	outer O
	inner I
}

// Compose returns a Lens that reads and writes a part of what the outer lens projects.
// Set reads the outer value, updates it with the inner lens, then writes it back.
func Compose[O Lens[B, M], I Lens[*M, T], B, M, T any](outer O, inner I) Composed[O, I, B, M, T] {
	return Composed[O, I, B, M, T]{outer: outer, inner: inner}
}

func (l Composed[O, I, B, M, T]) Get(b B) T {
	m := l.outer.Get(b)
	return l.inner.Get(&m)
}

func (l Composed[O, I, B, M, T]) Set(b B, v T) {
	m := l.outer.Get(b)
	l.inner.Set(&m, v)
	l.outer.Set(b, m)
}

// TypeOf returns the projected type of a Lens.
func TypeOf[L Lens[B, T], B, T any](L) reflect.Type {
	return reflect.TypeFor[T]()
}

// Ref binds a Lens to its backing value,
// giving a uniform accessor for the projected property.
type Ref[L Lens[B, T], B, T any] struct {
	lens    L
	backing B
}

func Bind[L Lens[B, T], B, T any](l L, b B) Ref[L, B, T] {
	return Ref[L, B, T]{lens: l, backing: b}
}

func (r Ref[L, B, T]) Get() T { return r.lens.Get(r.backing) }

func (r Ref[L, B, T]) Set(v T) { r.lens.Set(r.backing, v) }

// Modify replaces the property with the result of fn, and returns the new value.
func (r Ref[L, B, T]) Modify(fn func(T) T) T { return Modify(r.lens, r.backing, fn) }

// Lens returns the bound lens.
func (r Ref[L, B, T]) Lens() L { return r.lens }
