package container

import (
	"reflect"

	"go.llib.dev/cursorkit/pkg/optional"
	"go.llib.dev/frameless/pkg/reflectkit"
)

// IteratorType returns the cursor type associated with the container value v.
//
// The cursor type is the result type of a Begin method,
// declared either on the value itself or on a pointer to it.
// Slices and arrays of E, which have no Begin method, are traversed through *E.
// Values that can't be iterated yield an empty result.
//
// In generic code the same type is available statically, as the I of Container[I, R].
func IteratorType(v any) optional.Value[reflect.Type] {
	if v == nil {
		return optional.Empty[reflect.Type]()
	}
	if typ, ok := beginResultType(reflect.TypeOf(v)); ok {
		return optional.Of(typ)
	}
	base := reflectkit.BaseTypeOf(v)
	if typ, ok := beginResultType(reflect.PointerTo(base)); ok {
		return optional.Of(typ)
	}
	switch base.Kind() {
	case reflect.Slice, reflect.Array:
		return optional.Of(reflect.PointerTo(base.Elem()))
	default:
		return optional.Empty[reflect.Type]()
	}
}

func beginResultType(typ reflect.Type) (reflect.Type, bool) {
	m, ok := typ.MethodByName("Begin")
	if !ok {
		return nil, false
	}
	// the receiver is the first input of a method obtained from a type
	if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
		return nil, false
	}
	return m.Type.Out(0), true
}
