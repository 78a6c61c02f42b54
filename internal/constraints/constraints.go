// Package constraints holds the numeric type sets shared by the cursorkit packages.
package constraints

import "golang.org/x/exp/constraints"

type (
	Int   = constraints.Signed
	UInt  = constraints.Unsigned
	Float = constraints.Float
)

// Integer permits any signed or unsigned integer type.
type Integer = constraints.Integer

// Signed permits every number type that has a well-defined negation.
type Signed interface {
	Int | Float
}

// Number permits every type that supports the four basic arithmetic operators.
type Number interface {
	Integer | Float
}
