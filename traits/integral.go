package traits

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Integral admits the integer scalar types. It is the compile-time
// form of IsIntegral and gates the count parameters of the sized
// container constructors, so a count can never be mistaken for an
// iterator.
type Integral interface {
	constraints.Integer
}

// IsIntegral reports whether T is an integral scalar: a boolean,
// a signed or unsigned integer, or uintptr. Named types count
// by their underlying kind.
func IsIntegral[T any]() bool {
	var zero T
	// &zero keeps interface type parameters from collapsing to nil
	switch reflect.TypeOf(&zero).Elem().Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		return true
	default:
		return false
	}
}
