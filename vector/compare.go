package vector

import (
	"go.lepak.sg/containers/traits"
	"golang.org/x/exp/constraints"
)

// Equal reports whether a and b have the same size and
// equal elements at every index.
func Equal[T comparable](a, b *Vector[T]) bool {
	return a.Size() == b.Size() &&
		traits.Equal[T](a.CBegin(), a.CEnd(), b.CBegin())
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T1, T2 any](a *Vector[T1], b *Vector[T2], eq func(T1, T2) bool) bool {
	return a.Size() == b.Size() &&
		traits.EqualFunc[T1, T2](a.CBegin(), a.CEnd(), b.CBegin(), eq)
}

func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// Less orders a and b lexicographically. A Vector that is
// a strict prefix of another orders first.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return traits.LexicographicalCompare[T](a.CBegin(), a.CEnd(), b.CBegin(), b.CEnd())
}

func LessEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

func Greater[T constraints.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

func GreaterEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}

// Compare returns -1, 0 or +1 as a orders before, equal to
// or after b, in the order used by Less.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, traits.Compare[T])
}

// CompareFunc is like Compare but orders elements with cmp.
func CompareFunc[T any](a, b *Vector[T], cmp func(T, T) int) int {
	less := func(x, y T) bool {
		return cmp(x, y) < 0
	}

	if traits.LexicographicalCompareFunc[T](a.CBegin(), a.CEnd(), b.CBegin(), b.CEnd(), less) {
		return -1
	}
	if traits.LexicographicalCompareFunc[T](b.CBegin(), b.CEnd(), a.CBegin(), a.CEnd(), less) {
		return 1
	}
	return 0
}
