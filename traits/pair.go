package traits

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pair aggregates two independent values.
// The zero Pair holds the zero values of both types.
type Pair[T1, T2 any] struct {
	First  T1
	Second T2
}

// MakePair returns the Pair (first, second).
func MakePair[T1, T2 any](first T1, second T2) Pair[T1, T2] {
	return Pair[T1, T2]{
		First:  first,
		Second: second,
	}
}

// Swap exchanges the contents of p and o.
func (p *Pair[T1, T2]) Swap(o *Pair[T1, T2]) {
	p.First, o.First = o.First, p.First
	p.Second, o.Second = o.Second, p.Second
}

func (p Pair[T1, T2]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Compare returns -1, 0 or +1 as l is less than, equal to
// or greater than r.
func Compare[T constraints.Ordered](l, r T) int {
	if l < r {
		return -1
	} else if l > r {
		return 1
	}
	return 0
}

// PairEqual reports whether both members of a and b are equal.
func PairEqual[T1, T2 comparable](a, b Pair[T1, T2]) bool {
	return a.First == b.First && a.Second == b.Second
}

// ComparePairs orders pairs lexicographically: by First,
// then by Second when the First members are equivalent.
func ComparePairs[T1, T2 constraints.Ordered](a, b Pair[T1, T2]) int {
	return PairCompareFunc(Compare[T1], Compare[T2])(a, b)
}

// PairLess reports whether a orders before b.
func PairLess[T1, T2 constraints.Ordered](a, b Pair[T1, T2]) bool {
	return ComparePairs(a, b) < 0
}

// PairCompareFunc builds a lexicographic pair comparator
// out of comparators for each member.
func PairCompareFunc[T1, T2 any](
	first func(T1, T1) int, second func(T2, T2) int,
) func(a, b Pair[T1, T2]) int {
	return func(a, b Pair[T1, T2]) int {
		if c := first(a.First, b.First); c != 0 {
			return c
		}
		return second(a.Second, b.Second)
	}
}
