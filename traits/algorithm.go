package traits

import (
	"golang.org/x/exp/constraints"
)

// Equal reports whether [first1, last1) matches, element for element,
// the range of the same length starting at first2.
// The second range must be at least as long as the first.
func Equal[T comparable, I1 InputIterator[I1, T], I2 InputIterator[I2, T]](
	first1, last1 I1, first2 I2) bool {
	return EqualFunc(first1, last1, first2, func(a, b T) bool {
		return a == b
	})
}

// EqualFunc is like Equal but uses eq to compare elements.
func EqualFunc[T1, T2 any, I1 InputIterator[I1, T1], I2 InputIterator[I2, T2]](
	first1, last1 I1, first2 I2, eq func(T1, T2) bool) bool {
	for ; !first1.Equal(last1); first1, first2 = first1.Next(), first2.Next() {
		if !eq(first1.Get(), first2.Get()) {
			return false
		}
	}
	return true
}

// LexicographicalCompare reports whether [first1, last1) orders
// before [first2, last2). The first mismatching element decides;
// if one range is a prefix of the other, the shorter one is less.
func LexicographicalCompare[T constraints.Ordered, I1 InputIterator[I1, T], I2 InputIterator[I2, T]](
	first1, last1 I1, first2, last2 I2) bool {
	return LexicographicalCompareFunc(first1, last1, first2, last2, func(a, b T) bool {
		return a < b
	})
}

// LexicographicalCompareFunc is like LexicographicalCompare
// but orders elements with less.
func LexicographicalCompareFunc[T any, I1 InputIterator[I1, T], I2 InputIterator[I2, T]](
	first1, last1 I1, first2, last2 I2, less func(a, b T) bool) bool {
	for ; !first1.Equal(last1) && !first2.Equal(last2); first1, first2 = first1.Next(), first2.Next() {
		a, b := first1.Get(), first2.Get()
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
	}
	return first1.Equal(last1) && !first2.Equal(last2)
}
