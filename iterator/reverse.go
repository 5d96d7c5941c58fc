package iterator

import (
	"go.lepak.sg/containers/traits"
)

var _ traits.RandomAccessIterator[Reverse[Wrap[int], int], int] = Reverse[Wrap[int], int]{}

var _ traits.BidirectionalIterator[Reverse[Node[int], int], int] = Reverse[Node[int], int]{}

// Reverse walks the underlying iterator backwards.
// It holds the position just after the element it reports,
// so Reverse over a container's end reports its last element,
// and Reverse over its begin is the reversed end.
//
// The arithmetic and ordering methods are only usable when the
// underlying iterator is random access. Calling them on a Reverse
// over a bidirectional iterator panics.
type Reverse[I traits.BidirectionalIterator[I, T], T any] struct {
	it I
}

// NewReverse returns a reverse iterator reporting the element before it.
func NewReverse[T any, I traits.BidirectionalIterator[I, T]](it I) Reverse[I, T] {
	return Reverse[I, T]{it: it}
}

// Base returns the underlying iterator, one position
// after the element r reports.
func (r Reverse[I, T]) Base() I {
	return r.it
}

func (r Reverse[I, T]) Category() traits.Category {
	return r.it.Category()
}

func (r Reverse[I, T]) Next() Reverse[I, T] {
	return Reverse[I, T]{it: r.it.Prev()}
}

func (r Reverse[I, T]) Prev() Reverse[I, T] {
	return Reverse[I, T]{it: r.it.Next()}
}

func (r Reverse[I, T]) Get() T {
	return r.it.Prev().Get()
}

// Ptr returns a pointer to the reported element, if the
// underlying iterator can provide one.
func (r Reverse[I, T]) Ptr() *T {
	p, ok := any(r.it.Prev()).(interface{ Ptr() *T })
	if !ok {
		panic("underlying iterator cannot return pointers")
	}
	return p.Ptr()
}

func (r Reverse[I, T]) Equal(o Reverse[I, T]) bool {
	return r.it.Equal(o.it)
}

func (r Reverse[I, T]) NotEqual(o Reverse[I, T]) bool {
	return !r.it.Equal(o.it)
}

func (r Reverse[I, T]) random() traits.RandomAccessIterator[I, T] {
	ra, ok := any(r.it).(traits.RandomAccessIterator[I, T])
	if !ok || r.it.Category() != traits.RandomAccess {
		panic("reverse iterator arithmetic needs a random access base")
	}
	return ra
}

func (r Reverse[I, T]) Add(n int) Reverse[I, T] {
	return Reverse[I, T]{it: r.random().Add(-n)}
}

func (r Reverse[I, T]) Sub(n int) Reverse[I, T] {
	return Reverse[I, T]{it: r.random().Add(n)}
}

// Diff returns the number of elements from o to r,
// counted in the reversed direction.
func (r Reverse[I, T]) Diff(o Reverse[I, T]) int {
	return o.random().Diff(r.it)
}

func (r Reverse[I, T]) At(n int) T {
	return r.Add(n).Get()
}

func (r Reverse[I, T]) Less(o Reverse[I, T]) bool {
	return o.random().Less(r.it)
}

func (r Reverse[I, T]) Greater(o Reverse[I, T]) bool {
	return r.random().Less(o.it)
}

func (r Reverse[I, T]) LessEqual(o Reverse[I, T]) bool {
	return !r.Greater(o)
}

func (r Reverse[I, T]) GreaterEqual(o Reverse[I, T]) bool {
	return !r.Less(o)
}
