package iterator

import (
	"go.lepak.sg/containers/traits"
)

var _ traits.RandomAccessIterator[ReadOnly[int], int] = ReadOnly[int]{}

// ReadOnly is a Wrap without Set and Ptr.
type ReadOnly[T any] struct {
	w Wrap[T]
}

// NewReadOnly returns a read-only iterator at position pos of storage.
func NewReadOnly[T any](storage []T, pos int) ReadOnly[T] {
	return NewWrap(storage, pos).ReadOnly()
}

func (r ReadOnly[T]) Category() traits.Category { return traits.RandomAccess }
func (r ReadOnly[T]) Pos() int { return r.w.pos }
func (r ReadOnly[T]) Valid() bool { return r.w.Valid() }

func (r ReadOnly[T]) Next() ReadOnly[T] { return ReadOnly[T]{w: r.w.Next()} }
func (r ReadOnly[T]) Prev() ReadOnly[T] { return ReadOnly[T]{w: r.w.Prev()} }
func (r ReadOnly[T]) Add(n int) ReadOnly[T] { return ReadOnly[T]{w: r.w.Add(n)} }
func (r ReadOnly[T]) Sub(n int) ReadOnly[T] { return ReadOnly[T]{w: r.w.Sub(n)} }
func (r ReadOnly[T]) Diff(o ReadOnly[T]) int { return r.w.Diff(o.w) }

func (r ReadOnly[T]) Get() T { return r.w.Get() }
func (r ReadOnly[T]) At(n int) T { return r.w.At(n) }
func (r ReadOnly[T]) Equal(o ReadOnly[T]) bool { return r.w.Equal(o.w) }
func (r ReadOnly[T]) NotEqual(o ReadOnly[T]) bool { return r.w.NotEqual(o.w) }
func (r ReadOnly[T]) Less(o ReadOnly[T]) bool { return r.w.Less(o.w) }
func (r ReadOnly[T]) Greater(o ReadOnly[T]) bool { return r.w.Greater(o.w) }
func (r ReadOnly[T]) LessEqual(o ReadOnly[T]) bool { return r.w.LessEqual(o.w) }
func (r ReadOnly[T]) GreaterEqual(o ReadOnly[T]) bool { return r.w.GreaterEqual(o.w) }
