package iterator

import (
	"go.lepak.sg/containers/traits"
)

var _ traits.RandomAccessIterator[Wrap[int], int] = Wrap[int]{}

// Wrap is a random access iterator over contiguous storage.
// It remembers the whole backing storage and one position in it;
// positions may run from -1 up to len(storage) without being
// dereferenced. Equal tells storages apart; Diff and the orderings
// assume both iterators share one.
type Wrap[T any] struct {
	buf []T
	pos int

	// gen is nil for iterators over plain storage.
	gen   *uint64
	stamp uint64
}

// NewWrap returns an iterator at position pos of storage.
func NewWrap[T any](storage []T, pos int) Wrap[T] {
	return Wrap[T]{
		buf: storage,
		pos: pos,
	}
}

// NewTracked is like NewWrap, but the iterator becomes unusable
// as soon as *gen moves past its current value. Containers use this
// to catch iterators that outlived a reallocation.
func NewTracked[T any](storage []T, pos int, gen *uint64) Wrap[T] {
	return Wrap[T]{
		buf:   storage,
		pos:   pos,
		gen:   gen,
		stamp: *gen,
	}
}

func (w Wrap[T]) check() {
	if w.gen != nil && *w.gen != w.stamp {
		panic(ErrInvalidated)
	}
}

// Valid reports whether the container that issued w has not
// invalidated it since. Untracked iterators are always valid.
func (w Wrap[T]) Valid() bool {
	return w.gen == nil || *w.gen == w.stamp
}

func (w Wrap[T]) Category() traits.Category {
	return traits.RandomAccess
}

// Base returns the storage w points into.
func (w Wrap[T]) Base() []T {
	return w.buf
}

// Pos returns the index of w in its storage.
func (w Wrap[T]) Pos() int {
	return w.pos
}

func (w Wrap[T]) Next() Wrap[T] {
	w.pos++
	return w
}

func (w Wrap[T]) Prev() Wrap[T] {
	w.pos--
	return w
}

// Add returns w moved forward by n elements.
func (w Wrap[T]) Add(n int) Wrap[T] {
	w.pos += n
	return w
}

// Sub returns w moved back by n elements.
func (w Wrap[T]) Sub(n int) Wrap[T] {
	w.pos -= n
	return w
}

// Diff returns the number of elements from o to w.
func (w Wrap[T]) Diff(o Wrap[T]) int {
	return w.pos - o.pos
}

// Get dereferences w.
func (w Wrap[T]) Get() T {
	w.check()
	return w.buf[w.pos]
}

// Set stores v at w.
func (w Wrap[T]) Set(v T) {
	w.check()
	w.buf[w.pos] = v
}

// Ptr returns a pointer to the element at w.
func (w Wrap[T]) Ptr() *T {
	w.check()
	return &w.buf[w.pos]
}

// At returns the element n positions after w.
func (w Wrap[T]) At(n int) T {
	w.check()
	return w.buf[w.pos+n]
}

// ReadOnly converts w to an iterator that cannot write
// through to the storage. There is no way back.
func (w Wrap[T]) ReadOnly() ReadOnly[T] {
	return ReadOnly[T]{w: w}
}

func (w Wrap[T]) Compare(o Wrap[T]) int {
	return traits.Compare(w.pos, o.pos)
}

// Equal reports whether w and o are the same position of the
// same storage. Iterators over two empty, unallocated storages
// at the same position are equal.
func (w Wrap[T]) Equal(o Wrap[T]) bool {
	return w.pos == o.pos && sameStorage(w.buf, o.buf)
}

func (w Wrap[T]) NotEqual(o Wrap[T]) bool {
	return !w.Equal(o)
}

func sameStorage[T any](a, b []T) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return cap(a) == cap(b)
	}
	return &a[:1][0] == &b[:1][0]
}

// The orderings below, like Diff and Compare, only look at
// positions and are meaningful for iterators over the same storage.

func (w Wrap[T]) Less(o Wrap[T]) bool { return w.pos < o.pos }
func (w Wrap[T]) Greater(o Wrap[T]) bool { return w.pos > o.pos }
func (w Wrap[T]) LessEqual(o Wrap[T]) bool { return w.pos <= o.pos }
func (w Wrap[T]) GreaterEqual(o Wrap[T]) bool { return w.pos >= o.pos }
