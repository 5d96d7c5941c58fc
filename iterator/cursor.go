package iterator

import (
	"go.lepak.sg/containers/traits"
)

// Sequence is the Next/Item style of iteration. Next must be
// called before Item, even for the first item. If Next returns
// false, Item must not be called.
//
//	s := iterator.NewCursor[int](v.Begin(), v.End())
//	for s.Next() {
//		x := s.Item()
//		... do stuff with x, or break ...
//	}
//
// A Sequence must not require closing at the end of iteration,
// as CoIterate may abandon it at any time.
type Sequence[T any] interface {
	Next() bool
	Item() T
}

var _ Sequence[int] = (*Cursor[Wrap[int], int])(nil)

// Cursor presents the range [first, last) as a Sequence.
type Cursor[I traits.InputIterator[I, T], T any] struct {
	at, last I
	started  bool
}

// NewCursor returns a Sequence over [first, last).
func NewCursor[T any, I traits.InputIterator[I, T]](first, last I) *Cursor[I, T] {
	return &Cursor[I, T]{
		at:   first,
		last: last,
	}
}

func (c *Cursor[I, T]) Next() bool {
	if c == nil {
		return false
	}

	if !c.started {
		c.started = true
	} else if !c.at.Equal(c.last) {
		c.at = c.at.Next()
	}

	return !c.at.Equal(c.last)
}

func (c *Cursor[I, T]) Item() T {
	return c.at.Get()
}

// Collect copies [first, last) into a new slice.
func Collect[T any, I traits.InputIterator[I, T]](first, last I) []T {
	var out []T
	for ; !first.Equal(last); first = first.Next() {
		out = append(out, first.Get())
	}
	return out
}
