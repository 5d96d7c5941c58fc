// Package iterator provides position-style iterators for the
// containers in this module.
//
// Iterators here are small values. Moving one (Next, Prev, Add)
// returns the moved iterator and leaves the original untouched,
// so they can be copied, stored and compared freely:
//
//	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
//		x := it.Get()
//		... do stuff with x ...
//	}
//
// Wrap walks contiguous storage, Node walks a sentinel tree
// (see package tree) in order, and Reverse flips the direction
// of either. All of them satisfy the constraints in package traits.
//
// An iterator does not own what it points into. Dereferencing an
// end position, or a position its container has since reallocated
// or shifted, is a bug in the caller.
package iterator

import (
	"errors"
)

// ErrInvalidated is the panic value raised when an iterator is used
// after its container reallocated or shifted the underlying storage.
var ErrInvalidated = errors.New("iterator used after its container was modified")
