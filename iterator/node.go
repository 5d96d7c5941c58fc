package iterator

import (
	"go.lepak.sg/containers/traits"
	"go.lepak.sg/containers/tree"
)

var _ traits.BidirectionalIterator[Node[int], int] = Node[int]{}

// Node is an in-order iterator over a sentinel tree.
// The sentinel is the end position: Prev from the end is the
// largest item and Next from the end wraps to the smallest.
// Stepping back from the smallest item also lands on the
// sentinel, which is not a valid position to dereference.
//
// The result of mutating the tree while holding a Node is undefined,
// except for the node it points to staying in place.
type Node[T any] struct {
	n *tree.Node[T]
}

// NewNode returns an iterator at n, which may be a sentinel.
func NewNode[T any](n *tree.Node[T]) Node[T] {
	return Node[T]{n: n}
}

// Base returns the tree node it points to.
func (it Node[T]) Base() *tree.Node[T] {
	return it.n
}

// IsEnd reports whether it is at the sentinel.
func (it Node[T]) IsEnd() bool {
	return it.n.Nil
}

func (it Node[T]) Category() traits.Category {
	return traits.Bidirectional
}

func (it Node[T]) Next() Node[T] {
	return Node[T]{n: successor(it.n)}
}

func (it Node[T]) Prev() Node[T] {
	return Node[T]{n: predecessor(it.n)}
}

func (it Node[T]) Get() T {
	return *it.Ptr()
}

func (it Node[T]) Ptr() *T {
	if it.n.Nil {
		panic("dereference of end node iterator")
	}
	return &it.n.Item
}

func (it Node[T]) Equal(o Node[T]) bool {
	return it.n == o.n
}

func (it Node[T]) NotEqual(o Node[T]) bool {
	return it.n != o.n
}

// Less compares the items of it and o, not their positions.
// Neither may be at the end.
func (it Node[T]) Less(o Node[T], cmp func(a, b T) int) bool {
	return cmp(it.Get(), o.Get()) < 0
}

func (it Node[T]) Greater(o Node[T], cmp func(a, b T) int) bool {
	return cmp(it.Get(), o.Get()) > 0
}

func (it Node[T]) LessEqual(o Node[T], cmp func(a, b T) int) bool {
	return cmp(it.Get(), o.Get()) <= 0
}

func (it Node[T]) GreaterEqual(o Node[T], cmp func(a, b T) int) bool {
	return cmp(it.Get(), o.Get()) >= 0
}

func successor[T any](n *tree.Node[T]) *tree.Node[T] {
	if n.Nil {
		// wrap around to the first item; an empty tree stays put
		return n.Begin
	}

	if !n.Right.Nil {
		n = n.Right
		for !n.Left.Nil {
			n = n.Left
		}
		return n
	}

	// no right subtree, so n.Right is the sentinel
	end := n.Right
	for {
		p := n.Parent
		if p == nil || p.Nil {
			return end
		}
		if p.Left == n {
			return p
		}
		n = p
	}
}

func predecessor[T any](n *tree.Node[T]) *tree.Node[T] {
	if n.Nil {
		return n.Parent
	}

	if !n.Left.Nil {
		n = n.Left
		for !n.Right.Nil {
			n = n.Right
		}
		return n
	}

	// walking off the left edge ends on the sentinel,
	// the out-of-range position before the first item
	before := n.Left
	for {
		p := n.Parent
		if p == nil || p.Nil {
			return before
		}
		if p.Right == n {
			return p
		}
		n = p
	}
}
