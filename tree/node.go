// Package tree describes the node layout shared by the sentinel
// trees in this module. A tree owns one sentinel Node, which stands
// in for every missing child, terminates the parent chain above the
// root and doubles as the end position of an in-order walk.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a node of a binary tree with parent links.
// Nil is set on the sentinel only. The sentinel keeps
// Begin pointed at the leftmost real node and Parent at
// the rightmost one; both point back at the sentinel itself
// while the tree is empty.
type Node[T any] struct {
	Item                T
	Left, Right, Parent *Node[T]
	Nil                 bool
	Begin               *Node[T]
}

// NewSentinel returns the sentinel of an empty tree.
func NewSentinel[T any]() *Node[T] {
	s := &Node[T]{Nil: true}
	s.Left, s.Right, s.Parent, s.Begin = s, s, s, s
	return s
}

// NodeOf returns a leaf holding item whose children are
// the sentinel.
func NodeOf[T any](item T, sentinel *Node[T]) *Node[T] {
	return &Node[T]{
		Item:   item,
		Left:   sentinel,
		Right:  sentinel,
		Parent: sentinel,
	}
}

// Leftmost returns the smallest node of the subtree rooted at n.
// n must not be a sentinel.
func (n *Node[T]) Leftmost() *Node[T] {
	for !n.Left.Nil {
		n = n.Left
	}
	return n
}

// Rightmost returns the largest node of the subtree rooted at n.
// n must not be a sentinel.
func (n *Node[T]) Rightmost() *Node[T] {
	for !n.Right.Nil {
		n = n.Right
	}
	return n
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// OrderOf converts the result of a three-way comparator
// into an Order.
func OrderOf(c int) Order {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}
