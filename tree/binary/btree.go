package binary

import (
	"fmt"
	"math/bits"
	"strings"

	"go.lepak.sg/containers/iterator"
	"go.lepak.sg/containers/traits"
	"go.lepak.sg/containers/tree"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree laid out around a sentinel node
// (see package tree), so that it can be walked in order with
// iterator.Node. It is safe for concurrent reads (searching,
// iterating, etc) but not for concurrent reads and writes
// (inserting).
//
// This tree implementation does not support removal. It is also not
// self-balancing.
//
// Invariants:
//   - At any node N in the tree, all node items in the subtree rooted at N.Left
//     order before N.Item
//   - At any node N in the tree, all node items in the subtree rooted at N.Right
//     order after N.Item
//   - For every possible item, there will be at most one node with an
//     equivalent item in the tree (No duplicates allowed)
//   - The sentinel's Begin is the leftmost node and its Parent the rightmost;
//     the root's Parent is the sentinel
type Tree[T any] struct {
	// the tree is rooted here, or at the sentinel when empty.
	// don't return nodes directly - client could mutate data or children!
	root     *tree.Node[T]
	sentinel *tree.Node[T]
	cmp      func(a, b T) int
	size     int
}

// New returns an empty Tree ordered by <.
func New[T constraints.Ordered]() *Tree[T] {
	return NewFunc(traits.Compare[T])
}

// NewFunc returns an empty Tree ordered by cmp, which returns
// a negative number, zero or a positive number as a orders
// before, with or after b.
func NewFunc[T any](cmp func(a, b T) int) *Tree[T] {
	s := tree.NewSentinel[T]()
	return &Tree[T]{
		root:     s,
		sentinel: s,
		cmp:      cmp,
	}
}

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int {
	return t.size
}

// search returns the node holding k, or the sentinel along
// with the node k would hang from and on which side.
func (t *Tree[T]) search(k T) (n, parent *tree.Node[T], c tree.Order) {
	n, parent = t.root, t.sentinel

	for !n.Nil {
		c = tree.OrderOf(t.cmp(k, n.Item))
		switch c {
		case tree.Less:
			n, parent = n.Left, n
		case tree.Greater:
			n, parent = n.Right, n
		case tree.Equal:
			return n, parent, c
		default:
			panic("unreachable")
		}
	}

	return
}

// Find returns an iterator at k, or End if k is not in the tree.
func (t *Tree[T]) Find(k T) iterator.Node[T] {
	n, _, _ := t.search(k)
	return iterator.NewNode(n)
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	n, _, _ := t.search(k)
	return !n.Nil
}

// Less returns the largest item in the tree
// that orders before k.
// If there is no such item,
// p is the zero T and ok is false.
func (t *Tree[T]) Less(k T) (p T, ok bool) {
	n, parent, c := t.search(k)
	if !n.Nil {
		// k is in the tree, step back from it
		parent, c = n, tree.Less
	}

	if parent.Nil {
		return
	}

	if c == tree.Greater {
		// k would be the right child, so parent is the answer
		return parent.Item, true
	}

	prev := iterator.NewNode(parent).Prev()
	if prev.IsEnd() {
		return
	}
	return prev.Get(), true
}

// Greater returns the smallest item in the tree
// that orders after k.
// If there is no such item,
// p is the zero T and ok is false.
func (t *Tree[T]) Greater(k T) (p T, ok bool) {
	n, parent, c := t.search(k)
	if !n.Nil {
		parent, c = n, tree.Greater
	}

	if parent.Nil {
		return
	}

	if c == tree.Less {
		return parent.Item, true
	}

	next := iterator.NewNode(parent).Next()
	if next.IsEnd() {
		return
	}
	return next.Get(), true
}

// Insert inserts k into the binary tree.
// If k is already in the tree, Insert returns false.
func (t *Tree[T]) Insert(k T) bool {
	n, p, cmp := t.search(k)
	if !n.Nil {
		return false
	}

	newnode := tree.NodeOf(k, t.sentinel)
	newnode.Parent = p

	switch {
	case p.Nil:
		t.root = newnode
	case cmp == tree.Less:
		if !p.Left.Nil {
			panic("impossible")
		}
		p.Left = newnode
	case cmp == tree.Greater:
		if !p.Right.Nil {
			panic("impossible")
		}
		p.Right = newnode
	default:
		panic("unreachable")
	}

	t.size++

	s := t.sentinel
	if s.Begin.Nil || t.cmp(k, s.Begin.Item) < 0 {
		s.Begin = newnode
	}
	if s.Parent.Nil || t.cmp(k, s.Parent.Item) > 0 {
		s.Parent = newnode
	}

	return true
}

// adopt makes the subtree rooted at root the contents of t.
// Every missing child in it must already be t's sentinel.
func (t *Tree[T]) adopt(root *tree.Node[T], size int) {
	s := t.sentinel
	t.root, t.size = root, size

	if root.Nil {
		s.Begin, s.Parent = s, s
		return
	}

	root.Parent = s
	s.Begin, s.Parent = root.Leftmost(), root.Rightmost()
}

// Begin returns an iterator at the smallest item.
func (t *Tree[T]) Begin() iterator.Node[T] {
	return iterator.NewNode(t.sentinel.Begin)
}

// End returns the iterator past the largest item.
func (t *Tree[T]) End() iterator.Node[T] {
	return iterator.NewNode(t.sentinel)
}

func (t *Tree[T]) RBegin() iterator.Reverse[iterator.Node[T], T] {
	return iterator.NewReverse[T](t.End())
}

func (t *Tree[T]) REnd() iterator.Reverse[iterator.Node[T], T] {
	return iterator.NewReverse[T](t.Begin())
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	// Compare this to PreOrder which is recursive
	for it := t.Begin(); !it.IsEnd(); it = it.Next() {
		if !f(it.Get()) {
			return
		}
	}
}

// PreOrder applies f to each key in the tree in pre-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	if t.root.Nil {
		return
	}
	visitPreOrder(t.root, f)
}

func visitPreOrder[T any](n *tree.Node[T], f func(k T) bool) bool {
	if !f(n.Item) {
		return false
	}

	if !n.Left.Nil {
		if !visitPreOrder(n.Left, f) {
			return false
		}
	}

	if !n.Right.Nil {
		if !visitPreOrder(n.Right, f) {
			return false
		}
	}

	return true
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
func (t *Tree[T]) InOrderCoroutine() iterator.CoIterator[T] {
	return iterator.CoIterate[T](iterator.NewCursor[T](t.Begin(), t.End()))
}

// Height returns the actual height of the tree, and the smallest
// height a tree with the same number of items could have.
func (t *Tree[T]) Height() (actual, ideal int) {
	return height(t.root), bits.Len(uint(t.size))
}

func height[T any](n *tree.Node[T]) int {
	if n.Nil {
		return 0
	}

	l, r := height(n.Left), height(n.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Balanced reports whether the tree is as short as it can be.
func (t *Tree[T]) Balanced() bool {
	actual, ideal := t.Height()
	return actual == ideal
}

// String returns a string representation of the tree.
// A complete binary tree with height 2 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) String() string {
	var sb strings.Builder

	if t.root.Nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T any](
	sb *strings.Builder, n *tree.Node[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.Item))
	sb.WriteRune('\n')

	if !n.Left.Nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, !n.Right.Nil)
	}

	if !n.Right.Nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}
