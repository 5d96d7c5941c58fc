// Package stack provides a LIFO adaptor over vector.Vector.
package stack

import (
	"go.lepak.sg/containers/vector"
	"golang.org/x/exp/constraints"
)

// Stack is a last-in first-out adaptor. All of its work is done
// by the Vector underneath. The zero Stack may be used immediately.
type Stack[T any] struct {
	c vector.Vector[T]
}

// New returns an empty Stack.
func New[T any](opts ...vector.Option[T]) *Stack[T] {
	return &Stack[T]{c: *vector.New(opts...)}
}

// FromVector returns a Stack holding a copy of v,
// whose last element is the top.
func FromVector[T any](v *vector.Vector[T]) *Stack[T] {
	s := &Stack[T]{}
	s.c.CopyFrom(v)
	return s
}

func (s *Stack[T]) Empty() bool {
	return s.c.Empty()
}

func (s *Stack[T]) Size() int {
	return s.c.Size()
}

// Top returns a pointer to the top element. s must not be empty.
func (s *Stack[T]) Top() *T {
	return s.c.Back()
}

func (s *Stack[T]) Push(x T) {
	s.c.PushBack(x)
}

// Pop removes the top element. s must not be empty.
func (s *Stack[T]) Pop() {
	s.c.PopBack()
}

// Clone returns a deep copy of s.
func (s *Stack[T]) Clone() *Stack[T] {
	return FromVector(&s.c)
}

// Underlying returns the Vector holding the elements,
// bottom first.
func (s *Stack[T]) Underlying() *vector.Vector[T] {
	return &s.c
}

func Equal[T comparable](a, b *Stack[T]) bool {
	return vector.Equal(&a.c, &b.c)
}

func NotEqual[T comparable](a, b *Stack[T]) bool {
	return vector.NotEqual(&a.c, &b.c)
}

// Less compares stacks bottom first.
func Less[T constraints.Ordered](a, b *Stack[T]) bool {
	return vector.Less(&a.c, &b.c)
}

func LessEqual[T constraints.Ordered](a, b *Stack[T]) bool {
	return vector.LessEqual(&a.c, &b.c)
}

func Greater[T constraints.Ordered](a, b *Stack[T]) bool {
	return vector.Greater(&a.c, &b.c)
}

func GreaterEqual[T constraints.Ordered](a, b *Stack[T]) bool {
	return vector.GreaterEqual(&a.c, &b.c)
}
