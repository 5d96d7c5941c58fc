package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/containers/vector"
)

func TestStack(t *testing.T) {
	var s Stack[int]
	assert.True(t, s.Empty())

	for i := 1; i <= 5; i++ {
		s.Push(i)
		assert.Equal(t, i, *s.Top())
		assert.Equal(t, i, s.Size())
	}

	*s.Top() = 50

	var got []int
	for !s.Empty() {
		got = append(got, *s.Top())
		s.Pop()
	}
	assert.Equal(t, []int{50, 4, 3, 2, 1}, got)

	assert.Panics(t, func() {
		s.Pop()
	})
}

func TestFromVector(t *testing.T) {
	v, err := vector.NewFilled(2, "a")
	require.NoError(t, err)
	v.PushBack("top")

	s := FromVector(v)
	assert.Equal(t, "top", *s.Top())
	assert.Equal(t, 3, s.Size())

	s.Pop()
	assert.Equal(t, 3, v.Size(), "the stack owns a copy")
	assert.Equal(t, []string{"a", "a"}, s.Underlying().Data())

	c := s.Clone()
	c.Push("b")
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, 3, c.Size())
}

func TestCompare(t *testing.T) {
	build := func(xs ...int) *Stack[int] {
		s := New[int]()
		for _, x := range xs {
			s.Push(x)
		}
		return s
	}

	a, b := build(1, 2, 3), build(1, 2, 3)
	assert.True(t, Equal(a, b))
	assert.False(t, NotEqual(a, b))
	assert.True(t, LessEqual(a, b))
	assert.True(t, GreaterEqual(a, b))

	b.Push(0)
	assert.True(t, Less(a, b))
	assert.False(t, Greater(a, b))
	assert.True(t, NotEqual(a, b))

	// bottom first: 2 beats anything starting with 1
	c := build(2)
	assert.True(t, Greater(c, b))
	assert.True(t, GreaterEqual(c, a))
	assert.False(t, LessEqual(c, a))
}
