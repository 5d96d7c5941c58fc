package traits_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/containers/iterator"
	"go.lepak.sg/containers/traits"
)

// list is a bidirectional iterator over a slice that
// pretends it cannot jump.
type list struct {
	s []int
	i int
}

func (l list) Next() list {
	l.i++
	return l
}

func (l list) Prev() list {
	l.i--
	return l
}

func (l list) Get() int { return l.s[l.i] }
func (l list) Equal(o list) bool { return l.i == o.i }
func (l list) Category() traits.Category { return traits.Bidirectional }

var _ traits.BidirectionalIterator[list, int] = list{}

type myInt int
type myBool bool

func TestIsIntegral(t *testing.T) {
	assert.True(t, traits.IsIntegral[int]())
	assert.True(t, traits.IsIntegral[uint8]())
	assert.True(t, traits.IsIntegral[int64]())
	assert.True(t, traits.IsIntegral[uintptr]())
	assert.True(t, traits.IsIntegral[bool]())
	assert.True(t, traits.IsIntegral[myInt]())
	assert.True(t, traits.IsIntegral[myBool]())

	assert.False(t, traits.IsIntegral[float64]())
	assert.False(t, traits.IsIntegral[string]())
	assert.False(t, traits.IsIntegral[*int]())
	assert.False(t, traits.IsIntegral[[]int]())
	assert.False(t, traits.IsIntegral[any]())
	assert.False(t, traits.IsIntegral[iterator.Wrap[int]]())
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "Bidirectional", traits.Bidirectional.String())
	assert.Equal(t, "RandomAccess", traits.RandomAccess.String())
	assert.Equal(t, "<invalid traits.Category>", traits.Category(5).String())
}

func TestPair(t *testing.T) {
	p := traits.MakePair(1, "one")
	assert.Equal(t, 1, p.First)
	assert.Equal(t, "one", p.Second)
	assert.Equal(t, "(1, one)", p.String())

	var zero traits.Pair[int, string]
	assert.Equal(t, "(0, )", zero.String())

	q := traits.MakePair(2, "two")
	p.Swap(&q)
	assert.Equal(t, traits.MakePair(2, "two"), p)
	assert.Equal(t, traits.MakePair(1, "one"), q)

	assert.True(t, traits.PairEqual(p, traits.MakePair(2, "two")))
	assert.False(t, traits.PairEqual(p, q))
}

func TestComparePairs(t *testing.T) {
	tests := []struct {
		name string
		a, b traits.Pair[int, string]
		want int
	}{
		{
			name: "equal",
			a:    traits.MakePair(1, "a"),
			b:    traits.MakePair(1, "a"),
			want: 0,
		},
		{
			name: "first decides",
			a:    traits.MakePair(1, "z"),
			b:    traits.MakePair(2, "a"),
			want: -1,
		},
		{
			name: "second breaks the tie",
			a:    traits.MakePair(1, "b"),
			b:    traits.MakePair(1, "a"),
			want: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, traits.ComparePairs(tt.a, tt.b))
			assert.Equal(t, -tt.want, traits.ComparePairs(tt.b, tt.a))
			assert.Equal(t, tt.want < 0, traits.PairLess(tt.a, tt.b))
		})
	}
}

func TestPairCompareFunc(t *testing.T) {
	byLen := func(a, b string) int {
		return traits.Compare(len(a), len(b))
	}
	cmp := traits.PairCompareFunc(byLen, traits.Compare[int])

	assert.Equal(t, 0, cmp(traits.MakePair("ab", 1), traits.MakePair("xy", 1)))
	assert.Equal(t, -1, cmp(traits.MakePair("zz", 1), traits.MakePair("aaa", 0)))
	assert.Equal(t, 1, cmp(traits.MakePair("ab", 2), traits.MakePair("xy", 1)))
}

func TestDistanceAdvance(t *testing.T) {
	s := []int{0, 1, 2, 3, 4, 5}

	t.Run("random access", func(t *testing.T) {
		first, last := iterator.NewWrap(s, 0), iterator.NewWrap(s, len(s))
		assert.Equal(t, 6, traits.Distance[int](first, last))
		assert.Equal(t, -6, traits.Distance[int](last, first))

		it := traits.Advance[int](first, 4)
		assert.Equal(t, 4, it.Get())
		assert.Equal(t, 1, traits.Advance[int](it, -3).Get())
	})

	t.Run("bidirectional", func(t *testing.T) {
		first, last := list{s: s}, list{s: s, i: len(s)}
		assert.Equal(t, 6, traits.Distance[int](first, last))
		assert.Equal(t, 0, traits.Distance[int](last, last))

		it := traits.Advance[int](first, 4)
		assert.Equal(t, 4, it.Get())
		assert.Equal(t, 1, traits.Advance[int](it, -3).Get())
		assert.Equal(t, 4, traits.Advance[int](it, 0).Get())
	})
}

func TestEqual(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{1, 2, 3, 4}
	c := []int{1, 5, 3}

	assert.True(t, traits.Equal[int](
		iterator.NewWrap(a, 0), iterator.NewWrap(a, 3), iterator.NewWrap(b, 0)))
	assert.False(t, traits.Equal[int](
		iterator.NewWrap(a, 0), iterator.NewWrap(a, 3), iterator.NewWrap(c, 0)))
	// mixed iterator types
	assert.True(t, traits.Equal[int](
		list{s: a}, list{s: a, i: 3}, iterator.NewReadOnly(b, 0)))
	// empty first range
	assert.True(t, traits.Equal[int](
		iterator.NewWrap(a, 0), iterator.NewWrap(a, 0), iterator.NewWrap(c, 0)))

	strs := []string{"1", "2", "3"}
	assert.True(t, traits.EqualFunc(
		iterator.NewWrap(a, 0), iterator.NewWrap(a, 3), iterator.NewWrap(strs, 0),
		func(i int, s string) bool {
			return s == string(rune('0'+i))
		}))
}

func TestLexicographicalCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want bool
	}{
		{
			name: "both empty",
			want: false,
		},
		{
			name: "empty before anything",
			b:    []int{0},
			want: true,
		},
		{
			name: "prefix is less",
			a:    []int{1, 2, 3},
			b:    []int{1, 2, 3, 4},
			want: true,
		},
		{
			name: "longer is not less",
			a:    []int{1, 2, 3, 4},
			b:    []int{1, 2, 3},
			want: false,
		},
		{
			name: "first mismatch decides",
			a:    []int{1, 2, 9},
			b:    []int{1, 3},
			want: true,
		},
		{
			name: "equal",
			a:    []int{1, 2},
			b:    []int{1, 2},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := traits.LexicographicalCompare[int](
				iterator.NewWrap(tt.a, 0), iterator.NewWrap(tt.a, len(tt.a)),
				list{s: tt.b}, list{s: tt.b, i: len(tt.b)})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLexicographicalCompareFunc(t *testing.T) {
	a, b := []int{1, 2, 9}, []int{1, 3}
	greater := func(a, b int) bool {
		return a > b
	}

	assert.False(t, traits.LexicographicalCompareFunc(
		iterator.NewWrap(a, 0), iterator.NewWrap(a, len(a)),
		iterator.NewWrap(b, 0), iterator.NewWrap(b, len(b)),
		greater))
	assert.True(t, traits.LexicographicalCompareFunc(
		iterator.NewWrap(b, 0), iterator.NewWrap(b, len(b)),
		iterator.NewWrap(a, 0), iterator.NewWrap(a, len(a)),
		greater))
	// a prefix stays less whatever the element order
	assert.True(t, traits.LexicographicalCompareFunc(
		iterator.NewWrap(b, 0), iterator.NewWrap(b, 1),
		iterator.NewWrap(b, 0), iterator.NewWrap(b, 2),
		greater))
}
