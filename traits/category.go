package traits

// Category describes how an iterator may move.
// Algorithms that can do better with arbitrary jumps ask
// the iterator for its Category instead of type switching
// on concrete iterator types.
type Category int

const (
	// Bidirectional iterators step one element at a time,
	// in either direction.
	Bidirectional Category = iota
	// RandomAccess iterators additionally jump by any offset
	// and measure the distance between two positions in O(1).
	RandomAccess
)

func (c Category) String() string {
	switch c {
	case Bidirectional:
		return "Bidirectional"
	case RandomAccess:
		return "RandomAccess"
	default:
		return "<invalid traits.Category>"
	}
}

// InputIterator is the least an algorithm in this module needs
// from an iterator of type I yielding elements of type T.
// Iterators are values: Next returns the moved iterator and
// leaves the receiver alone.
type InputIterator[I any, T any] interface {
	Next() I
	Get() T
	Equal(I) bool
	Category() Category
}

// BidirectionalIterator can also step backwards.
type BidirectionalIterator[I any, T any] interface {
	InputIterator[I, T]
	Prev() I
}

// RandomAccessIterator can jump by n elements and
// compute distances in constant time.
// a.Diff(b) is the number of elements from b to a,
// so it is negative when a precedes b.
type RandomAccessIterator[I any, T any] interface {
	BidirectionalIterator[I, T]
	Add(n int) I
	Diff(I) int
	At(n int) T
	Less(I) bool
}

// Distance returns the number of steps from first to last.
// It is O(1) for random access iterators and may be negative
// if last precedes first. Otherwise it walks the range, so
// last must be reachable from first.
func Distance[T any, I InputIterator[I, T]](first, last I) int {
	if first.Category() == RandomAccess {
		if ra, ok := any(last).(RandomAccessIterator[I, T]); ok {
			return ra.Diff(first)
		}
	}

	n := 0
	for ; !first.Equal(last); first = first.Next() {
		n++
	}
	return n
}

// Advance returns it moved by n steps, backwards if n is negative.
func Advance[T any, I BidirectionalIterator[I, T]](it I, n int) I {
	if it.Category() == RandomAccess {
		if ra, ok := any(it).(RandomAccessIterator[I, T]); ok {
			return ra.Add(n)
		}
	}

	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = it.Prev()
	}
	return it
}
