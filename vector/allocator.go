package vector

import (
	"math"
	"unsafe"
)

// Allocator supplies storage to a Vector.
// Allocate must return a slice of exactly n zero-valued slots.
// A Vector calls Construct on a slot before it holds a live element
// and Destroy once it stops holding one, and hands every slice it
// got from Allocate back to Deallocate when it is done with it.
type Allocator[T any] interface {
	Allocate(n int) []T
	Deallocate(buf []T)
	Construct(p *T, v T)
	Destroy(p *T)
	MaxSize() int
}

var _ Allocator[int] = StdAllocator[int]{}

// StdAllocator allocates with make and leaves freeing to the
// garbage collector. It is the default for every Vector.
type StdAllocator[T any] struct{}

func (StdAllocator[T]) Allocate(n int) []T {
	return make([]T, n)
}

func (StdAllocator[T]) Deallocate([]T) {}

func (StdAllocator[T]) Construct(p *T, v T) {
	*p = v
}

// Destroy zeroes the slot, so that if T holds pointers
// the dead slot does not keep their targets alive.
func (StdAllocator[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

// MaxSize is the largest n for which Allocate could succeed in theory.
func (StdAllocator[T]) MaxSize() int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return math.MaxInt
	}
	return int(uintptr(math.MaxInt) / size)
}
