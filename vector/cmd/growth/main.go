package main

import (
	"flag"
	"fmt"

	"go.lepak.sg/containers/internal/must"
	"go.lepak.sg/containers/vector"
)

var (
	num     = flag.Int("n", 100, "number of elements to push")
	reserve = flag.Int("r", 0, "capacity to reserve before pushing")
	erase   = flag.Int("e", 0, "number of elements to erase from the front afterwards")
)

// countingAllocator counts the calls the Vector makes on its storage.
type countingAllocator struct {
	vector.StdAllocator[int]
	allocs, frees int
}

func (a *countingAllocator) Allocate(n int) []int {
	a.allocs++
	return a.StdAllocator.Allocate(n)
}

func (a *countingAllocator) Deallocate(buf []int) {
	a.frees++
	a.StdAllocator.Deallocate(buf)
}

func main() {
	flag.Parse()

	alloc := &countingAllocator{}
	v := vector.New(vector.UseAllocator[int](alloc))

	must.Do(v.Reserve(*reserve))

	lastCap := v.Cap()
	fmt.Println("size:", v.Size(), "cap:", lastCap)

	for i := 0; i < *num; i++ {
		v.PushBack(i)
		if v.Cap() != lastCap {
			lastCap = v.Cap()
			fmt.Println("size:", v.Size(), "cap:", lastCap)
		}
	}

	if *erase > 0 {
		n := *erase
		if n > v.Size() {
			n = v.Size()
		}
		v.EraseRange(v.Begin(), v.Begin().Add(n))
		fmt.Println("after erase size:", v.Size(), "cap:", v.Cap())
	}

	fmt.Println("allocations:", alloc.allocs, "deallocations:", alloc.frees)
	fmt.Println("max size:", v.MaxSize())
}
