package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.lepak.sg/containers/iterator"
	"go.lepak.sg/containers/tree/binary"
)

var (
	seed     = flag.Int64("s", 0, "seed (default current unix time in ns)")
	num      = flag.Int("n", 10, "number of nodes in the tree")
	balanced = flag.Bool("b", false, "if true, keep building the tree until it is balanced")
	workers  = flag.Int("w", 1, "number of goroutines searching for a balanced tree")
	timeout  = flag.Duration("t", 10*time.Second, "give up searching for a balanced tree after this long")
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var tr *binary.Tree[int]
	attempts := 0

	switch {
	case *balanced && *workers > 1:
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()

		var err error
		tr, attempts, err = binary.BuildRandomBalancedParallel(ctx, *num, *seed, *workers)
		if err != nil {
			fmt.Println("gave up after", attempts, "attempts:", err)
			return
		}
	case *balanced:
		tr, attempts = binary.BuildRandomBalanced(*num, *seed)
	default:
		tr = binary.BuildRandom(*num, *seed)
	}

	preorder := make([]int, 0, *num)
	tr.PreOrder(func(k int) bool {
		preorder = append(preorder, k)
		return true
	})

	inorder := make([]int, 0, *num)
	for n := range tr.InOrderCoroutine().Items() {
		inorder = append(inorder, n)
	}

	reversed := iterator.Collect[int](tr.RBegin(), tr.REnd())

	fmt.Println("preorder:", preorder)
	fmt.Println("inorder:", inorder)
	fmt.Println("reversed:", reversed)

	fmt.Println("tree:")
	fmt.Println(tr.String())

	actual, ideal := tr.Height()
	fmt.Println("height:", actual, "ideal:", ideal)

	if *balanced {
		fmt.Println("attempts:", attempts)
	}
}
