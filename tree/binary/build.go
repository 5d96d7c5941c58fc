package binary

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"

	"go.lepak.sg/containers/traits"
	"go.lepak.sg/containers/tree"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	return buildFrom(nodes)
}

func buildFrom(nodes []int) *Tree[int] {
	tr := New[int]()
	for _, n := range nodes {
		tr.Insert(n)
	}
	return tr
}

// BuildRandomBalanced builds a balanced binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
// Along the created binary tree, the number of attempts required
// to create the tree is also returned.
//
// The chance of a random insert order producing a balanced tree
// drops quickly with num. BuildRandomBalancedParallel can be given
// a deadline.
func BuildRandomBalanced(num int, seed int64) (*Tree[int], int) {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	var tr *Tree[int]
	attempts := 0

	for tr == nil || !tr.Balanced() {
		attempts++

		rd.Shuffle(num, func(i, j int) {
			nodes[i], nodes[j] = nodes[j], nodes[i]
		})

		tr = buildFrom(nodes)
	}

	return tr, attempts
}

var errFound = errors.New("balanced tree found")

// BuildRandomBalancedParallel is like BuildRandomBalanced, but
// workers goroutines search at once, worker w shuffling with seed+w.
// The first balanced tree found is returned along with the total
// number of attempts across all workers. If ctx is done first,
// its error is returned instead.
// All workers have exited by the time this returns.
func BuildRandomBalancedParallel(
	ctx context.Context, num int, seed int64, workers int,
) (*Tree[int], int, error) {
	if workers <= 0 {
		workers = 1
	}

	eg, ctx := errgroup.WithContext(ctx)

	var (
		once     sync.Once
		found    *Tree[int]
		attempts int64
	)

	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			rd := rand.New(rand.NewSource(seed + int64(w)))

			nodes := make([]int, num)
			for i := range nodes {
				nodes[i] = i
			}

			for {
				if err := ctx.Err(); err != nil {
					return err
				}

				atomic.AddInt64(&attempts, 1)
				rd.Shuffle(num, func(i, j int) {
					nodes[i], nodes[j] = nodes[j], nodes[i]
				})

				tr := buildFrom(nodes)
				if tr.Balanced() {
					once.Do(func() {
						found = tr
					})
					// cancels the other workers
					return errFound
				}
			}
		})
	}

	err := eg.Wait()
	if errors.Is(err, errFound) {
		return found, int(atomic.LoadInt64(&attempts)), nil
	}
	return nil, int(atomic.LoadInt64(&attempts)), err
}

// inOrderIndex maps each key of in to its position, and checks
// that pre holds the same keys.
func inOrderIndex[S ~[]T, T constraints.Ordered](pre, in S) (map[T]int, error) {
	if len(in) == 0 {
		return nil, errors.New("nothing to build")
	}

	if len(in) != len(pre) {
		return nil, errors.New("pre- and in-order traversals have different lengths")
	}

	inOrderMap := make(map[T]int, len(in))
	for i, v := range in {
		if _, ok := inOrderMap[v]; ok {
			return nil, errors.New("duplicated key in in-order traversal")
		}
		inOrderMap[v] = i
	}

	seen := make(map[T]struct{}, len(pre))
	for _, v := range pre {
		if _, ok := inOrderMap[v]; !ok {
			return nil, errors.New("pre-order key not found in in-order traversal")
		}
		if _, ok := seen[v]; ok {
			return nil, errors.New("duplicated key in pre-order traversal")
		}
		seen[v] = struct{}{}
	}

	return inOrderMap, nil
}

// BuildFromPreAndInOrderIter iteratively builds a binary tree
// from its pre- and in-order traversal.
// The tree orders its keys by their position in the in-order
// traversal, which is the usual order when in is sorted.
func BuildFromPreAndInOrderIter[S ~[]T, T constraints.Ordered](
	pre, in S) (*Tree[T], error) {
	// Iterative method. Time O(N^2) Space O(N) (1x nodes, 1x the inOrderMap)
	inOrderMap, err := inOrderIndex(pre, in)
	if err != nil {
		return nil, err
	}

	// The idea: pre-order visits every parent before its children,
	// so inserting in pre-order with keys ranked by their in-order
	// position walks down to exactly where each key belongs.
	tr := NewFunc(func(a, b T) int {
		return traits.Compare(inOrderMap[a], inOrderMap[b])
	})

	for _, toInsert := range pre {
		if !tr.Insert(toInsert) {
			// keys were checked for duplicates by inOrderIndex
			panic("duplicated key")
		}
	}

	return tr, nil
}

// BuildFromPreAndInOrderRec recursively builds a binary tree
// from its pre- and in-order traversal.
// The tree orders its keys like the one from BuildFromPreAndInOrderIter.
func BuildFromPreAndInOrderRec[S ~[]T, T constraints.Ordered](
	pre, in S) (*Tree[T], error) {
	// A dog on the internet told me how to do this
	// Recursive method. Time O(N^2) Space O(N) (stack frames)
	inOrderMap, err := inOrderIndex(pre, in)
	if err != nil {
		return nil, err
	}

	tr := NewFunc(func(a, b T) int {
		return traits.Compare(inOrderMap[a], inOrderMap[b])
	})
	tr.adopt(buildFromPreAndInOrderRecVisit(pre, in, tr.sentinel), len(in))

	return tr, nil
}

func buildFromPreAndInOrderRecVisit[S ~[]T, T constraints.Ordered](
	pre, in S, sentinel *tree.Node[T]) *tree.Node[T] {
	// N = len(pre) = len(in)
	// At least N calls to this function

	if len(pre) != len(in) {
		panic(fmt.Sprintf("invariant broken: "+
			"(len(pre) == %d) != (len(in) == %d)", len(pre), len(in)))
	}

	if len(pre) == 0 {
		return sentinel
	}

	x := pre[0]
	// O(N) but this gets smaller
	xi := slices.Index(in, x)
	if xi < 0 {
		panic("key in pre-order traversal not found in in-order traversal")
	}

	inleft, inright := in[0:xi], in[xi+1:]

	preleft, preright := pre[1:xi+1], pre[xi+1:]

	n := tree.NodeOf(x, sentinel)
	n.Left = buildFromPreAndInOrderRecVisit(preleft, inleft, sentinel)
	if !n.Left.Nil {
		n.Left.Parent = n
	}
	n.Right = buildFromPreAndInOrderRecVisit(preright, inright, sentinel)
	if !n.Right.Nil {
		n.Right.Parent = n
	}

	return n
}
