package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.lepak.sg/containers/internal/must"
	"go.lepak.sg/containers/iterator"
	"go.lepak.sg/containers/tree/binary"
)

func main() {
	// one reader for all prompts, or the first one would
	// swallow the buffered lines meant for the others
	stdin := bufio.NewReader(os.Stdin)

	fmt.Print("in-order: ")
	in := readInts(stdin)
	fmt.Println(in)

	fmt.Print("pre-order: ")
	pre := readInts(stdin)
	fmt.Println(pre)

	fmt.Print("mode (i/r): ")
	mode := strings.TrimSpace(readLine(stdin))

	var impl func([]int, []int) (*binary.Tree[int], error)
	switch mode {
	case "i":
		// actual type params of the function cannot be inferred
		// even though the variable has the fully instantiated type
		impl = binary.BuildFromPreAndInOrderIter[[]int, int]
	case "r":
		impl = binary.BuildFromPreAndInOrderRec[[]int, int]
	default:
		panic("not a valid mode")
	}

	tr := must.Get(impl(pre, in))

	fmt.Println("tree:")
	fmt.Print(tr.String())
	fmt.Println("walked in-order:", iterator.Collect[int](tr.Begin(), tr.End()))
}

func readLine(r *bufio.Reader) string {
	return must.Get(r.ReadString('\n'))
}

func readInts(r *bufio.Reader) []int {
	raws := strings.Fields(readLine(r))

	out := make([]int, len(raws))

	for i, rawNum := range raws {
		out[i] = must.Get(strconv.Atoi(rawNum))
	}
	return out
}
