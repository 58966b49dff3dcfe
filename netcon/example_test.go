package netcon_test

import (
	"fmt"

	"github.com/katalvlaran/tnet/builder"
	"github.com/katalvlaran/tnet/core"
	"github.com/katalvlaran/tnet/netcon"
)

// ExampleBreadthFirst optimizes a four-tensor matrix-product chain.
func ExampleBreadthFirst() {
	net, err := builder.Chain(4)
	if err != nil {
		fmt.Println("build failed:", err)

		return
	}

	res, err := netcon.BreadthFirst(net)
	if err != nil {
		fmt.Println("optimize failed:", err)

		return
	}

	fmt.Println(res.Tree, res.Cost)
	// Output: [1 [2 [3 4]]] 24
}

// ExampleDepthFirst shows the branch-and-bound search finding the
// balanced pairing of a ring — opposite edges first, then the trace.
func ExampleDepthFirst() {
	net, err := builder.Ring(4, builder.WithBondDim(10))
	if err != nil {
		fmt.Println("build failed:", err)

		return
	}

	res, err := netcon.DepthFirst(net, true)
	if err != nil {
		fmt.Println("optimize failed:", err)

		return
	}

	fmt.Println(res.Tree, res.Cost)
	// Output: [[1 2] [3 4]] 2100
}

// ExampleSolve feeds pre-encoded label vectors straight into the
// dispatcher, skipping axis names entirely.
func ExampleSolve() {
	enc, err := core.FromLabels(
		[][]int{{0, 1}, {1, 2}, {2, 3}},
		[]int64{2, 10, 10, 2},
	)
	if err != nil {
		fmt.Println("encode failed:", err)

		return
	}

	res, err := netcon.Solve(enc, netcon.DefaultOptions())
	if err != nil {
		fmt.Println("optimize failed:", err)

		return
	}

	fmt.Println(res.Tree, res.Cost)
	// Output: [3 [1 2]] 240
}
