// Package builder — periodic chain (ring) topology.
package builder

import (
	"fmt"

	"github.com/katalvlaran/tnet/core"
)

// Ring returns a periodic chain of n tensors:
//
//	T1[b(n−1) b0], T2[b0 b1], …, Tn[b(n−2) b(n−1)]
//
// Every bond is shared by exactly two neighbours, so a full contraction
// reduces the ring to a scalar (when no physical legs are attached).
// This is the classic balanced-pairing benchmark shape.
//
// Errors: ErrTooFewTensors (n < 3; a two-ring degenerates into a double
// bond between the same pair), ErrBadBondDim, ErrBadPhysDim.
//
// Complexity: O(n).
func Ring(n int, opts ...BuilderOption) (core.Network, error) {
	if n < 3 {
		return nil, ErrTooFewTensors
	}
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	net := make(core.Network, n)
	var i int
	for i = 0; i < n; i++ {
		prev := (i + n - 1) % n
		t := core.Tensor{
			{Name: fmt.Sprintf("b%d", prev), Dim: cfg.bondDim},
			{Name: fmt.Sprintf("b%d", i), Dim: cfg.bondDim},
		}
		net[i] = withPhysLeg(t, i, cfg)
	}

	return net, nil
}
