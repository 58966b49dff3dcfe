// Package builder — open chain topology.
package builder

import (
	"fmt"

	"github.com/katalvlaran/tnet/core"
)

// Chain returns an open matrix-product chain of n tensors:
//
//	T1[b0 b1], T2[b1 b2], …, Tn[b(n−1) bn]
//
// Interior bonds b1..b(n−1) are each shared by two neighbours and are
// summed when they contract; the end bonds b0 and bn dangle. With
// WithPhysDim(d > 0) every tensor additionally carries a dangling leg
// "p<i>" of dimension d.
//
// Errors: ErrTooFewTensors (n < 1), ErrBadBondDim, ErrBadPhysDim.
//
// Complexity: O(n).
func Chain(n int, opts ...BuilderOption) (core.Network, error) {
	if n < 1 {
		return nil, ErrTooFewTensors
	}
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	net := make(core.Network, n)
	var i int
	for i = 0; i < n; i++ {
		t := core.Tensor{
			{Name: fmt.Sprintf("b%d", i), Dim: cfg.bondDim},
			{Name: fmt.Sprintf("b%d", i+1), Dim: cfg.bondDim},
		}
		net[i] = withPhysLeg(t, i, cfg)
	}

	return net, nil
}

// withPhysLeg appends the dangling physical leg of site i when the
// config asks for one.
//
// Complexity: O(1).
func withPhysLeg(t core.Tensor, i int, cfg builderConfig) core.Tensor {
	if cfg.physDim == 0 {
		return t
	}

	return append(t, core.Axis{Name: fmt.Sprintf("p%d", i+1), Dim: cfg.physDim})
}
