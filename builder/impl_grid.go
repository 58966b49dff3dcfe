// Package builder — open-boundary grid topology.
package builder

import (
	"fmt"

	"github.com/katalvlaran/tnet/core"
)

// Grid returns a rows×cols lattice of tensors with open boundaries:
// site (r, c) shares a horizontal bond "h<r>.<c>" with its right
// neighbour and a vertical bond "v<r>.<c>" with the site below.
// Sites are numbered row-major, so tensor ids match reading order.
//
// This is the PEPS-like shape where contraction order matters most:
// row-by-row and column-by-column sweeps differ sharply in cost for
// non-square grids.
//
// Errors: ErrBadShape (rows < 1, cols < 1, or a 1×1 grid),
// ErrBadBondDim, ErrBadPhysDim.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int, opts ...BuilderOption) (core.Network, error) {
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, ErrBadShape
	}
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	net := make(core.Network, 0, rows*cols)
	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			var t core.Tensor
			if c > 0 {
				t = append(t, core.Axis{Name: fmt.Sprintf("h%d.%d", r, c-1), Dim: cfg.bondDim})
			}
			if c < cols-1 {
				t = append(t, core.Axis{Name: fmt.Sprintf("h%d.%d", r, c), Dim: cfg.bondDim})
			}
			if r > 0 {
				t = append(t, core.Axis{Name: fmt.Sprintf("v%d.%d", r-1, c), Dim: cfg.bondDim})
			}
			if r < rows-1 {
				t = append(t, core.Axis{Name: fmt.Sprintf("v%d.%d", r, c), Dim: cfg.bondDim})
			}
			net = append(net, withPhysLeg(t, r*cols+c, cfg))
		}
	}

	return net, nil
}
