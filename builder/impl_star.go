// Package builder — star topology.
package builder

import (
	"fmt"

	"github.com/katalvlaran/tnet/core"
)

// Star returns a network of one center tensor and k satellites. The
// center carries one bond "s<i>" per satellite; satellite i carries
// only its own bond (plus an optional physical leg). The center is
// tensor 1, satellites follow in order.
//
// The shape stresses optimizers asymmetrically: every useful
// contraction involves the (ever-shrinking) center.
//
// Errors: ErrTooFewTensors (k < 2), ErrBadBondDim, ErrBadPhysDim.
//
// Complexity: O(k).
func Star(k int, opts ...BuilderOption) (core.Network, error) {
	if k < 2 {
		return nil, ErrTooFewTensors
	}
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	net := make(core.Network, 0, k+1)

	center := make(core.Tensor, k)
	var i int
	for i = 0; i < k; i++ {
		center[i] = core.Axis{Name: fmt.Sprintf("s%d", i+1), Dim: cfg.bondDim}
	}
	net = append(net, center)

	for i = 0; i < k; i++ {
		sat := core.Tensor{{Name: fmt.Sprintf("s%d", i+1), Dim: cfg.bondDim}}
		net = append(net, withPhysLeg(sat, i+1, cfg))
	}

	return net, nil
}
