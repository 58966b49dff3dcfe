// Package builder — seeded random sparse topology.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tnet/core"
)

// RandomSparse returns a connected random network: an open chain of n
// tensors (guaranteeing connectivity) plus extra chords between
// uniformly drawn distinct tensor pairs. Every chord gets a fresh bond
// axis "x<k>", so repeated pairs simply deepen that connection.
//
// The draw order is fixed and the source is seeded via WithSeed, so the
// same parameters always produce the same network — benchmarks stay
// comparable across runs.
//
// Errors: ErrTooFewTensors (n < 2), ErrBadExtra (extra < 0),
// ErrBadBondDim, ErrBadPhysDim.
//
// Complexity: O(n + extra).
func RandomSparse(n, extra int, opts ...BuilderOption) (core.Network, error) {
	if n < 2 {
		return nil, ErrTooFewTensors
	}
	if extra < 0 {
		return nil, ErrBadExtra
	}
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	net, err := Chain(n, opts...)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	var (
		k    int
		i, j int
	)
	for k = 0; k < extra; k++ {
		i = rng.Intn(n)
		j = rng.Intn(n - 1)
		if j >= i {
			j++ // uniform over pairs with j != i
		}
		ax := core.Axis{Name: fmt.Sprintf("x%d", k), Dim: cfg.bondDim}
		net[i] = append(net[i], ax)
		net[j] = append(net[j], ax)
	}

	return net, nil
}
