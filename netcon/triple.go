// Package netcon — closed-form optimizer for exactly three tensors.
//
// For N = 3 the whole search space is three candidate trees, and their
// total costs factor through six dimension products derived in one pass
// over the labels: the "outer" product of each tensor (labels it alone
// carries) and the "shared" product of each pair (labels carried by
// exactly that pair). No enumeration machinery is needed.
package netcon

import (
	"math"

	"github.com/katalvlaran/tnet/core"
)

// tripleCandidates fixes the evaluation order [3 [1 2]], [1 [2 3]],
// [2 [3 1]]; on equal totals the earlier candidate wins, keeping the
// result reproducible. Each row is (k, i, j) for the tree [k [i j]].
var tripleCandidates = [3][3]int{{3, 1, 2}, {1, 2, 3}, {2, 3, 1}}

// optimizeTriple returns the cheapest of the three pairings of a
// three-tensor network in the shape [k [i j]]: the pair (i, j) is
// contracted first and tensor k last.
//
// For the tree [k [i j]] with outer products a1..a3 and pairwise shared
// products s12, s23, s31 the total is
//
//	(ai·ski)·(aj·sjk)·sij + a1·a2·a3·ski·sjk
//
// — the first contraction's kernel cost plus the final one's. Labels
// carried by all three tensors multiply both terms once (they stay
// shared through both contractions); well-formed networks have none.
//
// All arithmetic is checked; wraparound returns ErrCostOverflow.
//
// Complexity: O(total labels).
func optimizeTriple(enc *core.Encoding) (Result, error) {
	// One pass: classify every label by its membership mask over the
	// three tensors (bit t set ⇔ tensor t+1 carries the label) and fold
	// its dimension into the product for that mask.
	var (
		prod [8]uint64 // dimension product per membership mask
		m    int
		l    int
		ok   bool
	)
	for m = range prod {
		prod[m] = 1
	}
	masks := make(map[int]int, enc.Universe())
	for t := 0; t < 3; t++ {
		for _, l = range enc.Labels[t] {
			masks[l] |= 1 << t
		}
	}
	for l, m = range masks {
		if prod[m], ok = mulChecked(prod[m], uint64(enc.Dims[l])); !ok {
			return Result{}, ErrCostOverflow
		}
	}

	var (
		a  = [4]uint64{0, prod[0b001], prod[0b010], prod[0b100]} // outer products, 1-based
		s  = [4][4]uint64{}                                      // shared products, s[i][j]
		tA = prod[0b111]                                         // carried by all three
	)
	s[1][2], s[2][1] = prod[0b011], prod[0b011]
	s[2][3], s[3][2] = prod[0b110], prod[0b110]
	s[3][1], s[1][3] = prod[0b101], prod[0b101]

	var (
		bestCost uint64 = math.MaxUint64
		bestIdx         = -1
		total    uint64
		err      error
	)
	for ci, cand := range tripleCandidates {
		k, i, j := cand[0], cand[1], cand[2]
		total, err = tripleTotal(a, s, tA, k, i, j)
		if err != nil {
			return Result{}, err
		}
		if bestIdx < 0 || total < bestCost {
			bestCost = total
			bestIdx = ci
		}
	}
	if bestCost > math.MaxInt64 {
		return Result{}, ErrCostOverflow
	}

	k, i, j := tripleCandidates[bestIdx][0], tripleCandidates[bestIdx][1], tripleCandidates[bestIdx][2]
	tree := &Tree{
		Left:  &Tree{Leaf: k},
		Right: &Tree{Left: &Tree{Leaf: i}, Right: &Tree{Leaf: j}},
	}

	return Result{Tree: tree, Cost: int64(bestCost)}, nil
}

// tripleTotal evaluates the checked total cost of the tree [k [i j]]:
// inner kernel cost (ai·ski)·(aj·sjk)·sij plus outer kernel cost
// a1·a2·a3·ski·sjk, both scaled by the all-shared product.
//
// Complexity: O(1).
func tripleTotal(a [4]uint64, s [4][4]uint64, all uint64, k, i, j int) (uint64, error) {
	inner, err := mulSeq(a[i], s[k][i], a[j], s[j][k], s[i][j], all)
	if err != nil {
		return 0, err
	}
	outer, err := mulSeq(a[1], a[2], a[3], s[k][i], s[j][k], all)
	if err != nil {
		return 0, err
	}
	total := inner + outer
	if total < inner {
		return 0, ErrCostOverflow
	}

	return total, nil
}

// mulSeq multiplies its factors with wraparound checks.
//
// Complexity: O(len(fs)).
func mulSeq(fs ...uint64) (uint64, error) {
	var (
		p  uint64 = 1
		ok bool
	)
	for _, f := range fs {
		if p, ok = mulChecked(p, f); !ok {
			return 0, ErrCostOverflow
		}
	}

	return p, nil
}
