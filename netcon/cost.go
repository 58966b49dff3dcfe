// Package netcon — contraction-cost kernel shared by all optimizers.
//
// This file provides the two forms of the pairwise contraction kernel:
//
//   - contractVec — label-vector operands, ordered result vector;
//   - contractSet — label-bitset operands, bitset result.
//
// Both compute the same contract: the result index set is the symmetric
// difference of the operands, and the cost is ⌊√(D(A)·D(B)·D(R))⌋ where
// D(S) is the product of dimensions over S (empty product = 1).
//
// Design:
//   - Strict sentinels from types.go on any arithmetic wraparound.
//   - All products run through bits.Mul64; no unchecked multiplications
//     anywhere on the cost path.
//   - Deterministic result order for vectors: A-only labels in A's
//     order, then B-only labels in B's order.
//
// Complexity:
//   - contractVec: O(|A| + |B|) time, two maps (membership of B, shared labels).
//   - contractSet: O(universe/64) word operations.
package netcon

import (
	"math"
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

// mulChecked multiplies two uint64 values, reporting wraparound.
//
// Complexity: O(1).
func mulChecked(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)

	return lo, hi == 0
}

// addChecked adds two non-negative int64 costs, reporting wraparound.
//
// Complexity: O(1).
func addChecked(a, b int64) (int64, bool) {
	s := a + b

	return s, s >= a
}

// isqrt returns ⌊√x⌋ using the float64 square root corrected to the
// exact integer floor. The float estimate is within ±1 of the true root
// for every uint64 input, so a bounded adjustment suffices.
//
// Complexity: O(1).
func isqrt(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	r := uint64(math.Sqrt(float64(x)))
	// Cap so r*r below cannot wrap: ⌊√MaxUint64⌋ == 1<<32 − 1.
	if r > math.MaxUint32 {
		r = math.MaxUint32
	}
	for r*r > x {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= x {
		r++
	}

	return r
}

// dimProductVec returns the product of dims over a label vector
// (empty product = 1), reporting wraparound.
//
// Complexity: O(len(labels)).
func dimProductVec(labels []int, dims []int64) (uint64, bool) {
	var (
		p  uint64 = 1
		ok bool
	)
	for _, l := range labels {
		if p, ok = mulChecked(p, uint64(dims[l])); !ok {
			return 0, false
		}
	}

	return p, true
}

// dimProductSet returns the product of dims over a label bitset
// (empty product = 1), reporting wraparound.
//
// Complexity: O(popcount(s)).
func dimProductSet(s *bitset.BitSet, dims []int64) (uint64, bool) {
	var (
		p   uint64 = 1
		ok  bool
		l   uint
		has bool
	)
	for l, has = s.NextSet(0); has; l, has = s.NextSet(l + 1) {
		if p, ok = mulChecked(p, uint64(dims[l])); !ok {
			return 0, false
		}
	}

	return p, true
}

// pairCost computes ⌊√(da·db·dr)⌋ with the full triple product checked,
// so wraparound surfaces even when the rooted cost itself would fit.
//
// Complexity: O(1).
func pairCost(da, db, dr uint64) (int64, error) {
	p, ok := mulChecked(da, db)
	if !ok {
		return 0, ErrCostOverflow
	}
	if p, ok = mulChecked(p, dr); !ok {
		return 0, ErrCostOverflow
	}

	// The root of a uint64 always fits: ⌊√p⌋ < 1<<32.
	return int64(isqrt(p)), nil
}

// contractVec contracts two label-vector operands: the result is the
// symmetric difference of a and b (a-only labels in a's order, then
// b-only labels in b's order — stable for equal inputs), and the cost is
// ⌊√(D(a)·D(b)·D(result))⌋.
//
// Contract:
//   - Labels within each operand are distinct (guaranteed by core
//     encoding; behavior on duplicates is undefined).
//   - dims[l] >= 1 for every label l in either operand.
//
// Returns ErrCostOverflow if the triple dimension product wraps.
//
// Complexity: O(|a| + |b|) time, O(|a| + |b|) extra space.
func contractVec(a, b []int, dims []int64) ([]int, int64, error) {
	// Membership of b, for the "remove common labels" pass.
	inB := make(map[int]struct{}, len(b))
	var l int
	for _, l = range b {
		inB[l] = struct{}{}
	}

	res := make([]int, 0, len(a)+len(b))
	shared := make(map[int]struct{}, len(a))
	for _, l = range a {
		if _, ok := inB[l]; ok {
			shared[l] = struct{}{} // summed label, absent from the result
			continue
		}
		res = append(res, l)
	}
	for _, l = range b {
		if _, ok := shared[l]; ok {
			continue
		}
		res = append(res, l)
	}

	// Cost from the three dimension products.
	da, ok := dimProductVec(a, dims)
	if !ok {
		return nil, 0, ErrCostOverflow
	}
	db, ok := dimProductVec(b, dims)
	if !ok {
		return nil, 0, ErrCostOverflow
	}
	dr, ok := dimProductVec(res, dims)
	if !ok {
		return nil, 0, ErrCostOverflow
	}
	c, err := pairCost(da, db, dr)
	if err != nil {
		return nil, 0, err
	}

	return res, c, nil
}

// contractSet is the bitset form of contractVec: the result set is the
// symmetric difference a △ b, and the cost contract is identical.
//
// Complexity: O(universe/64) word ops plus O(popcount) for products.
func contractSet(a, b *bitset.BitSet, dims []int64) (*bitset.BitSet, int64, error) {
	res := a.SymmetricDifference(b)

	da, ok := dimProductSet(a, dims)
	if !ok {
		return nil, 0, ErrCostOverflow
	}
	db, ok := dimProductSet(b, dims)
	if !ok {
		return nil, 0, ErrCostOverflow
	}
	dr, ok := dimProductSet(res, dims)
	if !ok {
		return nil, 0, ErrCostOverflow
	}
	c, err := pairCost(da, db, dr)
	if err != nil {
		return nil, 0, err
	}

	return res, c, nil
}
