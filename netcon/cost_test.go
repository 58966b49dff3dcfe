package netcon

import (
	"math"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestContractVec_SymmetricDifference verifies the index law: the
// result is exactly (A ∪ B) \ (A ∩ B), a-only labels first in a's
// order, then b-only labels in b's order.
func TestContractVec_SymmetricDifference(t *testing.T) {
	dims := []int64{2, 3, 5, 7, 11}

	res, _, err := contractVec([]int{0, 1, 2}, []int{2, 3, 4}, dims)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 4}, res, "shared label 2 summed away")

	// Disjoint operands: an outer product keeps everything.
	res, cost, err := contractVec([]int{0}, []int{3}, dims)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, res)
	assert.Equal(t, int64(14), cost, "outer product costs D(A)·D(B)")

	// Identical operands: full contraction to a scalar.
	res, cost, err = contractVec([]int{1, 2}, []int{1, 2}, dims)
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.Equal(t, int64(15), cost, "sqrt(15·15·1)")
}

// TestContractVec_Cost pins the matrix-product case: [i4 k5]×[k5 j6]
// costs 4·5·6 = 120 multiplications.
func TestContractVec_Cost(t *testing.T) {
	dims := []int64{4, 5, 6} // i, k, j

	res, cost, err := contractVec([]int{0, 1}, []int{1, 2}, dims)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, res)
	assert.Equal(t, int64(120), cost)
}

// TestContractVec_Stable verifies that equal inputs always produce the
// same result vector, including label order.
func TestContractVec_Stable(t *testing.T) {
	dims := []int64{2, 2, 2, 2}
	a, b := []int{3, 0, 1}, []int{1, 2}

	first, _, err := contractVec(a, b, dims)
	require.NoError(t, err)
	second, _, err := contractVec(a, b, dims)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []int{3, 0, 2}, first, "a-only order, then b-only order")
}

// TestContractVec_Overflow verifies ErrCostOverflow on a wrapping
// triple product: the six axes of 10^6 in D(A)·D(B) push it past uint64.
func TestContractVec_Overflow(t *testing.T) {
	dims := []int64{1e6, 1e6, 1e6, 1e6, 1e6, 1e6}

	_, _, err := contractVec([]int{0, 1, 2}, []int{3, 4, 5}, dims)
	assert.ErrorIs(t, err, ErrCostOverflow)
}

// TestContractSet_MatchesVec verifies that the bitset kernel computes
// the same set and cost as the vector kernel.
func TestContractSet_MatchesVec(t *testing.T) {
	dims := []int64{2, 3, 5, 7}
	av, bv := []int{0, 1, 2}, []int{1, 3}

	vres, vcost, err := contractVec(av, bv, dims)
	require.NoError(t, err)

	a, b := bitset.New(4), bitset.New(4)
	for _, l := range av {
		a.Set(uint(l))
	}
	for _, l := range bv {
		b.Set(uint(l))
	}
	sres, scost, err := contractSet(a, b, dims)
	require.NoError(t, err)

	assert.Equal(t, vcost, scost)
	for _, l := range vres {
		assert.True(t, sres.Test(uint(l)), "label %d", l)
	}
	assert.Equal(t, uint(len(vres)), sres.Count())
}

// TestIsqrt pins the floor-sqrt contract at squares, off-by-one
// neighbours, and the uint64 edge.
func TestIsqrt(t *testing.T) {
	assert.Equal(t, uint64(0), isqrt(0))
	assert.Equal(t, uint64(1), isqrt(1))
	assert.Equal(t, uint64(1), isqrt(3))
	assert.Equal(t, uint64(2), isqrt(4))
	assert.Equal(t, uint64(120), isqrt(14400))
	assert.Equal(t, uint64(99999), isqrt(99999*99999+99998))
	assert.Equal(t, uint64(1)<<31, isqrt(uint64(1)<<62))
	assert.Equal(t, uint64(math.MaxUint32), isqrt(math.MaxUint64))
}

// TestAddChecked covers the overflow latch of cost accumulation.
func TestAddChecked(t *testing.T) {
	s, ok := addChecked(math.MaxInt64-1, 1)
	assert.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), s)

	_, ok = addChecked(math.MaxInt64, 1)
	assert.False(t, ok)
}

// TestMemoKey verifies that the cache key is injective over ordered
// operand pairs: no canonicalization, no boundary ambiguity.
func TestMemoKey(t *testing.T) {
	assert.NotEqual(t, memoKey([]int{1, 2}, []int{3}), memoKey([]int{3}, []int{1, 2}),
		"symmetric pairs key separately")
	assert.NotEqual(t, memoKey([]int{1}, []int{2, 3}), memoKey([]int{1, 2}, []int{3}),
		"length prefixes disambiguate the split point")
	assert.Equal(t, memoKey([]int{1, 2}, []int{3}), memoKey([]int{1, 2}, []int{3}))
	assert.NotEqual(t, memoKey(nil, []int{1}), memoKey([]int{1}, nil),
		"empty operands stay ordered")
}

// TestLexLess pins the subset order used by the DP's equal-size skip.
func TestLexLess(t *testing.T) {
	assert.True(t, lexLess([]int{0, 1}, []int{0, 2}))
	assert.True(t, lexLess([]int{0, 3}, []int{1, 2}), "smaller first element wins")
	assert.False(t, lexLess([]int{1, 2}, []int{0, 3}))
	assert.False(t, lexLess([]int{0, 1}, []int{0, 1}), "irreflexive")
	assert.True(t, lexLess([]int{0}, []int{0, 1}), "prefix ties break by cardinality")
}
