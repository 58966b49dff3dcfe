package netcon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tnet/core"
)

// tripleEnc builds an encoding for three tensors given label vectors
// and a dimension table.
func tripleEnc(t *testing.T, labels [][]int, dims []int64) *core.Encoding {
	t.Helper()
	enc, err := core.FromLabels(labels, dims)
	require.NoError(t, err)
	require.Equal(t, 3, enc.N())

	return enc
}

// TestOptimizeTriple_Chain pins the chain a(2) b(10) c(10) d(2):
// contracting the cheap inner pair first costs 200 + 40 = 240, and the
// outer-product pairing [2 [3 1]] loses.
func TestOptimizeTriple_Chain(t *testing.T) {
	enc := tripleEnc(t, [][]int{{0, 1}, {1, 2}, {2, 3}}, []int64{2, 10, 10, 2})

	res, err := optimizeTriple(enc)
	require.NoError(t, err)
	assert.Equal(t, int64(240), res.Cost)
	// [3 [1 2]] and [1 [2 3]] tie at 240; the earlier candidate wins.
	assert.Equal(t, "[3 [1 2]]", res.Tree.String())
}

// TestOptimizeTriple_PrefersCheapPair makes the middle pairing strictly
// cheapest and verifies it is chosen.
func TestOptimizeTriple_PrefersCheapPair(t *testing.T) {
	// T1[a], T2[a b], T3[b]; a=2, b=50. Contracting (2,3) first costs
	// 2·50 + 2 = 102; (1,2) first costs 100 + 50 = 150; (3,1) first is
	// an outer product and costs 100 + 100 = 200.
	enc := tripleEnc(t, [][]int{{0}, {0, 1}, {1}}, []int64{2, 50})

	res, err := optimizeTriple(enc)
	require.NoError(t, err)
	assert.Equal(t, "[1 [2 3]]", res.Tree.String())
	assert.Equal(t, int64(102), res.Cost)
}

// TestOptimizeTriple_Scalars handles fully shared and fully disjoint
// labels: T1 and T2 collapse to a scalar, T3 follows for free-ish.
func TestOptimizeTriple_Scalars(t *testing.T) {
	enc := tripleEnc(t, [][]int{{0}, {0}, {1}}, []int64{5, 7})

	res, err := optimizeTriple(enc)
	require.NoError(t, err)
	assert.Equal(t, "[3 [1 2]]", res.Tree.String())
	assert.Equal(t, int64(12), res.Cost, "5 mults to a scalar, then 7 scalings")
}

// TestOptimizeTriple_Overflow surfaces ErrCostOverflow instead of a
// wrapped total.
func TestOptimizeTriple_Overflow(t *testing.T) {
	big := int64(math.MaxInt64 / 2)
	enc := tripleEnc(t, [][]int{{0, 1}, {1, 2}, {2, 0}}, []int64{big, big, big})

	_, err := optimizeTriple(enc)
	assert.ErrorIs(t, err, ErrCostOverflow)
}

// TestSolve_TripleRegardlessOfAlgo: N = 3 always takes the closed form,
// whatever strategy the options name.
func TestSolve_TripleRegardlessOfAlgo(t *testing.T) {
	enc := tripleEnc(t, [][]int{{0, 1}, {1, 2}, {2, 3}}, []int64{2, 10, 10, 2})

	for _, algo := range []Algorithm{SubsetDP, BranchAndBound, BranchAndBoundMemo} {
		res, err := Solve(enc, Options{Algo: algo})
		require.NoError(t, err)
		assert.Equal(t, int64(240), res.Cost, "algo %d", algo)
		assert.Equal(t, "[3 [1 2]]", res.Tree.String(), "algo %d", algo)
	}
}
