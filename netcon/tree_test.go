package netcon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tnet/core"
)

// TestBuildTree_Assembly verifies the growing-list assembler on the
// canonical balanced and chain shapes.
func TestBuildTree_Assembly(t *testing.T) {
	// Balanced: contract (1,2), then (3,4), then the two partials.
	tree, err := buildTree(4, [][2]int{{0, 1}, {2, 3}, {4, 5}})
	require.NoError(t, err)
	assert.Equal(t, "[[1 2] [3 4]]", tree.String())

	// Chain: each partial immediately swallows the next leaf.
	tree, err = buildTree(4, [][2]int{{0, 1}, {4, 2}, {5, 3}})
	require.NoError(t, err)
	assert.Equal(t, "[[[1 2] 3] 4]", tree.String())

	// Single tensor: no pairs, bare leaf.
	tree, err = buildTree(1, nil)
	require.NoError(t, err)
	assert.Equal(t, "1", tree.String())
	assert.True(t, tree.IsLeaf())
}

// TestBuildTree_Invariants maps assembler misuse to ErrInternalInvariant.
func TestBuildTree_Invariants(t *testing.T) {
	_, err := buildTree(3, [][2]int{{0, 1}})
	assert.ErrorIs(t, err, ErrInternalInvariant, "wrong sequence length")

	_, err = buildTree(2, [][2]int{{0, 5}})
	assert.ErrorIs(t, err, ErrInternalInvariant, "position beyond the list")

	_, err = buildTree(2, [][2]int{{1, 1}})
	assert.ErrorIs(t, err, ErrInternalInvariant, "self-pair")

	_, err = buildTree(0, nil)
	assert.ErrorIs(t, err, ErrInternalInvariant, "no tensors")
}

// TestTree_Leaves verifies left-to-right flattening.
func TestTree_Leaves(t *testing.T) {
	tree, err := buildTree(4, [][2]int{{2, 3}, {0, 4}, {1, 5}})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3, 4}, tree.Leaves())
}

// TestValidateTree accepts complete leaf sets and rejects duplicates,
// gaps and out-of-range ids.
func TestValidateTree(t *testing.T) {
	good, err := buildTree(3, [][2]int{{0, 1}, {3, 2}})
	require.NoError(t, err)
	assert.NoError(t, validateTree(good, 3))

	dup := &Tree{Left: &Tree{Leaf: 1}, Right: &Tree{Leaf: 1}}
	assert.ErrorIs(t, validateTree(dup, 2), ErrInternalInvariant)

	short := &Tree{Leaf: 1}
	assert.ErrorIs(t, validateTree(short, 2), ErrInternalInvariant)

	oob := &Tree{Left: &Tree{Leaf: 1}, Right: &Tree{Leaf: 3}}
	assert.ErrorIs(t, validateTree(oob, 2), ErrInternalInvariant)
}

// TestTreeCost_MatchesKernel re-evaluates a known tree: the 3-chain of
// dims a(2) b(10) c(10) d(2) costs 200 + 40 along [3 [1 2]].
func TestTreeCost_MatchesKernel(t *testing.T) {
	enc, err := core.FromLabels([][]int{{0, 1}, {1, 2}, {2, 3}}, []int64{2, 10, 10, 2})
	require.NoError(t, err)

	tree := &Tree{
		Left:  &Tree{Leaf: 3},
		Right: &Tree{Left: &Tree{Leaf: 1}, Right: &Tree{Leaf: 2}},
	}
	cost, err := TreeCost(tree, enc)
	require.NoError(t, err)
	assert.Equal(t, int64(240), cost)
}

// TestTreeCost_TwoTensorBaseCase charges nothing for N <= 2, mirroring
// Solve's base-case contract.
func TestTreeCost_TwoTensorBaseCase(t *testing.T) {
	enc, err := core.FromLabels([][]int{{0, 1}, {1, 2}}, []int64{4, 5, 6})
	require.NoError(t, err)

	tree := &Tree{Left: &Tree{Leaf: 1}, Right: &Tree{Leaf: 2}}
	cost, err := TreeCost(tree, enc)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cost)
}

// TestTreeCost_ForeignLeaf treats a leaf outside [1, N] as a fatal bug.
func TestTreeCost_ForeignLeaf(t *testing.T) {
	enc, err := core.FromLabels([][]int{{0}, {0}, {1}}, []int64{2, 2})
	require.NoError(t, err)

	bad := &Tree{Left: &Tree{Leaf: 4}, Right: &Tree{Left: &Tree{Leaf: 1}, Right: &Tree{Leaf: 2}}}
	_, err = TreeCost(bad, enc)
	assert.ErrorIs(t, err, ErrInternalInvariant)
}

// TestTree_Clone verifies deep detachment: mutating the copy leaves the
// original untouched.
func TestTree_Clone(t *testing.T) {
	orig, err := buildTree(3, [][2]int{{0, 1}, {3, 2}})
	require.NoError(t, err)

	cp := orig.clone()
	require.Equal(t, orig.String(), cp.String())

	cp.Left.Left.Leaf = 99
	assert.Equal(t, "[[1 2] 3]", orig.String())
	assert.NotEqual(t, orig.String(), cp.String())
}
