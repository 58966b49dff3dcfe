// Package netcon — contraction trees and pair sequences.
//
// A search produces a linear pair sequence — "contract working-list
// positions a and b", N−1 times — while the public contract promises a
// nested binary tree. This file owns the Tree value, the sequence→tree
// assembler, and the independent tree-cost evaluator used by callers
// (and tests) to re-check a returned tree against the kernel.
//
// Design:
//   - Trees handed to callers are freshly allocated and share no nodes
//     with any internal cache; callers may reshape or discard them.
//   - Validation returns sentinels; assembler misuse is a bug in this
//     package and maps to ErrInternalInvariant.
package netcon

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/tnet/core"
)

// Tree is a node of a contraction tree. A node is either a leaf — Leaf
// holds a 1-based input tensor id and both children are nil — or an
// internal pair node with both children non-nil (Leaf is then 0).
//
// The tree reads bottom-up: each internal node contracts the results of
// its two children; the root yields the single remaining tensor.
type Tree struct {
	Leaf  int   // 1-based tensor id; valid iff Left == Right == nil
	Left  *Tree // first operand
	Right *Tree // second operand
}

// IsLeaf reports whether t is a leaf node.
//
// Complexity: O(1).
func (t *Tree) IsLeaf() bool { return t.Left == nil && t.Right == nil }

// Leaves returns the 1-based tensor ids of t's leaves, left to right.
//
// Complexity: O(nodes).
func (t *Tree) Leaves() []int {
	if t == nil {
		return nil
	}
	out := make([]int, 0, 2)

	return t.appendLeaves(out)
}

func (t *Tree) appendLeaves(out []int) []int {
	if t.IsLeaf() {
		return append(out, t.Leaf)
	}
	out = t.Left.appendLeaves(out)

	return t.Right.appendLeaves(out)
}

// String renders the tree in the compact bracket form used throughout
// the docs, e.g. "[3 [1 2]]". A bare leaf renders as its id.
func (t *Tree) String() string {
	if t == nil {
		return ""
	}
	var sb strings.Builder
	t.write(&sb)

	return sb.String()
}

func (t *Tree) write(sb *strings.Builder) {
	if t.IsLeaf() {
		sb.WriteString(strconv.Itoa(t.Leaf))

		return
	}
	sb.WriteByte('[')
	t.Left.write(sb)
	sb.WriteByte(' ')
	t.Right.write(sb)
	sb.WriteByte(']')
}

// clone returns a deep copy of t. Used to detach returned trees from
// internal DP caches that share subtree nodes.
//
// Complexity: O(nodes).
func (t *Tree) clone() *Tree {
	if t == nil {
		return nil
	}
	if t.IsLeaf() {
		return &Tree{Leaf: t.Leaf}
	}

	return &Tree{Left: t.Left.clone(), Right: t.Right.clone()}
}

// buildTree assembles a pair sequence into a contraction tree.
//
// The working node list starts as the leaves 1..n. Each pair (a, b) —
// absolute positions into the *growing* list — appends the internal
// node [list[a], list[b]]; positions a and b are never read again. The
// final appended node is the tree.
//
// Contract:
//   - len(pairs) == n−1, all positions within the list at the moment of
//     consumption; violations are optimizer bugs ⇒ ErrInternalInvariant.
//
// Complexity: O(n) time and space.
func buildTree(n int, pairs [][2]int) (*Tree, error) {
	if n < 1 || len(pairs) != n-1 {
		return nil, ErrInternalInvariant
	}

	nodes := make([]*Tree, n, 2*n-1)
	var i int
	for i = 0; i < n; i++ {
		nodes[i] = &Tree{Leaf: i + 1}
	}

	var a, b int
	for _, p := range pairs {
		a, b = p[0], p[1]
		if a < 0 || b < 0 || a >= len(nodes) || b >= len(nodes) || a == b {
			return nil, ErrInternalInvariant
		}
		nodes = append(nodes, &Tree{Left: nodes[a], Right: nodes[b]})
	}

	return nodes[len(nodes)-1], nil
}

// TreeCost independently evaluates the total contraction cost of t over
// the encoded network enc, using the same kernel as the optimizers.
// It exists so callers (and tests) can verify that a returned Result's
// Cost equals the sum of per-pair costs along its Tree.
//
// The N ≤ 2 base cases charge nothing, matching Solve: for a two-leaf
// tree the single pairwise contraction's cost is not counted.
//
// Contract:
//   - Every leaf id must lie in [1, enc.N()] (ErrInternalInvariant
//     otherwise; a foreign tree is indistinguishable from a bug here).
//
// Complexity: O(nodes · kernel).
func TreeCost(t *Tree, enc *core.Encoding) (int64, error) {
	if t == nil || enc == nil {
		return 0, ErrInternalInvariant
	}
	if enc.N() <= 2 {
		return 0, nil
	}
	_, total, err := evalNode(t, enc)

	return total, err
}

// evalNode returns the uncontracted label vector of the subtree and the
// accumulated cost below it.
func evalNode(t *Tree, enc *core.Encoding) ([]int, int64, error) {
	if t.IsLeaf() {
		if t.Leaf < 1 || t.Leaf > enc.N() {
			return nil, 0, ErrInternalInvariant
		}

		return enc.Labels[t.Leaf-1], 0, nil
	}
	if t.Left == nil || t.Right == nil {
		return nil, 0, ErrInternalInvariant
	}

	la, ca, err := evalNode(t.Left, enc)
	if err != nil {
		return nil, 0, err
	}
	lb, cb, err := evalNode(t.Right, enc)
	if err != nil {
		return nil, 0, err
	}

	res, c, err := contractVec(la, lb, enc.Dims)
	if err != nil {
		return nil, 0, err
	}

	total, ok := addChecked(ca, cb)
	if !ok {
		return nil, 0, ErrCostOverflow
	}
	if total, ok = addChecked(total, c); !ok {
		return nil, 0, ErrCostOverflow
	}

	return res, total, nil
}

// validateTree checks leaf completeness: the flattened leaves of t must
// be exactly the multiset {1, …, n}. Every optimizer result passes
// through this before it is returned.
//
// Complexity: O(n).
func validateTree(t *Tree, n int) error {
	leaves := t.Leaves()
	if len(leaves) != n {
		return ErrInternalInvariant
	}
	seen := make([]bool, n+1)
	var id int
	for _, id = range leaves {
		if id < 1 || id > n || seen[id] {
			return ErrInternalInvariant
		}
		seen[id] = true
	}

	return nil
}
