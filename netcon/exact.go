// Package netcon — breadth-first constructive optimizer (subset DP).
package netcon

import (
	"github.com/bits-and-blooms/bitset"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/tnet/core"
)

// subsetDPLimit caps the breadth-first optimizer. The DP tables hold
// one entry per nonempty subset of the inputs; beyond ~24 tensors the
// O(2^N) memory is out of reach regardless of patience.
const subsetDPLimit = 24

// breadthFirst solves the contraction-order problem exactly with the
// classical optimal-tree dynamic program over the powerset of the N
// input tensors. The dispatcher guarantees n >= 4.
//
// The per-invocation tables, all indexed by subset bitmask s:
//
//	cost[s] — optimal total cost to contract the tensors in s to one
//	          (−1 = not yet reached; singletons cost 0).
//	tree[s] — optimal subtree (nil for singletons; leaves are built
//	          on the fly).
//	inds[s] — uncontracted label bitset of the tensor that results
//	          from contracting s; independent of the partition used.
//
// Main loop, for subset sizes c = 2..n and partition sizes
// d = 1..⌊c/2⌋: every a ∈ S(d) is combined with every b ∈ S(c−d):
//
//  1. Skip unless a and b are disjoint (each input tensor may appear
//     at most once in a combined subtree).
//  2. When d == c−d, skip b lexicographically below a so each
//     unordered pair is visited exactly once.
//  3. μ = kernel cost on the cached operand index sets; inds[a∪b] is
//     stored on first contact.
//  4. μ += cost[a] + cost[b] (zero for singletons).
//  5. Strict improvement updates cost[a∪b] and tree[a∪b] — on ties
//     the earlier-visited pairing wins, keeping output reproducible.
//
// S(c) is enumerated with gonum's combin.Combinations, which emits
// c-element subsets in lexicographic element order — the order the
// tie-breaking rule is defined over.
//
// Errors: ErrNetworkTooLarge, ErrCostOverflow, ErrInternalInvariant.
//
// Complexity: O(3^N · kernel) time, O(2^N) space.
func breadthFirst(enc *core.Encoding) (Result, error) {
	n := enc.N()
	if n > subsetDPLimit {
		return Result{}, ErrNetworkTooLarge
	}

	var (
		size  = 1 << uint(n)
		cost  = make([]int64, size)
		trees = make([]*Tree, size)
		inds  = make([]*bitset.BitSet, size)
		i     int
	)
	for i = 1; i < size; i++ {
		cost[i] = -1
	}
	// Seed singletons from the encoding.
	for i = 0; i < n; i++ {
		cost[1<<uint(i)] = 0
		inds[1<<uint(i)] = enc.Sets[i].Clone()
	}

	// All c-element subsets per cardinality, in lexicographic order.
	// Operands never exceed n−1 elements (the full set is only ever a
	// union), so S(n) itself is not materialized.
	subsets := make([][][]int, n)
	for i = 1; i < n; i++ {
		subsets[i] = combin.Combinations(n, i)
	}

	var (
		c, d   int
		am, bm uint64
		um     uint64
		mu     int64
		total  int64
		res    *bitset.BitSet
		ok     bool
		err    error
	)
	for c = 2; c <= n; c++ {
		for d = 1; d <= c/2; d++ {
			for _, aElems := range subsets[d] {
				am = maskOf(aElems)
				for _, bElems := range subsets[c-d] {
					bm = maskOf(bElems)
					// 1. Operand subsets must be disjoint.
					if am&bm != 0 {
						continue
					}
					// 2. Visit unordered equal-size pairs once.
					if d == c-d && lexLess(bElems, aElems) {
						continue
					}

					// 3. Kernel on the cached operand index sets. Both
					// operands were completed in earlier rounds.
					if cost[am] < 0 || cost[bm] < 0 {
						return Result{}, ErrInternalInvariant
					}
					res, mu, err = contractSet(inds[am], inds[bm], enc.Dims)
					if err != nil {
						return Result{}, err
					}
					um = am | bm
					if inds[um] == nil {
						inds[um] = res // identical for every partition of um
					}

					// 4. Charge the operands' own optimal costs.
					if total, ok = addChecked(mu, cost[am]); !ok {
						return Result{}, ErrCostOverflow
					}
					if total, ok = addChecked(total, cost[bm]); !ok {
						return Result{}, ErrCostOverflow
					}

					// 5. Strict improvement only (first-visited wins ties).
					if cost[um] == -1 || total < cost[um] {
						cost[um] = total
						trees[um] = &Tree{
							Left:  subTree(trees, am, aElems),
							Right: subTree(trees, bm, bElems),
						}
					}
				}
			}
		}
	}

	full := uint64(size - 1)
	if trees[full] == nil || cost[full] < 0 {
		return Result{}, ErrInternalInvariant
	}

	// Detach the result from the DP cache: subtree nodes are shared
	// across table entries, the caller's tree must not be.
	return Result{Tree: trees[full].clone(), Cost: cost[full]}, nil
}

// subTree resolves the subtree for an operand subset: a fresh leaf for
// singletons, the cached optimal subtree otherwise.
//
// Complexity: O(1).
func subTree(trees []*Tree, mask uint64, elems []int) *Tree {
	if len(elems) == 1 {
		return &Tree{Leaf: elems[0] + 1}
	}

	return trees[mask]
}

// maskOf folds sorted element indices into a subset bitmask.
//
// Complexity: O(len(elems)).
func maskOf(elems []int) uint64 {
	var m uint64
	for _, e := range elems {
		m |= 1 << uint(e)
	}

	return m
}

// lexLess reports whether subset a precedes subset b lexicographically:
// elements compared in ascending order, ties broken by cardinality.
// Inputs are sorted ascending (combin.Combinations order).
//
// Complexity: O(min(len(a), len(b))).
func lexLess(a, b []int) bool {
	var i int
	for i = 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
