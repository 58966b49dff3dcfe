// Package netcon computes optimal pairwise contraction orders for
// tensor networks.
//
// Given N tensors described only by their index labels and dimensions
// (see package core), netcon returns a full binary contraction tree and
// the total arithmetic cost of executing it, minimized exactly over all
// (2N−3)!! pairwise orders.
//
// It includes two exact algorithms over one shared cost kernel:
//
//   - BranchAndBound — depth-first constructive search with incumbent
//     pruning and an optional pairwise-cost memo cache.
//
//   - Complexity: O((2N−3)!!) worst case, heavily pruned in practice
//
//   - Memory:     O(N²) per path
//
//   - Practical for N ≲ 15 depending on pruning effectiveness.
//
//   - SubsetDP — breadth-first construction over all subsets of the N
//     tensors, building optimal subtrees bottom-up (the textbook
//     optimal-tree dynamic program).
//
//   - Complexity: O(3^N · kernel)
//
//   - Memory:     O(2^N)
//
// Both return globally optimal trees; on cost ties they may differ in
// shape but never in cost. For N ≤ 2 the trivial tree is returned with
// cost 0, and N = 3 is solved by a closed-form comparison of the three
// possible pairings regardless of the selected algorithm.
//
// The pairwise contraction of tensors A and B produces the symmetric
// difference of their index sets and costs
//
//	⌊√(D(A)·D(B)·D(R))⌋
//
// scalar multiplications, where D(S) is the product of the dimensions in
// S. All cost arithmetic is overflow-checked; wraparound surfaces
// ErrCostOverflow instead of a wrong tree.
//
// Use this package when you need provably optimal contraction orders on
// small-to-medium networks (N ≲ 20 for SubsetDP).
package netcon
