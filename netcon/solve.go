// Package netcon - unified dispatcher for the contraction-order solvers.
//
// This file provides the canonical entry points:
//
//   - SolveNetwork: accept a raw core.Network, encode it, delegate to Solve.
//   - Solve: accept a pre-built encoding and route on N and on the
//     requested algorithm, applying strict validation.
//   - DepthFirst / BreadthFirst: thin convenience wrappers fixing the
//     strategy.
//
// Design principles:
//   - Deterministic: no randomness anywhere; ties resolve by fixed
//     visit order in every solver.
//   - Strict sentinels: only errors from types.go (plus forwarded core
//     sentinels); no fmt.Errorf where a sentinel suffices.
//   - Every returned tree passes the leaf-completeness check before it
//     leaves this package.
package netcon

import "github.com/katalvlaran/tnet/core"

// SolveNetwork encodes net (first-seen-order dense labels) and delegates
// to Solve. Use it for the raw index-object input form; pre-encoded
// label vectors enter through core.FromLabels + Solve.
//
// Errors: encoding sentinels from core, then everything Solve returns.
//
// Complexity: O(total axes) encoding + the chosen solver.
func SolveNetwork(net core.Network, opts Options) (Result, error) {
	enc, err := core.Encode(net)
	if err != nil {
		return Result{}, err
	}

	return Solve(enc, opts)
}

// Solve validates inputs and routes to the chosen solver.
//
// Dispatch on N:
//   - N = 1: tree 1, cost 0.
//   - N = 2: tree [1 2], cost 0. The single pairwise contraction's cost
//     is intentionally not charged: both search strategies short-circuit
//     for N ≤ 2, and the reported cost is defined as the optimizer's
//     search total, which is empty here. TreeCost mirrors this.
//   - N = 3: the closed-form three-tensor optimizer, regardless of
//     opts.Algo.
//   - N ≥ 4: opts.Algo (SubsetDP, BranchAndBound, BranchAndBoundMemo).
//
// The memo cache has no observable effect other than runtime: both
// BranchAndBound flavours return identical trees and costs.
//
// Errors: ErrNilEncoding, core.ErrEmptyNetwork, ErrBadTimeLimit,
// ErrUnsupportedAlgorithm, ErrNetworkTooLarge, ErrCostOverflow,
// ErrTimeLimit, ErrInternalInvariant, plus core sentinels for
// malformed hand-built encodings.
//
// Complexity: per chosen solver (see doc.go).
func Solve(enc *core.Encoding, opts Options) (Result, error) {
	// Stage 1 - unified validation (options, then encoding).
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := validateEncoding(enc); err != nil {
		return Result{}, err
	}

	// Stage 2 - trivial and closed-form sizes.
	n := enc.N()
	var (
		res Result
		err error
	)
	switch n {
	case 1:
		return Result{Tree: &Tree{Leaf: 1}, Cost: 0}, nil
	case 2:
		return Result{
			Tree: &Tree{Left: &Tree{Leaf: 1}, Right: &Tree{Leaf: 2}},
			Cost: 0,
		}, nil
	case 3:
		res, err = optimizeTriple(enc)
		if err != nil {
			return Result{}, err
		}

		return res, validateTree(res.Tree, n)
	}

	// Stage 3 - route by algorithm. The subset solver needs the bitset
	// form; rebuild it if a hand-assembled encoding lacks one.
	switch opts.Algo {
	case SubsetDP:
		ensureSets(enc)
		res, err = breadthFirst(enc)
	case BranchAndBound:
		res, err = depthFirst(enc, false, opts.TimeLimit)
	case BranchAndBoundMemo:
		res, err = depthFirst(enc, true, opts.TimeLimit)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
	if err != nil {
		return Result{}, err
	}

	// Stage 4 - leaf completeness before anything leaves the package.
	if err = validateTree(res.Tree, n); err != nil {
		return Result{}, err
	}

	return res, nil
}

// DepthFirst runs the depth-first branch-and-bound search on net, with
// or without the pairwise memo cache. One of the two public strategy
// entry points; N ≤ 3 short-circuits exactly as in Solve.
//
// Complexity: worst case (2N−3)!! orders, pruned; practical for N ≲ 15.
func DepthFirst(net core.Network, enableMemo bool) (Result, error) {
	algo := BranchAndBound
	if enableMemo {
		algo = BranchAndBoundMemo
	}

	return SolveNetwork(net, Options{Algo: algo})
}

// BreadthFirst runs the breadth-first subset DP on net. One of the two
// public strategy entry points; N ≤ 3 short-circuits exactly as in
// Solve.
//
// Complexity: O(3^N · kernel) time, O(2^N) space.
func BreadthFirst(net core.Network) (Result, error) {
	return SolveNetwork(net, Options{Algo: SubsetDP})
}
