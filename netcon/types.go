// SPDX-License-Identifier: MIT
// Package netcon: options, result type and sentinel error set.
// This file defines ONLY the public configuration surface and the
// package-level sentinel errors. All algorithms MUST return these
// sentinels (or forward core sentinels as-is) and tests MUST check them
// via errors.Is. No algorithm panics on user input.

package netcon

import (
	"errors"
	"time"
)

// Sentinel errors returned by the netcon optimizers.
var (
	// ErrNilEncoding indicates that a nil *core.Encoding was passed to Solve.
	ErrNilEncoding = errors.New("netcon: encoding is nil")

	// ErrUnsupportedAlgorithm indicates that Options.Algo is not one of the
	// declared Algorithm constants.
	ErrUnsupportedAlgorithm = errors.New("netcon: unsupported algorithm")

	// ErrBadTimeLimit indicates a negative Options.TimeLimit.
	ErrBadTimeLimit = errors.New("netcon: TimeLimit must be non-negative")

	// ErrNetworkTooLarge indicates that the breadth-first optimizer was
	// asked for more tensors than its subset tables can hold (N > 24);
	// its O(2^N) memory is out of reach long before the mask width is.
	ErrNetworkTooLarge = errors.New("netcon: too many tensors for subset DP")

	// ErrCostOverflow indicates that an intermediate dimension product
	// D(A)·D(B)·D(R) wrapped the platform integer range. The whole call
	// fails; no partial tree is returned.
	ErrCostOverflow = errors.New("netcon: contraction cost overflows")

	// ErrTimeLimit indicates that a positive Options.TimeLimit elapsed
	// before the depth-first search completed.
	ErrTimeLimit = errors.New("netcon: time limit exceeded")

	// ErrInternalInvariant indicates a violated internal sanity check
	// (e.g. the pruning monotonicity assertion or a malformed tree).
	// It signals a bug in this package; callers should treat it as fatal.
	ErrInternalInvariant = errors.New("netcon: internal invariant violated")
)

// Algorithm selects the search strategy for networks of four or more
// tensors. Smaller networks are always solved by their closed forms.
type Algorithm int

const (
	// SubsetDP is the breadth-first optimal-tree dynamic program.
	// Time O(3^N · kernel), memory O(2^N). The default.
	SubsetDP Algorithm = iota

	// BranchAndBound is the depth-first constructive search with
	// incumbent pruning. Worst case (2N−3)!! orders; memory O(N²).
	BranchAndBound

	// BranchAndBoundMemo is BranchAndBound with a per-invocation cache
	// of pairwise contraction results keyed by the operand label
	// vectors. Identical output; fewer cost-kernel evaluations.
	BranchAndBoundMemo
)

// Options configures a Solve call.
//
// Algo      – search strategy for N ≥ 4 (default SubsetDP).
// TimeLimit – soft wall-clock budget for the depth-first search;
//
//	0 means unlimited. Checked sparsely (every 4096 node
//	events), so slight overshoot is possible. The subset DP
//	ignores it: its runtime is fixed by N alone.
type Options struct {
	Algo      Algorithm     // which optimizer to run for N >= 4
	TimeLimit time.Duration // soft deadline for BranchAndBound*, 0 = none
}

// DefaultOptions returns the canonical configuration: the breadth-first
// subset DP with no time limit.
func DefaultOptions() Options {
	return Options{Algo: SubsetDP}
}

// Result is the outcome of an optimization: the contraction tree and the
// total cost of executing it, equal to the sum of the per-pair kernel
// costs along the tree.
type Result struct {
	Tree *Tree // full binary tree over leaves 1..N
	Cost int64 // total contraction cost (0 for N <= 2)
}
