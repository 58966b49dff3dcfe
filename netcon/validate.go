// Package netcon - validation utilities shared by the optimizers.
//
// This file contains small, tight helpers that:
//  1. Validate Options combinations (algorithm, time budget).
//  2. Validate encodings defensively (shape, dimension table, ranges),
//     even though core constructors already enforce the same contract.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from
//     types.go, with core sentinels forwarded as-is for encoding
//     content violations (they are core's domain).
package netcon

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/tnet/core"
)

// validateOptions checks internal consistency of Options without
// referencing the network.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// Negative durations are undefined for a budget.
	if opts.TimeLimit < 0 {
		return ErrBadTimeLimit
	}

	// Accept only known algorithms.
	switch opts.Algo {
	case SubsetDP, BranchAndBound, BranchAndBoundMemo:
		return nil
	default:
		return ErrUnsupportedAlgorithm
	}
}

// validateEncoding verifies an encoding's shape and content: non-nil,
// non-empty, positive dimensions, labels within the table. Encodings
// built by core.Encode / core.FromLabels always pass; the checks guard
// hand-assembled structs.
//
// Complexity: O(total labels + universe).
func validateEncoding(enc *core.Encoding) error {
	if enc == nil {
		return ErrNilEncoding
	}
	if enc.N() == 0 {
		return core.ErrEmptyNetwork
	}

	var (
		d   int64
		lbl int
		i   int
	)
	for _, d = range enc.Dims {
		if d < 1 {
			return core.ErrNonPositiveDim
		}
	}
	for i = range enc.Labels {
		for _, lbl = range enc.Labels[i] {
			if lbl < 0 || lbl >= len(enc.Dims) {
				return core.ErrLabelOutOfRange
			}
		}
	}

	return nil
}

// ensureSets rebuilds the bitset form in place when it is absent or not
// parallel to Labels (possible only for hand-assembled encodings).
// Label vectors stay authoritative either way.
//
// Complexity: O(1) when already parallel, O(total labels) to rebuild.
func ensureSets(enc *core.Encoding) {
	if len(enc.Sets) == len(enc.Labels) {
		ok := true
		for _, s := range enc.Sets {
			if s == nil {
				ok = false

				break
			}
		}
		if ok {
			return
		}
	}

	enc.Sets = make([]*bitset.BitSet, len(enc.Labels))
	var (
		i   int
		lbl int
	)
	for i = range enc.Labels {
		s := bitset.New(uint(len(enc.Dims)))
		for _, lbl = range enc.Labels[i] {
			s.Set(uint(lbl))
		}
		enc.Sets[i] = s
	}
}
