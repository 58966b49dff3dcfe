// SPDX-License-Identifier: MIT
// Package builder: sentinel error set.
// Constructors MUST return these sentinels on invalid parameters and
// tests MUST check them via errors.Is. Constructors never panic.

package builder

import "errors"

var (
	// ErrTooFewTensors is returned when a topology needs more tensors
	// than requested (e.g. a ring of fewer than three).
	ErrTooFewTensors = errors.New("builder: too few tensors for topology")

	// ErrBadBondDim is returned when the configured bond dimension is < 1.
	ErrBadBondDim = errors.New("builder: bond dimension must be >= 1")

	// ErrBadPhysDim is returned when the configured physical dimension is
	// negative (0 means "no physical legs").
	ErrBadPhysDim = errors.New("builder: physical dimension must be >= 0")

	// ErrBadShape is returned when a grid dimension is < 1 or the grid
	// degenerates to a single tensor.
	ErrBadShape = errors.New("builder: invalid grid shape")

	// ErrBadExtra is returned when RandomSparse is asked for a negative
	// number of extra chords.
	ErrBadExtra = errors.New("builder: extra chord count must be >= 0")
)
