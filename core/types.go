// SPDX-License-Identifier: MIT
// Package core: structural tensor model and sentinel error set.
// This file defines ONLY the input-side types and the package-level
// sentinel errors. All encoder functions MUST return these sentinels and
// tests MUST check them via errors.Is. No function in this package panics
// on user input.

package core

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "core: ..." for consistency and easy
// grepping. DO NOT %w wrap these sentinels when returning directly; if
// context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the
// outer boundary — callers still match via errors.Is.

var (
	// ErrEmptyNetwork is returned when a network contains no tensors.
	ErrEmptyNetwork = errors.New("core: network has no tensors")

	// ErrNonPositiveDim is returned when any axis reports a dimension < 1.
	// Dimensions are sizes of summation ranges; zero or negative sizes are
	// invalid input, not empty tensors.
	ErrNonPositiveDim = errors.New("core: axis dimension must be >= 1")

	// ErrDuplicateAxis is returned when one tensor lists the same axis
	// twice. Contraction semantics over repeated axes within a single
	// operand are undefined, so the encoder rejects them at the boundary.
	ErrDuplicateAxis = errors.New("core: duplicate axis within one tensor")

	// ErrLabelOutOfRange is returned by FromLabels when a pre-encoded
	// label falls outside [0, len(dims)).
	ErrLabelOutOfRange = errors.New("core: label out of dimension-table range")

	// ErrDimMismatch is returned when the same axis name appears with two
	// different dimensions in one network.
	ErrDimMismatch = errors.New("core: axis re-declared with a different dimension")
)

// Axis is one tensor leg: an opaque, equality-comparable identity plus a
// positive integer dimension. Two axes denote the same summation range
// iff their Names are equal.
type Axis struct {
	Name string // stable identity within one network
	Dim  int64  // extent of the summation range, >= 1
}

// Tensor is an ordered list of axes. The optimizer is purely structural:
// a Tensor carries no values, only the shape of its index set. Axis names
// must be unique within one tensor.
type Tensor []Axis

// Network is an ordered, finite collection of tensors — the unit of one
// optimization call. Tensor positions (1-based) are the leaf ids that
// appear in the returned contraction tree.
type Network []Tensor
