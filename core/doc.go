// Package core defines the structural tensor model shared by every
// optimizer in tnet: axes, tensors, networks, and the index-label
// encoder that normalizes them into dense integer labels.
//
// 🚀 What lives here?
//
//	• Axis     — one tensor leg: a stable name plus an integer dimension
//	• Tensor   — an ordered list of axes (no values; purely structural)
//	• Network  — an ordered list of tensors, the unit of one optimization
//	• Encoding — the encoder output: per-tensor label vectors, a dimension
//	             table, and a parallel bitset form of every tensor
//
// ✨ Key properties:
//
//   - Labels are dense integers starting at 0, assigned in first-seen
//     order while scanning tensors front to back, axes left to right.
//   - Axes shared by exactly two tensors are the ones summed when those
//     tensors are contracted; the encoder itself enforces nothing about
//     sharing — it only normalizes identities.
//   - All encoder state is per-call. Two Encode calls never share labels,
//     so labels must never be compared across encodings.
//
// ⚙️ Usage:
//
//	net := core.Network{
//	    {{Name: "i", Dim: 2}, {Name: "j", Dim: 3}},
//	    {{Name: "j", Dim: 3}, {Name: "k", Dim: 4}},
//	}
//	enc, err := core.Encode(net)
//	if err != nil {
//	    // ErrNonPositiveDim, ErrDuplicateAxis, ErrEmptyNetwork, ...
//	}
//	_ = enc.Labels // [[0 1] [1 2]]
//	_ = enc.Dims   // [2 3 4]
//
// Pre-encoded inputs (label vectors you produced yourself) enter through
// FromLabels, which validates ranges and rebuilds the bitset form.
package core
