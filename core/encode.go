// Package core — index-label encoder.
//
// This file normalizes heterogeneous axis inputs into dense integer
// labels with a parallel dimension table, emitting both normalized
// tensor forms used downstream:
//
//   - label vectors  — one ordered []int per tensor (order of first
//     appearance within that tensor);
//   - label bitsets  — one *bitset.BitSet per tensor over the label
//     universe, for the subset-heavy breadth-first optimizer.
//
// Design:
//   - Deterministic: labels are assigned in first-seen order scanning
//     tensors 1..N and, within each tensor, left to right.
//   - Strict sentinels from types.go; no panics on user input.
//   - All output is freshly allocated; the caller owns it.
package core

import "github.com/bits-and-blooms/bitset"

// Encoding is the encoder output: the normalized view of one network.
// It is valid only for the optimization call it was built for — labels
// from different encodings are never comparable.
type Encoding struct {
	// Labels holds one ordered label vector per input tensor.
	// Labels are dense integers in [0, len(Dims)).
	Labels [][]int

	// Dims maps each label to its dimension: Dims[label] >= 1.
	Dims []int64

	// Sets holds the bitset form of each tensor, parallel to Labels.
	Sets []*bitset.BitSet
}

// N reports the number of tensors in the encoded network.
//
// Complexity: O(1).
func (e *Encoding) N() int { return len(e.Labels) }

// Universe reports the number of distinct labels (axes) in the network.
//
// Complexity: O(1).
func (e *Encoding) Universe() int { return len(e.Dims) }

// Encode assigns dense integer labels to the axes of net and returns the
// normalized Encoding.
//
// Contract:
//   - net must contain at least one tensor (ErrEmptyNetwork otherwise).
//   - Every axis dimension must be >= 1 (ErrNonPositiveDim otherwise).
//   - An axis name may not repeat within one tensor (ErrDuplicateAxis).
//   - An axis name re-declared with a different dimension anywhere in
//     the network is rejected with ErrDimMismatch.
//
// Complexity: O(total axes) time and space.
func Encode(net Network) (*Encoding, error) {
	if len(net) == 0 {
		return nil, ErrEmptyNetwork
	}

	var (
		labelOf = make(map[string]int) // axis name -> dense label
		enc     = &Encoding{Labels: make([][]int, len(net))}
		ti      int    // tensor position under scan
		t       Tensor // tensor under scan
		ax      Axis   // axis under scan
		lbl     int    // label of the current axis
		seen    bool   // whether the axis name was assigned before
	)

	// Stage 1: assign labels in first-seen order, validating as we scan.
	for ti, t = range net {
		row := make([]int, 0, len(t))
		local := make(map[int]struct{}, len(t)) // labels used by this tensor
		for _, ax = range t {
			if ax.Dim < 1 {
				return nil, ErrNonPositiveDim
			}
			lbl, seen = labelOf[ax.Name]
			if !seen {
				lbl = len(enc.Dims)
				labelOf[ax.Name] = lbl
				enc.Dims = append(enc.Dims, ax.Dim)
			} else if enc.Dims[lbl] != ax.Dim {
				return nil, ErrDimMismatch
			}
			if _, dup := local[lbl]; dup {
				return nil, ErrDuplicateAxis
			}
			local[lbl] = struct{}{}
			row = append(row, lbl)
		}
		enc.Labels[ti] = row
	}

	// Stage 2: build the parallel bitset form over the final universe.
	enc.Sets = setsFromLabels(enc.Labels, len(enc.Dims))

	return enc, nil
}

// FromLabels accepts pre-encoded input — per-tensor label vectors plus a
// dimension table — validates it, and completes it into an Encoding.
//
// Contract:
//   - labels must contain at least one tensor (ErrEmptyNetwork).
//   - Every dims entry must be >= 1 (ErrNonPositiveDim).
//   - Every label must lie in [0, len(dims)) (ErrLabelOutOfRange).
//   - A label may not repeat within one tensor (ErrDuplicateAxis).
//
// Both inputs are copied; the caller keeps ownership of its slices.
//
// Complexity: O(total labels + len(dims)).
func FromLabels(labels [][]int, dims []int64) (*Encoding, error) {
	if len(labels) == 0 {
		return nil, ErrEmptyNetwork
	}

	var (
		i, j int
		lbl  int
		d    int64
	)

	// Stage 1: dimension table sanity.
	for _, d = range dims {
		if d < 1 {
			return nil, ErrNonPositiveDim
		}
	}

	// Stage 2: label range and per-tensor uniqueness.
	enc := &Encoding{
		Labels: make([][]int, len(labels)),
		Dims:   append([]int64(nil), dims...),
	}
	for i = range labels {
		local := make(map[int]struct{}, len(labels[i]))
		row := make([]int, len(labels[i]))
		for j, lbl = range labels[i] {
			if lbl < 0 || lbl >= len(dims) {
				return nil, ErrLabelOutOfRange
			}
			if _, dup := local[lbl]; dup {
				return nil, ErrDuplicateAxis
			}
			local[lbl] = struct{}{}
			row[j] = lbl
		}
		enc.Labels[i] = row
	}

	// Stage 3: bitset form.
	enc.Sets = setsFromLabels(enc.Labels, len(dims))

	return enc, nil
}

// setsFromLabels builds one bitset per label vector over a universe of m
// labels. Inputs are assumed validated.
//
// Complexity: O(total labels), plus one bitset allocation per tensor.
func setsFromLabels(labels [][]int, m int) []*bitset.BitSet {
	sets := make([]*bitset.BitSet, len(labels))
	var (
		i   int
		lbl int
	)
	for i = range labels {
		s := bitset.New(uint(m))
		for _, lbl = range labels[i] {
			s.Set(uint(lbl))
		}
		sets[i] = s
	}

	return sets
}
