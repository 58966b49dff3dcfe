// Package tnet finds optimal pairwise contraction orders for tensor
// networks — the binary tree that multiplies N index-labelled tensors
// down to one at minimum arithmetic cost.
//
// 🚀 What is tnet?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Core primitives: axes, tensors, label encoding & dimension tables
//		• A shared contraction-cost kernel (label vectors and label bitsets)
//		• A closed-form optimizer for three tensors
//		• Depth-first branch-and-bound search with optional memoization
//		• Breadth-first subset dynamic programming (the optimal-tree DP)
//		• Deterministic network builders for chains, rings, stars and grids
//
// ✨ Why choose tnet?
//
//   - Exact – both searches return globally optimal trees, never heuristics
//   - Deterministic – same network and options ⇒ identical tree and cost
//   - Rock-solid guarantees – sentinel errors, checked cost arithmetic
//   - Pure Go – no cgo; the heavy lifting is plain integer combinatorics
//
// Everything is organized under three subpackages:
//
//	core/    — Axis, Tensor, Network types and the index-label encoder
//	netcon/  — the contraction-order optimizers and the cost kernel
//	builder/ — deterministic tensor-network fixtures for tests & benchmarks
//
// Quick ASCII example, a four-tensor ring:
//
//	    T1───T2
//	    │     │
//	    T4───T3
//
//	contracts optimally as [[1 2] [3 4]] — opposite edges first.
//
// The optimizer is structural only: it never touches tensor values.
// Pair it with your favourite numeric tensor library to execute the
// returned tree.
//
//	go get github.com/katalvlaran/tnet
package tnet
