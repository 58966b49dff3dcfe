// Package builder constructs deterministic tensor-network fixtures for
// tests, benchmarks and examples.
//
// 🚀 What lives here?
//
//	• Chain        — open matrix-product chain T1[b0 b1] T2[b1 b2] …
//	• Ring         — periodic chain (every bond shared by two tensors)
//	• Star         — one center sharing one leg with each satellite
//	• Grid         — open-boundary rows×cols lattice (PEPS-like)
//	• RandomSparse — a chain plus seeded random chords
//
// ✨ Design contract (strict):
//
//   - Determinism: same parameters, options and seed ⇒ identical
//     networks, axis names included. Randomness only ever comes from
//     the seeded source configured with WithSeed.
//   - Safety: never panic; constructors return sentinel errors.
//   - Functional options resolve into an immutable config before any
//     axis is created; no global state.
//
// ⚙️ Usage:
//
//	net, err := builder.Ring(4, builder.WithBondDim(10))
//	if err != nil { … }
//	res, err := netcon.BreadthFirst(net)
//
// Every constructor emits axis names that are unique per role ("b3",
// "p2", "h1.2", …), so the networks feed straight into core.Encode.
package builder
