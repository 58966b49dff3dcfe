// Package builder — functional options.
//
// Options resolve into an immutable builderConfig before any topology
// code runs; constructors validate the resolved config once and then
// treat it as read-only. Same options in the same order ⇒ same config.
package builder

// builderConfig is the resolved, immutable configuration shared by all
// topology constructors.
type builderConfig struct {
	bondDim int64 // dimension of every shared (bond) axis
	physDim int64 // dimension of per-tensor dangling legs; 0 = none
	seed    int64 // RNG seed for stochastic constructors
}

// BuilderOption mutates the configuration during resolution.
type BuilderOption func(*builderConfig)

// WithBondDim sets the dimension of every bond axis. Default 2.
// Values < 1 are rejected by the constructor with ErrBadBondDim.
func WithBondDim(d int64) BuilderOption {
	return func(c *builderConfig) { c.bondDim = d }
}

// WithPhysDim attaches one dangling "physical" leg of dimension d to
// every site tensor. Default 0 (no physical legs). Negative values are
// rejected by the constructor with ErrBadPhysDim.
func WithPhysDim(d int64) BuilderOption {
	return func(c *builderConfig) { c.physDim = d }
}

// WithSeed fixes the RNG seed used by stochastic constructors
// (RandomSparse). Default 1. Deterministic topologies ignore it.
func WithSeed(s int64) BuilderOption {
	return func(c *builderConfig) { c.seed = s }
}

// newBuilderConfig resolves opts over the defaults.
//
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{bondDim: 2, physDim: 0, seed: 1}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	return cfg
}

// validate checks the resolved config once, before topology code runs.
//
// Complexity: O(1).
func (c builderConfig) validate() error {
	if c.bondDim < 1 {
		return ErrBadBondDim
	}
	if c.physDim < 0 {
		return ErrBadPhysDim
	}

	return nil
}
