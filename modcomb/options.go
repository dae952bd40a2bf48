// SPDX-License-Identifier: MIT

package modcomb

// Option customizes catalogue construction by mutating a config before
// generation begins. Options are applied in order; later ones win.
type Option func(*config)

// config aggregates construction knobs. Defaults are deterministic.
type config struct {
	maxCombinations int
}

// newConfig resolves opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{maxCombinations: DefaultMaxCombinations}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxCombinations sets the largest catalogue New agrees to build.
// New returns ErrCatalogueTooLarge instead of allocating beyond it, and
// also when the transition table of count·M cells would exceed the int32
// index range.
// Panics if n < 1 or if n does not fit the int32 transition table.
func WithMaxCombinations(n int) Option {
	if n < 1 || n > maxTableEntries {
		panic("modcomb: WithMaxCombinations(n) out of range")
	}
	return func(c *config) {
		c.maxCombinations = n
	}
}
