// SPDX-License-Identifier: MIT
// Package: qlattice/tiling
//
// options.go: functional options for Generate.
//
// Option constructors panic on meaningless values; Generate itself never
// panics.

package tiling

import (
	"math"

	"github.com/katalvlaran/qlattice/lattice"
)

// Option customises a Generate call.
type Option func(*config)

// WithBaseZ places a 2D pattern on the depth slice z. Ignored for 3D
// patterns. Panics on NaN or ±Inf.
func WithBaseZ(z float64) Option {
	if math.IsNaN(z) || math.IsInf(z, 0) {
		panic("tiling: WithBaseZ(non-finite)")
	}
	return func(c *config) { c.baseZ = z }
}

// WithIDScheme selects the global node-ID scheme. Panics on an unknown scheme.
// Under lattice.PositionKeyed, degenerate lattice vectors (zero or collinear)
// map distinct nodes to one position, so Generate always reports a node-ID
// collision (lattice.ErrInvalidParameter) for such patterns.
func WithIDScheme(s lattice.IDScheme) Option {
	if !s.Valid() {
		panic("tiling: WithIDScheme(unknown)")
	}
	return func(c *config) { c.scheme = s }
}

// WithMaxNodes overrides the node-count ceiling. Panics if n < 1.
func WithMaxNodes(n int) Option {
	if n < 1 {
		panic("tiling: WithMaxNodes(n<1)")
	}
	return func(c *config) { c.maxNodes = n }
}
