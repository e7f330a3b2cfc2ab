// SPDX-License-Identifier: MIT
// Package: qlattice/rhg
//
// options.go: functional options shared by both generators.
//
// Defaults:
//   • scheme   = per variant (face/edge: CellLocalKeyed, surface: PositionKeyed)
//   • maxNodes = lattice.DefaultMaxNodes

package rhg

import "github.com/katalvlaran/qlattice/lattice"

// Option customises a generator call.
type Option func(*config)

type config struct {
	scheme   lattice.IDScheme
	maxNodes int
}

func newConfig(def lattice.IDScheme, opts ...Option) config {
	cfg := config{scheme: def, maxNodes: lattice.DefaultMaxNodes}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithIDScheme overrides the variant's default ID scheme. Panics on an
// unknown scheme.
func WithIDScheme(s lattice.IDScheme) Option {
	if !s.Valid() {
		panic("rhg: WithIDScheme(unknown)")
	}
	return func(c *config) { c.scheme = s }
}

// WithMaxNodes overrides the node-count ceiling. Panics if n < 1.
func WithMaxNodes(n int) Option {
	if n < 1 {
		panic("rhg: WithMaxNodes(n<1)")
	}
	return func(c *config) { c.maxNodes = n }
}
