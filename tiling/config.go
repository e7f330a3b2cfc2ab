// SPDX-License-Identifier: MIT
// Package: qlattice/tiling
//
// config.go: resolved generator configuration.
//
// Deterministic defaults:
//   • baseZ    = 0
//   • scheme   = lattice.CellLocalKeyed
//   • maxNodes = lattice.DefaultMaxNodes (1000)

package tiling

import "github.com/katalvlaran/qlattice/lattice"

type config struct {
	baseZ    float64
	scheme   lattice.IDScheme
	maxNodes int
}

func newConfig(opts ...Option) config {
	cfg := config{
		baseZ:    0,
		scheme:   lattice.CellLocalKeyed,
		maxNodes: lattice.DefaultMaxNodes,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
