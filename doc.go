// Package qlattice generates periodic lattice graphs for measurement-based
// quantum computing layouts.
//
// A lattice is described compactly and expanded into plain nodes and
// undirected edges:
//
//	• a repeating unit cell plus lattice vectors, tiled over a cell range
//	• a closed-form RHG rule, either the face/edge bipartite lattice or a
//	  rotated surface code with per-side X/Z boundaries
//
// Every generator estimates its output first and refuses work above a node
// ceiling (1000 by default). Output is deterministic: the same inputs give
// the same node IDs, positions and canonical edge IDs ("a--b", a < b).
//
// Packages:
//
//	vec/     : 3-vectors, integer cell vectors, 2-place rounding
//	lattice/ : Node, Edge, Graph, ID schemes, error taxonomy, size ceiling
//	tiling/  : unit-cell patterns, validation, estimation, generation
//	rhg/     : face/edge and surface-code generators
//	presets/ : named patterns loaded from HCL and YAML files
//	project/ : concurrent project graph with duplicate-aware merge
//	engine/  : estimate, cache and generate with logging and metrics
//
// The latticegen command under cmd/ drives all of the above from flags.
//
// Quick ASCII example, tiling.SquarePattern over cells [0,1]×[0,1]:
//
//	0_1_v───1_1_v
//	  │       │
//	0_0_v───1_0_v
//
//	go get github.com/katalvlaran/qlattice
package qlattice
