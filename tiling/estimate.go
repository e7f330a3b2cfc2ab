// SPDX-License-Identifier: MIT
// Package: qlattice/tiling
//
// estimate.go: closed-form output sizes.
//
// Edge counting:
//   • A unit-cell edge (s, t, d) and its mirror (t, s, -d) describe the same
//     undirected edge family; they are collapsed into one class.
//   • The class (s, s, 0) is a self-loop and contributes nothing.
//   • A class with cell offset d contributes Π_axis max(0, n_axis - |d_axis|)
//     edges: the number of cells whose d-neighbour is still in range.

package tiling

import (
	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/vec"
)

// EstimateNodeCount returns cells × nodes-per-cell.
// Complexity: O(1).
func EstimateNodeCount(p Pattern, r CellRange) int {
	return lattice.SatMul(r.CellCount(p.Dimension), len(p.Cell.Nodes))
}

// EstimateEdgeCount returns the exact number of edges Generate would emit
// for a valid p and r.
// Complexity: O(E) time and space over the unit-cell edges.
func EstimateEdgeCount(p Pattern, r CellRange) int {
	z := r.zSpan(p.Dimension)
	nx, ny, nz := r.X.Len(), r.Y.Len(), z.Len()
	if nx == 0 || ny == 0 || nz == 0 {
		return 0
	}

	total := 0
	for _, e := range edgeClasses(p.Cell) {
		d := e.CellOffset
		total = lattice.SatAdd(total, lattice.SatMul(inRange(nx, d.X), inRange(ny, d.Y), inRange(nz, d.Z)))
	}
	return total
}

// inRange counts i ∈ [0, n) with i+d ∈ [0, n).
func inRange(n, d int) int {
	if d <= -n || d >= n {
		return 0
	}
	if d < 0 {
		d = -d
	}
	return n - d
}

// edgeClasses returns one representative per undirected edge family,
// skipping self-loops and edges with unknown endpoints.
func edgeClasses(c UnitCell) []UnitCellEdge {
	known := make(map[string]struct{}, len(c.Nodes))
	for _, n := range c.Nodes {
		known[n.ID] = struct{}{}
	}

	type classKey struct {
		s, t string
		d    vec.IVec3
	}
	seen := make(map[classKey]struct{}, len(c.Edges))
	out := make([]UnitCellEdge, 0, len(c.Edges))
	for _, e := range c.Edges {
		if _, ok := known[e.Source]; !ok {
			continue
		}
		if _, ok := known[e.Target]; !ok {
			continue
		}
		if e.Source == e.Target && e.CellOffset.IsZero() {
			continue
		}
		k := classKey{e.Source, e.Target, e.CellOffset}
		m := classKey{e.Target, e.Source, e.CellOffset.Neg()}
		if m.s < k.s || (m.s == k.s && m.t < k.t) || (m.s == k.s && m.t == k.t && m.d.Less(k.d)) {
			k = m
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, e)
	}
	return out
}
