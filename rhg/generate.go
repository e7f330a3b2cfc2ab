// SPDX-License-Identifier: MIT
// Package: qlattice/rhg
//
// generate.go: variant dispatch and conversion to lattice.Graph.

package rhg

import (
	"fmt"

	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/vec"
)

// Generate builds the lattice of the selected variant.
func Generate(v Variant, p Params, opts ...Option) (*Lattice, error) {
	switch v {
	case VariantFaceEdge:
		return GenerateFaceEdge(p, opts...)
	case VariantSurfaceCode:
		return GenerateSurfaceCode(p, opts...)
	}
	return nil, fmt.Errorf("%s: unknown variant %d: %w", MethodGenerate, int(v), lattice.ErrInvalidParameter)
}

// Estimate validates p and returns the closed-form Counts for variant v.
func Estimate(v Variant, p Params) (Counts, error) {
	if err := ValidateParams(v, p); err != nil {
		return Counts{}, err
	}
	if v == VariantFaceEdge {
		return EstimateFaceEdge(p), nil
	}
	return EstimateSurfaceCode(p), nil
}

// ToGraph flattens l into the generic graph shape: every role becomes
// intermediate, every position is shifted by origin and rounded, and edges
// are renormalised. Node IDs are kept as generated.
//
// Positions keep the 2-place rounding of generated output, so origin is
// quantised to vec.Precision places: an origin with at most 2 decimals
// shifts every position by exactly that delta, a finer one does not.
// Complexity: O(V+E).
func (l *Lattice) ToGraph(origin vec.Vec3) lattice.Graph {
	g := lattice.Graph{
		Nodes: make([]lattice.Node, len(l.Nodes)),
		Edges: make([]lattice.Edge, len(l.Edges)),
	}
	for i, n := range l.Nodes {
		g.Nodes[i] = lattice.Node{
			ID:       n.ID,
			Position: n.Position.Add(origin).Round(),
			Role:     lattice.RoleIntermediate,
		}
	}
	for i, e := range l.Edges {
		g.Edges[i] = lattice.NewEdge(e.Source, e.Target)
	}
	return g
}

// Node returns the node with the given ID.
func (l *Lattice) Node(id string) (Node, bool) {
	for _, n := range l.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// CountKind returns the number of nodes of kind k.
func (l *Lattice) CountKind(k Kind) int {
	c := 0
	for _, n := range l.Nodes {
		if n.Kind == k {
			c++
		}
	}
	return c
}
