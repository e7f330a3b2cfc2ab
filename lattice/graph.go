// SPDX-License-Identifier: MIT
// Package: qlattice/lattice
//
// graph.go: whole-graph helpers: translation, cloning, structural checks.

package lattice

import (
	"fmt"

	"github.com/katalvlaran/qlattice/vec"
)

// NodeCount returns len(g.Nodes).
func (g Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns len(g.Edges).
func (g Graph) EdgeCount() int { return len(g.Edges) }

// Clone returns a deep copy of g.
func (g Graph) Clone() Graph {
	out := Graph{
		Nodes: make([]Node, len(g.Nodes)),
		Edges: make([]Edge, len(g.Edges)),
	}
	copy(out.Nodes, g.Nodes)
	copy(out.Edges, g.Edges)
	return out
}

// Translate returns a copy of g with every position shifted by delta and
// re-rounded to vec.Precision places, so a delta with more than 2 decimals
// is quantised. IDs, roles and edges are unchanged.
func (g Graph) Translate(delta vec.Vec3) Graph {
	out := g.Clone()
	if delta.IsZero() {
		return out
	}
	for i := range out.Nodes {
		out.Nodes[i].Position = out.Nodes[i].Position.Add(delta).Round()
	}
	return out
}

// Validate checks the structural guarantees every generator promises:
// unique non-empty node IDs, canonical edges (Source < Target, ID matching
// EdgeKey), unique edge IDs and endpoints drawn from the node set. It stops
// at the first problem.
// Complexity: O(V+E) time and space.
func (g Graph) Validate() error {
	nodes := make(map[string]struct{}, len(g.Nodes))
	for i, n := range g.Nodes {
		if n.ID == "" {
			return fmt.Errorf("Graph.Validate: nodes[%d]: empty id: %w", i, ErrInvalidParameter)
		}
		if _, dup := nodes[n.ID]; dup {
			return fmt.Errorf("Graph.Validate: duplicate node %q: %w", n.ID, ErrInvalidParameter)
		}
		if !n.Role.Valid() {
			return fmt.Errorf("Graph.Validate: node %q: role %q: %w", n.ID, n.Role, ErrInvalidParameter)
		}
		nodes[n.ID] = struct{}{}
	}

	edges := make(map[string]struct{}, len(g.Edges))
	for _, e := range g.Edges {
		if !(e.Source < e.Target) {
			return fmt.Errorf("Graph.Validate: edge %q not canonical: %w", e.ID, ErrInvalidParameter)
		}
		if e.ID != e.Source+EdgeSeparator+e.Target {
			return fmt.Errorf("Graph.Validate: edge id %q does not match endpoints: %w", e.ID, ErrInvalidParameter)
		}
		if _, dup := edges[e.ID]; dup {
			return fmt.Errorf("Graph.Validate: duplicate edge %q: %w", e.ID, ErrInvalidParameter)
		}
		if _, ok := nodes[e.Source]; !ok {
			return fmt.Errorf("Graph.Validate: edge %q: dangling source: %w", e.ID, ErrInvalidParameter)
		}
		if _, ok := nodes[e.Target]; !ok {
			return fmt.Errorf("Graph.Validate: edge %q: dangling target: %w", e.ID, ErrInvalidParameter)
		}
		edges[e.ID] = struct{}{}
	}
	return nil
}
