// SPDX-License-Identifier: MIT
// Package: qlattice/project
//
// merge.go: duplicate-aware bulk insertion of a generated graph.

package project

import (
	"fmt"

	"github.com/katalvlaran/qlattice/lattice"
)

// Merge adds the nodes and edges of in whose IDs are not yet stored.
//
// Implementation:
//   - Stage 1: Plan nodes. Stored IDs and repeats within in are skipped.
//   - Stage 2: Plan edges. Each edge is renormalised; its endpoints must be
//     stored or planned, otherwise the merge fails with ErrNodeNotFound.
//     Stored edge IDs and repeats are skipped; self-loops are rejected.
//   - Stage 3: Apply the plan.
//
// All three stages run under one write lock and nothing is applied when
// Stage 1 or 2 fails.
//
// Complexity: O(V+E) time and space.
func (g *Graph) Merge(in lattice.Graph) (MergeReport, error) {
	var rep MergeReport

	g.mu.Lock()
	defer g.mu.Unlock()

	// Stage 1
	newNodes := make([]lattice.Node, 0, len(in.Nodes))
	planned := make(map[string]struct{}, len(in.Nodes))
	for i, n := range in.Nodes {
		if n.ID == "" {
			return MergeReport{}, fmt.Errorf("project.Merge: nodes[%d]: %w", i, ErrEmptyNodeID)
		}
		n.Role = n.Role.OrDefault()
		if !n.Role.Valid() {
			return MergeReport{}, fmt.Errorf("project.Merge: node %q role %q: %w", n.ID, n.Role, lattice.ErrInvalidParameter)
		}
		if _, stored := g.nodes[n.ID]; stored {
			rep.SkippedNodes++
			continue
		}
		if _, dup := planned[n.ID]; dup {
			rep.SkippedNodes++
			continue
		}
		planned[n.ID] = struct{}{}
		newNodes = append(newNodes, n)
	}

	// Stage 2
	newEdges := make([]lattice.Edge, 0, len(in.Edges))
	plannedEdges := make(map[string]struct{}, len(in.Edges))
	for _, raw := range in.Edges {
		if raw.Source == raw.Target {
			return MergeReport{}, fmt.Errorf("project.Merge: edge %q: %w", raw.ID, ErrLoopNotAllowed)
		}
		e := lattice.NewEdge(raw.Source, raw.Target)
		for _, id := range [2]string{e.Source, e.Target} {
			_, stored := g.nodes[id]
			_, plan := planned[id]
			if !stored && !plan {
				return MergeReport{}, fmt.Errorf("project.Merge: edge %q endpoint %q: %w", e.ID, id, ErrNodeNotFound)
			}
		}
		if _, stored := g.edges[e.ID]; stored {
			rep.SkippedEdges++
			continue
		}
		if _, dup := plannedEdges[e.ID]; dup {
			rep.SkippedEdges++
			continue
		}
		plannedEdges[e.ID] = struct{}{}
		newEdges = append(newEdges, e)
	}

	// Stage 3
	for _, n := range newNodes {
		g.putNode(n)
	}
	for _, e := range newEdges {
		g.putEdge(e)
	}
	rep.AddedNodes = len(newNodes)
	rep.AddedEdges = len(newEdges)
	return rep, nil
}
