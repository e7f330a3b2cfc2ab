// SPDX-License-Identifier: MIT
// Package: qlattice/project
//
// methods.go: node and edge lifecycle and queries.

package project

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qlattice/lattice"
)

// AddNode stores n. The empty role is stored as intermediate.
//
// Errors:
//   - ErrEmptyNodeID if n.ID == "".
//   - lattice.ErrInvalidParameter for an unknown role.
//   - ErrNodeExists if the ID is already stored.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n lattice.Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	n.Role = n.Role.OrDefault()
	if !n.Role.Valid() {
		return fmt.Errorf("project.AddNode: node %q role %q: %w", n.ID, n.Role, lattice.ErrInvalidParameter)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[n.ID]; ok {
		return fmt.Errorf("project.AddNode: %q: %w", n.ID, ErrNodeExists)
	}
	g.putNode(n)
	return nil
}

// AddEdge stores the undirected edge a–b in canonical form and returns it.
//
// Errors: ErrEmptyNodeID, ErrLoopNotAllowed, ErrNodeNotFound (either
// endpoint missing), ErrEdgeExists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string) (lattice.Edge, error) {
	if a == "" || b == "" {
		return lattice.Edge{}, ErrEmptyNodeID
	}
	if a == b {
		return lattice.Edge{}, fmt.Errorf("project.AddEdge: %q: %w", a, ErrLoopNotAllowed)
	}
	e := lattice.NewEdge(a, b)

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range [2]string{e.Source, e.Target} {
		if _, ok := g.nodes[id]; !ok {
			return lattice.Edge{}, fmt.Errorf("project.AddEdge: %q: %w", id, ErrNodeNotFound)
		}
	}
	if _, ok := g.edges[e.ID]; ok {
		return lattice.Edge{}, fmt.Errorf("project.AddEdge: %q: %w", e.ID, ErrEdgeExists)
	}
	g.putEdge(e)
	return e, nil
}

// HasNode reports whether id is stored.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether the undirected edge a–b is stored.
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[lattice.EdgeKey(a, b)]
	return ok
}

// Node returns the stored node with the given ID.
func (g *Graph) Node(id string) (lattice.Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes sorted by ID.
// Complexity: O(V log V).
func (g *Graph) Nodes() []lattice.Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sortedNodes()
}

// Edges returns all edges sorted by ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []lattice.Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sortedEdges()
}

// NodeCount returns the number of stored nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of stored edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// Neighbors returns the IDs adjacent to id, sorted.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("project.Neighbors: %q: %w", id, ErrNodeNotFound)
	}
	return g.sortedNeighbors(id), nil
}

// Snapshot returns a copy of the whole store as a lattice.Graph with nodes
// and edges sorted by ID.
func (g *Graph) Snapshot() lattice.Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return lattice.Graph{Nodes: g.sortedNodes(), Edges: g.sortedEdges()}
}

// putNode and putEdge assume g.mu is held for writing.
func (g *Graph) putNode(n lattice.Node) {
	g.nodes[n.ID] = n
	if g.adjacency[n.ID] == nil {
		g.adjacency[n.ID] = make(map[string]struct{})
	}
}

func (g *Graph) putEdge(e lattice.Edge) {
	g.edges[e.ID] = e
	g.adjacency[e.Source][e.Target] = struct{}{}
	g.adjacency[e.Target][e.Source] = struct{}{}
}

func (g *Graph) sortedNodes() []lattice.Node {
	out := make([]lattice.Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (g *Graph) sortedEdges() []lattice.Edge {
	out := make([]lattice.Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
