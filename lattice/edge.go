// SPDX-License-Identifier: MIT
// Package: qlattice/lattice
//
// edge.go: edge-key normalisation and duplicate suppression.

package lattice

import (
	"github.com/emirpasic/gods/sets/hashset"
)

// EdgeSeparator joins the two endpoint IDs of an edge key.
const EdgeSeparator = "--"

// EdgeKey returns min(a,b) + "--" + max(a,b) under byte-wise string order.
// The key doubles as the public edge ID and the deduplication key.
func EdgeKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + EdgeSeparator + b
}

// NewEdge returns the canonical undirected edge between a and b.
func NewEdge(a, b string) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{ID: a + EdgeSeparator + b, Source: a, Target: b}
}

// EdgeSet collects canonical edges in insertion order and suppresses
// duplicates and self-loops. The zero value is not usable; call NewEdgeSet.
type EdgeSet struct {
	seen  *hashset.Set
	edges []Edge
}

// NewEdgeSet returns an empty set with room for capacity edges.
func NewEdgeSet(capacity int) *EdgeSet {
	if capacity < 0 {
		capacity = 0
	}
	return &EdgeSet{seen: hashset.New(), edges: make([]Edge, 0, capacity)}
}

// Add inserts the edge a–b. It returns false, leaving the set unchanged, when
// a == b or when the normalised key was already added.
func (s *EdgeSet) Add(a, b string) bool {
	if a == b {
		return false
	}
	e := NewEdge(a, b)
	if s.seen.Contains(e.ID) {
		return false
	}
	s.seen.Add(e.ID)
	s.edges = append(s.edges, e)
	return true
}

// Contains reports whether the edge a–b has been added.
func (s *EdgeSet) Contains(a, b string) bool {
	return s.seen.Contains(EdgeKey(a, b))
}

// Len returns the number of distinct edges added.
func (s *EdgeSet) Len() int { return len(s.edges) }

// Edges returns the collected edges in insertion order. The slice is owned
// by the set until the caller stops adding to it.
func (s *EdgeSet) Edges() []Edge { return s.edges }
