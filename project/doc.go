// SPDX-License-Identifier: MIT

// Package project is the in-memory project graph that generated lattices
// are merged into.
//
// A project Graph holds lattice.Node and lattice.Edge values keyed by ID.
// It is safe for concurrent use: every method takes the graph's RWMutex,
// and Merge applies a whole lattice.Graph under one write lock so readers
// never observe half a merge.
//
// Merge is duplicate-aware. A node or edge whose ID is already present is
// skipped and counted in the MergeReport; the stored value wins. An edge
// whose endpoint is neither stored nor part of the same merge fails the
// whole merge with ErrNodeNotFound before anything is applied.
//
// Enumerations (Nodes, Edges, Neighbors, Snapshot) are sorted by ID.
//
// BFS and Components answer the usual questions about a stitched project:
// whether two patches joined up, and how many hops separate two qubits.
package project
