// SPDX-License-Identifier: MIT
// Package: qlattice/project
//
// types.go: Graph, MergeReport and sentinel errors.

package project

import (
	"errors"
	"sync"

	"github.com/katalvlaran/qlattice/lattice"
)

// Sentinel errors for project graph operations.
var (
	// ErrEmptyNodeID indicates a node or edge endpoint with an empty ID.
	ErrEmptyNodeID = errors.New("project: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a missing node.
	ErrNodeNotFound = errors.New("project: node not found")

	// ErrNodeExists indicates AddNode was called with a stored ID.
	ErrNodeExists = errors.New("project: node already exists")

	// ErrEdgeExists indicates AddEdge was called for a stored edge.
	ErrEdgeExists = errors.New("project: edge already exists")

	// ErrLoopNotAllowed indicates an edge from a node to itself.
	ErrLoopNotAllowed = errors.New("project: self-loop not allowed")
)

// Graph is the project's node/edge store.
//
// mu guards all three maps together; adjacency mirrors edges in both
// directions.
type Graph struct {
	mu sync.RWMutex

	nodes     map[string]lattice.Node
	edges     map[string]lattice.Edge
	adjacency map[string]map[string]struct{}
}

// MergeReport counts what one Merge added and skipped.
type MergeReport struct {
	AddedNodes   int `json:"addedNodes"`
	AddedEdges   int `json:"addedEdges"`
	SkippedNodes int `json:"skippedNodes"`
	SkippedEdges int `json:"skippedEdges"`
}

// NewGraph returns an empty project graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]lattice.Node),
		edges:     make(map[string]lattice.Edge),
		adjacency: make(map[string]map[string]struct{}),
	}
}
