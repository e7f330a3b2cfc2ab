// SPDX-License-Identifier: MIT
// Package: qlattice/lattice
//
// types.go: roles, generated nodes, edges and graphs.

package lattice

import (
	"fmt"

	"github.com/katalvlaran/qlattice/vec"
)

// Role classifies a node in an MBQC graph.
type Role string

// Supported roles. The zero value resolves to RoleIntermediate.
const (
	RoleInput        Role = "input"
	RoleOutput       Role = "output"
	RoleIntermediate Role = "intermediate"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleInput, RoleOutput, RoleIntermediate:
		return true
	}
	return false
}

// OrDefault returns RoleIntermediate for the empty role and r otherwise.
func (r Role) OrDefault() Role {
	if r == "" {
		return RoleIntermediate
	}
	return r
}

// ParseRole accepts "", "input", "output" and "intermediate".
func ParseRole(s string) (Role, error) {
	r := Role(s).OrDefault()
	if !r.Valid() {
		return "", fmt.Errorf("lattice: unknown role %q: %w", s, ErrInvalidParameter)
	}
	return r, nil
}

// Node is a generated graph node.
type Node struct {
	ID       string   `json:"id"`
	Position vec.Vec3 `json:"position"`
	Role     Role     `json:"role"`
}

// Edge is a generated undirected edge in canonical form.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Graph is the output of every generator: fresh, immutable by convention,
// owned by the caller.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}
