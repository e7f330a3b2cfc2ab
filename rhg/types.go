// SPDX-License-Identifier: MIT
// Package: qlattice/rhg
//
// types.go: variants, node kinds and the Lattice result.

package rhg

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/vec"
)

// Variant selects a lattice family.
type Variant int

const (
	// VariantFaceEdge is the face/edge bipartite lattice.
	VariantFaceEdge Variant = iota
	// VariantSurfaceCode is the rotated surface code with per-side boundaries.
	VariantSurfaceCode
)

// String returns "faceedge" or "surface".
func (v Variant) String() string {
	switch v {
	case VariantFaceEdge:
		return "faceedge"
	case VariantSurfaceCode:
		return "surface"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant accepts "faceedge", "face-edge", "surface", "surface-code".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "faceedge", "face-edge", "face_edge":
		return VariantFaceEdge, nil
	case "surface", "surface-code", "surface_code", "rotated":
		return VariantSurfaceCode, nil
	}
	return 0, fmt.Errorf("rhg: unknown variant %q: %w", s, lattice.ErrInvalidParameter)
}

// Kind classifies a lattice node.
type Kind string

// Face/edge kinds.
const (
	KindFace Kind = "FACE"
	KindEdge Kind = "EDGE"
)

// Surface-code kinds.
const (
	KindData     Kind = "data"
	KindAncillaX Kind = "ancilla_x"
	KindAncillaZ Kind = "ancilla_z"
)

// IsAncilla reports whether k is an ancilla kind.
func (k Kind) IsAncilla() bool { return k == KindAncillaX || k == KindAncillaZ }

// Axis is the orientation of a face/edge node: the axis an EDGE runs along,
// or the normal of a FACE.
type Axis string

// Axes.
const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// Node is a lattice node before conversion to lattice.Node.
type Node struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Orientation Axis      `json:"orientation,omitempty"`
	Indices     vec.IVec3 `json:"indices"`
	Pos2        vec.IVec3 `json:"pos2"`
	Position    vec.Vec3  `json:"position"`
}

// Family returns the face/edge family label ("Ex", "Fz", ...) or the kind
// for surface-code nodes.
func (n Node) Family() string {
	switch n.Kind {
	case KindEdge:
		return "E" + string(n.Orientation)
	case KindFace:
		return "F" + string(n.Orientation)
	}
	return string(n.Kind)
}

// Size records the cell counts a lattice was generated for.
type Size struct {
	Lx int `json:"Lx"`
	Ly int `json:"Ly"`
	Lz int `json:"Lz"`
}

// Lattice is a generated face/edge or surface-code lattice.
type Lattice struct {
	Variant Variant        `json:"-"`
	Nodes   []Node         `json:"nodes"`
	Edges   []lattice.Edge `json:"edges"`
	Size    Size           `json:"size"`
}

// Params are the inputs of both generators. Boundary is read only by the
// surface-code variant; its zero value means BoundaryXXZZ.
type Params struct {
	Lx       int      `json:"Lx"`
	Ly       int      `json:"Ly"`
	Lz       int      `json:"Lz"`
	Boundary Boundary `json:"boundary,omitempty"`
}

// Counts are closed-form output sizes.
type Counts struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}
