// SPDX-License-Identifier: MIT
// Package: qlattice/rhg
//
// boundary.go: per-side boundary conditions for the surface code.

package rhg

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qlattice/lattice"
)

// EdgeType is the Pauli type exposed on one side of a patch.
type EdgeType string

// Edge types.
const (
	EdgeX EdgeType = "X"
	EdgeZ EdgeType = "Z"
)

// Valid reports whether t is X or Z.
func (t EdgeType) Valid() bool { return t == EdgeX || t == EdgeZ }

// Boundary assigns an EdgeType to each side of the patch. Top is the
// high-y side, Bottom the low-y side, Left the low-x side, Right the high-x
// side.
type Boundary struct {
	Top    EdgeType `json:"top"`
	Bottom EdgeType `json:"bottom"`
	Left   EdgeType `json:"left"`
	Right  EdgeType `json:"right"`
}

// Named presets.
var (
	// BoundaryXXZZ puts X on top/bottom and Z on left/right.
	BoundaryXXZZ = Boundary{Top: EdgeX, Bottom: EdgeX, Left: EdgeZ, Right: EdgeZ}
	// BoundaryZZXX puts Z on top/bottom and X on left/right.
	BoundaryZZXX = Boundary{Top: EdgeZ, Bottom: EdgeZ, Left: EdgeX, Right: EdgeX}
)

// IsZero reports whether no side is set.
func (b Boundary) IsZero() bool { return b == Boundary{} }

// OrDefault returns BoundaryXXZZ for the zero Boundary and b otherwise.
func (b Boundary) OrDefault() Boundary {
	if b.IsZero() {
		return BoundaryXXZZ
	}
	return b
}

// String renders the sides as four letters in top, bottom, left, right order.
func (b Boundary) String() string {
	return string(b.Top) + string(b.Bottom) + string(b.Left) + string(b.Right)
}

// ParseBoundary accepts the preset names "XXZZ" and "ZZXX" or any four
// letters from {X, Z} in top, bottom, left, right order (case-insensitive).
func ParseBoundary(s string) (Boundary, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	switch up {
	case "XXZZ":
		return BoundaryXXZZ, nil
	case "ZZXX":
		return BoundaryZZXX, nil
	}
	if len(up) != 4 {
		return Boundary{}, fmt.Errorf("rhg: boundary %q must be 4 letters (top,bottom,left,right): %w", s, lattice.ErrInvalidParameter)
	}
	b := Boundary{
		Top:    EdgeType(up[0:1]),
		Bottom: EdgeType(up[1:2]),
		Left:   EdgeType(up[2:3]),
		Right:  EdgeType(up[3:4]),
	}
	if !b.Top.Valid() || !b.Bottom.Valid() || !b.Left.Valid() || !b.Right.Valid() {
		return Boundary{}, fmt.Errorf("rhg: boundary %q: sides must be X or Z: %w", s, lattice.ErrInvalidParameter)
	}
	return b, nil
}

// validate records one violation per invalid side.
func (b Boundary) validate(vs *lattice.Violations) {
	sides := [4]struct {
		name string
		t    EdgeType
	}{{"top", b.Top}, {"bottom", b.Bottom}, {"left", b.Left}, {"right", b.Right}}
	for _, s := range sides {
		if !s.t.Valid() {
			vs.Invalid("boundary."+s.name, "must be X or Z, got %q", s.t)
		}
	}
}
