// SPDX-License-Identifier: MIT
// Package: qlattice/lattice
//
// id_scheme.go: the two global node-ID schemes.
//
// Contract:
//   • PositionKeyed:  "x_y_z" from the rounded world position (vec.FormatCoord).
//   • CellLocalKeyed: "cx_cy_local" for 2D, "cx_cy_cz_local" for 3D.
//   • The schemes never mix inside one generation call; consumers may depend
//     on either format, so neither is canonical.

package lattice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/qlattice/vec"
)

// IDScheme selects how a generator derives global node IDs.
type IDScheme int

const (
	// CellLocalKeyed derives IDs from the cell index and the unit-cell local ID.
	CellLocalKeyed IDScheme = iota
	// PositionKeyed derives IDs from the rounded world position.
	PositionKeyed
)

const idSep = "_"

// String returns "cell" or "position".
func (s IDScheme) String() string {
	switch s {
	case CellLocalKeyed:
		return "cell"
	case PositionKeyed:
		return "position"
	default:
		return "IDScheme(" + strconv.Itoa(int(s)) + ")"
	}
}

// Valid reports whether s is a known scheme.
func (s IDScheme) Valid() bool { return s == CellLocalKeyed || s == PositionKeyed }

// ParseIDScheme accepts "cell"/"cell-local" and "position".
func ParseIDScheme(name string) (IDScheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cell", "cell-local", "celllocal":
		return CellLocalKeyed, nil
	case "position", "pos":
		return PositionKeyed, nil
	}
	return 0, fmt.Errorf("lattice: unknown id scheme %q: %w", name, ErrInvalidParameter)
}

// NodeID returns the global node ID under s. dim selects whether the cell's
// Z index appears in cell-local IDs; pos is used only by PositionKeyed.
func (s IDScheme) NodeID(cell vec.IVec3, dim int, local string, pos vec.Vec3) string {
	if s == PositionKeyed {
		return PositionID(pos)
	}
	return CellLocalID(cell, dim, local)
}

// PositionID renders "x_y_z" from p rounded to vec.Precision places.
func PositionID(p vec.Vec3) string {
	return vec.FormatCoord(p.X) + idSep + vec.FormatCoord(p.Y) + idSep + vec.FormatCoord(p.Z)
}

// CellLocalID renders "cx_cy_local" (dim 2) or "cx_cy_cz_local" (dim 3).
func CellLocalID(cell vec.IVec3, dim int, local string) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(cell.X))
	b.WriteString(idSep)
	b.WriteString(strconv.Itoa(cell.Y))
	if dim == 3 {
		b.WriteString(idSep)
		b.WriteString(strconv.Itoa(cell.Z))
	}
	b.WriteString(idSep)
	b.WriteString(local)
	return b.String()
}
