// SPDX-License-Identifier: MIT
// Package: qlattice/tiling
//
// types.go: periodic templates and cell ranges.

package tiling

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/vec"
)

// UnitCellNode is a node relative to its cell origin.
type UnitCellNode struct {
	ID     string       `json:"id"`
	Offset vec.Vec3     `json:"offset"`
	Role   lattice.Role `json:"role,omitempty"`
}

// UnitCellEdge connects Source in cell c to Target in cell c+CellOffset.
type UnitCellEdge struct {
	Source     string    `json:"source"`
	Target     string    `json:"target"`
	CellOffset vec.IVec3 `json:"cellOffset"`
}

// UnitCell is the minimal repeating template.
type UnitCell struct {
	Nodes []UnitCellNode `json:"nodes"`
	Edges []UnitCellEdge `json:"edges"`
}

// LatticeVectors define how the unit cell repeats. A3 is required for 3D
// patterns; a 2D pattern may carry one with zero Z, and it is treated as
// the zero vector.
type LatticeVectors struct {
	A1 vec.Vec3  `json:"a1"`
	A2 vec.Vec3  `json:"a2"`
	A3 *vec.Vec3 `json:"a3,omitempty"`
}

// Pattern is a periodic template.
type Pattern struct {
	Dimension int            `json:"dimension"`
	Vectors   LatticeVectors `json:"latticeVectors"`
	Cell      UnitCell       `json:"unitCell"`
}

// Span is an inclusive integer interval, serialised as [min, max].
type Span struct {
	Min int
	Max int
}

// Len returns the number of integers in s, or 0 when s is unordered.
// Spans wider than math.MaxInt saturate at math.MaxInt.
func (s Span) Len() int {
	if s.Max < s.Min {
		return 0
	}
	d := uint64(s.Max) - uint64(s.Min)
	if d >= math.MaxInt {
		return math.MaxInt
	}
	return int(d) + 1
}

// Contains reports whether Min ≤ i ≤ Max.
func (s Span) Contains(i int) bool { return i >= s.Min && i <= s.Max }

// MarshalJSON encodes s as [min, max].
func (s Span) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{s.Min, s.Max})
}

// UnmarshalJSON decodes [min, max].
func (s *Span) UnmarshalJSON(b []byte) error {
	var pair []int
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("tiling: span must have 2 elements, got %d: %w", len(pair), lattice.ErrInvalidParameter)
	}
	s.Min, s.Max = pair[0], pair[1]
	return nil
}

// CellRange bounds the generated cells. Z is required for 3D patterns.
type CellRange struct {
	X Span  `json:"x"`
	Y Span  `json:"y"`
	Z *Span `json:"z,omitempty"`
}

// Range2D returns a 2D range.
func Range2D(xmin, xmax, ymin, ymax int) CellRange {
	return CellRange{X: Span{xmin, xmax}, Y: Span{ymin, ymax}}
}

// Range3D returns a 3D range.
func Range3D(xmin, xmax, ymin, ymax, zmin, zmax int) CellRange {
	return CellRange{X: Span{xmin, xmax}, Y: Span{ymin, ymax}, Z: &Span{zmin, zmax}}
}

// zSpan is the Z window enumerated for a pattern of the given dimension:
// the range's Z for 3D, its single layer (or 0) for 2D.
func (r CellRange) zSpan(dim int) Span {
	if r.Z == nil {
		return Span{0, 0}
	}
	if dim == 3 {
		return *r.Z
	}
	return Span{r.Z.Min, r.Z.Min}
}

func (r CellRange) contains(cell vec.IVec3, z Span) bool {
	return r.X.Contains(cell.X) && r.Y.Contains(cell.Y) && z.Contains(cell.Z)
}

// Contains reports whether cell is enumerated for a pattern of the given
// dimension.
func (r CellRange) Contains(cell vec.IVec3, dim int) bool {
	return r.contains(cell, r.zSpan(dim))
}

// CellCount returns the number of cells enumerated for a pattern of the
// given dimension.
func (r CellRange) CellCount(dim int) int {
	return lattice.SatMul(r.X.Len(), r.Y.Len(), r.zSpan(dim).Len())
}
