// SPDX-License-Identifier: MIT
// Package: qlattice/tiling
//
// grids.go: ready-made square and cubic grid instantiations.
//
// Cell counts here count squares/cubes, not vertices: a cubic grid of
// (lx, ly, lz) cubes has (lx+1)(ly+1)(lz+1) nodes, so the returned range is
// [0, l] on each axis over a one-node unit cell.

package tiling

import (
	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/vec"
)

const gridNodeID = "v"

// CubicPattern is the simple cubic lattice: one node per cell, unit lattice
// vectors, +x/+y/+z bonds.
func CubicPattern() Pattern {
	a3 := vec.New(0, 0, 1)
	return Pattern{
		Dimension: Dim3,
		Vectors:   LatticeVectors{A1: vec.New(1, 0, 0), A2: vec.New(0, 1, 0), A3: &a3},
		Cell: UnitCell{
			Nodes: []UnitCellNode{{ID: gridNodeID}},
			Edges: []UnitCellEdge{
				{Source: gridNodeID, Target: gridNodeID, CellOffset: vec.I(1, 0, 0)},
				{Source: gridNodeID, Target: gridNodeID, CellOffset: vec.I(0, 1, 0)},
				{Source: gridNodeID, Target: gridNodeID, CellOffset: vec.I(0, 0, 1)},
			},
		},
	}
}

// SquarePattern is the square lattice: one node per cell, +x/+y bonds.
func SquarePattern() Pattern {
	return Pattern{
		Dimension: Dim2,
		Vectors:   LatticeVectors{A1: vec.New(1, 0, 0), A2: vec.New(0, 1, 0)},
		Cell: UnitCell{
			Nodes: []UnitCellNode{{ID: gridNodeID}},
			Edges: []UnitCellEdge{
				{Source: gridNodeID, Target: gridNodeID, CellOffset: vec.I(1, 0, 0)},
				{Source: gridNodeID, Target: gridNodeID, CellOffset: vec.I(0, 1, 0)},
			},
		},
	}
}

// CubicGrid returns the cubic pattern and the range covering lx×ly×lz cubes.
// Each count must be ≥ 1.
func CubicGrid(lx, ly, lz int) (Pattern, CellRange, error) {
	vs := lattice.NewViolations(MethodCubicGrid)
	checkCount(vs, "lx", lx)
	checkCount(vs, "ly", ly)
	checkCount(vs, "lz", lz)
	if err := vs.Err(); err != nil {
		return Pattern{}, CellRange{}, err
	}
	return CubicPattern(), Range3D(0, lx, 0, ly, 0, lz), nil
}

// SquareGrid returns the square pattern and the range covering lx×ly squares.
func SquareGrid(lx, ly int) (Pattern, CellRange, error) {
	vs := lattice.NewViolations(MethodSquareGrid)
	checkCount(vs, "lx", lx)
	checkCount(vs, "ly", ly)
	if err := vs.Err(); err != nil {
		return Pattern{}, CellRange{}, err
	}
	return SquarePattern(), Range2D(0, lx, 0, ly), nil
}

func checkCount(vs *lattice.Violations, field string, n int) {
	if n < 1 {
		vs.Invalid(field, "must be ≥ 1, got %d", n)
	}
}
