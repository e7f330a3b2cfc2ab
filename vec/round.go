// SPDX-License-Identifier: MIT
// Package: qlattice/vec
//
// round.go: the rounding policy and lattice position contract.

package vec

import "github.com/shopspring/decimal"

// Precision is the number of decimal places kept in world positions.
const Precision int32 = 2

// RoundCoord rounds f to Precision places, half away from zero.
// The result is never negative zero.
func RoundCoord(f float64) float64 {
	r := decimal.NewFromFloat(f).Round(Precision).InexactFloat64()
	if r == 0 {
		return 0
	}
	return r
}

// FormatCoord renders f rounded to Precision places in its shortest decimal
// form: 2 → "2", 0.5 → "0.5", -1.25 → "-1.25", -0.001 → "0".
func FormatCoord(f float64) string {
	return decimal.NewFromFloat(f).Round(Precision).String()
}

// Position maps a cell index and an in-cell offset to a world position:
//
//	cell.X*a1 + cell.Y*a2 + cell.Z*a3 + offset
//
// rounded to Precision places. Callers pass the zero vector as a3 for 2D
// patterns. Degenerate (zero or collinear) lattice vectors are accepted.
func Position(cell IVec3, a1, a2, a3, offset Vec3) Vec3 {
	p := a1.Scale(float64(cell.X)).
		Add(a2.Scale(float64(cell.Y))).
		Add(a3.Scale(float64(cell.Z))).
		Add(offset)
	return p.Round()
}
