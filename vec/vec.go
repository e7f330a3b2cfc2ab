// SPDX-License-Identifier: MIT
// Package: qlattice/vec
//
// vec.go: float and integer 3-vectors.

package vec

import "strconv"

// Vec3 is a point or displacement in world coordinates.
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// IVec3 is an integer triple: a cell index, a cell-index delta, or a doubled
// coordinate.
type IVec3 struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

// Zero is the zero vector.
var Zero = Vec3{}

// New returns Vec3{x, y, z}.
func New(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns v+u.
func (v Vec3) Add(u Vec3) Vec3 { return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z} }

// Sub returns v-u.
func (v Vec3) Sub(u Vec3) Vec3 { return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z} }

// Scale returns k*v.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{k * v.X, k * v.Y, k * v.Z} }

// IsZero reports whether all components are exactly zero.
func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// Round returns v with every component rounded to Precision places.
func (v Vec3) Round() Vec3 {
	return Vec3{RoundCoord(v.X), RoundCoord(v.Y), RoundCoord(v.Z)}
}

// WithZ returns a copy of v with Z replaced.
func (v Vec3) WithZ(z float64) Vec3 { return Vec3{v.X, v.Y, z} }

// Slice returns the components as a 3-element slice.
func (v Vec3) Slice() []float64 { return []float64{v.X, v.Y, v.Z} }

// FromSlice builds a Vec3 from 2 or 3 components; a missing Z is 0.
// ok is false for any other length.
func FromSlice(s []float64) (v Vec3, ok bool) {
	switch len(s) {
	case 2:
		return Vec3{X: s[0], Y: s[1]}, true
	case 3:
		return Vec3{X: s[0], Y: s[1], Z: s[2]}, true
	default:
		return Vec3{}, false
	}
}

// I returns IVec3{x, y, z}.
func I(x, y, z int) IVec3 { return IVec3{X: x, Y: y, Z: z} }

// Add returns v+u.
func (v IVec3) Add(u IVec3) IVec3 { return IVec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z} }

// Neg returns -v.
func (v IVec3) Neg() IVec3 { return IVec3{-v.X, -v.Y, -v.Z} }

// IsZero reports whether v is the zero triple.
func (v IVec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// Vec3 converts v to float components.
func (v IVec3) Vec3() Vec3 { return Vec3{float64(v.X), float64(v.Y), float64(v.Z)} }

// Half returns v/2 as a float vector; used to turn doubled coordinates into
// world positions. Halving an integer is exact in float64.
func (v IVec3) Half() Vec3 { return Vec3{float64(v.X) / 2, float64(v.Y) / 2, float64(v.Z) / 2} }

// Less orders triples lexicographically by X, then Y, then Z.
func (v IVec3) Less(u IVec3) bool {
	if v.X != u.X {
		return v.X < u.X
	}
	if v.Y != u.Y {
		return v.Y < u.Y
	}
	return v.Z < u.Z
}

// String renders "x,y,z".
func (v IVec3) String() string {
	return strconv.Itoa(v.X) + "," + strconv.Itoa(v.Y) + "," + strconv.Itoa(v.Z)
}

// IntsFromSlice builds an IVec3 from 2 or 3 components; a missing Z is 0.
func IntsFromSlice(s []int) (v IVec3, ok bool) {
	switch len(s) {
	case 2:
		return IVec3{X: s[0], Y: s[1]}, true
	case 3:
		return IVec3{X: s[0], Y: s[1], Z: s[2]}, true
	default:
		return IVec3{}, false
	}
}
