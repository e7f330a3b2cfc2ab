// Package vec provides the small amount of vector arithmetic the lattice
// generators need: float 3-vectors for world positions, integer 3-vectors
// for cell indices and doubled coordinates, and a fixed rounding policy.
//
// Rounding policy:
//
//	Every world position leaving a generator is rounded to Precision (2)
//	decimal places, half away from zero, using exact decimal arithmetic
//	(github.com/shopspring/decimal). Two logically identical positions
//	computed along different paths (for example cx*a1 + offset versus
//	(cx-1)*a1 + a1 + offset) therefore compare equal and format to the same
//	position-keyed ID. Negative zero never survives rounding.
//
// Complexity:
//
//	All operations are O(1). Round and FormatCoord allocate a decimal value.
package vec
