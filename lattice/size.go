// SPDX-License-Identifier: MIT
// Package: qlattice/lattice
//
// size.go: generation ceiling and overflow-safe size arithmetic.
//
// Estimators saturate at math.MaxInt instead of wrapping, so an oversized
// request always fails CheckSize rather than slipping under the ceiling.

package lattice

import (
	"fmt"
	"math"
)

// DefaultMaxNodes is the node-count ceiling applied when a caller does not
// configure one.
const DefaultMaxNodes = 1000

// maxPrealloc bounds the capacity generators reserve up front.
const maxPrealloc = 1 << 16

// CheckSize returns a *SizeLimitError when estimated > limit. A limit ≤ 0
// disables the ceiling, except that a saturated estimate (math.MaxInt) is
// always rejected. A negative estimate is rejected with ErrInvalidParameter.
// Complexity: O(1).
func CheckSize(method string, estimated, limit int) error {
	if estimated < 0 {
		return fmt.Errorf("%s: negative size estimate %d: %w", method, estimated, ErrInvalidParameter)
	}
	if (limit > 0 && estimated > limit) || estimated == math.MaxInt {
		return &SizeLimitError{Method: method, Estimated: estimated, Limit: limit}
	}
	return nil
}

// SatMul multiplies non-negative factors, saturating at math.MaxInt.
// Any negative factor yields 0.
func SatMul(factors ...int) int {
	out := 1
	for _, f := range factors {
		if f <= 0 {
			return 0
		}
		if out > math.MaxInt/f {
			out = math.MaxInt
			continue
		}
		out *= f
	}
	return out
}

// SatAdd sums non-negative terms, saturating at math.MaxInt. Negative terms
// count as 0.
func SatAdd(terms ...int) int {
	out := 0
	for _, t := range terms {
		if t <= 0 {
			continue
		}
		if out > math.MaxInt-t {
			return math.MaxInt
		}
		out += t
	}
	return out
}

// CapHint returns the slice capacity to reserve for n elements: n itself,
// clamped to [0, 65536].
func CapHint(n int) int {
	if n < 0 {
		return 0
	}
	if n > maxPrealloc {
		return maxPrealloc
	}
	return n
}
