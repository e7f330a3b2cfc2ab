// SPDX-License-Identifier: MIT
// Package: qlattice/tiling
//
// validators.go: structural checks for patterns and ranges.
//
// Every validator walks the whole input and reports all violations through
// a *lattice.ValidationError; nothing is coerced.

package tiling

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/vec"
)

// ValidatePattern checks p for:
//   - Dimension ∈ {2, 3};
//   - A3 present for Dimension == 3; a 2D pattern may carry A3, which is
//     ignored, but its Z component must be 0;
//   - finite lattice vectors and offsets;
//   - at least one node, non-empty unique node IDs, known roles;
//   - every edge endpoint naming an existing node;
//   - for 2D, zero Z components in a1, a2, offsets and cell offsets.
//
// Degenerate (zero or collinear) lattice vectors are accepted.
// Complexity: O(N+E) time, O(N) space.
func ValidatePattern(p Pattern) error {
	vs := lattice.NewViolations(MethodValidatePattern)

	dimOK := p.Dimension == Dim2 || p.Dimension == Dim3
	if !dimOK {
		vs.Invalid("dimension", "must be 2 or 3, got %d", p.Dimension)
	}
	is2D := p.Dimension == Dim2

	checkFinite(vs, "latticeVectors.a1", p.Vectors.A1)
	checkFinite(vs, "latticeVectors.a2", p.Vectors.A2)
	switch {
	case p.Dimension == Dim3 && p.Vectors.A3 == nil:
		vs.Invalid("latticeVectors.a3", "required for 3D patterns")
	case p.Vectors.A3 != nil:
		checkFinite(vs, "latticeVectors.a3", *p.Vectors.A3)
	}
	if is2D {
		if a3 := p.Vectors.A3; a3 != nil && a3.Z != 0 {
			vs.Invalid("latticeVectors.a3.z", "must be 0 for 2D patterns, got %g", a3.Z)
		}
		if p.Vectors.A1.Z != 0 {
			vs.Invalid("latticeVectors.a1.z", "must be 0 for 2D patterns, got %g", p.Vectors.A1.Z)
		}
		if p.Vectors.A2.Z != 0 {
			vs.Invalid("latticeVectors.a2.z", "must be 0 for 2D patterns, got %g", p.Vectors.A2.Z)
		}
	}

	if len(p.Cell.Nodes) == 0 {
		vs.Invalid("unitCell.nodes", "must contain at least one node")
	}
	ids := make(map[string]struct{}, len(p.Cell.Nodes))
	for i, n := range p.Cell.Nodes {
		field := fmt.Sprintf("unitCell.nodes[%d]", i)
		if n.ID == "" {
			vs.Invalid(field+".id", "must not be empty")
		} else if _, dup := ids[n.ID]; dup {
			vs.Invalid(field+".id", "duplicate id %q", n.ID)
		} else {
			ids[n.ID] = struct{}{}
		}
		if !n.Role.OrDefault().Valid() {
			vs.Invalid(field+".role", "unknown role %q", n.Role)
		}
		checkFinite(vs, field+".offset", n.Offset)
		if is2D && n.Offset.Z != 0 {
			vs.Invalid(field+".offset.z", "must be 0 for 2D patterns, got %g", n.Offset.Z)
		}
	}

	for i, e := range p.Cell.Edges {
		field := fmt.Sprintf("unitCell.edges[%d]", i)
		if _, ok := ids[e.Source]; !ok {
			vs.Invalid(field+".source", "unknown node %q", e.Source)
		}
		if _, ok := ids[e.Target]; !ok {
			vs.Invalid(field+".target", "unknown node %q", e.Target)
		}
		if is2D && e.CellOffset.Z != 0 {
			vs.Invalid(field+".cellOffset.z", "must be 0 for 2D patterns, got %d", e.CellOffset.Z)
		}
	}

	return vs.Err()
}

// ValidateRange checks that every axis of r is ordered and that r's shape
// fits p: a 3D pattern needs a Z range, a 2D pattern accepts at most one Z
// layer.
// Complexity: O(1).
func ValidateRange(p Pattern, r CellRange) error {
	vs := lattice.NewViolations(MethodValidateRange)

	checkSpan(vs, "range.x", r.X)
	checkSpan(vs, "range.y", r.Y)
	if r.Z != nil {
		checkSpan(vs, "range.z", *r.Z)
	}

	switch p.Dimension {
	case Dim3:
		if r.Z == nil {
			vs.Mismatch("range.z", "required for 3D patterns")
		}
	case Dim2:
		if r.Z != nil && r.Z.Min != r.Z.Max {
			vs.Mismatch("range.z", "2D patterns occupy a single layer, got [%d,%d]", r.Z.Min, r.Z.Max)
		}
	}

	return vs.Err()
}

// RequireDimension reports ErrDimensionMismatch when an operation that needs
// a want-dimensional pattern is given p.
// Complexity: O(1).
func RequireDimension(p Pattern, want int) error {
	vs := lattice.NewViolations(MethodRequireDimension)
	if want != Dim2 && want != Dim3 {
		vs.Invalid("want", "must be 2 or 3, got %d", want)
	} else if p.Dimension != want {
		vs.Mismatch("dimension", "operation requires a %dD pattern, got %dD", want, p.Dimension)
	}
	return vs.Err()
}

func checkSpan(vs *lattice.Violations, field string, s Span) {
	if s.Min > s.Max {
		vs.Invalid(field, "min %d > max %d", s.Min, s.Max)
	}
}

func checkFinite(vs *lattice.Violations, field string, v vec.Vec3) {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			vs.Invalid(field, "components must be finite, got %v", v)
			return
		}
	}
}
