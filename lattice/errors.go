// SPDX-License-Identifier: MIT
// Package: qlattice/lattice
//
// errors.go: error taxonomy shared by all generators.
//
// Error policy:
//   • Three sentinel roots; callers branch with errors.Is.
//   • Parameter and dimension problems are collected, not short-circuited:
//     a *ValidationError lists every violation found in one pass.
//   • Size-limit rejections carry the estimate and the ceiling (*SizeLimitError).
//   • All three are recoverable by the caller. Generators never return a
//     partial graph together with an error.

package lattice

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidParameter marks malformed generator input: non-positive lattice
// sizes, missing lattice vectors, non-zero Z components in a 2D pattern,
// dangling or duplicate unit-cell IDs, unordered cell ranges.
var ErrInvalidParameter = errors.New("lattice: invalid parameter")

// ErrDimensionMismatch marks a disagreement between a pattern's declared
// dimension and the requested range or operation (3D pattern without a Z
// range, "must be 2D" on a 3D pattern, ...).
var ErrDimensionMismatch = errors.New("lattice: dimension mismatch")

// ErrSizeLimit marks a request whose estimated node count exceeds the
// configured ceiling. No generation is attempted.
var ErrSizeLimit = errors.New("lattice: size limit exceeded")

// Violation is one failed check.
type Violation struct {
	// Field names the offending input, e.g. "latticeVectors.a3" or "unitCell.edges[2].target".
	Field string
	// Message describes the problem.
	Message string
	// Kind is ErrInvalidParameter or ErrDimensionMismatch.
	Kind error
}

func (v Violation) String() string { return v.Field + ": " + v.Message }

// ValidationError reports every violation found by a validator.
type ValidationError struct {
	Method     string
	Violations []Violation
}

// Error joins all violations into one line.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%s: %d violation(s): %s", e.Method, len(e.Violations), strings.Join(parts, "; "))
}

// Unwrap exposes the distinct kinds of the collected violations so that
// errors.Is matches any of them.
func (e *ValidationError) Unwrap() []error {
	var kinds []error
	for _, v := range e.Violations {
		dup := false
		for _, k := range kinds {
			if k == v.Kind {
				dup = true
				break
			}
		}
		if !dup && v.Kind != nil {
			kinds = append(kinds, v.Kind)
		}
	}
	return kinds
}

// Violations accumulates failed checks for one validator run.
type Violations struct {
	method string
	list   []Violation
}

// NewViolations starts an empty collection tagged with method.
func NewViolations(method string) *Violations {
	return &Violations{method: method}
}

// Invalid records a parameter violation.
func (vs *Violations) Invalid(field, format string, args ...interface{}) {
	vs.list = append(vs.list, Violation{Field: field, Message: fmt.Sprintf(format, args...), Kind: ErrInvalidParameter})
}

// Mismatch records a dimension-mismatch violation.
func (vs *Violations) Mismatch(field, format string, args ...interface{}) {
	vs.list = append(vs.list, Violation{Field: field, Message: fmt.Sprintf(format, args...), Kind: ErrDimensionMismatch})
}

// Merge appends the violations of err when it is a *ValidationError and
// reports whether it was one. nil merges as true.
func (vs *Violations) Merge(err error) bool {
	if err == nil {
		return true
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	vs.list = append(vs.list, ve.Violations...)
	return true
}

// Len returns the number of recorded violations.
func (vs *Violations) Len() int { return len(vs.list) }

// Err returns nil when nothing was recorded, otherwise a *ValidationError.
func (vs *Violations) Err() error {
	if len(vs.list) == 0 {
		return nil
	}
	out := make([]Violation, len(vs.list))
	copy(out, vs.list)
	return &ValidationError{Method: vs.method, Violations: out}
}

// SizeLimitError reports an estimate that exceeds the ceiling.
type SizeLimitError struct {
	Method    string
	Estimated int
	Limit     int
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("%s: estimated %d nodes exceeds limit of %d", e.Method, e.Estimated, e.Limit)
}

// Unwrap returns ErrSizeLimit.
func (e *SizeLimitError) Unwrap() error { return ErrSizeLimit }
