package rhg

import "github.com/katalvlaran/qlattice/lattice"

// Method tags prefixed to errors.
const (
	MethodFaceEdge    = "rhg.GenerateFaceEdge"
	MethodSurfaceCode = "rhg.GenerateSurfaceCode"
	MethodGenerate    = "rhg.Generate"
	MethodEstimate    = "rhg.Estimate"
)

// minCells is the smallest size on every axis.
const minCells = 1

// ValidateParams checks every size is ≥ 1 and, for the surface code, that
// each boundary side is X or Z. All violations are reported.
func ValidateParams(v Variant, p Params) error {
	vs := lattice.NewViolations(methodFor(v))
	if v != VariantFaceEdge && v != VariantSurfaceCode {
		vs.Invalid("variant", "unknown variant %d", int(v))
	}
	if p.Lx < minCells {
		vs.Invalid("Lx", "must be ≥ %d, got %d", minCells, p.Lx)
	}
	if p.Ly < minCells {
		vs.Invalid("Ly", "must be ≥ %d, got %d", minCells, p.Ly)
	}
	if p.Lz < minCells {
		vs.Invalid("Lz", "must be ≥ %d, got %d", minCells, p.Lz)
	}
	if v == VariantSurfaceCode {
		p.Boundary.OrDefault().validate(vs)
	}
	return vs.Err()
}

func methodFor(v Variant) string {
	switch v {
	case VariantFaceEdge:
		return MethodFaceEdge
	case VariantSurfaceCode:
		return MethodSurfaceCode
	}
	return MethodGenerate
}
