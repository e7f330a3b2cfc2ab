package tiling

// Method tags prefixed to errors.
const (
	MethodGenerate         = "tiling.Generate"
	MethodValidatePattern  = "tiling.ValidatePattern"
	MethodValidateRange    = "tiling.ValidateRange"
	MethodRequireDimension = "tiling.RequireDimension"
	MethodCubicGrid        = "tiling.CubicGrid"
	MethodSquareGrid       = "tiling.SquareGrid"
)

// Supported pattern dimensions.
const (
	Dim2 = 2
	Dim3 = 3
)
