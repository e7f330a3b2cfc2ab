// Package tiling generates periodic graphs from a unit cell and a set of
// lattice vectors, over an inclusive rectangular range of cell indices.
//
// A Pattern is a repeating template: Dimension (2 or 3), lattice vectors
// a1, a2 (and a3 for 3D), and a UnitCell of nodes with in-cell offsets and
// edges that either stay inside the cell (CellOffset zero) or reach into a
// neighbouring cell at a given cell-index delta.
//
// Generate enumerates every cell (cx, cy, cz) of a CellRange and emits:
//
//   - one lattice.Node per unit-cell node, at cx*a1 + cy*a2 + cz*a3 + offset,
//     rounded to two places (Z forced to the configured base Z for 2D);
//   - one lattice.Edge per unit-cell edge whose target cell lies inside the
//     range. Edges leaving the range are dropped, never wrapped. Duplicates
//     and self-loops are suppressed through lattice.EdgeSet.
//
// Estimate-then-generate:
//
//	EstimateNodeCount and EstimateEdgeCount are closed forms over the range
//	and the unit cell. They equal the actual output for every valid input,
//	and Generate rejects requests whose node estimate exceeds the ceiling
//	(lattice.DefaultMaxNodes unless WithMaxNodes is given) before any
//	enumeration starts.
//
// Complexity:
//
//	Generate is O(cells × (nodes-per-cell + edges-per-cell)) time and
//	O(output) space. Estimators are O(edges-per-cell).
//
// Concurrency:
//
//	All functions are pure; they may be called from any number of goroutines.
package tiling
