// File: rhg/example_test.go
package rhg_test

import (
	"fmt"

	"github.com/katalvlaran/qlattice/rhg"
	"github.com/katalvlaran/qlattice/vec"
)

////////////////////////////////////////////////////////////////////////////////
// Example: face/edge lattice
////////////////////////////////////////////////////////////////////////////////

// ExampleGenerateFaceEdge builds the single-cell face/edge lattice.
// Scenario:
//
//   - 12 EDGE nodes on the cube's edges, 6 FACE nodes on its faces.
//   - Every face touches its 4 bounding edges.
//
// Complexity: O(Lx·Ly·Lz), Memory: O(V+E)
func ExampleGenerateFaceEdge() {
	l, err := rhg.GenerateFaceEdge(rhg.Params{Lx: 1, Ly: 1, Lz: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("nodes:", len(l.Nodes), "edges:", len(l.Edges))
	fmt.Println("EDGE:", l.CountKind(rhg.KindEdge), "FACE:", l.CountKind(rhg.KindFace))
	fmt.Println("first:", l.Nodes[0].ID, l.Nodes[0].Position)

	// Output:
	// nodes: 18 edges: 24
	// EDGE: 12 FACE: 6
	// first: 0_0_0_Ex {0.5 0 0}
}

////////////////////////////////////////////////////////////////////////////////
// Example: surface code
////////////////////////////////////////////////////////////////////////////////

// ExampleGenerateSurfaceCode builds one Z layer of a distance-3 patch with
// X boundaries on top and bottom.
func ExampleGenerateSurfaceCode() {
	l, _ := rhg.GenerateSurfaceCode(rhg.Params{Lx: 3, Ly: 3, Lz: 1, Boundary: rhg.BoundaryXXZZ})
	fmt.Println("data:", l.CountKind(rhg.KindData))
	fmt.Println("ancilla_z:", l.CountKind(rhg.KindAncillaZ))
	fmt.Println("edges:", len(l.Edges))

	est := rhg.EstimateSurfaceCode(rhg.Params{Lx: 3, Ly: 3, Lz: 1})
	fmt.Println("estimate:", est.Nodes, est.Edges)

	// Output:
	// data: 9
	// ancilla_z: 4
	// edges: 12
	// estimate: 13 12
}

// ExampleLattice_ToGraph places a lattice at a world origin.
func ExampleLattice_ToGraph() {
	l, _ := rhg.GenerateFaceEdge(rhg.Params{Lx: 1, Ly: 1, Lz: 1})
	g := l.ToGraph(vec.New(10, 0, -1))
	fmt.Println(g.Nodes[0].ID, g.Nodes[0].Position, g.Nodes[0].Role)

	// Output:
	// 0_0_0_Ex {10.5 0 -1} intermediate
}
