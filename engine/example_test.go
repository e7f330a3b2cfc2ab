// File: engine/example_test.go
package engine_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/qlattice/engine"
	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/project"
	"github.com/katalvlaran/qlattice/rhg"
	"github.com/katalvlaran/qlattice/tiling"
)

// ExampleEngine_Generate estimates, generates and then serves a repeat
// request from the cache.
func ExampleEngine_Generate() {
	e, _ := engine.New()
	req := engine.RHGRequest{
		Variant: rhg.VariantSurfaceCode,
		Params:  rhg.Params{Lx: 3, Ly: 3, Lz: 2, Boundary: rhg.BoundaryXXZZ},
	}

	est, _ := e.Estimate(req)
	fmt.Println("estimate:", est.Nodes, est.Edges)

	res, _ := e.Generate(context.Background(), req)
	fmt.Println("generated:", res.Graph.NodeCount(), res.Graph.EdgeCount(), res.Cached)

	res, _ = e.Generate(context.Background(), req)
	fmt.Println("again:", res.Cached)

	// Output:
	// estimate: 26 33
	// generated: 26 33 false
	// again: true
}

// ExampleEngine_Generate_sizeLimit shows the ceiling rejecting a request
// before anything is enumerated.
func ExampleEngine_Generate_sizeLimit() {
	e, _ := engine.New(engine.WithMaxNodes(100))
	p, r, _ := tiling.CubicGrid(5, 5, 5)

	_, err := e.Generate(context.Background(), engine.TilingRequest{Pattern: p, Range: r})
	var sl *lattice.SizeLimitError
	if errors.As(err, &sl) {
		fmt.Println("estimated", sl.Estimated, "limit", sl.Limit)
	}

	// Output:
	// estimated 216 limit 100
}

// ExampleEngine_GenerateIntoProject merges two overlapping square patches.
func ExampleEngine_GenerateIntoProject() {
	e, _ := engine.New()
	store := project.NewGraph()

	for _, r := range []tiling.CellRange{tiling.Range2D(0, 2, 0, 2), tiling.Range2D(2, 4, 0, 2)} {
		req := engine.TilingRequest{Pattern: tiling.SquarePattern(), Range: r, Scheme: lattice.PositionKeyed}
		_, rep, _ := e.GenerateIntoProject(context.Background(), store, req)
		fmt.Printf("added %d/%d, skipped %d/%d\n", rep.AddedNodes, rep.AddedEdges, rep.SkippedNodes, rep.SkippedEdges)
	}
	fmt.Println("project:", store.NodeCount(), "nodes", store.EdgeCount(), "edges")

	// Output:
	// added 9/12, skipped 0/0
	// added 6/10, skipped 3/2
	// project: 15 nodes 22 edges
}
