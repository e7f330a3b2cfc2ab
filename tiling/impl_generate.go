// SPDX-License-Identifier: MIT
// Package: qlattice/tiling
//
// impl_generate.go: the generic periodic tiling generator.
//
// Contract:
//   • Validate pattern and range (all violations), then check the node
//     estimate against the ceiling, then enumerate. No partial graphs.
//   • Enumeration order: cx ascending, then cy, then cz; inside a cell,
//     unit-cell nodes then unit-cell edges in declaration order.
//   • Edges whose target cell is outside the range are omitted.
//   • Position-keyed IDs must not collide; a collision is a parameter error.
//
// Complexity:
//   • Time O(cells × (N + E)); space O(output).

package tiling

import (
	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/vec"
)

// Generate tiles p over r.
func Generate(p Pattern, r CellRange, opts ...Option) (lattice.Graph, error) {
	cfg := newConfig(opts...)

	vs := lattice.NewViolations(MethodGenerate)
	vs.Merge(ValidatePattern(p))
	vs.Merge(ValidateRange(p, r))
	if err := vs.Err(); err != nil {
		return lattice.Graph{}, err
	}

	est := EstimateNodeCount(p, r)
	if err := lattice.CheckSize(MethodGenerate, est, cfg.maxNodes); err != nil {
		return lattice.Graph{}, err
	}

	return newTiler(p, r, cfg).run(est)
}

// tiler holds the per-call state of one enumeration.
type tiler struct {
	p     Pattern
	r     CellRange
	cfg   config
	a3    vec.Vec3
	z     Span
	baseZ float64
	index map[string]int // unit-cell node id → position in p.Cell.Nodes
}

func newTiler(p Pattern, r CellRange, cfg config) *tiler {
	t := &tiler{
		p:     p,
		r:     r,
		cfg:   cfg,
		z:     r.zSpan(p.Dimension),
		baseZ: vec.RoundCoord(cfg.baseZ),
		index: make(map[string]int, len(p.Cell.Nodes)),
	}
	if p.Dimension == Dim3 {
		t.a3 = *p.Vectors.A3
	}
	for i, n := range p.Cell.Nodes {
		t.index[n.ID] = i
	}
	return t
}

// place returns the global ID and world position of unit-cell node n in cell.
func (t *tiler) place(cell vec.IVec3, n UnitCellNode) (string, vec.Vec3) {
	pos := vec.Position(cell, t.p.Vectors.A1, t.p.Vectors.A2, t.a3, n.Offset)
	if t.p.Dimension == Dim2 {
		pos = pos.WithZ(t.baseZ)
	}
	return t.cfg.scheme.NodeID(cell, t.p.Dimension, n.ID, pos), pos
}

func (t *tiler) run(estNodes int) (lattice.Graph, error) {
	nodes := make([]lattice.Node, 0, lattice.CapHint(estNodes))
	edges := lattice.NewEdgeSet(lattice.CapHint(EstimateEdgeCount(t.p, t.r)))
	owner := make(map[string]vec.IVec3, lattice.CapHint(estNodes))

	// Counted loops: a span ending at math.MaxInt must not wrap.
	nx, ny, nz := t.r.X.Len(), t.r.Y.Len(), t.z.Len()
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			for iz := 0; iz < nz; iz++ {
				cell := vec.I(t.r.X.Min+ix, t.r.Y.Min+iy, t.z.Min+iz)

				for _, n := range t.p.Cell.Nodes {
					id, pos := t.place(cell, n)
					if prev, dup := owner[id]; dup {
						vs := lattice.NewViolations(MethodGenerate)
						vs.Invalid("unitCell.nodes", "node id %q produced by cells %s and %s (%s scheme)",
							id, prev, cell, t.cfg.scheme)
						return lattice.Graph{}, vs.Err()
					}
					owner[id] = cell
					nodes = append(nodes, lattice.Node{ID: id, Position: pos, Role: n.Role.OrDefault()})
				}

				for _, e := range t.p.Cell.Edges {
					target := cell.Add(e.CellOffset)
					if !t.r.contains(target, t.z) {
						continue
					}
					sid, _ := t.place(cell, t.p.Cell.Nodes[t.index[e.Source]])
					tid, _ := t.place(target, t.p.Cell.Nodes[t.index[e.Target]])
					edges.Add(sid, tid)
				}
			}
		}
	}

	return lattice.Graph{Nodes: nodes, Edges: edges.Edges()}, nil
}
