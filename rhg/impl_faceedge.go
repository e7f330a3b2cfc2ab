// SPDX-License-Identifier: MIT
// Package: qlattice/rhg
//
// impl_faceedge.go: the face/edge bipartite lattice.
//
// Families (doubled coordinates, index ranges inclusive):
//   Ex(i,j,k)  i∈[0,Lx-1] j∈[0,Ly]   k∈[0,Lz]    pos2 (2i+1, 2j,   2k)
//   Ey(i,j,k)  i∈[0,Lx]   j∈[0,Ly-1] k∈[0,Lz]    pos2 (2i,   2j+1, 2k)
//   Ez(i,j,k)  i∈[0,Lx]   j∈[0,Ly]   k∈[0,Lz-1]  pos2 (2i,   2j,   2k+1)
//   Fx(i,j,k)  i∈[0,Lx]   j∈[0,Ly-1] k∈[0,Lz-1]  pos2 (2i,   2j+1, 2k+1)
//   Fy(i,j,k)  i∈[0,Lx-1] j∈[0,Ly]   k∈[0,Lz-1]  pos2 (2i+1, 2j,   2k+1)
//   Fz(i,j,k)  i∈[0,Lx-1] j∈[0,Ly-1] k∈[0,Lz]    pos2 (2i+1, 2j+1, 2k)
//
// A face at pos2 p with normal n connects to the EDGE nodes at p ± e_u and
// p ± e_v for the two in-plane axes u, v; e.g. Fz(i,j,k) → Ex(i,j,k),
// Ex(i,j+1,k), Ey(i,j,k), Ey(i+1,j,k). Neighbours missing from the lattice
// are omitted.

package rhg

import (
	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/vec"
)

// family describes one node family: kind, orientation, index counts per
// axis and the odd/even pattern of its doubled coordinates.
type family struct {
	kind   Kind
	axis   Axis
	count  vec.IVec3
	parity vec.IVec3
}

func faceEdgeFamilies(lx, ly, lz int) [6]family {
	return [6]family{
		{KindEdge, AxisX, vec.I(lx, ly+1, lz+1), vec.I(1, 0, 0)},
		{KindEdge, AxisY, vec.I(lx+1, ly, lz+1), vec.I(0, 1, 0)},
		{KindEdge, AxisZ, vec.I(lx+1, ly+1, lz), vec.I(0, 0, 1)},
		{KindFace, AxisX, vec.I(lx+1, ly, lz), vec.I(0, 1, 1)},
		{KindFace, AxisY, vec.I(lx, ly+1, lz), vec.I(1, 0, 1)},
		{KindFace, AxisZ, vec.I(lx, ly, lz+1), vec.I(1, 1, 0)},
	}
}

// inPlane returns the unit doubled steps spanning a face with normal a.
func inPlane(a Axis) [2]vec.IVec3 {
	switch a {
	case AxisX:
		return [2]vec.IVec3{vec.I(0, 1, 0), vec.I(0, 0, 1)}
	case AxisY:
		return [2]vec.IVec3{vec.I(1, 0, 0), vec.I(0, 0, 1)}
	default:
		return [2]vec.IVec3{vec.I(1, 0, 0), vec.I(0, 1, 0)}
	}
}

// GenerateFaceEdge builds the face/edge lattice for p.Lx × p.Ly × p.Lz cells.
// Complexity: O(Lx·Ly·Lz) time and space.
func GenerateFaceEdge(p Params, opts ...Option) (*Lattice, error) {
	cfg := newConfig(lattice.CellLocalKeyed, opts...)
	if err := ValidateParams(VariantFaceEdge, p); err != nil {
		return nil, err
	}
	est := EstimateFaceEdge(p)
	if err := lattice.CheckSize(MethodFaceEdge, est.Nodes, cfg.maxNodes); err != nil {
		return nil, err
	}

	out := &Lattice{
		Variant: VariantFaceEdge,
		Nodes:   make([]Node, 0, lattice.CapHint(est.Nodes)),
		Size:    Size{Lx: p.Lx, Ly: p.Ly, Lz: p.Lz},
	}
	byPos2 := make(map[vec.IVec3]int, lattice.CapHint(est.Nodes))

	for _, f := range faceEdgeFamilies(p.Lx, p.Ly, p.Lz) {
		for i := 0; i < f.count.X; i++ {
			for j := 0; j < f.count.Y; j++ {
				for k := 0; k < f.count.Z; k++ {
					idx := vec.I(i, j, k)
					pos2 := vec.I(2*i, 2*j, 2*k).Add(f.parity)
					n := Node{
						Kind:        f.kind,
						Orientation: f.axis,
						Indices:     idx,
						Pos2:        pos2,
						Position:    pos2.Half(),
					}
					n.ID = cfg.scheme.NodeID(idx, 3, n.Family(), n.Position)
					byPos2[pos2] = len(out.Nodes)
					out.Nodes = append(out.Nodes, n)
				}
			}
		}
	}

	edges := lattice.NewEdgeSet(lattice.CapHint(est.Edges))
	for _, face := range out.Nodes {
		if face.Kind != KindFace {
			continue
		}
		for _, step := range inPlane(face.Orientation) {
			for _, nb := range [2]vec.IVec3{face.Pos2.Add(step.Neg()), face.Pos2.Add(step)} {
				at, ok := byPos2[nb]
				if !ok || out.Nodes[at].Kind != KindEdge {
					continue
				}
				edges.Add(face.ID, out.Nodes[at].ID)
			}
		}
	}
	out.Edges = edges.Edges()

	return out, nil
}

// EstimateFaceEdge returns the closed-form sizes of GenerateFaceEdge(p).
// Invalid sizes yield zero Counts; sizes too large for int saturate at
// math.MaxInt.
// Complexity: O(1).
func EstimateFaceEdge(p Params) Counts {
	if p.Lx < minCells || p.Ly < minCells || p.Lz < minCells {
		return Counts{}
	}
	x, y, z := p.Lx, p.Ly, p.Lz
	x1, y1, z1 := lattice.SatAdd(x, 1), lattice.SatAdd(y, 1), lattice.SatAdd(z, 1)
	mul := lattice.SatMul
	edgeNodes := lattice.SatAdd(mul(x, y1, z1), mul(x1, y, z1), mul(x1, y1, z))
	faceNodes := lattice.SatAdd(mul(x1, y, z), mul(x, y1, z), mul(x, y, z1))
	return Counts{Nodes: lattice.SatAdd(edgeNodes, faceNodes), Edges: mul(4, faceNodes)}
}
