// SPDX-License-Identifier: MIT
// Package: qlattice/rhg
//
// impl_surface.go: rotated surface code stacked over Lz layers.
//
// Layer z (integer coordinates, data box [0, 2Lx-2] × [0, 2Ly-2]):
//   • data     (2i, 2j)                         i∈[0,Lx-1] j∈[0,Ly-1]
//   • bulk     odd (x, y), 1 ≤ x ≤ 2Lx-3, 1 ≤ y ≤ 2Ly-3
//   • bottom   (x, -1)     x odd in [1, 2Lx-3]   kept iff type == Boundary.Bottom
//   • top      (x, 2Ly-1)  x odd in [1, 2Lx-3]   kept iff type == Boundary.Top
//   • left     (-1, y)     y odd in [1, 2Ly-3]   kept iff type == Boundary.Left
//   • right    (2Lx-1, y)  y odd in [1, 2Ly-3]   kept iff type == Boundary.Right
// where type(x, y) = X if (x+y) mod 4 == 0, Z if (x+y) mod 4 == 2.
// Even layers keep Z ancillas, odd layers X ancillas.
//
// Edges: data (x,y,z)–(x,y,z-1) for z > 0; each ancilla to the data qubits
// at (x±1, y±1) in its own layer.

package rhg

import (
	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/vec"
)

// diagonals are the ancilla→data steps in emission order.
var diagonals = [4]vec.IVec3{
	{X: -1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: -1}, {X: 1, Y: 1},
}

// mod4 is the non-negative remainder of n/4.
func mod4(n int) int { return ((n % 4) + 4) % 4 }

// stabilizerType classifies an odd/odd site.
func stabilizerType(x, y int) EdgeType {
	if mod4(x+y) == 0 {
		return EdgeX
	}
	return EdgeZ
}

// layerType is the ancilla type carried by layer z.
func layerType(z int) EdgeType {
	if z%2 == 0 {
		return EdgeZ
	}
	return EdgeX
}

func ancillaKind(t EdgeType) Kind {
	if t == EdgeX {
		return KindAncillaX
	}
	return KindAncillaZ
}

// surfaceBuilder accumulates one surface-code lattice.
type surfaceBuilder struct {
	p      Params
	b      Boundary
	cfg    config
	out    *Lattice
	byPos  map[vec.IVec3]int
	edges  *lattice.EdgeSet
	layerZ int
}

func (sb *surfaceBuilder) add(kind Kind, pos vec.IVec3) Node {
	n := Node{
		Kind:     kind,
		Indices:  pos,
		Pos2:     vec.I(2*pos.X, 2*pos.Y, 2*pos.Z),
		Position: pos.Vec3(),
	}
	n.ID = sb.cfg.scheme.NodeID(pos, 3, string(kind), n.Position)
	sb.byPos[pos] = len(sb.out.Nodes)
	sb.out.Nodes = append(sb.out.Nodes, n)
	return n
}

// link connects id to the data qubit at pos when one exists.
func (sb *surfaceBuilder) link(id string, pos vec.IVec3) {
	at, ok := sb.byPos[pos]
	if !ok || sb.out.Nodes[at].Kind != KindData {
		return
	}
	sb.edges.Add(id, sb.out.Nodes[at].ID)
}

// ancilla adds the ancilla at (x, y, z) when its type matches the layer and,
// for boundary sites, the side's declared type.
func (sb *surfaceBuilder) ancilla(x, y int, side EdgeType, onBoundary bool) {
	t := stabilizerType(x, y)
	if t != layerType(sb.layerZ) {
		return
	}
	if onBoundary && t != side {
		return
	}
	pos := vec.I(x, y, sb.layerZ)
	n := sb.add(ancillaKind(t), pos)
	for _, d := range diagonals {
		sb.link(n.ID, pos.Add(d))
	}
}

// GenerateSurfaceCode builds the rotated surface code lattice for p.
// A zero p.Boundary means BoundaryXXZZ.
// Complexity: O(Lx·Ly·Lz) time and space.
func GenerateSurfaceCode(p Params, opts ...Option) (*Lattice, error) {
	cfg := newConfig(lattice.PositionKeyed, opts...)
	if err := ValidateParams(VariantSurfaceCode, p); err != nil {
		return nil, err
	}
	est := EstimateSurfaceCode(p)
	if err := lattice.CheckSize(MethodSurfaceCode, est.Nodes, cfg.maxNodes); err != nil {
		return nil, err
	}

	sb := &surfaceBuilder{
		p:   p,
		b:   p.Boundary.OrDefault(),
		cfg: cfg,
		out: &Lattice{
			Variant: VariantSurfaceCode,
			Nodes:   make([]Node, 0, lattice.CapHint(est.Nodes)),
			Size:    Size{Lx: p.Lx, Ly: p.Ly, Lz: p.Lz},
		},
		byPos: make(map[vec.IVec3]int, lattice.CapHint(est.Nodes)),
		edges: lattice.NewEdgeSet(lattice.CapHint(est.Edges)),
	}

	xMax, yMax := 2*p.Lx-2, 2*p.Ly-2 // data bounding box
	for z := 0; z < p.Lz; z++ {
		sb.layerZ = z

		for x := 0; x <= xMax; x += 2 {
			for y := 0; y <= yMax; y += 2 {
				n := sb.add(KindData, vec.I(x, y, z))
				if z > 0 {
					sb.link(n.ID, vec.I(x, y, z-1))
				}
			}
		}

		for x := 1; x < xMax; x += 2 {
			for y := 1; y < yMax; y += 2 {
				sb.ancilla(x, y, "", false)
			}
		}
		for x := 1; x < xMax; x += 2 {
			sb.ancilla(x, -1, sb.b.Bottom, true)
			sb.ancilla(x, yMax+1, sb.b.Top, true)
		}
		for y := 1; y < yMax; y += 2 {
			sb.ancilla(-1, y, sb.b.Left, true)
			sb.ancilla(xMax+1, y, sb.b.Right, true)
		}
	}

	sb.out.Edges = sb.edges.Edges()
	return sb.out, nil
}

// countParity counts a ∈ [0, n) with a mod 2 == parity.
func countParity(n, parity int) int {
	if n <= 0 {
		return 0
	}
	if parity == 0 {
		return (n + 1) / 2
	}
	return n / 2
}

// sideCount returns how many ancillas of type t a side holds when its
// along-edge index a ∈ [0, n) yields X exactly when a ≡ xParity (mod 2).
func sideCount(n, xParity int, side, t EdgeType) int {
	if side != t {
		return 0
	}
	if t == EdgeX {
		return countParity(n, xParity)
	}
	return countParity(n, 1-xParity)
}

// EstimateSurfaceCode returns the closed-form sizes of GenerateSurfaceCode(p).
// Invalid sizes yield zero Counts; sizes too large for int saturate at
// math.MaxInt.
// Complexity: O(1).
func EstimateSurfaceCode(p Params) Counts {
	if p.Lx < minCells || p.Ly < minCells || p.Lz < minCells {
		return Counts{}
	}
	b := p.Boundary.OrDefault()
	m, n := p.Lx-1, p.Ly-1 // odd sites along x and along y

	// Bulk site (2a+1, 2b+1) is Z when a+b is even.
	evenA, oddA := countParity(m, 0), countParity(m, 1)
	evenB, oddB := countParity(n, 0), countParity(n, 1)
	mul, add := lattice.SatMul, lattice.SatAdd
	bulk := map[EdgeType]int{
		EdgeZ: add(mul(evenA, evenB), mul(oddA, oddB)),
		EdgeX: add(mul(evenA, oddB), mul(oddA, evenB)),
	}

	// Along-edge X parity per side: bottom a even, top a ≡ Ly, left b even,
	// right b ≡ Lx.
	boundary := map[EdgeType]int{}
	for _, t := range [2]EdgeType{EdgeX, EdgeZ} {
		boundary[t] = add(
			sideCount(m, 0, b.Bottom, t),
			sideCount(m, p.Ly%2, b.Top, t),
			sideCount(n, 0, b.Left, t),
			sideCount(n, p.Lx%2, b.Right, t),
		)
	}

	evenLayers, oddLayers := p.Lz/2+p.Lz%2, p.Lz/2
	data := mul(p.Lx, p.Ly)
	zAnc, xAnc := add(bulk[EdgeZ], boundary[EdgeZ]), add(bulk[EdgeX], boundary[EdgeX])
	zLinks := add(mul(4, bulk[EdgeZ]), mul(2, boundary[EdgeZ]))
	xLinks := add(mul(4, bulk[EdgeX]), mul(2, boundary[EdgeX]))

	nodes := add(mul(p.Lz, data), mul(evenLayers, zAnc), mul(oddLayers, xAnc))
	edges := add(mul(data, p.Lz-1), mul(evenLayers, zLinks), mul(oddLayers, xLinks))

	return Counts{Nodes: nodes, Edges: edges}
}
