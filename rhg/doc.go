// Package rhg generates the two fault-tolerant 3D lattice families used for
// measurement-based quantum computation. The families share a name in the
// editor but are independent constructions:
//
//	VariantFaceEdge (face/edge bipartite lattice):
//	  For Lx, Ly, Lz ≥ 1 cells, three EDGE families Ex, Ey, Ez sit on the
//	  midpoints of the cubic cell edges and three FACE families Fx, Fy, Fz
//	  on the face centres. Every FACE node connects to the four EDGE nodes
//	  bounding its face; every edge of the graph joins a FACE to an EDGE.
//	  Coordinates are kept doubled (Pos2) so every position is an integer
//	  and neighbour lookup is exact; Position = Pos2/2 only at the end.
//
//	VariantSurfaceCode (rotated surface code with boundaries):
//	  Per layer z ∈ [0, Lz): data qubits at (2i, 2j); bulk ancillas at odd
//	  (x, y) strictly inside the data box, X-type when (x+y) mod 4 == 0 and
//	  Z-type when it is 2; boundary ancillas one unit outside a side, kept
//	  only when their type equals that side's declared Boundary type. Even
//	  layers carry Z ancillas, odd layers X ancillas. Data qubits link to
//	  the same site one layer down; ancillas link to their diagonal data
//	  neighbours that exist.
//
// Both families expose a pure generator returning a *Lattice, a conversion
// to lattice.Graph with an origin offset, and closed-form Counts that equal
// the generated sizes exactly for every valid Params.
//
// ID schemes:
//
//	Face/edge defaults to lattice.CellLocalKeyed ("i_j_k_Fx"); the surface
//	code defaults to lattice.PositionKeyed ("x_y_z"). WithIDScheme overrides
//	either; the choice is fixed for one call.
package rhg
