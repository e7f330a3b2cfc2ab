// Package lattice defines the value types every generator in this module
// emits, together with the graph-assembly primitives they share.
//
// The package offers the following key components:
//
//   - Output model:
//     – Node:  globally unique ID, rounded world Position, Role.
//     – Edge:  canonical undirected edge, Source < Target, ID "Source--Target".
//     – Graph: Nodes + Edges, the shape consumed by graph stores and renderers.
//   - Assembly primitives:
//     – EdgeKey / NewEdge: lexicographic normalisation of an endpoint pair.
//     – EdgeSet:           seen-key set; rejects duplicates and self-loops.
//     – IDScheme:          PositionKeyed ("x_y_z") or CellLocalKeyed
//     ("cx_cy[_cz]_local").
//   - Error taxonomy:
//     – ErrInvalidParameter, ErrDimensionMismatch: reported through
//     *ValidationError, which enumerates every violation found.
//     – ErrSizeLimit: reported through *SizeLimitError with the estimate
//     and the ceiling.
//   - Size policy:
//     – DefaultMaxNodes and CheckSize gate generation before any work.
//
// Guarantees:
//
//   - Everything here is a pure value or a pure function; there is no
//     package-level mutable state and no locking.
//   - An Edge built by NewEdge always satisfies Source < Target and
//     ID == Source + "--" + Target.
package lattice
