// SPDX-License-Identifier: MIT

// Package engine orchestrates lattice generation requests.
//
// An Engine accepts two kinds of Request:
//
//   - TilingRequest: a periodic pattern tiled over a cell range.
//   - RHGRequest: a face/edge or surface-code lattice of Lx × Ly × Lz cells.
//
// Every request goes through the same pipeline:
//
//  1. validate and estimate (closed form, no enumeration);
//  2. refuse when the estimated node count exceeds the ceiling;
//  3. serve from the result cache when an identical request was generated
//     before (generation is deterministic);
//  4. generate, record metrics, cache and return.
//
// GenerateBatch runs independent requests concurrently with bounded
// parallelism and returns results in request order. GenerateIntoProject
// generates and then merges the result into a project.Graph.
//
// Configuration is resolved once by New from functional options:
//
//	WithMaxNodes(n)       node ceiling            (default 1000)
//	WithCacheSize(n)      cached results, 0 = off (default 64)
//	WithParallelism(n)    batch workers           (default 4)
//	WithLogger(l)         *zap.Logger             (default no-op)
//	WithRegisterer(r)     prometheus registerer   (default: metrics unregistered)
//
// A single generation is not interruptible; the context is checked before
// it starts.
package engine
