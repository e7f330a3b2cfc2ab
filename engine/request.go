// SPDX-License-Identifier: MIT
// Package: qlattice/engine
//
// request.go: the two request kinds accepted by an Engine.

package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"

	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/rhg"
	"github.com/katalvlaran/qlattice/tiling"
	"github.com/katalvlaran/qlattice/vec"
)

// Kind names a request family; it labels metrics and log lines.
type Kind string

// Request kinds.
const (
	KindTiling Kind = "tiling"
	KindRHG    Kind = "rhg"
)

// Estimate is the closed-form size of a request's output.
type Estimate struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

// Request is a generation request. It is implemented by TilingRequest and
// RHGRequest only.
type Request interface {
	// Kind returns the request family.
	Kind() Kind
	// Estimate validates the request and returns its output size.
	Estimate() (Estimate, error)

	fingerprint() (string, error)
	generate(maxNodes int) (lattice.Graph, error)
}

// TilingRequest tiles Pattern over Range. BaseZ places 2D patterns on a
// depth slice; Scheme selects node IDs (zero value: cell-local).
type TilingRequest struct {
	Pattern tiling.Pattern   `json:"pattern"`
	Range   tiling.CellRange `json:"range"`
	BaseZ   float64          `json:"baseZ,omitempty"`
	Scheme  lattice.IDScheme `json:"scheme,omitempty"`
}

// Kind returns KindTiling.
func (TilingRequest) Kind() Kind { return KindTiling }

// Estimate validates the pattern and range and returns the exact output size.
func (r TilingRequest) Estimate() (Estimate, error) {
	vs := lattice.NewViolations(methodEstimate)
	vs.Merge(tiling.ValidatePattern(r.Pattern))
	vs.Merge(tiling.ValidateRange(r.Pattern, r.Range))
	if !r.Scheme.Valid() {
		vs.Invalid("scheme", "unknown id scheme %d", int(r.Scheme))
	}
	if math.IsNaN(r.BaseZ) || math.IsInf(r.BaseZ, 0) {
		vs.Invalid("baseZ", "must be finite, got %g", r.BaseZ)
	}
	if err := vs.Err(); err != nil {
		return Estimate{}, err
	}
	return Estimate{
		Nodes: tiling.EstimateNodeCount(r.Pattern, r.Range),
		Edges: tiling.EstimateEdgeCount(r.Pattern, r.Range),
	}, nil
}

func (r TilingRequest) fingerprint() (string, error) { return fingerprint(KindTiling, r) }

func (r TilingRequest) generate(maxNodes int) (lattice.Graph, error) {
	return tiling.Generate(r.Pattern, r.Range,
		tiling.WithBaseZ(r.BaseZ),
		tiling.WithIDScheme(r.Scheme),
		tiling.WithMaxNodes(maxNodes),
	)
}

// RHGRequest builds an rhg lattice and places it at Origin. A nil Scheme
// keeps the variant's default ID scheme.
type RHGRequest struct {
	Variant rhg.Variant       `json:"variant"`
	Params  rhg.Params        `json:"params"`
	Origin  vec.Vec3          `json:"origin"`
	Scheme  *lattice.IDScheme `json:"scheme,omitempty"`
}

// Kind returns KindRHG.
func (RHGRequest) Kind() Kind { return KindRHG }

// Estimate validates the parameters and returns the closed-form size.
func (r RHGRequest) Estimate() (Estimate, error) {
	vs := lattice.NewViolations(methodEstimate)
	c, err := rhg.Estimate(r.Variant, r.Params)
	vs.Merge(err)
	if r.Scheme != nil && !r.Scheme.Valid() {
		vs.Invalid("scheme", "unknown id scheme %d", int(*r.Scheme))
	}
	for _, f := range [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			vs.Invalid("origin", "must be finite, got %v", r.Origin)
			break
		}
	}
	if err := vs.Err(); err != nil {
		return Estimate{}, err
	}
	return Estimate{Nodes: c.Nodes, Edges: c.Edges}, nil
}

func (r RHGRequest) fingerprint() (string, error) { return fingerprint(KindRHG, r) }

func (r RHGRequest) generate(maxNodes int) (lattice.Graph, error) {
	opts := []rhg.Option{rhg.WithMaxNodes(maxNodes)}
	if r.Scheme != nil {
		opts = append(opts, rhg.WithIDScheme(*r.Scheme))
	}
	l, err := rhg.Generate(r.Variant, r.Params, opts...)
	if err != nil {
		return lattice.Graph{}, err
	}
	return l.ToGraph(r.Origin), nil
}

// fingerprint hashes the JSON form of a request; equal requests produce
// equal graphs.
func fingerprint(k Kind, r Request) (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("%s: fingerprint %s request: %w", methodGenerate, k, err)
	}
	sum := sha256.Sum256(append([]byte(k+":"), b...))
	return hex.EncodeToString(sum[:]), nil
}
