// SPDX-License-Identifier: MIT
// Package: qlattice/engine
//
// engine.go: Engine construction and the estimate/generate pipeline.

package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qlattice/lattice"
	"github.com/katalvlaran/qlattice/project"
)

// Method tags prefixed to errors.
const (
	methodEstimate = "engine.Estimate"
	methodGenerate = "engine.Generate"
	methodBatch    = "engine.GenerateBatch"
	methodProject  = "engine.GenerateIntoProject"
)

// ErrNilRequest is returned for a nil Request.
var ErrNilRequest = errors.New("engine: nil request")

// Result is one generated lattice.
type Result struct {
	Kind     Kind          `json:"kind"`
	Estimate Estimate      `json:"estimate"`
	Graph    lattice.Graph `json:"graph"`
	// Cached reports that Graph was served from the result cache.
	Cached bool `json:"cached"`
}

// Engine runs generation requests. It is safe for concurrent use.
type Engine struct {
	cfg     config
	log     *zap.Logger
	metrics *metrics
	cache   *lru.Cache[string, lattice.Graph] // nil when disabled
}

// New builds an Engine. It fails only when metric registration or cache
// construction fails.
func New(opts ...Option) (*Engine, error) {
	cfg := newConfig(opts...)
	e := &Engine{cfg: cfg, log: cfg.logger, metrics: newMetrics()}

	if cfg.registerer != nil {
		if err := e.metrics.register(cfg.registerer); err != nil {
			return nil, fmt.Errorf("engine.New: register metrics: %w", err)
		}
	}
	if cfg.cacheSize > 0 {
		c, err := lru.New[string, lattice.Graph](cfg.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("engine.New: cache: %w", err)
		}
		e.cache = c
	}
	return e, nil
}

// MaxNodes returns the configured node ceiling.
func (e *Engine) MaxNodes() int { return e.cfg.maxNodes }

// Estimate validates req and returns its closed-form size without
// generating anything.
func (e *Engine) Estimate(req Request) (Estimate, error) {
	if req == nil {
		return Estimate{}, ErrNilRequest
	}
	return req.Estimate()
}

// Generate runs req through estimate → ceiling → cache → generate.
// The returned graph is owned by the caller.
func (e *Engine) Generate(ctx context.Context, req Request) (Result, error) {
	if req == nil {
		return Result{}, ErrNilRequest
	}
	kind := req.Kind()
	if err := ctx.Err(); err != nil {
		e.count(kind, outcomeCanceled)
		return Result{}, err
	}

	est, err := req.Estimate()
	if err != nil {
		e.count(kind, outcomeInvalid)
		e.log.Info("request rejected", zap.String("kind", string(kind)), zap.Error(err))
		return Result{}, err
	}
	if err := lattice.CheckSize(methodGenerate, est.Nodes, e.cfg.maxNodes); err != nil {
		e.count(kind, outcomeSizeLimit)
		e.log.Info("request rejected",
			zap.String("kind", string(kind)),
			zap.Int("estimated_nodes", est.Nodes),
			zap.Int("max_nodes", e.cfg.maxNodes),
			zap.Error(err),
		)
		return Result{}, err
	}

	key, err := req.fingerprint()
	if err != nil {
		e.count(kind, outcomeFailed)
		return Result{}, err
	}
	if e.cache != nil {
		if g, ok := e.cache.Get(key); ok {
			e.count(kind, outcomeCached)
			return Result{Kind: kind, Estimate: est, Graph: g.Clone(), Cached: true}, nil
		}
	}

	start := time.Now()
	g, err := req.generate(e.cfg.maxNodes)
	if err != nil {
		e.count(kind, outcomeFailed)
		e.log.Warn("generation failed", zap.String("kind", string(kind)), zap.Error(err))
		return Result{}, err
	}
	elapsed := time.Since(start)

	e.count(kind, outcomeGenerated)
	e.metrics.nodes.WithLabelValues(string(kind)).Observe(float64(g.NodeCount()))
	e.metrics.edges.WithLabelValues(string(kind)).Observe(float64(g.EdgeCount()))
	e.metrics.duration.WithLabelValues(string(kind)).Observe(elapsed.Seconds())
	e.log.Debug("lattice generated",
		zap.String("kind", string(kind)),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Duration("elapsed", elapsed),
	)

	if e.cache != nil {
		e.cache.Add(key, g.Clone())
	}
	return Result{Kind: kind, Estimate: est, Graph: g}, nil
}

// GenerateBatch generates every request with at most the configured
// parallelism. Results are in request order. The first failure cancels the
// requests that have not started and is returned with its index.
func (e *Engine) GenerateBatch(ctx context.Context, reqs []Request) ([]Result, error) {
	out := make([]Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.parallelism)

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			res, err := e.Generate(gctx, req)
			if err != nil {
				return fmt.Errorf("%s: request %d: %w", methodBatch, i, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// GenerateIntoProject generates req and merges the result into store.
func (e *Engine) GenerateIntoProject(ctx context.Context, store *project.Graph, req Request) (Result, project.MergeReport, error) {
	if store == nil {
		return Result{}, project.MergeReport{}, fmt.Errorf("%s: nil store: %w", methodProject, lattice.ErrInvalidParameter)
	}
	res, err := e.Generate(ctx, req)
	if err != nil {
		return Result{}, project.MergeReport{}, err
	}
	rep, err := store.Merge(res.Graph)
	if err != nil {
		return res, project.MergeReport{}, fmt.Errorf("%s: %w", methodProject, err)
	}
	e.log.Debug("merged into project",
		zap.String("kind", string(res.Kind)),
		zap.Int("added_nodes", rep.AddedNodes),
		zap.Int("skipped_nodes", rep.SkippedNodes),
		zap.Int("added_edges", rep.AddedEdges),
		zap.Int("skipped_edges", rep.SkippedEdges),
	)
	return res, rep, nil
}

func (e *Engine) count(k Kind, outcome string) {
	e.metrics.requests.WithLabelValues(string(k), outcome).Inc()
}
