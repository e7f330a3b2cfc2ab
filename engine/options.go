// SPDX-License-Identifier: MIT
// Package: qlattice/engine
//
// options.go: engine configuration.

package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/qlattice/lattice"
)

// Defaults applied by New.
const (
	DefaultCacheSize   = 64
	DefaultParallelism = 4
)

// Option customises an Engine.
type Option func(*config)

type config struct {
	maxNodes    int
	cacheSize   int
	parallelism int
	logger      *zap.Logger
	registerer  prometheus.Registerer
}

func newConfig(opts ...Option) config {
	cfg := config{
		maxNodes:    lattice.DefaultMaxNodes,
		cacheSize:   DefaultCacheSize,
		parallelism: DefaultParallelism,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxNodes sets the node-count ceiling. Panics if n < 1.
func WithMaxNodes(n int) Option {
	if n < 1 {
		panic("engine: WithMaxNodes(n<1)")
	}
	return func(c *config) { c.maxNodes = n }
}

// WithCacheSize sets how many generated graphs are kept; 0 disables the
// cache. Panics if n < 0.
func WithCacheSize(n int) Option {
	if n < 0 {
		panic("engine: WithCacheSize(n<0)")
	}
	return func(c *config) { c.cacheSize = n }
}

// WithParallelism bounds the number of concurrent generations in
// GenerateBatch. Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("engine: WithParallelism(n<1)")
	}
	return func(c *config) { c.parallelism = n }
}

// WithLogger sets the engine logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l.Named("engine") }
}

// WithRegisterer registers the engine metrics with r. Panics on nil.
func WithRegisterer(r prometheus.Registerer) Option {
	if r == nil {
		panic("engine: WithRegisterer(nil)")
	}
	return func(c *config) { c.registerer = r }
}
