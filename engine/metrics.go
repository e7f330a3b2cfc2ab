// SPDX-License-Identifier: MIT
// Package: qlattice/engine
//
// metrics.go: prometheus collectors owned by one Engine.

package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "qlattice"
	metricsSubsystem = "engine"
)

// Request outcomes.
const (
	outcomeGenerated = "generated"
	outcomeCached    = "cached"
	outcomeInvalid   = "invalid"
	outcomeSizeLimit = "size_limit"
	outcomeCanceled  = "canceled"
	outcomeFailed    = "failed"
)

type metrics struct {
	requests *prometheus.CounterVec
	nodes    *prometheus.HistogramVec
	edges    *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	sizeBuckets := prometheus.ExponentialBuckets(8, 2, 8) // 8 … 1024

	return &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "requests_total",
				Help:      "Generation requests by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		nodes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "generated_nodes",
				Help:      "Node count of generated lattices",
				Buckets:   sizeBuckets,
			},
			[]string{"kind"},
		),
		edges: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "generated_edges",
				Help:      "Edge count of generated lattices",
				Buckets:   sizeBuckets,
			},
			[]string{"kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "generation_duration_seconds",
				Help:      "Time spent generating a lattice",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
	}
}

func (m *metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.requests, m.nodes, m.edges, m.duration}
}

// register adds every collector to r. On failure the collectors already
// added are unregistered again, so r is left as it was.
func (m *metrics) register(r prometheus.Registerer) error {
	cs := m.collectors()
	for i, c := range cs {
		if err := r.Register(c); err != nil {
			for _, done := range cs[:i] {
				r.Unregister(done)
			}
			return err
		}
	}
	return nil
}
