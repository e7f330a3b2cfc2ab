// SPDX-License-Identifier: MIT
// Package: qlattice/presets
//
// options.go: loader options.
//
// Defaults:
//   • logger = zap.NewNop()

package presets

import "go.uber.org/zap"

// Option customises a Library.
type Option func(*config)

type config struct {
	logger *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the logger used to report loaded and dropped presets.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("presets: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l.Named("presets") }
}
