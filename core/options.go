// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options for NewGraph.
// Policy:
//   - Option constructors panic on meaningless input (nil logger).
//   - NewGraph itself never panics.

package core

import (
	"github.com/mandelsoft/logging"
)

// GraphOption configures NewGraph.
type GraphOption func(*graphConfig)

// graphConfig is resolved once per NewGraph call.
type graphConfig struct {
	allowDuplicates bool
	log             logging.Logger
}

func newGraphConfig(opts ...GraphOption) graphConfig {
	cfg := graphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = defaultLogger()
	}

	return cfg
}

// WithDuplicateVertices accepts repeated IDs in the vertex list. The
// duplicates are kept in Graph.Vertices in input order; membership and
// neighbor lookup are by value and therefore unaffected.
func WithDuplicateVertices() GraphOption {
	return func(c *graphConfig) { c.allowDuplicates = true }
}

// WithLogger routes construction diagnostics to l instead of the REALM logger.
// Panics on nil.
func WithLogger(l logging.Logger) GraphOption {
	if l == nil {
		panic("core: WithLogger(nil)")
	}

	return func(c *graphConfig) { c.log = l }
}
