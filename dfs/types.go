// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/mandelsoft/logging"
)

// Unlimited disables the MaxDepth bound.
const Unlimited = -1

// Option configures optional behavior of the path enumeration.
// Use with AllPaths(g, start, end, opts...).
type Option func(*Options)

// Options holds configurable parameters of one enumeration.
type Options struct {
	// MaxDepth, if non-negative, bounds the number of edges of a reported
	// path. Branches longer than MaxDepth are abandoned. Default is Unlimited.
	MaxDepth int

	// Logger receives trace output; defaults to the REALM logger.
	Logger logging.Logger
}

// DefaultOptions returns Options with no depth limit and no explicit logger.
func DefaultOptions() Options {
	return Options{
		MaxDepth: Unlimited,
	}
}

// WithMaxDepth bounds the path length in edges. Unlimited clears the bound.
// Panics if limit < Unlimited.
func WithMaxDepth(limit int) Option {
	if limit < Unlimited {
		panic(fmt.Sprintf("dfs: WithMaxDepth(%d): limit must be >= 0 or Unlimited", limit))
	}

	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithLogger routes enumeration diagnostics to l. Panics on nil.
func WithLogger(l logging.Logger) Option {
	if l == nil {
		panic("dfs: WithLogger(nil)")
	}

	return func(o *Options) {
		o.Logger = l
	}
}
