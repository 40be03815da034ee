// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng         = nil   (pure/deterministic unless seeded)
//   • edgeLabels  = 1     (every stochastic edge labeled 0)
//   • inverse     = false (parents built on demand)
//   • name        = ""

package builder

import "math/rand"

const defaultEdgeLabels = 1

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Edge labels are drawn from [0, edgeLabels).
	edgeLabels int
	// Build parents on the finished graph.
	inverse bool
	// Name of the finished graph.
	name string
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{edgeLabels: defaultEdgeLabels}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// edgeLabel draws an edge label; without an RNG or with a single label it is 0.
func (c builderConfig) edgeLabel() int {
	if c.rng == nil || c.edgeLabels <= 1 {
		return 0
	}

	return c.rng.Intn(c.edgeLabels)
}
