// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithEdgeLabels makes stochastic constructors draw edge labels uniformly from
// [0, k). The default k = 1 labels every edge 0. Panics on k < 1.
func WithEdgeLabels(k int) BuilderOption {
	if k < 1 {
		panic(fmt.Sprintf("builder: WithEdgeLabels(%d)", k))
	}
	return func(c *builderConfig) {
		c.edgeLabels = k
	}
}

// WithInverseAdjacency builds the parent lists of the finished graph eagerly.
func WithInverseAdjacency() BuilderOption {
	return func(c *builderConfig) {
		c.inverse = true
	}
}

// WithName names the finished graph.
func WithName(name string) BuilderOption {
	return func(c *builderConfig) {
		c.name = name
	}
}
