// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_random.go - stochastic labeled topologies.
//
// Canonical models:
//   • RandomSparse:  include every ordered pair (i,j), i≠j, independently with
//     probability p (Erdős–Rényi G(n,p), directed, no self-loops).
//   • RandomLabeled: draw exactly round(n·avgDegree) distinct directed edges
//     uniformly; the cost is O(n + m) instead of O(n²), so it scales to large
//     data graphs.
//
// Both draw vertex labels uniformly from [0, nLabels) and edge labels from
// [0, k) (WithEdgeLabels). Vertex labels are drawn first, in ascending id
// order, then edges; results are deterministic for a fixed seed.

package builder

import (
	"fmt"
	"math"
)

const (
	methodRandomSparse  = "RandomSparse"
	methodRandomLabeled = "RandomLabeled"
	minRandomVertices   = 1
	minLabels           = 1
	probMin             = 0.0
	probMax             = 1.0
)

// RandomSparse returns a Constructor sampling a directed G(n,p) graph.
func RandomSparse(n, nLabels int, p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		// 1) Validate parameters (fail fast, no side effects).
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomVertices, ErrTooFewVertices)
		}
		if nLabels < minLabels {
			return fmt.Errorf("%s: nLabels=%d < min=%d: %w", methodRandomSparse, nLabels, minLabels, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		stochastic := nLabels > 1 || (p > probMin && p < probMax) || cfg.edgeLabels > 1
		if cfg.rng == nil && stochastic {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices with labels.
		base := addLabeledVertices(d, cfg, n, nLabels)

		// 3) Bernoulli trial per ordered pair, i asc then j asc.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if _, err := d.AddEdge(base+i, base+j, cfg.edgeLabel()); err != nil {
					return fmt.Errorf("%s: %w", methodRandomSparse, err)
				}
			}
		}

		return nil
	}
}

// RandomLabeled returns a Constructor drawing n vertices and round(n·avgDegree)
// distinct directed edges without self-loops. avgDegree must lie in [0, n-1].
func RandomLabeled(n, nLabels int, avgDegree float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		// 1) Validate parameters.
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomLabeled, n, minRandomVertices, ErrTooFewVertices)
		}
		if nLabels < minLabels {
			return fmt.Errorf("%s: nLabels=%d < min=%d: %w", methodRandomLabeled, nLabels, minLabels, ErrTooFewVertices)
		}
		if avgDegree < 0 || avgDegree > float64(n-1) || math.IsNaN(avgDegree) {
			return fmt.Errorf("%s: avgDegree=%g not in [0,%d]: %w", methodRandomLabeled, avgDegree, n-1, ErrInvalidDegree)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomLabeled, ErrNeedRandSource)
		}

		// 2) Vertices, then edges by rejection of self-loops and duplicates.
		base := addLabeledVertices(d, cfg, n, nLabels)
		m := int(math.Round(float64(n) * avgDegree))
		for added := 0; added < m; {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v || d.HasEdge(base+u, base+v) {
				continue
			}
			if _, err := d.AddEdge(base+u, base+v, cfg.edgeLabel()); err != nil {
				return fmt.Errorf("%s: %w", methodRandomLabeled, err)
			}
			added++
		}

		return nil
	}
}

// addLabeledVertices appends n vertices with labels drawn from [0, nLabels)
// and returns the id of the first one.
func addLabeledVertices(d *Draft, cfg builderConfig, n, nLabels int) int {
	base := d.Size()
	for i := 0; i < n; i++ {
		label := 0
		if nLabels > 1 {
			label = cfg.rng.Intn(nLabels)
		}
		d.AddVertex(label)
	}

	return base
}
