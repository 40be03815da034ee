// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_random_regular.go - RandomRegular(n, nLabels, d) constructor.
//
// Canonical model:
//   • Directed out-regular graph: every vertex gets exactly d distinct
//     out-neighbours, never itself. In-degrees follow from the draw.
//   • Targets are drawn per source vertex (ascending) by rejection against the
//     edges already added, so the cost stays ~O(n·d) while d ≪ n.
//
// Contract:
//   • n ≥ 1; nLabels ≥ 1 (else ErrTooFewVertices); 0 ≤ d < n (else ErrInvalidDegree).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Vertex labels are drawn first, like RandomLabeled; edge labels via WithEdgeLabels.
//
// Determinism:
//   • Fixed draw order (labels, then sources ascending) → identical graphs per seed.

package builder

import "fmt"

const (
	methodRandomRegular = "RandomRegular"
	minRRVertices       = 1
)

// RandomRegular returns a Constructor drawing n labeled vertices, each with
// out-degree exactly d.
func RandomRegular(n, nLabels, d int) Constructor {
	return func(dr *Draft, cfg builderConfig) error {
		// 1) Parameter validation (fail fast; no side effects on invalid input).
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if nLabels < minLabels {
			return fmt.Errorf("%s: nLabels=%d < min=%d: %w", methodRandomRegular, nLabels, minLabels, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrInvalidDegree)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
		}

		// 2) Vertices with labels.
		base := addLabeledVertices(dr, cfg, n, nLabels)

		// 3) d distinct non-self targets per source; x ≥ u is shifted past u.
		for u := 0; u < n; u++ {
			for added := 0; added < d; {
				v := cfg.rng.Intn(n - 1)
				if v >= u {
					v++
				}
				if dr.HasEdge(base+u, base+v) {
					continue
				}
				if _, err := dr.AddEdge(base+u, base+v, cfg.edgeLabel()); err != nil {
					return fmt.Errorf("%s: %w", methodRandomRegular, err)
				}
				added++
			}
		}

		return nil
	}
}
