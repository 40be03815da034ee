// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_path.go - deterministic topologies: Path, Cycle and Star.
//
// Contract:
//   • Vertices are appended in argument order; edges are emitted in ascending
//     vertex order and labeled 0.
//   • No RNG is consulted; the result depends only on the arguments.

package builder

import "fmt"

const (
	methodPath   = "Path"
	methodCycle  = "Cycle"
	methodStar   = "Star"
	minPathNodes = 1
	minStarNodes = 2
)

// Path returns a Constructor adding the directed path labels[0]→labels[1]→….
func Path(labels ...int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if len(labels) < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, len(labels), minPathNodes, ErrTooFewVertices)
		}
		base := d.Size()
		for _, l := range labels {
			d.AddVertex(l)
		}
		for i := 0; i+1 < len(labels); i++ {
			if _, err := d.AddEdge(base+i, base+i+1, 0); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor adding the directed cycle over labels, closing
// the last vertex back to the first. A single label yields a self-loop.
func Cycle(labels ...int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		n := len(labels)
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minPathNodes, ErrTooFewVertices)
		}
		base := d.Size()
		for _, l := range labels {
			d.AddVertex(l)
		}
		for i := 0; i < n; i++ {
			if _, err := d.AddEdge(base+i, base+(i+1)%n, 0); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}

		return nil
	}
}

// Star returns a Constructor adding one center labeled center with edges to
// n-1 leaves labeled leaf (n ≥ 2 vertices in total).
func Star(center, leaf, n int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		c := d.AddVertex(center)
		for i := 1; i < n; i++ {
			v := d.AddVertex(leaf)
			if _, err := d.AddEdge(c, v, 0); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}
