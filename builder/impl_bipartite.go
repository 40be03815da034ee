// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2, left, right) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left vertices (label left) come first, then right vertices (label right).
//   • Every left vertex points at every right vertex, labeled 0; no edges
//     inside a side and none from right to left.

package builder

import "fmt"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor adding K(n1,n2) oriented left→right.
func CompleteBipartite(n1, n2, left, right int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		base := d.Size()
		for i := 0; i < n1; i++ {
			d.AddVertex(left)
		}
		for j := 0; j < n2; j++ {
			d.AddVertex(right)
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if _, err := d.AddEdge(base+i, base+n1+j, 0); err != nil {
					return fmt.Errorf("%s: %w", methodCompleteBipartite, err)
				}
			}
		}

		return nil
	}
}
