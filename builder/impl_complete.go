// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_complete.go - Complete(labels...) constructor.
//
// Contract:
//   • One vertex per label, appended in argument order (at least one).
//   • Emits every ordered pair (i,j), i≠j, lexicographically, labeled 0:
//     the complete digraph on len(labels) vertices, no self-loops.
//
// Complexity:
//   • Time O(n²), no extra space beyond the Draft.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor adding the complete digraph over labels.
func Complete(labels ...int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		n := len(labels)
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := d.Size()
		for _, l := range labels {
			d.AddVertex(l)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if _, err := d.AddEdge(base+i, base+j, 0); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}
