// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_grid.go - Grid(rows, cols, label) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex (r,c) gets id base + r·cols + c (row-major) and the given label.
//   • Edges point right (r,c)→(r,c+1) and down (r,c)→(r+1,c), labeled 0,
//     so the grid is a DAG with (0,0) as its only source.
//
// Complexity:
//   • Time O(rows·cols).

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor adding a rows×cols lattice oriented right and down.
func Grid(rows, cols, label int) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := d.Size()
		for i := 0; i < rows*cols; i++ {
			d.AddVertex(label)
		}
		id := func(r, c int) int { return base + r*cols + c }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if _, err := d.AddEdge(id(r, c), id(r, c+1), 0); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if _, err := d.AddEdge(id(r, c), id(r+1, c), 0); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
