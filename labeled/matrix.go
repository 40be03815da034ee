// File: matrix.go
// Role: Conversions between Graph and dense adjacency matrices (gonum/mat).

package labeled

import (
	"cmp"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromMatrix builds a Graph from a square adjacency matrix: every non-zero
// entry (i,j) becomes the edge i→j labeled edgeLabel(adj.At(i,j)).
// A nil edgeLabel yields the default edge label for every edge.
//
// Errors:
//   - ErrInvalidGraph if adj is not square or does not match len(vertexLabels).
//
// Complexity: O(V²).
func FromMatrix[L cmp.Ordered](adj mat.Matrix, vertexLabels []L, edgeLabel func(w float64) L, opts ...GraphOption) (*Graph[L], error) {
	r, c := adj.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: adjacency matrix is %dx%d", ErrInvalidGraph, r, c)
	}
	if r != len(vertexLabels) {
		return nil, fmt.Errorf("%w: %dx%d matrix for %d vertex labels", ErrInvalidGraph, r, c, len(vertexLabels))
	}

	children := make([][]int, r)
	var elabels map[Edge]L
	if edgeLabel != nil {
		elabels = make(map[Edge]L)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			w := adj.At(i, j)
			if w == 0 {
				continue
			}
			children[i] = append(children[i], j)
			if edgeLabel != nil {
				elabels[Edge{From: i, To: j}] = edgeLabel(w)
			}
		}
	}

	return New(children, vertexLabels, elabels, opts...)
}

// AdjacencyMatrix returns the V×V 0/1 adjacency matrix of g.
// Children outside [0, Size()) are skipped.
func (g *Graph[L]) AdjacencyMatrix() *mat.Dense {
	n := len(g.labels)
	if n == 0 {
		return &mat.Dense{}
	}
	m := mat.NewDense(n, n, nil)
	for u, ch := range g.children {
		for _, v := range ch {
			if v >= 0 && v < n {
				m.Set(u, v, 1)
			}
		}
	}

	return m
}
