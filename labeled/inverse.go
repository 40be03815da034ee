// File: inverse.go
// Role: Lazily built inverse adjacency (parents) and parent-side queries.
// Concurrency:
//   - BuildInverseAdjacency is idempotent and safe for concurrent callers (sync.Once).
//   - Parent queries before the build panic with ErrNoInverseAdjacency.

package labeled

import "fmt"

// BuildInverseAdjacency populates the parent lists as the exact transpose of the
// children lists: u ∈ Parents(v) ⟺ v ∈ Children(u). Parent lists are ascending.
// Children outside [0, Size()) (possible only under WithoutValidation) are skipped.
//
// Complexity: O(V + E) on the first call, O(1) afterwards.
func (g *Graph[L]) BuildInverseAdjacency() {
	g.inverseOnce.Do(func() {
		n := len(g.labels)
		parents := make([][]int, n)
		parentLabels := make([][]L, n)
		// Scanning u ascending appends parents in ascending order.
		for u, ch := range g.children {
			for i, v := range ch {
				if v < 0 || v >= n {
					continue
				}
				parents[v] = append(parents[v], u)
				parentLabels[v] = append(parentLabels[v], g.childLabels[u][i])
			}
		}
		g.parents = parents
		g.parentLabels = parentLabels
		g.inverseReady.Store(true)
	})
}

// HasInverseAdjacency reports whether the parent lists have been built.
func (g *Graph[L]) HasInverseAdjacency() bool {
	return g.inverseReady.Load()
}

// Parents returns the sorted parents of v. Shared; do not modify.
// Panics with ErrNoInverseAdjacency if the inverse adjacency was never built.
func (g *Graph[L]) Parents(v int) []int {
	g.mustInverse()
	g.mustVertex(v)

	return g.parents[v]
}

// ParentLabels returns the edge labels aligned with Parents(v). Shared; do not modify.
func (g *Graph[L]) ParentLabels(v int) []L {
	g.mustInverse()
	g.mustVertex(v)

	return g.parentLabels[v]
}

// ParentsWithEdgeLabel returns {u ∈ Parents(v) : EdgeLabel(u,v) = label}, ascending.
// Panics with ErrNoInverseAdjacency if the inverse adjacency was never built.
func (g *Graph[L]) ParentsWithEdgeLabel(v int, label L) []int {
	g.mustInverse()
	g.mustVertex(v)
	var out []int
	for i, u := range g.parents[v] {
		if g.parentLabels[v][i] == label {
			out = append(out, u)
		}
	}

	return out
}

func (g *Graph[L]) mustInverse() {
	if !g.inverseReady.Load() {
		panic(fmt.Errorf("%w: call BuildInverseAdjacency first", ErrNoInverseAdjacency))
	}
}
