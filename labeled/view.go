// File: view.go
// Role: Non-mutating graph views and structural comparison.
// Determinism:
//   - Induced keeps the ascending order of the kept ids; Undirected keeps vertex ids.
// AI-HINT (file):
//   - Views never mutate the receiver; they always return a fresh *Graph.
//   - Induced returns the new→old id mapping so callers can translate matches back.

package labeled

import (
	"fmt"
	"slices"
	"strings"
)

// Undirected returns a new Graph where every edge u→v is mirrored by v→u.
// A mirrored edge that did not exist copies the label of its forward edge;
// existing reverse edges keep their own label. Vertex ids and labels are preserved,
// and the inverse adjacency flag carries over.
//
// Complexity: O(V + E log d).
func (g *Graph[L]) Undirected() *Graph[L] {
	n := len(g.labels)
	children := make([][]int, n)
	labels := make(map[Edge]L, 2*g.edgeCount)
	for u, ch := range g.children {
		children[u] = append(children[u], ch...)
		for i, v := range ch {
			labels[Edge{From: u, To: v}] = g.childLabels[u][i]
		}
	}
	for u, ch := range g.children {
		for i, v := range ch {
			back := Edge{From: v, To: u}
			if _, ok := labels[back]; ok || v < 0 || v >= n {
				continue
			}
			labels[back] = g.childLabels[u][i]
			children[v] = append(children[v], u)
		}
	}

	opts := []GraphOption{WithName(g.name), WithoutValidation()}
	if g.HasInverseAdjacency() {
		opts = append(opts, WithInverseAdjacency())
	}
	// Symmetrizing a graph cannot introduce violations that were not already present.
	out, _ := New(children, g.labels, labels, opts...)

	return out
}

// Induced returns the subgraph induced by keep with compact ids 0..k-1 and the
// mapping orig[newID] = oldID. Ids in keep are de-duplicated and sorted; ids out
// of range are ignored. Only edges with both endpoints kept survive.
//
// Complexity: O(V + E).
func (g *Graph[L]) Induced(keep []int) (*Graph[L], []int) {
	n := len(g.labels)
	orig := make([]int, 0, len(keep))
	for _, v := range keep {
		if v >= 0 && v < n {
			orig = append(orig, v)
		}
	}
	slices.Sort(orig)
	orig = slices.Compact(orig)

	toNew := make(map[int]int, len(orig))
	for i, v := range orig {
		toNew[v] = i
	}

	children := make([][]int, len(orig))
	vlabels := make([]L, len(orig))
	elabels := make(map[Edge]L)
	for i, u := range orig {
		vlabels[i] = g.labels[u]
		for j, v := range g.children[u] {
			k, ok := toNew[v]
			if !ok {
				continue
			}
			children[i] = append(children[i], k)
			elabels[Edge{From: i, To: k}] = g.childLabels[u][j]
		}
	}

	out, _ := New(children, vlabels, elabels, WithName(g.name), WithoutValidation())

	return out, orig
}

// Equal reports structural equality: same size, adjacency, vertex labels and
// edge-label maps. Names and the inverse-adjacency flag are ignored.
func (g *Graph[L]) Equal(other *Graph[L]) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil {
		return false
	}
	if !slices.Equal(g.labels, other.labels) || len(g.children) != len(other.children) {
		return false
	}
	for u := range g.children {
		if !slices.Equal(g.children[u], other.children[u]) {
			return false
		}
	}
	if len(g.edgeLabels) != len(other.edgeLabels) {
		return false
	}
	for e, l := range g.edgeLabels {
		if ol, ok := other.edgeLabels[e]; !ok || ol != l {
			return false
		}
	}

	return true
}

// String renders a compact multi-line dump: one line per vertex with its label
// and labeled children.
func (g *Graph[L]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Graph(%s, %d vertices, %d edges)\n", g.name, len(g.labels), g.edgeCount)
	for u, ch := range g.children {
		fmt.Fprintf(&sb, "  %d [%v]:", u, g.labels[u])
		for i, v := range ch {
			fmt.Fprintf(&sb, " %d(%v)", v, g.childLabels[u][i])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
