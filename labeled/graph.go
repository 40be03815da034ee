// File: graph.go
// Role: Construction (New) and O(1)/O(log d) read accessors.
// Determinism:
//   - Children lists are sorted ascending; LabelIndex lists are ascending; DistinctLabels
//     is ascending by label.
// AI-HINT (file):
//   - Children/ChildLabels return internal slices for hot loops; never modify them.
//   - EdgeLabel panics on a non-edge; use LookupEdgeLabel or HasEdge first when unsure.

package labeled

import (
	"cmp"
	"fmt"
	"slices"
)

// New builds a Graph from explicit adjacency, vertex labels and edge labels.
//
// Implementation:
//   - Stage 1: Apply options; reject len(children) != len(vertexLabels) and a
//     default edge label whose type is not L.
//   - Stage 2: Copy, sort and de-duplicate every child list.
//   - Stage 3: Copy the edge-label map; unlabeled edges get the default label.
//   - Stage 4: Build the aligned child-label lists and the label index.
//   - Stage 5: Validate (unless WithoutValidation) and optionally build parents.
//
// Errors:
//   - ErrInvalidGraph wrapping the size mismatch, a mistyped default edge label
//     or the first validation violation.
//
// Complexity:
//   - Time O(V + E log d), Space O(V + E).
func New[L cmp.Ordered](children [][]int, vertexLabels []L, edgeLabels map[Edge]L, opts ...GraphOption) (*Graph[L], error) {
	// 1) Options
	var o graphOptions
	for _, opt := range opts {
		opt(&o)
	}
	if len(children) != len(vertexLabels) {
		return nil, fmt.Errorf("%w: %d adjacency lists for %d vertex labels",
			ErrInvalidGraph, len(children), len(vertexLabels))
	}
	var defLabel L
	if o.defaultEdgeLabel != nil {
		dl, ok := o.defaultEdgeLabel.(L)
		if !ok {
			return nil, fmt.Errorf("%w: default edge label has type %T, graph labels are %T",
				ErrInvalidGraph, o.defaultEdgeLabel, defLabel)
		}
		defLabel = dl
	}

	n := len(vertexLabels)
	g := &Graph[L]{
		name:        o.name,
		labels:      slices.Clone(vertexLabels),
		children:    make([][]int, n),
		childLabels: make([][]L, n),
		edgeLabels:  make(map[Edge]L, len(edgeLabels)),
	}

	// 2) Normalized adjacency
	for u, ch := range children {
		c := slices.Clone(ch)
		slices.Sort(c)
		g.children[u] = slices.Compact(c)
		g.edgeCount += len(g.children[u])
	}

	// 3) Edge labels: supplied keys are kept verbatim, missing ones defaulted.
	for e, l := range edgeLabels {
		g.edgeLabels[e] = l
	}
	for u, ch := range g.children {
		labels := make([]L, len(ch))
		for i, v := range ch {
			e := Edge{From: u, To: v}
			l, ok := g.edgeLabels[e]
			if !ok {
				l = defLabel
				g.edgeLabels[e] = l
			}
			labels[i] = l
		}
		g.childLabels[u] = labels
	}

	// 4) Label index (ids appended in ascending order)
	for v, l := range g.labels {
		ids, _ := g.labelIndex.Get(l)
		g.labelIndex.Set(l, append(ids, v))
	}

	// 5) Validation and eager inverse adjacency
	if !o.skipValidation {
		if ok, msg := g.ValidateEdges(); !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidGraph, msg)
		}
		if ok, msg := g.ValidateEdgeLabels(); !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidGraph, msg)
		}
	}
	if o.inverse {
		g.BuildInverseAdjacency()
	}

	return g, nil
}

// MustNew is New for static fixtures; it panics on error.
func MustNew[L cmp.Ordered](children [][]int, vertexLabels []L, edgeLabels map[Edge]L, opts ...GraphOption) *Graph[L] {
	g, err := New(children, vertexLabels, edgeLabels, opts...)
	if err != nil {
		panic(err)
	}

	return g
}

// Name returns the informational graph name (may be empty).
func (g *Graph[L]) Name() string { return g.name }

// Size returns the number of vertices.
func (g *Graph[L]) Size() int { return len(g.labels) }

// EdgeCount returns the number of distinct directed edges.
func (g *Graph[L]) EdgeCount() int { return g.edgeCount }

// Label returns the label of vertex v. Panics with ErrVertexOutOfRange.
func (g *Graph[L]) Label(v int) L {
	g.mustVertex(v)

	return g.labels[v]
}

// Labels returns a copy of all vertex labels indexed by vertex id.
func (g *Graph[L]) Labels() []L { return slices.Clone(g.labels) }

// Children returns the sorted children of u. The slice is shared; do not modify it.
func (g *Graph[L]) Children(u int) []int {
	g.mustVertex(u)

	return g.children[u]
}

// ChildLabels returns the edge labels aligned with Children(u). Shared; do not modify.
func (g *Graph[L]) ChildLabels(u int) []L {
	g.mustVertex(u)

	return g.childLabels[u]
}

// HasEdge reports whether u→v is an edge. Out-of-range ids report false.
// Complexity: O(log deg(u)).
func (g *Graph[L]) HasEdge(u, v int) bool {
	if u < 0 || u >= len(g.children) {
		return false
	}
	_, found := slices.BinarySearch(g.children[u], v)

	return found
}

// LookupEdgeLabel returns the label of u→v and whether the edge exists.
func (g *Graph[L]) LookupEdgeLabel(u, v int) (L, bool) {
	var zero L
	if u < 0 || u >= len(g.children) {
		return zero, false
	}
	i, found := slices.BinarySearch(g.children[u], v)
	if !found {
		return zero, false
	}

	return g.childLabels[u][i], true
}

// EdgeLabel returns the label of u→v.
// Querying a non-edge is a contract violation and panics with ErrNotAnEdge.
func (g *Graph[L]) EdgeLabel(u, v int) L {
	l, ok := g.LookupEdgeLabel(u, v)
	if !ok {
		panic(fmt.Errorf("%w: (%d, %d)", ErrNotAnEdge, u, v))
	}

	return l
}

// EdgeLabels returns a copy of the edge-label map.
func (g *Graph[L]) EdgeLabels() map[Edge]L {
	out := make(map[Edge]L, len(g.edgeLabels))
	for e, l := range g.edgeLabels {
		out[e] = l
	}

	return out
}

// Edges returns every edge sorted by (From, To).
func (g *Graph[L]) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for u, ch := range g.children {
		for _, v := range ch {
			out = append(out, Edge{From: u, To: v})
		}
	}

	return out
}

// ChildrenWithEdgeLabel returns {v ∈ Children(u) : EdgeLabel(u,v) = label} in ascending order.
func (g *Graph[L]) ChildrenWithEdgeLabel(u int, label L) []int {
	g.mustVertex(u)
	var out []int
	for i, v := range g.children[u] {
		if g.childLabels[u][i] == label {
			out = append(out, v)
		}
	}

	return out
}

// LabelIndex returns the ascending ids of vertices labeled label (a fresh slice).
func (g *Graph[L]) LabelIndex(label L) []int {
	ids, _ := g.labelIndex.Get(label)

	return slices.Clone(ids)
}

// DistinctLabels returns every vertex label present, ascending.
func (g *Graph[L]) DistinctLabels() []L {
	return g.labelIndex.Keys()
}

// mustVertex panics with ErrVertexOutOfRange for ids outside [0, Size()).
func (g *Graph[L]) mustVertex(v int) {
	if v < 0 || v >= len(g.labels) {
		panic(fmt.Errorf("%w: %d (size %d)", ErrVertexOutOfRange, v, len(g.labels)))
	}
}
