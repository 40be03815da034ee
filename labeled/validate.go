package labeled

import (
	"cmp"
	"fmt"
	"slices"
)

// ValidateEdges checks that every child id lies in [0, Size()).
// It returns false and a description of the first violation, scanning vertices
// and their children in ascending order.
func (g *Graph[L]) ValidateEdges() (bool, string) {
	n := len(g.labels)
	for u, ch := range g.children {
		for _, v := range ch {
			if v < 0 || v >= n {
				return false, fmt.Sprintf("vertex %d has out-of-range child %d (size %d)", u, v, n)
			}
		}
	}

	return true, ""
}

// ValidateEdgeLabels checks that every edge-label key names an existing edge.
// Keys are examined in (From, To) order, so the reported violation is stable.
func (g *Graph[L]) ValidateEdgeLabels() (bool, string) {
	keys := make([]Edge, 0, len(g.edgeLabels))
	for e := range g.edgeLabels {
		keys = append(keys, e)
	}
	slices.SortFunc(keys, compareEdges)
	for _, e := range keys {
		if !g.HasEdge(e.From, e.To) {
			return false, fmt.Sprintf("edge label on (%d, %d) has no adjacency entry", e.From, e.To)
		}
	}

	return true, ""
}

func compareEdges(a, b Edge) int {
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}

	return cmp.Compare(a.To, b.To)
}
