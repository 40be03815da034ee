// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// extract.go - query graphs cut out of a data graph.
//
// ExtractQuery grows a weakly connected vertex set by breadth-first search
// (children and parents, ascending ids) from a random start vertex and returns
// the induced subgraph. The mapping orig is itself a bijection of the query
// into g, so every extracted query has at least one match.

package builder

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/lvmatch/labeled"
)

const methodExtractQuery = "ExtractQuery"

// ExtractQuery returns a weakly connected induced subgraph of g with exactly
// size vertices, and orig with orig[u] = the data vertex of query vertex u.
//
// Start vertices are tried in a random order until one lies in a weak
// component with at least size vertices. Requires WithSeed or WithRand.
// Errors: ErrTooFewVertices (size < 1 or size > g.Size()), ErrNeedRandSource,
// ErrConstructFailed (no component is large enough).
func ExtractQuery[L cmp.Ordered](g *labeled.Graph[L], size int, bopts ...BuilderOption) (*labeled.Graph[L], []int, error) {
	cfg := newBuilderConfig(bopts...)

	// 1) Validate.
	if g == nil {
		return nil, nil, fmt.Errorf("%s: nil graph: %w", methodExtractQuery, ErrConstructFailed)
	}
	if size < 1 || size > g.Size() {
		return nil, nil, fmt.Errorf("%s: size=%d not in [1,%d]: %w", methodExtractQuery, size, g.Size(), ErrTooFewVertices)
	}
	if cfg.rng == nil {
		return nil, nil, fmt.Errorf("%s: %w", methodExtractQuery, ErrNeedRandSource)
	}
	g.BuildInverseAdjacency()

	// 2) Try starts in random order.
	for _, start := range cfg.rng.Perm(g.Size()) {
		keep := grow(g, start, size)
		if len(keep) < size {
			continue
		}
		q, orig := g.Induced(keep)
		opts := []labeled.GraphOption{labeled.WithName(cfg.name)}
		if cfg.inverse {
			opts = append(opts, labeled.WithInverseAdjacency())
		}
		// Induced keeps the name of g; re-wrap to apply the builder's options.
		out, err := labeled.New(childrenOf(q), q.Labels(), q.EdgeLabels(), opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", methodExtractQuery, err)
		}

		return out, orig, nil
	}

	return nil, nil, fmt.Errorf("%s: no weak component with %d vertices: %w", methodExtractQuery, size, ErrConstructFailed)
}

// grow collects up to size vertices by BFS over children and parents.
func grow[L cmp.Ordered](g *labeled.Graph[L], start, size int) []int {
	seen := map[int]bool{start: true}
	keep := []int{start}
	for head := 0; head < len(keep) && len(keep) < size; head++ {
		v := keep[head]
		for _, nbrs := range [][]int{g.Children(v), g.Parents(v)} {
			for _, w := range nbrs {
				if len(keep) == size {
					break
				}
				if !seen[w] {
					seen[w] = true
					keep = append(keep, w)
				}
			}
		}
	}

	return keep
}

func childrenOf[L cmp.Ordered](g *labeled.Graph[L]) [][]int {
	out := make([][]int, g.Size())
	for v := range out {
		out[v] = g.Children(v)
	}

	return out
}
