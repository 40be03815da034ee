// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// api.go - public entry points of the builder package.
//
// Design contract:
//   • One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order over one Draft, then freezes it into an immutable labeled.Graph.
//   • Constructors append vertices after the ones already in the Draft, so
//     composing several constructors yields their disjoint union.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/labeled"
)

// Constructor appends a topology to d using the resolved builderConfig.
// Constructors validate parameters first and return sentinel errors; they
// never panic.
type Constructor func(d *Draft, cfg builderConfig) error

// Draft is the mutable graph a Constructor writes into. Duplicate edges are
// ignored (the first label wins).
type Draft struct {
	children [][]int
	vlabels  []int
	elabels  map[labeled.Edge]int
}

// Size returns the number of vertices added so far.
func (d *Draft) Size() int { return len(d.vlabels) }

// AddVertex appends a vertex with the given label and returns its id.
func (d *Draft) AddVertex(label int) int {
	d.vlabels = append(d.vlabels, label)
	d.children = append(d.children, nil)

	return len(d.vlabels) - 1
}

// AddEdge adds u→v with the given label. Returns false if the edge existed.
// Returns ErrConstructFailed for an unknown endpoint.
func (d *Draft) AddEdge(u, v, label int) (bool, error) {
	if u < 0 || u >= d.Size() || v < 0 || v >= d.Size() {
		return false, fmt.Errorf("AddEdge(%d→%d): size %d: %w", u, v, d.Size(), ErrConstructFailed)
	}
	e := labeled.Edge{From: u, To: v}
	if _, ok := d.elabels[e]; ok {
		return false, nil
	}
	if d.elabels == nil {
		d.elabels = make(map[labeled.Edge]int)
	}
	d.elabels[e] = label
	d.children[u] = append(d.children[u], v)

	return true, nil
}

// HasEdge reports whether u→v was added.
func (d *Draft) HasEdge(u, v int) bool {
	_, ok := d.elabels[labeled.Edge{From: u, To: v}]
	return ok
}

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the frozen graph. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*labeled.Graph[int], error) {
	cfg := newBuilderConfig(bopts...)
	d := &Draft{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	gopts := []labeled.GraphOption{labeled.WithName(cfg.name)}
	if cfg.inverse {
		gopts = append(gopts, labeled.WithInverseAdjacency())
	}
	g, err := labeled.New(d.children, d.vlabels, d.elabels, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
