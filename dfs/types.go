// Package dfs defines traversal modes, options, vertex colors and the Order
// type returned by TopologicalSort.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Vertex colors used by the three-color traversals.
const (
	White = iota // White: not visited yet.
	Gray         // Gray: on the current DFS path.
	Black        // Black: the vertex and all its descendants are done.
)

// CycleSentinel marks an Order computed on a cyclic graph. It is never a valid
// vertex id.
const CycleSentinel = -1

var (
	// ErrGraphNil is returned when a nil graph is passed to NewSearch or
	// TopologicalSortStrict.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected is returned by TopologicalSortStrict on a cyclic graph.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Mode selects the frontier discipline of a Search.
type Mode int

const (
	// DepthFirst explores a branch to its end before backtracking (stack).
	DepthFirst Mode = iota
	// BreadthFirst explores by increasing hop distance (queue).
	BreadthFirst
)

// String returns "dfs" or "bfs".
func (m Mode) String() string {
	switch m {
	case DepthFirst:
		return "dfs"
	case BreadthFirst:
		return "bfs"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "dfs"/"bfs" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "dfs", "":
		return DepthFirst, nil
	case "bfs":
		return BreadthFirst, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, s)
	}
}

// Option configures a Search.
type Option func(*Options)

// Options holds Search settings.
type Options struct {
	// Mode is DepthFirst (default) or BreadthFirst.
	Mode Mode

	// MaxDepth, if non-negative, stops expansion beyond that many hops from a
	// root. Default -1 (no limit).
	MaxDepth int

	// Ctx is checked before every vertex is expanded; a cancelled context
	// stops the traversal with ctx.Err(). Default context.Background().
	Ctx context.Context

	err error
}

// DefaultOptions returns depth-first, unbounded settings with a background
// context.
func DefaultOptions() Options {
	return Options{Mode: DepthFirst, MaxDepth: -1, Ctx: context.Background()}
}

// WithContext binds a cancellation context to the Search. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMode selects the traversal discipline.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != DepthFirst && m != BreadthFirst {
			o.err = fmt.Errorf("%w: mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithMaxDepth limits expansion depth; 0 visits only the roots.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// TopoOption configures TopologicalSortStrict.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext lets TopologicalSortStrict abort with ctx.Err(). nil is
// ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Order is a topological order. A cyclic graph yields Order{CycleSentinel}.
type Order []int

// Acyclic reports whether the order is trustworthy. Callers must check it
// before using the order.
func (o Order) Acyclic() bool {
	return len(o) == 0 || o[0] != CycleSentinel
}
