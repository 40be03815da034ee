// Package dualiso defines options, result types and sentinel errors for the
// Dual Subgraph Isomorphism engine.
package dualiso

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmatch/match"
)

// Engine is the name reported to match.Observer and log fields.
const Engine = "dualiso"

// DefaultLimit bounds the number of bijections a single search collects.
const DefaultLimit = 1_000_000

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("dualiso: invalid option supplied")

// Option configures the search via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the search settings.
type Options struct {
	// Ctx allows cancellation and deadlines; checked before every search step.
	Ctx context.Context

	// Limit stops the search once this many bijections are collected.
	Limit int

	// IgnoreEdgeLabels matches adjacency only.
	IgnoreEdgeLabels bool

	// Logger receives truncation and cancellation notices.
	Logger logrus.FieldLogger

	// Observer receives prune passes, fixpoints, bijections and truncations.
	Observer match.Observer

	err error
}

// DefaultOptions returns Options with a background context, DefaultLimit,
// edge-label-aware matching, the standard logrus logger and a NopObserver.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Limit:    DefaultLimit,
		Logger:   logrus.StandardLogger(),
		Observer: match.NopObserver{},
	}
}

// WithContext sets the cancellation context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLimit bounds the number of collected bijections; n must be positive.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: limit must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}

// WithIgnoreEdgeLabels makes the search check adjacency only.
func WithIgnoreEdgeLabels() Option {
	return func(o *Options) { o.IgnoreEdgeLabels = true }
}

// WithLogger replaces the logger. A nil logger has no effect.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver installs an event observer. A nil observer has no effect.
func WithObserver(obs match.Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// StopReason tells why a search ended.
type StopReason int

const (
	// Exhausted: every branch was explored.
	Exhausted StopReason = iota
	// LimitReached: the match limit stopped the search with branches left.
	LimitReached
	// Cancelled: the context was cancelled or its deadline passed.
	Cancelled
)

// String returns the lower-case reason name.
func (r StopReason) String() string {
	switch r {
	case Exhausted:
		return "exhausted"
	case LimitReached:
		return "limit"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Result holds the outcome of a bijection enumeration.
type Result struct {
	// Bijections lists every witness found, in lexicographic order of the
	// query-vertex assignment. Bijections[k][u] is the data vertex of query vertex u.
	Bijections [][]int

	// Truncated is true when the search stopped with unexplored branches.
	Truncated bool

	// Stop gives the reason the search ended.
	Stop StopReason

	// Steps counts search nodes expanded (diagnostic).
	Steps int
}

// Candidates returns the simulation-style view: φ(u) is the union of ψ(u) over
// all bijections ψ.
func (r *Result) Candidates(querySize int) match.Candidates {
	phi := match.NewCandidates(querySize)
	for _, psi := range r.Bijections {
		for u, v := range psi {
			phi[u].Insert(v)
		}
	}

	return phi
}
