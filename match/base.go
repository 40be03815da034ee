package match

import (
	"cmp"

	"github.com/katalvlaran/lvmatch/labeled"
)

// Option configures the shared matcher settings.
type Option func(*Options)

// Options holds settings common to every engine.
type Options struct {
	// Observer receives prune/fixpoint/bijection events. Never nil after defaults.
	Observer Observer
}

// DefaultOptions returns Options with a NopObserver.
func DefaultOptions() Options {
	return Options{Observer: NopObserver{}}
}

// WithObserver installs obs; nil keeps the current observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// Base carries the data graph, the query graph and the shared options, and
// implements the engine-independent half of the contract. Engines embed it.
type Base[L cmp.Ordered] struct {
	Data    *labeled.Graph[L]
	Query   *labeled.Graph[L]
	Options Options
}

// NewBase validates the graph pointers and resolves options.
func NewBase[L cmp.Ordered](g, q *labeled.Graph[L], opts ...Option) (Base[L], error) {
	if g == nil || q == nil {
		return Base[L]{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return Base[L]{Data: g, Query: q, Options: o}, nil
}

// FeasibleMates returns φ₀ for the bound graphs.
func (b *Base[L]) FeasibleMates() Candidates {
	return FeasibleMates(b.Data, b.Query)
}

// CountMatches returns the coverage of φ on the bound data graph.
func (b *Base[L]) CountMatches(phi Candidates, ignoreEdgeLabels bool) Coverage {
	return CountMatches(b.Data, b.Query, phi, ignoreEdgeLabels)
}

// FilterDataGraph projects the bound data graph onto φ.
func (b *Base[L]) FilterDataGraph(phi Candidates, ignoreEdgeLabels bool) (*labeled.Graph[L], []int) {
	return FilterDataGraph(b.Data, b.Query, phi, ignoreEdgeLabels)
}
