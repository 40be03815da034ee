package dualiso

import (
	"cmp"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvmatch/labeled"
)

// EnumerateAll runs Bijections for every query against the same data graph in
// parallel, with at most workers searches in flight (workers <= 0 means no
// bound). results[i] belongs to queries[i].
//
// The data graph is only read, so sharing it is safe. Options apply to every
// search; an Observer or Logger passed here must be safe for concurrent use.
// The first failing search cancels the others; the results gathered so far are
// returned with its error.
func EnumerateAll[L cmp.Ordered](ctx context.Context, g *labeled.Graph[L], queries []*labeled.Graph[L], workers int, opts ...Option) ([]*Result, error) {
	results := make([]*Result, len(queries))

	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}

	for i, q := range queries {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			engine, err := New(g, q, append(opts[:len(opts):len(opts)], WithContext(ctx))...)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			res, err := engine.Bijections()
			results[i] = res
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}

			return nil
		})
	}

	return results, eg.Wait()
}
