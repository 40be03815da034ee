package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatch/dualiso"
	"github.com/katalvlaran/lvmatch/dualsim"
	"github.com/katalvlaran/lvmatch/graphsim"
	"github.com/katalvlaran/lvmatch/internal/config"
	"github.com/katalvlaran/lvmatch/labeled"
	"github.com/katalvlaran/lvmatch/match"
)

func newMatchCommand(in *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match DATA QUERY [QUERY...]",
		Short: "Match one or more query graphs against a data graph",
		Long: `Match one or more query graphs against a data graph.

Graphs are files in the text format, .yaml/.yml files, or catalog entries
written as catalog:NAME. The graphsim and dualsim engines print one candidate
set per query vertex; dualiso prints every bijection up to --limit.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return in.runMatch(cmd, args)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&in.engine, "engine", "e", config.EngineDualIso, "engine: graphsim, dualsim or dualiso")
	f.IntVar(&in.limit, "limit", dualiso.DefaultLimit, "dualiso: stop after this many bijections per query")
	f.StringVar(&in.timeout, "timeout", "0s", "dualiso: abandon the search after this duration (0 = none)")
	f.BoolVar(&in.ignoreEdgeLabels, "ignore-edge-labels", false, "match adjacency only")
	f.IntVarP(&in.workers, "workers", "w", 0, "dualiso: queries searched in parallel (0 = unbounded)")

	return cmd
}

func (in *Input) runMatch(cmd *cobra.Command, args []string) error {
	cfg := in.cfg.Match
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	// 1) Load the data graph and every query.
	g, err := in.loadGraph(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	queries := make([]*labeled.Graph[int], 0, len(args)-1)
	for _, ref := range args[1:] {
		q, err := in.loadGraph(ref, cmd.InOrStdin())
		if err != nil {
			return err
		}
		queries = append(queries, q)
	}

	log := in.log.WithFields(logrus.Fields{
		"engine":  cfg.Engine,
		"data":    g.Name(),
		"queries": len(queries),
	})
	log.Debug("lvmatch: match started")
	start := time.Now()
	out := cmd.OutOrStdout()

	// 2) Run the engine.
	if cfg.Engine == config.EngineDualIso {
		opts := []dualiso.Option{
			dualiso.WithLimit(cfg.Limit),
			dualiso.WithLogger(log),
			dualiso.WithObserver(in.recorder),
		}
		if cfg.IgnoreEdgeLabels {
			opts = append(opts, dualiso.WithIgnoreEdgeLabels())
		}
		results, err := dualiso.EnumerateAll(ctx, g, queries, cfg.Workers, opts...)
		in.recorder.ObserveSearch(cfg.Engine, time.Since(start))
		for i, res := range results {
			if res != nil {
				printBijections(out, queryName(queries[i], i), res)
			}
		}
		if err != nil {
			return err
		}
	} else {
		for i, q := range queries {
			m, err := newSimulator(cfg.Engine, g, q, in.recorder)
			if err != nil {
				return err
			}
			phi := m.Mappings(cfg.IgnoreEdgeLabels)
			printMappings(out, queryName(q, i), cfg.Engine, phi, match.CountMatches(g, q, phi, cfg.IgnoreEdgeLabels))
		}
		in.recorder.ObserveSearch(cfg.Engine, time.Since(start))
	}

	log.WithField("elapsed", time.Since(start).String()).Info("lvmatch: match finished")

	return nil
}

func newSimulator(engine string, g, q *labeled.Graph[int], obs match.Observer) (match.Matcher, error) {
	switch engine {
	case config.EngineGraphSim:
		return graphsim.New(g, q, match.WithObserver(obs))
	case config.EngineDualSim:
		return dualsim.New(g, q, match.WithObserver(obs))
	}
	return nil, fmt.Errorf("unknown engine %q", engine)
}

func queryName(q *labeled.Graph[int], i int) string {
	if q.Name() != "" {
		return q.Name()
	}
	return fmt.Sprintf("#%d", i)
}

func printMappings(w io.Writer, name, engine string, phi match.Candidates, cov match.Coverage) {
	fmt.Fprintf(w, "query %s (%s)\n", name, engine)
	if phi.AnyEmpty() {
		fmt.Fprintln(w, "  no match")
		return
	}
	for u, set := range phi.Slices() {
		fmt.Fprintf(w, "  %d: %v\n", u, set)
	}
	fmt.Fprintf(w, "  coverage: %d vertices, %d edges\n", cov.Vertices, cov.Edges)
}

func printBijections(w io.Writer, name string, res *dualiso.Result) {
	fmt.Fprintf(w, "query %s (dualiso): %d bijection(s), stop=%s, steps=%d\n",
		name, len(res.Bijections), res.Stop, res.Steps)
	for _, psi := range res.Bijections {
		fmt.Fprintf(w, "  %v\n", psi)
	}
}
