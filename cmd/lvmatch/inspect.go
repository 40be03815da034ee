package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatch/dfs"
)

func newValidateCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "validate GRAPH [GRAPH...]",
		Short: "Load graphs and check their edges and edge labels",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, ref := range args {
				g, err := in.loadGraph(ref, cmd.InOrStdin())
				if err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", ref, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s: %s, %d vertices, %d edges, %d labels\n",
					ref, g.Name(), g.Size(), g.EdgeCount(), len(g.DistinctLabels()))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d graphs invalid", failed, len(args))
			}
			return nil
		},
	}
}

func newTopsortCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "topsort GRAPH",
		Short: "Print a topological order, or a cycle if the graph has one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := in.loadGraph(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			order, err := dfs.TopologicalSortStrict(g, dfs.WithCancelContext(cmd.Context()))
			if errors.Is(err, dfs.ErrCycleDetected) {
				cycle, _ := dfs.FindCycle(g)
				fmt.Fprintf(cmd.OutOrStdout(), "cycle: %v\n", cycle)
				return err
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", order)
			return nil
		},
	}
}

func newComponentsCommand(in *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "components GRAPH",
		Short: "Print the weakly connected components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := dfs.ParseMode(in.traversal)
			if err != nil {
				return err
			}
			g, err := in.loadGraph(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			s, err := dfs.NewSearch(g, dfs.WithMode(mode), dfs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			comps, err := s.WeakComponents()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d component(s)\n", len(comps))
			for i, c := range comps {
				fmt.Fprintf(cmd.OutOrStdout(), "  %d: %v\n", i, c)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&in.traversal, "mode", "dfs", "traversal order: dfs or bfs")

	return cmd
}
