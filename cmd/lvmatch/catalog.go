package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCatalogCommand(in *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage named graph snapshots in the catalog file",
	}

	var getOut string
	getCmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Write a stored graph (text format, or YAML for a .yaml --out)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := in.openCatalog()
			if err != nil {
				return err
			}
			defer s.Close()
			g, err := s.Get(args[0])
			if err != nil {
				return err
			}
			return writeGraph(getOut, cmd.OutOrStdout(), g)
		},
	}
	getCmd.Flags().StringVarP(&getOut, "out", "o", "", "output file (default stdout)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "put NAME GRAPH",
			Short: "Store a graph file under NAME, replacing any previous snapshot",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				g, err := in.loadGraph(args[1], cmd.InOrStdin())
				if err != nil {
					return err
				}
				s, err := in.openCatalog()
				if err != nil {
					return err
				}
				defer s.Close()
				id, err := s.Put(args[0], g)
				if err != nil {
					return err
				}
				in.log.WithField("id", id).WithField("name", args[0]).Info("lvmatch: graph stored")
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			},
		},
		getCmd,
		&cobra.Command{
			Use:   "list",
			Short: "List stored graphs",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := in.openCatalog()
				if err != nil {
					return err
				}
				defer s.Close()
				entries, err := s.List()
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tVERTICES\tEDGES\tSTORED\tID")
				for _, e := range entries {
					fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n",
						e.Name, e.Vertices, e.Edges, e.CreatedAt.Format("2006-01-02 15:04:05"), e.ID)
				}
				return tw.Flush()
			},
		},
		&cobra.Command{
			Use:     "rm NAME",
			Aliases: []string{"delete"},
			Short:   "Remove a stored graph",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := in.openCatalog()
				if err != nil {
					return err
				}
				defer s.Close()
				return s.Delete(args[0])
			},
		},
	)

	return cmd
}
