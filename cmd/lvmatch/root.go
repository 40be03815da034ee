package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvmatch/internal/config"
	"github.com/katalvlaran/lvmatch/internal/metrics"
)

func newRootCommand(ctx context.Context, in *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "lvmatch",
		Short:        "Graph simulation and dual subgraph isomorphism over labeled graphs",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return in.resolve(cmd.Flags(), cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return in.flushMetrics()
		},
	}
	rootCmd.SetContext(ctx)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&in.configPath, "config", "c", config.DefaultConfigFile, "path to the YAML config file")
	pf.StringVar(&in.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&in.logFormat, "log-format", "", "log format (text or json)")
	pf.StringVar(&in.catalogPath, "catalog", "", "path to the graph catalog file")
	pf.StringVar(&in.metricsFile, "metrics-file", "", "write prometheus metrics to this file on exit")

	rootCmd.AddCommand(
		newMatchCommand(in),
		newGenCommand(in),
		newValidateCommand(in),
		newTopsortCommand(in),
		newComponentsCommand(in),
		newCatalogCommand(in),
		newVersionCommand(version),
	)

	return rootCmd
}

// resolve loads defaults, the config file and LVMATCH_* variables, then
// applies explicitly set flags on top, validates, and builds the logger.
func (in *Input) resolve(flags *pflag.FlagSet, cmd *cobra.Command) error {
	cfg, err := config.LoadFromFile(in.configPath)
	if err != nil {
		return err
	}
	config.ApplyEnv(cfg)

	if flags.Changed("log-level") {
		cfg.Log.Level = in.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = in.logFormat
	}
	if flags.Changed("catalog") {
		cfg.Catalog.Path = in.catalogPath
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.File = in.metricsFile
	}
	if flags.Changed("engine") {
		cfg.Match.Engine = in.engine
	}
	if flags.Changed("limit") {
		cfg.Match.Limit = in.limit
	}
	if flags.Changed("timeout") {
		d, err := time.ParseDuration(in.timeout)
		if err != nil {
			return fmt.Errorf("--timeout: %w", err)
		}
		cfg.Match.Timeout = d
	}
	if flags.Changed("ignore-edge-labels") {
		cfg.Match.IgnoreEdgeLabels = in.ignoreEdgeLabels
	}
	if flags.Changed("workers") {
		cfg.Match.Workers = in.workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	in.cfg = cfg
	in.log = cfg.Logger(cmd.ErrOrStderr()).WithField("run_id", uuid.NewString())
	in.recorder = metrics.NewRecorder()
	in.log.WithField("command", cmd.Name()).Debug("lvmatch: configuration resolved")

	return nil
}

func (in *Input) flushMetrics() error {
	if in.cfg == nil || in.cfg.Metrics.File == "" {
		return nil
	}
	if err := in.recorder.WriteTextfile(in.cfg.Metrics.File); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	in.log.WithField("file", in.cfg.Metrics.File).Debug("lvmatch: metrics written")

	return nil
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lvmatch version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
