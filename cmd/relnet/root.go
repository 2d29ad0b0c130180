// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/relnet/adjacency"
)

// app carries the resolved configuration and flag values of one invocation.
type app struct {
	cfg Config
	log *slog.Logger

	cfgPath   string
	matType   string
	seed      int64
	perms     int
	tail      int
	logLevel  string
	logFormat string
	metric    string
	permType  string
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig(), log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	root := &cobra.Command{
		Use:               "relnet",
		Short:             "Statistics over stacks of distance, similarity and directed matrices",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.matType, "type", "", "input matrix type (distance, similarity, directed, or a _flat variant); inferred when empty")
	pf.Int64Var(&a.seed, "seed", 0, "random seed (overrides config)")
	pf.IntVar(&a.perms, "permutations", 0, "permutation or bootstrap count (overrides config)")
	pf.IntVar(&a.tail, "tail", 0, "1 or 2 tailed p-values (overrides config)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	pf.StringVar(&a.logFormat, "log-format", "", "auto, text or json (overrides config)")

	root.AddCommand(
		a.simulateCmd(),
		a.ttestCmd(),
		a.thresholdCmd(),
		a.similarityCmd(),
		a.regressCmd(),
		a.summaryCmd(),
		a.componentsCmd(),
	)

	return root
}

// setup loads the config file, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("permutations") {
		cfg.Permutations = a.perms
	}
	if flags.Changed("tail") {
		cfg.Tail = a.tail
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if flags.Changed("metric") {
		cfg.Metric = a.metric
	}
	if flags.Changed("perm-type") {
		cfg.PermType = a.permType
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	if a.matType != "" {
		if _, err = adjacency.ParseMatrixType(a.matType); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.log = newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat).With("cmd", cmd.Name())

	return nil
}

// buildOptions returns the options used to read every input file.
func (a *app) buildOptions() []adjacency.BuildOption {
	opts := []adjacency.BuildOption{adjacency.WithTolerance(a.cfg.Tolerance)}
	if a.matType != "" {
		t, _ := adjacency.ParseMatrixType(a.matType) // checked in setup
		opts = append(opts, adjacency.WithMatrixType(t))
	}

	return opts
}

// loadAll reads paths concurrently and stacks them in argument order.
func (a *app) loadAll(ctx context.Context, paths []string) (*adjacency.Adjacency, error) {
	parts := make([]*adjacency.Adjacency, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			adj, err := adjacency.Load(p, a.buildOptions()...)
			if err != nil {
				return fmt.Errorf("load %s: %w", p, err)
			}
			parts[i] = adj
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := adjacency.Empty()
	var err error
	for i, part := range parts {
		if out, err = out.Append(part); err != nil {
			return nil, fmt.Errorf("stack %s: %w", paths[i], err)
		}
	}
	a.log.Debug("inputs loaded", "files", len(paths), "matrices", out.Len(), "edges", out.Edges(), "type", out.MatrixType())

	return out, nil
}

// write sends adj to path, or to the command's stdout when path is "" or "-".
func write(cmd *cobra.Command, adj *adjacency.Adjacency, path string) error {
	if path == "" || path == "-" {
		return adj.WriteLong(cmd.OutOrStdout())
	}

	return adj.WriteFile(path)
}
