// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/relnet/adjacency"
	"github.com/katalvlaran/relnet/design"
	"github.com/katalvlaran/relnet/simulate"
)

func (a *app) simulateCmd() *cobra.Command {
	var (
		kind, out, clustersOut string
		nodes, count           int
		noise                  float64
		sizes                  []int
		values                 []float64
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Write a seeded fixture stack (distance, similarity, directed or block)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []simulate.Option{simulate.WithSeed(a.cfg.Seed), simulate.WithNoise(noise)}
			var (
				adj      *adjacency.Adjacency
				clusters []string
				err      error
			)
			if kind == "block" {
				adj, clusters, err = simulate.BlockDiagonal(sizes, values, opts...)
			} else {
				var t adjacency.MatrixType
				if t, err = adjacency.ParseMatrixType(kind); err != nil {
					return err
				}
				adj, err = simulate.Multiple(count, nodes, t, opts...)
			}
			if err != nil {
				return err
			}
			a.log.Info("simulated", "kind", kind, "matrices", adj.Len(), "edges", adj.Edges(), "seed", a.cfg.Seed)
			if clustersOut != "" && clusters != nil {
				if err = os.WriteFile(clustersOut, []byte(strings.Join(clusters, "\n")+"\n"), 0o644); err != nil {
					return err
				}
			}

			return write(cmd, adj, out)
		},
	}
	f := cmd.Flags()
	f.StringVar(&kind, "kind", "similarity", "distance, similarity, directed or block")
	f.IntVar(&nodes, "nodes", 10, "node count")
	f.IntVar(&count, "count", 1, "number of matrices")
	f.Float64Var(&noise, "noise", 0, "Gaussian noise sigma added per matrix")
	f.IntSliceVar(&sizes, "sizes", []int{3, 3}, "block sizes (kind=block)")
	f.Float64SliceVar(&values, "values", []float64{1, 0}, "within-block values (kind=block)")
	f.StringVar(&out, "out", "", "output CSV (stdout when empty)")
	f.StringVar(&clustersOut, "clusters-out", "", "write block labels, one per line (kind=block)")

	return cmd
}

func (a *app) ttestCmd() *cobra.Command {
	var outT, outP string
	var permute bool
	cmd := &cobra.Command{
		Use:   "ttest FILE...",
		Short: "One-sample t-test of every edge against zero",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stack, err := a.loadAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			opts := a.cfg.callOptions()
			if permute {
				opts = append(opts, adjacency.WithPermutations(a.cfg.Permutations))
			}
			res, err := stack.TTest(opts...)
			if err != nil {
				return err
			}
			a.log.Info("ttest", "matrices", stack.Len(), "edges", stack.Edges(), "permutation", permute)
			if err = write(cmd, res.T, outT); err != nil {
				return err
			}
			if outP == "" {
				return nil
			}

			return write(cmd, res.P, outP)
		},
	}
	cmd.Flags().StringVar(&outT, "out-t", "", "t statistics CSV (stdout when empty)")
	cmd.Flags().StringVar(&outP, "out-p", "", "p-values CSV (skipped when empty)")
	cmd.Flags().BoolVar(&permute, "permute", false, "sign-flip permutation p-values instead of Student t")

	return cmd
}

func (a *app) thresholdCmd() *cobra.Command {
	var upper, lower, out string
	var binarize bool
	cmd := &cobra.Command{
		Use:   "threshold FILE...",
		Short: "Zero edges outside absolute or percentile cutoffs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var th adjacency.Thresholds
			var err error
			if upper != "" {
				if th.Upper, err = adjacency.ParseCutoff(upper); err != nil {
					return err
				}
			}
			if lower != "" {
				if th.Lower, err = adjacency.ParseCutoff(lower); err != nil {
					return err
				}
			}
			th.Binarize = binarize
			stack, err := a.loadAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			res, err := stack.Threshold(th)
			if err != nil {
				return err
			}
			a.log.Info("threshold", "upper", th.Upper.String(), "lower", th.Lower.String(), "binarize", binarize)

			return write(cmd, res, out)
		},
	}
	cmd.Flags().StringVar(&upper, "upper", "", "keep edges >= cutoff (number or percentile like 95%)")
	cmd.Flags().StringVar(&lower, "lower", "", "keep edges <= cutoff (number or percentile like 5%)")
	cmd.Flags().BoolVar(&binarize, "binarize", false, "set kept edges to 1")
	cmd.Flags().StringVar(&out, "out", "", "output CSV (stdout when empty)")

	return cmd
}

func (a *app) similarityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "similarity REFERENCE FILE...",
		Short: "Correlate every matrix with a reference, optionally with a permutation test",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := adjacency.Load(args[0], a.buildOptions()...)
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}
			stack, err := a.loadAll(cmd.Context(), args[1:])
			if err != nil {
				return err
			}
			opts := append(a.cfg.callOptions(), adjacency.WithPermutations(a.cfg.Permutations))
			res, err := stack.Similarity(ref, opts...)
			if err != nil {
				return err
			}
			a.log.Info("similarity", "metric", a.cfg.Metric, "perm_type", a.cfg.PermType, "matrices", len(res))

			w := csv.NewWriter(cmd.OutOrStdout())
			if err = w.Write([]string{"Matrix", "Correlation", "P"}); err != nil {
				return err
			}
			for i, r := range res {
				rec := []string{
					strconv.Itoa(i),
					strconv.FormatFloat(r.Correlation, 'g', -1, 64),
					strconv.FormatFloat(r.P, 'g', -1, 64),
				}
				if err = w.Write(rec); err != nil {
					return err
				}
			}
			w.Flush()

			return w.Error()
		},
	}
	cmd.Flags().StringVar(&a.metric, "metric", "", "pearson, spearman or kendall (overrides config)")
	cmd.Flags().StringVar(&a.permType, "perm-type", "", "none, 1d or 2d (overrides config)")

	return cmd
}

func (a *app) regressCmd() *cobra.Command {
	var designPath, predictor, out string
	var intercept bool
	cmd := &cobra.Command{
		Use:   "regress FILE...",
		Short: "Fit every edge on a design matrix, one row per input matrix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			X, err := readDesign(designPath)
			if err != nil {
				return err
			}
			if intercept {
				if X, err = X.AddIntercept(); err != nil {
					return err
				}
			}
			stack, err := a.loadAll(cmd.Context(), args)
			if err != nil {
				return err
			}
			res, err := stack.Regress(X)
			if err != nil {
				return err
			}
			a.log.Info("regress", "predictors", res.Predictors, "df", res.DF)
			if predictor == "" {
				return write(cmd, res.Beta, out)
			}
			beta, err := res.Coefficient(predictor)
			if err != nil {
				return err
			}

			return write(cmd, beta, out)
		},
	}
	cmd.Flags().StringVar(&designPath, "design", "", "design matrix CSV with a header row of predictor names")
	cmd.Flags().StringVar(&predictor, "predictor", "", "write only this coefficient (all, in column order, when empty)")
	cmd.Flags().BoolVar(&intercept, "intercept", false, "prepend an Intercept column")
	cmd.Flags().StringVar(&out, "out", "", "output CSV (stdout when empty)")
	_ = cmd.MarkFlagRequired("design")

	return cmd
}

func (a *app) summaryCmd() *cobra.Command {
	var clustersPath string
	var between bool
	cmd := &cobra.Command{
		Use:   "summary FILE",
		Short: "Mean edge value within (or between) node clusters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clusters, err := readClusters(clustersPath)
			if err != nil {
				return err
			}
			adj, err := adjacency.Load(args[0], a.buildOptions()...)
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}
			means, err := adj.ClusterSummary(clusters, !between)
			if err != nil {
				return err
			}
			a.log.Info("summary", "clusters", len(means), "between", between)

			names := make([]string, 0, len(means))
			for name := range means {
				names = append(names, name)
			}
			sort.Strings(names)
			w := csv.NewWriter(cmd.OutOrStdout())
			if err = w.Write([]string{"Cluster", "Mean"}); err != nil {
				return err
			}
			for _, name := range names {
				if err = w.Write([]string{name, strconv.FormatFloat(means[name], 'g', -1, 64)}); err != nil {
					return err
				}
			}
			w.Flush()

			return w.Error()
		},
	}
	cmd.Flags().StringVar(&clustersPath, "clusters", "", "file with one cluster label per node, one per line")
	cmd.Flags().BoolVar(&between, "between", false, "average edges leaving each cluster instead of inside it")
	_ = cmd.MarkFlagRequired("clusters")

	return cmd
}

func (a *app) componentsCmd() *cobra.Command {
	var upper string
	cmd := &cobra.Command{
		Use:   "components FILE",
		Short: "Connected components of the non-zero edge graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adj, err := adjacency.Load(args[0], a.buildOptions()...)
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}
			if upper != "" {
				c, err := adjacency.ParseCutoff(upper)
				if err != nil {
					return err
				}
				if adj, err = adj.Threshold(adjacency.Thresholds{Upper: c}); err != nil {
					return err
				}
			}
			comps, err := adj.Components()
			if err != nil {
				return err
			}

			w := csv.NewWriter(cmd.OutOrStdout())
			if err = w.Write([]string{"Node", "Component"}); err != nil {
				return err
			}
			var n int
			for i, label := range adj.Labels() {
				if comps[i]+1 > n {
					n = comps[i] + 1
				}
				if err = w.Write([]string{label, strconv.Itoa(comps[i])}); err != nil {
					return err
				}
			}
			w.Flush()
			a.log.Info("components", "nodes", len(comps), "components", n)

			return w.Error()
		},
	}
	cmd.Flags().StringVar(&upper, "upper", "", "threshold first, keeping edges >= cutoff")

	return cmd
}

func readDesign(path string) (*design.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("design: %w", err)
	}
	defer f.Close()

	return design.ReadCSV(f)
}

// readClusters reads one label per non-blank line.
func readClusters(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("clusters: %w", err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if l := strings.TrimSpace(sc.Text()); l != "" {
			out = append(out, l)
		}
	}

	return out, sc.Err()
}
