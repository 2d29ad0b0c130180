// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relnet/adjacency"
)

// run executes the root command and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestCLI_SimulateAndTTest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stack := filepath.Join(dir, "stack.csv")
	_, logs, err := run(t, "simulate", "--kind", "similarity", "--nodes", "6", "--count", "8",
		"--noise", "0.1", "--seed", "3", "--log-format", "json", "--out", stack)
	require.NoError(t, err)
	require.Contains(t, logs, `"run_id"`)
	require.Contains(t, logs, `"msg":"simulated"`)

	adj, err := adjacency.Load(stack, adjacency.WithMatrixType(adjacency.Similarity))
	require.NoError(t, err)
	require.Equal(t, 8, adj.Len())
	require.Equal(t, 15, adj.Edges())

	tPath := filepath.Join(dir, "t.csv")
	pPath := filepath.Join(dir, "p.csv")
	_, _, err = run(t, "ttest", stack, "--type", "similarity", "--out-t", tPath, "--out-p", pPath, "--log-level", "error")
	require.NoError(t, err)
	tv, err := adjacency.Load(tPath, adjacency.WithMatrixType(adjacency.Similarity))
	require.NoError(t, err)
	require.Equal(t, 1, tv.Len())
	require.Equal(t, 15, tv.Edges())

	// Two files are stacked in order.
	_, _, err = run(t, "ttest", stack, stack, "--type", "similarity", "--permute", "--permutations", "50",
		"--out-t", tPath, "--log-level", "error")
	require.NoError(t, err)
}

func TestCLI_ThresholdStdout(t *testing.T) {
	t.Parallel()

	in := writeTemp(t, "edges.csv", "Source,Target,Value\na,b,0.1\na,c,0.9\nb,c,0.5\n")
	out, _, err := run(t, "threshold", in, "--type", "similarity", "--upper", "0.5", "--binarize", "--log-level", "error")
	require.NoError(t, err)
	require.Equal(t, "Source,Target,Value\na,b,0\na,c,1\nb,c,1\n", out)

	_, _, err = run(t, "threshold", in, "--upper", "abc")
	require.ErrorIs(t, err, adjacency.ErrInvalidThreshold)
}

func TestCLI_Similarity(t *testing.T) {
	t.Parallel()

	in := writeTemp(t, "edges.csv", "Source,Target,Value\na,b,1\na,c,2\nb,c,3\nb,d,4\na,d,5\nc,d,6\n")
	out, _, err := run(t, "similarity", in, in, "--type", "similarity", "--metric", "spearman", "--log-level", "error")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "Matrix,Correlation,P", lines[0])
	fields := strings.Split(lines[1], ",")
	require.Equal(t, "0", fields[0])
	r, err := strconv.ParseFloat(fields[1], 64)
	require.NoError(t, err)
	require.InDelta(t, 1, r, 1e-12)
	require.Equal(t, "NaN", fields[2])

	_, _, err = run(t, "similarity", in, in, "--metric", "cosine")
	require.Error(t, err)
}

func TestCLI_RegressAndSummary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	block := filepath.Join(dir, "block.csv")
	clusters := filepath.Join(dir, "clusters.txt")
	_, _, err := run(t, "simulate", "--kind", "block", "--sizes", "2,3", "--values", "1,2",
		"--out", block, "--clusters-out", clusters, "--log-level", "error")
	require.NoError(t, err)

	out, _, err := run(t, "summary", block, "--type", "similarity", "--clusters", clusters, "--log-level", "error")
	require.NoError(t, err)
	require.Equal(t, "Cluster,Mean\nGroup1,1\nGroup2,2\n", out)

	designPath := writeTemp(t, "design.csv", "x\n1\n2\n3\n")
	beta := filepath.Join(dir, "beta.csv")
	_, _, err = run(t, "regress", block, block, block, "--type", "similarity", "--design", designPath,
		"--intercept", "--predictor", "x", "--out", beta, "--log-level", "error")
	require.NoError(t, err)
	b, err := adjacency.Load(beta, adjacency.WithMatrixType(adjacency.Similarity))
	require.NoError(t, err)
	row, _ := b.Row(0)
	for _, v := range row {
		require.InDelta(t, 0, v, 1e-9)
	}

	_, _, err = run(t, "regress", block, "--type", "similarity")
	require.Error(t, err, "design flag is required")
}

func TestCLI_Components(t *testing.T) {
	t.Parallel()

	in := writeTemp(t, "edges.csv", "Source,Target,Value\na,b,0.9\na,c,0.1\nb,c,0.2\n")
	out, _, err := run(t, "components", in, "--type", "similarity", "--upper", "0.5", "--log-level", "error")
	require.NoError(t, err)
	require.Equal(t, "Node,Component\na,0\nb,0\nc,1\n", out)
}

func TestCLI_BadFlags(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "simulate", "--permutations", "0")
	require.Error(t, err)
	_, _, err = run(t, "simulate", "--type", "graph")
	require.ErrorIs(t, err, adjacency.ErrUnknownMatrixType)
	_, _, err = run(t, "ttest", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}
