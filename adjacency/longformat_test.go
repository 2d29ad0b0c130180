// SPDX-License-Identifier: MIT

package adjacency_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relnet/adjacency"
	"github.com/katalvlaran/relnet/simulate"
)

func TestLongFormat_FileRoundTrip(t *testing.T) {
	t.Parallel()

	for _, typ := range []adjacency.MatrixType{adjacency.Distance, adjacency.Similarity, adjacency.Directed} {
		typ := typ
		t.Run(string(typ), func(t *testing.T) {
			t.Parallel()
			a, err := simulate.Multiple(2, 5, typ,
				simulate.WithSeed(9),
				simulate.WithNoise(0.3),
				simulate.WithIDScheme(simulate.PrefixID("roi")),
			)
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "edges.csv")
			require.NoError(t, a.WriteFile(path))

			back, err := adjacency.Load(path, adjacency.WithMatrixType(typ))
			require.NoError(t, err)
			require.True(t, a.Equal(back, 0))
			require.Equal(t, a.Labels(), back.Labels())
		})
	}
}

func TestLongFormat_Write(t *testing.T) {
	t.Parallel()

	one, err := adjacency.FromVector([]float64{0.5, 1e-20, 3}, adjacency.WithLabels([]string{"a", "b", "c"}))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, one.WriteLong(&buf))
	require.Equal(t, "Source,Target,Value\na,b,0.5\na,c,1e-20\nb,c,3\n", buf.String())

	two, err := one.Append(one)
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, two.WriteLong(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	require.Equal(t, "Source,Target,Value,Matrix", lines[0])
	require.Equal(t, "b,c,3,1", lines[6])

	require.ErrorIs(t, adjacency.Empty().WriteLong(&buf), adjacency.ErrEmpty)
}

func TestLongFormat_ReadInference(t *testing.T) {
	t.Parallel()

	// One triangle, no type: mirrored, zero diagonal, so distance.
	half := "source,TARGET,value\na,b,1\na,c,2\nb,c,3\n"
	a, err := adjacency.ReadLong(strings.NewReader(half))
	require.NoError(t, err)
	require.Equal(t, adjacency.Distance, a.MatrixType())
	require.Equal(t, []string{"a", "b", "c"}, a.Labels())
	row, _ := a.Row(0)
	require.Equal(t, []float64{1, 2, 3}, row)

	// Both directions with differing values: directed.
	full := "Source,Target,Value\nx,y,1\ny,x,2\n"
	d, err := adjacency.ReadLong(strings.NewReader(full))
	require.NoError(t, err)
	require.Equal(t, adjacency.Directed, d.MatrixType())
	row, _ = d.Row(0)
	require.Equal(t, []float64{1, 2}, row)

	// Columns in any order; matrices sorted by index.
	multi := "Matrix,Value,Target,Source\n1,10,b,a\n0,1,b,a\n"
	m, err := adjacency.ReadLong(strings.NewReader(multi), adjacency.WithMatrixType(adjacency.Similarity))
	require.NoError(t, err)
	sums, err := m.RowSums()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 10}, sums)
}

func TestLongFormat_ReadFlat(t *testing.T) {
	t.Parallel()

	in := "Source,Target,Value\nn1,n2,3\nn1,n3,2\nn2,n3,1\n"
	a, err := adjacency.ReadLong(strings.NewReader(in), adjacency.WithMatrixType(adjacency.SimilarityFlat))
	require.NoError(t, err)
	require.Equal(t, adjacency.Similarity, a.MatrixType())
	require.Equal(t, []string{"n1", "n2", "n3"}, a.Labels())
	row, _ := a.Row(0)
	require.Equal(t, []float64{3, 2, 1}, row)

	_, err = adjacency.ReadLong(strings.NewReader("Source,Target,Value\na,b,1\na,c,2\n"),
		adjacency.WithMatrixType(adjacency.DistanceFlat))
	require.ErrorIs(t, err, adjacency.ErrInvalidEdgeCount)
}

func TestLongFormat_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"missing column", "Source,Target\na,b\n"},
		{"header only", "Source,Target,Value\n"},
		{"bad value", "Source,Target,Value\na,b,high\n"},
		{"bad matrix", "Source,Target,Value,Matrix\na,b,1,first\n"},
		{"negative matrix", "Source,Target,Value,Matrix\na,b,1,-1\n"},
		{"duplicate", "Source,Target,Value\na,b,1\na,b,2\n"},
		{"unknown node", "Source,Target,Value,Matrix\na,b,1,0\na,c,1,1\n"},
		{"short row", "Source,Target,Value\na,b\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := adjacency.ReadLong(strings.NewReader(tc.in))
			require.ErrorIs(t, err, adjacency.ErrLongFormat)
		})
	}

	_, err := adjacency.Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}
