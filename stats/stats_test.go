// SPDX-License-Identifier: MIT

package stats_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/relnet/matrix"
	"github.com/katalvlaran/relnet/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestMoments(t *testing.T) {
	t.Parallel()

	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 5.0, stats.Mean(x), eps)
	assert.InDelta(t, 2.0, stats.PopStd(x), eps)
	assert.InDelta(t, math.Sqrt(32.0/7.0), stats.SampleStd(x), eps)

	assert.True(t, math.IsNaN(stats.Mean(nil)))
	assert.True(t, math.IsNaN(stats.SampleStd([]float64{1})))
}

func TestPercentile(t *testing.T) {
	t.Parallel()

	x := []float64{4, 1, 3, 2, 5}
	cases := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{50, 3},
		{70, 3.8},
		{100, 5},
		{12.5, 1.5},
	}
	for _, tc := range cases {
		got, err := stats.Percentile(x, tc.q)
		require.NoError(t, err)
		assert.InDeltaf(t, tc.want, got, eps, "q=%v", tc.q)
	}
	require.Equal(t, []float64{4, 1, 3, 2, 5}, x) // input untouched

	_, err := stats.Percentile(nil, 50)
	require.ErrorIs(t, err, stats.ErrTooFewValues)
	_, err = stats.Percentile(x, 101)
	require.ErrorIs(t, err, stats.ErrPercentile)
}

func TestCorrelations(t *testing.T) {
	t.Parallel()

	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}
	yRev := []float64{5, 4, 3, 2, 1}
	yMono := []float64{1, 4, 9, 16, 25}

	cases := []struct {
		name   string
		metric stats.Metric
		y      []float64
		want   float64
	}{
		{"pearson linear", stats.Pearson, y, 1},
		{"pearson reversed", stats.Pearson, yRev, -1},
		{"spearman monotone", stats.Spearman, yMono, 1},
		{"kendall monotone", stats.Kendall, yMono, 1},
		{"kendall reversed", stats.Kendall, yRev, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := stats.Correlate(tc.metric, x, tc.y)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, eps)
		})
	}

	_, err := stats.Correlate(stats.Pearson, x, y[:3])
	require.ErrorIs(t, err, stats.ErrLengthMismatch)
	_, err = stats.Correlate("cosine", x, y)
	require.ErrorIs(t, err, stats.ErrUnknownMetric)
	_, err = stats.ParseMetric("Cosine")
	require.ErrorIs(t, err, stats.ErrUnknownMetric)
	m, err := stats.ParseMetric(" Kendall ")
	require.NoError(t, err)
	require.Equal(t, stats.Kendall, m)
}

func TestRanksAndKendallTies(t *testing.T) {
	t.Parallel()

	require.Equal(t, []float64{1, 2.5, 2.5, 4}, stats.Ranks([]float64{1, 5, 5, 9}))

	// One tie in x: C=5, D=0, n0=6, n1=1, n2=0 → 5/sqrt(30).
	tau := stats.KendallTau([]float64{1, 2, 2, 3}, []float64{1, 2, 3, 4})
	assert.InDelta(t, 5/math.Sqrt(30), tau, eps)

	assert.True(t, math.IsNaN(stats.KendallTau([]float64{1, 1, 1}, []float64{1, 2, 3})))
}

func TestOneSampleTAndStudentP(t *testing.T) {
	t.Parallel()

	tv, df, err := stats.OneSampleT([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, 4.0, df)
	assert.InDelta(t, 3/(math.Sqrt(2.5)/math.Sqrt(5)), tv, eps)

	// t=0 → p=1; symmetric in sign; one-tailed is half of two-tailed.
	assert.InDelta(t, 1.0, stats.StudentTP(0, 4, stats.TwoTailed), eps)
	p2 := stats.StudentTP(2.776445105, 4, stats.TwoTailed)
	assert.InDelta(t, 0.05, p2, 1e-6)
	assert.InDelta(t, p2, stats.StudentTP(-2.776445105, 4, stats.TwoTailed), eps)
	assert.InDelta(t, p2/2, stats.StudentTP(2.776445105, 4, stats.OneTailed), eps)

	assert.InDelta(t, 0.05, stats.NormalP(1.959963985, stats.TwoTailed), 1e-6)

	_, _, err = stats.OneSampleT([]float64{1})
	require.ErrorIs(t, err, stats.ErrTooFewValues)
}

func TestPermutationP(t *testing.T) {
	t.Parallel()

	null := []float64{-3, -1, 0, 1, 2}
	assert.InDelta(t, 3.0/6.0, stats.PermutationP(2, null, stats.TwoTailed), eps)  // |d| >= 2: -3, 2
	assert.InDelta(t, 2.0/6.0, stats.PermutationP(2, null, stats.OneTailed), eps)  // d>=2: 2
	assert.InDelta(t, 2.0/6.0, stats.PermutationP(-3, null, stats.OneTailed), eps) // d<=-3: -3
	assert.InDelta(t, 1.0/6.0, stats.PermutationP(10, null, stats.TwoTailed), eps)
	assert.True(t, math.IsNaN(stats.PermutationP(math.NaN(), null, stats.TwoTailed)))

	require.NoError(t, stats.TwoTailed.Validate())
	require.ErrorIs(t, stats.Tail(3).Validate(), stats.ErrUnknownTail)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	s, err := stats.Summarize([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, s.Mean, eps)
	assert.InDelta(t, math.Sqrt(2), s.Std, eps)
	assert.InDelta(t, 3/math.Sqrt(2), s.Z, eps)
	assert.InDelta(t, 1.1, s.CILower, eps)
	assert.InDelta(t, 4.9, s.CIUpper, eps)

	flat, err := stats.Summarize([]float64{2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, 0.0, flat.Z)
	assert.Equal(t, 1.0, flat.P)

	_, err = stats.Summarize(nil)
	require.ErrorIs(t, err, stats.ErrTooFewValues)
}

func TestRNGDeterminism(t *testing.T) {
	t.Parallel()

	a := stats.Perm(20, stats.NewRand(7))
	b := stats.Perm(20, stats.NewRand(7))
	require.Equal(t, a, b)

	z1 := stats.Perm(10, stats.NewRand(0))
	z2 := stats.Perm(10, stats.NewRand(stats.DefaultSeed))
	require.Equal(t, z1, z2)

	require.NotEqual(t, stats.DeriveSeed(1, 1), stats.DeriveSeed(1, 2))
	require.NotEqual(t, stats.DeriveSeed(1, 1), stats.DeriveSeed(2, 1))
	require.Equal(t, stats.DeriveSeed(3, 5), stats.DeriveSeed(3, 5))
	require.Equal(t, stats.Perm(15, stats.DeriveRand(3, 5)), stats.Perm(15, stats.DeriveRand(3, 5)))
	require.NotEqual(t, stats.Perm(15, stats.DeriveRand(3, 5)), stats.Perm(15, stats.DeriveRand(3, 6)))

	idx := stats.Resample(8, stats.NewRand(9))
	require.Len(t, idx, 8)
	for _, i := range idx {
		require.True(t, i >= 0 && i < 8)
	}
	require.Empty(t, stats.Perm(0, nil))
}

func TestFisher(t *testing.T) {
	t.Parallel()

	for _, r := range []float64{-0.9, -0.2, 0, 0.5, 0.99} {
		assert.InDelta(t, r, stats.FisherR(stats.FisherZ(r)), 1e-12)
	}
}

func TestOLS(t *testing.T) {
	t.Parallel()

	// Near-linear data, y ≈ 1 + 2x, with non-zero residuals.
	X, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {1, 1}, {1, 2}, {1, 3}, {1, 4}})
	require.NoError(t, err)
	y := []float64{1.1, 2.9, 5.1, 6.9, 9.0}

	res, err := stats.OLS(X, y)
	require.NoError(t, err)
	require.Equal(t, 3, res.DF)
	assert.InDelta(t, 1.04, res.Beta[0], 1e-9)
	assert.InDelta(t, 1.98, res.Beta[1], 1e-9)
	require.Len(t, res.Residuals, 5)

	var sum float64
	for _, r := range res.Residuals {
		sum += r
	}
	assert.InDelta(t, 0, sum, 1e-9) // intercept ⇒ residuals sum to zero
	assert.Less(t, res.P[1], 0.001)
	assert.InDelta(t, res.Beta[1]/res.SE[1], res.T[1], 1e-9)

	_, err = stats.OLS(X, y[:4])
	require.ErrorIs(t, err, stats.ErrLengthMismatch)

	small, _ := matrix.NewDenseFromRows([][]float64{{1, 0}, {1, 1}})
	_, err = stats.OLS(small, []float64{1, 2})
	require.ErrorIs(t, err, stats.ErrDegreesOfFreedom)

	rankDef, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {2, 4}, {3, 6}})
	_, err = stats.OLS(rankDef, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestOLSMultiMatchesSingle(t *testing.T) {
	t.Parallel()

	X, _ := matrix.NewDenseFromRows([][]float64{{1, 0}, {1, 1}, {1, 2}, {1, 3}})
	Y, _ := matrix.NewDenseFromRows([][]float64{{1, 5}, {2, 3}, {4, 4}, {3, 1}})

	multi, err := stats.OLSMulti(X, Y)
	require.NoError(t, err)
	require.Equal(t, 2, multi.Beta.Rows())
	require.Equal(t, 2, multi.Beta.Cols())

	col1, _ := Y.Col(1)
	single, err := stats.OLS(X, col1)
	require.NoError(t, err)
	for k := 0; k < 2; k++ {
		b, _ := multi.Beta.At(k, 1)
		assert.InDelta(t, single.Beta[k], b, 1e-12)
		p, _ := multi.P.At(k, 1)
		assert.InDelta(t, single.P[k], p, 1e-12)
	}
}
