// SPDX-License-Identifier: MIT
// Package: relnet/adjacency
//
// options.go — functional options for construction (BuildOption) and for the
// statistical operations (Option).
//
// Contract:
//   - Option constructors validate and PANIC on meaningless programmer input
//     (nil RNG, negative counts). Operations themselves never panic.
//   - Name-based choices (metric, permutation type) arrive from users and are
//     validated by the operation, which returns a sentinel error.
//   - Randomness is explicit: WithSeed or WithRand; the default is seed 1.

package adjacency

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/relnet/matrix"
	"github.com/katalvlaran/relnet/stats"
)

// DefaultPermutations is the permutation count used when a permutation test is
// requested without WithPermutations.
const DefaultPermutations = 5000

// BuildOption customizes construction.
type BuildOption func(*buildConfig)

type buildConfig struct {
	mtype  MatrixType
	labels []string
	tol    float64
}

func newBuildConfig(opts []BuildOption) buildConfig {
	cfg := buildConfig{tol: matrix.DefaultEpsilon}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMatrixType fixes the matrix type instead of inferring it.
// The name is validated at construction (ErrUnknownMatrixType).
func WithMatrixType(t MatrixType) BuildOption {
	return func(c *buildConfig) { c.mtype = t }
}

// WithLabels names the k nodes; the count is validated at construction.
func WithLabels(labels []string) BuildOption {
	cp := append([]string(nil), labels...)

	return func(c *buildConfig) { c.labels = cp }
}

// WithTolerance sets the tolerance used for symmetry and zero-diagonal detection.
// Panics on negative or non-finite values.
func WithTolerance(eps float64) BuildOption {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("adjacency: WithTolerance requires a finite, non-negative value")
	}

	return func(c *buildConfig) { c.tol = eps }
}

// PermType selects the permutation scheme used by Similarity.
type PermType string

const (
	// PermNone skips permutation testing.
	PermNone PermType = "none"
	// Perm1D shuffles condensed edge order.
	Perm1D PermType = "1d"
	// Perm2D relabels nodes: rows and columns of the square are permuted jointly.
	Perm2D PermType = "2d"
)

// Option customizes a statistical operation.
type Option func(*callConfig)

type callConfig struct {
	permutations int
	permSet      bool
	rng          *rand.Rand
	metric       stats.Metric
	permType     PermType
	tail         stats.Tail
	samples      bool
}

func newCallConfig(opts []Option) callConfig {
	cfg := callConfig{
		permutations: DefaultPermutations,
		metric:       stats.Pearson,
		permType:     PermNone,
		tail:         stats.TwoTailed,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = stats.NewRand(0)
	}

	return cfg
}

// WithPermutations sets the permutation count and, for TTest, switches from
// analytic to sign-flip permutation p-values. Panics on n < 1.
func WithPermutations(n int) Option {
	if n < 1 {
		panic("adjacency: WithPermutations requires n >= 1")
	}

	return func(c *callConfig) {
		c.permutations = n
		c.permSet = true
	}
}

// WithSeed seeds a fresh deterministic stream (seed 0 means the default seed).
func WithSeed(seed int64) Option {
	return func(c *callConfig) { c.rng = stats.NewRand(seed) }
}

// WithRand supplies an explicit stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("adjacency: WithRand(nil)")
	}

	return func(c *callConfig) { c.rng = r }
}

// WithMetric selects the correlation metric for Similarity.
func WithMetric(m stats.Metric) Option {
	return func(c *callConfig) { c.metric = m }
}

// WithPermType selects the Similarity permutation scheme ("" means none).
func WithPermType(p PermType) Option {
	return func(c *callConfig) { c.permType = p }
}

// WithTail selects one- or two-tailed p-values. Panics on other values.
func WithTail(t stats.Tail) Option {
	if err := t.Validate(); err != nil {
		panic("adjacency: WithTail: " + err.Error())
	}

	return func(c *callConfig) { c.tail = t }
}

// WithSamples keeps the raw permutation/bootstrap draws in the result.
func WithSamples() Option {
	return func(c *callConfig) { c.samples = true }
}
