// SPDX-License-Identifier: MIT
// Package: relnet/simulate
//
// options.go — functional options and resolved configuration for generators.
//
// Contract:
//   • Options are functional (type Option func(*config)); later options win.
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: every generator draws from cfg.rng, which
//     defaults to stats.NewRand(0) (seed 1) when neither WithSeed nor
//     WithRand is given.
//
// AI-Hints:
//   • Use WithSeed in tests and examples to lock fixtures.
//   • WithIDScheme yields readable node labels ("roi0", "roi1", ...).
//   • WithNoise adds symmetric Gaussian noise to block and multi-matrix fixtures.

package simulate

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/relnet/stats"
)

// Option customizes a generator by mutating its config before sampling.
type Option func(*config)

// config aggregates all generator knobs; passed by value.
type config struct {
	rng     *rand.Rand
	idFn    func(int) string
	noise   float64 // Gaussian noise sd, >= 0
	density float64 // edge probability for Directed, in [0,1]
	dims    int     // latent dimensions for Distance and Similarity
}

// Deterministic defaults.
const (
	defaultNoise   = 0.0
	defaultDensity = 1.0
	defaultDims    = 3
)

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:    decimalID,
		noise:   defaultNoise,
		density: defaultDensity,
		dims:    defaultDims,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = stats.NewRand(0)
	}

	return cfg
}

// WithSeed seeds a fresh deterministic stream (0 means the default seed).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = stats.NewRand(seed) }
}

// WithRand supplies an explicit stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("simulate: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithIDScheme sets the node label generator: index → label. Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("simulate: WithIDScheme(nil)")
	}

	return func(c *config) { c.idFn = fn }
}

// WithNoise sets the sd of additive Gaussian noise. Panics on sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("simulate: WithNoise requires sigma >= 0")
	}

	return func(c *config) { c.noise = sigma }
}

// WithDensity sets the probability that a Directed edge is present.
// Panics outside [0,1].
func WithDensity(p float64) Option {
	if p < 0 || p > 1 {
		panic("simulate: WithDensity requires p in [0,1]")
	}

	return func(c *config) { c.density = p }
}

// WithDims sets the number of latent dimensions behind Distance and
// Similarity fixtures. Panics on d < 1.
func WithDims(d int) Option {
	if d < 1 {
		panic("simulate: WithDims requires d >= 1")
	}

	return func(c *config) { c.dims = d }
}

// PrefixID returns an ID scheme producing prefix+index labels.
func PrefixID(prefix string) func(int) string {
	return func(i int) string { return prefix + strconv.Itoa(i) }
}

func decimalID(i int) string { return strconv.Itoa(i) }

func (c config) labels(k int) []string {
	out := make([]string, k)
	for i := range out {
		out[i] = c.idFn(i)
	}

	return out
}
