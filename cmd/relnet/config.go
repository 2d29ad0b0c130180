// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/relnet/adjacency"
	"github.com/katalvlaran/relnet/stats"
)

// Config is the YAML run configuration. Command-line flags override it.
type Config struct {
	Seed         int64   `yaml:"seed"`
	Permutations int     `yaml:"permutations" validate:"gte=1,lte=10000000"`
	Metric       string  `yaml:"metric" validate:"oneof=pearson spearman kendall"`
	PermType     string  `yaml:"perm_type" validate:"oneof=none 1d 2d"`
	Tail         int     `yaml:"tail" validate:"oneof=1 2"`
	Tolerance    float64 `yaml:"tolerance" validate:"gte=0"`
	LogLevel     string  `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat    string  `yaml:"log_format" validate:"oneof=auto text json"`
}

var configValidate = validator.New()

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Seed:         1,
		Permutations: adjacency.DefaultPermutations,
		Metric:       string(stats.Pearson),
		PermType:     string(adjacency.PermNone),
		Tail:         int(stats.TwoTailed),
		Tolerance:    1e-9,
		LogLevel:     "info",
		LogFormat:    "auto",
	}
}

// LoadConfig reads path over DefaultConfig. An empty path yields the defaults.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// callOptions translates the run settings into adjacency options.
func (c Config) callOptions() []adjacency.Option {
	return []adjacency.Option{
		adjacency.WithSeed(c.Seed),
		adjacency.WithMetric(stats.Metric(c.Metric)),
		adjacency.WithPermType(adjacency.PermType(c.PermType)),
		adjacency.WithTail(stats.Tail(c.Tail)),
	}
}
