// Package config selects a sort strategy from the environment or a YAML file.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-sort/envutil"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/sorting"
)

// Environment variables read by FromEnv.
const (
	EnvAlgorithm       = "SORT_ALGORITHM"
	EnvHybridThreshold = "SORT_HYBRID_THRESHOLD"
	EnvPivot           = "SORT_PIVOT"
)

// Config chooses the algorithm and its tuning.
type Config struct {
	Algorithm sorting.Algorithm
	// HybridThreshold is only used when Algorithm is hybrid.
	HybridThreshold int
	// Pivot is only used by quick sort, including the quick half of hybrid.
	Pivot sorting.Pivot
}

// Default returns hybrid sort with sorting.DefaultHybridThreshold and the
// last-element pivot.
func Default() Config {
	return Config{
		Algorithm:       sorting.AlgorithmHybrid,
		HybridThreshold: sorting.DefaultHybridThreshold,
		Pivot:           sorting.PivotLast,
	}
}

// FromEnv starts from Default and replaces every field whose variable is
// set to a non-blank value. Overrides stored with envutil.WithEnvOverride take precedence over
// the process environment.
func FromEnv(ctx context.Context) (Config, error) {
	cfg := Default()

	var errs errors.Collection

	alg := envutil.Map(envutil.String(ctx, EnvAlgorithm, envutil.IgnoreEmpty()), sorting.ParseAlgorithm)
	if alg.HasError() {
		errs.Addf(errors.ErrInvalidConfig, "%s: %v", EnvAlgorithm, alg.Error())
	} else {
		cfg.Algorithm = alg.ValueOrElse(cfg.Algorithm)
	}

	threshold := envutil.Map(envutil.String(ctx, EnvHybridThreshold, envutil.IgnoreEmpty()), parseThreshold)
	if threshold.HasError() {
		errs.Addf(errors.ErrInvalidConfig, "%s: %v", EnvHybridThreshold, threshold.Error())
	} else {
		cfg.HybridThreshold = threshold.ValueOrElse(cfg.HybridThreshold)
	}

	pivot := envutil.Map(envutil.String(ctx, EnvPivot, envutil.IgnoreEmpty()), sorting.ParsePivot)
	if pivot.HasError() {
		errs.Addf(errors.ErrInvalidConfig, "%s: %v", EnvPivot, pivot.Error())
	} else {
		cfg.Pivot = pivot.ValueOrElse(cfg.Pivot)
	}

	if errs.HasError() {
		return cfg, errs.GetError()
	}

	return cfg, cfg.Validate()
}

func parseThreshold(value string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(value))
}

// Load reads the "env" map of a YAML file (see envutil.LoadYAMLFile) and
// resolves it with FromEnv. Values in the file win over the process
// environment.
func Load(ctx context.Context, path string) (Config, error) {
	env, err := envutil.LoadYAMLFile(path)
	if err != nil {
		return Default(), fmt.Errorf("%w: loading %s: %w", errors.ErrInvalidConfig, path, err)
	}

	return FromEnv(envutil.WithEnvOverrides(ctx, env))
}

// Validate reports every invalid field, each wrapped with errors.ErrInvalidConfig.
func (c Config) Validate() error {
	var errs errors.Collection

	if alg, err := sorting.ParseAlgorithm(string(c.Algorithm)); err != nil || alg != c.Algorithm {
		errs.Addf(errors.ErrInvalidConfig, "algorithm %q", c.Algorithm)
	}

	if c.HybridThreshold < 0 {
		errs.Addf(errors.ErrInvalidConfig, "hybrid threshold %d is negative", c.HybridThreshold)
	}

	if p, err := sorting.ParsePivot(string(c.Pivot)); err != nil || p != c.Pivot {
		errs.Addf(errors.ErrInvalidConfig, "pivot %q", c.Pivot)
	}

	return errs.GetError()
}

// LogValue implements slog.LogValuer.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("algorithm", string(c.Algorithm)),
		slog.Int("hybrid_threshold", c.HybridThreshold),
		slog.String("pivot", string(c.Pivot)),
	)
}

// Strategy returns the strategy described by cfg together with the options
// every call should pass to it.
//
//	strategy, opts, err := config.Strategy[int](cfg)
//	...
//	sorting.SortOrdered(values, strategy, opts...)
func Strategy[T any](cfg Config) (sorting.Strategy[T], []sorting.Option, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	opts := []sorting.Option{sorting.WithPivot(cfg.Pivot)}

	if cfg.Algorithm == sorting.AlgorithmHybrid {
		return sorting.Hybrid[T](cfg.HybridThreshold), opts, nil
	}

	strategy, err := sorting.Lookup[T](cfg.Algorithm)
	if err != nil {
		return nil, nil, err
	}

	return strategy, opts, nil
}
