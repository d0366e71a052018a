package config

import (
	"bytes"
	"context"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"testing"

	"github.com/amp-labs/amp-sort/envutil"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolated blanks every variable not in env so the process environment
// can't leak in.
func isolated(ctx context.Context, env map[string]string) context.Context {
	vars := map[string]string{
		EnvAlgorithm:       "",
		EnvHybridThreshold: "",
		EnvPivot:           "",
	}

	maps.Copy(vars, env)

	return envutil.WithEnvOverrides(ctx, vars)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	assert.Equal(t, sorting.AlgorithmHybrid, cfg.Algorithm)
	assert.Equal(t, 12, cfg.HybridThreshold)
	assert.Equal(t, sorting.PivotLast, cfg.Pivot)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		env         map[string]string
		expected    Config
		expectedErr error
	}{
		{
			name: "overrides every field",
			env: map[string]string{
				EnvAlgorithm:       " Quick ",
				EnvHybridThreshold: "20",
				EnvPivot:           "median-of-three",
			},
			expected: Config{Algorithm: sorting.AlgorithmQuick, HybridThreshold: 20, Pivot: sorting.PivotMedianOfThree},
		},
		{
			name:     "partial override keeps defaults",
			env:      map[string]string{EnvAlgorithm: "bubble"},
			expected: Config{Algorithm: sorting.AlgorithmBubble, HybridThreshold: 12, Pivot: sorting.PivotLast},
		},
		{
			name:        "unknown algorithm",
			env:         map[string]string{EnvAlgorithm: "bogo"},
			expected:    Default(),
			expectedErr: errors.ErrInvalidConfig,
		},
		{
			name:        "threshold is not a number",
			env:         map[string]string{EnvHybridThreshold: "lots"},
			expected:    Default(),
			expectedErr: errors.ErrInvalidConfig,
		},
		{
			name:        "negative threshold",
			env:         map[string]string{EnvHybridThreshold: "-1"},
			expected:    Config{Algorithm: sorting.AlgorithmHybrid, HybridThreshold: -1, Pivot: sorting.PivotLast},
			expectedErr: errors.ErrInvalidConfig,
		},
		{
			name:        "unknown pivot",
			env:         map[string]string{EnvPivot: "random"},
			expected:    Default(),
			expectedErr: errors.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := FromEnv(isolated(t.Context(), tt.env))
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestFromEnv_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	_, err := FromEnv(isolated(t.Context(), map[string]string{
		EnvAlgorithm: "bogo",
		EnvPivot:     "random",
	}))
	require.ErrorIs(t, err, errors.ErrInvalidConfig)

	assert.Contains(t, err.Error(), EnvAlgorithm)
	assert.Contains(t, err.Error(), EnvPivot)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("file values are applied", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sort.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"env:\n  SORT_ALGORITHM: insertion\n  SORT_PIVOT: median-of-three\n",
		), 0o600))

		cfg, err := Load(isolated(t.Context(), map[string]string{EnvHybridThreshold: "3"}), path)
		require.NoError(t, err)

		assert.Equal(t, Config{
			Algorithm:       sorting.AlgorithmInsertion,
			HybridThreshold: 3,
			Pivot:           sorting.PivotMedianOfThree,
		}, cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(isolated(t.Context(), nil), filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, errors.ErrInvalidConfig)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sort.yaml")
		require.NoError(t, os.WriteFile(path, []byte("env: [unclosed"), 0o600))

		_, err := Load(isolated(t.Context(), nil), path)
		require.ErrorIs(t, err, errors.ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	err := Config{Algorithm: "Quick", HybridThreshold: -2, Pivot: ""}.Validate()
	require.ErrorIs(t, err, errors.ErrInvalidConfig)

	assert.Contains(t, err.Error(), `algorithm "Quick"`)
	assert.Contains(t, err.Error(), "hybrid threshold -2 is negative")
	assert.Contains(t, err.Error(), `pivot ""`)
}

func TestStrategy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      Config
		length   int
		expected sorting.Algorithm
	}{
		{name: "hybrid short", cfg: Default(), length: 12, expected: sorting.AlgorithmInsertion},
		{name: "hybrid long", cfg: Default(), length: 13, expected: sorting.AlgorithmQuick},
		{
			name:     "hybrid custom threshold",
			cfg:      Config{Algorithm: sorting.AlgorithmHybrid, HybridThreshold: 2, Pivot: sorting.PivotLast},
			length:   3,
			expected: sorting.AlgorithmQuick,
		},
		{
			name:     "selection",
			cfg:      Config{Algorithm: sorting.AlgorithmSelection, Pivot: sorting.PivotLast},
			length:   5,
			expected: sorting.AlgorithmSelection,
		},
		{
			name:     "quick median-of-three",
			cfg:      Config{Algorithm: sorting.AlgorithmQuick, Pivot: sorting.PivotMedianOfThree},
			length:   30,
			expected: sorting.AlgorithmQuick,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			strategy, opts, err := Strategy[int](tt.cfg)
			require.NoError(t, err)

			values := make([]int, tt.length)
			for i := range values {
				values[i] = tt.length - i
			}

			var ran sorting.Algorithm

			opts = append(opts, sorting.WithObserver(sorting.ObserverFunc(func(_ context.Context, r sorting.Report) {
				ran = r.Algorithm
			})))

			out, err := sorting.SortOrdered(values, strategy, opts...)
			require.NoError(t, err)

			assert.IsIncreasing(t, out)
			assert.Equal(t, tt.expected, ran)
		})
	}

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()

		strategy, opts, err := Strategy[int](Config{Algorithm: "bogo", Pivot: sorting.PivotLast})
		require.ErrorIs(t, err, errors.ErrInvalidConfig)
		assert.Nil(t, strategy)
		assert.Nil(t, opts)
	})
}

func TestConfig_LogValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	slog.New(slog.NewTextHandler(&buf, nil)).Info("config", "sort", Default())

	assert.Contains(t, buf.String(), "sort.algorithm=hybrid sort.hybrid_threshold=12 sort.pivot=last")
}
