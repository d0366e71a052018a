package tests

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/amp-labs/amp-sort/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := Context(t)

	info, ok := GetTestInfo(ctx)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(info.Id, "test-"))
	assert.Equal(t, t.Name(), info.Name)

	// Goes to t.Log.
	logger.Get(ctx).Info("hello from the test logger")

	_, ok = GetTestInfo(t.Context())
	assert.False(t, ok)
}

func TestTrials(t *testing.T) {
	t.Parallel()

	var runs atomic.Int64

	Trials(t, 50, func(rng *rand.Rand) error {
		runs.Add(1)

		if rng == nil {
			return errors.New("missing generator") //nolint:err113
		}

		return nil
	})

	assert.Equal(t, int64(50), runs.Load())
}

func TestRandomInts(t *testing.T) {
	t.Parallel()

	a := RandomInts(Rand(7), 100, 3)
	b := RandomInts(Rand(7), 100, 3)

	assert.Equal(t, a, b, "same seed, same values")
	assert.Len(t, a, 100)

	for _, v := range a {
		assert.GreaterOrEqual(t, v, -3)
		assert.LessOrEqual(t, v, 3)
	}
}
