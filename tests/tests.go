// Package tests provides helpers for the test suites of this module: a
// context that carries test metadata and a test-scoped logger, and a runner
// for randomized property trials.
//
// Example usage:
//
//	func TestQuick(t *testing.T) {
//	    ctx := tests.Context(t)
//	    tests.Trials(t, 200, func(rng *rand.Rand) error {
//	        values := tests.RandomInts(rng, 64, 10)
//	        _, err := sorting.Quick[int](sequence.Slice[int](values), compare.Natural[int](),
//	            sorting.WithContext(ctx))
//	        return err
//	    })
//	}
package tests

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"testing"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-sort/contexts"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/google/uuid"
	"github.com/neilotoole/slogt"
)

// contextKey is a private type used for storing test metadata in context.Context.
type contextKey string

const (
	testIdKey   contextKey = "testId"
	testNameKey contextKey = "testName"
)

// Info is the test metadata stored by Context.
type Info struct {
	// Id is "test-" followed by a random UUID.
	Id string
	// Name is t.Name().
	Name string
}

// Context returns a context derived from t.Context() that carries a unique
// test id, the test name, and a logger writing through t.Log (so that
// logger.Get(ctx) output appears next to the test that produced it).
func Context(t *testing.T) context.Context {
	t.Helper()

	id := "test-" + uuid.New().String()

	ctx := contexts.WithValue(t.Context(), testIdKey, id)
	ctx = contexts.WithValue(ctx, testNameKey, t.Name())
	ctx = logger.WithLogger(ctx, slogt.New(t))

	return logger.With(ctx, "test_id", id)
}

// GetTestInfo returns the metadata stored by Context.
func GetTestInfo(ctx context.Context) (Info, bool) {
	id, ok := contexts.GetValue[contextKey, string](ctx, testIdKey)
	if !ok {
		return Info{}, false
	}

	name, _ := contexts.GetValue[contextKey, string](ctx, testNameKey)

	return Info{Id: id, Name: name}, true
}

// Trials runs n independent trials of fn on a worker pool and fails t with
// every error they return. Trial i gets its own generator seeded with i, so
// a failure report names a trial that can be replayed deterministically.
func Trials(t *testing.T, n int, fn func(rng *rand.Rand) error) {
	t.Helper()

	pool := pond.NewPool(runtime.GOMAXPROCS(0))
	defer pool.StopAndWait()

	tasks := make([]pond.Task, n)

	for i := range n {
		tasks[i] = pool.SubmitErr(func() error {
			if err := fn(Rand(uint64(i))); err != nil { //nolint:gosec
				return fmt.Errorf("trial %d: %w", i, err)
			}

			return nil
		})
	}

	var errs errors.Collection

	for _, task := range tasks {
		errs.Add(task.Wait())
	}

	if err := errs.GetError(); err != nil {
		t.Fatal(err)
	}
}

// Rand returns a deterministic generator for the given seed.
func Rand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec
}

// RandomInts returns n values drawn from [-spread, spread]. A small spread
// gives duplicate-heavy input.
func RandomInts(rng *rand.Rand, n, spread int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.IntN(2*spread+1) - spread
	}

	return out
}
