package envutil

import (
	"context"

	"github.com/amp-labs/amp-sort/contexts"
)

type envContextKey string

// WithEnvOverride returns a context in which key reads as value, regardless
// of the process environment.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	return contexts.WithValue[envContextKey, string](ctx, envContextKey(key), value)
}

// WithEnvOverrides applies WithEnvOverride for every entry of env.
func WithEnvOverrides(ctx context.Context, env map[string]string) context.Context {
	for key, value := range env {
		ctx = WithEnvOverride(ctx, key, value)
	}

	return contexts.EnsureContext(ctx)
}

func getEnvOverride(ctx context.Context, key string) (string, bool) {
	return contexts.GetValue[envContextKey, string](ctx, envContextKey(key))
}
