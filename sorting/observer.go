package sorting

import (
	"context"
	"log/slog"
	"time"

	"github.com/amp-labs/amp-sort/logger"
)

// Report describes one finished top-level sort call.
type Report struct {
	// Algorithm is the algorithm that actually ran.
	Algorithm Algorithm
	// Name is the label given with WithName, or the algorithm name.
	Name     string
	Len      int
	Stats    Stats
	Started  time.Time
	Duration time.Duration
	// Err is nil on success.
	Err error
}

// Observer is told about every top-level sort call it is registered on.
// Recursive calls inside quick sort are not reported separately.
type Observer interface {
	Observe(ctx context.Context, report Report)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, report Report)

func (f ObserverFunc) Observe(ctx context.Context, report Report) {
	f(ctx, report)
}

// LogObserver logs each report through logger.Get at the given level.
// Failed sorts are always logged at error level.
func LogObserver(level slog.Level) Observer {
	return ObserverFunc(func(ctx context.Context, r Report) {
		args := []any{
			"algorithm", string(r.Algorithm),
			"name", r.Name,
			"len", r.Len,
			"comparisons", r.Stats.Comparisons,
			"swaps", r.Stats.Swaps,
			"writes", r.Stats.Writes,
			"passes", r.Stats.Passes,
			"duration", r.Duration,
		}

		if r.Err != nil {
			logger.Get(ctx).Error("sort failed", append(args, "error", r.Err)...)

			return
		}

		logger.Get(ctx).Log(ctx, level, "sort finished", args...)
	})
}
