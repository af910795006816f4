// Package sideeffect runs secondary writes whose failure must never fail the
// request that triggered them.
package sideeffect

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/nft-launchpad-api/internal/metrics"
)

// Result is the outcome of a best-effort call. It may be inspected to report
// partial failures or dropped entirely.
type Result struct {
	Name string
	Err  error
}

// OK reports whether the side effect succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Run executes fn and logs a warning when it fails. The error is returned
// inside the Result only; it is never propagated as the caller's error.
func Run(ctx context.Context, logger *zap.Logger, name string, fn func(ctx context.Context) error, fields ...zap.Field) Result {
	start := time.Now()
	err := fn(ctx)
	if err != nil {
		metrics.SideEffectFailuresTotal.WithLabelValues(name).Inc()
	}
	if err != nil && logger != nil {
		logger.Warn("Best-effort side effect failed",
			append(fields,
				zap.String("side_effect", name),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)...,
		)
	}
	return Result{Name: name, Err: err}
}
