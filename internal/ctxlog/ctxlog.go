// Package ctxlog threads the run's slog.Logger through context.Context so
// every pipeline stage reports progress on the same stream without carrying
// a logger parameter through each call.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported so no other package can collide with the logger entry.
type key struct{}

var loggerKey = key{}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger carried by ctx, or the process default
// when ctx has none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
