package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rfz"
)

// Ensure LoggingIndexBuilder implements rfz.IndexBuilder.
var _ rfz.IndexBuilder = (*LoggingIndexBuilder)(nil)

// LoggingIndexBuilder wraps an IndexBuilder with logging.
type LoggingIndexBuilder struct {
	next   rfz.IndexBuilder
	logger *slog.Logger
}

// NewLoggingIndexBuilder creates a new LoggingIndexBuilder.
func NewLoggingIndexBuilder(next rfz.IndexBuilder, logger *slog.Logger) *LoggingIndexBuilder {
	return &LoggingIndexBuilder{next: next, logger: logger}
}

// Build delegates to the wrapped builder and logs the operation.
func (b *LoggingIndexBuilder) Build(ctx context.Context, root string, diag rfz.Diagnostics) (idx *rfz.Index, err error) {
	defer func(begin time.Time) {
		var count int
		if idx != nil {
			count = idx.Len()
		}
		b.logger.Info("build index",
			"root", root,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Build(ctx, root, diag)
}
