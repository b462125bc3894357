package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rfz"
)

// Ensure LoggingSyncer implements rfz.Syncer.
var _ rfz.Syncer = (*LoggingSyncer)(nil)

// LoggingSyncer wraps a Syncer with logging.
type LoggingSyncer struct {
	next   rfz.Syncer
	logger *slog.Logger
}

// NewLoggingSyncer creates a new LoggingSyncer.
func NewLoggingSyncer(next rfz.Syncer, logger *slog.Logger) *LoggingSyncer {
	return &LoggingSyncer{next: next, logger: logger}
}

// Sync delegates to the wrapped syncer and logs the operation.
func (s *LoggingSyncer) Sync(ctx context.Context, opts rfz.SyncOptions) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("sync",
			"remote", opts.Remote,
			"dir", opts.Dir,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Sync(ctx, opts)
}
