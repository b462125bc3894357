package slog

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"github.com/fwojciec/rfz"
)

// Ensure LoggingScanner implements rfz.Scanner.
var _ rfz.Scanner = (*LoggingScanner)(nil)

// LoggingScanner wraps a Scanner, logging the root check and, once the
// sequence is drained, how many documents it yielded.
type LoggingScanner struct {
	next   rfz.Scanner
	logger *slog.Logger
}

// NewLoggingScanner creates a new LoggingScanner.
func NewLoggingScanner(next rfz.Scanner, logger *slog.Logger) *LoggingScanner {
	return &LoggingScanner{next: next, logger: logger}
}

// Scan delegates to the wrapped scanner and logs the operation.
func (s *LoggingScanner) Scan(ctx context.Context, root string, diag rfz.Diagnostics) (iter.Seq[rfz.DocumentHandle], error) {
	seq, err := s.next.Scan(ctx, root, diag)
	if err != nil {
		s.logger.Info("scan", "root", root, "err", err)
		return nil, err
	}

	return func(yield func(rfz.DocumentHandle) bool) {
		var count int
		defer func(begin time.Time) {
			s.logger.Info("scan",
				"root", root,
				"count", count,
				"duration", time.Since(begin),
			)
		}(time.Now())
		for h := range seq {
			count++
			if !yield(h) {
				return
			}
		}
	}, nil
}
