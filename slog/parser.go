package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rfz"
)

// Ensure LoggingParser implements rfz.MetadataParser.
var _ rfz.MetadataParser = (*LoggingParser)(nil)

// LoggingParser wraps a MetadataParser with debug logging.
type LoggingParser struct {
	next   rfz.MetadataParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next rfz.MetadataParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// ParseMetadata delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) ParseMetadata(ctx context.Context, h rfz.DocumentHandle) (m *rfz.Metadata, err error) {
	defer func(begin time.Time) {
		p.logger.Debug("parse metadata",
			"path", h.Path,
			"kind", h.Kind,
			"format", h.Format,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseMetadata(ctx, h)
}
