package slog

import (
	"log/slog"

	"github.com/fwojciec/rfz"
)

// Ensure Diagnostics implements rfz.Diagnostics.
var _ rfz.Diagnostics = (*Diagnostics)(nil)

// Diagnostics logs every diagnostic as a warning and forwards it to next,
// if set.
type Diagnostics struct {
	next   rfz.Diagnostics
	logger *slog.Logger
}

// NewDiagnostics creates a new Diagnostics. next may be nil.
func NewDiagnostics(next rfz.Diagnostics, logger *slog.Logger) *Diagnostics {
	return &Diagnostics{next: next, logger: logger}
}

// Report implements rfz.Diagnostics.
func (d *Diagnostics) Report(diag rfz.Diagnostic) {
	attrs := []any{"kind", diag.Kind, "path", diag.Path}
	if diag.ID != "" {
		attrs = append(attrs, "id", diag.ID)
	}
	attrs = append(attrs, "err", diag.Err)
	d.logger.Warn("skipped document", attrs...)

	if d.next != nil {
		d.next.Report(diag)
	}
}
