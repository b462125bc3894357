package rfz

import (
	"fmt"
	"sync"
)

// DiagnosticKind classifies a recoverable, per-document problem.
type DiagnosticKind int

// DiagnosticKind constants.
const (
	// DiagnosticScan is an I/O failure on one entry during traversal.
	DiagnosticScan DiagnosticKind = iota + 1
	// DiagnosticParse is a document that could not be read and was
	// excluded from the index.
	DiagnosticParse
	// DiagnosticDuplicate is a record dropped because its identifier was
	// already taken.
	DiagnosticDuplicate
)

// String returns a short name for the kind.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticScan:
		return "scan"
	case DiagnosticParse:
		return "parse"
	case DiagnosticDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// Diagnostic describes one recovered failure.
type Diagnostic struct {
	Kind DiagnosticKind
	Path string
	ID   string
	Err  error
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	if d.ID != "" {
		return fmt.Sprintf("%s %s (%s): %v", d.Kind, d.Path, d.ID, d.Err)
	}
	return fmt.Sprintf("%s %s: %v", d.Kind, d.Path, d.Err)
}

// Unwrap returns the underlying error.
func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Diagnostics receives diagnostics produced during one invocation.
// Implementations must be safe for concurrent use.
type Diagnostics interface {
	Report(d Diagnostic)
}

// DiscardDiagnostics drops every diagnostic.
var DiscardDiagnostics Diagnostics = discardDiagnostics{}

type discardDiagnostics struct{}

func (discardDiagnostics) Report(Diagnostic) {}

var _ Diagnostics = (*DiagnosticLog)(nil)

// DiagnosticLog accumulates diagnostics in report order.
type DiagnosticLog struct {
	mu    sync.Mutex
	items []Diagnostic
}

// Report records d.
func (l *DiagnosticLog) Report(d Diagnostic) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, d)
}

// All returns a copy of the recorded diagnostics.
func (l *DiagnosticLog) All() []Diagnostic {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Diagnostic, len(l.items))
	copy(out, l.items)
	return out
}

// Count returns the number of diagnostics of the given kind.
func (l *DiagnosticLog) Count(kind DiagnosticKind) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, d := range l.items {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
