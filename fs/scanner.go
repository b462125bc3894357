// Package fs walks a local mirror of IETF documents.
package fs

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/rfz"
)

// DefaultMaxDepth bounds how many directory levels below the root are walked.
// Mirrors are flat or one level deep (rfc/, internet-drafts/).
const DefaultMaxDepth = 4

// Ensure Scanner implements rfz.Scanner at compile time.
var _ rfz.Scanner = (*Scanner)(nil)

// Scanner walks a mirrored document tree in lexical order.
type Scanner struct {
	// MaxDepth is the number of directory levels walked below the root.
	// Zero means DefaultMaxDepth.
	MaxDepth int
}

// NewScanner creates a new Scanner with default settings.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan checks that root is a readable directory and returns a lazy sequence
// of handles for every regular file beneath it. Hidden entries are skipped.
// Errors on individual entries are reported to diag as scan diagnostics.
func (s *Scanner) Scan(ctx context.Context, root string, diag rfz.Diagnostics) (iter.Seq[rfz.DocumentHandle], error) {
	if diag == nil {
		diag = rfz.DiscardDiagnostics
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve document root: %w", err)
	}

	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return nil, rfz.Errorf(rfz.EINVALID, "document directory %q does not exist", root)
	} else if err != nil {
		return nil, rfz.Errorf(rfz.EINVALID, "cannot access document directory %q: %v", root, err)
	}
	if !info.IsDir() {
		return nil, rfz.Errorf(rfz.EINVALID, "document directory %q is not a directory", root)
	}
	if _, err := os.ReadDir(abs); err != nil {
		return nil, rfz.Errorf(rfz.EINVALID, "cannot read document directory %q: %v", root, err)
	}

	maxDepth := s.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	return func(yield func(rfz.DocumentHandle) bool) {
		w := &walker{
			ctx:      ctx,
			diag:     diag,
			maxDepth: maxDepth,
			yield:    yield,
			visited:  make(map[string]bool),
		}
		w.markVisited(abs)
		w.walk(abs, 0)
	}, nil
}

// walker holds the state of one traversal.
type walker struct {
	ctx      context.Context
	diag     rfz.Diagnostics
	maxDepth int
	yield    func(rfz.DocumentHandle) bool
	visited  map[string]bool
}

// walk visits the entries of dir. It returns false once the consumer stops
// or the context is done.
func (w *walker) walk(dir string, depth int) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.report(dir, err)
		return true
	}

	for _, entry := range entries {
		if w.ctx.Err() != nil {
			return false
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name)

		mode := entry.Type()
		if mode&os.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				w.report(path, err)
				continue
			}
			mode = info.Mode().Type()
		}

		switch {
		case mode.IsDir():
			if depth+1 > w.maxDepth || !w.markVisited(path) {
				continue
			}
			if !w.walk(path, depth+1) {
				return false
			}
		case mode.IsRegular():
			if !w.yield(Classify(path)) {
				return false
			}
		}
	}
	return true
}

// markVisited records the real path of dir and reports whether it was new.
func (w *walker) markVisited(dir string) bool {
	real, err := filepath.EvalSymlinks(dir)
	if err != nil {
		w.report(dir, err)
		return false
	}
	if w.visited[real] {
		return false
	}
	w.visited[real] = true
	return true
}

func (w *walker) report(path string, err error) {
	w.diag.Report(rfz.Diagnostic{Kind: rfz.DiagnosticScan, Path: path, Err: err})
}
