package mock

import (
	"context"
	"iter"

	"github.com/fwojciec/rfz"
)

var _ rfz.Scanner = (*Scanner)(nil)

// Scanner is a mock implementation of rfz.Scanner.
type Scanner struct {
	ScanFn func(ctx context.Context, root string, diag rfz.Diagnostics) (iter.Seq[rfz.DocumentHandle], error)
}

func (s *Scanner) Scan(ctx context.Context, root string, diag rfz.Diagnostics) (iter.Seq[rfz.DocumentHandle], error) {
	return s.ScanFn(ctx, root, diag)
}

// Handles returns a sequence over handles, for use in ScanFn.
func Handles(handles ...rfz.DocumentHandle) iter.Seq[rfz.DocumentHandle] {
	return func(yield func(rfz.DocumentHandle) bool) {
		for _, h := range handles {
			if !yield(h) {
				return
			}
		}
	}
}
