package mock

import (
	"context"

	"github.com/fwojciec/rfz"
)

var _ rfz.Syncer = (*Syncer)(nil)

// Syncer is a mock implementation of rfz.Syncer.
type Syncer struct {
	SyncFn func(ctx context.Context, opts rfz.SyncOptions) error
}

func (s *Syncer) Sync(ctx context.Context, opts rfz.SyncOptions) error {
	return s.SyncFn(ctx, opts)
}

var _ rfz.IndexBuilder = (*IndexBuilder)(nil)

// IndexBuilder is a mock implementation of rfz.IndexBuilder.
type IndexBuilder struct {
	BuildFn func(ctx context.Context, root string, diag rfz.Diagnostics) (*rfz.Index, error)
}

func (b *IndexBuilder) Build(ctx context.Context, root string, diag rfz.Diagnostics) (*rfz.Index, error) {
	return b.BuildFn(ctx, root, diag)
}
