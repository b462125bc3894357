package rfz

import "context"

// SyncOptions configures one mirror synchronization.
type SyncOptions struct {
	// Remote is the source, e.g. "rsync.tools.ietf.org::tools.html".
	Remote string

	// Dir is the local mirror directory.
	Dir string

	// Include lists the file patterns to transfer. Everything else is excluded.
	Include []string

	// Verbosity is passed through to the transfer tool.
	Verbosity int
}

// Syncer brings the local mirror up to date with a remote source.
type Syncer interface {
	Sync(ctx context.Context, opts SyncOptions) error
}

// IndexBuilder scans a mirror and builds an index from it.
type IndexBuilder interface {
	// Build returns an error only when root is inaccessible or ctx is done.
	// Per-document problems are reported to diag.
	Build(ctx context.Context, root string, diag Diagnostics) (*Index, error)
}
