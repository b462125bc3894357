package main

import (
	"fmt"

	"github.com/fwojciec/rfz"
	"github.com/fwojciec/rfz/rsync"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	include := c.Include
	if len(include) == 0 {
		include = deps.Config.Sync.Include
	}

	opts := rfz.SyncOptions{
		Remote:    firstNonEmpty(c.Remote, deps.Config.Sync.Remote, rsync.DefaultRemote),
		Dir:       deps.Dir,
		Include:   include,
		Verbosity: deps.Verbosity,
	}
	if err := deps.Syncer.Sync(deps.Ctx, opts); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rfz.ErrorMessage(err))
		return err
	}
	return nil
}
